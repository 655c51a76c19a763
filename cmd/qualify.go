package main

import (
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/lead-scraper/internal/leadfile"
	"github.com/sells-group/lead-scraper/internal/qualify"
)

var (
	qualifyFile          string
	qualifyIndustry      string
	qualifyOutput        string
	qualifyFormat        string
	qualifyConcurrency   int
	qualifyOnlyQualified bool
	qualifyRequireMatch  bool
)

var qualifyCmd = &cobra.Command{
	Use:   "qualify",
	Short: "Qualify a scraped lead file",
	Long: `Reads a CSV or XLSX lead file and classifies every lead: target
industry, whether the listing matches it, and whether the name reads like a
business.

The header needs a name or text column; industry, url, phone and location
are optional. Each lead's industry comes from its own column, else
--industry, else the industry named in the file name, else detection.

Examples:
  # Classify a scrape and print a table
  lead-scraper qualify --file plumbing_austin.csv --format table

  # Keep only qualified plumbing leads as CSV
  lead-scraper qualify --file leads.xlsx --industry plumbing --only-qualified --output qualified.csv`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if qualifyFormat != "" {
			cfg.Qualify.Format = qualifyFormat
		}
		if qualifyConcurrency > 0 {
			cfg.Qualify.Concurrency = qualifyConcurrency
		}
		if err := cfg.Validate("qualify"); err != nil {
			return err
		}

		leads, err := leadfile.Read(qualifyFile)
		if err != nil {
			return eris.Wrap(err, "qualify: read leads")
		}

		industry := qualify.NormalizeIndustry(qualifyIndustry)
		if industry == "" {
			if ind, ok := clf.IndustryFromFilename(filepath.Base(qualifyFile)); ok {
				industry = ind
				zap.L().Info("industry from file name", zap.String("industry", ind))
			}
		} else if !slices.Contains(clf.ListIndustries(), industry) {
			zap.L().Warn("industry not in catalog; no lead will match it", zap.String("industry", industry))
		}

		res, err := qualify.Run(cmd.Context(), clf, leads, qualify.Options{
			Industry:      industry,
			Concurrency:   cfg.Qualify.Concurrency,
			OnlyQualified: qualifyOnlyQualified,
			RequireMatch:  qualifyRequireMatch,
		})
		if err != nil {
			return err
		}

		var out io.Writer = cmd.OutOrStdout()
		if qualifyOutput != "" {
			f, err := os.Create(qualifyOutput)
			if err != nil {
				return eris.Wrap(err, "qualify: create output")
			}
			defer f.Close() //nolint:errcheck
			out = f
		}

		if err := renderVerdicts(out, res.Verdicts, cfg.Qualify.Format); err != nil {
			return err
		}

		renderSummary(cmd.ErrOrStderr(), res.Summary)
		return nil
	},
}

func init() {
	f := qualifyCmd.Flags()
	f.StringVar(&qualifyFile, "file", "", "lead file (.csv or .xlsx)")
	f.StringVar(&qualifyIndustry, "industry", "", "target industry for leads without one")
	f.StringVar(&qualifyOutput, "output", "", "output file path (default: stdout)")
	f.StringVar(&qualifyFormat, "format", "", "output format: csv, json or table (default from config)")
	f.IntVar(&qualifyConcurrency, "concurrency", 0, "leads evaluated in parallel (default from config)")
	f.BoolVar(&qualifyOnlyQualified, "only-qualified", false, "drop leads whose name does not read like a business")
	f.BoolVar(&qualifyRequireMatch, "require-match", false, "drop leads whose listing does not match their industry")
	_ = qualifyCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(qualifyCmd)
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var industriesFormat string

var industriesCmd = &cobra.Command{
	Use:   "industries",
	Short: "List the industry catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return renderIndustries(cmd.OutOrStdout(), clf.Industries(), industriesFormat)
	},
}

var detectIndustry string

var detectCmd = &cobra.Command{
	Use:   "detect <text>",
	Short: "Detect the industry of a listing",
	Long: `Prints the first catalog industry with a keyword in the text, or
"electrical" when nothing matches.

Examples:
  lead-scraper detect "Rapid Rooter of Dallas"
  lead-scraper detect --industry hvac "Lone Star Heating & Air"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("classify"); err != nil {
			return err
		}

		text := strings.Join(args, " ")
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, clf.DetectIndustry(text))

		if detectIndustry != "" {
			_, _ = fmt.Fprintf(out, "%s: %t\n", detectIndustry, clf.MatchesIndustry(text, detectIndustry))
		}
		return nil
	},
}

var checkNameCmd = &cobra.Command{
	Use:   "check-name <name>...",
	Short: "Check whether names read like businesses",
	Long: `Runs each argument through the business-name signals and prints the
first signal that fired.

Examples:
  lead-scraper check-name "Alpi Electric LLC" "Robert Renfro"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("classify"); err != nil {
			return err
		}
		renderNameChecks(cmd.OutOrStdout(), checkNames(clf, args))
		return nil
	},
}

func init() {
	industriesCmd.Flags().StringVar(&industriesFormat, "format", "table", "output format: table or json")
	detectCmd.Flags().StringVar(&detectIndustry, "industry", "", "also report whether the text matches this industry")

	rootCmd.AddCommand(industriesCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(checkNameCmd)
}

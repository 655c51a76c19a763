package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/lead-scraper/internal/classify"
	"github.com/sells-group/lead-scraper/internal/config"
)

var (
	cfg *config.Config
	clf *classify.Classifier
)

var rootCmd = &cobra.Command{
	Use:   "lead-scraper",
	Short: "Classify scraped home-service leads",
	Long:  "Detects the industry of scraped business listings and keeps the ones whose name reads like a business rather than a person.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		clf, err = newClassifier(cfg.Catalog)
		if err != nil {
			return fmt.Errorf("init classifier: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newClassifier returns the built-in classifier unless a catalog file is
// configured.
func newClassifier(cc config.CatalogConfig) (*classify.Classifier, error) {
	if cc.Path == "" {
		return classify.Default(), nil
	}

	catalog, err := classify.LoadCatalog(cc.Path)
	if err != nil {
		return nil, err
	}
	c, err := classify.New(catalog, classify.DefaultSignals())
	if err != nil {
		return nil, err
	}

	zap.L().Info("loaded industry catalog",
		zap.String("path", cc.Path),
		zap.Strings("industries", c.ListIndustries()),
	)
	return c, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

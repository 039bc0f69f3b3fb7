package main

import (
	"os"

	"github.com/spf13/cobra"

	"cardata/config"
	"cardata/generator"
	"cardata/models"
	"cardata/storage"
	"cardata/utils"
)

var rootCmd = &cobra.Command{
	Use:   "cardata",
	Short: "Synthetic car equipment data generator and quality diagnoser",
	Long: `cardata produces a deliberately flawed car equipment dataset for ETL
practice and diagnoses quality issues (duplicates, nulls, mixed types,
stray whitespace, vocabulary drift, non-numeric prices) in such datasets.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(diagnoseCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerProviders wires the programmatic table sources so that diagnose can
// accept them by reference, exactly like a dataset file path.
func registerProviders(cfg *config.Config, logger *utils.Logger) {
	gen := func() (*models.Table, error) {
		return generator.New(logger).Generate(cfg.DefaultRows, cfg.DefaultSeed), nil
	}
	storage.RegisterProvider("generator", "", gen)
	storage.RegisterProvider("generator", "raw_equipment", gen)

	pg := func() (*models.Table, error) {
		store, err := storage.NewPostgresStore(cfg.DSN(), logger)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.FetchLatestBatch()
	}
	storage.RegisterProvider("postgres", "", pg)
	storage.RegisterProvider("postgres", "latest", pg)
}

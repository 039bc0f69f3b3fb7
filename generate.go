package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"cardata/config"
	"cardata/generator"
	"cardata/storage"
	"cardata/utils"
)

var (
	generateRows   int
	generateSeed   int64
	generateOut    string
	generateFormat string
	generateStore  bool
)

func init() {
	generateCmd.Flags().IntVar(&generateRows, "rows", 0, "number of records to generate (default from env)")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", -1, "RNG seed (default from env)")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "output file path (default under OUTPUT_DIR)")
	generateCmd.Flags().StringVar(&generateFormat, "format", "csv", "output format: csv or json")
	generateCmd.Flags().BoolVar(&generateStore, "store", false, "also store the batch in PostgreSQL")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a raw car equipment dataset with injected defects",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger := utils.NewLogger(cfg.Debug)

		rows := generateRows
		if rows <= 0 {
			rows = cfg.DefaultRows
		}
		seed := generateSeed
		if seed < 0 {
			seed = cfg.DefaultSeed
		}

		table := generator.New(logger).Generate(rows, seed)

		out := generateOut
		if out == "" {
			out = filepath.Join(cfg.OutputDir, cfg.CSVFileName)
			if generateFormat == "json" {
				out = strings.TrimSuffix(out, filepath.Ext(out)) + ".json"
			}
		}

		switch generateFormat {
		case "csv":
			w, err := storage.NewCSVWriter(out)
			if err != nil {
				return fmt.Errorf("create CSV writer: %w", err)
			}
			if err := w.Write(table); err != nil {
				_ = w.Close()
				return fmt.Errorf("write CSV: %w", err)
			}
			if err := w.Close(); err != nil {
				return fmt.Errorf("close CSV: %w", err)
			}
		case "json":
			if err := storage.WriteJSON(table, out); err != nil {
				return fmt.Errorf("write JSON: %w", err)
			}
		default:
			return fmt.Errorf("unsupported output format %q (want csv or json)", generateFormat)
		}
		logger.Info("Raw dataset saved to %s", out)

		if generateStore {
			store, err := storage.NewPostgresStore(cfg.DSN(), logger)
			if err != nil {
				logger.Error("Make sure Docker is running: docker compose up -d")
				return fmt.Errorf("connect to PostgreSQL: %w", err)
			}
			defer store.Close()

			batchID, err := store.StoreBatch(table)
			if err != nil {
				return fmt.Errorf("store batch: %w", err)
			}
			logger.Info("Batch %s stored in PostgreSQL (table: raw_car_records)", batchID)
		}

		return nil
	},
}

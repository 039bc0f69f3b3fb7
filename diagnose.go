package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cardata/config"
	"cardata/services"
	"cardata/storage"
	"cardata/utils"
)

const defaultSource = "generator.raw_equipment"

var diagnoseReportPath string

func init() {
	diagnoseCmd.Flags().StringVar(&diagnoseReportPath, "report", "",
		"path for the diagnosis report file (defaults to REPORT_DIR/diagnosis_report_<timestamp>.txt)")
}

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose [source]",
	Short: "Diagnose quality issues in a car equipment dataset",
	Long: `Diagnose quality issues in a car equipment dataset. The source may be a
CSV or JSON file path, or a registered provider reference such as
"generator.raw_equipment" or "postgres.latest". File paths win over
provider references.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger := utils.NewLogger(cfg.Debug)
		registerProviders(cfg, logger)

		source := defaultSource
		if len(args) == 1 {
			source = args[0]
		}

		provider, err := storage.ResolveSource(source)
		if err != nil {
			return err
		}

		table, err := provider.Load()
		if err != nil {
			return fmt.Errorf("load table from %s: %w", provider.Name(), err)
		}

		diagnoser := services.NewDiagnoser(logger)
		report := diagnoser.Diagnose(table)
		diagnoser.Print(report)

		path := diagnoseReportPath
		if path == "" {
			path = storage.DefaultReportPath(cfg.ReportDir)
		}
		written, err := storage.WriteReport(report, path)
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info("Report saved to %s", written)

		return nil
	},
}

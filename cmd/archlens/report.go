// Report command writes a markdown summary report for a model.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Reazonay/ArchitechLens/internal/analysis"
	"github.com/Reazonay/ArchitechLens/internal/report"
)

var flagReportOut string

var reportCmd = &cobra.Command{
	Use:   "report <model>",
	Short: "Generate a markdown summary report",
	Long: `Report writes the summary report (element counts, areas by type,
volumes by material) as a markdown file. The model argument is a stored
model ID or name, or a path to a model document.

Example:
  archlens report demo_model.json -o reports/summary.md`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&flagReportOut, "out", "o", "summary_report.md", "output file path")
}

func runReport(cmd *cobra.Command, args []string) error {
	model, err := resolveModel(args[0])
	if err != nil {
		return err
	}

	summary := analysis.NewAnalyzer(model, log).Summarize()
	if err := report.WriteMarkdown(summary, flagReportOut); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	log.Info("report written",
		zap.String("model", summary.ModelName),
		zap.String("path", flagReportOut))
	fmt.Printf("Report written to %s\n", flagReportOut)
	return nil
}

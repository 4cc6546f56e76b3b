// Analyze command computes summary aggregations for a model.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Reazonay/ArchitechLens/internal/analysis"
	"github.com/Reazonay/ArchitechLens/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <model>",
	Short: "Compute summary statistics for a model",
	Long: `Analyze computes element counts by type, total area by element
type, and total volume by material. The model argument is a stored model
ID or name, or a path to a model document.

Example:
  archlens analyze demo_model.json
  archlens analyze 01925cf1-...
  archlens analyze "Demo Building" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	model, err := resolveModel(args[0])
	if err != nil {
		return err
	}

	summary := analysis.NewAnalyzer(model, log).Summarize()
	return report.RenderSummary(os.Stdout, summary, flagJSON)
}

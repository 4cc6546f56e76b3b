// Export command writes a stored model back out as a document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Reazonay/ArchitechLens/internal/loader"
)

var (
	flagExportOut    string
	flagExportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export <model>",
	Short: "Export a model as a JSON or YAML document",
	Long: `Export serializes a stored model back into the document format,
so a model can round-trip through the store and on to other tools.
Without --out the document goes to stdout.

Example:
  archlens export 01925cf1-... -o model.json
  archlens export "Demo Building" --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "output file path (default: stdout)")
	exportCmd.Flags().StringVar(&flagExportFormat, "format", loader.FormatJSON, "document format (json or yaml)")
}

func runExport(cmd *cobra.Command, args []string) error {
	model, err := resolveModel(args[0])
	if err != nil {
		return err
	}

	if flagExportOut == "" {
		data, err := loader.Export(model, flagExportFormat)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := loader.ExportFile(model, flagExportOut, flagExportFormat); err != nil {
		return err
	}
	fmt.Printf("Model exported to %s\n", flagExportOut)
	return nil
}

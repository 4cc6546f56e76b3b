// Get command retrieves a single entity by ID.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Reazonay/ArchitechLens/internal/report"
	"github.com/Reazonay/ArchitechLens/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <models|elements> <id>",
	Short: "Get a model or element by ID",
	Long: `Get retrieves a single entity. Models are addressed by their model
ID; elements by the composite "modelID/elementID".

Example:
  archlens get models 01925cf1-...
  archlens get elements 01925cf1-.../w_001`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	tableName, id := args[0], args[1]

	table, err := store.GetTable(tableName)
	if err != nil {
		return fmt.Errorf("unknown table %q (valid: models, elements): %w", tableName, err)
	}

	entity, err := table.Get(id)
	if err != nil {
		return fmt.Errorf("getting %s %s: %w", tableName, id, err)
	}

	switch e := entity.(type) {
	case *types.Model:
		if flagJSON {
			return report.RenderJSON(os.Stdout, e)
		}
		fmt.Printf("Model %s: %s (version %s, %s)\n", e.ModelID, e.Name, e.Version, e.Date)
		return report.RenderElements(os.Stdout, e.Elements, false)
	case *types.Element:
		return report.RenderElements(os.Stdout, []*types.Element{e}, flagJSON)
	default:
		return types.ErrInvalidData
	}
}

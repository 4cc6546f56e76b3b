// List command queries models and elements with optional filtering.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Reazonay/ArchitechLens/internal/report"
	"github.com/Reazonay/ArchitechLens/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list <models|elements> [filter...]",
	Short: "List models or elements with optional filters",
	Long: `List queries the store with optional key=value filters, ANDed
together. An empty filter returns every entity.

Model filter keys:   model_id, name, version, date
Element filter keys: model_id, element_id, name, type, material, parent_id

Example:
  archlens list models
  archlens list elements model_id=01925cf1-...
  archlens list elements model_id=01925cf1-... type=WALL material=BRICK`,
	Args: cobra.MinimumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	tableName := args[0]
	filter, err := parseFilterArgs(args[1:])
	if err != nil {
		return err
	}

	table, err := store.GetTable(tableName)
	if err != nil {
		return fmt.Errorf("unknown table %q (valid: models, elements): %w", tableName, err)
	}

	entities, err := table.Fetch(filter)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", tableName, err)
	}

	switch tableName {
	case types.ModelsTable:
		models := make([]*types.Model, 0, len(entities))
		for _, e := range entities {
			models = append(models, e.(*types.Model))
		}
		return report.RenderModels(os.Stdout, models, flagJSON)
	default:
		elements := make([]*types.Element, 0, len(entities))
		for _, e := range entities {
			elements = append(elements, e.(*types.Element))
		}
		return report.RenderElements(os.Stdout, elements, flagJSON)
	}
}

// parseFilterArgs parses key=value arguments into a Fetch filter.
func parseFilterArgs(args []string) (map[string]any, error) {
	filter := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q (expected key=value)", arg)
		}
		filter[key] = value
	}
	return filter, nil
}

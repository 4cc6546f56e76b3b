// Delete command removes a model or element from the store.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Reazonay/ArchitechLens/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <models|elements> <id>",
	Short: "Delete a model or element by ID",
	Long: `Delete removes an entity from the store. Deleting a model also
removes all of its elements. Elements are addressed by the composite
"modelID/elementID".`,
	Args: cobra.ExactArgs(2),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	tableName, id := args[0], args[1]

	table, err := store.GetTable(tableName)
	if err != nil {
		return fmt.Errorf("unknown table %q (valid: models, elements): %w", tableName, err)
	}

	if err := table.Delete(id); err != nil {
		return fmt.Errorf("deleting %s %s: %w", tableName, id, err)
	}

	if tableName == types.ModelsTable {
		fmt.Printf("Deleted model %s and its elements\n", id)
	} else {
		fmt.Printf("Deleted element %s\n", id)
	}
	return nil
}

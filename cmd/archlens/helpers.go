// Shared helpers for commands that accept a model reference.
package main

import (
	"fmt"
	"os"

	"github.com/Reazonay/ArchitechLens/pkg/types"
)

// resolveModel turns a command argument into a model. A reference naming
// an existing file is loaded as a document; otherwise it is looked up in
// the store, first as a model ID, then as a model name.
func resolveModel(ref string) (*types.Model, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return loaders.Load(ref, "")
	}

	table, err := store.GetTable(types.ModelsTable)
	if err != nil {
		return nil, err
	}

	entity, err := table.Get(ref)
	if err == nil {
		return entity.(*types.Model), nil
	}

	matches, ferr := table.Fetch(map[string]any{"name": ref})
	if ferr != nil {
		return nil, ferr
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("model %q: %w", ref, types.ErrNotFound)
	case 1:
		return matches[0].(*types.Model), nil
	default:
		return nil, fmt.Errorf("model name %q is ambiguous (%d matches); use the model ID", ref, len(matches))
	}
}

package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Reazonay/ArchitechLens/pkg/types"
)

// Compile-time interface check.
var _ Loader = (*JSONLoader)(nil)

// JSONLoader loads model documents in JSON format.
type JSONLoader struct {
	log *zap.Logger
}

// NewJSONLoader returns a JSON loader that reports skipped elements
// through log.
func NewJSONLoader(log *zap.Logger) *JSONLoader {
	return &JSONLoader{log: log}
}

// Load reads and parses a JSON model document. A missing file or invalid
// JSON is an error; individual bad elements are skipped (see toModel).
func (l *JSONLoader) Load(path string) (*types.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}

	var doc modelDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing JSON model %s: %w", path, err)
	}

	return doc.toModel(l.log), nil
}

package loader

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Reazonay/ArchitechLens/pkg/types"
)

// Compile-time interface check.
var _ Loader = (*YAMLLoader)(nil)

// YAMLLoader loads model documents in YAML format. The document shape is
// the same as JSON; only the encoding differs.
type YAMLLoader struct {
	log *zap.Logger
}

// NewYAMLLoader returns a YAML loader that reports skipped elements
// through log.
func NewYAMLLoader(log *zap.Logger) *YAMLLoader {
	return &YAMLLoader{log: log}
}

// Load reads and parses a YAML model document.
func (l *YAMLLoader) Load(path string) (*types.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}

	var doc modelDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML model %s: %w", path, err)
	}

	return doc.toModel(l.log), nil
}

// Package loader reads architectural model documents from disk and turns
// them into types.Model values. Loaders share one document shape; formats
// differ only in the unmarshaler. Elements that fail validation are skipped
// with a logged warning so one bad record never sinks a whole model.
package loader

import (
	"errors"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Reazonay/ArchitechLens/pkg/types"
)

// Supported document formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for formats with no registered loader and
// file extensions that map to no format.
var ErrUnknownFormat = errors.New("unknown model format")

// Loader reads a model document from a file path.
type Loader interface {
	// Load parses the file at path into a validated Model.
	Load(path string) (*types.Model, error)
}

// Registry maps format names to loaders.
type Registry struct {
	loaders map[string]Loader
}

// NewRegistry returns a registry with the standard JSON and YAML loaders
// registered.
func NewRegistry(log *zap.Logger) *Registry {
	r := &Registry{loaders: make(map[string]Loader)}
	r.Register(FormatJSON, NewJSONLoader(log))
	r.Register(FormatYAML, NewYAMLLoader(log))
	return r
}

// Register adds or replaces the loader for a format.
func (r *Registry) Register(format string, l Loader) {
	r.loaders[strings.ToLower(format)] = l
}

// Get returns the loader for a format.
// Returns ErrUnknownFormat if no loader is registered.
func (r *Registry) Get(format string) (Loader, error) {
	l, ok := r.loaders[strings.ToLower(format)]
	if !ok {
		return nil, ErrUnknownFormat
	}
	return l, nil
}

// Load infers the format from the file extension when format is empty,
// then loads the model.
func (r *Registry) Load(path, format string) (*types.Model, error) {
	if format == "" {
		var err error
		format, err = FormatForPath(path)
		if err != nil {
			return nil, err
		}
	}
	l, err := r.Get(format)
	if err != nil {
		return nil, err
	}
	return l.Load(path)
}

// FormatForPath maps a file extension to a format name.
// Returns ErrUnknownFormat for unrecognized extensions.
func FormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", ErrUnknownFormat
	}
}

// Package logging builds the zap logger shared by the CLI and library
// packages. Output goes to stderr; an optional file sink duplicates every
// entry so long analysis runs leave a trace next to the model store.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	// Level is the minimum level as a string ("debug", "info", "warn",
	// "error"). Empty means "info".
	Level string

	// Verbose forces debug level regardless of Level.
	Verbose bool

	// FilePath, when non-empty, duplicates log output to this file.
	// Parent directories are created as needed.
	FilePath string
}

// New builds a zap logger from opts. The console sink uses the production
// encoder on stderr so command output on stdout stays machine-parseable.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		if err := level.Set(opts.Level); err != nil {
			return nil, fmt.Errorf("parsing log level %q: %w", opts.Level, err)
		}
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	if opts.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		config.OutputPaths = append(config.OutputPaths, opts.FilePath)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// Config loading for the archlens CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend  = "backend"
	cfgKeyDataDir  = "data_dir"
	cfgKeyLogLevel = "log_level"
	cfgKeyLogFile  = "log_file"

	defaultBackend = "sqlite"
)

// defaultConfigYAML is the content written to config.yaml on init.
const defaultConfigYAML = `# ArchitechLens configuration

# Backend selection
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Minimum log level: debug, info, warn, error
log_level: info

# Log file (optional; logs always go to stderr as well)
# log_file:
`

// loadConfig reads config.yaml from the config directory using Viper.
// When create is true (init command) the directory and a default
// config.yaml are created first. A missing config.yaml is not an error;
// defaults apply.
func loadConfig(configDir string, create bool) (*viper.Viper, error) {
	if create {
		if err := writeDefaultConfig(configDir); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyLogLevel, "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("reading %s: %w", filepath.Join(configDir, configFileExt), err)
	}
	return v, nil
}

// writeDefaultConfig creates the config directory and a default
// config.yaml if none exists yet. An existing file is never overwritten.
func writeDefaultConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

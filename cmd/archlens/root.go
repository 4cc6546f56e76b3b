// Root command for the archlens CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Reazonay/ArchitechLens/internal/loader"
	"github.com/Reazonay/ArchitechLens/internal/logging"
	"github.com/Reazonay/ArchitechLens/internal/paths"
	"github.com/Reazonay/ArchitechLens/internal/sqlite"
	"github.com/Reazonay/ArchitechLens/pkg/archlens"
	"github.com/Reazonay/ArchitechLens/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// Shared state initialized by PersistentPreRunE.
var (
	log     *zap.Logger
	store   types.Store
	loaders *loader.Registry
)

var rootCmd = &cobra.Command{
	Use:     "archlens",
	Short:   "ArchitechLens analyzes architectural building models",
	Version: archlens.Version,
	Long: `ArchitechLens loads architectural models (JSON or YAML documents of
typed elements with materials and geometry), stores them locally, and
answers questions about them: element counts, areas by type, volumes by
material, filtered element sets, and summary reports.`,
	PersistentPreRunE:  initApp,
	PersistentPostRunE: closeApp,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.archlens)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.archlens-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(watchCmd)
}

// initApp loads config, builds the logger, and attaches the model store.
func initApp(cmd *cobra.Command, args []string) error {
	// Version needs no store or logger.
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolving config dir: %w", err)
	}
	cfg, err := loadConfig(configDir, cmd.Name() == "init")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err = logging.New(logging.Options{
		Level:    cfg.GetString(cfgKeyLogLevel),
		Verbose:  flagVerbose,
		FilePath: cfg.GetString(cfgKeyLogFile),
	})
	if err != nil {
		return err
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return fmt.Errorf("resolving data dir: %w", err)
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(types.Config{
		Backend: cfg.GetString(cfgKeyBackend),
		DataDir: dataDir,
	}); err != nil {
		return fmt.Errorf("attaching model store: %w", err)
	}
	store = backend

	loaders = loader.NewRegistry(log)

	log.Debug("store attached",
		zap.String("config_dir", configDir),
		zap.String("data_dir", dataDir))
	return nil
}

// closeApp detaches the store and flushes the logger.
func closeApp(cmd *cobra.Command, args []string) error {
	var err error
	if store != nil {
		err = store.Detach()
	}
	if log != nil {
		_ = log.Sync()
	}
	return err
}

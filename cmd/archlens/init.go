package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration and model store",
	Long: `Init creates the configuration directory with a default config.yaml
and initializes the model store in the data directory. Running init in an
already-initialized project is safe; existing configuration is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Config and store are created by PersistentPreRunE.
		fmt.Println("ArchitechLens initialized")
		return nil
	},
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Reazonay/ArchitechLens/pkg/archlens"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("archlens v" + archlens.Version)
	},
}

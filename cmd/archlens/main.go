// Package main provides the archlens CLI: import architectural models into
// a local store, analyze and filter their elements, and generate reports.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Reazonay/ArchitechLens/internal/loader"
	"github.com/Reazonay/ArchitechLens/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit code: user errors (bad input,
// missing files, unknown IDs) exit 1, system errors exit 2.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrInvalidFilter),
		errors.Is(err, types.ErrTableNotFound),
		errors.Is(err, types.ErrInvalidElementType),
		errors.Is(err, types.ErrInvalidMaterial),
		errors.Is(err, types.ErrInvalidMeasure),
		errors.Is(err, loader.ErrUnknownFormat),
		errors.Is(err, fs.ErrNotExist):
		return exitUserError
	default:
		return exitSysError
	}
}

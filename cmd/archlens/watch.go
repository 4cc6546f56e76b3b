// Watch command re-analyzes a model document whenever it changes on disk.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Reazonay/ArchitechLens/internal/analysis"
	"github.com/Reazonay/ArchitechLens/internal/report"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-analyze a model document on every change",
	Long: `Watch monitors a model document and prints a fresh summary each
time the file is written. Useful while iterating on a model in an editor.
Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	analyzeFile := func() {
		model, err := loaders.Load(path, "")
		if err != nil {
			log.Warn("reload failed", zap.String("file", path), zap.Error(err))
			return
		}
		summary := analysis.NewAnalyzer(model, log).Summarize()
		if err := report.RenderSummary(os.Stdout, summary, flagJSON); err != nil {
			log.Warn("render failed", zap.Error(err))
		}
	}

	// Initial pass before the first change.
	analyzeFile()
	fmt.Fprintf(os.Stderr, "Watching %s (Ctrl-C to stop)\n", path)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				analyzeFile()
			}
			// Editors often replace files on save; re-add the path so
			// subsequent writes keep arriving.
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				if _, err := os.Stat(path); err == nil {
					_ = watcher.Add(path)
					analyzeFile()
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))
		case <-sigCh:
			fmt.Fprintln(os.Stderr, "Stopped watching")
			return nil
		}
	}
}

// Package report renders model analysis results: a markdown summary report
// for files, and table or JSON output for the console.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Reazonay/ArchitechLens/internal/analysis"
)

// Markdown renders the summary report document for a model.
// Section order and units follow the standard summary layout: counts by
// element type, total area by type (m²), total volume by material (m³).
func Markdown(s *analysis.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Architectural Model Summary Report: %s\n", s.ModelName)
	fmt.Fprintf(&b, "\n**Version:** %s\n", s.ModelVersion)
	fmt.Fprintf(&b, "**Date:** %s\n", s.ModelDate)
	fmt.Fprintf(&b, "**Total Elements:** %d\n", s.TotalElements)

	b.WriteString("\n## Element Counts by Type\n")
	b.WriteString("| Element Type | Count |\n")
	b.WriteString("|--------------|-------|\n")
	for _, k := range sortedKeys(s.CountByType) {
		fmt.Fprintf(&b, "| %s | %d |\n", displayName(k), s.CountByType[k])
	}

	b.WriteString("\n## Total Area by Element Type (m²)\n")
	b.WriteString("| Element Type | Total Area (m²) |\n")
	b.WriteString("|--------------|------------------|\n")
	for _, k := range sortedKeys(s.AreaByType) {
		fmt.Fprintf(&b, "| %s | %.2f |\n", displayName(k), s.AreaByType[k])
	}

	b.WriteString("\n## Total Volume by Material (m³)\n")
	b.WriteString("| Material | Total Volume (m³) |\n")
	b.WriteString("|----------|-------------------|\n")
	for _, k := range sortedKeys(s.VolumeByMaterial) {
		fmt.Fprintf(&b, "| %s | %.2f |\n", displayName(k), s.VolumeByMaterial[k])
	}

	return b.String()
}

// WriteMarkdown writes the summary report to path, creating parent
// directories. The write goes through a temp file and rename.
func WriteMarkdown(s *analysis.Summary, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".report-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(Markdown(s)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming report: %w", err)
	}
	return nil
}

// displayName turns an upper-case vocabulary value into a report label:
// "WALL" becomes "Wall", "FIRE_ZONE" becomes "Fire Zone".
func displayName(v string) string {
	words := strings.Split(strings.ToLower(v), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// sortedKeys returns map keys in lexical order for deterministic output.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

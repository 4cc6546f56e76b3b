package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Reazonay/ArchitechLens/internal/analysis"
	"github.com/Reazonay/ArchitechLens/pkg/types"
)

// RenderSummary writes a summary as console tables or JSON.
func RenderSummary(w io.Writer, s *analysis.Summary, asJSON bool) error {
	if asJSON {
		return RenderJSON(w, s)
	}

	fmt.Fprintf(w, "Model: %s (version %s, %s)\n", s.ModelName, s.ModelVersion, s.ModelDate)
	fmt.Fprintf(w, "Total elements: %d\n\n", s.TotalElements)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Element Type", "Count", "Total Area (m²)"})
	for _, k := range sortedKeys(s.CountByType) {
		area := "-"
		if a, ok := s.AreaByType[k]; ok {
			area = fmt.Sprintf("%.2f", a)
		}
		t.AppendRow(table.Row{displayName(k), s.CountByType[k], area})
	}
	t.Render()

	fmt.Fprintln(w)

	t = table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Material", "Total Volume (m³)"})
	for _, k := range sortedKeys(s.VolumeByMaterial) {
		t.AppendRow(table.Row{displayName(k), fmt.Sprintf("%.2f", s.VolumeByMaterial[k])})
	}
	t.Render()

	return nil
}

// RenderElements writes an element listing as a console table or JSON.
func RenderElements(w io.Writer, elements []*types.Element, asJSON bool) error {
	if asJSON {
		return RenderJSON(w, elements)
	}

	if len(elements) == 0 {
		fmt.Fprintln(w, "(0 elements)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Type", "Material", "Parent", "Area (m²)", "Volume (m³)"})
	for _, e := range elements {
		t.AppendRow(table.Row{
			e.ElementID,
			e.Name,
			displayName(e.Type),
			displayName(e.Material),
			e.ParentID,
			measureCell(e.Geometry.Area),
			measureCell(e.Geometry.Volume),
		})
	}
	t.Render()
	return nil
}

// RenderModels writes a model listing as a console table or JSON.
func RenderModels(w io.Writer, models []*types.Model, asJSON bool) error {
	if asJSON {
		return RenderJSON(w, models)
	}

	if len(models) == 0 {
		fmt.Fprintln(w, "(0 models)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Version", "Date", "Elements"})
	for _, m := range models {
		t.AppendRow(table.Row{m.ModelID, m.Name, m.Version, m.Date, len(m.Elements)})
	}
	t.Render()
	return nil
}

// RenderJSON writes v as indented JSON.
func RenderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// measureCell formats an optional measure for table output.
func measureCell(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

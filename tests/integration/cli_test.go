// CLI integration tests covering the full workflow: init, import, list,
// get, analyze, filter, report, export, delete.
package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// demoModelJSON is a small but complete model document: a building, a
// floor, walls of mixed materials, a window, and a space.
const demoModelJSON = `{
  "metadata": {"name": "Demo Building", "version": "1.0", "date": "2023-10-27", "project_id": "AL-DEMO-001"},
  "elements": [
    {"id": "b_001", "name": "Main Building", "type": "BUILDING", "material": "OTHER",
     "geometry": {"area": 300.0, "height": 10.0, "volume": 3000.0}},
    {"id": "f_001", "name": "Ground Floor", "type": "FLOOR", "material": "CONCRETE",
     "properties": {"level": 0},
     "geometry": {"area": 100.0, "thickness": 0.3, "volume": 30.0}, "parent_id": "b_001"},
    {"id": "w_001", "name": "Exterior Wall North", "type": "WALL", "material": "BRICK",
     "properties": {"fire_rating": "F90"},
     "geometry": {"length": 10.0, "height": 3.0, "thickness": 0.3, "area": 30.0, "volume": 9.0}, "parent_id": "f_001"},
    {"id": "w_002", "name": "Interior Wall Main", "type": "WALL", "material": "PLASTER",
     "properties": {"sound_rating_db": 45},
     "geometry": {"length": 5.0, "height": 3.0, "thickness": 0.1, "area": 15.0, "volume": 1.5}, "parent_id": "f_001"},
    {"id": "win_001", "name": "Main Window", "type": "WINDOW", "material": "GLASS",
     "geometry": {"width": 2.0, "height": 1.5, "area": 3.0}, "parent_id": "w_001"},
    {"id": "space_office", "name": "Office Space 101", "type": "SPACE", "material": "OTHER",
     "properties": {"occupancy_load": 4},
     "geometry": {"area": 25.0, "height": 2.8, "volume": 70.0}, "parent_id": "f_001"}
  ]
}`

// modelJSON mirrors the JSON shape of a stored model in CLI output.
type modelJSON struct {
	ModelID  string `json:"ModelID"`
	Name     string `json:"Name"`
	Version  string `json:"Version"`
	Elements []struct {
		ElementID string `json:"ElementID"`
		Type      string `json:"Type"`
		Material  string `json:"Material"`
	} `json:"Elements"`
}

// summaryJSON mirrors the JSON shape of analyze output.
type summaryJSON struct {
	ModelName        string             `json:"ModelName"`
	TotalElements    int                `json:"TotalElements"`
	CountByType      map[string]int     `json:"CountByType"`
	AreaByType       map[string]float64 `json:"AreaByType"`
	VolumeByMaterial map[string]float64 `json:"VolumeByMaterial"`
}

// importDemo imports the demo model and returns its store ID.
func importDemo(t *testing.T, env *TestEnv) string {
	t.Helper()
	path := env.WriteModel("demo_model.json", demoModelJSON)
	result := env.MustRun("import", path)

	fields := strings.Fields(result.Stdout)
	if len(fields) == 0 {
		t.Fatalf("import produced no output")
	}
	return fields[0]
}

func TestInit(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRun("init")
	if !strings.Contains(result.Stdout, "initialized") {
		t.Errorf("unexpected init output: %q", result.Stdout)
	}

	if _, err := os.Stat(filepath.Join(env.ConfigDir, "config.yaml")); err != nil {
		t.Error("config.yaml not created")
	}
	if _, err := os.Stat(filepath.Join(env.DataDir, "archlens.db")); err != nil {
		t.Error("store database not created")
	}
}

func TestVersion(t *testing.T) {
	env := NewTestEnv(t)
	result := env.MustRun("version")
	if !strings.Contains(result.Stdout, "archlens v") {
		t.Errorf("unexpected version output: %q", result.Stdout)
	}
}

func TestImportAndGet(t *testing.T) {
	env := NewTestEnv(t)
	id := importDemo(t, env)

	result := env.MustRun("--json", "get", "models", id)
	model := ParseJSON[modelJSON](t, result.Stdout)

	if model.Name != "Demo Building" {
		t.Errorf("model name: got %q", model.Name)
	}
	if len(model.Elements) != 6 {
		t.Errorf("element count: got %d, want 6", len(model.Elements))
	}
}

func TestImportSkipsBadElements(t *testing.T) {
	env := NewTestEnv(t)
	path := env.WriteModel("partial.json", `{
      "metadata": {"name": "Partial"},
      "elements": [
        {"id": "w_001", "type": "WALL", "material": "BRICK"},
        {"id": "x_001", "type": "CHIMNEY"},
        {"type": "WALL"}
      ]
    }`)

	result := env.MustRun("import", path)
	if !strings.Contains(result.Stdout, "1 elements") {
		t.Errorf("expected 1 element imported, output: %q", result.Stdout)
	}
}

func TestImportUserErrors(t *testing.T) {
	env := NewTestEnv(t)

	t.Run("missing file", func(t *testing.T) {
		result := env.Run("import", filepath.Join(env.WorkDir, "absent.json"))
		if result.ExitCode != 1 {
			t.Errorf("missing file: exit %d, want 1", result.ExitCode)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		path := env.WriteModel("model.ifc", `{"elements": []}`)
		result := env.Run("import", path)
		if result.ExitCode != 1 {
			t.Errorf("unknown extension: exit %d, want 1", result.ExitCode)
		}

		result = env.Run("import", "--format", "ifc", path)
		if result.ExitCode != 1 {
			t.Errorf("unknown --format: exit %d, want 1", result.ExitCode)
		}
	})
}

func TestImportMultipleFiles(t *testing.T) {
	env := NewTestEnv(t)
	a := env.WriteModel("a.json", `{"metadata":{"name":"A"},"elements":[]}`)
	b := env.WriteModel("b.json", `{"metadata":{"name":"B"},"elements":[]}`)

	env.MustRun("import", a, b)

	result := env.MustRun("--json", "list", "models")
	models := ParseJSON[[]modelJSON](t, result.Stdout)
	if len(models) != 2 {
		t.Fatalf("model count: got %d, want 2", len(models))
	}
}

func TestListElementsFiltered(t *testing.T) {
	env := NewTestEnv(t)
	id := importDemo(t, env)

	result := env.MustRun("--json", "list", "elements", "model_id="+id, "type=WALL")
	elements := ParseJSON[[]map[string]any](t, result.Stdout)
	if len(elements) != 2 {
		t.Fatalf("wall count: got %d, want 2", len(elements))
	}

	// Unknown filter key is a user error.
	bad := env.Run("list", "elements", "height=3")
	if bad.ExitCode != 1 {
		t.Errorf("unknown filter key: exit %d, want 1", bad.ExitCode)
	}
}

func TestAnalyzeStoredModel(t *testing.T) {
	env := NewTestEnv(t)
	id := importDemo(t, env)

	result := env.MustRun("--json", "analyze", id)
	summary := ParseJSON[summaryJSON](t, result.Stdout)

	if summary.ModelName != "Demo Building" {
		t.Errorf("model name: got %q", summary.ModelName)
	}
	if summary.TotalElements != 6 {
		t.Errorf("total elements: got %d, want 6", summary.TotalElements)
	}
	if summary.CountByType["WALL"] != 2 {
		t.Errorf("wall count: got %d, want 2", summary.CountByType["WALL"])
	}
	if got := summary.AreaByType["WALL"]; got != 45.0 {
		t.Errorf("wall area: got %v, want 45", got)
	}
	if got := summary.VolumeByMaterial["BRICK"]; got != 9.0 {
		t.Errorf("brick volume: got %v, want 9", got)
	}
}

func TestAnalyzeByNameAndFile(t *testing.T) {
	env := NewTestEnv(t)
	path := env.WriteModel("demo_model.json", demoModelJSON)

	// Straight from the file, no store involved.
	result := env.MustRun("--json", "analyze", path)
	summary := ParseJSON[summaryJSON](t, result.Stdout)
	if summary.TotalElements != 6 {
		t.Errorf("file analyze: got %d elements, want 6", summary.TotalElements)
	}

	// By stored name after import.
	env.MustRun("import", path)
	result = env.MustRun("--json", "analyze", "Demo Building")
	summary = ParseJSON[summaryJSON](t, result.Stdout)
	if summary.ModelName != "Demo Building" {
		t.Errorf("name analyze: got %q", summary.ModelName)
	}
}

func TestFilterCommand(t *testing.T) {
	env := NewTestEnv(t)
	id := importDemo(t, env)

	result := env.MustRun("--json", "filter", id, "--type", "WALL", "--material", "BRICK")
	elements := ParseJSON[[]map[string]any](t, result.Stdout)
	if len(elements) != 1 {
		t.Fatalf("brick walls: got %d, want 1", len(elements))
	}

	result = env.MustRun("--json", "filter", id, "--measure", "area", "--min", "25")
	elements = ParseJSON[[]map[string]any](t, result.Stdout)
	// building 300, floor 100, wall 30, space 25.
	if len(elements) != 4 {
		t.Fatalf("large elements: got %d, want 4", len(elements))
	}

	// Numeric property values match despite arriving as CLI strings.
	result = env.MustRun("--json", "filter", id, "--property", "occupancy_load=4")
	elements = ParseJSON[[]map[string]any](t, result.Stdout)
	if len(elements) != 1 {
		t.Fatalf("occupancy filter: got %d, want 1", len(elements))
	}

	bad := env.Run("filter", id, "--measure", "diameter")
	if bad.ExitCode != 1 {
		t.Errorf("bad measure: exit %d, want 1", bad.ExitCode)
	}
}

func TestReportCommand(t *testing.T) {
	env := NewTestEnv(t)
	id := importDemo(t, env)

	out := filepath.Join(env.WorkDir, "reports", "summary.md")
	env.MustRun("report", id, "-o", out)

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	content := string(data)
	for _, want := range []string{
		"# Architectural Model Summary Report: Demo Building",
		"**Total Elements:** 6",
		"| Wall | 2 |",
		"| Brick | 9.00 |",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestExportRoundTrip(t *testing.T) {
	env := NewTestEnv(t)
	id := importDemo(t, env)

	out := filepath.Join(env.WorkDir, "exported.json")
	env.MustRun("export", id, "-o", out)

	// Re-import the exported document; the model should be intact.
	result := env.MustRun("import", out)
	if !strings.Contains(result.Stdout, "6 elements") {
		t.Errorf("re-import: %q", result.Stdout)
	}
}

func TestDeleteCascades(t *testing.T) {
	env := NewTestEnv(t)
	id := importDemo(t, env)

	env.MustRun("delete", "models", id)

	result := env.Run("get", "models", id)
	if result.ExitCode != 1 {
		t.Errorf("get deleted model: exit %d, want 1", result.ExitCode)
	}

	listed := env.MustRun("--json", "list", "elements", "model_id="+id)
	elements := ParseJSON[[]map[string]any](t, listed.Stdout)
	if len(elements) != 0 {
		t.Errorf("elements not cascaded: %d remain", len(elements))
	}
}

func TestGetUnknownTableFails(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRun("init")

	result := env.Run("get", "walls", "x")
	if result.ExitCode != 1 {
		t.Errorf("unknown table: exit %d, want 1", result.ExitCode)
	}
}

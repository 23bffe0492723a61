package eval

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/linuxmatters/audiosteg/internal/stego"
)

func TestWalkDatasetFiltersHiddenDirsAndExtension(t *testing.T) {
	root := t.TempDir()
	mustMkdirAll(t, filepath.Join(root, "ds1", "cat1"))
	mustMkdirAll(t, filepath.Join(root, "ds1", ".hidden"))
	mustWriteFile(t, filepath.Join(root, "ds1", "cat1", "a.wav"))
	mustWriteFile(t, filepath.Join(root, "ds1", "cat1", "b.WAV"))
	mustWriteFile(t, filepath.Join(root, "ds1", "cat1", "notes.txt"))
	mustWriteFile(t, filepath.Join(root, "ds1", ".hidden", "c.wav"))

	files, err := walkDataset(root)
	if err != nil {
		t.Fatalf("walkDataset: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %+v", len(files), files)
	}
	for _, f := range files {
		if f.Dataset != "ds1" || f.Category != "cat1" {
			t.Fatalf("unexpected dataset/category: %+v", f)
		}
	}
}

func TestParamsToJSONDeterministic(t *testing.T) {
	p := stego.SideParams{"l": 16, "depth": 2, "only_needed": false}
	a := paramsToJSON(p)
	b := paramsToJSON(p)
	if a != b {
		t.Fatalf("paramsToJSON not deterministic: %q vs %q", a, b)
	}
	if a != `{"depth":2,"l":16,"only_needed":false}` {
		t.Fatalf("unexpected JSON: %q", a)
	}
}

func TestFormatFloatSpecialValues(t *testing.T) {
	if got := formatFloat(math.NaN()); got != "NaN" {
		t.Fatalf("NaN formatted as %q", got)
	}
	if got := formatFloat(math.Inf(1)); got != "Inf" {
		t.Fatalf("+Inf formatted as %q", got)
	}
	if got := formatFloat(math.Inf(-1)); got != "-Inf" {
		t.Fatalf("-Inf formatted as %q", got)
	}
	if got := formatFloat(1.5); got != "1.500000" {
		t.Fatalf("1.5 formatted as %q", got)
	}
}

func TestParamGridCoversEveryMethod(t *testing.T) {
	for _, tag := range stego.AllTags {
		grid := paramGrid(tag, false)
		if len(grid) == 0 {
			t.Fatalf("empty grid for method %s", tag)
		}
		extGrid := paramGrid(tag, true)
		if len(extGrid) < len(grid) {
			t.Fatalf("extended grid for %s is smaller than basic grid", tag)
		}
	}
}

func mustMkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func mustWriteFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

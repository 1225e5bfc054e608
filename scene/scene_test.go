package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arl/gogeo/f32/d3"
)

func TestDefaultBuildsNavmesh(t *testing.T) {
	s := Default()
	nav, err := s.Build(".")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(nav.Polygons()) != 12 {
		t.Errorf("default scene: got %d polygons, want 12", len(nav.Polygons()))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yml")

	s := Default()
	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Settings != s.Settings {
		t.Errorf("round trip settings = %+v, want %+v", loaded.Settings, s.Settings)
	}
	if len(loaded.Brushes) != len(s.Brushes) {
		t.Errorf("round trip brush count = %d, want %d", len(loaded.Brushes), len(s.Brushes))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("Load of missing file: got nil error")
	}
}

func TestUnknownBrushKind(t *testing.T) {
	s := &Scene{Brushes: []Brush{{Kind: "teapot"}}}
	if _, err := s.Build("."); err == nil {
		t.Error("Build with unknown brush kind: got nil error")
	}
}

func TestBuildScalesLocallyThenTranslates(t *testing.T) {
	s := &Scene{
		Settings: Settings{MaxSlopeCosine: 0.707, AgentRadius: 0},
		Brushes: []Brush{
			{Kind: "plane", Translate: [3]float32{10, 5, -4}, Scale: [3]float32{2, 1, 3}},
		},
	}

	nav, err := s.Build(".")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Plane()'s local corners are (+-1, 0, +-1); scaling locally by (2, 1, 3)
	// then translating by (10, 5, -4) must place them at (10 +- 2, 5, -4 +- 3),
	// not at (10 +- 1, 5, -4 +- 1)*(2, 1, 3) which would scale the offset too.
	want := []d3.Vec3{
		{8, 5, -7}, {8, 5, -1}, {12, 5, -7}, {12, 5, -1},
	}

	for _, w := range want {
		found := false
		for _, f := range nav.Polygons() {
			for _, p := range f.Points() {
				if p.Approx(w) {
					found = true
				}
			}
		}
		if !found {
			t.Errorf("expected world vertex %v not found among built polygons", w)
		}
	}
}

func TestObjBrushResolvesRelativeToBaseDir(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "tri.obj")
	obj := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	if err := os.WriteFile(objPath, []byte(obj), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := &Scene{Brushes: []Brush{{Kind: "obj", Path: "tri.obj"}}}
	nav, err := s.Build(dir)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(nav.Polygons()) != 1 {
		t.Errorf("obj scene: got %d polygons, want 1", len(nav.Polygons()))
	}
}

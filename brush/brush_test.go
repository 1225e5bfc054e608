package brush

import (
	"testing"

	"github.com/ten3roberts/constructive/xform"
)

func TestCubeFaceCount(t *testing.T) {
	c := Cube()
	if got := len(c.Faces()); got != 12 {
		t.Errorf("cube: got %d faces, want 12", got)
	}
}

func TestCubeOutwardNormals(t *testing.T) {
	for _, f := range Cube().Faces() {
		centroid := f.P1.Add(f.P2).Add(f.P3).Scale(1.0 / 3.0)
		if f.Normal().Dot(centroid) <= 0 {
			t.Errorf("face %v: normal %v does not point outward from origin", f, f.Normal())
		}
	}
}

func TestPlaneFaceCount(t *testing.T) {
	if got := len(Plane().Faces()); got != 2 {
		t.Errorf("plane: got %d faces, want 2", got)
	}
}

func TestUVSphereVerticesOnUnitSphere(t *testing.T) {
	for _, f := range UVSphere(16, 12).Faces() {
		for _, p := range f.Points() {
			if l := p.Len(); l < 0.999 || l > 1.001 {
				t.Errorf("uv sphere vertex %v not on unit sphere, len=%v", p, l)
			}
		}
	}
}

func TestUVSphereDefaults(t *testing.T) {
	a := UVSphere(0, 0)
	b := UVSphere(16, 12)
	if len(a.Faces()) != len(b.Faces()) {
		t.Errorf("UVSphere(0,0) should default to 16/12: got %d faces, want %d", len(a.Faces()), len(b.Faces()))
	}
}

func TestTransformMovesCube(t *testing.T) {
	c := Cube().WithTransform(xform.Translation(5, 0, 0))
	for _, f := range c.Faces() {
		for _, p := range f.Points() {
			if p.X() < 3.9 || p.X() > 6.1 {
				t.Errorf("translated cube vertex out of range: %v", p)
			}
		}
	}
}

func TestBrushNewWraps(t *testing.T) {
	faces := Cube().Faces()
	b := New(faces)
	if len(b.Faces()) != len(faces) {
		t.Errorf("New: got %d faces, want %d", len(b.Faces()), len(faces))
	}
}

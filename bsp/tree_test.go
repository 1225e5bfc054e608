package bsp

import (
	"testing"

	"github.com/arl/gogeo/f32/d3"
	"github.com/ten3roberts/constructive/geom"
)

// cube returns the 12 outward CCW triangles of an axis-aligned unit cube
// (side 2, centered at origin) translated by (dx, dy, dz).
func cube(dx, dy, dz float32) []geom.Face {
	v := func(x, y, z float32) d3.Vec3 {
		return d3.Vec3{x + dx, y + dy, z + dz}
	}

	quads := [][4]d3.Vec3{
		// +X, -X
		{v(1, -1, -1), v(1, 1, -1), v(1, 1, 1), v(1, -1, 1)},
		{v(-1, -1, 1), v(-1, 1, 1), v(-1, 1, -1), v(-1, -1, -1)},
		// +Y, -Y
		{v(-1, 1, -1), v(-1, 1, 1), v(1, 1, 1), v(1, 1, -1)},
		{v(-1, -1, 1), v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1)},
		// +Z, -Z
		{v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1), v(-1, -1, 1)},
		{v(-1, -1, -1), v(-1, 1, -1), v(1, 1, -1), v(1, -1, -1)},
	}

	var faces []geom.Face
	for _, q := range quads {
		faces = append(faces, geom.NewFace(q[0], q[1], q[2]))
		faces = append(faces, geom.NewFace(q[0], q[2], q[3]))
	}
	return faces
}

func TestBuildEmpty(t *testing.T) {
	tr := Build(nil)
	if polys := tr.Polygons(); len(polys) != 0 {
		t.Fatalf("empty build: got %d polygons, want 0", len(polys))
	}
}

func TestInvertInvolution(t *testing.T) {
	tr := Build(cube(0, 0, 0))
	before := tr.Polygons()

	tr.Invert()
	tr.Invert()
	after := tr.Polygons()

	if len(before) != len(after) {
		t.Fatalf("polygon count changed across double invert: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if !before[i].P1.Approx(after[i].P1) || !before[i].P2.Approx(after[i].P2) || !before[i].P3.Approx(after[i].P3) {
			t.Errorf("polygon %d changed across double invert: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestCubeCubeUnionRemovesSharedWall(t *testing.T) {
	a := Build(cube(0, 0, 0))
	b := Build(cube(2, 0, 0))

	u := a.Union(b)
	polys := u.Polygons()

	// Two cubes sharing the x=1 wall: 12 + 12 - 4 - 4 triangles on the
	// interior face of each, per the concrete cube-cube union scenario.
	if len(polys) != 16 {
		t.Errorf("cube-cube union: got %d triangles, want 16", len(polys))
	}

	for _, f := range polys {
		n := f.Normal()
		if n.X() > 0.99 {
			mid := f.P1.Add(f.P2).Add(f.P3).Scale(1.0 / 3.0)
			if mid.X() > 0.9 && mid.X() < 1.1 {
				t.Errorf("shared wall triangle survived union: %v", f)
			}
		}
	}
}

func TestUnionIdempotent(t *testing.T) {
	a := Build(cube(0, 0, 0))
	aCopy := Build(cube(0, 0, 0))

	wantArea := triArea(cube(0, 0, 0))
	u := a.Union(aCopy)
	gotArea := triArea(u.Polygons())

	// Different triangulation is fine; the union of a solid with itself must
	// still cover the same total boundary area.
	if diff := gotArea - wantArea; diff > 1e-2 || diff < -1e-2 {
		t.Errorf("A.union(A) area = %v, want %v", gotArea, wantArea)
	}
}

func triArea(faces []geom.Face) float32 {
	var total float32
	for _, f := range faces {
		total += f.P1.Sub(f.P3).Cross(f.P2.Sub(f.P3)).Len() / 2
	}
	return total
}

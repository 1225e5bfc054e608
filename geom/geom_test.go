package geom

import (
	"testing"

	"github.com/arl/gogeo/f32/d3"
)

func TestFaceNormalUnit(t *testing.T) {
	f := NewFace(
		d3.Vec3{0, 0, 0},
		d3.Vec3{1, 0, 0},
		d3.Vec3{0, 0, 1},
	)
	n := f.Normal()
	if l := n.Len(); l < 0.999 || l > 1.001 {
		t.Errorf("want unit normal, got length %v", l)
	}
}

func TestPlaneClassifyFace(t *testing.T) {
	p := NewPlane(d3.Vec3{0, 1, 0}, 0)

	above := NewFace(d3.Vec3{0, 1, 0}, d3.Vec3{1, 1, 0}, d3.Vec3{0, 1, 1})
	if got := p.ClassifyFace(above); got != Front {
		t.Errorf("want Front, got %v", got)
	}

	below := NewFace(d3.Vec3{0, -1, 0}, d3.Vec3{1, -1, 0}, d3.Vec3{0, -1, 1})
	if got := p.ClassifyFace(below); got != Back {
		t.Errorf("want Back, got %v", got)
	}

	straddle := NewFace(d3.Vec3{0, -1, 0}, d3.Vec3{1, 1, 0}, d3.Vec3{0, -1, 1})
	if got := p.ClassifyFace(straddle); got != Intersect {
		t.Errorf("want Intersect, got %v", got)
	}
}

func TestSplitFaceConservesArea(t *testing.T) {
	// A triangle straddling the XZ plane, one vertex above and two below.
	f := NewFace(
		d3.Vec3{0, 1, 0},
		d3.Vec3{-1, -1, 0},
		d3.Vec3{1, -1, 0},
	)
	p := NewPlane(d3.Vec3{0, 1, 0}, 0)

	var front, back []Face
	front, back = p.SplitFace(f, front, back)

	if len(front) == 0 || len(back) == 0 {
		t.Fatalf("expected fragments on both sides, got front=%d back=%d", len(front), len(back))
	}

	total := triArea(f)
	var got float32
	for _, fr := range front {
		got += triArea(fr)
	}
	for _, bk := range back {
		got += triArea(bk)
	}

	if diff := got - total; diff > 1e-3 || diff < -1e-3 {
		t.Errorf("fragment area %v, want %v", got, total)
	}
}

func triArea(f Face) float32 {
	return f.P1.Sub(f.P3).Cross(f.P2.Sub(f.P3)).Len() / 2
}

func TestSpanIntersect(t *testing.T) {
	a := NewSpan(0, 2)
	b := NewSpan(1, 3)
	got := a.Intersect(b)
	if got.Min != 1 || got.Max != 2 {
		t.Errorf("got %v, want [1, 2]", got)
	}

	c := NewSpan(5, 6)
	if !a.Intersect(c).IsEmpty() {
		t.Errorf("disjoint spans should intersect empty")
	}
}

func TestEdgeIntersectRayClipped(t *testing.T) {
	e := NewEdge3D(d3.Vec3{-1, 0, 0}, d3.Vec3{1, 0, 0})
	p, ok := e.IntersectRayClipped(d3.Vec3{0, 0, -1}, d3.Vec3{0, 0, 1})
	if !ok {
		t.Fatal("expected a hit")
	}
	if p.X() < -0.001 || p.X() > 0.001 {
		t.Errorf("want crossing near x=0, got %v", p)
	}
}

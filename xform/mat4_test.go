package xform

import (
	"testing"

	"github.com/arl/gogeo/f32/d3"
)

func TestTransformPoint3(t *testing.T) {
	m := Translation(1, 2, 3).Mult(ScaleXYZ(2, 2, 2))
	got := m.TransformPoint3(d3.Vec3{1, 0, 0})
	// translate (1,0,0) by (1,2,3) -> (2,2,3), then scale by 2 -> (4,4,6)
	want := d3.Vec3{4, 4, 6}
	if got.X() != want.X() || got.Y() != want.Y() || got.Z() != want.Z() {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIdentityIsNoOp(t *testing.T) {
	p := d3.Vec3{3, -1, 7}
	got := Identity().TransformPoint3(p)
	if !got.Approx(p) {
		t.Errorf("identity transform changed point: got %v, want %v", got, p)
	}
}

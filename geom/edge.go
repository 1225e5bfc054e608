package geom

import (
	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/math32"
)

// Edge3D is a directed segment between two points.
type Edge3D struct {
	P1, P2 d3.Vec3
}

// NewEdge3D returns the edge (p1, p2).
func NewEdge3D(p1, p2 d3.Vec3) Edge3D {
	return Edge3D{P1: p1, P2: p2}
}

// IntersectRayClipped finds where the line through e crosses the vertical
// plane containing the ray (origin, dir) — i.e. the plane through origin
// and origin+dir whose normal is horizontal — then clamps the resulting
// parameter along e to [0, 1] so the returned point always lies on the
// segment itself.
//
// It reports false when dir has no horizontal component (so no vertical
// plane is defined by it) or when e is parallel to the cut plane.
func (e Edge3D) IntersectRayClipped(origin, dir d3.Vec3) (d3.Vec3, bool) {
	// The cut plane contains the world-up axis and the ray; its normal is
	// horizontal and perpendicular to dir.
	normal := dir.Cross(d3.Vec3{0, 1, 0})
	if normal.LenSqr() <= Tolerance*Tolerance {
		// dir is vertical. The fallback normal is built from the same
		// horizontal component of dir, so it is just as short and the ray
		// reports a miss.
		normal = d3.Vec3{-dir.Z(), 0, dir.X()}
		if normal.LenSqr() <= Tolerance*Tolerance {
			return d3.Vec3{}, false
		}
	}
	normal.Normalize()
	distance := normal.Dot(origin)

	edgeDir := e.P2.Sub(e.P1)
	denom := normal.Dot(edgeDir)
	if math32.Abs(denom) <= Tolerance {
		return d3.Vec3{}, false
	}

	t := (distance - normal.Dot(e.P1)) / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return e.P1.Lerp(e.P2, t), true
}

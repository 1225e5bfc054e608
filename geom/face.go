package geom

import "github.com/arl/gogeo/f32/d3"

// Face is an ordered, CCW-wound (relative to its outward normal) triangle.
type Face struct {
	P1, P2, P3 d3.Vec3
}

// NewFace returns the face (p1, p2, p3), asserting that every vertex and
// the resulting normal are finite.
func NewFace(p1, p2, p3 d3.Vec3) Face {
	assertFinite(p1, "face: p1 is not finite")
	assertFinite(p2, "face: p2 is not finite")
	assertFinite(p3, "face: p3 is not finite")
	f := Face{P1: p1, P2: p2, P3: p3}
	assertFinite(f.Normal(), "face: degenerate normal")
	return f
}

// Normal returns the face's outward-facing unit normal, derived from its
// winding order.
func (f Face) Normal() d3.Vec3 {
	n := f.P1.Sub(f.P3).Cross(f.P2.Sub(f.P3))
	n.Normalize()
	return n
}

// Points returns the three vertices in winding order.
func (f Face) Points() [3]d3.Vec3 {
	return [3]d3.Vec3{f.P1, f.P2, f.P3}
}

// Edges returns the face's three directed edges in winding order.
func (f Face) Edges() [3]Edge3D {
	return [3]Edge3D{
		{P1: f.P1, P2: f.P2},
		{P1: f.P2, P2: f.P3},
		{P1: f.P3, P2: f.P1},
	}
}

// Flip reverses the face's winding, negating its normal.
func (f Face) Flip() Face {
	return NewFace(f.P3, f.P2, f.P1)
}

// Map returns the face with fn applied to each vertex.
func (f Face) Map(fn func(d3.Vec3) d3.Vec3) Face {
	return NewFace(fn(f.P1), fn(f.P2), fn(f.P3))
}

// DistanceToPlane returns the signed distance from point to the plane
// containing f.
func (f Face) DistanceToPlane(point d3.Vec3) float32 {
	n := f.Normal()
	return n.Dot(point) - f.P1.Dot(n)
}

// ContainsPoint reports whether point, assumed to lie in f's plane, is
// inside the triangle using the barycentric in-plane edge test.
func (f Face) ContainsPoint(point d3.Vec3) bool {
	n := f.Normal()

	ab := point.Sub(f.P1).Dot(f.P2.Sub(f.P1).Cross(n))
	bc := point.Sub(f.P2).Dot(f.P3.Sub(f.P2).Cross(n))
	ca := point.Sub(f.P3).Dot(f.P1.Sub(f.P3).Cross(n))

	return ab <= 0 && bc <= 0 && ca <= 0
}

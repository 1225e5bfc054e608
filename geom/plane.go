// Package geom provides the tolerance-aware plane and face primitives that
// the BSP tree, brush, navmesh and pathfinding packages build on.
package geom

import (
	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/math32"
)

// Tolerance is the signed-distance slop used to classify a vertex as
// coplanar with a plane, and to suppress degenerate polygon splits.
//
// Scenes with coordinates far larger than the ones this library was tuned
// against (~10^4 and up) will need a larger tolerance; it is not
// auto-scaled.
const Tolerance float32 = 1e-5

// Plane is a half-space boundary: the set of points p where
// p.Dot(Normal) - Distance == 0.
type Plane struct {
	Normal   d3.Vec3
	Distance float32
}

// NewPlane returns the plane with the given unit normal and distance from
// the origin.
func NewPlane(normal d3.Vec3, distance float32) Plane {
	return Plane{Normal: normal, Distance: distance}
}

// PlaneFromFace returns the plane containing face, oriented the same way as
// its normal.
func PlaneFromFace(face Face) Plane {
	normal := face.Normal()
	assertFinite(normal, "plane from face: normal is not finite")
	return Plane{Normal: normal, Distance: face.P1.Dot(normal)}
}

// DistanceToPoint returns the signed distance from p to the plane; positive
// values are in front of the plane, negative behind.
func (p Plane) DistanceToPoint(point d3.Vec3) float32 {
	return point.Dot(p.Normal) - p.Distance
}

// IntersectRay returns the ray parameter t at which the ray
// (rayOrigin, rayDirection) crosses the plane, and true if it does so at or
// ahead of the origin. A ray parallel to the plane never intersects it.
func (p Plane) IntersectRay(rayOrigin, rayDirection d3.Vec3) (float32, bool) {
	denom := p.Normal.Dot(rayDirection)
	if math32.Abs(denom) <= math32MinNormal {
		return 0, false
	}

	t := p.Normal.Scale(p.Distance).Sub(rayOrigin).Dot(p.Normal) / denom
	if t >= 0 {
		return t, true
	}
	return 0, false
}

// math32MinNormal mirrors float32.EPSILON's role in the original source: the
// smallest denominator magnitude treated as non-zero.
const math32MinNormal = 1.1920929e-7

// FaceClass is the result of classifying a face against a plane.
type FaceClass int

const (
	// Front indicates every vertex of the face is on or in front of the plane.
	Front FaceClass = iota
	// Back indicates every vertex of the face is on or behind the plane.
	Back
	// CoplanarFront indicates the face lies in the plane, facing the same way.
	CoplanarFront
	// CoplanarBack indicates the face lies in the plane, facing the opposite way.
	CoplanarBack
	// Intersect indicates the face straddles the plane.
	Intersect
)

// ClassifyFace classifies face against p.
func (p Plane) ClassifyFace(face Face) FaceClass {
	d1 := p.DistanceToPoint(face.P1)
	d2 := p.DistanceToPoint(face.P2)
	d3v := p.DistanceToPoint(face.P3)

	if math32.Abs(d1) <= Tolerance && math32.Abs(d2) <= Tolerance && math32.Abs(d3v) <= Tolerance {
		if face.Normal().Dot(p.Normal) > 0 {
			return CoplanarFront
		}
		return CoplanarBack
	}

	if d1 >= -Tolerance && d2 >= -Tolerance && d3v >= -Tolerance {
		return Front
	}
	if d1 <= Tolerance && d2 <= Tolerance && d3v <= Tolerance {
		return Back
	}
	return Intersect
}

// taggedVertex pairs a point with its signed distance to the splitting plane.
type taggedVertex struct {
	point    d3.Vec3
	distance float32
}

// SplitFace splits face against p, appending fragments with the original
// face's winding to front and back. Under the debug build tag it panics if
// face does not actually straddle the plane in one of the two ways the
// source geometry produces: exactly one coplanar vertex with the other two
// split front/back, or two vertices on one side and one on the other.
// Without that tag the check is compiled out.
func (p Plane) SplitFace(face Face, front, back []Face) ([]Face, []Face) {
	var (
		frontV, backV, coplanarV [3]taggedVertex
		frontN, backN, coplanarN int
	)

	for _, pt := range face.Points() {
		d := p.DistanceToPoint(pt)
		switch {
		case d >= Tolerance:
			frontV[frontN] = taggedVertex{pt, d}
			frontN++
		case d <= -Tolerance:
			backV[backN] = taggedVertex{pt, d}
			backN++
		default:
			coplanarV[coplanarN] = taggedVertex{pt, d}
			coplanarN++
		}
	}

	normal := face.Normal()
	orient := func(f Face) Face {
		if f.Normal().Dot(normal) < 0 {
			return f.Flip()
		}
		return f
	}

	switch {
	case coplanarN == 1:
		assertTrue(frontN == 1 && backN == 1, "split_face: lone coplanar vertex must split the remaining two front/back")
		b, f, c := backV[0], frontV[0], coplanarV[0].point
		i1 := lerp(b.point, f.point, b.distance/(b.distance-f.distance))

		front = append(front, orient(NewFace(c, f.point, i1)))
		back = append(back, orient(NewFace(c, i1, b.point)))

	case frontN == 1 && backN == 2:
		f := frontV[0]
		b1, b2 := backV[0], backV[1]

		i1 := lerp(f.point, b1.point, f.distance/(f.distance-b1.distance))
		i2 := lerp(f.point, b2.point, f.distance/(f.distance-b2.distance))

		front = append(front, orient(NewFace(f.point, i1, i2)))
		back = append(back, orient(NewFace(b1.point, b2.point, i1)))
		back = append(back, orient(NewFace(i1, b2.point, i2)))

	case frontN == 2 && backN == 1:
		b := backV[0]
		f1, f2 := frontV[0], frontV[1]

		i1 := lerp(b.point, f1.point, b.distance/(b.distance-f1.distance))
		i2 := lerp(b.point, f2.point, b.distance/(b.distance-f2.distance))

		back = append(back, orient(NewFace(b.point, i1, i2)))
		front = append(front, orient(NewFace(f1.point, f2.point, i1)))
		front = append(front, orient(NewFace(i1, f2.point, i2)))

	default:
		assertTrue(false, "split_face: unexpected vertex classification front=%d back=%d coplanar=%d", frontN, backN, coplanarN)
	}

	return front, back
}

func lerp(a, b d3.Vec3, t float32) d3.Vec3 {
	return a.Lerp(b, t)
}

// Invert returns the plane with its normal and distance negated, i.e. the
// plane of the opposite half-space.
func (p Plane) Invert() Plane {
	return Plane{Normal: p.Normal.Scale(-1), Distance: -p.Distance}
}

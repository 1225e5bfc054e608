package navmesh

import (
	"sort"

	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/math32"
	"github.com/ten3roberts/constructive/geom"
	"github.com/ten3roberts/constructive/internal/log"
)

// verticalPlane is a plane containing the world-up axis, used to canonicalize
// a polygon edge's supporting line so that two edges sharing a wall bucket
// together regardless of which polygon or winding produced them.
type verticalPlane struct {
	normal   d3.Vec3
	distance float32
	angle    float32
}

func newVerticalPlane(normal d3.Vec3, distance float32) verticalPlane {
	return verticalPlane{
		normal:   normal,
		distance: distance,
		angle:    math32.Atan2(normal.Z(), normal.X()),
	}
}

var worldUp = d3.Vec3{0, 1, 0}

func edgeVerticalPlane(p1, p2 d3.Vec3) verticalPlane {
	bisector := p2.Sub(p1)
	normal := bisector.Cross(worldUp)
	normal.Normalize()
	return newVerticalPlane(normal, normal.Dot(p1))
}

// canonicalize returns a unique representative for the line-in-space p
// describes: near-zero axes are zeroed, then the whole plane is flipped (by
// negating normal and distance together) if its first non-zero axis is
// negative.
func (p verticalPlane) canonicalize() verticalPlane {
	x, y, z := p.normal.X(), p.normal.Y(), p.normal.Z()
	if math32.Abs(x) < geom.Tolerance {
		x = 0
	}
	if math32.Abs(y) < geom.Tolerance {
		y = 0
	}
	if math32.Abs(z) < geom.Tolerance {
		z = 0
	}

	zeroX := x == 0
	zeroY := y == 0
	flip := x < 0 || (zeroX && y < 0) || (zeroX && zeroY && z < 0)

	if flip {
		return newVerticalPlane(d3.Vec3{-x, -y, -z}, -p.distance)
	}
	return newVerticalPlane(d3.Vec3{x, y, z}, p.distance)
}

func (p verticalPlane) tangent() d3.Vec3 {
	return p.normal.Cross(worldUp)
}

// project maps a point assumed to lie in p onto the plane's local 2-D
// coordinates: x along the tangent, y the world height.
func (p verticalPlane) project(pt d3.Vec3) (x, y float32) {
	return pt.Dot(p.tangent()), pt.Y()
}

// unproject inverts project, mapping a local 2-D point back to world space.
func (p verticalPlane) unproject(x, y float32) d3.Vec3 {
	return p.tangent().Scale(x).Add(p.normal.Scale(p.distance)).Add(d3.Vec3{0, y, 0})
}

type bucketKey struct {
	angle    int32
	distance int32
}

func bucketFor(p verticalPlane) bucketKey {
	twoPi := math32.Pi * 2
	a := math32.Mod(p.angle+twoPi, twoPi)
	return bucketKey{
		angle:    int32(math32.Round(a * 1024)),
		distance: int32(math32.Round(p.distance * 256)),
	}
}

// polyEdge is a walkable polygon's directed edge, tagged with the polygon
// it belongs to. Its front/back side is recorded by which list of its
// bucket it is stored in.
type polyEdge struct {
	polygon int
	p1, p2  d3.Vec3
}

func (e polyEdge) span(plane verticalPlane) geom.Span {
	x1, _ := plane.project(e.p1)
	x2, _ := plane.project(e.p2)
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	return geom.NewSpan(x1, x2)
}

type edgeBucket struct {
	plane verticalPlane
	front []polyEdge
	back  []polyEdge
}

// generateLinks buckets every directed edge of every walkable polygon by
// its canonical vertical plane, then links front/back edge pairs that
// overlap tangentially, following spec.md section 4.4 literally: the
// discretization and canonicalization here are load-bearing, not
// incidental.
func generateLinks(polygons []geom.Face, walkable []int, settings Settings, logger log.Logger) ([]Link, map[int][]int) {
	buckets := make(map[bucketKey]*edgeBucket)

	for _, id := range walkable {
		face := polygons[id]
		for _, e := range face.Edges() {
			plane := edgeVerticalPlane(e.P1, e.P2)
			canonical := plane.canonicalize()
			key := bucketFor(canonical)

			b, ok := buckets[key]
			if !ok {
				b = &edgeBucket{plane: canonical}
				buckets[key] = b
			}

			pe := polyEdge{polygon: id, p1: e.P1, p2: e.P2}
			if plane.normal.Dot(canonical.normal) > 0 {
				b.front = append(b.front, pe)
			} else {
				b.back = append(b.back, pe)
			}
		}
	}

	keys := make([]bucketKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].angle != keys[j].angle {
			return keys[i].angle < keys[j].angle
		}
		return keys[i].distance < keys[j].distance
	})

	var links []Link
	for _, key := range keys {
		b := buckets[key]
		for _, back := range b.back {
			backSpan := back.span(b.plane)
			for _, front := range b.front {
				frontSpan := front.span(b.plane)
				overlap := backSpan.Intersect(frontSpan)
				if overlap.IsEmpty() {
					continue
				}

				links = append(links, linksForPair(b.plane, back, front, overlap, settings)...)
			}
		}
	}

	logger.Progress("generated %d links across %d buckets", len(links), len(buckets))

	polygonLinks := make(map[int][]int)
	withReverse := make([]Link, 0, len(links)*2)
	for _, l := range links {
		fromIdx := len(withReverse)
		withReverse = append(withReverse, l)
		toIdx := len(withReverse)
		withReverse = append(withReverse, l.Reverse())

		polygonLinks[l.From] = append(polygonLinks[l.From], fromIdx)
		polygonLinks[l.To] = append(polygonLinks[l.To], toIdx)
	}

	return withReverse, polygonLinks
}

// linksForPair computes the links between one back edge and one front edge
// sharing plane, over their tangential overlap.
func linksForPair(plane verticalPlane, back, front polyEdge, overlap geom.Span, settings Settings) []Link {
	sx1, sy1 := plane.project(back.p1)
	sx2, sy2 := plane.project(back.p2)
	dx1, dy1 := plane.project(front.p1)
	dx2, dy2 := plane.project(front.p2)

	mS := (sy2 - sy1) / (sx2 - sx1)
	cS := sy1 - mS*sx1
	mD := (dy2 - dy1) / (dx2 - dx1)
	cD := dy1 - mD*dx1

	deltaM := mD - mS
	deltaC := cD - cS

	var out []Link

	if math32.Abs(deltaM) > geom.Tolerance {
		h := settings.MaxStepHeight
		walkX := -deltaC / deltaM
		stepUpX := (h - deltaC) / deltaM
		stepDownX := (-h - deltaC) / deltaM

		stepDown := geom.NewSpan(math32.Min(walkX, stepDownX), math32.Max(walkX, stepDownX)).Intersect(overlap)
		stepUp := geom.NewSpan(math32.Min(walkX, stepUpX), math32.Max(walkX, stepUpX)).Intersect(overlap)

		if !stepDown.IsEmpty() {
			sLowX, sLowY := plane.project3(mS, cS, stepDown.Min)
			sHighX, sHighY := plane.project3(mS, cS, stepDown.Max)
			dLowX, dLowY := plane.project3(mD, cD, stepDown.Min)
			dHighX, dHighY := plane.project3(mD, cD, stepDown.Max)

			out = append(out, newStepUpLink(front.polygon, back.polygon,
				geom.NewEdge3D(plane.unproject(sLowX, sLowY), plane.unproject(sHighX, sHighY)),
				geom.NewEdge3D(plane.unproject(dLowX, dLowY), plane.unproject(dHighX, dHighY)),
			))
		}

		if !stepUp.IsEmpty() {
			sLowX, sLowY := plane.project3(mS, cS, stepUp.Min)
			sHighX, sHighY := plane.project3(mS, cS, stepUp.Max)
			dLowX, dLowY := plane.project3(mD, cD, stepUp.Min)
			dHighX, dHighY := plane.project3(mD, cD, stepUp.Max)

			out = append(out, newStepUpLink(front.polygon, back.polygon,
				geom.NewEdge3D(plane.unproject(dLowX, dLowY), plane.unproject(dHighX, dHighY)),
				geom.NewEdge3D(plane.unproject(sLowX, sLowY), plane.unproject(sHighX, sHighY)),
			))
		}

		return out
	}

	if math32.Abs(deltaC) < settings.MaxStepHeight {
		s1x, s1y := plane.project3(mS, cS, overlap.Min)
		s2x, s2y := plane.project3(mS, cS, overlap.Max)
		d1x, d1y := plane.project3(mD, cD, overlap.Min)
		d2x, d2y := plane.project3(mD, cD, overlap.Max)

		switch {
		case deltaC > geom.Tolerance:
			out = append(out, newStepUpLink(back.polygon, front.polygon,
				geom.NewEdge3D(plane.unproject(s1x, s1y), plane.unproject(s2x, s2y)),
				geom.NewEdge3D(plane.unproject(d1x, d1y), plane.unproject(d2x, d2y)),
			))
		case deltaC < -geom.Tolerance:
			out = append(out, newStepUpLink(front.polygon, back.polygon,
				geom.NewEdge3D(plane.unproject(d1x, d1y), plane.unproject(d2x, d2y)),
				geom.NewEdge3D(plane.unproject(s1x, s1y), plane.unproject(s2x, s2y)),
			))
		default:
			out = append(out, newWalkLink(front.polygon, back.polygon,
				geom.NewEdge3D(plane.unproject(s1x, s1y), plane.unproject(s2x, s2y)),
			))
		}
	}

	return out
}

// project3 evaluates line y = m*x + c at x, returning (x, y) for unproject.
func (p verticalPlane) project3(m, c, x float32) (float32, float32) {
	return x, m*x + c
}

// Package navmesh derives a walkable navigation mesh and its Walk/StepUp
// link graph from a set of brushes placed by affine transforms.
package navmesh

import (
	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/math32"
	"github.com/ten3roberts/constructive/bsp"
	"github.com/ten3roberts/constructive/brush"
	"github.com/ten3roberts/constructive/geom"
	"github.com/ten3roberts/constructive/internal/log"
	"github.com/ten3roberts/constructive/xform"
)

// Placement pairs a brush with the affine transform that places it in the
// scene, the concrete Go rendition of the source's
// impl IntoIterator<Item = (Mat4, &Brush)>.
type Placement struct {
	Transform xform.Mat4
	Brush     *brush.Brush
}

// Navmesh is the walkable surface and link graph derived from a set of
// placed brushes. Polygon and link ids are stable for the navmesh's
// lifetime; rebuilding means constructing a new Navmesh.
type Navmesh struct {
	polygons     []geom.Face
	links        []Link
	polygonLinks map[int][]int
	settings     Settings
}

// New builds a navmesh from the given placements: each brush is inflated
// by the agent radius, unioned against the others via BSP, filtered to
// walkable faces, and linked. An empty placement set yields an empty but
// valid navmesh.
func New(settings Settings, placements []Placement) *Navmesh {
	return NewWithLogger(settings, placements, log.Noop)
}

// NewWithLogger is New with an explicit progress/warning sink, mirroring
// the teacher's Context-threading convention for its own build functions.
func NewWithLogger(settings Settings, placements []Placement, logger log.Logger) *Navmesh {
	if len(placements) == 0 {
		return &Navmesh{polygonLinks: make(map[int][]int), settings: settings}
	}

	trees := make([]*bsp.Tree, len(placements))
	for i, p := range placements {
		inflated := inflate(p, settings.AgentRadius)
		trees[i] = bsp.Build(inflated)
		logger.Progress("placement %d: %d inflated triangles", i, len(inflated))
	}

	union := trees[0]
	for i := 1; i < len(trees); i++ {
		union = union.Union(trees[i])
	}

	surface := union.Polygons()
	logger.Progress("union surface: %d triangles", len(surface))

	var walkable []int
	for id, f := range surface {
		if f.Normal().Dot(d3.Vec3{0, 1, 0}) > settings.MaxSlopeCosine {
			walkable = append(walkable, id)
		}
	}
	logger.Progress("walkable faces: %d / %d", len(walkable), len(surface))

	links, polygonLinks := generateLinks(surface, walkable, settings, logger)

	return &Navmesh{
		polygons:     surface,
		links:        links,
		polygonLinks: polygonLinks,
		settings:     settings,
	}
}

// inflate expands a placement's faces outward by radius along each
// vertex's own octant, then maps the result through the placement's
// transform.
func inflate(p Placement, radius float32) []geom.Face {
	faces := p.Brush.Faces()
	out := make([]geom.Face, len(faces))
	for i, f := range faces {
		out[i] = f.Map(func(v d3.Vec3) d3.Vec3 {
			inflated := v.Add(signVec3(v).Scale(radius))
			return p.Transform.TransformPoint3(inflated)
		})
	}
	return out
}

func signVec3(v d3.Vec3) d3.Vec3 {
	return d3.Vec3{sign(v.X()), sign(v.Y()), sign(v.Z())}
}

func sign(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}

// WalkablePolygons returns the ids of every polygon whose normal clears the
// slope cosine threshold.
func (n *Navmesh) WalkablePolygons() []int {
	var ids []int
	for id, f := range n.polygons {
		if f.Normal().Dot(d3.Vec3{0, 1, 0}) > n.settings.MaxSlopeCosine {
			ids = append(ids, id)
		}
	}
	return ids
}

// ClosestPolygon returns the id of the polygon whose 2-D projection
// contains point with the smallest absolute plane-distance, breaking ties
// on smallest signed distance. It reports false if no polygon contains
// point's projection.
func (n *Navmesh) ClosestPolygon(point d3.Vec3) (int, bool) {
	best := -1
	var bestAbs, bestSigned float32

	for id, f := range n.polygons {
		plane := geom.PlaneFromFace(f)
		d := plane.DistanceToPoint(point)
		projected := point.Sub(plane.Normal.Scale(d))
		if !f.ContainsPoint(projected) {
			continue
		}

		abs := math32.Abs(d)
		if best == -1 || abs < bestAbs || (abs == bestAbs && d < bestSigned) {
			best, bestAbs, bestSigned = id, abs, d
		}
	}

	return best, best != -1
}

// Links returns every generated link, each stored alongside its reverse.
func (n *Navmesh) Links() []Link {
	return n.links
}

// PolygonLinks maps a polygon id to the ids (indices into Links) of every
// link leaving it.
func (n *Navmesh) PolygonLinks() map[int][]int {
	return n.polygonLinks
}

// Polygons returns every polygon in the navmesh, walkable or not.
func (n *Navmesh) Polygons() []geom.Face {
	return n.polygons
}

// Settings returns the settings the navmesh was built with.
func (n *Navmesh) Settings() Settings {
	return n.settings
}

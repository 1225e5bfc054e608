// Package bsp implements the binary space partition tree used to classify,
// split, clip and union sets of triangles. It underlies the brush CSG
// pipeline the navmesh builder runs over each placed brush.
package bsp

import "github.com/ten3roberts/constructive/geom"

// nullIdx marks an absent child, mirroring detour's NodePool arena
// convention of a sentinel index instead of a pointer (see DESIGN.md).
const nullIdx = -1

// node is a BSP tree node: a splitting plane, the polygons coplanar with it,
// and the two half-space subtrees as arena indices.
type node struct {
	plane    geom.Plane
	polygons []geom.Face
	front    int
	back     int
}

// Tree is a BSP tree: an arena of nodes plus the root index. An empty tree
// has root == nullIdx and represents an empty solid.
type Tree struct {
	nodes []node
	root  int
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{root: nullIdx}
}

// Build constructs a tree from polygons. An empty input yields an empty
// tree, matching the source's "build on empty returns empty" rule rather
// than a nil/none result.
func Build(polygons []geom.Face) *Tree {
	t := NewTree()
	if len(polygons) == 0 {
		return t
	}
	t.root = t.buildNode(polygons)
	return t
}

// buildNode seeds a new node from the first polygon's plane, partitions the
// rest against it, and recurses. Returns the new node's index.
func (t *Tree) buildNode(polygons []geom.Face) int {
	plane := geom.PlaneFromFace(polygons[0])
	n := node{plane: plane, front: nullIdx, back: nullIdx}
	n.polygons = append(n.polygons, polygons[0])
	idx := len(t.nodes)
	t.nodes = append(t.nodes, n)

	var frontList, backList []geom.Face
	for _, poly := range polygons[1:] {
		frontList, backList = t.classifyInto(plane, poly, frontList, backList, idx)
	}

	if len(frontList) > 0 {
		t.nodes[idx].front = t.buildNode(frontList)
	}
	if len(backList) > 0 {
		t.nodes[idx].back = t.buildNode(backList)
	}
	return idx
}

// classifyInto partitions poly against plane, appending it (or its split
// fragments) to frontList/backList, and the node's own polygons list when
// coplanar. idx is the owning node's index in t.nodes.
func (t *Tree) classifyInto(plane geom.Plane, poly geom.Face, frontList, backList []geom.Face, idx int) ([]geom.Face, []geom.Face) {
	switch plane.ClassifyFace(poly) {
	case geom.Front:
		frontList = append(frontList, poly)
	case geom.Back:
		backList = append(backList, poly)
	case geom.CoplanarFront, geom.CoplanarBack:
		t.nodes[idx].polygons = append(t.nodes[idx].polygons, poly)
	default:
		// Intersect, including the REDESIGN FLAG case of an unexpected
		// straddle against a freshly-seeded plane: fall through to a split
		// instead of panicking.
		frontList, backList = plane.SplitFace(poly, frontList, backList)
	}
	return frontList, backList
}

// Append partitions polygons against the existing tree, recursing into
// existing children or building fresh subtrees where a side currently has
// none.
func (t *Tree) Append(polygons []geom.Face) {
	if len(polygons) == 0 {
		return
	}
	if t.root == nullIdx {
		t.root = t.buildNode(polygons)
		return
	}
	t.appendAt(t.root, polygons)
}

func (t *Tree) appendAt(idx int, polygons []geom.Face) {
	plane := t.nodes[idx].plane
	var frontList, backList []geom.Face
	for _, poly := range polygons {
		frontList, backList = t.classifyInto(plane, poly, frontList, backList, idx)
	}

	if len(frontList) > 0 {
		if t.nodes[idx].front == nullIdx {
			t.nodes[idx].front = t.buildNode(frontList)
		} else {
			t.appendAt(t.nodes[idx].front, frontList)
		}
	}
	if len(backList) > 0 {
		if t.nodes[idx].back == nullIdx {
			t.nodes[idx].back = t.buildNode(backList)
		} else {
			t.appendAt(t.nodes[idx].back, backList)
		}
	}
}

// Invert flips the tree to represent the complement solid: every polygon is
// flipped, every plane inverted, and front/back children swapped.
func (t *Tree) Invert() {
	if t.root == nullIdx {
		return
	}
	t.invertAt(t.root)
}

func (t *Tree) invertAt(idx int) {
	n := &t.nodes[idx]
	for i := range n.polygons {
		n.polygons[i] = n.polygons[i].Flip()
	}
	n.plane = n.plane.Invert()
	n.front, n.back = n.back, n.front

	if n.front != nullIdx {
		t.invertAt(n.front)
	}
	if n.back != nullIdx {
		t.invertAt(n.back)
	}
}

// ClipPolygons clips polys against the tree, returning the fragments that
// lie outside the solid the tree represents. A tree with no root (empty
// solid) clips nothing away.
func (t *Tree) ClipPolygons(polys []geom.Face) []geom.Face {
	if t.root == nullIdx {
		return append([]geom.Face(nil), polys...)
	}
	return t.clipAt(t.root, polys)
}

func (t *Tree) clipAt(idx int, polys []geom.Face) []geom.Face {
	n := &t.nodes[idx]

	var frontList, backList []geom.Face
	for _, poly := range polys {
		switch n.plane.ClassifyFace(poly) {
		case geom.Front, geom.CoplanarFront:
			frontList = append(frontList, poly)
		case geom.Back, geom.CoplanarBack:
			backList = append(backList, poly)
		default:
			frontList, backList = n.plane.SplitFace(poly, frontList, backList)
		}
	}

	if n.front != nullIdx {
		frontList = t.clipAt(n.front, frontList)
	}
	if n.back != nullIdx {
		backList = t.clipAt(n.back, backList)
	} else {
		// Entering a leaf on the back side means inside the solid: discard.
		backList = nil
	}

	return append(frontList, backList...)
}

// ClipTo replaces every node's polygon list in t with its fragments that lie
// outside other. After this call t contains only the parts of its surface
// not enclosed by other.
func (t *Tree) ClipTo(other *Tree) {
	if t.root == nullIdx {
		return
	}
	t.clipToAt(t.root, other)
}

func (t *Tree) clipToAt(idx int, other *Tree) {
	n := &t.nodes[idx]
	n.polygons = other.ClipPolygons(n.polygons)
	if n.front != nullIdx {
		t.clipToAt(n.front, other)
	}
	if n.back != nullIdx {
		t.clipToAt(n.back, other)
	}
}

// Union returns a new tree holding the Boolean union of t and other,
// following the Naylor-Amanatides-Thibault recipe: clip both trees against
// each other, clip the inverted second tree against the first to strip
// coplanar duplicates, then merge its remaining surface into a copy of t.
//
// Both t and other are mutated in the process (their polygon lists are
// clipped down); callers that need the originals afterward should union
// copies.
func (t *Tree) Union(other *Tree) *Tree {
	t.ClipTo(other)
	other.ClipTo(t)
	other.Invert()
	other.ClipTo(t)
	other.Invert()

	result := t.clone()
	result.Append(other.Polygons())
	return result
}

// Polygons returns every polygon stored in the tree, in node visitation
// order.
func (t *Tree) Polygons() []geom.Face {
	if t.root == nullIdx {
		return nil
	}
	var out []geom.Face
	t.collect(t.root, &out)
	return out
}

func (t *Tree) collect(idx int, out *[]geom.Face) {
	n := &t.nodes[idx]
	*out = append(*out, n.polygons...)
	if n.front != nullIdx {
		t.collect(n.front, out)
	}
	if n.back != nullIdx {
		t.collect(n.back, out)
	}
}

// clone returns a deep copy of t suitable for use as a union result, so
// union's mutation of t's own fields doesn't alias the result.
func (t *Tree) clone() *Tree {
	nodes := make([]node, len(t.nodes))
	for i, n := range t.nodes {
		nodes[i] = node{
			plane:    n.plane,
			polygons: append([]geom.Face(nil), n.polygons...),
			front:    n.front,
			back:     n.back,
		}
	}
	return &Tree{nodes: nodes, root: t.root}
}

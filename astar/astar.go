// Package astar implements portal-based A* search over a navmesh's link
// graph, followed by funnel-style path shortening.
package astar

import (
	"container/heap"

	"github.com/arl/gogeo/f32/d3"
	"github.com/ten3roberts/constructive/geom"
	"github.com/ten3roberts/constructive/navmesh"
)

// Waypoint is one vertex of a found path. Edge is nil for the start and end
// waypoints and for any waypoint not reached via a link (a *int stands in
// for the source's Option<usize>, in the teacher's own sentinel-pointer
// idiom rather than a generic optional).
type Waypoint struct {
	TargetPolygon int
	Edge          *int
	Point         d3.Vec3
}

// Heuristic estimates the remaining cost between two points; Euclidean
// distance is the typical choice.
type Heuristic func(a, b d3.Vec3) float32

// backtrace records how a polygon was first reached during the search.
type backtrace struct {
	node      int
	point     d3.Vec3
	portal    *int
	prev      *int
	startCost float32
	totalCost float32
}

// nodeHeap is a binary min-heap over backtraces ordered by totalCost,
// implementing container/heap.Interface. This is the idiomatic-Go
// rendition of the teacher's hand-rolled bubble/trickle heap in
// detour/nodequeue.go (see DESIGN.md).
type nodeHeap []backtrace

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].totalCost < h[j].totalCost }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(backtrace)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Run searches the navmesh's link graph for a path from start to end,
// returning its waypoints and true, or false if either endpoint does not
// resolve to a polygon or no path connects them.
func Run(nav *navmesh.Navmesh, start, end d3.Vec3, h Heuristic) ([]Waypoint, bool) {
	startNode, ok := nav.ClosestPolygon(start)
	if !ok {
		return nil, false
	}
	endNode, ok := nav.ClosestPolygon(end)
	if !ok {
		return nil, false
	}

	backtraces := map[int]backtrace{
		startNode: {node: startNode, point: start, startCost: 0, totalCost: h(start, end)},
	}

	open := &nodeHeap{backtraces[startNode]}
	heap.Init(open)

	closed := make(map[int]bool)

	for open.Len() > 0 {
		current := heap.Pop(open).(backtrace)
		if closed[current.node] {
			continue
		}

		if current.node == endNode {
			path := reconstruct(end, current.node, backtraces)
			shorten(nav, path)
			return path, true
		}

		for _, linkID := range nav.PolygonLinks()[current.node] {
			link := nav.Links()[linkID]
			if link.To == current.node || closed[link.To] {
				continue
			}

			dest := link.DestinationEdge()
			p, ok := dest.IntersectRayClipped(current.point, end.Sub(current.point))
			if !ok {
				p = dest.P1.Add(dest.P2).Scale(0.5)
			}

			startCost := current.startCost + current.point.Dist(p)
			totalCost := startCost + h(p, end)

			linkIDCopy := linkID
			nodeCopy := current.node
			candidate := backtrace{
				node:      link.To,
				point:     p,
				portal:    &linkIDCopy,
				prev:      &nodeCopy,
				startCost: startCost,
				totalCost: totalCost,
			}

			existing, seen := backtraces[link.To]
			if !seen || existing.totalCost > totalCost {
				backtraces[link.To] = candidate
				heap.Push(open, candidate)
			}
		}

		closed[current.node] = true
	}

	return nil, false
}

// reconstruct walks the backtrace chain from end back to the start,
// collapsing waypoints closer than sqrt(Tolerance), then reverses the
// result into start-to-end order.
func reconstruct(end d3.Vec3, current int, backtraces map[int]backtrace) []Waypoint {
	path := []Waypoint{{TargetPolygon: current, Point: end}}
	prev := end

	for {
		node := backtraces[current]

		if len(path) < 2 || prev.DistSqr(node.point) > geom.Tolerance {
			path = append(path, Waypoint{TargetPolygon: node.node, Edge: node.portal, Point: node.point})
		}

		prev = node.point

		if node.prev == nil {
			break
		}
		current = *node.prev
	}

	reverse(path)
	return path
}

func reverse(path []Waypoint) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}

// shorten relaxes each portal-crossing waypoint toward the straight line
// between its neighbors, up to 100 passes, stopping early once a pass
// makes no change.
func shorten(nav *navmesh.Navmesh, path []Waypoint) {
	for pass := 0; pass < 100; pass++ {
		shortened := 0

		for i := 0; i+2 < len(path); i++ {
			b := &path[i+1]
			if b.Edge == nil {
				continue
			}

			link := nav.Links()[*b.Edge]
			edge := link.DestinationEdge()

			a, c := path[i], path[i+2]
			p, ok := edge.IntersectRayClipped(a.Point, c.Point.Sub(a.Point))
			if !ok {
				continue
			}

			if b.Point.DistSqr(p) > geom.Tolerance {
				b.Point = p
				shortened++
			}
		}

		if shortened == 0 {
			break
		}
	}
}

package navmesh

import "github.com/ten3roberts/constructive/geom"

// LinkKind distinguishes the two ways an agent can cross between two
// walkable polygons.
type LinkKind int

const (
	// Walk links two polygons that meet at a shared edge at equal height.
	Walk LinkKind = iota
	// StepUp links two polygons separated by a vertical wall no taller than
	// Settings.MaxStepHeight.
	StepUp
)

func (k LinkKind) String() string {
	switch k {
	case Walk:
		return "Walk"
	case StepUp:
		return "StepUp"
	default:
		return "LinkKind(?)"
	}
}

// Link is a directed, traversable boundary between two walkable polygons.
// Every generated link is stored alongside its Reverse, so the link graph
// is always symmetric.
type Link struct {
	From, To    int
	Kind        LinkKind
	source      geom.Edge3D
	destination geom.Edge3D
}

func newWalkLink(from, to int, edge geom.Edge3D) Link {
	return Link{From: from, To: to, Kind: Walk, source: edge, destination: edge}
}

func newStepUpLink(from, to int, source, destination geom.Edge3D) Link {
	return Link{From: from, To: to, Kind: StepUp, source: source, destination: destination}
}

// Reverse returns the link traversed in the opposite direction: endpoints
// swap, and for a StepUp link the source/destination edges swap with them.
func (l Link) Reverse() Link {
	return Link{From: l.To, To: l.From, Kind: l.Kind, source: l.destination, destination: l.source}
}

// SourceEdge returns the edge on the From polygon's side of the link.
func (l Link) SourceEdge() geom.Edge3D {
	return l.source
}

// DestinationEdge returns the edge on the To polygon's side of the link.
// A* treats this as the portal an agent must cross to reach To.
func (l Link) DestinationEdge() geom.Edge3D {
	return l.destination
}

package astar

import (
	"testing"

	"github.com/arl/gogeo/f32/d3"
	"github.com/ten3roberts/constructive/brush"
	"github.com/ten3roberts/constructive/navmesh"
	"github.com/ten3roberts/constructive/xform"
)

func euclidean(a, b d3.Vec3) float32 {
	return a.Dist(b)
}

func TestRunNoPathOutsideNavmesh(t *testing.T) {
	nav := navmesh.New(navmesh.DefaultSettings(), []navmesh.Placement{
		{Transform: xform.ScaleXYZ(10, 0.4, 10), Brush: brush.Cube()},
	})

	_, ok := Run(nav, d3.Vec3{100, 100, 100}, d3.Vec3{200, 200, 200}, euclidean)
	if ok {
		t.Error("path found between two points far off the navmesh, want false")
	}
}

func TestRunSinglePolygonIsDirect(t *testing.T) {
	nav := navmesh.New(navmesh.DefaultSettings(), []navmesh.Placement{
		{Transform: xform.ScaleXYZ(10, 0.4, 10), Brush: brush.Cube()},
	})

	start := d3.Vec3{-3, 0.4, -3}
	end := d3.Vec3{3, 0.4, 3}

	path, ok := Run(nav, start, end, euclidean)
	if !ok {
		t.Fatal("no path found within a single flat polygon")
	}
	if len(path) < 2 {
		t.Fatalf("path has %d waypoints, want at least 2", len(path))
	}
	if !path[0].Point.Approx(start) {
		t.Errorf("first waypoint = %v, want start %v", path[0].Point, start)
	}
	if !path[len(path)-1].Point.Approx(end) {
		t.Errorf("last waypoint = %v, want end %v", path[len(path)-1].Point, end)
	}
}

func TestRunCrossesStepUpLink(t *testing.T) {
	settings := navmesh.DefaultSettings()
	settings.MaxStepHeight = 0.7

	nav := navmesh.New(settings, []navmesh.Placement{
		{Transform: xform.Identity(), Brush: brush.Cube()},
		{Transform: xform.Translation(1.5, 0.6, 0), Brush: brush.Cube()},
	})

	start := d3.Vec3{-0.5, 1, -0.5}
	end := d3.Vec3{2, 1.6, 0.5}

	path, ok := Run(nav, start, end, euclidean)
	if !ok {
		t.Fatal("no path found across a StepUp link between two stacked cubes")
	}

	crossedLink := false
	for _, w := range path {
		if w.Edge != nil {
			crossedLink = true
		}
	}
	if !crossedLink {
		t.Error("path between the two cube tops never crosses a link")
	}
}

func TestShortenDoesNotMoveEndpoints(t *testing.T) {
	nav := navmesh.New(navmesh.DefaultSettings(), []navmesh.Placement{
		{Transform: xform.ScaleXYZ(10, 0.4, 10), Brush: brush.Cube()},
	})

	start := d3.Vec3{-3, 0.4, -3}
	end := d3.Vec3{3, 0.4, 3}

	path, ok := Run(nav, start, end, euclidean)
	if !ok {
		t.Fatal("no path found")
	}

	if !path[0].Point.Approx(start) || !path[len(path)-1].Point.Approx(end) {
		t.Error("funnel shortening moved a path endpoint")
	}
}

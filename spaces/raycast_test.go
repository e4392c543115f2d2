// File: spaces/raycast_test.go
package spaces

import (
	"math"
	"testing"

	"github.com/bimkit/roomscan/geom2d"
	"github.com/bimkit/roomscan/wallgraph"
)

func hitsAt(pts ...geom2d.Point) []rayHit {
	hits := make([]rayHit, len(pts))
	for i, p := range pts {
		hits[i] = rayHit{point: p, wallID: "w"}
	}
	return hits
}

// TestMergeCloseHits_Runs collapses a run of near-coincident corner hits to
// its first point and honors the first/last wraparound.
func TestMergeCloseHits_Runs(t *testing.T) {
	hits := hitsAt(
		geom2d.Point{X: 0, Y: 0},
		geom2d.Point{X: 0.01, Y: 0},   // same corner as previous
		geom2d.Point{X: 0.02, Y: 0.01}, // still the same corner
		geom2d.Point{X: 2, Y: 0},
		geom2d.Point{X: 2, Y: 2},
		geom2d.Point{X: 0.01, Y: 0.02}, // wraps onto the first point
	)

	merged := mergeCloseHits(hits, 0.05)
	if len(merged) != 3 {
		t.Fatalf("got %d hits; want 3", len(merged))
	}
	if merged[0].point != (geom2d.Point{X: 0, Y: 0}) {
		t.Errorf("first of a merged run must survive; got %+v", merged[0].point)
	}
}

// TestPruneCollinear_KeepsCorners: midpoints sampled along straight walls
// vanish; the four corners stay.
func TestPruneCollinear_KeepsCorners(t *testing.T) {
	hits := hitsAt(
		geom2d.Point{X: 0, Y: 0},
		geom2d.Point{X: 0.5, Y: 0},
		geom2d.Point{X: 1, Y: 0},
		geom2d.Point{X: 1, Y: 0.5},
		geom2d.Point{X: 1, Y: 1},
		geom2d.Point{X: 0.5, Y: 1},
		geom2d.Point{X: 0, Y: 1},
		geom2d.Point{X: 0, Y: 0.5},
	)

	pruned := pruneCollinear(hits, 0.02)
	if len(pruned) != 4 {
		t.Fatalf("got %d points; want the 4 corners", len(pruned))
	}
	for _, h := range pruned {
		if h.point.X != 0 && h.point.X != 1 {
			t.Errorf("non-corner point survived: %+v", h.point)
		}
	}
}

// TestPruneCollinear_FloorAtThree: pruning never reduces a boundary below a
// triangle, even when every point is collinear-ish.
func TestPruneCollinear_FloorAtThree(t *testing.T) {
	hits := hitsAt(
		geom2d.Point{X: 0, Y: 0},
		geom2d.Point{X: 1, Y: 0.001},
		geom2d.Point{X: 2, Y: 0},
		geom2d.Point{X: 3, Y: 0.001},
	)

	if pruned := pruneCollinear(hits, 0.02); len(pruned) != 3 {
		t.Fatalf("got %d points; want floor of 3", len(pruned))
	}
}

// TestCastBoundary_Rectangle probes the rectangle interior: all four walls
// are touched and the boundary outlines the room.
func TestCastBoundary_Rectangle(t *testing.T) {
	walls := []wallgraph.WallSegment{
		{ID: "w1", Start: geom2d.Point{X: 0, Y: 0}, End: geom2d.Point{X: 4, Y: 0}},
		{ID: "w2", Start: geom2d.Point{X: 4, Y: 0}, End: geom2d.Point{X: 4, Y: 3}},
		{ID: "w3", Start: geom2d.Point{X: 4, Y: 3}, End: geom2d.Point{X: 0, Y: 3}},
		{ID: "w4", Start: geom2d.Point{X: 0, Y: 3}, End: geom2d.Point{X: 0, Y: 0}},
	}

	points, ids, ok := castBoundary(geom2d.Point{X: 2, Y: 1.5}, walls, DefaultOptions())
	if !ok {
		t.Fatal("expected an enclosing boundary")
	}
	if len(points) < 3 {
		t.Fatalf("boundary has %d points; want ≥ 3", len(points))
	}
	if len(ids) != 4 {
		t.Fatalf("touched %d walls; want 4 (%v)", len(ids), ids)
	}
	if area := geom2d.Area(points); math.Abs(area-12) > 0.12 {
		t.Errorf("boundary area = %v; want 12 within 1%%", area)
	}
	// Every boundary point lies on the rectangle's outline.
	for _, p := range points {
		onX := math.Abs(p.X) < 1e-6 || math.Abs(p.X-4) < 1e-6
		onY := math.Abs(p.Y) < 1e-6 || math.Abs(p.Y-3) < 1e-6
		if !onX && !onY {
			t.Errorf("boundary point %+v is off the walls", p)
		}
	}
}

// TestCastBoundary_TooFewHits: rays that mostly miss produce no boundary.
func TestCastBoundary_TooFewHits(t *testing.T) {
	// A single short wall subtending less than one ray step: only the 0°
	// ray can hit it.
	walls := []wallgraph.WallSegment{
		{ID: "w", Start: geom2d.Point{X: 5, Y: -0.04}, End: geom2d.Point{X: 5, Y: 0.04}},
	}

	if _, _, ok := castBoundary(geom2d.Point{X: 0, Y: 0}, walls, DefaultOptions()); ok {
		t.Fatal("expected no boundary from a single distant wall")
	}
}

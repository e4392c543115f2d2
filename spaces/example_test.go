// Package spaces_test provides runnable examples for both detection
// methods. Each example is runnable via "go test -run Example", showing
// both code and expected output.
package spaces_test

import (
	"fmt"

	"github.com/bimkit/roomscan/geom2d"
	"github.com/bimkit/roomscan/spaces"
	"github.com/bimkit/roomscan/wallgraph"
)

// ExampleDetectSpaces derives the rooms of a square plan split by a
// diagonal divider wall.
func ExampleDetectSpaces() {
	// 1) Describe the plan: four outer walls plus one shared divider.
	walls := []wallgraph.WallSegment{
		{ID: "south", Start: geom2d.Point{X: 0, Y: 0}, End: geom2d.Point{X: 4, Y: 0}},
		{ID: "east", Start: geom2d.Point{X: 4, Y: 0}, End: geom2d.Point{X: 4, Y: 4}},
		{ID: "north", Start: geom2d.Point{X: 4, Y: 4}, End: geom2d.Point{X: 0, Y: 4}},
		{ID: "west", Start: geom2d.Point{X: 0, Y: 4}, End: geom2d.Point{X: 0, Y: 0}},
		{ID: "divider", Start: geom2d.Point{X: 0, Y: 0}, End: geom2d.Point{X: 4, Y: 4}},
	}

	// 2) Detect every enclosed space; defaults merge endpoints within 5 cm
	//    and discard anything below 0.5 m².
	rooms := spaces.DetectSpaces(walls)

	// 3) Each triangular half reports its own metrics; the divider bounds
	//    both rooms, once per side.
	for _, r := range rooms {
		fmt.Printf("area=%.1f perimeter=%.2f walls=%v\n", r.Area, r.Perimeter, r.WallIDs)
	}
	// Output:
	// area=8.0 perimeter=13.66 walls=[divider east south]
	// area=8.0 perimeter=13.66 walls=[divider north west]
}

// ExampleDetectSpaceAtPoint resolves the room around a clicked point
// without building a graph.
func ExampleDetectSpaceAtPoint() {
	walls := []wallgraph.WallSegment{
		{ID: "w1", Start: geom2d.Point{X: 0, Y: 0}, End: geom2d.Point{X: 4, Y: 0}},
		{ID: "w2", Start: geom2d.Point{X: 4, Y: 0}, End: geom2d.Point{X: 4, Y: 3}},
		{ID: "w3", Start: geom2d.Point{X: 4, Y: 3}, End: geom2d.Point{X: 0, Y: 3}},
		{ID: "w4", Start: geom2d.Point{X: 0, Y: 3}, End: geom2d.Point{X: 0, Y: 0}},
	}

	// A click near the middle of the room.
	room, ok := spaces.DetectSpaceAtPoint(geom2d.Point{X: 2, Y: 1.5}, walls)

	fmt.Printf("found=%v walls=%v\n", ok, room.WallIDs)
	// Output:
	// found=true walls=[w1 w2 w3 w4]
}

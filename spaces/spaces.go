package spaces

import (
	"github.com/bimkit/roomscan/geom2d"
	"github.com/bimkit/roomscan/wallgraph"
)

// DetectSpaces derives every enclosed space the walls form, largest first.
//
// Fewer than 3 walls can enclose nothing and return an empty result
// immediately; degenerate walls are skipped by the graph builder and never
// appear in any result's WallIDs. DetectSpaces never returns an error —
// "nothing found" is a normal outcome, not a failure.
//
// Complexity: O(W²) graph build + O(E·S) cycle tracing.
func DetectSpaces(walls []wallgraph.WallSegment, opts ...Option) []DetectedSpace {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(walls) < 3 {
		return nil
	}

	g := wallgraph.Build(walls, wallgraph.WithTolerance(o.Tolerance))

	var out []DetectedSpace
	for _, c := range traceCycles(g, o) {
		if s, ok := assembleSpace(c.points, c.wallIDs, o); ok {
			out = append(out, s)
		}
	}

	return out
}

// DetectSpaceAtPoint derives the single space enclosing pt by ray casting
// against the raw wall segments — no graph connectivity required.
//
// ok is false when fewer than 3 walls are given, when too few rays hit
// anything (the point is in open space), or when the resulting boundary is
// below the minimum room area. Like DetectSpaces, it never returns an
// error.
//
// Complexity: O(rays × W).
func DetectSpaceAtPoint(pt geom2d.Point, walls []wallgraph.WallSegment, opts ...Option) (DetectedSpace, bool) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(walls) < 3 {
		return DetectedSpace{}, false
	}

	boundary, wallIDs, ok := castBoundary(pt, walls, o)
	if !ok {
		return DetectedSpace{}, false
	}

	return assembleSpace(boundary, wallIDs, o)
}

// Package geom2d provides the stateless 2D primitives shared by every
// roomscan detector: points and direction vectors, ray/segment
// intersection, perpendicular distance, and polygon math (shoelace area,
// perimeter, vertex centroid, point-in-polygon, winding normalization).
//
// Conventions: x increases to the right and y increases up the page —
// mathematical graph paper, not image coordinates. Signed area is therefore
// positive for counter-clockwise vertex order. All lengths are meters.
//
// Every function is pure: no allocation is retained, no state is shared,
// and inputs are never mutated except where documented
// (EnsureCounterClockwise reverses in place).
//
// Complexity: all polygon operations are O(n) in the vertex count; point
// and segment operations are O(1).
package geom2d

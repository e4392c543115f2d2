package geom2d

import "math"

// SignedArea returns the shoelace sum of the polygon, halved. The sign
// encodes winding: positive for counter-clockwise vertex order, negative
// for clockwise. Polygons with fewer than 3 vertices have no interior and
// return 0.
//
// Complexity: O(n).
func SignedArea(poly []Point) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}

	return sum / 2
}

// Area returns the unsigned area enclosed by the polygon, in square meters.
// Returns 0 for fewer than 3 vertices.
func Area(poly []Point) float64 {
	return math.Abs(SignedArea(poly))
}

// Perimeter returns the sum of cyclic consecutive edge lengths, including
// the closing edge from the last vertex back to the first. Returns 0 for
// fewer than 2 vertices.
//
// Complexity: O(n).
func Perimeter(poly []Point) float64 {
	n := len(poly)
	if n < 2 {
		return 0
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += Dist(poly[i], poly[(i+1)%n])
	}

	return sum
}

// VertexCentroid returns the arithmetic mean of the polygon's vertices.
//
// This is deliberately NOT the area-weighted centroid of mass: vertex
// averaging is cheap, stable for the near-convex rooms this engine emits,
// and only ever used to place labels. Anything needing a physically
// meaningful center of mass must not reuse this function.
func VertexCentroid(poly []Point) Point {
	n := len(poly)
	if n == 0 {
		return Point{}
	}

	var cx, cy float64
	for _, p := range poly {
		cx += p.X
		cy += p.Y
	}

	return Point{X: cx / float64(n), Y: cy / float64(n)}
}

// PointInPolygon reports whether pt lies inside the polygon, using the
// standard horizontal ray-crossing parity test (PNPoly). Points exactly on
// an edge or vertex may report either value. Returns false for fewer than
// 3 vertices.
//
// Complexity: O(n).
func PointInPolygon(pt Point, poly []Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[j], poly[i]
		// One endpoint above the horizontal through pt, the other at or
		// below it, and the crossing to the right of pt.X: flip parity.
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}

	return inside
}

// EnsureCounterClockwise normalizes the polygon's winding to
// counter-clockwise, the orientation downstream consumers expect for a
// consistent outward-normal convention. A clockwise polygon is reversed in
// place; a polygon that is already counter-clockwise (or degenerate, with
// signed area 0) is returned unchanged. Idempotent: applying it twice is
// the same as applying it once.
//
// Complexity: O(n).
func EnsureCounterClockwise(poly []Point) []Point {
	if SignedArea(poly) >= 0 {
		return poly
	}

	for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
		poly[i], poly[j] = poly[j], poly[i]
	}

	return poly
}

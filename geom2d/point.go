package geom2d

import "math"

// parallelEps rejects near-parallel ray/segment pairs: when the 2×2
// determinant of the direction matrix is below this value the system is
// numerically singular and no intersection is reported.
const parallelEps = 1e-10

// Point is a 2D coordinate in meters. X increases to the right, Y increases
// up the page. Points carry no identity; equality is coordinate equality.
type Point struct {
	X, Y float64
}

// Vec is a 2D direction or displacement. Kept as a distinct type so that
// positions and directions do not mix silently in signatures.
type Vec struct {
	X, Y float64
}

// Sub returns the displacement from q to p (p − q).
func (p Point) Sub(q Point) Vec {
	return Vec{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns the point reached by displacing p by v.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the direction of v in radians, in (−π, π].
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Dir returns the unit direction vector for the given angle in radians.
func Dir(angle float64) Vec {
	return Vec{X: math.Cos(angle), Y: math.Sin(angle)}
}

// WrapAngle normalizes an angle in radians into the half-open interval
// (−π, π]. Used to compare turn directions at a graph node: a positive
// result is a left (counter-clockwise) turn, a negative one a right turn.
func WrapAngle(rad float64) float64 {
	for rad > math.Pi {
		rad -= 2 * math.Pi
	}
	for rad <= -math.Pi {
		rad += 2 * math.Pi
	}

	return rad
}

// RaySegmentIntersection intersects the ray origin + t·dir (t > 0) with the
// segment a→b. It returns the hit point and the ray parameter t.
//
// The system solved is
//
//	origin + t·dir = a + u·(b − a),    t > 0,  u ∈ [0, 1].
//
// ok is false when the ray and segment are near-parallel (|det| <
// parallelEps), when the hit lies behind the origin, or when it falls
// outside the segment bounds. Hits exactly at t == 0 (origin on the
// segment) are rejected as "behind".
//
// Complexity: O(1).
func RaySegmentIntersection(origin Point, dir Vec, a, b Point) (hit Point, t float64, ok bool) {
	seg := b.Sub(a)

	// det is the cross product dir × seg; zero means parallel lines.
	det := dir.X*seg.Y - dir.Y*seg.X
	if math.Abs(det) < parallelEps {
		return Point{}, 0, false
	}

	// Cramer's rule on the 2×2 system above.
	diff := a.Sub(origin)
	t = (diff.X*seg.Y - diff.Y*seg.X) / det
	u := (diff.X*dir.Y - diff.Y*dir.X) / det

	if t <= 0 || u < 0 || u > 1 {
		return Point{}, 0, false
	}

	return origin.Add(dir.Scale(t)), t, true
}

// PerpendicularDistance returns the distance from p to the infinite line
// through a and b. When a and b are (nearly) coincident the line is
// undefined and the plain distance from p to a is returned instead.
//
// Complexity: O(1).
func PerpendicularDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	length := ab.Len()
	if length < parallelEps {
		return Dist(p, a)
	}

	// |cross(ab, ap)| / |ab| is the height of the parallelogram.
	ap := p.Sub(a)

	return math.Abs(ab.X*ap.Y-ab.Y*ap.X) / length
}

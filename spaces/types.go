// Package spaces defines the detection result type, tuning constants, and
// functional options shared by both detection methods.
package spaces

import (
	"errors"

	"github.com/bimkit/roomscan/geom2d"
	"github.com/bimkit/roomscan/wallgraph"
)

// Sentinel errors raised (as panics) by option constructors on invalid
// configuration. Detection itself never returns an error: bad input
// degrades to an empty result.
var (
	// ErrBadMinRoomArea indicates WithMinRoomArea received a negative area.
	ErrBadMinRoomArea = errors.New("spaces: minimum room area must be non-negative")

	// ErrBadRayCount indicates WithRayCount received fewer than 3 rays,
	// which can never outline a polygon.
	ErrBadRayCount = errors.New("spaces: ray count must be at least 3")

	// ErrBadMaxRayLength indicates WithMaxRayLength received a non-positive
	// length.
	ErrBadMaxRayLength = errors.New("spaces: max ray length must be positive")

	// ErrBadHitMergeDistance indicates WithHitMergeDistance received a
	// negative distance.
	ErrBadHitMergeDistance = errors.New("spaces: hit merge distance must be non-negative")

	// ErrBadCollinearTolerance indicates WithCollinearTolerance received a
	// negative distance.
	ErrBadCollinearTolerance = errors.New("spaces: collinear tolerance must be non-negative")

	// ErrBadMaxTraceSteps indicates WithMaxTraceSteps received a cap below 3,
	// under which no cycle can close.
	ErrBadMaxTraceSteps = errors.New("spaces: max trace steps must be at least 3")
)

// Default tuning values. All lengths are meters, areas square meters.
const (
	// DefaultMinRoomArea is the smallest area accepted as a real room;
	// anything below is a sliver from near-collinear walls or a tracing
	// artifact.
	DefaultMinRoomArea = 0.5

	// DefaultRayCount is the number of rays DetectSpaceAtPoint casts,
	// i.e. one per degree.
	DefaultRayCount = 360

	// DefaultMaxRayLength bounds how far a ray travels before it is
	// considered to have escaped the drawing.
	DefaultMaxRayLength = 1000.0

	// DefaultHitMergeDistance collapses consecutive ray hits that landed on
	// the same wall corner.
	DefaultHitMergeDistance = 0.05

	// DefaultCollinearTolerance drops boundary points contributing no shape
	// information (perpendicular distance to the line through their angular
	// neighbors below this value).
	DefaultCollinearTolerance = 0.02

	// DefaultMaxTraceSteps caps one cycle trace. It bounds the cost of
	// walking a malformed or dead-end graph, not the size of a real room.
	DefaultMaxTraceSteps = 100
)

// DetectedSpace is one enclosed floor area. It is a plain value with no
// identity of its own; the caller wraps it into a persisted entity.
type DetectedSpace struct {
	// Boundary is the closed outline, ≥3 vertices, counter-clockwise.
	Boundary []geom2d.Point

	// WallIDs are the distinct IDs of the walls bounding this space,
	// sorted. A wall interior to the plan appears in the WallIDs of
	// exactly two detected spaces, one per side.
	WallIDs []string

	// Area is the enclosed area in m², always ≥ the configured minimum.
	Area float64

	// Perimeter is the boundary length in meters, always > 0.
	Perimeter float64

	// Centroid is the vertex average of Boundary — a label anchor, not a
	// center of mass.
	Centroid geom2d.Point
}

// Options holds the tuning parameters of both detection methods.
type Options struct {
	// Tolerance is the endpoint merge radius handed to the wall-graph
	// builder. Must be positive.
	Tolerance float64

	// MinRoomArea is the smallest area accepted as a room, in m².
	MinRoomArea float64

	// RayCount is the number of rays cast by the point query.
	RayCount int

	// MaxRayLength bounds ray travel in meters.
	MaxRayLength float64

	// HitMergeDistance merges consecutive ray hits closer than this.
	HitMergeDistance float64

	// CollinearTolerance prunes boundary points closer than this to the
	// line through their neighbors.
	CollinearTolerance float64

	// MaxTraceSteps caps a single cycle trace.
	MaxTraceSteps int
}

// Option is a functional option for DetectSpaces and DetectSpaceAtPoint.
type Option func(*Options)

// WithTolerance sets the endpoint merge radius in meters.
// Non-positive values panic with wallgraph.ErrBadTolerance.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			panic(wallgraph.ErrBadTolerance.Error())
		}
		o.Tolerance = eps
	}
}

// WithMinRoomArea sets the minimum accepted room area in m².
// Negative values panic with ErrBadMinRoomArea.
func WithMinRoomArea(area float64) Option {
	return func(o *Options) {
		if area < 0 {
			panic(ErrBadMinRoomArea.Error())
		}
		o.MinRoomArea = area
	}
}

// WithRayCount sets how many rays the point query casts.
// Values below 3 panic with ErrBadRayCount.
func WithRayCount(n int) Option {
	return func(o *Options) {
		if n < 3 {
			panic(ErrBadRayCount.Error())
		}
		o.RayCount = n
	}
}

// WithMaxRayLength sets the maximum ray travel in meters.
// Non-positive values panic with ErrBadMaxRayLength.
func WithMaxRayLength(max float64) Option {
	return func(o *Options) {
		if max <= 0 {
			panic(ErrBadMaxRayLength.Error())
		}
		o.MaxRayLength = max
	}
}

// WithHitMergeDistance sets the corner-merge radius for consecutive ray
// hits. Negative values panic with ErrBadHitMergeDistance.
func WithHitMergeDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadHitMergeDistance.Error())
		}
		o.HitMergeDistance = d
	}
}

// WithCollinearTolerance sets the collinear-point prune distance.
// Negative values panic with ErrBadCollinearTolerance.
func WithCollinearTolerance(d float64) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadCollinearTolerance.Error())
		}
		o.CollinearTolerance = d
	}
}

// WithMaxTraceSteps caps a single cycle trace.
// Values below 3 panic with ErrBadMaxTraceSteps.
func WithMaxTraceSteps(n int) Option {
	return func(o *Options) {
		if n < 3 {
			panic(ErrBadMaxTraceSteps.Error())
		}
		o.MaxTraceSteps = n
	}
}

// DefaultOptions returns the engine defaults:
//   - Tolerance:          wallgraph.DefaultTolerance (0.05 m)
//   - MinRoomArea:        DefaultMinRoomArea (0.5 m²)
//   - RayCount:           DefaultRayCount (360)
//   - MaxRayLength:       DefaultMaxRayLength (1000 m)
//   - HitMergeDistance:   DefaultHitMergeDistance (0.05 m)
//   - CollinearTolerance: DefaultCollinearTolerance (0.02 m)
//   - MaxTraceSteps:      DefaultMaxTraceSteps (100)
func DefaultOptions() Options {
	return Options{
		Tolerance:          wallgraph.DefaultTolerance,
		MinRoomArea:        DefaultMinRoomArea,
		RayCount:           DefaultRayCount,
		MaxRayLength:       DefaultMaxRayLength,
		HitMergeDistance:   DefaultHitMergeDistance,
		CollinearTolerance: DefaultCollinearTolerance,
		MaxTraceSteps:      DefaultMaxTraceSteps,
	}
}

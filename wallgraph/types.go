// Package wallgraph defines the input record, graph types, and construction
// options for the wall-graph builder.
package wallgraph

import (
	"errors"

	"github.com/bimkit/roomscan/geom2d"
)

// ErrBadTolerance indicates a non-positive merge tolerance was passed to
// WithTolerance. Raised as a panic from the option constructor: a zero
// radius would make every endpoint its own node and is always a caller bug.
var ErrBadTolerance = errors.New("wallgraph: merge tolerance must be positive")

// DefaultTolerance is the endpoint merge radius in meters. Two wall
// endpoints closer than this are the same graph node.
const DefaultTolerance = 0.05

// WallSegment is the immutable input record: one straight wall from Start
// to End. ID is a stable external identifier owned by the caller; the
// engine only ever copies it into results.
type WallSegment struct {
	ID    string
	Start geom2d.Point
	End   geom2d.Point
}

// Node is one merged endpoint of the graph. Key is the canonical arena key
// (frozen from the coordinates of the first endpoint that claimed the merge
// radius), Point the node's position, and Edges the outgoing directed edges
// in wall-insertion order.
//
// Edge order is load-bearing: tie-breaks between equal-angle candidates
// during face tracing resolve to the first edge encountered, so storing
// edges in insertion order keeps detection deterministic for a fixed input
// slice.
type Node struct {
	Key   string
	Point geom2d.Point
	Edges []Edge
}

// Edge is one directed half of a wall: it leaves the node holding it (From)
// toward the node To. Start and End are the edge's oriented endpoints, i.e.
// Start is the position of From's node and End that of To's. A usable wall
// always produces exactly two Edges with the same WallID, one per
// direction.
type Edge struct {
	WallID string
	From   string
	To     string
	Start  geom2d.Point
	End    geom2d.Point
}

// Options holds construction parameters for Build.
type Options struct {
	// Tolerance is the endpoint merge radius in meters. Must be positive.
	Tolerance float64
}

// Option is a functional option for Build.
type Option func(*Options)

// WithTolerance sets the endpoint merge radius in meters.
// Non-positive values panic with ErrBadTolerance.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = eps
	}
}

// DefaultOptions returns the builder defaults: Tolerance = DefaultTolerance.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

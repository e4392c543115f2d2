package wallgraph

import (
	"fmt"

	"github.com/bimkit/roomscan/geom2d"
)

// Graph is a tolerance-merged planar graph over wall segments. Nodes live
// in an arena keyed by canonical coordinate strings; iteration always runs
// in node insertion order, never map order, so traversal results are
// deterministic for a fixed input slice.
type Graph struct {
	nodes map[string]*Node
	order []string // node keys in insertion order

	edgeCount int
}

// Build constructs the graph from walls.
//
// For each wall:
//  1. Skip degenerate geometry: endpoints that coincide within the merge
//     tolerance form a self-loop that cannot bound any region. Silent skip,
//     not an error.
//  2. Resolve or create a Node per endpoint by scanning existing nodes for
//     one within tolerance (first match wins — tolerance defines a single
//     merge radius, so no tie-break is needed).
//  3. Append two directed Edges, one per endpoint, both carrying the wall's
//     ID.
//
// Complexity: O(W²) time (pairwise node lookup), O(W) memory.
func Build(walls []WallSegment, opts ...Option) *Graph {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph{nodes: make(map[string]*Node, 2*len(walls))}

	for _, w := range walls {
		// 1) A wall collapsing to a point is unusable.
		if geom2d.Dist(w.Start, w.End) < o.Tolerance {
			continue
		}

		// 2) Merge-or-create both endpoints.
		from := g.resolveNode(w.Start, o.Tolerance)
		to := g.resolveNode(w.End, o.Tolerance)

		// 3) One directed half per endpoint, same wall ID on both.
		from.Edges = append(from.Edges, Edge{
			WallID: w.ID,
			From:   from.Key,
			To:     to.Key,
			Start:  from.Point,
			End:    to.Point,
		})
		to.Edges = append(to.Edges, Edge{
			WallID: w.ID,
			From:   to.Key,
			To:     from.Key,
			Start:  to.Point,
			End:    from.Point,
		})
		g.edgeCount += 2
	}

	return g
}

// resolveNode returns the existing node within eps of p, or creates one.
// The first node found within the merge radius wins; a freshly created node
// freezes p's coordinates into its canonical key.
func (g *Graph) resolveNode(p geom2d.Point, eps float64) *Node {
	for _, key := range g.order {
		n := g.nodes[key]
		if geom2d.Dist(n.Point, p) < eps {
			return n
		}
	}

	n := &Node{Key: coordKey(p), Point: p}
	g.nodes[n.Key] = n
	g.order = append(g.order, n.Key)

	return n
}

// coordKey formats the canonical arena key for a node at p. Four decimals
// (0.1 mm) is well below any sane merge tolerance, so distinct nodes never
// collide on the key.
func coordKey(p geom2d.Point) string {
	return fmt.Sprintf("%.4f_%.4f", p.X, p.Y)
}

// Node returns the node stored under key, or nil.
func (g *Graph) Node(key string) *Node {
	return g.nodes[key]
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	for i, key := range g.order {
		out[i] = g.nodes[key]
	}

	return out
}

// NodeCount returns the number of distinct merged endpoints.
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of directed edges (two per usable wall).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

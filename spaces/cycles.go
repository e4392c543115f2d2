// Package spaces implements minimal-cycle (face) extraction from the wall
// graph.
//
// Every minimal enclosed face is found by boundary tracing: start on an
// unvisited directed edge and, at each node, continue along the candidate
// making the largest left turn relative to the incoming direction. Under
// this rule each directed edge belongs to exactly one face; a wall shared
// by two rooms is traversed once per side, which is exactly why the visited
// set is keyed on *directed* edges and not on walls. Bounded faces come out
// counter-clockwise; a clockwise result is the unbounded outer face and is
// not a room.
//
// Complexity:
//
//   - Time:   O(E·S) worst case (E = directed edges, S = step cap), in
//     practice O(E·d) with d the typical node degree.
//   - Memory: O(E) for the visited set plus the emitted cycles.
package spaces

import (
	"sort"
	"strings"

	"github.com/bimkit/roomscan/geom2d"
	"github.com/bimkit/roomscan/wallgraph"
)

// cycle is one closed traversal: points[i] is joined to points[(i+1)%n] by
// the wall at wallIDs[i].
type cycle struct {
	points  []geom2d.Point
	wallIDs []string
}

// directedEdgeKey identifies one traversal direction of one wall.
// Directionality matters: the same wall traversed from opposite sides
// belongs to two different faces.
type directedEdgeKey struct {
	from, to, wallID string
}

func dirKey(e wallgraph.Edge) directedEdgeKey {
	return directedEdgeKey{from: e.From, to: e.To, wallID: e.WallID}
}

// traceCycles enumerates every minimal enclosed face of g exactly once per
// side, then deduplicates, filters slivers, and sorts by area descending
// (largest rooms first; equal areas ordered by canonical signature for
// deterministic output).
func traceCycles(g *wallgraph.Graph, o Options) []cycle {
	// 1) Global visited set of directed edges, shared by all starts.
	visited := make(map[directedEdgeKey]struct{}, g.EdgeCount())

	// 2) Attempt a trace from every unvisited directed edge of every node
	//    that can possibly lie on a cycle (degree ≥ 2). Node and edge order
	//    are both insertion order, so enumeration is deterministic.
	var cycles []cycle
	for _, n := range g.Nodes() {
		if len(n.Edges) < 2 {
			continue
		}
		for _, e := range n.Edges {
			if _, seen := visited[dirKey(e)]; seen {
				continue
			}
			c, used, ok := traceFrom(g, e, o.MaxTraceSteps)
			if !ok {
				continue
			}
			// 3) Success: every directed edge of this face is globally
			//    visited, so the same face is never re-derived from another
			//    starting edge.
			for k := range used {
				visited[k] = struct{}{}
			}
			// 4) Bounded faces trace counter-clockwise under the left-turn
			//    rule; a clockwise cycle is the unbounded outer face.
			if geom2d.SignedArea(c.points) <= 0 {
				continue
			}
			cycles = append(cycles, c)
		}
	}

	// 5) Deduplicate by canonical wall-id signature: the same room found
	//    via a different start collapses to one entry.
	seen := make(map[string]struct{}, len(cycles))
	distinct := cycles[:0]
	for _, c := range cycles {
		sig := canonicalKey(c.wallIDs)
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		distinct = append(distinct, c)
	}

	// 6) Drop degenerate slivers below the minimum room area.
	kept := distinct[:0]
	for _, c := range distinct {
		if geom2d.Area(c.points) >= o.MinRoomArea {
			kept = append(kept, c)
		}
	}

	// 7) Largest rooms first; break exact area ties by signature.
	sort.Slice(kept, func(i, j int) bool {
		ai, aj := geom2d.Area(kept[i].points), geom2d.Area(kept[j].points)
		if ai != aj {
			return ai > aj
		}

		return canonicalKey(kept[i].wallIDs) < canonicalKey(kept[j].wallIDs)
	})

	return kept
}

// traceFrom follows the largest-left-turn rule from the starting directed
// edge until the trace returns to the starting node (success, ≥3 edges) or
// dies: no viable next edge, or the step cap is exhausted. used reports
// every directed edge traversed, for global marking on success.
func traceFrom(g *wallgraph.Graph, start wallgraph.Edge, maxSteps int) (cycle, map[directedEdgeKey]struct{}, bool) {
	used := make(map[directedEdgeKey]struct{}, 8)
	points := make([]geom2d.Point, 0, 8)
	wallIDs := make([]string, 0, 8)

	cur := start
	for step := 0; step < maxSteps; step++ {
		// Record the current directed edge. Each edge contributes its
		// origin point, so a closed trace has exactly one point per wall.
		used[dirKey(cur)] = struct{}{}
		points = append(points, cur.Start)
		wallIDs = append(wallIDs, cur.WallID)

		// Closed: back at the starting node with enough edges for an area.
		if cur.To == start.From && len(wallIDs) >= 3 {
			return cycle{points: points, wallIDs: wallIDs}, used, true
		}

		next, ok := nextLeftmost(g, cur, used)
		if !ok {
			// Dead end (degree-1 node, or every continuation spent).
			return cycle{}, nil, false
		}
		cur = next
	}

	// Step cap: malformed graph, abandon without emitting.
	return cycle{}, nil, false
}

// nextLeftmost selects, among the edges leaving the node the trace just
// arrived at, the one making the largest left turn relative to the incoming
// direction. The wall just arrived on is excluded (no immediate U-turn onto
// the same wall), as is any directed edge already used within this trace.
//
// Turn angles are wrapped into (−π, π], so a strict > comparison keeps the
// first candidate on an exact tie — edges are stored in wall-insertion
// order, which makes the tie-break stable for a fixed input slice.
func nextLeftmost(g *wallgraph.Graph, arrived wallgraph.Edge, used map[directedEdgeKey]struct{}) (wallgraph.Edge, bool) {
	node := g.Node(arrived.To)
	if node == nil {
		return wallgraph.Edge{}, false
	}

	inDir := arrived.End.Sub(arrived.Start).Angle()

	var best wallgraph.Edge
	bestTurn := 0.0
	found := false
	for _, cand := range node.Edges {
		if cand.WallID == arrived.WallID {
			continue
		}
		if _, u := used[dirKey(cand)]; u {
			continue
		}
		turn := geom2d.WrapAngle(cand.End.Sub(cand.Start).Angle() - inDir)
		if !found || turn > bestTurn {
			best, bestTurn, found = cand, turn, true
		}
	}

	return best, found
}

// canonicalKey builds the dedup signature of a cycle: its wall IDs, sorted
// and joined. Two traversals of the same room share the signature whatever
// their starting edge or direction.
func canonicalKey(wallIDs []string) string {
	ids := append([]string(nil), wallIDs...)
	sort.Strings(ids)

	return strings.Join(ids, "|")
}

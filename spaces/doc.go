// Package spaces detects the enclosed floor areas ("spaces") formed by a
// set of wall segments, using two independent methods that share one result
// assembler:
//
//   - DetectSpaces — exhaustive: builds a tolerance-merged wall graph and
//     extracts every minimal enclosed face by directed-edge boundary
//     tracing. A wall shared by two rooms is traversed once per side, so it
//     correctly bounds both.
//   - DetectSpaceAtPoint — local: casts rays from a query point against the
//     raw wall segments and assembles the closest-hit boundary, no graph
//     connectivity required. Suited to "click inside a room" lookups where
//     wall endpoints may be imprecise.
//
// For the same physical room both methods produce matching area, perimeter,
// centroid, wall-id set and winding (counter-clockwise) to within tolerance.
//
// The engine is synchronous and call-local: all bookkeeping (graph, visited
// directed edges) is created fresh per call and discarded with the result,
// so concurrent calls on distinct inputs are safe and no state leaks across
// invocations. Detection never returns an error — malformed or insufficient
// input (fewer than 3 walls, degenerate walls, untraceable cycles, no ray
// hits) degrades to an empty result, which callers must treat as a normal
// outcome.
//
// Complexity:
//
//	– DetectSpaces:       O(W²) graph build + O(N·E) tracing
//	– DetectSpaceAtPoint: O(rays × W)
//
// Callers are expected to throttle invocation (on edit-commit, not on every
// mouse move); the engine imposes no debouncing of its own.
package spaces

// Package wallgraph converts a flat list of wall segments into an
// undirected planar graph suitable for face extraction.
//
// Construction rules:
//
//   - Endpoints closer than the merge tolerance collapse into one Node, so
//     walls drawn with slightly imprecise corners still connect. Lookup is a
//     linear scan over existing nodes — first match wins — which is O(W²)
//     over the build but entirely adequate for the tens to low hundreds of
//     walls a floor plan carries.
//   - Every usable wall contributes exactly two directed Edges, one per
//     endpoint, both tagged with the wall's ID. Directedness matters
//     downstream: a shared interior wall, traversed from opposite sides,
//     bounds two different rooms.
//   - A wall whose endpoints coincide within tolerance is a self-loop with
//     no bounding power; it is skipped silently, never reported as an error.
//
// Nodes live in an arena keyed by a canonical coordinate string; edges refer
// to nodes by key, never by pointer, so a node reachable from many edges has
// a single owner. The graph is a transient per-detection value: build it,
// trace it, drop it.
package wallgraph

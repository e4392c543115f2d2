// Package roomscan derives enclosed floor areas ("spaces") from the wall
// segments of a 2D floor plan — the geometric core behind "which rooms do
// these walls form?" and "which room did the user click in?".
//
// 🚀 What is roomscan?
//
//	A small, synchronous, allocation-light engine that brings together:
//		• Polygon primitives: shoelace area, perimeter, winding, point-in-polygon
//		• Wall graphs: tolerance-merged planar graphs built from raw wall segments
//		• Face extraction: minimal-cycle tracing that finds every enclosed room
//		• Ray casting: a graph-free probe for the single room around a point
//		• One assembler: both detection paths agree on area, perimeter and centroid
//
// ✨ Why two detection methods?
//
//   - Exhaustive — spaces.DetectSpaces walks the wall graph and enumerates
//     every minimal enclosed face, once per side, largest room first.
//   - Local — spaces.DetectSpaceAtPoint casts rays from a query point against
//     the raw segments, so a click resolves to its room even when wall
//     endpoints are too imprecise for clean graph connectivity.
//
// Everything is organized under four subpackages:
//
//	geom2d/    — points, segments, and polygon math shared by both detectors
//	wallgraph/ — WallSegment input record and the planar graph builder
//	spaces/    — cycle and ray-cast detectors, options, and the public API
//	vis/       — PNG snapshots of detection results, for debugging and fixtures
//
// Quick ASCII example:
//
//	    ┌─────w1─────┬─────w5─────┐
//	    w4          w6           w7
//	    └─────w2─────┴─────w8─────┘
//
//	eight walls, one shared divider (w6), two detected spaces — and w6
//	appears in the wall-id set of both.
//
// roomscan is a pure-geometry library: no persistence, no rendering layer,
// no undo. It consumes wall polylines and produces 2D polygons plus scalar
// metrics, leaving identity and property sets to the caller.
package roomscan

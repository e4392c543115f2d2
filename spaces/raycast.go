// Package spaces implements the ray-cast boundary probe, the graph-free
// half of the engine.
//
// Rays fan out from the query point in all directions and each keeps its
// closest wall hit. The hits are angle-ordered by construction, so the
// boundary polygon falls out directly; two cleanup passes (corner merge,
// collinear prune) then remove the sampling artifacts. Because it never
// needs global connectivity, the probe still resolves "which room was
// clicked" when wall endpoints are too sloppy for the graph to close.
package spaces

import (
	"math"

	"github.com/bimkit/roomscan/geom2d"
	"github.com/bimkit/roomscan/wallgraph"
)

// rayHit is the closest intersection of one ray with the wall set.
type rayHit struct {
	point  geom2d.Point
	wallID string
}

// castBoundary probes the region enclosing origin and returns its boundary
// points plus the distinct wall IDs they landed on. ok is false when fewer
// than 3 rays hit anything — the point is not meaningfully enclosed.
//
// Complexity: O(rays × W) casting + O(n²) worst-case pruning, n ≤ rays.
func castBoundary(origin geom2d.Point, walls []wallgraph.WallSegment, o Options) ([]geom2d.Point, []string, bool) {
	// 1) One ray per angular step, closest hit per ray.
	hits := make([]rayHit, 0, o.RayCount)
	step := 2 * math.Pi / float64(o.RayCount)
	for i := 0; i < o.RayCount; i++ {
		if h, ok := closestHit(origin, geom2d.Dir(float64(i)*step), walls, o.MaxRayLength); ok {
			hits = append(hits, h)
		}
	}

	// 2) Too few hits: the point is in open space, not a room.
	if len(hits) < 3 {
		return nil, nil, false
	}

	// 3) Collapse ray clusters on shared corners, then drop points that add
	//    no shape information.
	hits = mergeCloseHits(hits, o.HitMergeDistance)
	hits = pruneCollinear(hits, o.CollinearTolerance)
	if len(hits) < 3 {
		return nil, nil, false
	}

	// 4) Boundary points plus the distinct walls the survivors touched.
	points := make([]geom2d.Point, len(hits))
	idSet := make(map[string]struct{}, len(hits))
	ids := make([]string, 0, len(hits))
	for i, h := range hits {
		points[i] = h.point
		if _, dup := idSet[h.wallID]; !dup {
			idSet[h.wallID] = struct{}{}
			ids = append(ids, h.wallID)
		}
	}

	return points, ids, true
}

// closestHit intersects one ray with every wall and keeps the nearest hit
// within maxLen. Intersections behind the origin, outside segment bounds,
// or from near-parallel walls are rejected inside geom2d.
func closestHit(origin geom2d.Point, dir geom2d.Vec, walls []wallgraph.WallSegment, maxLen float64) (rayHit, bool) {
	best := rayHit{}
	bestT := maxLen
	found := false
	for _, w := range walls {
		p, t, ok := geom2d.RaySegmentIntersection(origin, dir, w.Start, w.End)
		if !ok || t > bestT {
			continue
		}
		best, bestT, found = rayHit{point: p, wallID: w.ID}, t, true
	}

	return best, found
}

// mergeCloseHits collapses consecutive hits closer than minDist — several
// adjacent rays striking the same wall corner — keeping the first of each
// run. The list is cyclic, so first and last are checked too.
func mergeCloseHits(hits []rayHit, minDist float64) []rayHit {
	if len(hits) < 2 {
		return hits
	}

	merged := hits[:1]
	for _, h := range hits[1:] {
		if geom2d.Dist(merged[len(merged)-1].point, h.point) < minDist {
			continue
		}
		merged = append(merged, h)
	}

	// Wraparound: the run may continue across the seam.
	for len(merged) > 1 && geom2d.Dist(merged[0].point, merged[len(merged)-1].point) < minDist {
		merged = merged[:len(merged)-1]
	}

	return merged
}

// pruneCollinear removes points whose perpendicular distance to the line
// through their angular neighbors is below tol — they lie on a straight
// wall run and contribute nothing. Removal changes neighbors, so passes
// repeat until stable; the count never drops below 3.
func pruneCollinear(hits []rayHit, tol float64) []rayHit {
	changed := true
	for changed && len(hits) > 3 {
		changed = false
		for i := 0; i < len(hits) && len(hits) > 3; i++ {
			n := len(hits)
			prev := hits[(i-1+n)%n].point
			next := hits[(i+1)%n].point
			if geom2d.PerpendicularDistance(hits[i].point, prev, next) < tol {
				hits = append(hits[:i], hits[i+1:]...)
				changed = true
				i--
			}
		}
	}

	return hits
}

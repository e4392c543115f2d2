package spaces

import (
	"sort"

	"github.com/bimkit/roomscan/geom2d"
)

// assembleSpace wraps a closed boundary and its bounding wall IDs into a
// DetectedSpace. Both detection methods funnel through here, which is what
// guarantees they agree on winding, area, perimeter and centroid for the
// same physical room.
//
// ok is false for boundaries that cannot be a room: fewer than 3 vertices
// or area below the configured minimum.
func assembleSpace(boundary []geom2d.Point, wallIDs []string, o Options) (DetectedSpace, bool) {
	if len(boundary) < 3 {
		return DetectedSpace{}, false
	}

	// Normalize orientation on a copy; callers keep their slices.
	poly := geom2d.EnsureCounterClockwise(append([]geom2d.Point(nil), boundary...))

	area := geom2d.Area(poly)
	if area < o.MinRoomArea {
		return DetectedSpace{}, false
	}

	// Distinct, sorted wall IDs: stable output whatever the trace order.
	set := make(map[string]struct{}, len(wallIDs))
	ids := make([]string, 0, len(wallIDs))
	for _, id := range wallIDs {
		if _, dup := set[id]; dup {
			continue
		}
		set[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return DetectedSpace{
		Boundary:  poly,
		WallIDs:   ids,
		Area:      area,
		Perimeter: geom2d.Perimeter(poly),
		Centroid:  geom2d.VertexCentroid(poly),
	}, true
}

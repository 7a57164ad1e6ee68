package sweep2d

import (
	"fmt"

	"github.com/mikenye/sweep2d/linesegment"
	"github.com/mikenye/sweep2d/options"
	"github.com/mikenye/sweep2d/point"
	"github.com/mikenye/sweep2d/types"
)

// SegmentsIntersect checks if the given segments have at least one
// intersection: any pair sharing at least one point, including a single
// touching endpoint.
//
// The underlying sweep is abandoned as soon as the first intersection is
// found, so the common negative case costs O(n log n) and positive cases
// usually far less.
//
// Returns a non-nil error (of type [linesegment.DegenerateSegmentError]) if
// any input segment has coincident endpoints.
func SegmentsIntersect(segments []linesegment.LineSegment, opts ...options.GeometryOptionsFunc) (bool, error) {
	seq, err := linesegment.Sweep(segments, opts...)
	if err != nil {
		return false, err
	}
	for range seq {
		return true, nil
	}
	return false, nil
}

// SegmentsCrossOrOverlap checks if at least one pair of the given segments
// crosses or overlaps: any relation beyond a single boundary touch. Segments
// that merely meet endpoint-to-endpoint, or touch an endpoint against an
// interior, do not count.
//
// Returns a non-nil error (of type [linesegment.DegenerateSegmentError]) if
// any input segment has coincident endpoints.
func SegmentsCrossOrOverlap(segments []linesegment.LineSegment, opts ...options.GeometryOptionsFunc) (bool, error) {
	seq, err := linesegment.Sweep(segments, opts...)
	if err != nil {
		return false, err
	}
	for intersection := range seq {
		if intersection.Relation != types.RelationTouch {
			return true, nil
		}
	}
	return false, nil
}

// ContourSelfIntersects checks if the closed polygonal contour through the
// given vertices has a self-intersection, in the Shamos-Hoey sense: any two
// non-neighbouring edges sharing a point, any two edges overlapping
// collinearly, or any repeated vertex.
//
// Note that consecutive equal vertices count as a self-intersection; filter
// them out beforehand if they should be tolerated.
//
// Returns an error if the contour has fewer than three vertices.
func ContourSelfIntersects(vertices []point.Point, opts ...options.GeometryOptionsFunc) (bool, error) {
	if len(vertices) < 3 {
		return false, fmt.Errorf("contour with %d vertices is degenerate", len(vertices))
	}

	seen := make(map[point.Point]struct{}, len(vertices))
	for _, vertex := range vertices {
		if _, found := seen[vertex]; found {
			return true, nil
		}
		seen[vertex] = struct{}{}
	}

	edges := make([]linesegment.LineSegment, len(vertices))
	for i := range vertices {
		prev := vertices[(i+len(vertices)-1)%len(vertices)]
		edges[i] = linesegment.NewFromPoints(prev, vertices[i])
	}

	seq, err := linesegment.Sweep(edges, opts...)
	if err != nil {
		return false, err
	}
	lastEdgeID := len(edges) - 1
	for intersection := range seq {
		if intersection.Relation != types.RelationTouch {
			return true, nil
		}
		first, second := intersection.FirstSegmentID, intersection.SecondSegmentID
		if first > second {
			first, second = second, first
		}
		// Neighbouring edges legitimately share their common vertex; anything
		// else touching is a self-intersection.
		if second-first > 1 && !(first == 0 && second == lastEdgeID) {
			return true, nil
		}
	}
	return false, nil
}

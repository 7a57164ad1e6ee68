// Package linesegment provides the LineSegment type and the plane-sweep
// machinery for computing all pairwise intersections, and their relations,
// among a set of line segments.
//
// # Overview
//
// This package defines the [LineSegment] type, which represents a finite
// straight segment between two points in a 2D plane, and implements a
// Bentley-Ottmann sweep over a multiset of segments. For every pair of
// segments that share at least one point, the sweep reports an [Intersection]
// carrying the pair's [types.Relation] together with the one- or two-point
// locus of the intersection.
//
// # Line Segment Intersection Algorithms
//
// There are two methods for determining intersections between a set of line
// segments:
//   - Naive Method (FindIntersectionsNaive)
//   - Sweep Line Algorithm (FindIntersections / Sweep)
//
// The naive method iterates over all pairs of line segments and classifies
// each pair directly. This has O(n²) time complexity, making it inefficient
// for large datasets but useful as a reference for correctness. The testing of
// FindIntersections compares results to FindIntersectionsNaive as a reference.
//
// The sweep line method processes segment endpoints and discovered
// intersection points in lexicographic order, maintaining the set of segments
// currently intersecting a conceptual vertical sweep line. It runs in
// O((n + k) log n) time, where k is the number of event points.
//
// # Exactness
//
// All comparisons are exact. The default predicates are correct while
// coordinates and their pairwise products are exactly representable in
// float64; callers needing extended precision can inject their own predicates
// via [options.WithOrienteer] and [options.WithIntersector].
package linesegment

import (
	"encoding/json"
	"fmt"

	"github.com/mikenye/sweep2d/point"
)

// LineSegment represents a line segment in a 2D space, defined by two
// endpoints, a start [point.Point] and an end [point.Point].
//
// The endpoint order given at construction is preserved; it carries no
// geometric meaning to the sweep, which orders endpoints lexicographically
// itself.
type LineSegment struct {
	start point.Point
	end   point.Point
}

// New creates a new LineSegment with the specified start and end x and y
// coordinates.
//
// Parameters:
//   - x1,y1 (float64): The starting point of the LineSegment.
//   - x2,y2 (float64): The ending point of the LineSegment.
//
// Returns:
//   - LineSegment: A new line segment defined by the start and end points.
func New(x1, y1, x2, y2 float64) LineSegment {
	return NewFromPoints(point.New(x1, y1), point.New(x2, y2))
}

// NewFromPoints creates a new LineSegment from two endpoints, a start
// [point.Point] and an end [point.Point].
//
// Parameters:
//   - start ([point.Point]): The starting [point.Point] of the LineSegment.
//   - end ([point.Point]): The ending [point.Point] of the LineSegment.
//
// Returns:
//   - LineSegment: A new line segment defined by the start and end points.
func NewFromPoints(start, end point.Point) LineSegment {
	return LineSegment{
		start: start,
		end:   end,
	}
}

// End returns the ending [point.Point] of the line segment.
func (l LineSegment) End() point.Point {
	return l.end
}

// Eq reports whether the calling LineSegment and the given segment have
// exactly equal start points and exactly equal end points.
//
// Endpoint order matters: a segment and its [LineSegment.Flip] are not Eq.
// Use [LineSegment.EqGeometry] for order-insensitive comparison.
func (l LineSegment) Eq(other LineSegment) bool {
	return l.start.Eq(other.start) && l.end.Eq(other.end)
}

// EqGeometry reports whether the two segments cover the same pair of
// endpoints, regardless of endpoint order.
func (l LineSegment) EqGeometry(other LineSegment) bool {
	ls, le := l.sortedPair()
	os, oe := other.sortedPair()
	return ls.Eq(os) && le.Eq(oe)
}

// Flip returns a new LineSegment with the start and end points exchanged.
func (l LineSegment) Flip() LineSegment {
	return LineSegment{
		start: l.end,
		end:   l.start,
	}
}

// IsDegenerate reports whether the segment's endpoints coincide.
func (l LineSegment) IsDegenerate() bool {
	return l.start.Eq(l.end)
}

// MarshalJSON serializes LineSegment as JSON.
func (l LineSegment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start point.Point `json:"start"`
		End   point.Point `json:"end"`
	}{
		Start: l.start,
		End:   l.end,
	})
}

// Start returns the starting [point.Point] of the line segment.
func (l LineSegment) Start() point.Point {
	return l.start
}

// String returns a string representation of the line segment in the format
// "(x1,y1)(x2,y2)".
//
// Returns:
//   - string: A string representation of the line segment.
func (l LineSegment) String() string {
	return fmt.Sprintf("%s%s", l.start.String(), l.end.String())
}

// UnmarshalJSON deserializes JSON into a LineSegment.
func (l *LineSegment) UnmarshalJSON(data []byte) error {
	var temp struct {
		Start point.Point `json:"start"`
		End   point.Point `json:"end"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	l.start = temp.Start
	l.end = temp.End
	return nil
}

// sortedPair returns the segment's endpoints in lexicographic order, the order
// the sweep ingests them in.
func (l LineSegment) sortedPair() (point.Point, point.Point) {
	if l.end.Less(l.start) {
		return l.end, l.start
	}
	return l.start, l.end
}

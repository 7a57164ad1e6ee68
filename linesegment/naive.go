package linesegment

import (
	"github.com/mikenye/sweep2d/options"
	"github.com/mikenye/sweep2d/point"
	"github.com/mikenye/sweep2d/types"
)

// FindIntersectionsNaive performs a brute-force O(n²) check to find all
// pairwise intersections between the given line segments.
//
// The result is canonical in exactly the sense of [FindIntersections]: the two
// functions produce identical output for identical input. This is a naive
// implementation and should be used for small input sizes or as a baseline for
// correctness; the testing of FindIntersections compares against it.
//
// Returns a non-nil error (of type [DegenerateSegmentError]) if any input
// segment has coincident endpoints.
func FindIntersectionsNaive(segments []LineSegment, opts ...options.GeometryOptionsFunc) ([]Intersection, error) {
	geoOpts := defaultGeometryOptions(opts...)
	for i, segment := range segments {
		if segment.IsDegenerate() {
			return nil, DegenerateSegmentError{Index: i, Point: segment.Start()}
		}
	}
	results := newIntersectionResults()
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			if intersection, ok := relateSegments(i, j, segments[i], segments[j], geoOpts); ok {
				results.Add(intersection)
			}
		}
	}
	return results.Results(), nil
}

// relateSegments classifies a single pair of segments. The second return value
// is false when the segments share no point.
func relateSegments(
	firstSegmentID, secondSegmentID int,
	first, second LineSegment,
	geoOpts options.GeometryOptions,
) (Intersection, bool) {
	orient := geoOpts.Orienteer
	firstStart, firstEnd := first.sortedPair()
	secondStart, secondEnd := second.sortedPair()

	secondStartOrientation := orient(firstStart, firstEnd, secondStart)
	secondEndOrientation := orient(firstStart, firstEnd, secondEnd)

	if secondStartOrientation == types.Collinear && secondEndOrientation == types.Collinear {
		return relateCollinear(
			firstSegmentID, secondSegmentID,
			firstStart, firstEnd, secondStart, secondEnd,
		)
	}
	if secondStartOrientation == secondEndOrientation {
		// second lies strictly on one side of first's line.
		return Intersection{}, false
	}

	firstStartOrientation := orient(secondStart, secondEnd, firstStart)
	firstEndOrientation := orient(secondStart, secondEnd, firstEnd)
	if firstStartOrientation == firstEndOrientation && firstStartOrientation != types.Collinear {
		return Intersection{}, false
	}

	touchAt := func(p point.Point) (Intersection, bool) {
		return Intersection{
			FirstSegmentID:  firstSegmentID,
			SecondSegmentID: secondSegmentID,
			Relation:        types.RelationTouch,
			Start:           p,
			End:             p,
		}, true
	}

	// An endpoint on the other segment's line: the only candidate meeting
	// point is that endpoint, shared iff it lies within the other's extent.
	switch {
	case secondStartOrientation == types.Collinear:
		if betweenInclusive(firstStart, secondStart, firstEnd) {
			return touchAt(secondStart)
		}
		return Intersection{}, false
	case secondEndOrientation == types.Collinear:
		if betweenInclusive(firstStart, secondEnd, firstEnd) {
			return touchAt(secondEnd)
		}
		return Intersection{}, false
	case firstStartOrientation == types.Collinear:
		if betweenInclusive(secondStart, firstStart, secondEnd) {
			return touchAt(firstStart)
		}
		return Intersection{}, false
	case firstEndOrientation == types.Collinear:
		if betweenInclusive(secondStart, firstEnd, secondEnd) {
			return touchAt(firstEnd)
		}
		return Intersection{}, false
	}

	// Both segments straddle each other's line: a proper interior crossing.
	crossPoint := geoOpts.Intersector(firstStart, firstEnd, secondStart, secondEnd)
	return Intersection{
		FirstSegmentID:  firstSegmentID,
		SecondSegmentID: secondSegmentID,
		Relation:        types.RelationCross,
		Start:           crossPoint,
		End:             crossPoint,
	}, true
}

// relateCollinear classifies a pair of segments known to lie on a common
// line, using their lexicographically sorted endpoints.
func relateCollinear(
	firstSegmentID, secondSegmentID int,
	firstStart, firstEnd, secondStart, secondEnd point.Point,
) (Intersection, bool) {
	maxStart := point.Max(firstStart, secondStart)
	minEnd := point.Min(firstEnd, secondEnd)
	if minEnd.Less(maxStart) {
		// Disjoint extents on the common line.
		return Intersection{}, false
	}

	var relation types.Relation
	var start, end point.Point
	switch {
	case maxStart.Eq(minEnd):
		relation = types.RelationTouch
		start, end = maxStart, maxStart
	case firstStart.Eq(secondStart):
		start = firstStart
		switch {
		case firstEnd.Eq(secondEnd):
			relation = types.RelationEqual
			end = firstEnd
		case secondEnd.Less(firstEnd):
			relation = types.RelationComposite
			end = secondEnd
		default:
			relation = types.RelationComponent
			end = firstEnd
		}
	case secondStart.Less(firstStart):
		start = firstStart
		if secondEnd.Less(firstEnd) {
			relation = types.RelationOverlap
			end = secondEnd
		} else {
			relation = types.RelationComponent
			end = firstEnd
		}
	case firstEnd.Less(secondEnd):
		relation = types.RelationOverlap
		start, end = secondStart, firstEnd
	default:
		relation = types.RelationComposite
		start, end = secondStart, secondEnd
	}

	return Intersection{
		FirstSegmentID:  firstSegmentID,
		SecondSegmentID: secondSegmentID,
		Relation:        relation,
		Start:           start,
		End:             end,
	}, true
}

// betweenInclusive reports whether p lies within [a, b] lexicographically,
// with a not after b.
func betweenInclusive(a, p, b point.Point) bool {
	return !p.Less(a) && !b.Less(p)
}

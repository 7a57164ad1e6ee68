package linesegment

import (
	"iter"

	"github.com/mikenye/sweep2d/options"
	"github.com/mikenye/sweep2d/point"
	"github.com/mikenye/sweep2d/types"
)

// CrossingPoint computes the intersection point of the two properly crossing
// segments (a, b) and (c, d) by solving the parametric line equations.
//
// This is the default [options.Intersector]. The cross products it is built
// from are exact whenever the coordinates and their pairwise products are
// exactly representable in float64, but the final division and scaling are
// rounded: a crossing point float64 cannot represent is approximated, and
// swapping the two segments may change its last bits. For exact results,
// inject an exact implementation via [options.WithIntersector].
//
// Preconditions (guaranteed by the engine at every call site):
//   - The segments are not parallel.
//   - The intersection lies within both segments.
func CrossingPoint(a, b, c, d point.Point) point.Point {
	dir1 := b.Sub(a)
	dir2 := d.Sub(c)
	denominator := dir1.CrossProduct(dir2)
	t := (c.Sub(a)).CrossProduct(dir2) / denominator
	return point.New(a.X()+t*dir1.X(), a.Y()+t*dir1.Y())
}

// defaultGeometryOptions resolves the option set for this package, filling in
// the default predicates.
func defaultGeometryOptions(opts ...options.GeometryOptionsFunc) options.GeometryOptions {
	return options.ApplyGeometryOptions(options.GeometryOptions{
		Orienteer:   point.Orientation,
		Intersector: CrossingPoint,
	}, opts...)
}

// events runs the sweep loop, invoking yield for each processed event in
// queue order. Yielding false abandons the sweep.
//
// Left events are inserted into the sweep line unless an identical-geometry
// segment is already active, in which case the two are merged into one
// collinear class instead. Right events remove their segment and re-test the
// neighbours the removal makes adjacent. Every insertion tests the new
// segment against both neighbours.
func (r *eventsRegistry) events(yield func(event) bool) {
	for !r.queue.empty() {
		e := r.pop()
		logDebugf("popped event %d at %s", e, r.eventStart(e))
		if e.isLeft() {
			equalSegmentEvent := r.find(e)
			if equalSegmentEvent == noEvent {
				r.add(e)
				if belowEvent := r.below(e); belowEvent != noEvent {
					r.detectIntersection(belowEvent, e)
				}
				if aboveEvent := r.above(e); aboveEvent != noEvent {
					r.detectIntersection(e, aboveEvent)
				}
				if !yield(e) {
					return
				}
			} else {
				logDebugf("merging duplicate segment event %d into %d", e, equalSegmentEvent)
				r.mergeEqualSegmentEvents(equalSegmentEvent, e)
				if !r.unique {
					if !yield(e) {
						return
					}
				}
			}
		} else {
			eventOpposite := r.opposites[e]
			equalSegmentEvent := r.find(eventOpposite)
			if equalSegmentEvent != noEvent {
				aboveEvent, belowEvent := r.above(equalSegmentEvent), r.below(equalSegmentEvent)
				r.remove(equalSegmentEvent)
				if belowEvent != noEvent && aboveEvent != noEvent {
					r.detectIntersection(belowEvent, aboveEvent)
				}
				if equalSegmentEvent != eventOpposite {
					r.mergeEqualSegmentEvents(equalSegmentEvent, eventOpposite)
				}
				if !yield(e) {
					return
				}
			} else if !r.unique {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// groupIntersections classifies every id-distinct pair of segments concurrent
// at the group point and yields one Intersection per pair. Returns false if
// the consumer stopped.
func (r *eventsRegistry) groupIntersections(
	segmentIDs []int,
	p point.Point,
	yield func(Intersection) bool,
) bool {
	for i := 0; i < len(segmentIDs); i++ {
		for j := i + 1; j < len(segmentIDs); j++ {
			firstSegmentID, secondSegmentID := segmentIDs[i], segmentIDs[j]
			if firstSegmentID == secondSegmentID {
				continue
			}
			if !yield(r.classifyPair(firstSegmentID, secondSegmentID, p)) {
				return false
			}
		}
	}
	return true
}

// classifyPair determines the relation between two segments concurrent at p,
// together with the intersection locus. Collinearity is read from the
// union-find; the locus of collinear relations is computed from the original
// input endpoints.
func (r *eventsRegistry) classifyPair(firstSegmentID, secondSegmentID int, p point.Point) Intersection {
	firstStart, firstEnd := r.segmentStart(firstSegmentID), r.segmentEnd(firstSegmentID)
	secondStart, secondEnd := r.segmentStart(secondSegmentID), r.segmentEnd(secondSegmentID)

	var relation types.Relation
	var start, end point.Point
	switch {
	case !r.areCollinear(firstSegmentID, secondSegmentID):
		if firstStart.Eq(p) || firstEnd.Eq(p) || secondStart.Eq(p) || secondEnd.Eq(p) {
			relation = types.RelationTouch
		} else {
			relation = types.RelationCross
		}
		start, end = p, p
	case point.Max(firstStart, secondStart).Eq(point.Min(firstEnd, secondEnd)):
		// Collinear classes meeting endpoint-to-endpoint.
		relation = types.RelationTouch
		start, end = p, p
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
	}
}

// Sweep builds the event tables for the given segments and returns a lazy,
// one-shot sequence of raw [Intersection] records.
//
// The sweep groups processed events by their common point; for every pair of
// distinct segments concurrent at that point it yields one record. A pair
// concurrent at several points (or represented by several sub-segments at
// one point) is therefore reported more than once, and in both id orders; use
// [FindIntersections] for a deduplicated, canonically ordered result.
//
// Ceasing to pull items abandons the sweep; between any two yielded records
// the engine's state is fully consistent, so early exit is cheap and safe.
//
// Returns a non-nil error (of type [DegenerateSegmentError]) if any input
// segment has coincident endpoints. No sequence is produced in that case.
func Sweep(segments []LineSegment, opts ...options.GeometryOptionsFunc) (iter.Seq[Intersection], error) {
	r, err := newEventsRegistry(segments, defaultGeometryOptions(opts...), false)
	if err != nil {
		return nil, err
	}
	seq := func(yield func(Intersection) bool) {
		var groupStart point.Point
		groupSegmentIDs := make([]int, 0, 8)
		stopped := false
		r.events(func(e event) bool {
			eventStart := r.eventStart(e)
			if len(groupSegmentIDs) > 0 && !eventStart.Eq(groupStart) {
				if !r.groupIntersections(groupSegmentIDs, groupStart, yield) {
					stopped = true
					return false
				}
				groupSegmentIDs = groupSegmentIDs[:0]
			}
			groupStart = eventStart
			groupSegmentIDs = append(groupSegmentIDs, r.eventSegmentID(e))
			return true
		})
		if !stopped && len(groupSegmentIDs) > 0 {
			r.groupIntersections(groupSegmentIDs, groupStart, yield)
		}
	}
	return seq, nil
}

// FindIntersections computes all pairwise intersections among the given
// segments using the sweep line algorithm, in O((n + k) log n) time for n
// segments and k event points.
//
// The result is canonical: one record per (pair, relation, locus), with
// segment ids in ascending order (containment relations flipped accordingly),
// sorted deterministically. Segments that do not intersect anything simply do
// not appear; an empty input yields an empty result.
//
// Returns a non-nil error (of type [DegenerateSegmentError]) if any input
// segment has coincident endpoints.
func FindIntersections(segments []LineSegment, opts ...options.GeometryOptionsFunc) ([]Intersection, error) {
	seq, err := Sweep(segments, opts...)
	if err != nil {
		return nil, err
	}
	results := newIntersectionResults()
	for intersection := range seq {
		results.Add(intersection)
	}
	return results.Results(), nil
}

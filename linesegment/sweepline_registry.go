package linesegment

import (
	"github.com/mikenye/sweep2d/options"
	"github.com/mikenye/sweep2d/point"
	"github.com/mikenye/sweep2d/types"
)

// eventsRegistry owns all sweep state: the endpoint/opposite/segment-id
// tables, the collinearity bookkeeping, the events queue and the sweep-line
// status, plus the injected geometric predicates.
//
// Events are small integers indexing the tables, so subdivision and
// equal-segment merging never invalidate handles already sitting in the queue
// or the sweep line. The tables are append-only except for opposite-link
// redirection during subdivision; an endpoint, once appended, is never
// mutated.
type eventsRegistry struct {
	// endpoints maps an event to its point. Append-only.
	endpoints []point.Point

	// opposites maps an event to the event at the other end of its
	// sub-segment. The mapping is an involution at all times; subdivision
	// redirects links but never breaks the pairing.
	opposites []event

	// segmentIDs maps an event pair (index event/2) to the id of the original
	// input segment the pair belongs to. Extended once per subdivision so both
	// halves keep the original id.
	segmentIDs []int

	// minCollinear is the union-find of collinear segment classes, indexed by
	// segment id. Two input segments that lie on a common line and overlapped
	// at some moment of the sweep share a root. Classes are joined
	// transitively, so a class may also hold segments linked only through a
	// third member.
	minCollinear []int

	orienteer   options.Orienteer
	intersector options.Intersector

	queue     *eventQueue
	sweepLine *sweepLineStatus

	// unique suppresses the emission of events whose segment geometry
	// duplicates an already-active segment.
	unique bool
}

// newEventsRegistry builds the event tables for the given segments and seeds
// the events queue. Each input segment contributes a left and a right event
// with its endpoints in lexicographic order. A segment with coincident
// endpoints fails the build with a [DegenerateSegmentError].
func newEventsRegistry(segments []LineSegment, geoOpts options.GeometryOptions, unique bool) (*eventsRegistry, error) {
	r := &eventsRegistry{
		orienteer:   geoOpts.Orienteer,
		intersector: geoOpts.Intersector,
		unique:      unique,
	}
	r.queue = newEventQueue(r)
	r.sweepLine = newSweepLineStatus(r)

	for segmentID, segment := range segments {
		left := leftEventOfSegment(segmentID)
		right := rightEventOfSegment(segmentID)
		start, end := segment.sortedPair()
		if start.Eq(end) {
			return nil, DegenerateSegmentError{Index: segmentID, Point: start}
		}
		r.endpoints = append(r.endpoints, start, end)
		r.opposites = append(r.opposites, right, left)
		r.segmentIDs = append(r.segmentIDs, segmentID)
		r.minCollinear = append(r.minCollinear, segmentID)
		r.push(left)
		r.push(right)
	}
	return r, nil
}

// eventStart returns the point of the event itself.
func (r *eventsRegistry) eventStart(e event) point.Point {
	return r.endpoints[e]
}

// eventEnd returns the point of the event's opposite.
func (r *eventsRegistry) eventEnd(e event) point.Point {
	return r.endpoints[r.opposites[e]]
}

// leftEventSegmentID returns the original input segment id of a left event.
func (r *eventsRegistry) leftEventSegmentID(e event) int {
	return r.segmentIDs[e/2]
}

// eventSegmentID returns the original input segment id of any event.
func (r *eventsRegistry) eventSegmentID(e event) int {
	if !e.isLeft() {
		e = r.opposites[e]
	}
	return r.leftEventSegmentID(e)
}

// segmentStart returns the lexicographically smaller original endpoint of an
// input segment. Original endpoints live at the segment's initial event pair
// and are never mutated by subdivision.
func (r *eventsRegistry) segmentStart(segmentID int) point.Point {
	return r.endpoints[leftEventOfSegment(segmentID)]
}

// segmentEnd returns the lexicographically larger original endpoint of an
// input segment.
func (r *eventsRegistry) segmentEnd(segmentID int) point.Point {
	return r.endpoints[rightEventOfSegment(segmentID)]
}

// areCollinear reports whether two input segments belong to the same collinear
// overlap class.
func (r *eventsRegistry) areCollinear(firstSegmentID, secondSegmentID int) bool {
	return r.findMinCollinear(firstSegmentID) == r.findMinCollinear(secondSegmentID)
}

// findMinCollinear walks the union-find to the class root. The write-through
// updates in mergeEqualSegmentEvents keep the walk logarithmically short.
func (r *eventsRegistry) findMinCollinear(segmentID int) int {
	candidate := segmentID
	for r.minCollinear[candidate] != candidate {
		candidate = r.minCollinear[candidate]
	}
	return candidate
}

// mergeEqualSegmentEvents unions the collinear classes of the segments behind
// two left events. The new root is the minimum of the two current roots, and
// it is written through to both ids and both old roots so later walks stay
// short.
func (r *eventsRegistry) mergeEqualSegmentEvents(first, second event) {
	firstSegmentID := r.leftEventSegmentID(first)
	secondSegmentID := r.leftEventSegmentID(second)
	firstMin := r.findMinCollinear(firstSegmentID)
	secondMin := r.findMinCollinear(secondSegmentID)
	minID := min(firstMin, secondMin)
	r.minCollinear[firstSegmentID] = minID
	r.minCollinear[secondSegmentID] = minID
	r.minCollinear[firstMin] = minID
	r.minCollinear[secondMin] = minID
}

// push adds an event to the events queue.
func (r *eventsRegistry) push(e event) {
	r.queue.push(e)
}

// pop removes and returns the next event in queue order.
func (r *eventsRegistry) pop() event {
	return r.queue.pop()
}

// add inserts a left event into the sweep-line status.
func (r *eventsRegistry) add(e event) {
	r.sweepLine.add(e)
}

// remove deletes a left event from the sweep-line status.
func (r *eventsRegistry) remove(e event) {
	r.sweepLine.remove(e)
}

// above returns the sweep-line neighbour immediately above e, or noEvent.
func (r *eventsRegistry) above(e event) event {
	return r.sweepLine.above(e)
}

// below returns the sweep-line neighbour immediately below e, or noEvent.
func (r *eventsRegistry) below(e event) event {
	return r.sweepLine.below(e)
}

// find returns the active event with geometry identical to e (same start,
// same end), or noEvent if no such event is resident in the sweep line.
func (r *eventsRegistry) find(e event) event {
	candidate := r.sweepLine.floor(e)
	if candidate == noEvent {
		return noEvent
	}
	if r.eventStart(candidate).Eq(r.eventStart(e)) && r.eventEnd(candidate).Eq(r.eventEnd(e)) {
		return candidate
	}
	return noEvent
}

// divide splits the sub-segment of left event e at midPoint, which must lie
// strictly inside it. Two fresh events are appended: the left event of the
// far half (midPoint to the old end) and the new right event of the near half
// (midPoint, paired with e). Opposite links are redirected so e keeps the near
// half and the old opposite joins the far half. The caller pushes whichever of
// the returned events belong in the queue.
//
// e must not be resident in the sweep line if the redirection would change its
// order relative to any neighbour; shortening a segment keeps its supporting
// line, so only identical-geometry ties are affected, and those are excluded
// by the equal-segment merge discipline.
func (r *eventsRegistry) divide(e event, midPoint point.Point) (midPointToEventStart, midPointToEventEnd event) {
	oppositeEvent := r.opposites[e]
	midPointToEventEnd = event(len(r.endpoints))
	r.segmentIDs = append(r.segmentIDs, r.leftEventSegmentID(e))
	r.endpoints = append(r.endpoints, midPoint)
	r.opposites = append(r.opposites, oppositeEvent)
	r.opposites[oppositeEvent] = midPointToEventEnd
	midPointToEventStart = event(len(r.endpoints))
	r.endpoints = append(r.endpoints, midPoint)
	r.opposites = append(r.opposites, e)
	r.opposites[e] = midPointToEventStart
	return midPointToEventStart, midPointToEventEnd
}

// divideEventByMidpoint splits e at p and queues both fresh events.
func (r *eventsRegistry) divideEventByMidpoint(e event, p point.Point) {
	pointToEventStart, pointToEventEnd := r.divide(e, p)
	r.push(pointToEventStart)
	r.push(pointToEventEnd)
}

// divideEventByMidpointCheckingAbove splits e at p, first looking at the event
// immediately above e in the sweep line: if that neighbour starts where e
// starts and ends exactly at p, it duplicates the near half about to be
// created, so it is removed, the division performed, and the neighbour merged
// with e's collinear class. The remove/divide/merge order matters: the
// neighbour's key must not be read after the opposite links move.
func (r *eventsRegistry) divideEventByMidpointCheckingAbove(e event, p point.Point) {
	aboveEvent := r.above(e)
	if aboveEvent != noEvent &&
		r.eventStart(aboveEvent).Eq(r.eventStart(e)) &&
		r.eventEnd(aboveEvent).Eq(p) {
		r.remove(aboveEvent)
		r.divideEventByMidpoint(e, p)
		r.mergeEqualSegmentEvents(e, aboveEvent)
		return
	}
	r.divideEventByMidpoint(e, p)
}

// divideEventByMidSegmentEventEndpoints resolves the collinear case where the
// sub-segment of midSegmentEvent lies strictly inside the sub-segment of e:
// e is cut at the inner segment's end, then at its start; the stub before the
// inner start is queued and the coinciding middle piece is merged with the
// inner segment's collinear class instead of entering the sweep twice.
func (r *eventsRegistry) divideEventByMidSegmentEventEndpoints(
	e, midSegmentEvent event,
	midSegmentEventStart, midSegmentEventEnd point.Point,
) {
	r.divideEventByMidpoint(e, midSegmentEventEnd)
	midSegmentStartToEventStart, midSegmentStartToMidSegmentEnd := r.divide(e, midSegmentEventStart)
	r.push(midSegmentStartToEventStart)
	r.mergeEqualSegmentEvents(midSegmentEvent, midSegmentStartToMidSegmentEnd)
}

// divideOverlappingEvents resolves the collinear case where two sub-segments
// overlap over [maxStart, minEnd] without containment: the later-starting one
// is cut at minEnd, the earlier-starting one at maxStart, and the two
// coinciding middle pieces are merged into one collinear class.
func (r *eventsRegistry) divideOverlappingEvents(
	minStartEvent, maxStartEvent event,
	maxStart, minEnd point.Point,
) {
	r.divideEventByMidpoint(maxStartEvent, minEnd)
	maxStartToMinStart, maxStartToMinEnd := r.divide(minStartEvent, maxStart)
	r.push(maxStartToMinStart)
	r.mergeEqualSegmentEvents(maxStartEvent, maxStartToMinEnd)
}

// detectIntersection inspects a pair of vertically adjacent active events
// (belowEvent immediately under e in the sweep line) and, where they meet,
// subdivides so that no active sub-segment straddles the meeting point and
// collinear overlaps shrink monotonically.
func (r *eventsRegistry) detectIntersection(belowEvent, e event) {
	eventStart := r.eventStart(e)
	eventEnd := r.eventEnd(e)
	belowEventStart := r.eventStart(belowEvent)
	belowEventEnd := r.eventEnd(belowEvent)
	eventStartOrientation := r.orienteer(belowEventEnd, belowEventStart, eventStart)
	eventEndOrientation := r.orienteer(belowEventEnd, belowEventStart, eventEnd)

	if eventStartOrientation == eventEndOrientation {
		if eventStartOrientation != types.Collinear {
			// e lies fully on one side of belowEvent: no intersection.
			return
		}
		// The segments are collinear; resolve the overlap, if any.
		switch {
		case eventStart.Eq(belowEventStart):
			// Shared start, different ends: cut the longer one at the shorter
			// one's end and merge the coinciding near halves.
			maxEndEvent, minEndEvent := e, belowEvent
			if eventEnd.Less(belowEventEnd) {
				maxEndEvent, minEndEvent = belowEvent, e
			}
			r.remove(maxEndEvent)
			minEnd := r.eventEnd(minEndEvent)
			_, minEndToMaxEndEvent := r.divide(maxEndEvent, minEnd)
			r.push(minEndToMaxEndEvent)
			r.mergeEqualSegmentEvents(e, belowEvent)
		case eventEnd.Eq(belowEventEnd):
			// Shared end, different starts: cut the earlier one at the later
			// one's start and merge the coinciding far halves.
			maxStartEvent, minStartEvent := e, belowEvent
			if eventStart.Less(belowEventStart) {
				maxStartEvent, minStartEvent = belowEvent, e
			}
			maxStart := r.eventStart(maxStartEvent)
			maxStartToMinStartEvent, maxStartToEndEvent := r.divide(minStartEvent, maxStart)
			r.push(maxStartToMinStartEvent)
			r.mergeEqualSegmentEvents(maxStartEvent, maxStartToEndEvent)
		case belowEventStart.Less(eventStart) && eventStart.Less(belowEventEnd):
			if eventEnd.Less(belowEventEnd) {
				// e strictly inside belowEvent.
				r.divideEventByMidSegmentEventEndpoints(belowEvent, e, eventStart, eventEnd)
			} else {
				// Overlap over [eventStart, belowEventEnd].
				r.divideOverlappingEvents(belowEvent, e, eventStart, belowEventEnd)
			}
		case eventStart.Less(belowEventStart) && belowEventStart.Less(eventEnd):
			if belowEventEnd.Less(eventEnd) {
				// belowEvent strictly inside e.
				r.divideEventByMidSegmentEventEndpoints(e, belowEvent, belowEventStart, belowEventEnd)
			} else {
				// Overlap over [belowEventStart, eventEnd].
				r.divideOverlappingEvents(e, belowEvent, belowEventStart, eventEnd)
			}
		}
		return
	}

	if eventStartOrientation == types.Collinear {
		// e starts on belowEvent's line; split belowEvent there if interior.
		if belowEventStart.Less(eventStart) && eventStart.Less(belowEventEnd) {
			r.divideEventByMidpoint(belowEvent, eventStart)
		}
		return
	}
	if eventEndOrientation == types.Collinear {
		if belowEventStart.Less(eventEnd) && eventEnd.Less(belowEventEnd) {
			r.divideEventByMidpoint(belowEvent, eventEnd)
		}
		return
	}

	belowEventStartOrientation := r.orienteer(eventStart, eventEnd, belowEventStart)
	belowEventEndOrientation := r.orienteer(eventStart, eventEnd, belowEventEnd)
	switch {
	case belowEventStartOrientation == types.Collinear:
		if eventStart.Less(belowEventStart) && belowEventStart.Less(eventEnd) {
			r.divideEventByMidpointCheckingAbove(e, belowEventStart)
		}
	case belowEventEndOrientation == types.Collinear:
		if eventStart.Less(belowEventEnd) && belowEventEnd.Less(eventEnd) {
			r.divideEventByMidpointCheckingAbove(e, belowEventEnd)
		}
	case belowEventStartOrientation != belowEventEndOrientation:
		// Proper crossing: both segments straddle each other's line.
		crossPoint := r.intersector(eventStart, eventEnd, belowEventStart, belowEventEnd)
		if belowEventStart.Less(crossPoint) && crossPoint.Less(belowEventEnd) {
			r.divideEventByMidpoint(belowEvent, crossPoint)
		}
		if eventStart.Less(crossPoint) && crossPoint.Less(eventEnd) {
			r.divideEventByMidpointCheckingAbove(e, crossPoint)
		}
	}
}

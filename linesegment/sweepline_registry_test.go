package linesegment

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"

	"github.com/mikenye/sweep2d/point"
)

func TestEventsRegistry_build(t *testing.T) {
	segments := []LineSegment{
		New(2, 2, 0, 0), // reversed on input
		New(1, 0, 1, 5), // vertical
	}
	r, err := newEventsRegistry(segments, defaultGeometryOptions(), false)
	require.NoError(t, err)

	// Endpoints are stored in lexicographic order per segment.
	assert.True(t, r.segmentStart(0).Eq(point.New(0, 0)))
	assert.True(t, r.segmentEnd(0).Eq(point.New(2, 2)))
	assert.True(t, r.segmentStart(1).Eq(point.New(1, 0)))
	assert.True(t, r.segmentEnd(1).Eq(point.New(1, 5)))

	// The opposite table is an involution.
	for e := range r.opposites {
		assert.Equal(t, event(e), r.opposites[r.opposites[e]])
	}

	// Each segment id maps to its own initial event pair.
	assert.Equal(t, 0, r.eventSegmentID(leftEventOfSegment(0)))
	assert.Equal(t, 0, r.eventSegmentID(rightEventOfSegment(0)))
	assert.Equal(t, 1, r.eventSegmentID(leftEventOfSegment(1)))
	assert.Equal(t, 1, r.eventSegmentID(rightEventOfSegment(1)))
}

func TestEventsRegistry_buildRejectsDegenerate(t *testing.T) {
	segments := []LineSegment{
		New(0, 0, 1, 1),
		New(7, 7, 7, 7),
	}
	_, err := newEventsRegistry(segments, defaultGeometryOptions(), false)
	require.Error(t, err)
	var degenerate DegenerateSegmentError
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, 1, degenerate.Index)
	assert.True(t, point.New(7, 7).Eq(degenerate.Point))
}

func TestEventsRegistry_divide(t *testing.T) {
	segments := []LineSegment{
		New(0, 0, 4, 0),
	}
	r, err := newEventsRegistry(segments, defaultGeometryOptions(), false)
	require.NoError(t, err)

	left := leftEventOfSegment(0)
	midToStart, midToEnd := r.divide(left, point.New(2, 0))

	// Two fresh events were appended: the far half's left event (even) and
	// the near half's new right event (odd).
	assert.Equal(t, event(2), midToEnd)
	assert.Equal(t, event(3), midToStart)
	assert.True(t, midToEnd.isLeft())
	assert.False(t, midToStart.isLeft())

	// Near half: original left event now ends at the midpoint.
	assert.True(t, r.eventStart(left).Eq(point.New(0, 0)))
	assert.True(t, r.eventEnd(left).Eq(point.New(2, 0)))

	// Far half: runs from the midpoint to the original right endpoint.
	assert.True(t, r.eventStart(midToEnd).Eq(point.New(2, 0)))
	assert.True(t, r.eventEnd(midToEnd).Eq(point.New(4, 0)))

	// The opposite table is still an involution and both halves carry the
	// original segment id.
	for e := range r.opposites {
		assert.Equal(t, event(e), r.opposites[r.opposites[e]])
	}
	assert.Equal(t, 0, r.eventSegmentID(midToEnd))
	assert.Equal(t, 0, r.eventSegmentID(midToStart))

	// Original endpoints survive subdivision untouched.
	assert.True(t, r.segmentStart(0).Eq(point.New(0, 0)))
	assert.True(t, r.segmentEnd(0).Eq(point.New(4, 0)))
}

func TestEventsRegistry_unionFind(t *testing.T) {
	segments := []LineSegment{
		New(0, 0, 1, 0),
		New(0, 1, 1, 1),
		New(0, 2, 1, 2),
		New(0, 3, 1, 3),
	}
	r, err := newEventsRegistry(segments, defaultGeometryOptions(), false)
	require.NoError(t, err)

	// Initially every segment is its own class.
	for i := range segments {
		assert.Equal(t, i, r.findMinCollinear(i))
	}
	assert.False(t, r.areCollinear(1, 2))

	r.mergeEqualSegmentEvents(leftEventOfSegment(1), leftEventOfSegment(2))
	assert.True(t, r.areCollinear(1, 2))
	assert.False(t, r.areCollinear(0, 1))
	assert.Equal(t, 1, r.findMinCollinear(2))

	// Merging across classes pulls everything to the smallest root.
	r.mergeEqualSegmentEvents(leftEventOfSegment(2), leftEventOfSegment(3))
	r.mergeEqualSegmentEvents(leftEventOfSegment(3), leftEventOfSegment(0))
	for i := range segments {
		assert.Equal(t, 0, r.findMinCollinear(i))
	}
	assert.True(t, r.areCollinear(1, 3))
}

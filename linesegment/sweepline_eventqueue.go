package linesegment

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"
)

// eventQueue is the min-priority queue driving the sweep. It holds event
// handles ordered by eventQueueCompare; two distinct events may legitimately
// compare equal (identical-geometry segments), so the queue is a heap rather
// than a keyed tree, which would collapse such duplicates.
//
// The comparator reads the registry's tables by reference, so opposite-link
// redirections performed during subdivision take effect in all subsequent
// comparisons.
type eventQueue struct {
	heap *binaryheap.Heap
}

// newEventQueue creates an empty queue whose comparator closes over the
// registry.
func newEventQueue(r *eventsRegistry) *eventQueue {
	return &eventQueue{
		heap: binaryheap.NewWith(func(a, b interface{}) int {
			return eventQueueCompare(r, a.(event), b.(event))
		}),
	}
}

// empty reports whether the queue holds no events.
func (q *eventQueue) empty() bool {
	return q.heap.Empty()
}

// push adds an event to the queue.
func (q *eventQueue) push(e event) {
	q.heap.Push(e)
}

// pop removes and returns the minimum event.
func (q *eventQueue) pop() event {
	value, ok := q.heap.Pop()
	if !ok {
		panic(fmt.Errorf("tried to pop from empty event queue"))
	}
	return value.(event)
}

// eventQueueCompare orders events for processing:
//
//  1. By the event's own point, lexicographically (x, then y): the sweep
//     visits points left to right, bottom to top.
//  2. At a shared point, right events before left events: a segment closing at
//     a point leaves the sweep line before another opens there, so segments
//     meeting end-to-start are never concurrent.
//  3. Among events of the same side at a shared point, by the opposite
//     endpoint, lexicographically: a deterministic order that the sweep-line
//     key (which reads opposite endpoints) agrees with.
func eventQueueCompare(r *eventsRegistry, a, b event) int {
	if c := r.endpoints[a].Compare(r.endpoints[b]); c != 0 {
		return c
	}
	if a.isLeft() != b.isLeft() {
		if a.isLeft() {
			return 1
		}
		return -1
	}
	return r.endpoints[r.opposites[a]].Compare(r.endpoints[r.opposites[b]])
}

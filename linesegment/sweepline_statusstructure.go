package linesegment

import (
	"cmp"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/mikenye/sweep2d/types"
)

// sweepLineStatus is the status structure of the sweep: the ordered set of
// left events whose sub-segments currently intersect the sweep line, ordered
// bottom-to-top by sweepLineCompare.
//
// The comparator reads the registry's tables by reference. The engine never
// redirects the opposite link of an event while that event is resident here,
// except where the redirection provably cannot reorder it (shortening a
// sub-segment keeps its supporting line).
type sweepLineStatus struct {
	tree *rbt.Tree
}

// newSweepLineStatus creates an empty status structure whose comparator closes
// over the registry.
func newSweepLineStatus(r *eventsRegistry) *sweepLineStatus {
	return &sweepLineStatus{
		tree: rbt.NewWith(func(a, b interface{}) int {
			return sweepLineCompare(r, a.(event), b.(event))
		}),
	}
}

// add inserts a left event.
func (s *sweepLineStatus) add(e event) {
	s.tree.Put(e, nil)
}

// remove deletes a left event.
func (s *sweepLineStatus) remove(e event) {
	s.tree.Remove(e)
}

// above returns the event immediately above e, or noEvent. e must be resident.
func (s *sweepLineStatus) above(e event) event {
	node := s.tree.GetNode(e)
	if node == nil {
		return noEvent
	}
	iter := s.tree.IteratorAt(node)
	if iter.Next() {
		return iter.Key().(event)
	}
	return noEvent
}

// below returns the event immediately below e, or noEvent. e must be resident.
func (s *sweepLineStatus) below(e event) event {
	node := s.tree.GetNode(e)
	if node == nil {
		return noEvent
	}
	iter := s.tree.IteratorAt(node)
	if iter.Prev() {
		return iter.Key().(event)
	}
	return noEvent
}

// floor returns the largest resident event not above e, or noEvent.
func (s *sweepLineStatus) floor(e event) event {
	node, found := s.tree.Floor(e)
	if !found {
		return noEvent
	}
	return node.Key.(event)
}

// sweepLineCompare orders two active sub-segments by the "below" relation at
// the current sweep position. With a and b both alive at the sweep abscissa,
// the order is total and strict.
//
// Writing (s, e) for a's endpoints and (s', e') for b's:
//
//   - If both of b's endpoints lie strictly on one side of a's line, b is
//     above a exactly when that side is the counterclockwise one.
//   - If a and b are collinear, ties break on the start point (y before x)
//     and then the end point (y before x). When starts coincide this puts the
//     shorter segment first on rising, horizontal and vertical lines, and the
//     longer one first on falling lines. The y-first
//     orientation of this tie-break is relied upon elsewhere: a co-started
//     sub-segment ending at a pending split point must sort above its longer
//     sibling on falling lines, which is where the duplicate check during
//     subdivision looks for it.
//   - Otherwise b straddles a's line and the comparison is re-asked of b,
//     with degenerate shared-endpoint cases resolved by whichever endpoint
//     orientation is decisive.
func sweepLineCompare(r *eventsRegistry, a, b event) int {
	if a == b {
		return 0
	}
	start, otherStart := r.endpoints[a], r.endpoints[b]
	end, otherEnd := r.endpoints[r.opposites[a]], r.endpoints[r.opposites[b]]

	otherStartOrientation := r.orienteer(start, end, otherStart)
	otherEndOrientation := r.orienteer(start, end, otherEnd)
	if otherStartOrientation == otherEndOrientation {
		if otherStartOrientation != types.Collinear {
			// b lies fully on one side of a.
			if otherStartOrientation == types.Counterclockwise {
				return -1
			}
			return 1
		}
		// Segments are collinear.
		if start.Y() != otherStart.Y() {
			return cmp.Compare(start.Y(), otherStart.Y())
		}
		if start.X() != otherStart.X() {
			return cmp.Compare(start.X(), otherStart.X())
		}
		if end.Y() != otherEnd.Y() {
			return cmp.Compare(end.Y(), otherEnd.Y())
		}
		return cmp.Compare(end.X(), otherEnd.X())
	}

	startOrientation := r.orienteer(otherStart, otherEnd, start)
	endOrientation := r.orienteer(otherStart, otherEnd, end)
	if startOrientation == endOrientation {
		if startOrientation == types.Clockwise {
			return -1
		}
		return 1
	}
	if otherStartOrientation == types.Collinear {
		if otherEndOrientation == types.Counterclockwise {
			return -1
		}
		return 1
	}
	if startOrientation == types.Collinear {
		if endOrientation == types.Clockwise {
			return -1
		}
		return 1
	}
	if endOrientation == types.Collinear {
		if startOrientation == types.Clockwise {
			return -1
		}
		return 1
	}
	if otherStartOrientation == types.Counterclockwise {
		return -1
	}
	return 1
}

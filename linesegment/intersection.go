package linesegment

import (
	"fmt"

	"github.com/mikenye/sweep2d/point"
	"github.com/mikenye/sweep2d/types"
)

// Intersection describes how one pair of input segments intersects.
//
// Fields:
//   - FirstSegmentID, SecondSegmentID: Indices of the two segments in the
//     input sequence. The two ids always differ; a segment is never reported
//     against itself.
//   - Relation: The [types.Relation] between the pair.
//   - Start, End: The locus of the intersection. For point relations
//     ([types.RelationTouch], [types.RelationCross]) Start and End coincide;
//     for collinear relations they span the shared extent, with Start
//     lexicographically not after End.
type Intersection struct {
	FirstSegmentID  int
	SecondSegmentID int
	Relation        types.Relation
	Start           point.Point
	End             point.Point
}

// Eq reports whether two Intersection records are identical: same segment ids
// in the same order, same relation, and the same locus.
func (i Intersection) Eq(other Intersection) bool {
	return i.FirstSegmentID == other.FirstSegmentID &&
		i.SecondSegmentID == other.SecondSegmentID &&
		i.Relation == other.Relation &&
		i.Start.Eq(other.Start) &&
		i.End.Eq(other.End)
}

// Normalized returns the record with segment ids in ascending order, flipping
// the containment direction of the relation when the ids swap. Symmetric
// relations are unaffected by the swap.
func (i Intersection) Normalized() Intersection {
	if i.FirstSegmentID <= i.SecondSegmentID {
		return i
	}
	return Intersection{
		FirstSegmentID:  i.SecondSegmentID,
		SecondSegmentID: i.FirstSegmentID,
		Relation:        i.Relation.Flipped(),
		Start:           i.Start,
		End:             i.End,
	}
}

// String returns a human-readable representation of the intersection, e.g.
//
//	segments 0 & 1: RelationCross at (1,1)
//	segments 0 & 1: RelationOverlap over (1,0)(3,0)
func (i Intersection) String() string {
	if i.Start.Eq(i.End) {
		return fmt.Sprintf(
			"segments %d & %d: %s at %s",
			i.FirstSegmentID, i.SecondSegmentID, i.Relation, i.Start,
		)
	}
	return fmt.Sprintf(
		"segments %d & %d: %s over %s%s",
		i.FirstSegmentID, i.SecondSegmentID, i.Relation, i.Start, i.End,
	)
}

package linesegment

import (
	"github.com/google/btree"
)

// intersectionResults is a private utility type that accumulates, normalizes
// and deduplicates intersection records.
//
// The raw sweep legitimately reports a pair once per concurrent event point
// and in either id order; this collection maps every record to its canonical
// form ([Intersection.Normalized]) and stores it in a balanced tree so that
// duplicates collapse and the final slice comes out in a deterministic order.
type intersectionResults struct {
	results *btree.BTreeG[Intersection]
}

// newIntersectionResults creates an empty results collection.
func newIntersectionResults() *intersectionResults {
	return &intersectionResults{
		results: btree.NewG[Intersection](2, intersectionLess),
	}
}

// Add inserts the canonical form of an intersection record, replacing any
// identical record already present.
func (R *intersectionResults) Add(i Intersection) {
	R.results.ReplaceOrInsert(i.Normalized())
}

// Results returns the accumulated records in ascending canonical order.
func (R *intersectionResults) Results() []Intersection {
	final := make([]Intersection, 0, R.results.Len())
	R.results.Ascend(func(item Intersection) bool {
		final = append(final, item)
		return true
	})
	return final
}

// intersectionLess orders canonical intersection records: by segment id pair,
// then relation, then locus. Records comparing equal in both directions are
// treated as duplicates by the tree.
func intersectionLess(a, b Intersection) bool {
	if a.FirstSegmentID != b.FirstSegmentID {
		return a.FirstSegmentID < b.FirstSegmentID
	}
	if a.SecondSegmentID != b.SecondSegmentID {
		return a.SecondSegmentID < b.SecondSegmentID
	}
	if a.Relation != b.Relation {
		return a.Relation < b.Relation
	}
	if c := a.Start.Compare(b.Start); c != 0 {
		return c < 0
	}
	return a.End.Compare(b.End) < 0
}

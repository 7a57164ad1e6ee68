package linesegment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikenye/sweep2d/types"
)

func FuzzFindIntersections_2segments(f *testing.F) {

	f.Add(0.0, 0.0, 10.0, 10.0, 10.0, 0.0, 20.0, 10.0)
	f.Add(0.0, 0.0, 10.0, 10.0, 10.0, 10.0, 20.0, 0.0)
	f.Add(0.0, 10.0, 10.0, 0.0, 10.0, 0.0, 20.0, 10.0)
	f.Add(0.0, 10.0, 10.0, 20.0, 0.0, 10.0, 10.0, 0.0)
	f.Add(0.0, 20.0, 10.0, 10.0, 10.0, 10.0, 0.0, 0.0)
	f.Add(0.0, 0.0, 10.0, 10.0, 10.0, 0.0, 0.0, 10.0)
	f.Add(10.0, 20.0, 10.0, 0.0, 0.0, 20.0, 20.0, 0.0)
	f.Add(10.0, 20.0, 10.0, 0.0, 20.0, 20.0, 0.0, 0.0)
	f.Add(0.0, 10.0, 20.0, 10.0, 20.0, 20.0, 0.0, 0.0)
	f.Add(0.0, 10.0, 20.0, 10.0, 0.0, 20.0, 20.0, 0.0)
	f.Add(10.0, 20.0, 10.0, 0.0, 0.0, 10.0, 20.0, 10.0)
	f.Add(20.0, 20.0, 0.0, 0.0, 0.0, 20.0, 20.0, 0.0)

	// Coordinates are snapped to small integers so every comparison except a
	// crossing locus stays exact; crossing loci may differ in the last bits
	// between the sweep and the brute force because the two compute them from
	// differently ordered operands.
	snap := func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return math.Trunc(math.Mod(v, 64))
	}

	f.Fuzz(func(t *testing.T, ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 float64) {
		segA := New(snap(ax1), snap(ay1), snap(ax2), snap(ay2))
		t.Logf("Input segment A: %s", segA)
		segB := New(snap(bx1), snap(by1), snap(bx2), snap(by2))
		t.Logf("Input segment B: %s", segB)
		if segA.IsDegenerate() || segB.IsDegenerate() {
			t.Skip("degenerate segment")
		}
		input := []LineSegment{segA, segB}

		fromSweep, err := FindIntersections(input)
		require.NoError(t, err)
		t.Logf("sweep line: %v", fromSweep)

		fromNaive, err := FindIntersectionsNaive(input)
		require.NoError(t, err)
		t.Logf("brute force: %v", fromNaive)

		require.Equal(t, len(fromNaive), len(fromSweep), "results size mismatch")
		for i := range fromNaive {
			expected, actual := fromNaive[i], fromSweep[i]
			assert.Equal(t, expected.FirstSegmentID, actual.FirstSegmentID, "first id mismatch")
			assert.Equal(t, expected.SecondSegmentID, actual.SecondSegmentID, "second id mismatch")
			assert.Equal(t, expected.Relation, actual.Relation, "relation mismatch")
			if expected.Relation == types.RelationCross {
				assert.InDelta(t, expected.Start.X(), actual.Start.X(), 1e-9, "crossing x mismatch")
				assert.InDelta(t, expected.Start.Y(), actual.Start.Y(), 1e-9, "crossing y mismatch")
			} else {
				assert.True(t, expected.Start.Eq(actual.Start), "locus start mismatch")
				assert.True(t, expected.End.Eq(actual.End), "locus end mismatch")
			}
		}
	})
}

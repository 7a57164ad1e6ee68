package linesegment

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

// randomOrthogonalSegments builds a reproducible mix of horizontal and
// vertical segments with integer coordinates. Axis-parallel input keeps every
// discovered event point exactly representable while still producing a
// realistic number of crossings and collinear overlaps.
func randomOrthogonalSegments(n int) []LineSegment {
	rng := rand.New(rand.NewPCG(11, 42))
	span := int64(2 * n)
	segments := make([]LineSegment, n)
	for i := range segments {
		a := float64(rng.Int64N(span))
		b := float64(rng.Int64N(span))
		c := float64(rng.Int64N(span))
		if b == c {
			c++
		}
		if i%2 == 0 {
			segments[i] = New(b, a, c, a) // horizontal
		} else {
			segments[i] = New(a, b, a, c) // vertical
		}
	}
	return segments
}

func BenchmarkFindIntersections(b *testing.B) {
	for _, n := range []int{16, 64, 256} {
		segments := randomOrthogonalSegments(n)
		b.Run(fmt.Sprintf("segments=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := FindIntersections(segments); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFindIntersectionsNaive(b *testing.B) {
	for _, n := range []int{16, 64, 256} {
		segments := randomOrthogonalSegments(n)
		b.Run(fmt.Sprintf("segments=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := FindIntersectionsNaive(segments); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

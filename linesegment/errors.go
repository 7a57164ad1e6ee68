package linesegment

import (
	"fmt"

	"github.com/mikenye/sweep2d/point"
)

// DegenerateSegmentError is returned when an input segment has equal
// endpoints. The sweep has no meaningful order for a zero-length segment, so
// building the event tables fails up front rather than producing a partial
// result.
type DegenerateSegmentError struct {
	// Index is the position of the offending segment in the input sequence.
	Index int

	// Point is the coincident endpoint of the degenerate segment.
	Point point.Point
}

// Error implements the error interface.
func (e DegenerateSegmentError) Error() string {
	return fmt.Sprintf(
		"degenerate segment found at index %d with both endpoints being: %s",
		e.Index, e.Point,
	)
}

package point

import (
	"github.com/mikenye/sweep2d/types"
)

// Orientation determines the relative orientation of three points in a 2D plane.
//
// This function calculates whether three points p, q, and r make a clockwise
// turn, a counterclockwise turn, or are collinear, using the cross product of
// the vectors (q-p) and (r-p).
//
// Parameters:
//   - p, q, r (Point): The three points to determine orientation for
//
// Returns:
//   - types.Orientation: The orientation relationship:
//   - [types.Collinear]: The points lie on a straight line
//   - [types.Clockwise]: The points make a clockwise turn
//   - [types.Counterclockwise]: The points make a counterclockwise turn
//
// Behavior:
//   - Relies on the exact sign of the cross product:
//   - Positive → Counterclockwise
//   - Negative → Clockwise
//   - Zero → Collinear
//
// Note:
//   - The sign is exact only while coordinates and their products stay within
//     the range float64 represents exactly (integer coordinates up to 2²⁶ are
//     always safe). Callers outside that range should inject an exact
//     orientation predicate instead.
func Orientation(p, q, r Point) types.Orientation {
	val := (q.Sub(p)).CrossProduct(r.Sub(p))

	if val == 0 {
		return types.Collinear
	}
	if val > 0 {
		return types.Counterclockwise
	}
	return types.Clockwise
}

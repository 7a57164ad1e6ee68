// Package point defines the foundational geometric primitive in the sweep2d
// library, the Point type. All other geometric types are built upon this type.
//
// # Overview
//
// The Point type represents a two-dimensional point with floating-point
// coordinates. It provides the operations the plane sweep is built on:
// lexicographic ordering, exact equality, vector arithmetic and the cross
// product used by the orientation predicate.
//
// # Exactness
//
// Unlike libraries that tolerate floating-point noise through an epsilon, every
// comparison in this package is exact. The sweep engine's event tables and its
// collinearity bookkeeping are defined over exact point equality; callers whose
// coordinates carry rounding error should snap them before building segments.
package point

import (
	"encoding/json"
	"fmt"
)

// Point represents a point in a 2D Cartesian coordinate system with x and y
// coordinates of type float64.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
//
// Parameters:
//   - x (float64): The x-coordinate of the point.
//   - y (float64): The y-coordinate of the point.
//
// Returns:
//   - Point: A new Point instance with the given coordinates.
func New(x, y float64) Point {
	return Point{
		x: x,
		y: y,
	}
}

// Compare orders two points lexicographically: first by x-coordinate, then by
// y-coordinate. This is the order in which the sweep line visits points.
//
// Returns:
//   - int: -1 if p sorts before q, 0 if the points are equal, 1 if p sorts after q.
func (p Point) Compare(q Point) int {
	switch {
	case p.x < q.x:
		return -1
	case p.x > q.x:
		return 1
	case p.y < q.y:
		return -1
	case p.y > q.y:
		return 1
	default:
		return 0
	}
}

// Coordinates returns the X and Y coordinates of the Point as separate values.
//
// Returns:
//   - x (float64): The X-coordinate of the point.
//   - y (float64): The Y-coordinate of the point.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// CrossProduct returns the 2D cross product (determinant) of two vectors:
//
//	p × q = p.x * q.y - p.y * q.x
//
// This function is useful in computational geometry for determining relative
// orientation:
//   - A positive result indicates a counterclockwise turn (left turn),
//   - A negative result indicates a clockwise turn (right turn),
//   - A result of zero indicates that the vectors are collinear.
//
// Returns:
//   - float64: The signed cross product value.
func (p Point) CrossProduct(q Point) float64 {
	return p.x*q.y - p.y*q.x
}

// DotProduct calculates the dot product of the vector represented by Point p
// with the vector represented by Point q.
//
// Returns:
//   - float64: The dot product of the vectors represented by p and q.
func (p Point) DotProduct(q Point) float64 {
	return (p.x * q.x) + (p.y * q.y)
}

// Eq reports whether the calling Point p and Point q have exactly equal
// coordinates.
//
// Returns:
//   - bool: True if p and q are equal; otherwise, false.
func (p Point) Eq(q Point) bool {
	return p.x == q.x && p.y == q.y
}

// Less reports whether p sorts lexicographically before q (x first, then y).
func (p Point) Less(q Point) bool {
	return p.Compare(q) < 0
}

// MarshalJSON serializes Point as JSON.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{
		X: p.x,
		Y: p.y,
	})
}

// String returns a string representation of the Point p in the format "(x,y)".
// This provides a readable format for the point's coordinates, useful for
// debugging and displaying points in logs or output.
//
// Returns:
//   - string: A string representation of the Point in the format "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)", p.x, p.y)
}

// Sub returns the vector from point q to point p.
func (p Point) Sub(q Point) Point {
	return New(p.x-q.x, p.y-q.y)
}

// Translate moves the Point by a given displacement vector.
//
// Parameters:
//   - delta (Point): The displacement vector to apply.
//
// Returns:
//   - Point: A new Point resulting from the translation.
func (p Point) Translate(delta Point) Point {
	return New(p.x+delta.x, p.y+delta.y)
}

// UnmarshalJSON deserializes JSON into a Point.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x = temp.X
	p.y = temp.Y
	return nil
}

// X returns the x-coordinate of the Point p.
//
// Returns:
//   - float64: The x-coordinate of the Point.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the Point p.
//
// Returns:
//   - float64: The y-coordinate of the Point.
func (p Point) Y() float64 {
	return p.y
}

// Max returns the lexicographically larger of two points.
func Max(p, q Point) Point {
	if p.Less(q) {
		return q
	}
	return p
}

// Min returns the lexicographically smaller of two points.
func Min(p, q Point) Point {
	if q.Less(p) {
		return q
	}
	return p
}

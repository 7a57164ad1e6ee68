package options

import (
	"github.com/mikenye/sweep2d/point"
	"github.com/mikenye/sweep2d/types"
)

// Orienteer is the signature of an orientation predicate: it reports the turn
// direction of the ordered point triple (p, q, r).
//
// An Orienteer must be pure: it may read only its arguments and must return
// the same result for the same inputs.
type Orienteer func(p, q, r point.Point) types.Orientation

// Intersector is the signature of a crossing-point predicate: given two
// segments (a, b) and (c, d) that properly cross (non-parallel, with the
// intersection on both segments), it returns the unique crossing point.
//
// An Intersector must be pure, and is only ever invoked on segment pairs whose
// endpoint orientations already prove a proper crossing.
type Intersector func(a, b, c, d point.Point) point.Point

// GeometryOptionsFunc is a functional option type used to configure optional
// parameters in geometric operations. Functions that accept a
// GeometryOptionsFunc parameter allow users to customize behavior without
// modifying the primary function signature.
//
// GeometryOptionsFunc functions take a pointer to a GeometryOptions struct and
// modify its fields to apply specific configurations.
type GeometryOptionsFunc func(*GeometryOptions)

// GeometryOptions defines a set of configurable parameters for geometric
// operations. These options allow users to customize the behavior of functions
// in the library, such as substituting the geometric predicates the sweep is
// built on.
type GeometryOptions struct {
	// Orienteer is the orientation predicate used for all turn-direction
	// decisions. Callers seed it with their package default before the
	// options are applied; the value left after the options is used as is.
	Orienteer Orienteer

	// Intersector computes the crossing point of two properly crossing
	// segments. Callers seed it with their package default before the
	// options are applied; the value left after the options is used as is.
	Intersector Intersector
}

// ApplyGeometryOptions applies a set of functional options to a given options
// struct, starting with a set of default values.
//
// Parameters:
//   - defaults (GeometryOptions): The initial options struct containing default values.
//   - opts: A variadic slice of GeometryOptionsFunc functions that modify the options struct.
//
// Behavior:
//   - Each GeometryOptionsFunc function in the opts slice is applied in the order it is provided.
//   - The defaults parameter serves as a base configuration, which can be
//     overridden by the provided options.
//
// Returns:
//
// A new GeometryOptions struct that reflects the default values combined with
// any modifications made by the GeometryOptionsFunc functions.
func ApplyGeometryOptions(defaults GeometryOptions, opts ...GeometryOptionsFunc) GeometryOptions {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}

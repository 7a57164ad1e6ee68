// Package sweep2d computes pairwise relations between 2D line segments using
// a Bentley-Ottmann plane sweep.
//
// Given a finite multiset of line segments, the library reports, for every
// pair of segments that share at least one point, the relation between them
// (touch, cross, overlap, equal, component or composite) together with the
// one- or two-point locus of the intersection, in output-sensitive
// O((n + k) log n) time.
//
// # Coordinate System
//
// This library assumes a standard Cartesian coordinate system where the x-axis
// increases to the right and the y-axis increases upward. All geometric
// operations and relationships (e.g., clockwise or counterclockwise points)
// are based on this convention.
//
// # Core Packages
//
//   - [github.com/mikenye/sweep2d/point]: The Point primitive and the default
//     orientation predicate.
//   - [github.com/mikenye/sweep2d/linesegment]: The LineSegment type and the
//     sweep engine ([linesegment.FindIntersections], [linesegment.Sweep]),
//     plus a naive reference implementation.
//   - [github.com/mikenye/sweep2d/types]: Shared Orientation and Relation
//     enums.
//   - [github.com/mikenye/sweep2d/options]: Functional options, including
//     predicate injection for callers that need extended-precision geometry.
//
// The root package provides boolean convenience queries built on the lazy
// sweep: [SegmentsIntersect], [SegmentsCrossOrOverlap] and
// [ContourSelfIntersects]. All three abandon the sweep as soon as the answer
// is known.
//
// # Exactness
//
// All comparisons are exact; there is no epsilon. The default predicates are
// correct while coordinates and their pairwise products are exactly
// representable in float64 (integer-valued coordinates up to 2²⁶ always are).
//
// # Acknowledgments
//
// The sweep follows the event-registry formulation of the Bentley-Ottmann
// algorithm, with segment subdivision at discovered event points and a
// union-find over collinear overlap classes. See J. L. Bentley and
// T. A. Ottmann, "Algorithms for Reporting and Counting Geometric
// Intersections", IEEE Transactions on Computers, 1979.
package sweep2d

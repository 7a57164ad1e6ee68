// Package options provides configurable settings for geometric operations in
// the sweep2d library.
//
// This package defines a functional options pattern, allowing users to modify
// the behavior of various geometric functions without changing their
// signatures. The options are applied using functional parameters that modify
// a GeometryOptions struct.
//
// # Key Features
//
//   - Predicate Injection: The Orienteer and Intersector parameters let callers
//     substitute their own geometric predicates (for example, exact
//     extended-precision implementations) for the library defaults.
//   - Functional Options Pattern: The GeometryOptionsFunc type provides a way
//     to apply optional configurations without requiring additional parameters
//     in function signatures.
//
// # Functional Options
//
// The package provides the following functional options:
//
//   - WithOrienteer(o Orienteer) GeometryOptionsFunc: Sets the orientation predicate.
//   - WithIntersector(i Intersector) GeometryOptionsFunc: Sets the crossing-point predicate.
//
// These options are applied using ApplyGeometryOptions, which takes a default
// GeometryOptions struct and modifies it based on the provided options.
package options

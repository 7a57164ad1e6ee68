package options

// WithOrienteer returns a [GeometryOptionsFunc] that sets the orientation
// predicate for functions that support it.
//
// Parameters:
//   - o: The orientation predicate to use. A nil value is ignored, leaving the
//     package default in place.
//
// Returns:
//   - A [GeometryOptionsFunc] function that modifies the Orienteer field in the
//     options struct.
func WithOrienteer(o Orienteer) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		if o == nil {
			return
		}
		opts.Orienteer = o
	}
}

// WithIntersector returns a [GeometryOptionsFunc] that sets the crossing-point
// predicate for functions that support it.
//
// Parameters:
//   - i: The crossing-point predicate to use. A nil value is ignored, leaving
//     the package default in place.
//
// Returns:
//   - A [GeometryOptionsFunc] function that modifies the Intersector field in
//     the options struct.
func WithIntersector(i Intersector) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		if i == nil {
			return
		}
		opts.Intersector = i
	}
}

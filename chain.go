package wrapkit

// Transform is a single sanitization step. Steps must be pure: same input,
// same output, no retained references to the value they receive. Steps on
// reference types (slices, maps, pointers) must return a fresh value rather
// than mutating the input in place.
type Transform[T any] func(T) T

// Chain is an ordered sanitization pipeline. Steps run left to right, each
// receiving the previous step's output. An empty chain is the identity.
type Chain[T any] []Transform[T]

// Apply runs the chain over v and returns the sanitized result. Sanitization
// always completes; there is no failure path.
func (c Chain[T]) Apply(v T) T {
	for _, step := range c {
		v = step(v)
	}
	return v
}

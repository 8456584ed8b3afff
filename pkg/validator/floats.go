package validator

import "math"

// Float covers the built-in floating-point types.
type Float interface {
	~float32 | ~float64
}

// Finite reports whether v is a real number: neither NaN nor an infinity.
func Finite[T Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// NotNaN reports whether v is not NaN. Infinities are accepted.
func NotNaN[T Float](v T) bool {
	return !math.IsNaN(float64(v))
}

// Percentage reports whether v lies within [0, 100].
func Percentage[T Numeric](v T) bool {
	return v >= 0 && v <= 100
}

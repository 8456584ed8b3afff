package sanitizer

import "math"

// Numeric represents numeric types that support basic arithmetic operations.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Signed represents signed numeric types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Float represents floating-point numeric types.
type Float interface {
	~float32 | ~float64
}

// Clamp returns a step that constrains values to the inclusive range
// [lo, hi].
func Clamp[T Numeric](lo, hi T) func(T) T {
	return func(v T) T {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
}

// ClampMin returns a step that raises values below lo up to lo.
func ClampMin[T Numeric](lo T) func(T) T {
	return func(v T) T {
		if v < lo {
			return lo
		}
		return v
	}
}

// ClampMax returns a step that lowers values above hi down to hi.
func ClampMax[T Numeric](hi T) func(T) T {
	return func(v T) T {
		if v > hi {
			return hi
		}
		return v
	}
}

// Abs replaces a signed value with its absolute value.
func Abs[T Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// ZeroIfNegative floors negative values at zero.
func ZeroIfNegative[T Signed](v T) T {
	if v < 0 {
		return 0
	}
	return v
}

// Assign returns a step that discards its input and yields the given
// constant.
func Assign[T any](value T) func(T) T {
	return func(T) T {
		return value
	}
}

// RoundTo returns a step that rounds to the given number of decimal places.
func RoundTo[T Float](places int) func(T) T {
	if places < 0 {
		places = 0
	}
	multiplier := math.Pow(10, float64(places))
	return func(v T) T {
		return T(math.Round(float64(v)*multiplier) / multiplier)
	}
}

// Round rounds to the nearest integer.
func Round[T Float](v T) T {
	return T(math.Round(float64(v)))
}

// RoundUp rounds up to the nearest integer.
func RoundUp[T Float](v T) T {
	return T(math.Ceil(float64(v)))
}

// RoundDown rounds down to the nearest integer.
func RoundDown[T Float](v T) T {
	return T(math.Floor(float64(v)))
}

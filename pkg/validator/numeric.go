package validator

// Numeric covers all built-in integer and float types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Positive reports whether v is greater than zero.
func Positive[T Numeric](v T) bool { return v > 0 }

// Negative reports whether v is less than zero.
func Negative[T Numeric](v T) bool { return v < 0 }

// NonNegative reports whether v is zero or greater.
func NonNegative[T Numeric](v T) bool { return v >= 0 }

// NonZero reports whether v is not zero.
func NonZero[T Numeric](v T) bool { return v != 0 }

// MinOf returns a predicate that accepts values of at least min.
func MinOf[T Numeric](min T) func(T) bool {
	return func(v T) bool { return v >= min }
}

// MaxOf returns a predicate that accepts values of at most max.
func MaxOf[T Numeric](max T) func(T) bool {
	return func(v T) bool { return v <= max }
}

// Between returns a predicate that accepts values within [min, max]
// inclusive.
func Between[T Numeric](min, max T) func(T) bool {
	return func(v T) bool { return v >= min && v <= max }
}

// Equals returns a predicate that accepts exactly want.
func Equals[T comparable](want T) func(T) bool {
	return func(v T) bool { return v == want }
}

// NotEquals returns a predicate that rejects exactly want.
func NotEquals[T comparable](want T) func(T) bool {
	return func(v T) bool { return v != want }
}

// MultipleOf returns a predicate that accepts integers divisible by n.
// A zero n accepts only zero.
func MultipleOf[T ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](n T) func(T) bool {
	return func(v T) bool {
		if n == 0 {
			return v == 0
		}
		return v%n == 0
	}
}

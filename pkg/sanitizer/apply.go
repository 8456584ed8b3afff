package sanitizer

// Apply runs value through the given steps in order and returns the result.
func Apply[T any](value T, steps ...func(T) T) T {
	result := value

	for _, step := range steps {
		result = step(result)
	}

	return result
}

// Compose fuses several steps into one reusable step. Preferred over
// repeated Apply calls when the same pipeline runs many times.
func Compose[T any](steps ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, steps...)
	}
}

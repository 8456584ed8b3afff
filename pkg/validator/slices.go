package validator

// Each returns a predicate that accepts slices whose every element
// satisfies pred. The empty slice is accepted; pair with MinLen to require
// elements.
func Each[S ~[]E, E any](pred func(E) bool) func(S) bool {
	return func(s S) bool {
		for _, e := range s {
			if !pred(e) {
				return false
			}
		}
		return true
	}
}

// Some returns a predicate that accepts slices with at least one element
// satisfying pred.
func Some[S ~[]E, E any](pred func(E) bool) func(S) bool {
	return func(s S) bool {
		for _, e := range s {
			if pred(e) {
				return true
			}
		}
		return false
	}
}

// MinLen returns a predicate that accepts slices with at least n elements.
func MinLen[S ~[]E, E any](n int) func(S) bool {
	return func(s S) bool { return len(s) >= n }
}

// MaxLen returns a predicate that accepts slices with at most n elements.
func MaxLen[S ~[]E, E any](n int) func(S) bool {
	return func(s S) bool { return len(s) <= n }
}

// LenBetween returns a predicate that accepts slices whose length is
// within [min, max] inclusive.
func LenBetween[S ~[]E, E any](min, max int) func(S) bool {
	return func(s S) bool { return len(s) >= min && len(s) <= max }
}

// Unique reports whether no element of s occurs twice. Empty and
// single-element slices are unique.
func Unique[S ~[]E, E comparable](s S) bool {
	seen := make(map[E]struct{}, len(s))
	for _, e := range s {
		if _, dup := seen[e]; dup {
			return false
		}
		seen[e] = struct{}{}
	}
	return true
}

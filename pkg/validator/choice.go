package validator

import "slices"

// OneOf returns a predicate that accepts values equal to one of allowed.
// With no arguments the predicate accepts nothing.
func OneOf[T comparable](allowed ...T) func(T) bool {
	set := slices.Clone(allowed)
	return func(v T) bool { return slices.Contains(set, v) }
}

// NoneOf returns a predicate that rejects values equal to one of banned.
// With no arguments the predicate accepts everything.
func NoneOf[T comparable](banned ...T) func(T) bool {
	set := slices.Clone(banned)
	return func(v T) bool { return !slices.Contains(set, v) }
}

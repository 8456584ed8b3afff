package sanitizer

import (
	"cmp"
	"slices"
)

// Sort returns a sorted copy of the slice. The input is never mutated;
// every slice step returns a fresh slice so chains cannot alias caller
// data.
func Sort[S ~[]E, E cmp.Ordered](s S) S {
	if s == nil {
		return nil
	}
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}

// Dedupe returns a copy with duplicates removed, preserving the first
// occurrence order.
func Dedupe[S ~[]E, E comparable](s S) S {
	if s == nil {
		return nil
	}
	seen := make(map[E]bool, len(s))
	out := make(S, 0, len(s))
	for _, item := range s {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

// DropZero returns a copy with zero-valued elements removed. For string
// slices this drops empty entries.
func DropZero[S ~[]E, E comparable](s S) S {
	if s == nil {
		return nil
	}
	var zero E
	out := make(S, 0, len(s))
	for _, item := range s {
		if item != zero {
			out = append(out, item)
		}
	}
	return out
}

// Truncate returns a step that keeps at most n leading elements.
func Truncate[S ~[]E, E any](n int) func(S) S {
	return func(s S) S {
		if s == nil {
			return nil
		}
		if n <= 0 {
			return make(S, 0)
		}
		if len(s) <= n {
			return slices.Clone(s)
		}
		return slices.Clone(s[:n])
	}
}

// Map returns a step that applies an element step to every element.
func Map[S ~[]E, E any](step func(E) E) func(S) S {
	return func(s S) S {
		if s == nil {
			return nil
		}
		out := make(S, len(s))
		for i, item := range s {
			out[i] = step(item)
		}
		return out
	}
}

// Filter returns a step that keeps only elements matched by keep.
func Filter[S ~[]E, E any](keep func(E) bool) func(S) S {
	return func(s S) S {
		if s == nil {
			return nil
		}
		out := make(S, 0, len(s))
		for _, item := range s {
			if keep(item) {
				out = append(out, item)
			}
		}
		return out
	}
}

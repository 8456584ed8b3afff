package validator

// Present reports whether p points at a value.
func Present[T any](p *T) bool { return p != nil }

// Absent reports whether p is nil.
func Absent[T any](p *T) bool { return p == nil }

// PresentAnd returns a predicate that accepts pointers to values
// satisfying pred. Nil pointers are rejected.
func PresentAnd[T any](pred func(T) bool) func(*T) bool {
	return func(p *T) bool { return p != nil && pred(*p) }
}

// IfPresent returns a predicate that accepts nil pointers outright and
// otherwise requires the pointed-at value to satisfy pred.
func IfPresent[T any](pred func(T) bool) func(*T) bool {
	return func(p *T) bool { return p == nil || pred(*p) }
}

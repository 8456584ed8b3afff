package sanitizer

// IfPresent lifts a value step over a pointer: nil passes through, non-nil
// values are transformed into a freshly allocated pointer so the step never
// writes through caller memory.
func IfPresent[T any](step func(T) T) func(*T) *T {
	return func(p *T) *T {
		if p == nil {
			return nil
		}
		v := step(*p)
		return &v
	}
}

// Coalesce returns a step that replaces nil with a pointer to the given
// default. Non-nil input is copied, not aliased.
func Coalesce[T any](fallback T) func(*T) *T {
	return func(p *T) *T {
		if p == nil {
			v := fallback
			return &v
		}
		v := *p
		return &v
	}
}

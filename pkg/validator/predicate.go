package validator

// Always accepts every value. Useful as a placeholder predicate and as the
// vacuous branch of conditional rules.
func Always[T any](T) bool { return true }

// Never rejects every value.
func Never[T any](T) bool { return false }

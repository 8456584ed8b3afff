package wrapkit

import "errors"

// Predefined errors for the wrapkit package.
var (
	// ErrRejected indicates that a value failed validation during checked
	// construction. It is deliberately payload-free and never wrapped: the
	// construction contract reports pass/fail only.
	ErrRejected = errors.New("value rejected")

	// ErrUpgradeDisabled indicates a capability method was called on a value
	// whose kind does not carry the corresponding upgrade tag.
	ErrUpgradeDisabled = errors.New("upgrade not enabled for this kind")

	// ErrUnboundValue indicates a decoding method was called on a zero
	// Wrapped that is not bound to any kind.
	ErrUnboundValue = errors.New("wrapped value is not bound to a kind")

	// ErrEmptyName indicates a kind was declared without a name.
	ErrEmptyName = errors.New("kind name cannot be empty")

	// ErrNilTransform indicates a sanitization chain contains a nil step.
	ErrNilTransform = errors.New("sanitization chain contains a nil transform")

	// ErrNilCheck indicates a validation tree contains a nil node.
	ErrNilCheck = errors.New("validation tree contains a nil node")

	// ErrNilPredicate indicates a leaf or guard was built from a nil function.
	ErrNilPredicate = errors.New("predicate function cannot be nil")

	// ErrNilDerive indicates a derive node was built from a nil scalar function.
	ErrNilDerive = errors.New("derive function cannot be nil")

	// ErrInvalidBounds indicates a range combinator whose lower bound exceeds
	// its upper bound.
	ErrInvalidBounds = errors.New("range lower bound exceeds upper bound")

	// ErrUnknownUpgrade indicates an upgrade tag that is not recognized.
	ErrUnknownUpgrade = errors.New("unknown upgrade tag")

	// ErrTextUnsupported indicates text decoding was requested for an inner
	// type that is neither a string nor an encoding.TextUnmarshaler.
	ErrTextUnsupported = errors.New("text decoding not supported for inner type")

	// ErrSQLUnsupported indicates a SQL conversion was requested for an inner
	// type with no driver.Value mapping.
	ErrSQLUnsupported = errors.New("sql conversion not supported for inner type")
)

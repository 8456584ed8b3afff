package declare

import "errors"

// Predefined errors for the declare package.
var (
	ErrEmptyName        = errors.New("name is empty")
	ErrReservedName     = errors.New("name is reserved")
	ErrDuplicateName    = errors.New("name already registered")
	ErrNilFactory       = errors.New("factory is nil")
	ErrUnknownTransform = errors.New("unknown transform")
	ErrUnknownCheck     = errors.New("unknown check")
	ErrInvalidDocument  = errors.New("invalid declaration document")
	ErrInvalidArgs      = errors.New("invalid arguments")
)

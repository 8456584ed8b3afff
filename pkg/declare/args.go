package declare

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/wrapkit"
)

// scalarArg decodes a single-value argument such as the 20 in
// "max_chars: 20".
func scalarArg[V any](args *yaml.Node) (V, error) {
	var v V
	if args == nil {
		return v, fmt.Errorf("%w: a value is required", ErrInvalidArgs)
	}
	if err := args.Decode(&v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	return v, nil
}

// listArg decodes a non-empty sequence argument such as
// "one_of: [a, b, c]".
func listArg[V any](args *yaml.Node) ([]V, error) {
	if args == nil {
		return nil, fmt.Errorf("%w: a list is required", ErrInvalidArgs)
	}
	var vs []V
	if err := args.Decode(&vs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	if len(vs) == 0 {
		return nil, fmt.Errorf("%w: the list is empty", ErrInvalidArgs)
	}
	return vs, nil
}

// bounds carries optional min and max arguments.
type bounds[V any] struct {
	Min *V `yaml:"min"`
	Max *V `yaml:"max"`
}

// boundsArg decodes a "{min: .., max: ..}" argument mapping. At least one
// bound must be present.
func boundsArg[V any](args *yaml.Node) (bounds[V], error) {
	var b bounds[V]
	if args == nil {
		return b, fmt.Errorf("%w: min or max is required", ErrInvalidArgs)
	}
	if err := args.Decode(&b); err != nil {
		return b, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	if b.Min == nil && b.Max == nil {
		return b, fmt.Errorf("%w: min or max is required", ErrInvalidArgs)
	}
	return b, nil
}

// boundedCheck turns decoded bounds into the matching ordered rule over a
// derived scalar, such as a rune count.
func boundedCheck[T any, N interface {
	~int | ~int64 | ~float64
}](scalar func(T) N, b bounds[N]) wrapkit.Check[T] {
	switch {
	case b.Min != nil && b.Max != nil:
		return wrapkit.Derive(scalar, wrapkit.Between(*b.Min, *b.Max))
	case b.Min != nil:
		return wrapkit.Derive(scalar, wrapkit.Min(*b.Min))
	default:
		return wrapkit.Derive(scalar, wrapkit.Max(*b.Max))
	}
}

// noArgs rejects arguments on steps and rules that take none.
func noArgs(args *yaml.Node) error {
	if args != nil {
		return fmt.Errorf("%w: no arguments allowed", ErrInvalidArgs)
	}
	return nil
}

// plainTransform adapts a parameterless step into a factory.
func plainTransform[T any](step func(T) T) TransformFactory[T] {
	return func(args *yaml.Node) (wrapkit.Transform[T], error) {
		if err := noArgs(args); err != nil {
			return nil, err
		}
		return step, nil
	}
}

// plainCheck adapts a parameterless predicate into a factory.
func plainCheck[T any](pred func(T) bool) CheckFactory[T] {
	return func(args *yaml.Node) (wrapkit.Check[T], error) {
		if err := noArgs(args); err != nil {
			return nil, err
		}
		return wrapkit.Fn(pred), nil
	}
}

package declare

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/wrapkit"
)

// Reserved rule names claimed by the combinator syntax.
var reservedNames = map[string]bool{
	"all":  true,
	"any":  true,
	"not":  true,
	"when": true,
}

// TransformFactory builds a sanitization step from its argument node. The
// node is nil when the step is declared without arguments.
type TransformFactory[T any] func(args *yaml.Node) (wrapkit.Transform[T], error)

// CheckFactory builds a validation rule from its argument node. The node
// is nil when the rule is declared without arguments.
type CheckFactory[T any] func(args *yaml.Node) (wrapkit.Check[T], error)

// Registry resolves the step and rule names used in declarations for
// kinds wrapping T. Transforms and checks occupy separate namespaces.
//
// Register methods reject empty, reserved, and duplicate names, so a
// registry's vocabulary is fixed by the code that builds it. Registries
// must not be mutated while Parse is in flight.
type Registry[T any] struct {
	transforms map[string]TransformFactory[T]
	checks     map[string]CheckFactory[T]
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		transforms: make(map[string]TransformFactory[T]),
		checks:     make(map[string]CheckFactory[T]),
	}
}

// RegisterTransform adds a sanitization step factory under name.
func (r *Registry[T]) RegisterTransform(name string, factory TransformFactory[T]) error {
	if err := r.checkName(name); err != nil {
		return err
	}
	if factory == nil {
		return fmt.Errorf("transform %q: %w", name, ErrNilFactory)
	}
	if _, exists := r.transforms[name]; exists {
		return fmt.Errorf("transform %q: %w", name, ErrDuplicateName)
	}
	r.transforms[name] = factory
	return nil
}

// RegisterCheck adds a validation rule factory under name.
func (r *Registry[T]) RegisterCheck(name string, factory CheckFactory[T]) error {
	if err := r.checkName(name); err != nil {
		return err
	}
	if factory == nil {
		return fmt.Errorf("check %q: %w", name, ErrNilFactory)
	}
	if _, exists := r.checks[name]; exists {
		return fmt.Errorf("check %q: %w", name, ErrDuplicateName)
	}
	r.checks[name] = factory
	return nil
}

func (r *Registry[T]) checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if reservedNames[name] {
		return fmt.Errorf("%q: %w", name, ErrReservedName)
	}
	return nil
}

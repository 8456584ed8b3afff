package wrapkit

import (
	"cmp"
	"slices"
)

// Check is a node in a validation tree. Trees are built from the package
// constructors (Fn, All, Any, Not, When, Min, Max, Between, Derive); the
// variant set is closed and nodes are immutable once built.
//
// Check reports whether v satisfies the node. Combinators evaluate their
// children left to right and short-circuit, so an expensive or narrowing
// predicate placed after a cheap guard is never reached unnecessarily.
type Check[T any] interface {
	Check(v T) bool

	// validate reports a declaration problem anywhere in the subtree.
	validate() error
}

// Fn wraps a plain predicate as a leaf node.
func Fn[T any](pred func(T) bool) Check[T] {
	return fnCheck[T]{pred: pred}
}

type fnCheck[T any] struct {
	pred func(T) bool
}

func (c fnCheck[T]) Check(v T) bool { return c.pred(v) }

func (c fnCheck[T]) validate() error {
	if c.pred == nil {
		return ErrNilPredicate
	}
	return nil
}

// All combines children with logical AND. Evaluation stops at the first
// failing child. With no children the node is vacuously satisfied.
func All[T any](children ...Check[T]) Check[T] {
	return allCheck[T]{children: slices.Clone(children)}
}

type allCheck[T any] struct {
	children []Check[T]
}

func (c allCheck[T]) Check(v T) bool {
	for _, child := range c.children {
		if !child.Check(v) {
			return false
		}
	}
	return true
}

func (c allCheck[T]) validate() error { return validateChildren(c.children) }

// Any combines children with logical OR. Evaluation stops at the first
// passing child. With no children the node is never satisfied.
func Any[T any](children ...Check[T]) Check[T] {
	return anyCheck[T]{children: slices.Clone(children)}
}

type anyCheck[T any] struct {
	children []Check[T]
}

func (c anyCheck[T]) Check(v T) bool {
	for _, child := range c.children {
		if child.Check(v) {
			return true
		}
	}
	return false
}

func (c anyCheck[T]) validate() error { return validateChildren(c.children) }

// Not negates its child.
func Not[T any](child Check[T]) Check[T] {
	return notCheck[T]{child: child}
}

type notCheck[T any] struct {
	child Check[T]
}

func (c notCheck[T]) Check(v T) bool { return !c.child.Check(v) }

func (c notCheck[T]) validate() error {
	if c.child == nil {
		return ErrNilCheck
	}
	return c.child.validate()
}

// When evaluates child only for values matched by guard; everything else is
// vacuously satisfied. Useful for conditional rules such as "if the field
// is present it must be an email".
func When[T any](guard func(T) bool, child Check[T]) Check[T] {
	return whenCheck[T]{guard: guard, child: child}
}

type whenCheck[T any] struct {
	guard func(T) bool
	child Check[T]
}

func (c whenCheck[T]) Check(v T) bool {
	if !c.guard(v) {
		return true
	}
	return c.child.Check(v)
}

func (c whenCheck[T]) validate() error {
	if c.guard == nil {
		return ErrNilPredicate
	}
	if c.child == nil {
		return ErrNilCheck
	}
	return c.child.validate()
}

// Min accepts values greater than or equal to lo.
func Min[T cmp.Ordered](lo T) Check[T] {
	return minCheck[T]{lo: lo}
}

type minCheck[T cmp.Ordered] struct {
	lo T
}

func (c minCheck[T]) Check(v T) bool { return v >= c.lo }

func (c minCheck[T]) validate() error { return nil }

// Max accepts values less than or equal to hi.
func Max[T cmp.Ordered](hi T) Check[T] {
	return maxCheck[T]{hi: hi}
}

type maxCheck[T cmp.Ordered] struct {
	hi T
}

func (c maxCheck[T]) Check(v T) bool { return v <= c.hi }

func (c maxCheck[T]) validate() error { return nil }

// Between accepts values in the inclusive range [lo, hi]. Bounds are fixed
// at declaration time; lo > hi is reported by Define.
func Between[T cmp.Ordered](lo, hi T) Check[T] {
	return betweenCheck[T]{lo: lo, hi: hi}
}

type betweenCheck[T cmp.Ordered] struct {
	lo, hi T
}

func (c betweenCheck[T]) Check(v T) bool { return v >= c.lo && v <= c.hi }

func (c betweenCheck[T]) validate() error {
	if c.lo > c.hi {
		return ErrInvalidBounds
	}
	return nil
}

// Derive checks a scalar derived from the value, bridging a tree over T to
// a subtree over N. The canonical use is length rules:
//
//	wrapkit.Derive(utf8.RuneCountInString, wrapkit.Between(5, 20))
func Derive[T, N any](scalar func(T) N, child Check[N]) Check[T] {
	return deriveCheck[T, N]{scalar: scalar, child: child}
}

type deriveCheck[T, N any] struct {
	scalar func(T) N
	child  Check[N]
}

func (c deriveCheck[T, N]) Check(v T) bool { return c.child.Check(c.scalar(v)) }

func (c deriveCheck[T, N]) validate() error {
	if c.scalar == nil {
		return ErrNilDerive
	}
	if c.child == nil {
		return ErrNilCheck
	}
	return c.child.validate()
}

func validateChildren[T any](children []Check[T]) error {
	for _, child := range children {
		if child == nil {
			return ErrNilCheck
		}
		if err := child.validate(); err != nil {
			return err
		}
	}
	return nil
}

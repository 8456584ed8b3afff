package declare

import (
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/wrapkit"
	"github.com/dmitrymomot/wrapkit/pkg/sanitizer"
	"github.com/dmitrymomot/wrapkit/pkg/validator"
)

// Ints returns a registry preloaded with the sanitizer and validator
// catalogs for int kinds.
func Ints() *Registry[int] {
	r := NewRegistry[int]()

	must(r.RegisterTransform("abs", plainTransform(sanitizer.Abs[int])))
	must(r.RegisterTransform("zero_floor", plainTransform(sanitizer.ZeroIfNegative[int])))
	must(r.RegisterTransform("clamp", clampTransform[int]()))
	must(r.RegisterTransform("assign", func(args *yaml.Node) (wrapkit.Transform[int], error) {
		v, err := scalarArg[int](args)
		if err != nil {
			return nil, err
		}
		return sanitizer.Assign(v), nil
	}))

	must(r.RegisterCheck("positive", plainCheck(validator.Positive[int])))
	must(r.RegisterCheck("negative", plainCheck(validator.Negative[int])))
	must(r.RegisterCheck("non_negative", plainCheck(validator.NonNegative[int])))
	must(r.RegisterCheck("non_zero", plainCheck(validator.NonZero[int])))
	registerOrderedChecks(r)
	must(r.RegisterCheck("multiple_of", func(args *yaml.Node) (wrapkit.Check[int], error) {
		n, err := scalarArg[int](args)
		if err != nil {
			return nil, err
		}
		return wrapkit.Fn(validator.MultipleOf(n)), nil
	}))

	return r
}

// Floats returns a registry preloaded with the sanitizer and validator
// catalogs for float64 kinds.
func Floats() *Registry[float64] {
	r := NewRegistry[float64]()

	must(r.RegisterTransform("abs", plainTransform(sanitizer.Abs[float64])))
	must(r.RegisterTransform("zero_floor", plainTransform(sanitizer.ZeroIfNegative[float64])))
	must(r.RegisterTransform("clamp", clampTransform[float64]()))
	must(r.RegisterTransform("round", plainTransform(sanitizer.Round[float64])))
	must(r.RegisterTransform("round_up", plainTransform(sanitizer.RoundUp[float64])))
	must(r.RegisterTransform("round_down", plainTransform(sanitizer.RoundDown[float64])))
	must(r.RegisterTransform("round_to", func(args *yaml.Node) (wrapkit.Transform[float64], error) {
		places, err := scalarArg[int](args)
		if err != nil {
			return nil, err
		}
		return sanitizer.RoundTo[float64](places), nil
	}))

	must(r.RegisterCheck("positive", plainCheck(validator.Positive[float64])))
	must(r.RegisterCheck("negative", plainCheck(validator.Negative[float64])))
	must(r.RegisterCheck("non_negative", plainCheck(validator.NonNegative[float64])))
	must(r.RegisterCheck("non_zero", plainCheck(validator.NonZero[float64])))
	must(r.RegisterCheck("finite", plainCheck(validator.Finite[float64])))
	must(r.RegisterCheck("not_nan", plainCheck(validator.NotNaN[float64])))
	must(r.RegisterCheck("percentage", plainCheck(validator.Percentage[float64])))
	registerOrderedChecks(r)
	must(r.RegisterCheck("precision", func(args *yaml.Node) (wrapkit.Check[float64], error) {
		places, err := scalarArg[int](args)
		if err != nil {
			return nil, err
		}
		return wrapkit.Fn(validator.DecimalPrecision(places)), nil
	}))

	return r
}

// clampTransform builds the "clamp: {min: .., max: ..}" step for a
// numeric registry. A missing bound leaves that side open.
func clampTransform[T interface {
	~int | ~int64 | ~float64
}]() TransformFactory[T] {
	return func(args *yaml.Node) (wrapkit.Transform[T], error) {
		b, err := boundsArg[T](args)
		if err != nil {
			return nil, err
		}
		switch {
		case b.Min != nil && b.Max != nil:
			return sanitizer.Clamp(*b.Min, *b.Max), nil
		case b.Min != nil:
			return sanitizer.ClampMin(*b.Min), nil
		default:
			return sanitizer.ClampMax(*b.Max), nil
		}
	}
}

// registerOrderedChecks adds the min, max, between, equals, and one_of
// rules shared by the numeric registries.
func registerOrderedChecks[T interface {
	~int | ~int64 | ~float64
}](r *Registry[T]) {
	must(r.RegisterCheck("min", func(args *yaml.Node) (wrapkit.Check[T], error) {
		lo, err := scalarArg[T](args)
		if err != nil {
			return nil, err
		}
		return wrapkit.Min(lo), nil
	}))
	must(r.RegisterCheck("max", func(args *yaml.Node) (wrapkit.Check[T], error) {
		hi, err := scalarArg[T](args)
		if err != nil {
			return nil, err
		}
		return wrapkit.Max(hi), nil
	}))
	must(r.RegisterCheck("between", func(args *yaml.Node) (wrapkit.Check[T], error) {
		b, err := boundsArg[T](args)
		if err != nil {
			return nil, err
		}
		switch {
		case b.Min != nil && b.Max != nil:
			return wrapkit.Between(*b.Min, *b.Max), nil
		case b.Min != nil:
			return wrapkit.Min(*b.Min), nil
		default:
			return wrapkit.Max(*b.Max), nil
		}
	}))
	must(r.RegisterCheck("equals", func(args *yaml.Node) (wrapkit.Check[T], error) {
		want, err := scalarArg[T](args)
		if err != nil {
			return nil, err
		}
		return wrapkit.Fn(validator.Equals(want)), nil
	}))
	must(r.RegisterCheck("one_of", func(args *yaml.Node) (wrapkit.Check[T], error) {
		vs, err := listArg[T](args)
		if err != nil {
			return nil, err
		}
		return wrapkit.Fn(validator.OneOf(vs...)), nil
	}))
}

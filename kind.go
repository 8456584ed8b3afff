package wrapkit

import (
	"fmt"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
)

// Config declares a kind: the sanitization chain, the validation tree and
// the enabled upgrades. A nil Validate tree accepts every sanitized value;
// an empty Sanitize chain passes raw input through unchanged.
type Config[T any] struct {
	Sanitize Chain[T]
	Validate Check[T]
	Upgrades []Upgrade
}

// Kind is a declared wrapper type: a name bound to a sanitize-then-validate
// pipeline and a set of upgrades. Kinds are immutable after Define and safe
// for concurrent use; they are intended to live in package-level variables.
type Kind[T any] struct {
	name     string
	chain    Chain[T]
	check    Check[T]
	upgrades map[Upgrade]bool
}

// Define builds a kind from its declaration. All declaration problems are
// reported here: a blank name, nil transforms, nil or malformed tree nodes,
// inverted range bounds and unknown upgrade tags. Construction later never
// fails for declaration reasons.
func Define[T any](name string, cfg Config[T]) (*Kind[T], error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	for _, step := range cfg.Sanitize {
		if step == nil {
			return nil, fmt.Errorf("define %q: %w", name, ErrNilTransform)
		}
	}

	if cfg.Validate != nil {
		if err := cfg.Validate.validate(); err != nil {
			return nil, fmt.Errorf("define %q: %w", name, err)
		}
	}

	upgrades := make(map[Upgrade]bool, len(cfg.Upgrades))
	for _, u := range cfg.Upgrades {
		if !u.known() {
			return nil, fmt.Errorf("define %q: %w: %q", name, ErrUnknownUpgrade, u)
		}
		upgrades[u] = true
	}

	return &Kind[T]{
		name:     name,
		chain:    slices.Clone(cfg.Sanitize),
		check:    cfg.Validate,
		upgrades: upgrades,
	}, nil
}

// MustDefine is like Define but panics on a bad declaration, following the
// fail-fast pattern for package-level kinds.
func MustDefine[T any](name string, cfg Config[T]) *Kind[T] {
	k, err := Define(name, cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to define kind: %v", err))
	}
	return k
}

// Name returns the kind's declared name.
func (k *Kind[T]) Name() string { return k.name }

// Upgraded reports whether the kind carries the given upgrade tag.
func (k *Kind[T]) Upgraded(u Upgrade) bool { return k.upgrades[u] }

// Sanitize runs only the sanitization chain over raw and returns the
// result. It never fails and wraps nothing.
func (k *Kind[T]) Sanitize(raw T) T { return k.chain.Apply(raw) }

// Validate runs only the validation tree over v. A kind declared without a
// tree accepts every value.
func (k *Kind[T]) Validate(v T) bool {
	if k.check == nil {
		return true
	}
	return k.check.Check(v)
}

// New is the checked constructor: raw input is sanitized, the sanitized
// value is validated, and only then wrapped. Rejection returns the zero
// Wrapped and the bare ErrRejected sentinel; no partial state escapes.
func (k *Kind[T]) New(raw T) (Wrapped[T], error) {
	v := k.chain.Apply(raw)
	if !k.Validate(v) {
		return Wrapped[T]{}, ErrRejected
	}
	return Wrapped[T]{kind: k, inner: v}, nil
}

// MustNew is like New but panics on rejection; for inputs the program
// author controls, such as literals in tests and fixtures.
func (k *Kind[T]) MustNew(raw T) Wrapped[T] {
	w, err := k.New(raw)
	if err != nil {
		panic(fmt.Sprintf("failed to construct %s: %v", k.name, err))
	}
	return w
}

// Unchecked wraps v without running either stage. No step is invoked, ever;
// the invariant burden is entirely on the caller. Intended for values whose
// guarantees were established elsewhere, such as trusted storage reads.
func (k *Kind[T]) Unchecked(v T) Wrapped[T] {
	return Wrapped[T]{kind: k, inner: v}
}

// Unsanitized skips the chain but still validates raw as-is.
func (k *Kind[T]) Unsanitized(raw T) (Wrapped[T], error) {
	if !k.Validate(raw) {
		return Wrapped[T]{}, ErrRejected
	}
	return Wrapped[T]{kind: k, inner: raw}, nil
}

// Unvalidated sanitizes raw but skips the tree.
func (k *Kind[T]) Unvalidated(raw T) Wrapped[T] {
	return Wrapped[T]{kind: k, inner: k.chain.Apply(raw)}
}

// FromJSON decodes data into the inner type and runs checked construction
// on the result. The kind must carry UpgradeJSON.
func (k *Kind[T]) FromJSON(data []byte) (Wrapped[T], error) {
	if !k.upgrades[UpgradeJSON] {
		return Wrapped[T]{}, ErrUpgradeDisabled
	}
	var raw T
	if err := json.Unmarshal(data, &raw); err != nil {
		return Wrapped[T]{}, err
	}
	return k.New(raw)
}

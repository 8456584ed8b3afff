// Package wrapkit provides declarative construction of immutable wrapper
// values: raw input flows through an ordered sanitization chain, then a
// validation tree, and only inputs that survive both stages become wrapped
// values. A Wrapped[T] in hand is proof that its inner value has already
// been cleaned and checked, so downstream code never re-validates.
//
// # Architecture
//
// The package is built around three pieces:
//
//   - Kind[T]: a named wrapper type declared once with Define (or
//     MustDefine) from a Config holding the sanitization Chain, the
//     validation Check tree and the enabled Upgrades. Kinds are immutable
//     after construction and safe for concurrent use.
//
//   - Chain[T]: an ordered list of Transform steps applied left to right.
//     Sanitization always runs to completion and cannot fail.
//
//   - Check[T]: a tree of predicates combined with All, Any, Not, When,
//     the ordered comparisons Min, Max and Between, and Derive for checks
//     against a derived scalar such as a character count or slice length.
//     Evaluation is left to right and short-circuits. A nil tree accepts
//     every value.
//
// Construction is deliberately all-or-nothing: Kind.New either returns a
// fully sanitized, fully validated Wrapped[T] or the bare ErrRejected
// sentinel with no further diagnostics. Rejection reports pass/fail only;
// callers that need to know why a value failed should inspect it with the
// individual predicates before construction.
//
// # Usage
//
//	var Username = wrapkit.MustDefine("username", wrapkit.Config[string]{
//	    Sanitize: wrapkit.Chain[string]{strings.TrimSpace},
//	    Validate: wrapkit.All(
//	        wrapkit.Fn(isAlphanumeric),
//	        wrapkit.Derive(utf8.RuneCountInString, wrapkit.Between(5, 20)),
//	    ),
//	    Upgrades: []wrapkit.Upgrade{wrapkit.UpgradeDisplay, wrapkit.UpgradeJSON},
//	})
//
//	name, err := Username.New("  b7r6  ")
//	if err != nil {
//	    // errors.Is(err, wrapkit.ErrRejected)
//	}
//	name.Inner() // "b7r6", trimmed and checked exactly once
//
// Escape hatches exist for inputs whose invariants are established
// elsewhere: Unchecked skips both stages, Unsanitized skips only the
// chain, Unvalidated skips only the tree.
//
// # Upgrades
//
// Capabilities beyond construction and Inner are opt-in per kind:
// UpgradeDisplay exposes the inner value through String and slog.LogValuer
// (without it both render a redacted form), UpgradeJSON and UpgradeText
// enable codec passthrough, UpgradeSQL enables database/sql integration
// and UpgradeEqual enables forwarding of == through Equal. Decoding paths
// (UnmarshalJSON, UnmarshalText, Scan, Kind.FromJSON) always re-run the
// full pipeline, so a wrapped value cannot be smuggled past validation.
//
// # Error Handling
//
// Declaration problems (blank names, nil steps, inverted bounds, unknown
// upgrade tags) surface from Define, never later. ErrRejected is the only
// construction failure and is returned unwrapped. Capability methods on
// values whose kind lacks the relevant upgrade return ErrUpgradeDisabled;
// decoding into a zero Wrapped not bound to any kind returns
// ErrUnboundValue.
//
// # Performance
//
// Construction is synchronous and allocation-light: one pass over the
// chain, one short-circuiting walk of the tree, no locks, no reflection
// on the hot path. Kinds are intended to be package-level variables built
// once at startup.
package wrapkit

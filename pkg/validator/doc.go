// Package validator provides pure boolean predicates for common domain rules.
//
// Every predicate reports whether a value satisfies a rule and nothing else:
// no error values, no mutation, no I/O. Predicates are grouped by family:
// strings (emptiness, charsets, length), formats (email, URL, IP, phone),
// identifiers (UUID, slug, hex, base64), financial (card numbers, currency
// codes), numerics, floats, choices, slices, and optional values.
//
// # Architecture
//
// The package has two shapes of symbol:
//
//   - Predicates: func(T) bool, ready to use directly.
//   - Factories: functions that take parameters and return a predicate,
//     such as MinChars(5) or OneOf("a", "b").
//
// Factories bind their parameters once, so the returned predicate is a
// plain closure with no per-call setup. All predicates are safe for
// concurrent use.
//
// # Usage
//
//	validator.Email("user@example.com")       // true
//	validator.Slug("hello-world")             // true
//	validator.CardNumber("4111111111111111")  // true
//
//	adult := validator.MinOf(18)
//	adult(21) // true
//	adult(17) // false
//
// # Conventions
//
// Charset predicates (Alphabetic, Alphanumeric, Hex, ...) reject the empty
// string: a value with no characters carries no evidence of membership.
// Predicates that merely constrain shape (Lowercase, ASCII) accept it.
//
// # Performance
//
// Predicates allocate nothing on the happy path. Regular expressions are
// compiled once at package load, and factories precompute whatever their
// parameters allow.
package validator

// Package sanitizer provides a catalog of pure transformation steps for
// building sanitization chains: cleaning, normalizing and constraining
// strings, numbers, slices and optional values before validation.
//
// Every helper is either a step itself, a plain func(T) T that can be
// dropped straight into a wrapkit.Chain, or a factory that binds its
// parameters at declaration time and returns a step:
//
//	wrapkit.Chain[string]{
//	    sanitizer.Trim,
//	    sanitizer.ToLower,
//	    sanitizer.MaxChars(20),
//	}
//
// # Architecture
//
// The catalog is grouped into several areas:
//
//   - Strings: trimming, case conversion, whitespace normalization and
//     character filtering.
//
//   - Unicode: NFC/NFKC normalization, width folding, diacritic removal
//     and language-aware title casing built on golang.org/x/text.
//
//   - Format: normalization for e-mail addresses, URLs, phone numbers,
//     card numbers and postal codes.
//
//   - Numeric: generic clamping, rounding and constant assignment.
//
//   - Slices and options: element-wise lifting, sorting, deduplication
//     and nil-safe application, always returning fresh values.
//
// # Usage
//
// Import the package using its module-qualified path:
//
//	import "github.com/dmitrymomot/wrapkit/pkg/sanitizer"
//
// The Apply and Compose helpers run ad-hoc pipelines outside a declared
// kind:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.RemoveExtraWhitespace,
//	    sanitizer.ToLower,
//	)
//	safe := clean("  Mixed CASE   Input\n") // "mixed case input"
//
// # Error Handling
//
// Steps never fail. A helper that cannot improve its input returns it
// unchanged, so a chain always completes.
//
// # Performance
//
// All steps are stateless and safe for concurrent use. Regular expressions
// are compiled once at package load; factories bind their parameters once
// at declaration time. Steps over slices and pointers copy rather than
// mutate, so no step ever aliases its input.
package sanitizer

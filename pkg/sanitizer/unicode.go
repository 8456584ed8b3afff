package sanitizer

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// NormalizeNFC applies Unicode NFC normalization, composing combining
// sequences into their canonical precomposed forms.
func NormalizeNFC(s string) string {
	return norm.NFC.String(s)
}

// NormalizeNFKC applies Unicode NFKC normalization, additionally folding
// compatibility variants (ligatures, superscripts, fullwidth forms) into
// their plain equivalents. The usual choice for identifiers.
func NormalizeNFKC(s string) string {
	return norm.NFKC.String(s)
}

// FoldWidth folds halfwidth and fullwidth variants into their canonical
// width, so "ｇｏ４２" becomes "go42".
func FoldWidth(s string) string {
	return width.Fold.String(s)
}

// RemoveDiacritics strips combining marks after canonical decomposition:
// "café" becomes "cafe". Letters such as ø survive because they are
// distinct letters, not a base letter plus a mark.
func RemoveDiacritics(s string) string {
	// Transformers carry state, so build a fresh chain per call to stay
	// safe under concurrency.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// ToTitleCase converts to English title casing.
func ToTitleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// TitleCaseIn returns a step that applies title casing under the rules of
// the given language. Casers are stateful, so each invocation builds its
// own.
func TitleCaseIn(tag language.Tag) func(string) string {
	return func(s string) string {
		return cases.Title(tag).String(s)
	}
}

// LowerCaseIn returns a step that lowercases under the rules of the given
// language, handling locale exceptions such as the Turkish dotless i.
func LowerCaseIn(tag language.Tag) func(string) string {
	return func(s string) string {
		return cases.Lower(tag).String(s)
	}
}

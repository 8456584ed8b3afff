package validator

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NotEmpty reports whether s has at least one byte.
func NotEmpty(s string) bool { return s != "" }

// NotBlank reports whether s contains at least one non-whitespace character.
func NotBlank(s string) bool { return strings.TrimSpace(s) != "" }

// Alphabetic reports whether s is non-empty and made of letters only.
// Letters are Unicode letters, not just ASCII.
func Alphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Alphanumeric reports whether s is non-empty and made of letters and
// digits only. Letters and digits are Unicode classes, not just ASCII.
func Alphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ASCII reports whether every byte of s is an ASCII character. The empty
// string is ASCII.
func ASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// Printable reports whether s is non-empty and every rune is printable as
// defined by unicode.IsPrint.
func Printable(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// Lowercase reports whether s contains no uppercase letters. The empty
// string qualifies.
func Lowercase(s string) bool { return s == strings.ToLower(s) }

// Uppercase reports whether s contains no lowercase letters. The empty
// string qualifies.
func Uppercase(s string) bool { return s == strings.ToUpper(s) }

// CharCount returns the number of runes in s. It is the natural projection
// for rune-length rules on wrapped string kinds.
func CharCount(s string) int { return utf8.RuneCountInString(s) }

// ByteLen returns the number of bytes in s.
func ByteLen(s string) int { return len(s) }

// MinChars returns a predicate that accepts strings with at least n runes.
func MinChars(n int) func(string) bool {
	return func(s string) bool { return utf8.RuneCountInString(s) >= n }
}

// MaxChars returns a predicate that accepts strings with at most n runes.
func MaxChars(n int) func(string) bool {
	return func(s string) bool { return utf8.RuneCountInString(s) <= n }
}

// CharsBetween returns a predicate that accepts strings whose rune count is
// within [min, max] inclusive.
func CharsBetween(min, max int) func(string) bool {
	return func(s string) bool {
		n := utf8.RuneCountInString(s)
		return n >= min && n <= max
	}
}

// MinBytes returns a predicate that accepts strings with at least n bytes.
func MinBytes(n int) func(string) bool {
	return func(s string) bool { return len(s) >= n }
}

// MaxBytes returns a predicate that accepts strings with at most n bytes.
func MaxBytes(n int) func(string) bool {
	return func(s string) bool { return len(s) <= n }
}

// Contains returns a predicate that accepts strings containing sub.
func Contains(sub string) func(string) bool {
	return func(s string) bool { return strings.Contains(s, sub) }
}

// HasPrefix returns a predicate that accepts strings starting with prefix.
func HasPrefix(prefix string) func(string) bool {
	return func(s string) bool { return strings.HasPrefix(s, prefix) }
}

// HasSuffix returns a predicate that accepts strings ending with suffix.
func HasSuffix(suffix string) func(string) bool {
	return func(s string) bool { return strings.HasSuffix(s, suffix) }
}

// MatchRegex returns a predicate that accepts strings matching re. A nil
// expression matches nothing.
func MatchRegex(re *regexp.Regexp) func(string) bool {
	if re == nil {
		return Never[string]
	}
	return re.MatchString
}

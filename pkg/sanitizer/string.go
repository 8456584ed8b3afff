package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimLeft removes leading whitespace.
func TrimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// TrimRight removes trailing whitespace.
func TrimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TrimToUpper removes leading and trailing whitespace and converts to uppercase.
func TrimToUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// RemoveExtraWhitespace collapses consecutive whitespace into single spaces
// and trims the result.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// SingleLine replaces line breaks with spaces and collapses the result into
// a single trimmed line.
func SingleLine(s string) string {
	return RemoveExtraWhitespace(newlineRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars removes control characters, keeping printable content
// and common whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// KeepAlphanumeric keeps only letters and digits.
func KeepAlphanumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// KeepAlpha keeps only letters.
func KeepAlpha(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, s)
}

// KeepDigits keeps only numeric digits.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// MaxChars returns a step that truncates to at most n characters, counting
// runes rather than bytes so multibyte text is never cut mid-character.
func MaxChars(n int) func(string) string {
	return func(s string) string {
		if n <= 0 {
			return ""
		}
		runes := []rune(s)
		if len(runes) <= n {
			return s
		}
		return string(runes[:n])
	}
}

// MaxBytes returns a step that truncates to at most n bytes, backing off to
// the previous rune boundary so the result stays valid UTF-8.
func MaxBytes(n int) func(string) string {
	return func(s string) string {
		if n <= 0 {
			return ""
		}
		if len(s) <= n {
			return s
		}
		cut := n
		for cut > 0 && !isRuneStart(s[cut]) {
			cut--
		}
		return s[:cut]
	}
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }

// TrimPrefix returns a step that removes prefix if present.
func TrimPrefix(prefix string) func(string) string {
	return func(s string) string {
		return strings.TrimPrefix(s, prefix)
	}
}

// TrimSuffix returns a step that removes suffix if present.
func TrimSuffix(suffix string) func(string) string {
	return func(s string) string {
		return strings.TrimSuffix(s, suffix)
	}
}

// Replace returns a step that replaces every occurrence of old with new.
func Replace(old, new string) func(string) string {
	return func(s string) string {
		return strings.ReplaceAll(s, old, new)
	}
}

// RemoveChars returns a step that removes every occurrence of the given
// characters.
func RemoveChars(chars string) func(string) string {
	return func(s string) string {
		return strings.Map(func(r rune) rune {
			if strings.ContainsRune(chars, r) {
				return -1
			}
			return r
		}, s)
	}
}

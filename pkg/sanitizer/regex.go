package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Consecutive dots in e-mail local parts
	dotRegex = regexp.MustCompile(`\.+`)

	// Digit extraction
	nonDigitRegex = regexp.MustCompile(`\D`)

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)
	newlineRegex    = regexp.MustCompile(`[\r\n]+`)
)

package validator

import (
	"regexp"

	"github.com/google/uuid"
)

// Precompiled patterns for identifier validation.
var (
	slugRegex     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	handleRegex   = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
	hexRegex      = regexp.MustCompile(`^[0-9A-Fa-f]+$`)
	base64Regex   = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)
)

// UUID reports whether s is a canonical UUID string. The shape is checked
// before parsing so malformed input fails without allocation.
func UUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// UUIDv4 reports whether s is a canonical version 4 UUID string.
func UUIDv4(s string) bool {
	if !UUID(s) {
		return false
	}
	id, err := uuid.Parse(s)
	return err == nil && id.Version() == 4
}

// NonNilUUID reports whether id is any UUID other than the zero value.
func NonNilUUID(id uuid.UUID) bool { return id != uuid.Nil }

// Slug reports whether s is a URL slug: lowercase letters, digits, and
// single hyphens between segments.
func Slug(s string) bool { return slugRegex.MatchString(s) }

// Username reports whether s is a username made of letters, digits,
// underscores, and hyphens.
func Username(s string) bool { return usernameRegex.MatchString(s) }

// Handle reports whether s is a handle that starts with a letter followed
// by letters, digits, underscores, or hyphens.
func Handle(s string) bool { return handleRegex.MatchString(s) }

// Hex reports whether s is a non-empty hexadecimal string.
func Hex(s string) bool { return hexRegex.MatchString(s) }

// Base64 reports whether s is standard base64: non-empty, padded to a
// multiple of four, with at most two trailing '=' characters.
func Base64(s string) bool {
	return s != "" && len(s)%4 == 0 && base64Regex.MatchString(s)
}

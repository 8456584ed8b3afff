package validator

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// Precompiled patterns for format validation.
var (
	phoneRegex    = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	hostnameRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
)

// Email reports whether s is a plain RFC 5322 address with a dotted domain.
// Display-name forms such as "Alice <alice@example.com>" are rejected, as
// are bare hostnames without a dot.
func Email(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	domain := s[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL reports whether s is an absolute URL with a scheme and a host.
func URL(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// URLWithScheme returns a predicate that accepts absolute URLs whose scheme
// is one of the given set. Schemes are compared case-insensitively.
func URLWithScheme(schemes ...string) func(string) bool {
	allowed := make([]string, len(schemes))
	for i, scheme := range schemes {
		allowed[i] = strings.ToLower(scheme)
	}
	return func(s string) bool {
		u, err := url.ParseRequestURI(s)
		if err != nil || u.Host == "" {
			return false
		}
		return slices.Contains(allowed, strings.ToLower(u.Scheme))
	}
}

// E164Phone reports whether s is an international phone number in E.164
// form. Spaces and dashes are ignored; at least seven digits are required.
func E164Phone(s string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(s)
	if !phoneRegex.MatchString(cleaned) {
		return false
	}
	return len(strings.TrimPrefix(cleaned, "+")) >= 7
}

// IP reports whether s parses as an IPv4 or IPv6 address.
func IP(s string) bool { return net.ParseIP(s) != nil }

// IPv4 reports whether s parses as an IPv4 address.
func IPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

// IPv6 reports whether s parses as an IPv6 address. Four-byte forms only
// count when written in colon notation, so "192.168.0.1" is not IPv6 but
// "::ffff:192.168.0.1" is.
func IPv6(s string) bool {
	ip := net.ParseIP(s)
	if ip == nil {
		return false
	}
	return ip.To4() == nil || strings.Contains(s, ":")
}

// Hostname reports whether s is a valid DNS hostname: dot-separated labels
// of letters, digits, and inner hyphens, at most 253 bytes overall.
func Hostname(s string) bool {
	return s != "" && len(s) <= 253 && hostnameRegex.MatchString(s)
}

// MAC reports whether s parses as a hardware address, in any of the forms
// accepted by net.ParseMAC.
func MAC(s string) bool {
	_, err := net.ParseMAC(s)
	return err == nil
}

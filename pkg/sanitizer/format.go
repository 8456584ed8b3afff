package sanitizer

import (
	"net/url"
	"strings"
)

// NormalizeEmail lowercases the address, trims whitespace and consolidates
// consecutive dots in the local part. Invalid shapes are returned trimmed
// and lowercased but otherwise untouched; rejecting them is the
// validator's job.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = strings.Trim(dotRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}

// NormalizePhone strips everything but digits for consistent storage and
// comparison, preserving a leading plus for international numbers.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	plus := strings.HasPrefix(phone, "+")
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if plus && digits != "" {
		return "+" + digits
	}
	return digits
}

// NormalizeURL trims the input, defaults the scheme to HTTPS, lowercases
// the host and drops a bare trailing slash. Unparseable input is returned
// as-is.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	u.Host = strings.ToLower(u.Host)
	if u.Path == "/" {
		u.Path = ""
	}

	return u.String()
}

// NormalizeCardNumber strips spaces and dashes from a payment card number,
// leaving only the digits for checksum validation.
func NormalizeCardNumber(card string) string {
	return KeepDigits(card)
}

// NormalizePostalCode uppercases and collapses interior whitespace, the
// common denominator across postal systems.
func NormalizePostalCode(code string) string {
	return RemoveExtraWhitespace(strings.ToUpper(code))
}

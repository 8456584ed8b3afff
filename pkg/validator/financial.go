package validator

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	// ISO 4217 currency codes - subset for common international commerce
	validCurrencyCodes = map[string]bool{
		"USD": true, "EUR": true, "GBP": true, "JPY": true, "AUD": true, "CAD": true,
		"CHF": true, "CNY": true, "SEK": true, "NZD": true, "MXN": true, "SGD": true,
		"HKD": true, "NOK": true, "KRW": true, "TRY": true, "RUB": true, "INR": true,
		"BRL": true, "ZAR": true, "PLN": true, "CZK": true, "HUF": true, "ILS": true,
		"CLP": true, "PHP": true, "AED": true, "COP": true, "SAR": true, "MYR": true,
		"RON": true, "THB": true, "BGN": true, "HRK": true, "ISK": true, "DKK": true,
	}

	// Currency code regex (3 uppercase letters)
	currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

// CardIssuer identifies the network a payment card number belongs to.
type CardIssuer string

// Card networks recognized by DetectCardIssuer.
const (
	CardUnknown    CardIssuer = ""
	CardVisa       CardIssuer = "visa"
	CardMastercard CardIssuer = "mastercard"
	CardAmex       CardIssuer = "amex"
	CardDiscover   CardIssuer = "discover"
)

// cleanCardNumber strips the separators commonly typed into card fields.
func cleanCardNumber(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), "-", "")
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// luhnChecksum reports whether a digit string passes the Luhn check.
func luhnChecksum(digits string) bool {
	sum := 0
	isEven := false

	// Process digits from right to left
	for i := len(digits) - 1; i >= 0; i-- {
		digit := int(digits[i] - '0')

		if isEven {
			digit *= 2
			if digit > 9 {
				digit = digit/10 + digit%10
			}
		}

		sum += digit
		isEven = !isEven
	}

	return sum%10 == 0
}

// LuhnValid reports whether s passes the Luhn checksum. Spaces and dashes
// are ignored. The checksum alone does not prove a usable card number; use
// CardNumber for that.
func LuhnValid(s string) bool {
	cleaned := cleanCardNumber(s)
	return allDigits(cleaned) && luhnChecksum(cleaned)
}

// DetectCardIssuer returns the network a card number belongs to, judged by
// its prefix and length, or CardUnknown. It does not verify the checksum.
func DetectCardIssuer(s string) CardIssuer {
	cleaned := cleanCardNumber(s)
	if !allDigits(cleaned) {
		return CardUnknown
	}

	switch n := len(cleaned); {
	case cleaned[0] == '4' && (n == 13 || n == 16 || n == 19):
		return CardVisa
	case n == 15 && (strings.HasPrefix(cleaned, "34") || strings.HasPrefix(cleaned, "37")):
		return CardAmex
	case n == 16 && cleaned[0] == '5' && cleaned[1] >= '1' && cleaned[1] <= '5':
		return CardMastercard
	case n == 16 && cleaned[0] == '2':
		// The 2-series range is 2221-2720.
		if prefix, err := strconv.Atoi(cleaned[:4]); err == nil && prefix >= 2221 && prefix <= 2720 {
			return CardMastercard
		}
	case (n == 16 || n == 19) && (strings.HasPrefix(cleaned, "6011") || strings.HasPrefix(cleaned, "65")):
		return CardDiscover
	case (n == 16 || n == 19) && strings.HasPrefix(cleaned, "64"):
		if cleaned[2] >= '4' && cleaned[2] <= '9' {
			return CardDiscover
		}
	}
	return CardUnknown
}

// CardNumber reports whether s is a payment card number: it must pass the
// Luhn checksum and belong to a recognized network. A digit string with a
// valid checksum but no known prefix, such as "7070707070707070", is
// rejected.
func CardNumber(s string) bool {
	cleaned := cleanCardNumber(s)
	if !allDigits(cleaned) {
		return false
	}
	return DetectCardIssuer(cleaned) != CardUnknown && luhnChecksum(cleaned)
}

// CardIssuedBy returns a predicate that accepts valid card numbers issued
// by one of the given networks.
func CardIssuedBy(issuers ...CardIssuer) func(string) bool {
	accepted := slices.Clone(issuers)
	return func(s string) bool {
		return CardNumber(s) && slices.Contains(accepted, DetectCardIssuer(s))
	}
}

// CurrencyCode reports whether s is a supported ISO 4217 currency code in
// canonical uppercase form, such as "USD". Lowercase input is rejected;
// canonicalize with a sanitizer first.
func CurrencyCode(s string) bool {
	return currencyCodeRegex.MatchString(s) && validCurrencyCodes[s]
}

// RoutingNumber reports whether s is a nine-digit ABA routing number with a
// valid weighted checksum. Spaces and dashes are ignored.
func RoutingNumber(s string) bool {
	cleaned := cleanCardNumber(s)
	if len(cleaned) != 9 || !allDigits(cleaned) {
		return false
	}

	weights := []int{3, 7, 1, 3, 7, 1, 3, 7, 1}
	sum := 0
	for i := range cleaned {
		sum += int(cleaned[i]-'0') * weights[i]
	}
	return sum%10 == 0
}

// AccountNumber reports whether s looks like a bank account number:
// alphanumeric, between 4 and 34 characters after removing spaces and
// dashes. Real implementations should layer country-specific rules on top.
func AccountNumber(s string) bool {
	cleaned := cleanCardNumber(s)
	if len(cleaned) < 4 || len(cleaned) > 34 {
		return false
	}
	for i := 0; i < len(cleaned); i++ {
		c := cleaned[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

// DecimalPrecision returns a predicate that accepts values with at most
// maxDecimals decimal places. It prevents floating-point precision issues
// in financial calculations.
func DecimalPrecision(maxDecimals int) func(float64) bool {
	multiplier := math.Pow(10, float64(maxDecimals))
	return func(v float64) bool {
		return math.Floor(v*multiplier) == v*multiplier
	}
}

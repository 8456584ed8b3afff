package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/wrapkit/pkg/validator"
)

func TestLuhnValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "valid checksum", input: "4111111111111111", want: true},
		{name: "valid with separators", input: "4111-1111 1111-1111", want: true},
		{name: "off by one", input: "4111111111111112", want: false},
		{name: "letters", input: "4111x11111111111", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.LuhnValid(tt.input))
		})
	}
}

func TestDetectCardIssuer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  validator.CardIssuer
	}{
		{name: "visa 16", input: "4111111111111111", want: validator.CardVisa},
		{name: "visa 13", input: "4222222222222", want: validator.CardVisa},
		{name: "mastercard 5-series", input: "5265187007972395", want: validator.CardMastercard},
		{name: "mastercard 2-series", input: "2223003122003222", want: validator.CardMastercard},
		{name: "amex", input: "377947337532813", want: validator.CardAmex},
		{name: "discover 6011", input: "6011111111111117", want: validator.CardDiscover},
		{name: "unknown prefix", input: "7070707070707070", want: validator.CardUnknown},
		{name: "amex-length visa prefix", input: "411111111111111", want: validator.CardUnknown},
		{name: "not digits", input: "not-a-card", want: validator.CardUnknown},
		{name: "empty", input: "", want: validator.CardUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.DetectCardIssuer(tt.input))
		})
	}
}

func TestCardNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "visa", input: "4111111111111111", want: true},
		{name: "mastercard", input: "5265187007972395", want: true},
		{name: "amex", input: "377947337532813", want: true},
		{name: "amex with separators", input: "3779 4733 7532 813", want: true},
		{name: "discover", input: "6011111111111117", want: true},
		{name: "luhn ok but unknown network", input: "7070707070707070", want: false},
		{name: "known network bad checksum", input: "4111111111111112", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.CardNumber(tt.input))
		})
	}
}

func TestCardIssuedBy(t *testing.T) {
	t.Parallel()

	accepted := validator.CardIssuedBy(validator.CardAmex, validator.CardDiscover)

	assert.True(t, accepted("377947337532813"))
	assert.True(t, accepted("6011111111111117"))
	assert.False(t, accepted("5265187007972395")) // valid mastercard, wrong network
	assert.False(t, accepted("7070707070707070"))

	none := validator.CardIssuedBy()
	assert.False(t, none("4111111111111111"))
}

func TestCurrencyCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "usd", input: "USD", want: true},
		{name: "eur", input: "EUR", want: true},
		{name: "jpy", input: "JPY", want: true},
		{name: "lowercase rejected", input: "usd", want: false},
		{name: "unknown code", input: "XXX", want: false},
		{name: "too long", input: "USDT", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.CurrencyCode(tt.input))
		})
	}
}

func TestRoutingNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "valid aba", input: "021000021", want: true},
		{name: "valid with dashes", input: "021-000-021", want: true},
		{name: "bad checksum", input: "123456789", want: false},
		{name: "too short", input: "02100002", want: false},
		{name: "letters", input: "02100002a", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.RoutingNumber(tt.input))
		})
	}
}

func TestAccountNumber(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.AccountNumber("12345678"))
	assert.True(t, validator.AccountNumber("GB82 WEST 1234 5698 7654 32"))
	assert.False(t, validator.AccountNumber("123"))                                 // too short
	assert.False(t, validator.AccountNumber("123456789012345678901234567890123456")) // over IBAN max
	assert.False(t, validator.AccountNumber("1234!678"))
}

func TestDecimalPrecision(t *testing.T) {
	t.Parallel()

	cents := validator.DecimalPrecision(2)
	assert.True(t, cents(10.25))
	assert.True(t, cents(10.0))
	assert.True(t, cents(0))
	assert.False(t, cents(10.255))
	assert.False(t, cents(3.14159))

	whole := validator.DecimalPrecision(0)
	assert.True(t, whole(42))
	assert.False(t, whole(42.5))
}

package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/wrapkit/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "trims and lowercases", input: "  John.Doe@Example.COM ", expected: "john.doe@example.com"},
		{name: "consolidates consecutive dots", input: "john...doe@example.com", expected: "john.doe@example.com"},
		{name: "strips surrounding dots in local part", input: ".john.@example.com", expected: "john@example.com"},
		{name: "leaves invalid shapes alone", input: "not-an-email", expected: "not-an-email"},
		{name: "leaves multiple at-signs alone", input: "a@b@c", expected: "a@b@c"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sanitizer.NormalizeEmail(tt.input))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "strips formatting", input: "(555) 123-4567", expected: "5551234567"},
		{name: "preserves leading plus", input: "+1 (555) 123-4567", expected: "+15551234567"},
		{name: "interior plus is dropped", input: "555+123", expected: "555123"},
		{name: "empty stays empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sanitizer.NormalizePhone(tt.input))
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "defaults to https", input: "example.com", expected: "https://example.com"},
		{name: "lowercases the host", input: "https://Example.COM/Path", expected: "https://example.com/Path"},
		{name: "drops bare trailing slash", input: "https://example.com/", expected: "https://example.com"},
		{name: "keeps explicit http", input: "http://example.com", expected: "http://example.com"},
		{name: "empty stays empty", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sanitizer.NormalizeURL(tt.input))
		})
	}
}

func TestNormalizeCardNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "4111111111111111", sanitizer.NormalizeCardNumber("4111 1111 1111 1111"))
	assert.Equal(t, "4111111111111111", sanitizer.NormalizeCardNumber("4111-1111-1111-1111"))
}

func TestNormalizePostalCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SW1A 1AA", sanitizer.NormalizePostalCode("  sw1a   1aa "))
	assert.Equal(t, "10001", sanitizer.NormalizePostalCode("10001"))
}

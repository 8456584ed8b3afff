package validator_test

import (
	"testing"

	"github.com/dmitrymomot/wrapkit/pkg/validator"
)

func BenchmarkEmail(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		validator.Email("user+tag@mail.example.com")
	}
}

func BenchmarkCardNumber(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		validator.CardNumber("5265187007972395")
	}
}

func BenchmarkUUID(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		validator.UUID("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	}
}

func BenchmarkAlphanumeric(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		validator.Alphanumeric("gopher42gopher42")
	}
}

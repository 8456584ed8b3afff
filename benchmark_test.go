package wrapkit_test

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/wrapkit"
)

func benchUsernameKind() *wrapkit.Kind[string] {
	return wrapkit.MustDefine("username", wrapkit.Config[string]{
		Sanitize: wrapkit.Chain[string]{strings.TrimSpace, strings.ToLower},
		Validate: wrapkit.All(
			wrapkit.Fn(func(s string) bool {
				for _, r := range s {
					if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
						return false
					}
				}
				return s != ""
			}),
			wrapkit.Derive(utf8.RuneCountInString, wrapkit.Between(5, 20)),
		),
	})
}

func BenchmarkKind_New(b *testing.B) {
	kind := benchUsernameKind()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = kind.New("  Gopher42  ")
	}
}

func BenchmarkKind_New_Rejected(b *testing.B) {
	kind := benchUsernameKind()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = kind.New("no spaces allowed")
	}
}

func BenchmarkKind_Unchecked(b *testing.B) {
	kind := benchUsernameKind()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = kind.Unchecked("gopher42")
	}
}

func BenchmarkChain_Apply(b *testing.B) {
	chain := wrapkit.Chain[string]{strings.TrimSpace, strings.ToLower}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = chain.Apply("  Gopher42  ")
	}
}

func BenchmarkCheck_Tree(b *testing.B) {
	tree := wrapkit.All(
		wrapkit.Fn(func(s string) bool { return s != "" }),
		wrapkit.Derive(utf8.RuneCountInString, wrapkit.Between(5, 20)),
		wrapkit.Not(wrapkit.Fn(func(s string) bool { return strings.ContainsRune(s, ' ') })),
	)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = tree.Check("gopher42")
	}
}

package wrapkit_test

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/wrapkit"
)

func Example() {
	username := wrapkit.MustDefine("username", wrapkit.Config[string]{
		Sanitize: wrapkit.Chain[string]{strings.TrimSpace},
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
		Upgrades: []wrapkit.Upgrade{wrapkit.UpgradeDisplay},
	})

	name, err := username.New("  gopher42  ")
	fmt.Println(name.Inner(), err)

	_, err = username.New("a b!")
	fmt.Println(errors.Is(err, wrapkit.ErrRejected))

	// Output:
	// gopher42 <nil>
	// true
}

func ExampleKind_Unchecked() {
	tag := wrapkit.MustDefine("tag", wrapkit.Config[string]{
		Sanitize: wrapkit.Chain[string]{strings.TrimSpace, strings.ToLower},
		Validate: wrapkit.Fn(func(s string) bool { return s != "" }),
		Upgrades: []wrapkit.Upgrade{wrapkit.UpgradeDisplay},
	})

	// Values read back from trusted storage skip both stages.
	fromDB := tag.Unchecked("backend")
	fmt.Println(fromDB.Inner())

	// Output:
	// backend
}

func ExampleWrapped_String() {
	secret := wrapkit.MustDefine("api_key", wrapkit.Config[string]{
		Validate: wrapkit.Derive(func(s string) int { return len(s) }, wrapkit.Min(8)),
	})

	key := secret.MustNew("k-3f9a02d1")
	fmt.Println(key)

	// Output:
	// api_key(redacted)
}

func ExampleAny() {
	port := wrapkit.MustDefine("port", wrapkit.Config[int]{
		Validate: wrapkit.Any(
			wrapkit.Between(80, 89),
			wrapkit.Between(8000, 8999),
		),
	})

	for _, n := range []int{85, 443, 8080} {
		_, err := port.New(n)
		fmt.Println(n, err == nil)
	}

	// Output:
	// 85 true
	// 443 false
	// 8080 true
}

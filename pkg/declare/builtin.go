package declare

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/wrapkit"
	"github.com/dmitrymomot/wrapkit/pkg/sanitizer"
	"github.com/dmitrymomot/wrapkit/pkg/validator"
)

// must backs the builtin registries, whose names are fixed by this file
// and can never collide.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Strings returns a registry preloaded with the sanitizer and validator
// catalogs for string kinds.
func Strings() *Registry[string] {
	r := NewRegistry[string]()

	steps := map[string]wrapkit.Transform[string]{
		"trim":                sanitizer.Trim,
		"lower":               sanitizer.ToLower,
		"upper":               sanitizer.ToUpper,
		"trim_lower":          sanitizer.TrimToLower,
		"trim_upper":          sanitizer.TrimToUpper,
		"nfc":                 sanitizer.NormalizeNFC,
		"nfkc":                sanitizer.NormalizeNFKC,
		"fold_width":          sanitizer.FoldWidth,
		"strip_diacritics":    sanitizer.RemoveDiacritics,
		"collapse_whitespace": sanitizer.RemoveExtraWhitespace,
		"single_line":         sanitizer.SingleLine,
		"strip_control":       sanitizer.RemoveControlChars,
		"digits_only":         sanitizer.KeepDigits,
		"letters_only":        sanitizer.KeepAlpha,
		"alphanumeric_only":   sanitizer.KeepAlphanumeric,
		"title_case":          sanitizer.ToTitleCase,
		"normalize_email":     sanitizer.NormalizeEmail,
		"normalize_phone":     sanitizer.NormalizePhone,
		"normalize_url":       sanitizer.NormalizeURL,
		"normalize_card":      sanitizer.NormalizeCardNumber,
	}
	for name, step := range steps {
		must(r.RegisterTransform(name, plainTransform(step)))
	}

	must(r.RegisterTransform("max_chars", func(args *yaml.Node) (wrapkit.Transform[string], error) {
		n, err := scalarArg[int](args)
		if err != nil {
			return nil, err
		}
		return sanitizer.MaxChars(n), nil
	}))
	must(r.RegisterTransform("max_bytes", func(args *yaml.Node) (wrapkit.Transform[string], error) {
		n, err := scalarArg[int](args)
		if err != nil {
			return nil, err
		}
		return sanitizer.MaxBytes(n), nil
	}))
	must(r.RegisterTransform("trim_prefix", func(args *yaml.Node) (wrapkit.Transform[string], error) {
		p, err := scalarArg[string](args)
		if err != nil {
			return nil, err
		}
		return sanitizer.TrimPrefix(p), nil
	}))
	must(r.RegisterTransform("trim_suffix", func(args *yaml.Node) (wrapkit.Transform[string], error) {
		s, err := scalarArg[string](args)
		if err != nil {
			return nil, err
		}
		return sanitizer.TrimSuffix(s), nil
	}))
	must(r.RegisterTransform("remove_chars", func(args *yaml.Node) (wrapkit.Transform[string], error) {
		chars, err := scalarArg[string](args)
		if err != nil {
			return nil, err
		}
		return sanitizer.RemoveChars(chars), nil
	}))
	must(r.RegisterTransform("replace", func(args *yaml.Node) (wrapkit.Transform[string], error) {
		var a struct {
			Old string `yaml:"old"`
			New string `yaml:"new"`
		}
		if args == nil {
			return nil, fmt.Errorf("%w: old and new are required", ErrInvalidArgs)
		}
		if err := args.Decode(&a); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
		}
		if a.Old == "" {
			return nil, fmt.Errorf("%w: old must not be empty", ErrInvalidArgs)
		}
		return sanitizer.Replace(a.Old, a.New), nil
	}))

	rules := map[string]func(string) bool{
		"not_empty":      validator.NotEmpty,
		"not_blank":      validator.NotBlank,
		"alphabetic":     validator.Alphabetic,
		"alphanumeric":   validator.Alphanumeric,
		"ascii":          validator.ASCII,
		"printable":      validator.Printable,
		"lowercase":      validator.Lowercase,
		"uppercase":      validator.Uppercase,
		"email":          validator.Email,
		"url":            validator.URL,
		"phone":          validator.E164Phone,
		"ip":             validator.IP,
		"ipv4":           validator.IPv4,
		"ipv6":           validator.IPv6,
		"hostname":       validator.Hostname,
		"mac":            validator.MAC,
		"uuid":           validator.UUID,
		"uuid_v4":        validator.UUIDv4,
		"slug":           validator.Slug,
		"username":       validator.Username,
		"handle":         validator.Handle,
		"hex":            validator.Hex,
		"base64":         validator.Base64,
		"luhn":           validator.LuhnValid,
		"card_number":    validator.CardNumber,
		"currency":       validator.CurrencyCode,
		"routing_number": validator.RoutingNumber,
		"account_number": validator.AccountNumber,
	}
	for name, pred := range rules {
		must(r.RegisterCheck(name, plainCheck(pred)))
	}

	must(r.RegisterCheck("chars", func(args *yaml.Node) (wrapkit.Check[string], error) {
		b, err := boundsArg[int](args)
		if err != nil {
			return nil, err
		}
		return boundedCheck(validator.CharCount, b), nil
	}))
	must(r.RegisterCheck("bytes", func(args *yaml.Node) (wrapkit.Check[string], error) {
		b, err := boundsArg[int](args)
		if err != nil {
			return nil, err
		}
		return boundedCheck(validator.ByteLen, b), nil
	}))
	must(r.RegisterCheck("contains", func(args *yaml.Node) (wrapkit.Check[string], error) {
		sub, err := scalarArg[string](args)
		if err != nil {
			return nil, err
		}
		return wrapkit.Fn(validator.Contains(sub)), nil
	}))
	must(r.RegisterCheck("prefix", func(args *yaml.Node) (wrapkit.Check[string], error) {
		p, err := scalarArg[string](args)
		if err != nil {
			return nil, err
		}
		return wrapkit.Fn(validator.HasPrefix(p)), nil
	}))
	must(r.RegisterCheck("suffix", func(args *yaml.Node) (wrapkit.Check[string], error) {
		s, err := scalarArg[string](args)
		if err != nil {
			return nil, err
		}
		return wrapkit.Fn(validator.HasSuffix(s)), nil
	}))
	must(r.RegisterCheck("regex", func(args *yaml.Node) (wrapkit.Check[string], error) {
		pattern, err := scalarArg[string](args)
		if err != nil {
			return nil, err
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
		}
		return wrapkit.Fn(validator.MatchRegex(re)), nil
	}))
	must(r.RegisterCheck("url_scheme", func(args *yaml.Node) (wrapkit.Check[string], error) {
		schemes, err := listArg[string](args)
		if err != nil {
			return nil, err
		}
		return wrapkit.Fn(validator.URLWithScheme(schemes...)), nil
	}))
	must(r.RegisterCheck("one_of", func(args *yaml.Node) (wrapkit.Check[string], error) {
		vs, err := listArg[string](args)
		if err != nil {
			return nil, err
		}
		return wrapkit.Fn(validator.OneOf(vs...)), nil
	}))
	must(r.RegisterCheck("none_of", func(args *yaml.Node) (wrapkit.Check[string], error) {
		vs, err := listArg[string](args)
		if err != nil {
			return nil, err
		}
		return wrapkit.Fn(validator.NoneOf(vs...)), nil
	}))
	must(r.RegisterCheck("card_issuer", func(args *yaml.Node) (wrapkit.Check[string], error) {
		names, err := listArg[string](args)
		if err != nil {
			return nil, err
		}
		issuers := make([]validator.CardIssuer, 0, len(names))
		for _, name := range names {
			issuer, err := parseIssuer(name)
			if err != nil {
				return nil, err
			}
			issuers = append(issuers, issuer)
		}
		return wrapkit.Fn(validator.CardIssuedBy(issuers...)), nil
	}))

	return r
}

func parseIssuer(name string) (validator.CardIssuer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "visa":
		return validator.CardVisa, nil
	case "mastercard":
		return validator.CardMastercard, nil
	case "amex":
		return validator.CardAmex, nil
	case "discover":
		return validator.CardDiscover, nil
	}
	return validator.CardUnknown, fmt.Errorf("%w: unknown issuer %q", ErrInvalidArgs, name)
}

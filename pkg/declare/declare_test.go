package declare_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/wrapkit"
	"github.com/dmitrymomot/wrapkit/pkg/declare"
)

func TestParseUsernameDeclaration(t *testing.T) {
	t.Parallel()

	kind, err := declare.Strings().Parse([]byte(`
name: username
sanitize:
  - trim
  - lower
validate:
  all:
    - alphanumeric
    - chars: {min: 5, max: 20}
upgrades: [display, json]
`))
	require.NoError(t, err)
	assert.Equal(t, "username", kind.Name())
	assert.True(t, kind.Upgraded(wrapkit.UpgradeDisplay))
	assert.True(t, kind.Upgraded(wrapkit.UpgradeJSON))
	assert.False(t, kind.Upgraded(wrapkit.UpgradeSQL))

	u, err := kind.New("  Gopher42  ")
	require.NoError(t, err)
	assert.Equal(t, "gopher42", u.Inner())

	_, err = kind.New("a b")
	assert.ErrorIs(t, err, wrapkit.ErrRejected)

	_, err = kind.New("abcd")
	assert.ErrorIs(t, err, wrapkit.ErrRejected)
}

func TestParseImplicitAll(t *testing.T) {
	t.Parallel()

	// A bare sequence under validate means every rule must hold.
	kind, err := declare.Strings().Parse([]byte(`
name: tag
validate:
  - not_blank
  - slug
`))
	require.NoError(t, err)

	_, err = kind.New("go-tips")
	require.NoError(t, err)

	_, err = kind.New("Not A Slug")
	assert.ErrorIs(t, err, wrapkit.ErrRejected)
}

func TestParseScalarValidate(t *testing.T) {
	t.Parallel()

	kind, err := declare.Strings().Parse([]byte(`
name: note
validate: not_blank
`))
	require.NoError(t, err)

	_, err = kind.New("hello")
	require.NoError(t, err)

	_, err = kind.New("   ")
	assert.ErrorIs(t, err, wrapkit.ErrRejected)
}

func TestParseCombinators(t *testing.T) {
	t.Parallel()

	kind, err := declare.Strings().Parse([]byte(`
name: channel
validate:
  all:
    - not_empty
    - not:
        prefix: "_"
    - when:
        if: {prefix: "admin"}
        then: {suffix: "!"}
`))
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "plain value passes", input: "general", ok: true},
		{name: "underscore prefix rejected", input: "_private", ok: false},
		{name: "guarded value needs suffix", input: "admin-ops", ok: false},
		{name: "guarded value with suffix", input: "admin-ops!", ok: true},
		{name: "empty rejected", input: "", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := kind.New(tt.input)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, wrapkit.ErrRejected)
			}
		})
	}
}

func TestParseAny(t *testing.T) {
	t.Parallel()

	kind, err := declare.Strings().Parse([]byte(`
name: contact
validate:
  any:
    - email
    - phone
`))
	require.NoError(t, err)

	_, err = kind.New("user@example.com")
	require.NoError(t, err)

	_, err = kind.New("+14155552671")
	require.NoError(t, err)

	_, err = kind.New("neither")
	assert.ErrorIs(t, err, wrapkit.ErrRejected)
}

func TestParseJSONDocument(t *testing.T) {
	t.Parallel()

	// YAML is a superset of JSON, so JSON declarations parse unchanged.
	kind, err := declare.Strings().Parse([]byte(
		`{"name": "tag", "sanitize": ["trim"], "validate": ["slug"], "upgrades": ["display"]}`,
	))
	require.NoError(t, err)
	assert.Equal(t, "tag", kind.Name())

	v, err := kind.New("  go-tips  ")
	require.NoError(t, err)
	assert.Equal(t, "go-tips", v.Inner())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{
			name:    "empty document",
			src:     "",
			wantErr: declare.ErrInvalidDocument,
		},
		{
			name:    "malformed yaml",
			src:     "name: [unclosed",
			wantErr: declare.ErrInvalidDocument,
		},
		{
			name:    "unknown top-level key",
			src:     "name: x\nbogus: 1\n",
			wantErr: declare.ErrInvalidDocument,
		},
		{
			name:    "missing name",
			src:     "sanitize: [trim]\n",
			wantErr: wrapkit.ErrEmptyName,
		},
		{
			name:    "unknown transform",
			src:     "name: x\nsanitize: [explode]\n",
			wantErr: declare.ErrUnknownTransform,
		},
		{
			name:    "unknown check",
			src:     "name: x\nvalidate: [explode]\n",
			wantErr: declare.ErrUnknownCheck,
		},
		{
			name:    "missing rule arguments",
			src:     "name: x\nvalidate:\n  chars: {}\n",
			wantErr: declare.ErrInvalidArgs,
		},
		{
			name:    "bad regex pattern",
			src:     "name: x\nvalidate:\n  regex: \"(\"\n",
			wantErr: declare.ErrInvalidArgs,
		},
		{
			name:    "missing step arguments",
			src:     "name: x\nsanitize: [max_chars]\n",
			wantErr: declare.ErrInvalidArgs,
		},
		{
			name:    "arguments on plain step",
			src:     "name: x\nsanitize:\n  - trim: 5\n",
			wantErr: declare.ErrInvalidArgs,
		},
		{
			name:    "unknown upgrade",
			src:     "name: x\nupgrades: [telepathy]\n",
			wantErr: wrapkit.ErrUnknownUpgrade,
		},
		{
			name:    "when without then",
			src:     "name: x\nvalidate:\n  when:\n    if: not_empty\n",
			wantErr: declare.ErrInvalidDocument,
		},
		{
			name:    "multi-key rule mapping",
			src:     "name: x\nvalidate:\n  prefix: a\n  suffix: b\n",
			wantErr: declare.ErrInvalidDocument,
		},
		{
			name:    "inverted bounds",
			src:     "name: x\nvalidate:\n  chars: {min: 20, max: 5}\n",
			wantErr: wrapkit.ErrInvalidBounds,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := declare.Strings().Parse([]byte(tt.src))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCustomRegistry(t *testing.T) {
	t.Parallel()

	reg := declare.NewRegistry[string]()
	require.NoError(t, reg.RegisterTransform("shout", func(args *yaml.Node) (wrapkit.Transform[string], error) {
		return strings.ToUpper, nil
	}))
	require.NoError(t, reg.RegisterCheck("question", func(args *yaml.Node) (wrapkit.Check[string], error) {
		return wrapkit.Fn(func(s string) bool { return strings.HasSuffix(s, "?") }), nil
	}))

	kind, err := reg.Parse([]byte(`
name: prompt
sanitize: [shout]
validate: [question]
`))
	require.NoError(t, err)

	p, err := kind.New("ready?")
	require.NoError(t, err)
	assert.Equal(t, "READY?", p.Inner())

	_, err = kind.New("ready")
	assert.ErrorIs(t, err, wrapkit.ErrRejected)
}

func TestRegistrationErrors(t *testing.T) {
	t.Parallel()

	reg := declare.NewRegistry[string]()
	identity := func(args *yaml.Node) (wrapkit.Transform[string], error) {
		return func(s string) string { return s }, nil
	}

	require.NoError(t, reg.RegisterTransform("noop", identity))

	err := reg.RegisterTransform("noop", identity)
	assert.ErrorIs(t, err, declare.ErrDuplicateName)

	err = reg.RegisterTransform("all", identity)
	assert.ErrorIs(t, err, declare.ErrReservedName)

	err = reg.RegisterTransform("  ", identity)
	assert.ErrorIs(t, err, declare.ErrEmptyName)

	err = reg.RegisterTransform("nil", nil)
	assert.ErrorIs(t, err, declare.ErrNilFactory)

	err = reg.RegisterCheck("when", func(args *yaml.Node) (wrapkit.Check[string], error) {
		return wrapkit.Fn(func(string) bool { return true }), nil
	})
	assert.ErrorIs(t, err, declare.ErrReservedName)
}

func TestIntsRegistry(t *testing.T) {
	t.Parallel()

	kind, err := declare.Ints().Parse([]byte(`
name: quantity
sanitize:
  - clamp: {min: 0}
validate:
  - max: 100
  - multiple_of: 5
`))
	require.NoError(t, err)

	q, err := kind.New(-10)
	require.NoError(t, err)
	assert.Equal(t, 0, q.Inner())

	q, err = kind.New(35)
	require.NoError(t, err)
	assert.Equal(t, 35, q.Inner())

	_, err = kind.New(105)
	assert.ErrorIs(t, err, wrapkit.ErrRejected)

	_, err = kind.New(33)
	assert.ErrorIs(t, err, wrapkit.ErrRejected)
}

func TestFloatsRegistry(t *testing.T) {
	t.Parallel()

	kind, err := declare.Floats().Parse([]byte(`
name: price
sanitize:
  - round_to: 2
validate:
  - finite
  - non_negative
  - precision: 2
`))
	require.NoError(t, err)

	p, err := kind.New(19.999)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, p.Inner(), 1e-9)

	_, err = kind.New(math.Inf(1))
	assert.ErrorIs(t, err, wrapkit.ErrRejected)

	_, err = kind.New(-1.5)
	assert.ErrorIs(t, err, wrapkit.ErrRejected)
}

func TestParseCardDeclaration(t *testing.T) {
	t.Parallel()

	kind, err := declare.Strings().Parse([]byte(`
name: payment_card
sanitize:
  - normalize_card
validate:
  - card_number
  - card_issuer: [amex, discover]
`))
	require.NoError(t, err)

	c, err := kind.New("3779 4733 7532 813")
	require.NoError(t, err)
	assert.Equal(t, "377947337532813", c.Inner())

	// Valid mastercard, but not an accepted network.
	_, err = kind.New("5265187007972395")
	assert.ErrorIs(t, err, wrapkit.ErrRejected)

	_, err = kind.New("7070707070707070")
	assert.ErrorIs(t, err, wrapkit.ErrRejected)
}

func TestParseNode(t *testing.T) {
	t.Parallel()

	t.Run("defines a kind from an embedded mapping", func(t *testing.T) {
		t.Parallel()

		src := `
service: accounts
username:
  name: username
  sanitize: [trim]
  validate:
    - alphanumeric
    - chars: {min: 5, max: 20}
`
		var root yaml.Node
		require.NoError(t, yaml.Unmarshal([]byte(src), &root))

		mapping := root.Content[0]
		var decl *yaml.Node
		for i := 0; i+1 < len(mapping.Content); i += 2 {
			if mapping.Content[i].Value == "username" {
				decl = mapping.Content[i+1]
			}
		}
		require.NotNil(t, decl)

		kind, err := declare.Strings().ParseNode(decl)
		require.NoError(t, err)

		w, err := kind.New("  gopher42  ")
		require.NoError(t, err)
		assert.Equal(t, "gopher42", w.Inner())

		_, err = kind.New("  !!  ")
		assert.ErrorIs(t, err, wrapkit.ErrRejected)
	})

	t.Run("accepts a whole document node", func(t *testing.T) {
		t.Parallel()

		var root yaml.Node
		require.NoError(t, yaml.Unmarshal([]byte("name: tag\nsanitize: [trim, lower]\n"), &root))

		kind, err := declare.Strings().ParseNode(&root)
		require.NoError(t, err)
		assert.Equal(t, "tag", kind.Name())
		assert.Equal(t, "backend", kind.Sanitize("  Backend  "))
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		var root yaml.Node
		require.NoError(t, yaml.Unmarshal([]byte("name: tag\nbogus: 1\n"), &root))

		_, err := declare.Strings().ParseNode(&root)
		assert.ErrorIs(t, err, declare.ErrInvalidDocument)
	})

	t.Run("rejects non-mapping declarations", func(t *testing.T) {
		t.Parallel()

		var root yaml.Node
		require.NoError(t, yaml.Unmarshal([]byte("[trim, lower]\n"), &root))

		_, err := declare.Strings().ParseNode(&root)
		assert.ErrorIs(t, err, declare.ErrInvalidDocument)
	})

	t.Run("rejects a nil node", func(t *testing.T) {
		t.Parallel()

		_, err := declare.Strings().ParseNode(nil)
		assert.ErrorIs(t, err, declare.ErrInvalidDocument)
	})
}

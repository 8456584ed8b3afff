package wrapkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wrapkit"
)

func TestParseUpgrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected wrapkit.Upgrade
		wantErr  bool
	}{
		{name: "display", input: "display", expected: wrapkit.UpgradeDisplay},
		{name: "text", input: "text", expected: wrapkit.UpgradeText},
		{name: "json", input: "json", expected: wrapkit.UpgradeJSON},
		{name: "sql", input: "sql", expected: wrapkit.UpgradeSQL},
		{name: "equal", input: "equal", expected: wrapkit.UpgradeEqual},
		{name: "case insensitive", input: "JSON", expected: wrapkit.UpgradeJSON},
		{name: "surrounding whitespace ignored", input: "  sql  ", expected: wrapkit.UpgradeSQL},
		{name: "unknown tag", input: "bogus", wantErr: true},
		{name: "empty tag", input: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := wrapkit.ParseUpgrade(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, wrapkit.ErrUnknownUpgrade)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, u)
		})
	}
}

func TestUpgraded(t *testing.T) {
	t.Parallel()

	kind, err := wrapkit.Define("token", wrapkit.Config[string]{
		Upgrades: []wrapkit.Upgrade{wrapkit.UpgradeJSON, wrapkit.UpgradeSQL},
	})
	require.NoError(t, err)

	assert.True(t, kind.Upgraded(wrapkit.UpgradeJSON))
	assert.True(t, kind.Upgraded(wrapkit.UpgradeSQL))
	assert.False(t, kind.Upgraded(wrapkit.UpgradeDisplay))
	assert.False(t, kind.Upgraded(wrapkit.UpgradeText))
	assert.False(t, kind.Upgraded(wrapkit.UpgradeEqual))
}

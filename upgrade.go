package wrapkit

import (
	"fmt"
	"strings"
)

// Upgrade is an opt-in capability tag attached to a kind at declaration
// time. Kinds start with the minimal surface (construction and Inner);
// every further behavior of a wrapped value is gated by its tags.
type Upgrade string

const (
	// UpgradeDisplay exposes the inner value through String and
	// slog.LogValuer. Without it both render a redacted form.
	UpgradeDisplay Upgrade = "display"

	// UpgradeText enables encoding.TextMarshaler / TextUnmarshaler
	// passthrough. Decoding re-runs the full pipeline.
	UpgradeText Upgrade = "text"

	// UpgradeJSON enables json.Marshaler / json.Unmarshaler passthrough and
	// Kind.FromJSON. Decoding re-runs the full pipeline.
	UpgradeJSON Upgrade = "json"

	// UpgradeSQL enables driver.Valuer / sql.Scanner passthrough. Scanning
	// re-runs the full pipeline.
	UpgradeSQL Upgrade = "sql"

	// UpgradeEqual enables forwarding of == on inner values through Equal.
	// Values of kinds without the tag never compare equal.
	UpgradeEqual Upgrade = "equal"
)

// ParseUpgrade resolves an upgrade tag by name, trimming surrounding
// whitespace and ignoring case. Unknown names are an error so that
// declaration front ends fail at declaration time rather than silently
// dropping a capability.
func ParseUpgrade(s string) (Upgrade, error) {
	switch u := Upgrade(strings.ToLower(strings.TrimSpace(s))); u {
	case UpgradeDisplay, UpgradeText, UpgradeJSON, UpgradeSQL, UpgradeEqual:
		return u, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUpgrade, s)
	}
}

func (u Upgrade) known() bool {
	switch u {
	case UpgradeDisplay, UpgradeText, UpgradeJSON, UpgradeSQL, UpgradeEqual:
		return true
	}
	return false
}

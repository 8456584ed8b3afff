package wrapkit

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding"
	"fmt"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
)

// Wrapped is an immutable wrapper value produced by a kind. The zero value
// is unbound: it carries no kind, decodes nothing and renders empty. There
// is no way to replace the inner value short of constructing a new one.
type Wrapped[T any] struct {
	kind  *Kind[T]
	inner T
}

// Inner returns the wrapped value exactly as it was wrapped: the sanitized
// inner value for checked construction, the caller's value for Unchecked.
// It never fails and never re-runs any stage.
func (w Wrapped[T]) Inner() T { return w.inner }

// KindName returns the owning kind's name, or "" for the zero value.
func (w Wrapped[T]) KindName() string {
	if w.kind == nil {
		return ""
	}
	return w.kind.name
}

// IsZero reports whether w is the unbound zero value.
func (w Wrapped[T]) IsZero() bool { return w.kind == nil }

// String renders the inner value via fmt when the kind carries
// UpgradeDisplay, and a redacted form otherwise, so wrapped secrets cannot
// leak through casual %v printing.
func (w Wrapped[T]) String() string {
	if w.kind == nil {
		return ""
	}
	if !w.kind.upgrades[UpgradeDisplay] {
		return w.kind.name + "(redacted)"
	}
	return fmt.Sprint(w.inner)
}

// LogValue implements slog.LogValuer with the same redaction rule as
// String, so structured logs honor the display upgrade automatically.
func (w Wrapped[T]) LogValue() slog.Value {
	if w.kind == nil {
		return slog.StringValue("")
	}
	if !w.kind.upgrades[UpgradeDisplay] {
		return slog.StringValue(w.kind.name + "(redacted)")
	}
	return slog.AnyValue(w.inner)
}

// MarshalText implements encoding.TextMarshaler. The kind must carry
// UpgradeText. Inner types implementing encoding.TextMarshaler are
// delegated to; strings are emitted as-is; anything else renders via fmt.
func (w Wrapped[T]) MarshalText() ([]byte, error) {
	if w.kind == nil {
		return nil, ErrUnboundValue
	}
	if !w.kind.upgrades[UpgradeText] {
		return nil, ErrUpgradeDisabled
	}
	switch v := any(w.inner).(type) {
	case encoding.TextMarshaler:
		return v.MarshalText()
	case string:
		return []byte(v), nil
	default:
		return fmt.Appendf(nil, "%v", w.inner), nil
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. The receiver must
// already be bound to a kind (for example via Kind.Unchecked with a zero
// inner value) and the kind must carry UpgradeText. The decoded raw value
// is pushed through the full checked pipeline, so text input cannot bypass
// sanitization or validation.
func (w *Wrapped[T]) UnmarshalText(data []byte) error {
	if w.kind == nil {
		return ErrUnboundValue
	}
	if !w.kind.upgrades[UpgradeText] {
		return ErrUpgradeDisabled
	}
	raw, err := decodeText[T](data)
	if err != nil {
		return err
	}
	next, err := w.kind.New(raw)
	if err != nil {
		return err
	}
	*w = next
	return nil
}

func decodeText[T any](data []byte) (T, error) {
	var raw T
	if tu, ok := any(&raw).(encoding.TextUnmarshaler); ok {
		if err := tu.UnmarshalText(data); err != nil {
			var zero T
			return zero, err
		}
		return raw, nil
	}
	if s, ok := any(&raw).(*string); ok {
		*s = string(data)
		return raw, nil
	}
	return raw, ErrTextUnsupported
}

// MarshalJSON implements json.Marshaler. The kind must carry UpgradeJSON.
func (w Wrapped[T]) MarshalJSON() ([]byte, error) {
	if w.kind == nil {
		return nil, ErrUnboundValue
	}
	if !w.kind.upgrades[UpgradeJSON] {
		return nil, ErrUpgradeDisabled
	}
	return json.Marshal(w.inner)
}

// UnmarshalJSON implements json.Unmarshaler. The receiver must already be
// bound to a kind and the kind must carry UpgradeJSON. The decoded raw
// value is pushed through the full checked pipeline.
func (w *Wrapped[T]) UnmarshalJSON(data []byte) error {
	if w.kind == nil {
		return ErrUnboundValue
	}
	if !w.kind.upgrades[UpgradeJSON] {
		return ErrUpgradeDisabled
	}
	var raw T
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	next, err := w.kind.New(raw)
	if err != nil {
		return err
	}
	*w = next
	return nil
}

// Value implements driver.Valuer. The kind must carry UpgradeSQL. Inner
// types implementing driver.Valuer are delegated to; the standard scalar
// types map onto their driver.Value equivalents.
func (w Wrapped[T]) Value() (driver.Value, error) {
	if w.kind == nil {
		return nil, ErrUnboundValue
	}
	if !w.kind.upgrades[UpgradeSQL] {
		return nil, ErrUpgradeDisabled
	}
	switch v := any(w.inner).(type) {
	case driver.Valuer:
		return v.Value()
	case string:
		return v, nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case bool:
		return v, nil
	case []byte:
		return bytes.Clone(v), nil
	case time.Time:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrSQLUnsupported, w.inner)
	}
}

// Scan implements sql.Scanner. The receiver must already be bound to a
// kind and the kind must carry UpgradeSQL. The decoded raw value is pushed
// through the full checked pipeline, so database reads revalidate.
func (w *Wrapped[T]) Scan(src any) error {
	if w.kind == nil {
		return ErrUnboundValue
	}
	if !w.kind.upgrades[UpgradeSQL] {
		return ErrUpgradeDisabled
	}
	raw, err := decodeSQL[T](src)
	if err != nil {
		return err
	}
	next, err := w.kind.New(raw)
	if err != nil {
		return err
	}
	*w = next
	return nil
}

func decodeSQL[T any](src any) (T, error) {
	var raw T
	if sc, ok := any(&raw).(sql.Scanner); ok {
		if err := sc.Scan(src); err != nil {
			var zero T
			return zero, err
		}
		return raw, nil
	}
	switch p := any(&raw).(type) {
	case *string:
		switch s := src.(type) {
		case string:
			*p = s
		case []byte:
			*p = string(s)
		default:
			return raw, fmt.Errorf("%w: cannot scan %T into string", ErrSQLUnsupported, src)
		}
	case *int64:
		n, ok := src.(int64)
		if !ok {
			return raw, fmt.Errorf("%w: cannot scan %T into int64", ErrSQLUnsupported, src)
		}
		*p = n
	case *int:
		n, ok := src.(int64)
		if !ok {
			return raw, fmt.Errorf("%w: cannot scan %T into int", ErrSQLUnsupported, src)
		}
		*p = int(n)
	case *float64:
		switch f := src.(type) {
		case float64:
			*p = f
		case int64:
			*p = float64(f)
		default:
			return raw, fmt.Errorf("%w: cannot scan %T into float64", ErrSQLUnsupported, src)
		}
	case *bool:
		b, ok := src.(bool)
		if !ok {
			return raw, fmt.Errorf("%w: cannot scan %T into bool", ErrSQLUnsupported, src)
		}
		*p = b
	case *[]byte:
		switch b := src.(type) {
		case []byte:
			*p = bytes.Clone(b)
		case string:
			*p = []byte(b)
		default:
			return raw, fmt.Errorf("%w: cannot scan %T into []byte", ErrSQLUnsupported, src)
		}
	case *time.Time:
		t, ok := src.(time.Time)
		if !ok {
			return raw, fmt.Errorf("%w: cannot scan %T into time.Time", ErrSQLUnsupported, src)
		}
		*p = t
	default:
		return raw, fmt.Errorf("%w: %T", ErrSQLUnsupported, raw)
	}
	return raw, nil
}

// Equal reports whether a and b wrap equal inner values. It forwards ==
// only when both values belong to the same kind and that kind carries
// UpgradeEqual; in every other case, including two zero values, it reports
// false.
func Equal[T comparable](a, b Wrapped[T]) bool {
	if a.kind == nil || a.kind != b.kind {
		return false
	}
	if !a.kind.upgrades[UpgradeEqual] {
		return false
	}
	return a.inner == b.inner
}

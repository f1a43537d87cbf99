// Package nullable provides optional scalar types whose JSON decoding is
// total: a missing, null, or malformed value degrades to the invalid state
// instead of failing the surrounding decode. The upstream API is loose about
// numeric fields (floats and numeric strings both appear where integers are
// expected), so coercion lives here rather than in every mapper.
package nullable

import (
	"bytes"
	"database/sql/driver"
	"strconv"
	"strings"
)

// Int is an optional integer. The zero value is invalid (null).
type Int struct {
	Int   int
	Valid bool
}

// NewInt returns a valid Int holding v.
func NewInt(v int) Int {
	return Int{Int: v, Valid: true}
}

// UnmarshalJSON accepts JSON numbers, numeric strings (including float
// renderings like "1.0"), and null. Anything else yields the invalid state.
// It never returns an error.
func (n *Int) UnmarshalJSON(data []byte) error {
	*n = CoerceInt(string(bytes.Trim(data, `"`)))
	if bytes.Equal(data, []byte("null")) {
		*n = Int{}
	}
	return nil
}

// MarshalJSON renders null when invalid.
func (n Int) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(n.Int)), nil
}

// Value implements driver.Valuer so an Int can be passed straight to the
// database layer; invalid maps to SQL NULL.
func (n Int) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return int64(n.Int), nil
}

// Field renders the CSV form: empty string for null.
func (n Int) Field() string {
	if !n.Valid {
		return ""
	}
	return strconv.Itoa(n.Int)
}

// CoerceInt parses a loose numeric string. Empty or unparseable input yields
// the invalid state; float renderings are truncated toward zero.
func CoerceInt(s string) Int {
	s = strings.TrimSpace(s)
	if s == "" {
		return Int{}
	}
	if v, err := strconv.Atoi(s); err == nil {
		return NewInt(v)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return NewInt(int(f))
	}
	return Int{}
}

// String is an optional string. The zero value is invalid (null).
type String struct {
	String string
	Valid  bool
}

// NewString returns a valid String holding v.
func NewString(v string) String {
	return String{String: v, Valid: true}
}

// UnmarshalJSON accepts JSON strings and null; bare numbers are kept as their
// literal text since the API renders some string fields (jersey numbers)
// without quotes. It never returns an error.
func (s *String) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*s = String{}
		return nil
	}
	raw := string(data)
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		if unquoted, err := strconv.Unquote(raw); err == nil {
			raw = unquoted
		} else {
			raw = raw[1 : len(raw)-1]
		}
	}
	*s = CoerceString(raw)
	return nil
}

// MarshalJSON renders null when invalid.
func (s String) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(s.String)), nil
}

// Value implements driver.Valuer; invalid maps to SQL NULL.
func (s String) Value() (driver.Value, error) {
	if !s.Valid {
		return nil, nil
	}
	return s.String, nil
}

// Field renders the CSV form: empty string for null.
func (s String) Field() string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// CoerceString trims whitespace and treats the empty result as null.
func CoerceString(v string) String {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return String{}
	}
	return NewString(trimmed)
}

// Bool is an optional boolean. The zero value is invalid (null).
type Bool struct {
	Bool  bool
	Valid bool
}

// NewBool returns a valid Bool holding v.
func NewBool(v bool) Bool {
	return Bool{Bool: v, Valid: true}
}

// UnmarshalJSON accepts JSON booleans plus the loose forms "true"/"false",
// 1/0. Anything else yields the invalid state. It never returns an error.
func (b *Bool) UnmarshalJSON(data []byte) error {
	switch strings.ToLower(string(bytes.Trim(data, `"`))) {
	case "true", "1":
		*b = NewBool(true)
	case "false", "0":
		*b = NewBool(false)
	default:
		*b = Bool{}
	}
	return nil
}

// Or returns the held value, or fallback when invalid.
func (b Bool) Or(fallback bool) bool {
	if !b.Valid {
		return fallback
	}
	return b.Bool
}

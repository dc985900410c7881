// Package payload provides loose-typed accessors for decoded provider
// JSON. Provider payloads are duck-typed; these helpers coerce the
// common encodings (float64, int, numeric strings) and fall back to the
// zero value so callers can express fallback chains as ordered key
// lists without per-field error handling.
package payload

import (
	"strconv"
	"strings"
)

// String returns the first non-empty string value among keys.
func String(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := AsString(m[k]); s != "" {
			return s
		}
	}
	return ""
}

// Float returns the first non-zero numeric value among keys.
func Float(m map[string]any, keys ...string) float64 {
	for _, k := range keys {
		if f, ok := AsFloat(m[k]); ok && f != 0 {
			return f
		}
	}
	return 0
}

// Int returns the first non-zero numeric value among keys, truncated.
func Int(m map[string]any, keys ...string) int {
	return int(Float(m, keys...))
}

// Bool returns the first boolean value among keys, defaulting to false.
func Bool(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if b, ok := m[k].(bool); ok {
			return b
		}
	}
	return false
}

// Map returns the first nested mapping among keys, or nil.
func Map(m map[string]any, keys ...string) map[string]any {
	for _, k := range keys {
		if nested, ok := m[k].(map[string]any); ok {
			return nested
		}
	}
	return nil
}

// Slice returns the first sequence value among keys, or nil.
func Slice(m map[string]any, keys ...string) []any {
	for _, k := range keys {
		if s, ok := m[k].([]any); ok {
			return s
		}
	}
	return nil
}

// StringSlice returns the first sequence among keys with every element
// coerced to a string; non-string elements are skipped.
func StringSlice(m map[string]any, keys ...string) []string {
	raw := Slice(m, keys...)
	if raw == nil {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s := AsString(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// KeyEqual reports whether two payload keys name the same field,
// ignoring case and the -_/space separator differences between
// providers ("Check-in" == "check_in" == "checkin").
func KeyEqual(a, b string) bool {
	return foldKey(a) == foldKey(b)
}

func foldKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	return s
}

// ID returns the first identifier-like value among keys. Providers ship
// IDs as strings or numbers; numbers are rendered without a decimal part.
func ID(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			if v != 0 {
				return strconv.FormatFloat(v, 'f', -1, 64)
			}
		}
	}
	return ""
}

// AsString coerces a value to a trimmed string. Numbers are not
// stringified; a numeric field read as a string is a shape mismatch.
func AsString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// AsFloat coerces a value to float64. JSON decoding yields float64 for
// all numbers, but providers also ship numeric strings ("4.82").
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Package coerce converts loosely-typed decoded JSON values into typed primitives.
//
// Every reader takes a fallback and returns it on any type mismatch or parse
// failure. Nothing in this package panics or returns an error.
package coerce

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ReadString returns v as a string. Numbers and booleans are formatted.
func ReadString(v any, fallback string) string {
	if s, ok := toString(v); ok {
		return s
	}
	return fallback
}

// ReadInt returns v as an int. Fractional numbers are truncated.
func ReadInt(v any, fallback int) int {
	if f, ok := toFloat(v); ok && !math.IsInf(f, 0) {
		return int(f)
	}
	return fallback
}

// ReadDouble returns v as a float64.
func ReadDouble(v any, fallback float64) float64 {
	if f, ok := toFloat(v); ok {
		return f
	}
	return fallback
}

// ReadBool returns v as a bool. Accepts "true"/"false" in any case and
// numbers, where zero is false.
func ReadBool(v any, fallback bool) bool {
	if b, ok := toBool(v); ok {
		return b
	}
	return fallback
}

// StringValue returns v as a string and whether it was coercible.
func StringValue(v any) (string, bool) {
	return toString(v)
}

// AsMap returns v when it is a decoded JSON object, nil otherwise.
func AsMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}

// AsList returns v when it is a decoded JSON array, nil otherwise.
func AsList(v any) []any {
	if l, ok := v.([]any); ok {
		return l
	}
	return nil
}

// Has reports whether key is present in m with a non-null value.
func Has(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	v, ok := m[key]
	return ok && v != nil
}

// StringField returns the string at key and whether it was present and coercible.
func StringField(m map[string]any, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	return toString(m[key])
}

// DoubleField returns the number at key and whether it was present and coercible.
func DoubleField(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	return toFloat(m[key])
}

// IntField returns the integer at key and whether it was present and coercible.
func IntField(m map[string]any, key string) (int, bool) {
	f, ok := DoubleField(m, key)
	if !ok || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// BoolField returns the boolean at key and whether it was present and coercible.
func BoolField(m map[string]any, key string) (bool, bool) {
	if m == nil {
		return false, false
	}
	return toBool(m[key])
}

func toString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	case json.Number:
		return val.String(), true
	case bool:
		return strconv.FormatBool(val), true
	}
	return "", false
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case int:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func toBool(v any) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		return false, false
	}
	if f, ok := toFloat(v); ok {
		return f != 0, true
	}
	return false, false
}

package domain

import "reflect"

// Shape predicates operate on decoded JSON values (map[string]any, []any,
// string, float64, bool, nil) and are total: they never panic, whatever the
// candidate. Typed Go values are accepted too so that callers holding structs
// or slices get the same answers.

// IsObject reports whether v is a non-null composite value. Arrays count as
// objects, mirroring JSON's typeof semantics.
func IsObject(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case map[string]any, []any:
		return true
	case string, bool, float64, float32, int, int64:
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	case reflect.Array, reflect.Struct:
		return true
	default:
		return false
	}
}

// IsArray reports whether v is an array value.
func IsArray(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case []any:
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		return !rv.IsNil()
	case reflect.Array:
		return true
	default:
		return false
	}
}

// IsNonEmptyArray reports whether v is an array with at least one element.
func IsNonEmptyArray(v any) bool {
	if !IsArray(v) {
		return false
	}
	if s, ok := v.([]any); ok {
		return len(s) > 0
	}
	return reflect.ValueOf(v).Len() > 0
}

// HasFields reports whether v is an object carrying every key with a non-null
// value.
func HasFields(v any, keys ...string) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, k := range keys {
		if val, present := m[k]; !present || val == nil {
			return false
		}
	}
	return true
}

// IsStringField reports whether m[key] holds a string.
func IsStringField(m map[string]any, key string) bool {
	_, ok := m[key].(string)
	return ok
}

// IsNonEmptyStringField reports whether m[key] holds a non-empty string.
func IsNonEmptyStringField(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && s != ""
}

// IsBoolField reports whether m[key] holds a boolean.
func IsBoolField(m map[string]any, key string) bool {
	_, ok := m[key].(bool)
	return ok
}

// IsNumberField reports whether m[key] holds a number.
func IsNumberField(m map[string]any, key string) bool {
	switch m[key].(type) {
	case float64, float32, int, int64:
		return true
	default:
		return false
	}
}

// IsArrayField reports whether m[key] holds an array.
func IsArrayField(m map[string]any, key string) bool {
	return IsArray(m[key])
}

// StringField returns m[key] when it is a string, or def otherwise. Empty
// strings also fall back to def.
func StringField(m map[string]any, key, def string) string {
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return def
}

// NumberField returns m[key] as a float64 when it is a number.
func NumberField(m map[string]any, key string) (float64, bool) {
	switch n := m[key].(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// StringsField returns the string elements of the array at m[key], preserving
// order and skipping elements of any other type. A missing or non-array value
// yields an empty, non-nil slice.
func StringsField(m map[string]any, key string) []string {
	raw, _ := m[key].([]any)
	out := make([]string, 0, len(raw))
	for _, el := range raw {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

package domain

import "math"

// Document is a stored record in its caller-supplied shape. Collections are
// schemaless: request bodies are persisted verbatim and returned as read.
type Document map[string]any

// String returns the value at key when it holds a string.
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Truthy reports whether v would pass a JavaScript truthiness test. It is
// used where the public API only applies a field when its value is truthy,
// so 0, "", false and null are dropped.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	case int:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	default:
		return true
	}
}

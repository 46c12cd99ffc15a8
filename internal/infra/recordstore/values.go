package recordstore

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Text renders a field the way the store shows it in a formula: lists are joined with ", "
func Text(f Fields, name string) string {
	return textOf(f[name])
}

func textOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, textOf(e))
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(t, ", ")
	default:
		return fmt.Sprint(t)
	}
}

// First returns the first element of a list field, or the value itself for scalars
func First(f Fields, name string) string {
	switch t := f[name].(type) {
	case []any:
		if len(t) == 0 {
			return ""
		}
		return textOf(t[0])
	case []string:
		if len(t) == 0 {
			return ""
		}
		return t[0]
	default:
		return textOf(t)
	}
}

// Strings returns a list field's elements; a scalar becomes a one-element list
func Strings(f Fields, name string) []string {
	switch t := f[name].(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, textOf(e))
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		s := textOf(t)
		if s == "" {
			return nil
		}
		return []string{s}
	}
}

// Int reads a numeric field, returning 0 when absent or unparsable
func Int(f Fields, name string) int {
	switch t := f[name].(type) {
	case float64:
		return int(math.Round(t))
	case int:
		return t
	case int64:
		return int(t)
	case json.Number:
		if n, err := t.Float64(); err == nil {
			return int(math.Round(n))
		}
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return int(math.Round(n))
		}
	case []any:
		if len(t) > 0 {
			return Int(Fields{name: t[0]}, name)
		}
	}
	return 0
}

// Bool treats checkbox style values; a missing checkbox is false
func Bool(f Fields, name string) bool {
	switch t := f[name].(type) {
	case bool:
		return t
	case string:
		b, _ := strconv.ParseBool(t)
		return b
	case []any:
		if len(t) > 0 {
			return Bool(Fields{name: t[0]}, name)
		}
	}
	return false
}

// List converts ids to the []any shape the store returns for link fields
func List(ids []string) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}

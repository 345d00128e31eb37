package entity

import (
	"math"
	"strconv"

	errorvalues "github.com/limbo/engagement/internal/error_values"
)

// Metadata holds opaque scalar values attached to events and progress items.
// JSON encoding sorts keys, so stored records are stable.
type Metadata map[string]any

// Normalize converts every value to string, float64 or bool and fails on anything else.
func (m Metadata) Normalize() (Metadata, error) {
	if m == nil {
		return nil, nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		n, ok := normalizeScalar(v)
		if !ok || k == "" {
			return nil, errorvalues.ErrInvalidMetadata
		}
		out[k] = n
	}
	return out, nil
}

// Matches reports whether field equals the given value. An empty field
// matches everything. A string query also matches the textual form of a
// stored number or boolean, which is what query parameters carry.
func (m Metadata) Matches(field string, equals any) bool {
	if field == "" {
		return true
	}
	stored, ok := m[field]
	if !ok {
		return false
	}
	a, okA := normalizeScalar(stored)
	b, okB := normalizeScalar(equals)
	if !okA || !okB {
		return false
	}
	if a == b {
		return true
	}
	if s, isString := b.(string); isString {
		return scalarString(a) == s
	}
	return false
}

func normalizeScalar(v any) (any, bool) {
	switch t := v.(type) {
	case string, bool:
		return t, true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, false
		}
		return t, true
	case float32:
		return normalizeScalar(float64(t))
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	}
	return nil, false
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

// Package numeric defines the single coercion rule that turns loose input
// values into numbers.
//
// The rule is total: every input yields either a finite number or
// "not a number", never a panic or an error. Keeping the rule in one place
// makes it auditable and testable in isolation from the predicates that
// consume it.
package numeric

import (
	"math"
	"strconv"
	"strings"
)

// Coerce converts an arbitrary value into a float64.
//
// The rule, in full:
//   - Go numeric kinds pass through unchanged (non-finite floats are not numbers).
//   - bool becomes 1 (true) or 0 (false).
//   - strings are trimmed and parsed as decimal numbers; empty and
//     whitespace-only strings are not numbers.
//   - nil and every other type is not a number.
//
// The boolean result reports whether the input coerced to a finite number.
func Coerce(input any) (float64, bool) {
	switch v := input.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case float32:
		return Coerce(float64(v))
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return Coerce(f)
	default:
		return 0, false
	}
}

// IsInteger reports whether f is a finite mathematical integer.
func IsInteger(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f == math.Trunc(f)
}

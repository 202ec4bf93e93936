package validator

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

func oneOfRule(allowed []any) Rule {
	allowed = append([]any(nil), allowed...)

	parts := make([]string, len(allowed))
	for i, v := range allowed {
		parts[i] = formatValue(v)
	}
	message := fmt.Sprintf(MsgOneOf, strings.Join(parts, ", "))

	return newRule("one_of", message, func(value any) bool {
		for _, candidate := range allowed {
			if equalValues(value, candidate) {
				return true
			}
		}
		return false
	})
}

// equalValues compares numbers by value regardless of their Go kind so that
// a decoded json.Number or float64 matches an int literal in OneOf.
func equalValues(a, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

// toFloat reports the numeric value of v for any Go integer or float kind
// and for json.Number. Strings are never coerced.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// formatValue renders values the way they appear in failure messages:
// numbers in plain decimal notation, everything else via fmt.
func formatValue(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case json.Number:
		return n.String()
	case float64:
		return formatFloat(n)
	case float32:
		return formatFloat(float64(n))
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

package validator

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

var phoneRegex = regexp.MustCompile(`^\+?\d{10,12}$`)

// NumberValidator validates numeric values. Min and Max require a Go
// numeric kind or json.Number and never coerce strings.
type NumberValidator struct {
	base
}

func (v *NumberValidator) Required() *NumberValidator {
	v.markRequired()
	return v
}

func (v *NumberValidator) OneOf(values ...any) *NumberValidator {
	v.addOneOf(values)
	return v
}

func (v *NumberValidator) Custom(message string, check func(value any) bool) *NumberValidator {
	v.addCustom(message, check)
	return v
}

// Min requires value >= n.
func (v *NumberValidator) Min(n float64) *NumberValidator {
	v.add(numberRule("min", fmt.Sprintf(MsgNumberMin, formatFloat(n)), func(f float64) bool {
		return f >= n
	}))
	return v
}

// Max requires value <= n.
func (v *NumberValidator) Max(n float64) *NumberValidator {
	v.add(numberRule("max", fmt.Sprintf(MsgNumberMax, formatFloat(n)), func(f float64) bool {
		return f <= n
	}))
	return v
}

// Phone requires an optional leading '+' followed by 10 to 12 digits.
// Numbers are checked in their plain decimal form; strings as given.
func (v *NumberValidator) Phone() *NumberValidator {
	v.add(newRule("phone", MsgPhone, func(value any) bool {
		s, ok := phoneText(value)
		return ok && phoneRegex.MatchString(s)
	}))
	return v
}

func numberRule(name, message string, pass func(f float64) bool) Rule {
	return Rule{
		Name: name,
		Check: func(value any, field string) error {
			f, ok := toFloat(value)
			if !ok {
				return newValidationError(field, MsgNotNumber)
			}
			if !pass(f) {
				return newValidationError(field, message)
			}
			return nil
		},
	}
}

func phoneText(value any) (string, bool) {
	switch n := value.(type) {
	case string:
		return n, true
	case json.Number:
		return n.String(), true
	case int:
		return strconv.Itoa(n), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	}
	if f, ok := toFloat(value); ok {
		return formatFloat(f), true
	}
	return "", false
}

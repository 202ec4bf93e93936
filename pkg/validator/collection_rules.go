package validator

import (
	"fmt"
	"reflect"
)

// ArrayValidator validates slices and arrays of any element type.
type ArrayValidator struct {
	base
}

func (v *ArrayValidator) Required() *ArrayValidator {
	v.markRequired()
	return v
}

func (v *ArrayValidator) OneOf(values ...any) *ArrayValidator {
	v.addOneOf(values)
	return v
}

func (v *ArrayValidator) Custom(message string, check func(value any) bool) *ArrayValidator {
	v.addCustom(message, check)
	return v
}

// MinLength requires at least n elements.
func (v *ArrayValidator) MinLength(n int) *ArrayValidator {
	v.add(arrayRule("min_length", fmt.Sprintf(MsgArrayMin, n), func(rv reflect.Value) bool {
		return rv.Len() >= n
	}))
	return v
}

// MaxLength allows at most n elements.
func (v *ArrayValidator) MaxLength(n int) *ArrayValidator {
	v.add(arrayRule("max_length", fmt.Sprintf(MsgArrayMax, n), func(rv reflect.Value) bool {
		return rv.Len() <= n
	}))
	return v
}

// Items validates every element with item, reporting elements as
// "<field>[<index>]". The first failing element aborts the check.
func (v *ArrayValidator) Items(item FieldValidator) *ArrayValidator {
	if item == nil {
		panic("validator: items validator cannot be nil")
	}
	v.add(Rule{
		Name: "items",
		Check: func(value any, field string) error {
			rv, ok := arrayValue(value)
			if !ok {
				return newValidationError(field, MsgNotArray)
			}
			for i := range rv.Len() {
				name := fmt.Sprintf("%s[%d]", field, i)
				if err := item.Validate(rv.Index(i).Interface(), name); err != nil {
					return err
				}
			}
			return nil
		},
	})
	return v
}

func arrayRule(name, message string, pass func(rv reflect.Value) bool) Rule {
	return Rule{
		Name: name,
		Check: func(value any, field string) error {
			rv, ok := arrayValue(value)
			if !ok {
				return newValidationError(field, MsgNotArray)
			}
			if !pass(rv) {
				return newValidationError(field, message)
			}
			return nil
		},
	}
}

func arrayValue(value any) (reflect.Value, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	default:
		return reflect.Value{}, false
	}
}

package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// StringValidator validates text values.
type StringValidator struct {
	base
}

// Required rejects nil and empty strings.
func (v *StringValidator) Required() *StringValidator {
	v.markRequired()
	return v
}

// OneOf restricts the value to the given set.
func (v *StringValidator) OneOf(values ...any) *StringValidator {
	v.addOneOf(values)
	return v
}

// Custom appends a caller-defined check.
func (v *StringValidator) Custom(message string, check func(value any) bool) *StringValidator {
	v.addCustom(message, check)
	return v
}

// Email requires a local@domain.tld shaped address.
func (v *StringValidator) Email() *StringValidator {
	v.add(stringRule("email", MsgEmail, emailRegex.MatchString))
	return v
}

// Min requires at least n characters. Length is counted in Unicode code
// points, not UTF-16 units, so an emoji such as "😀" counts as one.
func (v *StringValidator) Min(n int) *StringValidator {
	v.add(stringRule("min", fmt.Sprintf(MsgStringMin, n), func(s string) bool {
		return utf8.RuneCountInString(s) >= n
	}))
	return v
}

// Max allows at most n characters, counted in Unicode code points like Min.
func (v *StringValidator) Max(n int) *StringValidator {
	v.add(stringRule("max", fmt.Sprintf(MsgStringMax, n), func(s string) bool {
		return utf8.RuneCountInString(s) <= n
	}))
	return v
}

// Reg requires the value to match pattern (RE2 syntax, unanchored).
// It panics if pattern does not compile.
func (v *StringValidator) Reg(pattern string) *StringValidator {
	re, err := regexp.Compile(pattern)
	if err != nil {
		panic(fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err))
	}
	v.add(stringRule("pattern", MsgPattern, re.MatchString))
	return v
}

// stringRule wraps a string predicate with a type guard.
func stringRule(name, message string, pass func(s string) bool) Rule {
	return Rule{
		Name: name,
		Check: func(value any, field string) error {
			s, ok := value.(string)
			if !ok {
				return newValidationError(field, MsgNotString)
			}
			if !pass(s) {
				return newValidationError(field, message)
			}
			return nil
		},
	}
}

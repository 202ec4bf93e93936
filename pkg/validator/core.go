package validator

import (
	"errors"
	"fmt"
)

// ValidationError describes the first check that rejected a value.
// Field holds the offending field name; array elements carry an index
// suffix such as "tags[2]".
type ValidationError struct {
	Field   string
	Message string
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is reports ErrValidationFailed as a match so callers can use errors.Is
// without unwrapping.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ExtractValidationError returns the ValidationError wrapped in err, if any.
func ExtractValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}

	return nil, false
}

func IsValidationError(err error) bool {
	_, ok := ExtractValidationError(err)
	return ok
}

// Rule is a single check bound to a validator. Check returns nil when the
// value passes, or a *ValidationError naming the field otherwise.
type Rule struct {
	Name  string
	Check func(value any, field string) error
}

// newRule builds a Rule from a predicate and its fixed failure message.
func newRule(name, message string, pass func(value any) bool) Rule {
	return Rule{
		Name: name,
		Check: func(value any, field string) error {
			if pass(value) {
				return nil
			}
			return newValidationError(field, message)
		},
	}
}

// FieldValidator validates a single field value.
type FieldValidator interface {
	Validate(value any, field string) error
	IsRequired() bool
}

// precheck is a variant-specific guard evaluated before the rule chain.
// It returns a failure message, or "" to continue.
type precheck func(value any) string

// base holds the rule chain shared by every validator kind.
// Rules are appended while the validator is being built and are read-only
// afterwards, so a finished validator is safe for concurrent use.
type base struct {
	rules    []Rule
	required bool
	pre      precheck
}

func (b *base) IsRequired() bool {
	return b.required
}

func (b *base) add(r Rule) {
	b.rules = append(b.rules, r)
}

func (b *base) markRequired() {
	b.required = true
	b.add(requiredRule())
}

func (b *base) addOneOf(values []any) {
	b.add(oneOfRule(values))
}

func (b *base) addCustom(message string, check func(value any) bool) {
	if check == nil {
		panic("validator: custom rule check cannot be nil")
	}
	b.add(newRule("custom", message, check))
}

// Validate runs the variant pre-check, then the rule chain in insertion
// order, and stops at the first failure. Unset values pass untouched unless
// the validator is required.
func (b *base) Validate(value any, field string) error {
	if value == nil && !b.required {
		return nil
	}

	if b.pre != nil {
		if msg := b.pre(value); msg != "" {
			return newValidationError(field, msg)
		}
	}

	for _, rule := range b.rules {
		if err := rule.Check(value, field); err != nil {
			return err
		}
	}

	return nil
}

func requiredRule() Rule {
	return newRule("required", MsgRequired, func(value any) bool {
		if value == nil {
			return false
		}
		if s, ok := value.(string); ok && s == "" {
			return false
		}
		return true
	})
}

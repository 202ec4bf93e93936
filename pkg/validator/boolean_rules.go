package validator

// BooleanValidator validates bool values. Any non-nil value that is not a
// bool fails with MsgNotBoolean before the rule chain runs.
type BooleanValidator struct {
	base
}

func (v *BooleanValidator) Required() *BooleanValidator {
	v.markRequired()
	return v
}

func (v *BooleanValidator) OneOf(values ...any) *BooleanValidator {
	v.addOneOf(values)
	return v
}

func (v *BooleanValidator) Custom(message string, check func(value any) bool) *BooleanValidator {
	v.addCustom(message, check)
	return v
}

func isBoolean(value any) string {
	if _, ok := value.(bool); ok {
		return ""
	}
	return MsgNotBoolean
}

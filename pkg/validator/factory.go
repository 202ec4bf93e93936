package validator

// String returns an empty, optional string validator.
func String() *StringValidator {
	return &StringValidator{}
}

// Number returns an empty, optional number validator.
func Number() *NumberValidator {
	return &NumberValidator{}
}

// Boolean returns an optional validator that only accepts bool values.
func Boolean() *BooleanValidator {
	return &BooleanValidator{base: base{pre: isBoolean}}
}

// Array returns an empty, optional array validator.
func Array() *ArrayValidator {
	return &ArrayValidator{}
}

// JSON returns an optional validator that only accepts parseable JSON text.
func JSON() *JSONValidator {
	return &JSONValidator{base: base{pre: isJSON}}
}

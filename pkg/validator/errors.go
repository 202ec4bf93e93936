package validator

import "errors"

var (
	// ErrValidationFailed matches every *ValidationError via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidPattern is raised (as a panic) when Reg receives a pattern that does not compile.
	ErrInvalidPattern = errors.New("invalid regular expression pattern")

	// ErrInvalidSchema is raised (as a panic) when a schema definition is malformed.
	ErrInvalidSchema = errors.New("invalid schema definition")

	// ErrInvalidRecord is returned when a JSON document cannot be decoded into a record.
	ErrInvalidRecord = errors.New("record must be a JSON object")
)

// Failure messages. These strings are part of the public contract and
// must not change.
const (
	MsgRequired        = "Value is required"
	MsgOneOf           = "Value must be one of: %s"
	MsgStringMin       = "Value must be at least %d characters long"
	MsgStringMax       = "Value must be no more than %d characters long"
	MsgEmail           = "Invalid email format"
	MsgPattern         = "String does not match the required pattern"
	MsgNotString       = "Value must be a string"
	MsgNumberMin       = "Value must be greater than or equal to %s"
	MsgNumberMax       = "Value must be less than or equal to %s"
	MsgNotNumber       = "Value must be a number"
	MsgPhone           = "Invalid phone number format"
	MsgNotBoolean      = "Value must be a boolean"
	MsgArrayMin        = "Array must contain at least %d items"
	MsgArrayMax        = "Array must contain no more than %d items"
	MsgNotArray        = "Value must be an array"
	MsgInvalidJSON     = "Invalid JSON format"
	MsgFieldRequired   = "Field is required"
	MsgUnexpectedField = "Unexpected field '%s' not defined in schema"
	MsgSuccess         = "Validation successful"
)

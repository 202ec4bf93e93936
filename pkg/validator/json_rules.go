package validator

import (
	stdjson "encoding/json"

	"github.com/goccy/go-json"
)

// JSONValidator validates JSON text. Values that do not parse fail with
// MsgInvalidJSON before the rule chain runs; rules see the raw text.
type JSONValidator struct {
	base
}

func (v *JSONValidator) Required() *JSONValidator {
	v.markRequired()
	return v
}

func (v *JSONValidator) OneOf(values ...any) *JSONValidator {
	v.addOneOf(values)
	return v
}

func (v *JSONValidator) Custom(message string, check func(value any) bool) *JSONValidator {
	v.addCustom(message, check)
	return v
}

func isJSON(value any) string {
	var data []byte
	switch t := value.(type) {
	case string:
		data = []byte(t)
	case []byte:
		data = t
	case stdjson.RawMessage:
		data = t
	default:
		return MsgInvalidJSON
	}
	if !json.Valid(data) {
		return MsgInvalidJSON
	}
	return ""
}

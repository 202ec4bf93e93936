package validator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func TestNumberValidator_Bounds(t *testing.T) {
	v := validator.Number().Min(0).Max(10)

	t.Run("rejects value below min", func(t *testing.T) {
		assertValidationError(t, v.Validate(-1, "age"), "age", "Value must be greater than or equal to 0")
	})

	t.Run("rejects value above max", func(t *testing.T) {
		assertValidationError(t, v.Validate(11, "age"), "age", "Value must be less than or equal to 10")
	})

	t.Run("accepts values in range", func(t *testing.T) {
		assert.NoError(t, v.Validate(5, "age"))
		assert.NoError(t, v.Validate(0, "age"))
		assert.NoError(t, v.Validate(10.0, "age"))
	})

	t.Run("accepts any numeric kind", func(t *testing.T) {
		assert.NoError(t, v.Validate(int8(3), "age"))
		assert.NoError(t, v.Validate(uint16(3), "age"))
		assert.NoError(t, v.Validate(float32(2.5), "age"))
		assert.NoError(t, v.Validate(json.Number("7"), "age"))
		assertValidationError(t, v.Validate(json.Number("12"), "age"), "age", "Value must be less than or equal to 10")
	})

	t.Run("formats fractional bounds without exponent", func(t *testing.T) {
		frac := validator.Number().Min(0.5)
		assertValidationError(t, frac.Validate(0.25, "ratio"), "ratio", "Value must be greater than or equal to 0.5")
	})
}

func TestNumberValidator_TypeGuard(t *testing.T) {
	v := validator.Number().Min(0)

	t.Run("rejects numeric strings without coercion", func(t *testing.T) {
		assertValidationError(t, v.Validate("5", "age"), "age", validator.MsgNotNumber)
	})

	t.Run("rejects booleans", func(t *testing.T) {
		assertValidationError(t, v.Validate(true, "age"), "age", validator.MsgNotNumber)
	})

	t.Run("no rules means no guard", func(t *testing.T) {
		assert.NoError(t, validator.Number().Validate("anything", "age"))
	})
}

func TestNumberValidator_Phone(t *testing.T) {
	v := validator.Number().Phone()

	valid := []any{"+12345678901", "1234567890", "+123456789012", int64(12345678901), 1234567890.0, json.Number("123456789012")}
	for _, phone := range valid {
		assert.NoError(t, v.Validate(phone, "phone"), "expected %v to pass", phone)
	}

	invalid := []any{"123", "+1234567890123", "12-3456-7890", "+", 123, true}
	for _, phone := range invalid {
		assertValidationError(t, v.Validate(phone, "phone"), "phone", validator.MsgPhone)
	}
}

package validator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func TestOneOf(t *testing.T) {
	t.Run("accepts listed string", func(t *testing.T) {
		v := validator.String().OneOf("admin", "editor")
		assert.NoError(t, v.Validate("editor", "role"))
	})

	t.Run("message joins values with comma and space", func(t *testing.T) {
		v := validator.String().OneOf("admin", "editor", "viewer")
		assertValidationError(t, v.Validate("root", "role"), "role", "Value must be one of: admin, editor, viewer")
	})

	t.Run("compares numbers across kinds", func(t *testing.T) {
		v := validator.Number().OneOf(1, 2, 3)
		assert.NoError(t, v.Validate(2.0, "level"))
		assert.NoError(t, v.Validate(json.Number("3"), "level"))
		assert.NoError(t, v.Validate(uint8(1), "level"))
		assertValidationError(t, v.Validate(4, "level"), "level", "Value must be one of: 1, 2, 3")
	})

	t.Run("formats float values plainly", func(t *testing.T) {
		v := validator.Number().OneOf(0.5, 1.5)
		assertValidationError(t, v.Validate(1, "ratio"), "ratio", "Value must be one of: 0.5, 1.5")
	})

	t.Run("does not match numeric strings to numbers", func(t *testing.T) {
		v := validator.String().OneOf(1)
		assertValidationError(t, v.Validate("1", "code"), "code", "Value must be one of: 1")
	})

	t.Run("copies the allowed values", func(t *testing.T) {
		allowed := []any{"a", "b"}
		v := validator.String().OneOf(allowed...)
		allowed[0] = "z"
		assert.NoError(t, v.Validate("a", "letter"))
	})

	t.Run("works on arrays by deep equality", func(t *testing.T) {
		v := validator.Array().OneOf([]any{"x"}, []any{"y"})
		assert.NoError(t, v.Validate([]any{"y"}, "pick"))
	})
}

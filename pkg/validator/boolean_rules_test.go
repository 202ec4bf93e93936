package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func TestBooleanValidator(t *testing.T) {
	t.Run("accepts true and false", func(t *testing.T) {
		v := validator.Boolean()
		assert.NoError(t, v.Validate(true, "active"))
		assert.NoError(t, v.Validate(false, "active"))
	})

	t.Run("rejects string booleans before any rule", func(t *testing.T) {
		ran := false
		v := validator.Boolean().Custom("custom", func(any) bool {
			ran = true
			return true
		})
		assertValidationError(t, v.Validate("true", "active"), "active", validator.MsgNotBoolean)
		assert.False(t, ran)
	})

	t.Run("type check wins over required", func(t *testing.T) {
		v := validator.Boolean().Required()
		assertValidationError(t, v.Validate("", "active"), "active", validator.MsgNotBoolean)
	})

	t.Run("runs chained rules after the type check", func(t *testing.T) {
		v := validator.Boolean().OneOf(true)
		assert.NoError(t, v.Validate(true, "terms"))
		assertValidationError(t, v.Validate(false, "terms"), "terms", "Value must be one of: true")
	})
}

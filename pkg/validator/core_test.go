package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when empty", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
		assert.True(t, errs.IsEmpty())
	})

	t.Run("joins field messages", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "username", Message: "too short"})
		errs.Add(validator.ValidationError{Field: "username", Message: "bad characters"})
		assert.Equal(t, "validation failed: username: too short; username: bad characters", errs.Error())
		assert.Equal(t, []string{"username"}, errs.Fields())
	})
}

func TestApply(t *testing.T) {
	pass := validator.Rule{Check: func() bool { return true }}
	fail := validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{Field: "name", Message: "Invalid name"},
	}

	assert.NoError(t, validator.Apply())
	assert.NoError(t, validator.Apply(pass, pass))

	err := validator.Apply(pass, fail, fail)
	verrs := validator.ExtractValidationErrors(err)
	assert.Len(t, verrs, 2)

	t.Run("nil check counts as failure", func(t *testing.T) {
		err := validator.Apply(validator.Rule{Error: validator.ValidationError{Field: "x"}})
		assert.True(t, validator.IsValidationError(err))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))
	assert.False(t, validator.IsValidationError(errors.New("plain")))

	inner := validator.Apply(validator.PersonalNamePattern("name", "-John"))
	wrapped := fmt.Errorf("register: %w", inner)
	verrs := validator.ExtractValidationErrors(wrapped)
	assert.Equal(t, []string{"Invalid name"}, verrs.Get("name"))
	assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
}

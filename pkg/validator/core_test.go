package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/loginform/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})

		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "password", Message: "too short"},
		{Field: "email", Message: "invalid"},
		{Field: "password", Message: "missing digit"},
	}

	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"too short", "missing digit"}, errs.Get("password"))
	assert.Equal(t, "too short", errs.First("password"))
	assert.Equal(t, "", errs.First("name"))
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
	assert.Equal(t, map[string]string{"password": "too short", "email": "invalid"}, errs.Map())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("email", "user@example.com"),
			validator.ValidEmail("email", "user@example.com"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failing rule", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("email", ""),
			validator.ValidEmail("email", ""),
			validator.MinLen("password", "123", 6),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"email", "password"}, verrs.Fields())
	})
}

func TestFirstFailure(t *testing.T) {
	t.Run("returns nil when every rule passes", func(t *testing.T) {
		assert.Nil(t, validator.FirstFailure(
			validator.Required("password", "secret1"),
			validator.MinLen("password", "secret1", 6),
		))
	})

	t.Run("stops at the first failing rule", func(t *testing.T) {
		verr := validator.FirstFailure(
			validator.Required("email", ""),
			validator.ValidEmail("email", ""),
		)
		require.NotNil(t, verr)
		assert.Equal(t, "validation.required", verr.TranslationKey)
	})

	t.Run("skips passing rules before the failure", func(t *testing.T) {
		verr := validator.FirstFailure(
			validator.Required("email", "abc"),
			validator.ValidEmail("email", "abc"),
		)
		require.NotNil(t, verr)
		assert.Equal(t, "validation.email", verr.TranslationKey)
	})
}

func TestIsValidationError(t *testing.T) {
	verrs := validator.ValidationErrors{{Field: "email", Message: "invalid"}}
	wrapped := fmt.Errorf("submit: %w", verrs)

	assert.True(t, validator.IsValidationError(wrapped))
	assert.Equal(t, verrs, validator.ExtractValidationErrors(wrapped))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
	assert.False(t, validator.IsValidationError(nil))
	assert.Nil(t, validator.ExtractValidationErrors(nil))
}

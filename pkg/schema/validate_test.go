package schema_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/loginform/pkg/schema"
	"github.com/dmitrymomot/loginform/pkg/validator"
)

var (
	emailField = schema.Email("email").
			Email("E-mail inválido").
			Required("Campo obrigatório").
			Build()

	passwordField = schema.Password("password").
			MinLength(6, "No mínimo 6 caracteres").
			Required("Campo obrigatório").
			Build()

	loginSchema = schema.MustNew("login", emailField, passwordField)
)

func TestValidateField_Email(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"", "Campo obrigatório"},
		{"abc", "E-mail inválido"},
		{"user@example", "E-mail inválido"},
		{"user@example.com", ""},
		{"first.last@mail.example.org", ""},
	}

	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			verr := schema.ValidateField(emailField, tc.value)
			if tc.want == "" {
				assert.Nil(t, verr)
				return
			}
			require.NotNil(t, verr)
			assert.Equal(t, "email", verr.Field)
			assert.Equal(t, tc.want, verr.Message)
		})
	}
}

func TestValidateField_Password(t *testing.T) {
	t.Run("succeeds iff length is at least six", func(t *testing.T) {
		for n := 1; n <= 10; n++ {
			value := strings.Repeat("x", n)
			verr := schema.ValidateField(passwordField, value)
			if n >= 6 {
				assert.Nil(t, verr, "length %d", n)
			} else {
				require.NotNil(t, verr, "length %d", n)
				assert.Equal(t, "No mínimo 6 caracteres", verr.Message)
			}
		}
	})

	t.Run("empty value reports required first", func(t *testing.T) {
		verr := schema.ValidateField(passwordField, "")
		require.NotNil(t, verr)
		assert.Equal(t, "Campo obrigatório", verr.Message)
	})

	t.Run("whitespace is not trimmed", func(t *testing.T) {
		assert.Nil(t, schema.ValidateField(passwordField, "      "))
		assert.NotNil(t, schema.ValidateField(passwordField, "  ab "))
	})
}

func TestValidateField_OrderAndDefaults(t *testing.T) {
	t.Run("first failing constraint wins", func(t *testing.T) {
		f := schema.String("code").
			MinLength(4, "first").
			Pattern(`^[A-Z]+$`, "uppercase", "second").
			Build()

		verr := schema.ValidateField(f, "ab")
		require.NotNil(t, verr)
		assert.Equal(t, "first", verr.Message)

		verr = schema.ValidateField(f, "abcd")
		require.NotNil(t, verr)
		assert.Equal(t, "second", verr.Message)

		assert.Nil(t, schema.ValidateField(f, "ABCD"))
	})

	t.Run("required runs first even when declared last", func(t *testing.T) {
		verr := schema.ValidateField(emailField, "")
		require.NotNil(t, verr)
		assert.Equal(t, "validation.required", verr.TranslationKey)
	})

	t.Run("empty message falls back to default", func(t *testing.T) {
		f := schema.Email("email").Email("").Required("").Build()

		verr := schema.ValidateField(f, "")
		require.NotNil(t, verr)
		assert.Equal(t, "field is required", verr.Message)

		verr = schema.ValidateField(f, "abc")
		require.NotNil(t, verr)
		assert.Equal(t, "must be a valid email address", verr.Message)
	})

	t.Run("optional empty field skips constraints", func(t *testing.T) {
		f := schema.Email("backup").Email("bad").Build()
		assert.Nil(t, schema.ValidateField(f, ""))
		assert.NotNil(t, schema.ValidateField(f, "abc"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		for _, v := range []string{"", "abc", "user@example.com"} {
			assert.Equal(t, schema.ValidateField(emailField, v), schema.ValidateField(emailField, v))
		}
	})
}

func TestValidateRecord(t *testing.T) {
	t.Run("returns only failing fields in declaration order", func(t *testing.T) {
		errs := schema.ValidateRecord(loginSchema, map[string]string{
			"password": "12345",
			"email":    "abc",
		})
		require.Len(t, errs, 2)
		assert.Equal(t, []string{"email", "password"}, errs.Fields())
		assert.Equal(t, "E-mail inválido", errs.First("email"))
		assert.Equal(t, "No mínimo 6 caracteres", errs.First("password"))
	})

	t.Run("treats missing keys as empty", func(t *testing.T) {
		errs := schema.ValidateRecord(loginSchema, map[string]string{"email": "user@example.com"})
		require.Len(t, errs, 1)
		assert.Equal(t, "Campo obrigatório", errs.First("password"))
	})

	t.Run("errors do not mask each other", func(t *testing.T) {
		errs := schema.ValidateRecord(loginSchema, nil)
		assert.Equal(t, map[string]string{
			"email":    "Campo obrigatório",
			"password": "Campo obrigatório",
		}, errs.Map())
	})

	t.Run("Validate returns nil for a valid record", func(t *testing.T) {
		err := loginSchema.Validate(map[string]string{
			"email":    "user@example.com",
			"password": "secret1",
		})
		assert.NoError(t, err)
	})

	t.Run("Validate returns ValidationErrors", func(t *testing.T) {
		err := loginSchema.Validate(map[string]string{"email": "abc"})
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})
}

func TestFormSchema_ValidateField(t *testing.T) {
	verr, ok := loginSchema.ValidateField("email", "abc")
	require.True(t, ok)
	require.NotNil(t, verr)
	assert.Equal(t, "E-mail inválido", verr.Message)

	_, ok = loginSchema.ValidateField("username", "abc")
	assert.False(t, ok)
}

func TestLocalize(t *testing.T) {
	catalog := map[string]string{
		"validation.required":   "obrigatório: %v",
		"validation.min_length": "mínimo %v",
	}
	fn := func(key string, values map[string]any) string {
		switch key {
		case "validation.required":
			return strings.Replace(catalog[key], "%v", values["field"].(string), 1)
		case "validation.min_length":
			return strings.Replace(catalog[key], "%v", "6", 1)
		}
		return key
	}

	base := schema.MustNew("login",
		schema.Email("email").Email("E-mail inválido").Required("").Build(),
		schema.Password("password").MinLength(6, "").Required("").Build(),
	)
	localized := schema.Localize(base, fn)

	verr := schema.ValidateField(mustField(t, localized, "email"), "")
	require.NotNil(t, verr)
	assert.Equal(t, "obrigatório: email", verr.Message)

	verr = schema.ValidateField(mustField(t, localized, "email"), "abc")
	require.NotNil(t, verr)
	assert.Equal(t, "E-mail inválido", verr.Message, "explicit messages are kept")

	verr = schema.ValidateField(mustField(t, localized, "password"), "123")
	require.NotNil(t, verr)
	assert.Equal(t, "mínimo 6", verr.Message)

	verr = schema.ValidateField(mustField(t, base, "password"), "123")
	require.NotNil(t, verr)
	assert.Equal(t, "must be at least 6 characters long", verr.Message, "source schema is untouched")
}

func mustField(t *testing.T, s *schema.FormSchema, name string) schema.FieldSchema {
	t.Helper()
	f, ok := s.Field(name)
	require.True(t, ok)
	return f
}

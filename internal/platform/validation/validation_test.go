package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lost-pets-catalog/internal/platform/apperr"
	"lost-pets-catalog/internal/platform/validation"
)

type signupForm struct {
	Name     string `form:"name" validate:"notblank,min=2" msg:"notblank=El nombre es requerido"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
	Confirm  string `form:"confirmPassword" validate:"required,eqfield=Password" msg:"eqfield=Las contraseñas no coinciden"`
	Phone    string `form:"phone" validate:"required,phone"`
}

func TestStruct_Valid(t *testing.T) {
	v := validation.New()
	err := v.Struct(signupForm{
		Name:     "Ana Pérez",
		Email:    "ana@example.com",
		Password: "secreto",
		Confirm:  "secreto",
		Phone:    "+54 (221) 555-1234",
	})
	assert.NoError(t, err)
}

func TestStruct_CollectsFieldErrors(t *testing.T) {
	v := validation.New()
	err := v.Struct(&signupForm{
		Name:     "   ",
		Email:    "not-an-email",
		Password: "123",
		Confirm:  "456",
		Phone:    "abc",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	fields := apperr.FieldMap(err)
	assert.Equal(t, "El nombre es requerido", fields["name"])
	assert.Equal(t, "El email no es válido", fields["email"])
	assert.Equal(t, "Debe tener al menos 6 caracteres", fields["password"])
	assert.Equal(t, "Las contraseñas no coinciden", fields["confirmPassword"])
	assert.Equal(t, "El teléfono no es válido", fields["phone"])
}

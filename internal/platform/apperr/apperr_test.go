package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesKindAndCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Network("", cause)

	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, MsgNetwork, UserMessage(err))
}

func TestSessionExpired_UserMessage(t *testing.T) {
	err := SessionExpired(nil)

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, MsgSessionExpired, UserMessage(err))
	assert.Equal(t, "session expired: "+MsgSessionExpired, err.Error())
}

func TestFieldMap_KeepsFirstMessagePerField(t *testing.T) {
	err := Validation(
		FieldError{Field: "email", Message: "El email es requerido"},
		FieldError{Field: "email", Message: "El email no es válido"},
		FieldError{Field: "password", Message: "La contraseña es requerida"},
	)

	m := FieldMap(err)
	require.Len(t, m, 2)
	assert.Equal(t, "El email es requerido", m["email"])
	assert.Equal(t, "La contraseña es requerida", m["password"])
}

func TestUserMessage_ForeignError(t *testing.T) {
	assert.Equal(t, MsgNetwork, UserMessage(errors.New("boom")))
	assert.Empty(t, UserMessage(nil))
	assert.Empty(t, FieldMap(errors.New("boom")))
}

package jwtclaims

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("irrelevant"))
	require.NoError(t, err)
	return tok
}

func TestDecode_NumericUserID(t *testing.T) {
	tok := sign(t, jwt.MapClaims{
		"user_id": 42,
		"name":    "Ana",
		"email":   "ana@example.com",
		"phone":   "+54 11 5555",
	})

	c, err := NewDecoder().Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, "42", c.UserID)
	assert.Equal(t, "Ana", c.Name)
	assert.Equal(t, "ana@example.com", c.Email)
	assert.Equal(t, "+54 11 5555", c.Phone)
}

func TestDecode_DefaultsName(t *testing.T) {
	tok := sign(t, jwt.MapClaims{"user_id": "u-1", "email": "x@y.z"})

	c, err := NewDecoder().Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", c.UserID)
	assert.Equal(t, DefaultName, c.Name)
	assert.Empty(t, c.Phone)
}

func TestDecode_Errors(t *testing.T) {
	d := NewDecoder()

	_, err := d.Decode("  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)

	_, err = d.Decode("opaque-token")
	assert.Error(t, err)

	_, err = d.Decode(sign(t, jwt.MapClaims{"email": "x@y.z"}))
	assert.ErrorIs(t, err, ErrMissingUserID)
}

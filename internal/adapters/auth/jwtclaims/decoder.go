package jwtclaims

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"lost-pets-catalog/internal/ports/auth"
)

var (
	ErrTokenEmpty    = errors.New("token is empty")
	ErrMissingUserID = errors.New("token missing user_id")
)

// DefaultName es el nombre que se muestra cuando el token no trae "name".
const DefaultName = "Usuario"

// Decoder implementa auth.TokenDecoder leyendo el payload del JWT sin validar firma.
// La firma la valida la API remota en cada llamada protegida.
type Decoder struct {
	parser *jwt.Parser
}

func NewDecoder() *Decoder {
	return &Decoder{parser: jwt.NewParser()}
}

var _ auth.TokenDecoder = (*Decoder)(nil)

func (d *Decoder) Decode(token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	mc := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(token, mc); err != nil {
		return auth.Claims{}, fmt.Errorf("decode token: %w", err)
	}

	uid := stringClaim(mc, "user_id")
	if uid == "" {
		return auth.Claims{}, ErrMissingUserID
	}

	name := stringClaim(mc, "name")
	if name == "" {
		name = DefaultName
	}

	return auth.Claims{
		UserID: uid,
		Email:  stringClaim(mc, "email"),
		Name:   name,
		Phone:  stringClaim(mc, "phone"),
	}, nil
}

// stringClaim acepta strings y números (user_id suele venir numérico).
func stringClaim(mc jwt.MapClaims, key string) string {
	switch v := mc[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

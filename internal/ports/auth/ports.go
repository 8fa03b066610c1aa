package auth

import "context"

// Authenticator habla con los endpoints públicos de la API (login y alta).
type Authenticator interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	Register(ctx context.Context, r Registration) (Registered, error)
}

// TokenDecoder extrae claims del token sin verificar la firma:
// la API es la única que valida tokens, acá solo se lee el perfil.
type TokenDecoder interface {
	Decode(token string) (Claims, error)
}

package auth

import "errors"

var (
	// ErrUnauthorized: la API remota respondió 401 (token vencido o inválido).
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUpstream: fallo de transporte o cualquier otro status no-2xx.
	ErrUpstream = errors.New("upstream error")
	// ErrRejected: login/registro rechazado por la API (credenciales, datos duplicados).
	ErrRejected = errors.New("credentials rejected")
)

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string
	Name   string
	Phone  string
}

// Account es el usuario que devuelve el alta.
type Account struct {
	ID       string
	Name     string
	LastName string
	Email    string
	Phone    string
}

// Registration es el alta tal como la completa el usuario (nombre completo en Name).
type Registration struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
}

type Registered struct {
	Token   string
	Account Account
}

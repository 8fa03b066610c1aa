// Package routegate decide, en cada navegación, si se renderiza la vista pedida
// o se redirige. No guarda estado: se recalcula con la sesión del momento.
package routegate

import "net/url"

type Requirement int

const (
	Open Requirement = iota
	RequireAuth
	RequirePublic
)

func (r Requirement) String() string {
	switch r {
	case RequireAuth:
		return "require_auth"
	case RequirePublic:
		return "require_public"
	default:
		return "open"
	}
}

type Outcome int

const (
	Render Outcome = iota
	RedirectLogin
	RedirectLanding
)

const (
	LoginPath   = "/login"
	LandingPath = "/"
)

// Decision es el resultado de Decide. ReturnTo solo se llena en RedirectLogin.
type Decision struct {
	Outcome  Outcome
	ReturnTo string
}

func Decide(isAuthenticated bool, req Requirement, target string) Decision {
	switch {
	case req == RequireAuth && !isAuthenticated:
		return Decision{Outcome: RedirectLogin, ReturnTo: target}
	case req == RequirePublic && isAuthenticated:
		return Decision{Outcome: RedirectLanding}
	default:
		return Decision{Outcome: Render}
	}
}

// Location es a dónde redirigir; vacío si hay que renderizar.
func (d Decision) Location() string {
	switch d.Outcome {
	case RedirectLogin:
		return LoginPath
	case RedirectLanding:
		return LandingPath
	default:
		return ""
	}
}

// LoginURL arma la URL de login; expired agrega el aviso de sesión vencida.
func LoginURL(expired bool) string {
	if !expired {
		return LoginPath
	}
	q := url.Values{}
	q.Set("expired", "1")
	return LoginPath + "?" + q.Encode()
}

package session

import (
	"context"
	"errors"
	"net/http"

	"lost-pets-catalog/internal/domain/routegate"
	"lost-pets-catalog/internal/platform/apperr"
	"lost-pets-catalog/internal/platform/view"
)

type ctxKey struct{}

func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext devuelve el Store del navegador. El middleware de sesión lo pone siempre.
func FromContext(ctx context.Context) (*Store, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Store)
	return s, ok && s != nil
}

// PageFor arma la base de una página con el estado de la sesión (nav).
func PageFor(r *http.Request, title string) view.Page {
	p := view.Page{Title: title}
	s, ok := FromContext(r.Context())
	if !ok {
		return p
	}
	p.Authenticated = s.IsAuthenticated()
	if u, ok := s.User(); ok {
		p.UserName = u.Name
	}
	return p
}

// RedirectIfExpired manda al login con el aviso de sesión vencida si err lo es.
// En un GET recuerda el destino para volver después del login.
func RedirectIfExpired(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, apperr.ErrSessionExpired) {
		return false
	}
	if r.Method == http.MethodGet {
		if o, ok := routegate.OriginFrom(r.Context()); ok {
			_ = o.Remember(r.Context(), r.URL.RequestURI())
		}
	}
	http.Redirect(w, r, routegate.LoginURL(true), http.StatusSeeOther)
	return true
}

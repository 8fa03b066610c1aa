package middleware

import (
	"net/http"
	"strings"

	"lost-pets-catalog/internal/domain/routegate"
	"lost-pets-catalog/internal/domain/session"
)

// Gate aplica routegate.Decide con la sesión del request.
// Al mandar al login recuerda el destino (solo en GET). Las rutas /api/ reciben 401.
func Gate(req routegate.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authenticated := false
			if s, ok := session.FromContext(r.Context()); ok {
				authenticated = s.IsAuthenticated()
			}

			d := routegate.Decide(authenticated, req, r.URL.RequestURI())
			switch d.Outcome {
			case routegate.Render:
				next.ServeHTTP(w, r)
				return
			case routegate.RedirectLogin:
				if strings.HasPrefix(r.URL.Path, "/api/") {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = w.Write([]byte(`{"error":"unauthorized"}` + "\n"))
					return
				}
				if r.Method == http.MethodGet {
					if o, ok := routegate.OriginFrom(r.Context()); ok {
						_ = o.Remember(r.Context(), d.ReturnTo)
					}
				}
			}
			http.Redirect(w, r, d.Location(), http.StatusSeeOther)
		})
	}
}

package session

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"lost-pets-catalog/internal/domain/routegate"
	"lost-pets-catalog/internal/platform/apperr"
	"lost-pets-catalog/internal/platform/logger"
	"lost-pets-catalog/internal/platform/view"
)

// Gate construye el middleware que aplica un Requirement a un grupo de rutas.
type Gate func(routegate.Requirement) func(http.Handler) http.Handler

// RegisterRoutes monta /login y /register (solo sin sesión) y /logout (abierta).
func RegisterRoutes(r chi.Router, v *view.Renderer, gate Gate, log logger.Logger) {
	r.Group(func(pr chi.Router) {
		pr.Use(gate(routegate.RequirePublic))

		pr.Get("/login", loginPageHandler(v))
		pr.Post("/login", loginHandler(v, log))
		pr.Get("/register", registerPageHandler(v))
		pr.Post("/register", registerHandler(v, log))
	})

	r.Group(func(or chi.Router) {
		or.Use(gate(routegate.Open))
		or.Post("/logout", logoutHandler())
		or.Get("/logout", logoutHandler())
	})
}

func loginPageHandler(v *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := PageFor(r, "Iniciar sesión")
		if r.URL.Query().Get("expired") == "1" {
			p.Error = apperr.MsgSessionExpired
		}
		v.Render(w, http.StatusOK, view.PageLogin, p)
	}
}

func loginHandler(v *view.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := FromContext(r.Context())
		if !ok {
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		form := LoginForm{Email: strings.TrimSpace(r.PostFormValue("email"))}
		if err := s.Login(r.Context(), form.Email, r.PostFormValue("password")); err != nil {
			p := PageFor(r, "Iniciar sesión")
			p.Error = apperr.UserMessage(err)
			p.Fields = apperr.FieldMap(err)
			p.Data = form
			status := http.StatusUnprocessableEntity
			if !errors.Is(err, apperr.ErrValidation) {
				status = http.StatusUnauthorized
				log.Info("login failed", map[string]any{"error": err})
			}
			v.Render(w, status, view.PageLogin, p)
			return
		}

		// el token ya está persistido: recién ahora se redirige
		http.Redirect(w, r, afterLogin(r), http.StatusSeeOther)
	}
}

func registerPageHandler(v *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v.Render(w, http.StatusOK, view.PageRegister, PageFor(r, "Crear cuenta"))
	}
}

func registerHandler(v *view.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := FromContext(r.Context())
		if !ok {
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		form := RegisterForm{
			Name:            r.PostFormValue("name"),
			Email:           r.PostFormValue("email"),
			Phone:           r.PostFormValue("phone"),
			Password:        r.PostFormValue("password"),
			ConfirmPassword: r.PostFormValue("confirmPassword"),
		}
		if err := s.Register(r.Context(), form); err != nil {
			p := PageFor(r, "Crear cuenta")
			p.Error = apperr.UserMessage(err)
			p.Fields = apperr.FieldMap(err)
			form.Password, form.ConfirmPassword = "", ""
			p.Data = form
			status := http.StatusUnprocessableEntity
			if !errors.Is(err, apperr.ErrValidation) {
				status = http.StatusBadRequest
				log.Info("register failed", map[string]any{"error": err})
			}
			v.Render(w, status, view.PageRegister, p)
			return
		}

		http.Redirect(w, r, afterLogin(r), http.StatusSeeOther)
	}
}

func logoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s, ok := FromContext(r.Context()); ok {
			s.Logout(r.Context())
		}
		http.Redirect(w, r, routegate.LoginPath, http.StatusSeeOther)
	}
}

// afterLogin consume el destino recordado (una sola vez) o va al inicio.
func afterLogin(r *http.Request) string {
	if o, ok := routegate.OriginFrom(r.Context()); ok {
		if to := o.Consume(r.Context()); to != "" {
			return to
		}
	}
	return routegate.LandingPath
}

package router

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "lost-pets-catalog/docs"
	"lost-pets-catalog/internal/domain/catalog"
	"lost-pets-catalog/internal/domain/pets"
	"lost-pets-catalog/internal/domain/session"
	"lost-pets-catalog/internal/middleware"
	"lost-pets-catalog/internal/platform/logger"
	"lost-pets-catalog/internal/platform/validation"
	"lost-pets-catalog/internal/platform/view"
	"lost-pets-catalog/internal/ports/auth"
	"lost-pets-catalog/internal/ports/kv"
)

var (
	ErrNoKV  = errors.New("router: session kv store required")
	ErrNoAPI = errors.New("router: remote api required")
)

type Options struct {
	AppName string
	Logger  logger.Logger

	// Backend remoto (normalmente el mismo lostpetsapi.Client para ambos).
	Auth    auth.Authenticator
	Pets    pets.API
	Decoder auth.TokenDecoder // puede ser nil: el usuario sale solo de /users/

	// Donde se persiste la sesión de cada navegador.
	KV kv.Store

	CookieName     string
	CookieHashKey  string
	CookieBlockKey string
	CookieSecure   bool
	SessionTTL     time.Duration

	PageSize int
}

func NewRouter(opts Options) (http.Handler, error) {
	if opts.KV == nil {
		return nil, ErrNoKV
	}
	if opts.Auth == nil || opts.Pets == nil {
		return nil, ErrNoAPI
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.AppName == "" {
		opts.AppName = "Mascotas Perdidas"
	}

	v, err := view.New(opts.AppName, opts.Logger)
	if err != nil {
		return nil, err
	}
	validate := validation.New()

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(opts.Logger))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Todo lo que renderiza páginas necesita la sesión del navegador.
	r.Group(func(app chi.Router) {
		app.Use(middleware.BrowserSession(middleware.SessionOptions{
			KV:         opts.KV,
			Auth:       opts.Auth,
			Decoder:    opts.Decoder,
			Validator:  validate,
			Logger:     opts.Logger,
			Cookie:     middleware.NewCookieCodec(opts.CookieHashKey, opts.CookieBlockKey),
			CookieName: opts.CookieName,
			Secure:     opts.CookieSecure,
			TTL:        opts.SessionTTL,
		}))

		petsSvc := pets.NewService(opts.Pets, validate)

		session.RegisterRoutes(app, v, middleware.Gate, opts.Logger)
		catalog.RegisterRoutes(app, catalog.Deps{
			Pets:     petsSvc,
			View:     v,
			Gate:     middleware.Gate,
			PageSize: opts.PageSize,
			Logger:   opts.Logger,
		})
		pets.RegisterRoutes(app, petsSvc, v, middleware.Gate, opts.Logger)

		app.NotFound(func(w http.ResponseWriter, r *http.Request) {
			v.Render(w, http.StatusNotFound, view.PageError, session.PageFor(r, "Página no encontrada"))
		})
	})

	return r, nil
}

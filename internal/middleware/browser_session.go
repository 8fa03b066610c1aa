package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"

	"lost-pets-catalog/internal/domain/routegate"
	"lost-pets-catalog/internal/domain/session"
	"lost-pets-catalog/internal/platform/logger"
	"lost-pets-catalog/internal/platform/validation"
	"lost-pets-catalog/internal/ports/auth"
	"lost-pets-catalog/internal/ports/kv"
)

const DefaultCookieName = "lostpets_session"

// SessionOptions arma la sesión de cada navegador.
// KV es el almacenamiento compartido; cada navegador usa su propio namespace.
type SessionOptions struct {
	KV        kv.Store
	Auth      auth.Authenticator
	Decoder   auth.TokenDecoder
	Validator *validation.Validator
	Logger    logger.Logger

	Cookie     *securecookie.SecureCookie
	CookieName string
	Secure     bool
	TTL        time.Duration
}

// NewCookieCodec firma (y cifra si hay blockKey) la cookie de sesión.
// Sin hashKey genera una clave al azar: las sesiones no sobreviven un reinicio.
func NewCookieCodec(hashKey, blockKey string) *securecookie.SecureCookie {
	hk := []byte(hashKey)
	if len(hk) == 0 {
		hk = securecookie.GenerateRandomKey(32)
	}
	var bk []byte
	if blockKey != "" {
		bk = []byte(blockKey)
	}
	return securecookie.New(hk, bk)
}

// BrowserSession identifica al navegador por una cookie firmada y deja en el
// context su session.Store (ya restaurado) y su routegate.Origin.
func BrowserSession(opts SessionOptions) func(http.Handler) http.Handler {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.CookieName == "" {
		opts.CookieName = DefaultCookieName
	}
	if opts.Cookie == nil {
		opts.Cookie = NewCookieCodec("", "")
	}
	if opts.Validator == nil {
		opts.Validator = validation.New()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := browserID(r, opts)
			if !ok {
				id = uuid.NewString()
				if err := setBrowserCookie(w, opts, id); err != nil {
					opts.Logger.Error("encode session cookie", map[string]any{"error": err})
					http.Error(w, "internal error", http.StatusInternalServerError)
					return
				}
			}

			ns := kv.Namespaced(opts.KV, "browser:"+id)
			store := session.NewStore(session.Deps{
				KV:        ns,
				Auth:      opts.Auth,
				Decoder:   opts.Decoder,
				Validator: opts.Validator,
				Logger:    opts.Logger,
			})
			if err := store.Restore(r.Context()); err != nil {
				// sin kv seguimos como invitado
				opts.Logger.Warn("restore session failed", map[string]any{"error": err})
			}

			ctx := session.NewContext(r.Context(), store)
			ctx = routegate.WithOrigin(ctx, routegate.NewOrigin(ns))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func browserID(r *http.Request, opts SessionOptions) (string, bool) {
	c, err := r.Cookie(opts.CookieName)
	if err != nil {
		return "", false
	}
	var id string
	if err := opts.Cookie.Decode(opts.CookieName, c.Value, &id); err != nil {
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func setBrowserCookie(w http.ResponseWriter, opts SessionOptions, id string) error {
	encoded, err := opts.Cookie.Encode(opts.CookieName, id)
	if err != nil {
		return err
	}
	c := &http.Cookie{
		Name:     opts.CookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if opts.TTL > 0 {
		c.MaxAge = int(opts.TTL.Seconds())
	}
	http.SetCookie(w, c)
	return nil
}

// Package session mantiene quién está logueado en un navegador.
//
// El Store es el único que escribe token y usuario. Toda llamada protegida pasa
// por Guard, que ante un 401 cierra la sesión antes de devolver el error.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"lost-pets-catalog/internal/platform/apperr"
	"lost-pets-catalog/internal/platform/logger"
	"lost-pets-catalog/internal/platform/metrics"
	"lost-pets-catalog/internal/platform/validation"
	"lost-pets-catalog/internal/ports/auth"
	"lost-pets-catalog/internal/ports/kv"
)

type Store struct {
	mu    sync.RWMutex
	token string
	user  *User

	kv       kv.Store
	authn    auth.Authenticator
	decoder  auth.TokenDecoder
	validate *validation.Validator
	log      logger.Logger
}

type Deps struct {
	KV        kv.Store
	Auth      auth.Authenticator
	Decoder   auth.TokenDecoder
	Validator *validation.Validator
	Logger    logger.Logger
}

// NewStore arranca vacío; Restore lo rehidrata desde el kv.
func NewStore(d Deps) *Store {
	s := &Store{
		kv:       d.KV,
		authn:    d.Auth,
		decoder:  d.Decoder,
		validate: d.Validator,
		log:      d.Logger,
	}
	if s.validate == nil {
		s.validate = validation.New()
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	return s
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User puede ser (User{}, false) aun autenticado, si el token no trae perfil.
func (s *Store) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *Store) UserID() string {
	u, _ := s.User()
	return u.ID
}

// Login valida el form, autentica y persiste el token antes de marcar la sesión.
// Si algo falla el estado anterior queda intacto.
func (s *Store) Login(ctx context.Context, email, password string) error {
	form := LoginForm{Email: strings.TrimSpace(email), Password: password}
	if err := s.validate.Struct(form); err != nil {
		return err
	}

	token, err := s.authn.Login(ctx, form.Email, form.Password)
	if err != nil {
		s.log.Info("login rejected", map[string]any{"error": err})
		return apperr.Auth(apperr.MsgLoginFailed, err)
	}

	user := s.userFromToken(token)
	if err := s.persist(ctx, token, user); err != nil {
		return err
	}

	s.set(token, user)
	metrics.SessionEvent("login")
	return nil
}

// Register da de alta al usuario y deja la sesión iniciada con el token emitido.
func (s *Store) Register(ctx context.Context, form RegisterForm) error {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)
	if err := s.validate.Struct(form); err != nil {
		return err
	}

	out, err := s.authn.Register(ctx, auth.Registration{
		Name:            form.Name,
		Email:           form.Email,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
		Phone:           form.Phone,
	})
	if err != nil {
		s.log.Info("register rejected", map[string]any{"error": err})
		return apperr.Auth(apperr.MsgRegisterFailed, err)
	}

	user := userFromAccount(out.Account)
	if user == nil {
		user = s.userFromToken(out.Token)
	}
	if err := s.persist(ctx, out.Token, user); err != nil {
		return err
	}

	s.set(out.Token, user)
	metrics.SessionEvent("register")
	return nil
}

// Logout limpia memoria y kv. No falla: los errores del kv solo se loguean.
func (s *Store) Logout(ctx context.Context) {
	s.clear(ctx)
	metrics.SessionEvent("logout")
}

// Guard corre una llamada protegida con el token actual.
// Sin token no llama. Un 401 cierra la sesión y se devuelve como sesión expirada.
func (s *Store) Guard(ctx context.Context, call func(ctx context.Context, token string) error) error {
	token := s.Token()
	if token == "" {
		return apperr.SessionExpired(ErrNoSession)
	}

	err := call(ctx, token)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, auth.ErrUnauthorized):
		s.clear(ctx)
		metrics.SessionEvent("expired")
		return apperr.SessionExpired(err)
	case apperr.As(err) != nil, errors.Is(err, context.Canceled):
		return err
	default:
		return apperr.Network("", err)
	}
}

// Restore rehidrata token y usuario desde el kv.
// Un usuario persistido sin token se descarta.
func (s *Store) Restore(ctx context.Context) error {
	token, ok, err := s.kv.Get(ctx, KeyToken)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	token = strings.TrimSpace(token)

	if !ok || token == "" {
		if _, hasUser, _ := s.kv.Get(ctx, KeyUser); hasUser {
			if err := s.kv.Remove(ctx, KeyUser); err != nil {
				s.log.Warn("failed to drop orphan user", map[string]any{"error": err})
			}
		}
		s.set("", nil)
		return nil
	}

	var user *User
	raw, ok, err := s.kv.Get(ctx, KeyUser)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if ok {
		var u User
		if err := json.Unmarshal([]byte(raw), &u); err == nil {
			user = &u
		}
	}
	if user == nil {
		user = s.userFromToken(token)
	}

	s.set(token, user)
	return nil
}

// set es el único lugar donde se escriben token y usuario.
// Sin token nunca queda usuario.
func (s *Store) set(token string, user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	if token == "" {
		s.user = nil
		return
	}
	s.user = user
}

func (s *Store) clear(ctx context.Context) {
	s.set("", nil)
	if err := s.kv.Remove(ctx, KeyToken, KeyUser); err != nil {
		s.log.Error("failed to remove persisted session", map[string]any{"error": err})
	}
}

func (s *Store) persist(ctx context.Context, token string, user *User) error {
	if err := s.kv.Set(ctx, KeyToken, token); err != nil {
		return apperr.Network("", fmt.Errorf("persist token: %w", err))
	}

	if user == nil {
		_ = s.kv.Remove(ctx, KeyUser)
		return nil
	}

	b, err := json.Marshal(user)
	if err == nil {
		err = s.kv.Set(ctx, KeyUser, string(b))
	}
	if err != nil {
		_ = s.kv.Remove(ctx, KeyToken)
		return apperr.Network("", fmt.Errorf("persist user: %w", err))
	}
	return nil
}

func (s *Store) userFromToken(token string) *User {
	if s.decoder == nil {
		return nil
	}
	c, err := s.decoder.Decode(token)
	if err != nil {
		s.log.Debug("token without decodable profile", map[string]any{"error": err})
		return nil
	}
	return &User{ID: c.UserID, Name: c.Name, Email: c.Email, Phone: c.Phone}
}

func userFromAccount(a auth.Account) *User {
	if strings.TrimSpace(a.ID) == "" {
		return nil
	}
	return &User{
		ID:    a.ID,
		Name:  strings.TrimSpace(a.Name + " " + a.LastName),
		Email: a.Email,
		Phone: a.Phone,
	}
}

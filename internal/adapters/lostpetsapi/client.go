package lostpetsapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"lost-pets-catalog/internal/domain/pets"
	"lost-pets-catalog/internal/platform/httpclient"
	"lost-pets-catalog/internal/platform/logger"
	"lost-pets-catalog/internal/platform/metrics"
	"lost-pets-catalog/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("lost pets api not configured")
	ErrUnauthorized  = auth.ErrUnauthorized
	ErrUpstream      = auth.ErrUpstream
)

const (
	defaultFetchSize     = 50
	defaultMaxFetchPages = 50
)

// Config del cliente. BaseURL incluye el prefijo de versión (p.ej. https://host/api/v1).
type Config struct {
	BaseURL string
	Timeout time.Duration

	// Tamaño de página y tope de páginas al juntar el listado completo.
	FetchSize     int
	MaxFetchPages int

	Logger logger.Logger
}

// Client implementa auth.Authenticator y pets.API sobre la API REST remota.
type Client struct {
	http          *httpclient.Client
	fetchSize     int
	maxFetchPages int
	log           logger.Logger
}

var (
	_ auth.Authenticator = (*Client)(nil)
	_ pets.API           = (*Client)(nil)
)

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}

	c := &Client{
		http:          hc,
		fetchSize:     cfg.FetchSize,
		maxFetchPages: cfg.MaxFetchPages,
		log:           cfg.Logger,
	}
	if c.fetchSize <= 0 {
		c.fetchSize = defaultFetchSize
	}
	if c.maxFetchPages <= 0 {
		c.maxFetchPages = defaultMaxFetchPages
	}
	if c.log == nil {
		c.log = logger.Nop()
	}
	return c, nil
}

// call ejecuta fn, registra la métrica de la operación y normaliza el error.
func (c *Client) call(op string, fn func() error) error {
	started := time.Now()
	err := mapError(fn())
	metrics.ObserveUpstream(op, outcome(err), started)
	return err
}

// mapError traduce errores HTTP a los sentinels de ports/auth.
// 401 => ErrUnauthorized; 404 => pets.ErrNotFound + ErrUpstream; resto => ErrUpstream.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		switch he.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: status=%d", ErrUnauthorized, he.StatusCode)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w: status=%d", pets.ErrNotFound, ErrUpstream, he.StatusCode)
		default:
			return fmt.Errorf("%w: status=%d", ErrUpstream, he.StatusCode)
		}
	}
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}

// mapAuthError: en login/alta un 4xx es un rechazo, no una sesión vencida.
func mapAuthError(err error) error {
	if err == nil {
		return nil
	}

	var he *httpclient.HTTPError
	if errors.As(err, &he) && he.StatusCode >= 400 && he.StatusCode < 500 {
		return fmt.Errorf("%w: status=%d", auth.ErrRejected, he.StatusCode)
	}
	return mapError(err)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, auth.ErrRejected):
		return "rejected"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "upstream_error"
	}
}

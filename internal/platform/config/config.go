package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	// text|json
	LogFormat string `env:"LOG_FORMAT, default=json"`
	AppName   string `env:"APP_NAME,   default=lost-pets-catalog"`

	API     APIConfig
	Catalog CatalogConfig
	Session SessionConfig
}

// APIConfig apunta al backend remoto de mascotas perdidas.
type APIConfig struct {
	BaseURL string        `env:"API_BASE_URL, required"`
	Timeout time.Duration `env:"API_TIMEOUT,  default=10s"`
}

type CatalogConfig struct {
	PageSize int `env:"PAGE_SIZE, default=9"`
	// Tope de páginas que se recorren al juntar el listado completo.
	MaxFetchPages int `env:"MAX_FETCH_PAGES, default=50"`
}

type SessionConfig struct {
	// memory|redis|postgres
	Backend string        `env:"SESSION_BACKEND, default=memory"`
	TTL     time.Duration `env:"SESSION_TTL,     default=720h"`

	RedisURL string `env:"REDIS_URL"`
	DSN      string `env:"DB_DSN"`

	CookieName     string `env:"COOKIE_NAME,      default=lostpets_session"`
	CookieHashKey  string `env:"COOKIE_HASH_KEY"`
	CookieBlockKey string `env:"COOKIE_BLOCK_KEY"`
	CookieSecure   bool   `env:"COOKIE_SECURE,    default=false"`
}

// Load lee la configuración desde variables de entorno (y .env si existe).
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.Backend {
	case "memory":
	case "redis":
		if strings.TrimSpace(c.Session.RedisURL) == "" {
			return fmt.Errorf("config: SESSION_BACKEND=redis requires REDIS_URL")
		}
	case "postgres":
		if strings.TrimSpace(c.Session.DSN) == "" {
			return fmt.Errorf("config: SESSION_BACKEND=postgres requires DB_DSN")
		}
	default:
		return fmt.Errorf("config: unknown SESSION_BACKEND %q", c.Session.Backend)
	}
	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("config: PAGE_SIZE must be positive")
	}
	if !c.IsDevelopment() && c.Session.CookieHashKey == "" {
		return fmt.Errorf("config: COOKIE_HASH_KEY is required outside development")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"API_BASE_URL": "http://localhost:8000/api/v1",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 9, cfg.Catalog.PageSize)
	assert.Equal(t, "memory", cfg.Session.Backend)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "lostpets_session", cfg.Session.CookieName)
}

func TestLoad_RequiresBaseURL(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.Error(t, err)
}

func TestLoad_BackendRequirements(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"API_BASE_URL":    "http://api",
		"SESSION_BACKEND": "redis",
	}))
	require.ErrorContains(t, err, "REDIS_URL")

	_, err = load(context.Background(), envconfig.MapLookuper(map[string]string{
		"API_BASE_URL":    "http://api",
		"SESSION_BACKEND": "postgres",
	}))
	require.ErrorContains(t, err, "DB_DSN")

	_, err = load(context.Background(), envconfig.MapLookuper(map[string]string{
		"API_BASE_URL":    "http://api",
		"SESSION_BACKEND": "sqlite",
	}))
	require.ErrorContains(t, err, "unknown SESSION_BACKEND")
}

func TestLoad_ProductionNeedsCookieKey(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"API_BASE_URL": "http://api",
		"ENV":          "production",
	}))
	require.ErrorContains(t, err, "COOKIE_HASH_KEY")
}

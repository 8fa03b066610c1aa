package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lost-pets-catalog/internal/adapters/auth/jwtclaims"
	"lost-pets-catalog/internal/adapters/lostpetsapi"
	"lost-pets-catalog/internal/adapters/storage/memory"
	pg "lost-pets-catalog/internal/adapters/storage/postgres"
	rd "lost-pets-catalog/internal/adapters/storage/redis"
	"lost-pets-catalog/internal/platform/config"
	"lost-pets-catalog/internal/platform/logger"
	"lost-pets-catalog/internal/ports/kv"
	"lost-pets-catalog/internal/router"
)

const sweepEvery = time.Hour

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", map[string]any{"error": err})
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	store, closeStore, err := openSessionStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	api, err := lostpetsapi.NewClient(lostpetsapi.Config{
		BaseURL:       cfg.API.BaseURL,
		Timeout:       cfg.API.Timeout,
		MaxFetchPages: cfg.Catalog.MaxFetchPages,
		Logger:        log,
	})
	if err != nil {
		return err
	}

	h, err := router.NewRouter(router.Options{
		AppName:        "Mascotas Perdidas",
		Logger:         log,
		Auth:           api,
		Pets:           api,
		Decoder:        jwtclaims.NewDecoder(),
		KV:             store,
		CookieName:     cfg.Session.CookieName,
		CookieHashKey:  cfg.Session.CookieHashKey,
		CookieBlockKey: cfg.Session.CookieBlockKey,
		CookieSecure:   cfg.Session.CookieSecure,
		SessionTTL:     cfg.Session.TTL,
		PageSize:       cfg.Catalog.PageSize,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.API.Timeout + 10*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":            srv.Addr,
			"env":             cfg.Env,
			"session_backend": cfg.Session.Backend,
			"api":             cfg.API.BaseURL,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openSessionStore elige el backend de sesiones según SESSION_BACKEND.
func openSessionStore(ctx context.Context, cfg *config.Config, log logger.Logger) (kv.Store, func(), error) {
	switch cfg.Session.Backend {
	case "redis":
		client, err := rd.Connect(ctx, cfg.Session.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return rd.NewKV(client, cfg.Session.TTL), func() { _ = client.Close() }, nil

	case "postgres":
		db, err := pg.Open(ctx, cfg.Session.DSN)
		if err != nil {
			return nil, nil, err
		}
		store := pg.NewKV(db, cfg.Session.TTL)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		go sweep(ctx, store, log)
		return store, func() { _ = db.Close() }, nil

	default:
		if !cfg.IsDevelopment() {
			log.Warn("in-memory sessions are lost on restart", nil)
		}
		return memory.NewKV(), func() {}, nil
	}
}

// sweep borra periódicamente las sesiones vencidas de Postgres.
func sweep(ctx context.Context, store *pg.KV, log logger.Logger) {
	t := time.NewTicker(sweepEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := store.Sweep(ctx)
			if err != nil {
				log.Warn("session sweep failed", map[string]any{"error": err})
				continue
			}
			log.Debug("session sweep", map[string]any{"removed": n})
		}
	}
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"lost-pets-catalog/internal/ports/kv"
)

var ErrEmptyKey = errors.New("key required")

const schema = `
CREATE TABLE IF NOT EXISTS session_kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL
)`

// KV persiste las claves de sesión en la tabla session_kv.
// Las filas vencidas se ignoran en Get y se borran con Sweep.
type KV struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

func NewKV(db *sql.DB, ttl time.Duration) *KV {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &KV{db: db, ttl: ttl, now: time.Now}
}

var _ kv.Store = (*KV)(nil)

// EnsureSchema crea la tabla si no existe. Se llama al arrancar.
func (s *KV) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create session_kv: %w", err)
	}
	return nil
}

func (s *KV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value
		FROM session_kv
		WHERE key = $1 AND expires_at > $2
	`, key, s.now().UTC()).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *KV) Set(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session_kv (key, value, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
			expires_at = EXCLUDED.expires_at
	`, key, value, s.now().UTC().Add(s.ttl))
	return err
}

func (s *KV) Remove(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM session_kv WHERE key = $1`, k); err != nil {
			return err
		}
	}
	return nil
}

// Sweep borra las filas vencidas y devuelve cuántas eran.
func (s *KV) Sweep(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM session_kv WHERE expires_at <= $1`, s.now().UTC())
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

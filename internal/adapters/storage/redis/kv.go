package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"lost-pets-catalog/internal/ports/kv"
)

const (
	pingTimeout = 3 * time.Second
	keyPrefix   = "lostpets:session:"
)

var ErrEmptyKey = errors.New("key required")

// Connect parsea REDIS_URL y valida con un ping.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// KV guarda cada clave con SET + TTL; el TTL se renueva en cada Set.
type KV struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewKV(client redis.Cmdable, ttl time.Duration) *KV {
	return &KV{client: client, ttl: ttl}
}

var _ kv.Store = (*KV)(nil)

func key(k string) string {
	return keyPrefix + k
}

func (s *KV) Get(ctx context.Context, k string) (string, bool, error) {
	v, err := s.client.Get(ctx, key(k)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return v, true, nil
}

func (s *KV) Set(ctx context.Context, k, value string) error {
	if strings.TrimSpace(k) == "" {
		return ErrEmptyKey
	}
	if err := s.client.Set(ctx, key(k), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *KV) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, 0, len(keys))
	for _, k := range keys {
		full = append(full, key(k))
	}
	if err := s.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

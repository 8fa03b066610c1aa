package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "not-a-url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid url")
}

func TestKey(t *testing.T) {
	assert.Equal(t, "lostpets:session:abc:authToken", key("abc:authToken"))
}

// Requiere un redis real: TEST_REDIS_URL=redis://localhost:6379/15
func TestKV_Roundtrip(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	ctx := context.Background()
	client, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	s := NewKV(client, time.Minute)
	k := "test:" + t.Name()

	require.NoError(t, s.Set(ctx, k, "v"))
	v, ok, err := s.Get(ctx, k)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	ttl, err := client.TTL(ctx, key(k)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, s.Remove(ctx, k))
	_, ok, err = s.Get(ctx, k)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, s.Set(ctx, "", "x"), ErrEmptyKey)
}

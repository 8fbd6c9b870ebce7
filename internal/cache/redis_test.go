package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Nécessite un Redis réel : REDIS_TEST_ADDR=localhost:6379
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR non défini")
	}
	ctx := context.Background()

	s, err := NewRedisStore(ctx, addr, os.Getenv("REDIS_TEST_PASSWORD"))
	require.NoError(t, err)
	defer s.Close()

	key := "test:" + uuid.NewString()
	defer s.Del(ctx, key, key+":n")

	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, s.Set(ctx, key, "v", time.Minute))
	v, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	n, err := s.Incr(ctx, key+":n", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = s.Incr(ctx, key+":n", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestNewRedisStoreRequiresAddr(t *testing.T) {
	_, err := NewRedisStore(context.Background(), "", "")
	assert.Error(t, err)
}

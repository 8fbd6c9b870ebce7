package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*MemoryStore, *time.Time) {
	s := NewMemoryStore(16, time.Hour)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	s, now := newTestStore()

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, s.Set(ctx, "k", "v", time.Minute))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	*now = now.Add(2 * time.Minute)
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStoreDel(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	require.NoError(t, s.Set(ctx, "a", "1", time.Minute))
	require.NoError(t, s.Set(ctx, "b", "2", time.Minute))
	require.NoError(t, s.Del(ctx, "a", "b", "missing"))

	_, err := s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrMiss)
	_, err = s.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStoreIncrWindow(t *testing.T) {
	ctx := context.Background()
	s, now := newTestStore()

	for want := int64(1); want <= 3; want++ {
		n, err := s.Incr(ctx, "hits", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}

	*now = now.Add(61 * time.Second)
	n, err := s.Incr(ctx, "hits", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryStoreIncrOnNonNumeric(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	require.NoError(t, s.Set(ctx, "k", "abc", time.Minute))
	_, err := s.Incr(ctx, "k", time.Minute)
	assert.Error(t, err)
}

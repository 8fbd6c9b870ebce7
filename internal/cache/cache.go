package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss est renvoyée quand la clé n'existe pas (ou a expiré)
var ErrMiss = errors.New("cache: clé absente")

// Store est le stockage clé/valeur utilisé pour le cache catalogue et les compteurs de rate limit.
// RedisStore en production, MemoryStore quand REDIS_HOST n'est pas configuré.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	// Incr incrémente un compteur qui expire après window
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	Close() error
}

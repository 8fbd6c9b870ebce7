package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type memEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore est un cache LRU local au processus ; chaque entrée garde sa propre échéance
type MemoryStore struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, memEntry]
	now func() time.Time
}

// NewMemoryStore : size entrées max, maxTTL borne la durée de vie de toute entrée
func NewMemoryStore(size int, maxTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		lru: expirable.NewLRU[string, memEntry](size, nil, maxTTL),
		now: time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return "", ErrMiss
	}
	return e.value, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lru.Add(key, memEntry{value: value, expiresAt: s.now().Add(ttl)})
	return nil
}

func (s *MemoryStore) Del(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		s.lru.Remove(k)
	}
	return nil
}

func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		e = memEntry{value: "0", expiresAt: s.now().Add(window)}
	}
	n, err := strconv.ParseInt(e.value, 10, 64)
	if err != nil {
		return 0, err
	}
	n++
	e.value = strconv.FormatInt(n, 10)
	s.lru.Add(key, e)
	return n, nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lru.Purge()
	return nil
}

// lookup doit être appelé sous s.mu
func (s *MemoryStore) lookup(key string) (memEntry, bool) {
	e, ok := s.lru.Get(key)
	if !ok {
		return memEntry{}, false
	}
	if !s.now().Before(e.expiresAt) {
		s.lru.Remove(key)
		return memEntry{}, false
	}
	return e, true
}

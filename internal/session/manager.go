package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"silva_storefront/internal/auth"
	"silva_storefront/internal/cart"
	"silva_storefront/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager garde les sessions en mémoire ; rien n'est persisté entre deux démarrages
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	log      *zap.Logger
}

func NewManager(ttl time.Duration, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		log:      logger,
	}
}

// Create ouvre une session après un login/register réussi, avec un panier vide
func (m *Manager) Create(token string, user models.User, info auth.TokenInfo) (*Session, error) {
	role, err := auth.ParseRole(user.Role)
	if err != nil {
		return nil, fmt.Errorf("ouverture session: %w", err)
	}

	s := &Session{
		ID:        uuid.NewString(),
		token:     token,
		tokenInfo: info,
		user:      user,
		role:      role,
		cart:      cart.New(),
		lastSeen:  m.now(),
		subs:      make(map[int]chan cart.Snapshot),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.log.Info("✅ Session ouverte", zap.String("session_id", s.ID), zap.String("role", role.String()))
	return s, nil
}

// Get renvoie la session active ; une session expirée est détruite
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}

	now := m.now()
	if s.expired(now, m.ttl) {
		m.Destroy(id)
		return nil, false
	}
	s.touch(now)
	return s, true
}

// Destroy ferme la session (logout) ; sans effet si elle n'existe pas
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		s.close()
		m.log.Info("👋 Session fermée", zap.String("session_id", id))
	}
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep détruit les sessions inactives ou dont le token a expiré
func (m *Manager) Sweep() int {
	now := m.now()

	m.mu.RLock()
	var stale []string
	for id, s := range m.sessions {
		if s.expired(now, m.ttl) {
			stale = append(stale, id)
		}
	}
	m.mu.RUnlock()

	for _, id := range stale {
		m.Destroy(id)
	}
	return len(stale)
}

// Run balaie les sessions toutes les interval jusqu'à l'annulation de ctx
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.log.Info("🧹 Sessions expirées supprimées", zap.Int("count", n))
			}
		}
	}
}

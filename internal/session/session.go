package session

import (
	"sync"
	"time"

	"silva_storefront/internal/auth"
	"silva_storefront/internal/cart"
	"silva_storefront/internal/models"
)

// Session est le contexte explicite d'un utilisateur connecté : token, utilisateur, rôle et panier.
// Créée par Manager.Create au login, détruite par Manager.Destroy au logout.
// Toutes les méthodes sont sûres en concurrence.
type Session struct {
	ID string

	mu        sync.Mutex
	token     string
	tokenInfo auth.TokenInfo
	user      models.User
	role      auth.Role
	cart      *cart.Cart
	lastSeen  time.Time
	closed    bool

	checkoutInFlight bool

	subs    map[int]chan cart.Snapshot
	nextSub int
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) User() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Session) Role() auth.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

// SetUser remplace l'utilisateur après un rafraîchissement via /api/auth/me.
// Le rôle n'est modifié que s'il est reconnu.
func (s *Session) SetUser(u models.User) error {
	role, err := auth.ParseRole(u.Role)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.role = role
	return nil
}

// WithCart exécute fn sous le verrou de la session.
// Si fn réussit, un instantané du panier est publié aux abonnés.
func (s *Session) WithCart(fn func(c *cart.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.cart); err != nil {
		return err
	}
	s.publishLocked(s.cart.Snapshot())
	return nil
}

// ReadCart exécute fn sous le verrou sans rien publier ; fn ne doit pas modifier le panier
func (s *Session) ReadCart(fn func(c *cart.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.cart)
}

func (s *Session) CartSnapshot() cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot()
}

// BeginCheckout réserve la soumission de commande ; false si une soumission est déjà en cours
func (s *Session) BeginCheckout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkoutInFlight {
		return false
	}
	s.checkoutInFlight = true
	return true
}

func (s *Session) EndCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkoutInFlight = false
}

// Subscribe renvoie un canal recevant un instantané après chaque modification du panier.
// Les instantanés sont perdus si l'abonné ne suit pas ; le canal est fermé au logout.
func (s *Session) Subscribe() (<-chan cart.Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan cart.Snapshot, 8)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
}

func (s *Session) publishLocked(snap cart.Snapshot) {
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tokenInfo.Expired(now) {
		return true
	}
	return ttl > 0 && now.Sub(s.lastSeen) > ttl
}

// close vide le panier et ferme les abonnements
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cart.Clear()
	s.token = ""
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

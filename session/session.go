// Package session owns the in-memory session registry. Each session holds
// exactly one cart for its lifetime; when the session expires the cart goes
// with it.
package session

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harborlane/storefront-api/cart"
)

type Session struct {
	ID        string
	Cart      *cart.Cart
	ExpiresAt time.Time

	mu sync.Mutex
}

func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Do runs fn with exclusive access to the session's cart. Cart operations
// must not interleave within a session, so every handler mutation or read
// goes through here.
func (s *Session) Do(fn func(c *cart.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.Cart)
}

// Manager tracks live sessions. The catalog is shared read-only state across
// all of them; carts are never shared between sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create registers a new session with an empty cart.
func (m *Manager) Create() *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Cart:      cart.New(),
		ExpiresAt: time.Now().Add(m.ttl),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the live session for id. Expired sessions are dropped on
// access and reported as absent.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.Expired() {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, false
	}
	return s, true
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// StartSweeping removes expired sessions every interval. Run as a goroutine
// from main.
func (m *Manager) StartSweeping(interval time.Duration) {
	for {
		time.Sleep(interval)
		if n := m.sweep(); n > 0 {
			log.Printf("🗑️ Removed %d expired sessions", n)
		}
	}
}

func (m *Manager) sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		if s.Expired() {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

package memory

import (
	"sync"
	"time"

	"github.com/compentube/compentube-server/internal/domain"
)

type entry struct {
	session   *domain.Session
	expiresAt time.Time
}

// SessionStore is the in-memory session backend: a mutex-guarded map with a
// fixed TTL per entry. Expired entries are reaped lazily on read.
type SessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[domain.SessionID]entry
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[domain.SessionID]entry),
		now:      time.Now,
	}
}

func (s *SessionStore) Get(id domain.SessionID) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if s.now().After(e.expiresAt) {
		delete(s.sessions, id)
		return nil, domain.ErrSessionNotFound
	}
	return e.session, nil
}

// Set upserts the session and refreshes its expiry.
func (s *SessionStore) Set(id domain.SessionID, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = entry{
		session:   session,
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

func (s *SessionStore) Delete(id domain.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

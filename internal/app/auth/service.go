package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/compentube/compentube-server/internal/domain"
	"github.com/compentube/compentube-server/internal/observability"
)

// Service owns the session lifecycle: login completes the identity exchange
// and writes credentials + profile into the store atomically; logout destroys
// the entry. Everything in between is a pure store lookup.
type Service struct {
	exchanger domain.IdentityExchanger
	store     domain.SessionStore
	now       func() time.Time
}

func NewService(exchanger domain.IdentityExchanger, store domain.SessionStore) *Service {
	return &Service{
		exchanger: exchanger,
		store:     store,
		now:       time.Now,
	}
}

// CompleteLogin runs the code exchange and, only on full success, mutates and
// persists the session. The caller must not respond to the client until this
// returns: persistence failure is a login failure.
func (s *Service) CompleteLogin(ctx context.Context, sessionID domain.SessionID, code string) (*domain.Session, error) {
	log := observability.LoggerFromContext(ctx).With("session_id", sessionID)

	creds, profile, err := s.exchanger.CompleteLogin(ctx, code)
	if err != nil {
		log.Error("identity exchange failed", "error", err)
		return nil, err
	}

	session, err := s.store.Get(sessionID)
	if err != nil {
		// New or expired session id: start fresh.
		session = &domain.Session{
			ID:        sessionID,
			CreatedAt: s.now(),
		}
	}

	// Credentials and profile are replaced wholesale, together.
	session.Credentials = creds
	session.Profile = profile

	if err := s.store.Set(session.ID, session); err != nil {
		log.Error("failed to persist session", "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrSessionPersistence, err)
	}

	log.Info("user authenticated", "email", profile.Email)
	return session, nil
}

// Lookup returns the session for the given id, or nil when it does not exist
// or has expired.
func (s *Service) Lookup(sessionID domain.SessionID) *domain.Session {
	if sessionID == "" {
		return nil
	}
	session, err := s.store.Get(sessionID)
	if err != nil {
		return nil
	}
	return session
}

// Logout destroys the session. Destroying an absent session is fine; the
// second logout in a row must behave.
func (s *Service) Logout(ctx context.Context, sessionID domain.SessionID) error {
	if err := s.store.Delete(sessionID); err != nil {
		observability.LoggerFromContext(ctx).Error("failed to destroy session",
			"session_id", sessionID,
			"error", err,
		)
		return fmt.Errorf("%w: %w", domain.ErrSessionPersistence, err)
	}
	observability.LoggerFromContext(ctx).Info("session destroyed", "session_id", sessionID)
	return nil
}

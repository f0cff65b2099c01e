package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/compentube/compentube-server/internal/domain"
)

// Store is the Firestore session backend, for deployments where the process
// can be restarted without logging everyone out. One document per session,
// keyed by session id, with an expiry timestamp checked on read.
type Store struct {
	client *firestore.Client
	ttl    time.Duration
}

func NewStore(ctx context.Context, projectID string, ttl time.Duration) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client, ttl: ttl}, nil
}

func (s *Store) sessionsCol() *firestore.CollectionRef {
	return s.client.Collection("sessions")
}

func (s *Store) sessionDocRef(id domain.SessionID) *firestore.DocumentRef {
	return s.sessionsCol().Doc(string(id))
}

// ─────────────────────────────────────────
// Firestore Types
// ─────────────────────────────────────────

type sessionDoc struct {
	CreatedAt time.Time `firestore:"created_at"`
	ExpiresAt time.Time `firestore:"expires_at"`

	AccessToken  string    `firestore:"access_token"`
	RefreshToken string    `firestore:"refresh_token"`
	TokenExpiry  time.Time `firestore:"token_expiry"`
	Scope        string    `firestore:"scope"`

	DisplayName string `firestore:"display_name"`
	Email       string `firestore:"email"`
	AvatarURL   string `firestore:"avatar_url"`
}

func toDoc(session *domain.Session, expiresAt time.Time) sessionDoc {
	doc := sessionDoc{
		CreatedAt: session.CreatedAt,
		ExpiresAt: expiresAt,
	}
	if session.Credentials != nil {
		doc.AccessToken = session.Credentials.AccessToken
		doc.RefreshToken = session.Credentials.RefreshToken
		doc.TokenExpiry = session.Credentials.Expiry
		doc.Scope = session.Credentials.Scope
	}
	if session.Profile != nil {
		doc.DisplayName = session.Profile.DisplayName
		doc.Email = session.Profile.Email
		doc.AvatarURL = session.Profile.AvatarURL
	}
	return doc
}

func fromDoc(id domain.SessionID, doc sessionDoc) *domain.Session {
	session := &domain.Session{
		ID:        id,
		CreatedAt: doc.CreatedAt,
	}
	// Credentials and profile travel together; a document with only one of
	// them would break the session invariant, so both are gated on email.
	if doc.AccessToken != "" && doc.Email != "" {
		session.Credentials = &domain.CredentialBundle{
			AccessToken:  doc.AccessToken,
			RefreshToken: doc.RefreshToken,
			Expiry:       doc.TokenExpiry,
			Scope:        doc.Scope,
		}
		session.Profile = &domain.UserProfile{
			DisplayName: doc.DisplayName,
			Email:       doc.Email,
			AvatarURL:   doc.AvatarURL,
		}
	}
	return session
}

// ─────────────────────────────────────────
// SessionStore implementation
// ─────────────────────────────────────────

func (s *Store) Get(id domain.SessionID) (*domain.Session, error) {
	ctx := context.Background()

	snap, err := s.sessionDocRef(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("firestore Get: %w", err)
	}

	var doc sessionDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("firestore Get decode: %w", err)
	}

	if time.Now().After(doc.ExpiresAt) {
		// Expired entries look identical to deleted ones.
		_, _ = s.sessionDocRef(id).Delete(ctx)
		return nil, domain.ErrSessionNotFound
	}

	return fromDoc(id, doc), nil
}

func (s *Store) Set(id domain.SessionID, session *domain.Session) error {
	ctx := context.Background()

	doc := toDoc(session, time.Now().Add(s.ttl))
	if _, err := s.sessionDocRef(id).Set(ctx, doc); err != nil {
		return fmt.Errorf("firestore Set: %w", err)
	}
	return nil
}

func (s *Store) Delete(id domain.SessionID) error {
	ctx := context.Background()

	if _, err := s.sessionDocRef(id).Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return fmt.Errorf("firestore Delete: %w", err)
	}
	return nil
}

package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	memstore "github.com/compentube/compentube-server/internal/adapters/storage/memory"
	"github.com/compentube/compentube-server/internal/app/auth"
	"github.com/compentube/compentube-server/internal/domain"
)

type fakeExchanger struct {
	creds   *domain.CredentialBundle
	profile *domain.UserProfile
	err     error

	gotCode string
}

func (f *fakeExchanger) CompleteLogin(_ context.Context, code string) (*domain.CredentialBundle, *domain.UserProfile, error) {
	f.gotCode = code
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.creds, f.profile, nil
}

func goodExchanger() *fakeExchanger {
	return &fakeExchanger{
		creds:   &domain.CredentialBundle{AccessToken: "at", RefreshToken: "rt"},
		profile: &domain.UserProfile{DisplayName: "Test User", Email: "test@example.com", AvatarURL: "pic"},
	}
}

type failingStore struct{}

func (failingStore) Get(domain.SessionID) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}

func (failingStore) Set(domain.SessionID, *domain.Session) error { return errors.New("disk on fire") }

func (failingStore) Delete(domain.SessionID) error { return errors.New("disk on fire") }

func TestCompleteLogin(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewSessionStore(time.Hour)
	svc := auth.NewService(goodExchanger(), store)

	session, err := svc.CompleteLogin(ctx, "sid-1", "one-time-code")
	require.NoError(t, err)
	require.True(t, session.IsAuthenticated())

	// Persisted before the caller could respond.
	persisted, err := store.Get("sid-1")
	require.NoError(t, err)
	require.Equal(t, "test@example.com", persisted.Profile.Email)
	require.Equal(t, "at", persisted.Credentials.AccessToken)
}

func TestCompleteLoginExchangeFailureMutatesNothing(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewSessionStore(time.Hour)
	exchanger := &fakeExchanger{err: domain.ErrIdentityExchange}
	svc := auth.NewService(exchanger, store)

	_, err := svc.CompleteLogin(ctx, "sid-1", "stale-code")
	require.ErrorIs(t, err, domain.ErrIdentityExchange)

	_, err = store.Get("sid-1")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestCompleteLoginPersistenceFailure(t *testing.T) {
	svc := auth.NewService(goodExchanger(), failingStore{})

	_, err := svc.CompleteLogin(context.Background(), "sid-1", "one-time-code")
	require.ErrorIs(t, err, domain.ErrSessionPersistence)
}

func TestReauthenticationReplacesProfileWholesale(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewSessionStore(time.Hour)

	first := goodExchanger()
	svc := auth.NewService(first, store)
	_, err := svc.CompleteLogin(ctx, "sid-1", "code-1")
	require.NoError(t, err)

	second := goodExchanger()
	second.creds = &domain.CredentialBundle{AccessToken: "at2"}
	second.profile = &domain.UserProfile{DisplayName: "Other", Email: "other@example.com"}
	svc = auth.NewService(second, store)
	_, err = svc.CompleteLogin(ctx, "sid-1", "code-2")
	require.NoError(t, err)

	persisted, err := store.Get("sid-1")
	require.NoError(t, err)
	require.Equal(t, "other@example.com", persisted.Profile.Email)
	require.Equal(t, "at2", persisted.Credentials.AccessToken)
}

func TestLookup(t *testing.T) {
	store := memstore.NewSessionStore(time.Hour)
	svc := auth.NewService(goodExchanger(), store)

	require.Nil(t, svc.Lookup(""))
	require.Nil(t, svc.Lookup("unknown"))

	_, err := svc.CompleteLogin(context.Background(), "sid-1", "code")
	require.NoError(t, err)
	require.True(t, svc.Lookup("sid-1").IsAuthenticated())
}

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewSessionStore(time.Hour)
	svc := auth.NewService(goodExchanger(), store)

	_, err := svc.CompleteLogin(ctx, "sid-1", "code")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, "sid-1"))
	require.Nil(t, svc.Lookup("sid-1"))
	require.NoError(t, svc.Logout(ctx, "sid-1"))
}

func TestLogoutStoreFailure(t *testing.T) {
	svc := auth.NewService(goodExchanger(), failingStore{})

	err := svc.Logout(context.Background(), "sid-1")
	require.ErrorIs(t, err, domain.ErrSessionPersistence)
}

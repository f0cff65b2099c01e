package domain

import "time"

// CredentialBundle holds the delegated tokens obtained from the identity
// provider on behalf of a user. It is owned by exactly one Session and is
// only ever replaced wholesale by a fresh exchange.
type CredentialBundle struct {
	AccessToken  string `json:"-"` // never serialize tokens
	RefreshToken string `json:"-"`
	Expiry       time.Time
	Scope        string
}

// UserProfile is extracted from the verified identity assertion. Email is the
// stable identity key; the rest is display material.
type UserProfile struct {
	DisplayName string
	Email       string
	AvatarURL   string
}

// Session is the server-side record addressed by the cookie-carried id.
// Credentials and Profile are set together atomically on login; a session
// where only one of them is present must never be observable.
type Session struct {
	ID        SessionID
	CreatedAt time.Time

	Credentials *CredentialBundle
	Profile     *UserProfile
}

// IsAuthenticated reports whether the session carries a complete credential
// bundle and profile. Safe on a nil session.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Credentials != nil && s.Profile != nil
}

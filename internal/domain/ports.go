package domain

import "context"

// SessionStore is the keyed credential store. Entries are keyed by session id
// and read only by requests carrying that session's cookie; implementations
// provide per-key atomic read/write and their own TTL expiry.
type SessionStore interface {
	Get(id SessionID) (*Session, error)
	Set(id SessionID, session *Session) error
	// Delete is idempotent: removing an absent session is not an error.
	Delete(id SessionID) error
}

// IdentityExchanger completes a login: it exchanges a one-time authorization
// code for a credential bundle and independently verifies the identity
// assertion bound to the same exchange. Both must succeed or neither result
// is returned.
type IdentityExchanger interface {
	CompleteLogin(ctx context.Context, code string) (*CredentialBundle, *UserProfile, error)
}

// TranscriptExtractor produces the full transcript text for a video, or fails
// with ErrTranscriptUnavailable. The concrete mechanism (subprocess, RPC) is
// an adapter concern.
type TranscriptExtractor interface {
	Extract(ctx context.Context, videoID VideoID) (string, error)
}

// MetadataFetcher issues one authenticated lookup for the video's descriptive
// fields.
type MetadataFetcher interface {
	Fetch(ctx context.Context, creds *CredentialBundle, videoID VideoID) (*VideoMetadata, error)
}

// TextGenerator issues one generation call with a composed prompt. Backends
// that authenticate with service credentials may ignore creds.
type TextGenerator interface {
	Generate(ctx context.Context, creds *CredentialBundle, prompt string) (string, error)
}

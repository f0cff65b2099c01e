package domain

import "errors"

// Failure taxonomy. Adapters wrap their causes around these sentinels; the
// HTTP layer maps them to status codes with errors.Is and never forwards the
// wrapped detail to clients.
var (
	ErrUnauthenticated       = errors.New("user not authenticated")
	ErrBadRequest            = errors.New("missing required parameters")
	ErrInvalidReference      = errors.New("invalid or unsupported video reference")
	ErrTranscriptUnavailable = errors.New("could not retrieve transcript")
	ErrMetadataNotFound      = errors.New("video details not found")
	ErrGenerationFailed      = errors.New("summary generation failed")
	ErrSessionPersistence    = errors.New("session save failed")
	ErrIdentityExchange      = errors.New("authentication failed on server")

	// ErrSessionNotFound is a store-level miss. Expired and destroyed
	// sessions look identical to callers.
	ErrSessionNotFound = errors.New("session not found")
)

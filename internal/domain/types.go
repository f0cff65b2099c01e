package domain

import (
	"strings"
	"time"
)

type SessionID string
type VideoID string

type LengthMode string

const (
	LengthShort    LengthMode = "Short"    // concise, ~9-10 sentences
	LengthDetailed LengthMode = "Detailed" // structured, bulleted
)

// ParseLengthMode maps a client-supplied value to one of the two defined
// modes. Anything else is rejected.
func ParseLengthMode(s string) (LengthMode, bool) {
	switch strings.TrimSpace(s) {
	case string(LengthShort):
		return LengthShort, true
	case string(LengthDetailed):
		return LengthDetailed, true
	default:
		return "", false
	}
}

type Timestamp = time.Time

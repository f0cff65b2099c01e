package domain

import "fmt"

// SummarizationRequest is constructed fresh per call and never persisted.
type SummarizationRequest struct {
	ItemReference  string
	OutputLanguage string
	LengthMode     LengthMode
}

// Validate enforces the request contract: all three fields are required and
// the length mode must be one of the two defined modes.
func (r SummarizationRequest) Validate() error {
	if r.ItemReference == "" || r.OutputLanguage == "" || r.LengthMode == "" {
		return fmt.Errorf("%w: itemReference, outputLanguage and lengthMode are required", ErrBadRequest)
	}
	if _, ok := ParseLengthMode(string(r.LengthMode)); !ok {
		return fmt.Errorf("%w: unknown length mode %q", ErrBadRequest, r.LengthMode)
	}
	return nil
}

// VideoMetadata is the transient result of one metadata fetch.
type VideoMetadata struct {
	ID        VideoID
	Title     string
	Channel   string
	ChannelID string
	Thumbnail string
}

// SummarizationResult pairs the generated markdown summary with the metadata
// obtained for the same resolved video id. It is returned once and not stored.
type SummarizationResult struct {
	SummaryText string
	Metadata    VideoMetadata
}

package summarize

import (
	"fmt"
	"regexp"

	ytdl "github.com/kkdai/youtube/v2"

	"github.com/compentube/compentube-server/internal/domain"
)

// Fallback for reference shapes the library rejects. Captures the 11-char id
// from watch, embed, v, shorts and bare youtu.be URLs.
var videoIDPattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:m\.)?(?:youtube\.com|youtu\.be)/(?:watch\?v=|embed/|v/|shorts/)?([\w-]{11})`)

// A canonical video id is exactly 11 word/dash characters. The extraction
// library is lenient and can echo junk input back, so its result is checked
// against this before being trusted.
var canonicalIDPattern = regexp.MustCompile(`^[\w-]{11}$`)

// ResolveVideoID maps a user-supplied reference to the canonical video id.
// Two tiers: the extraction library first, then the URL pattern fallback.
func ResolveVideoID(reference string) (domain.VideoID, error) {
	if id, err := ytdl.ExtractVideoID(reference); err == nil && canonicalIDPattern.MatchString(id) {
		return domain.VideoID(id), nil
	}

	if m := videoIDPattern.FindStringSubmatch(reference); m != nil {
		return domain.VideoID(m[1]), nil
	}

	return "", fmt.Errorf("%w: %q", domain.ErrInvalidReference, reference)
}

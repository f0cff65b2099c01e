package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/compentube/compentube-server/internal/adapters/identity"
	"github.com/compentube/compentube-server/internal/domain"
)

// Client fetches video snippets from the YouTube Data API. It is stateless:
// credentials come from the session on every call, so the API service is
// built per request around that user's token.
type Client struct{}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) Fetch(ctx context.Context, creds *domain.CredentialBundle, videoID domain.VideoID) (*domain.VideoMetadata, error) {
	svc, err := youtube.NewService(ctx, option.WithTokenSource(identity.TokenSource(creds)))
	if err != nil {
		return nil, fmt.Errorf("%w: creating youtube service: %w", domain.ErrMetadataNotFound, err)
	}

	resp, err := svc.Videos.List([]string{"snippet"}).Id(string(videoID)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: videos.list: %w", domain.ErrMetadataNotFound, err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: no items for video %s", domain.ErrMetadataNotFound, videoID)
	}

	return mapVideo(videoID, resp.Items[0])
}

// mapVideo converts the API item into the domain type, failing closed when
// required fields are absent.
func mapVideo(videoID domain.VideoID, item *youtube.Video) (*domain.VideoMetadata, error) {
	if item == nil || item.Snippet == nil {
		return nil, fmt.Errorf("%w: response item has no snippet", domain.ErrMetadataNotFound)
	}

	sn := item.Snippet
	if sn.Title == "" {
		return nil, fmt.Errorf("%w: snippet has no title", domain.ErrMetadataNotFound)
	}

	return &domain.VideoMetadata{
		ID:        videoID,
		Title:     sn.Title,
		Channel:   sn.ChannelTitle,
		ChannelID: sn.ChannelId,
		Thumbnail: thumbnailURL(sn.Thumbnails),
	}, nil
}

// thumbnailURL prefers the high-resolution thumbnail, falling back to the
// default one.
func thumbnailURL(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	if t.High != nil && t.High.Url != "" {
		return t.High.Url
	}
	if t.Default != nil {
		return t.Default.Url
	}
	return ""
}

package youtube

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/youtube/v3"

	"github.com/compentube/compentube-server/internal/domain"
)

func TestMapVideo(t *testing.T) {
	item := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:        "T",
			ChannelTitle: "C",
			ChannelId:    "123",
			Thumbnails: &youtube.ThumbnailDetails{
				Default: &youtube.Thumbnail{Url: "u"},
			},
		},
	}

	meta, err := mapVideo("abc12345678", item)
	require.NoError(t, err)
	require.Equal(t, &domain.VideoMetadata{
		ID:        "abc12345678",
		Title:     "T",
		Channel:   "C",
		ChannelID: "123",
		Thumbnail: "u",
	}, meta)
}

func TestMapVideoPrefersHighThumbnail(t *testing.T) {
	item := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title: "T",
			Thumbnails: &youtube.ThumbnailDetails{
				High:    &youtube.Thumbnail{Url: "high"},
				Default: &youtube.Thumbnail{Url: "default"},
			},
		},
	}

	meta, err := mapVideo("abc12345678", item)
	require.NoError(t, err)
	require.Equal(t, "high", meta.Thumbnail)
}

func TestMapVideoFailsClosed(t *testing.T) {
	_, err := mapVideo("abc12345678", nil)
	require.ErrorIs(t, err, domain.ErrMetadataNotFound)

	_, err = mapVideo("abc12345678", &youtube.Video{})
	require.ErrorIs(t, err, domain.ErrMetadataNotFound)

	// Snippet with no title is treated as missing, not propagated empty.
	_, err = mapVideo("abc12345678", &youtube.Video{Snippet: &youtube.VideoSnippet{}})
	require.ErrorIs(t, err, domain.ErrMetadataNotFound)
}

func TestMapVideoNoThumbnails(t *testing.T) {
	meta, err := mapVideo("abc12345678", &youtube.Video{
		Snippet: &youtube.VideoSnippet{Title: "T"},
	})
	require.NoError(t, err)
	require.Equal(t, "", meta.Thumbnail)
}

package summarize_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/compentube/compentube-server/internal/app/summarize"
	"github.com/compentube/compentube-server/internal/domain"
)

func TestResolveVideoID(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		want      domain.VideoID
	}{
		{"short link", "https://youtu.be/abc12345678", "abc12345678"},
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"shorts url", "https://youtube.com/shorts/abc12345678", "abc12345678"},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"mobile url", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"no scheme", "youtu.be/abc12345678", "abc12345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := summarize.ResolveVideoID(tt.reference)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolveVideoIDInvalid(t *testing.T) {
	for _, reference := range []string{
		"",
		"not a url at all",
		"https://vimeo.com/123456",
		"https://youtube.com/watch?v=short",
	} {
		_, err := summarize.ResolveVideoID(reference)
		require.Error(t, err, "reference %q", reference)
		require.True(t, errors.Is(err, domain.ErrInvalidReference))
	}
}

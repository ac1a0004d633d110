package transcript

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	transcripterrors "github.com/matyo91/youtube-transcript-api/pkg/errors"
	"github.com/matyo91/youtube-transcript-api/pkg/models"
)

const captionsXML = `<?xml version="1.0" encoding="utf-8" ?><transcript>
    <text start="0" dur="2.5">Hello</text>
    <text start="2.5" dur="1">World</text>
</transcript>`

func writeCaptions(t *testing.T, dir string, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(captionsXML), 0644))
}

func TestLocalProviderGetTranscript(t *testing.T) {
	dir := t.TempDir()
	writeCaptions(t, dir, "abc123.en.xml")
	writeCaptions(t, dir, "abc123.es.xml")

	provider := NewLocalProvider(dir)

	t.Run("existing transcript", func(t *testing.T) {
		doc, err := provider.GetTranscript(context.Background(), "abc123", "en")
		require.NoError(t, err)
		assert.Equal(t, "abc123", doc.VideoID)
		assert.Equal(t, "en", doc.LanguageCode)
		assert.Equal(t, []models.Cue{
			{Text: "Hello", Start: 0, Duration: 2.5},
			{Text: "World", Start: 2.5, Duration: 1},
		}, doc.Cues)
	})

	t.Run("video ID given as URL", func(t *testing.T) {
		doc, err := provider.GetTranscript(context.Background(), "https://www.youtube.com/watch?v=abc123", "en")
		require.NoError(t, err)
		assert.Equal(t, "abc123", doc.VideoID)
	})

	t.Run("missing language for known video", func(t *testing.T) {
		_, err := provider.GetTranscript(context.Background(), "abc123", "fr")
		assert.ErrorIs(t, err, transcripterrors.ErrNoTranscript)
	})

	t.Run("unknown video", func(t *testing.T) {
		_, err := provider.GetTranscript(context.Background(), "nonexistent", "en")
		assert.ErrorIs(t, err, transcripterrors.ErrVideoUnavailable)
	})
}

func TestLocalProviderRejectsPathEscapes(t *testing.T) {
	root := t.TempDir()
	captions := filepath.Join(root, "captions")
	require.NoError(t, os.Mkdir(captions, 0755))
	writeCaptions(t, captions, "abc123.en.xml")
	// A captions file outside the configured root must stay unreachable
	writeCaptions(t, root, "secret.en.xml")

	provider := NewLocalProvider(captions)

	badVideoIDs := []string{
		"../secret",
		"..",
		"dir/abc123",
		`dir\abc123`,
		"abc123.en",
		"",
	}
	for _, id := range badVideoIDs {
		t.Run("video id "+id, func(t *testing.T) {
			_, err := provider.GetTranscript(context.Background(), id, "en")
			assert.ErrorIs(t, err, transcripterrors.ErrInvalidVideoID)

			_, err = provider.ListTranscripts(context.Background(), id)
			assert.ErrorIs(t, err, transcripterrors.ErrInvalidVideoID)
		})
	}

	badLanguages := []string{
		"en/../../secret.en",
		"en.xml/..",
		"",
	}
	for _, lang := range badLanguages {
		t.Run("language "+lang, func(t *testing.T) {
			_, err := provider.GetTranscript(context.Background(), "abc123", lang)
			assert.ErrorIs(t, err, transcripterrors.ErrNoTranscript)
		})
	}

	t.Run("valid IDs still resolve", func(t *testing.T) {
		_, err := provider.GetTranscript(context.Background(), "abc123", "en")
		assert.NoError(t, err)
	})
}

func TestLocalProviderListTranscripts(t *testing.T) {
	dir := t.TempDir()
	writeCaptions(t, dir, "abc123.en.xml")
	writeCaptions(t, dir, "abc123.es.xml")

	provider := NewLocalProvider(dir)

	t.Run("lists available languages", func(t *testing.T) {
		infos, err := provider.ListTranscripts(context.Background(), "abc123")
		require.NoError(t, err)
		require.Len(t, infos, 2)
		assert.Equal(t, "en", infos[0].LanguageCode)
		assert.Equal(t, "es", infos[1].LanguageCode)
	})

	t.Run("unknown video", func(t *testing.T) {
		_, err := provider.ListTranscripts(context.Background(), "nonexistent")
		assert.ErrorIs(t, err, transcripterrors.ErrVideoUnavailable)
	})
}

func TestSanitizeVideoID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Regular video ID",
			input:    "dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "YouTube URL",
			input:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "YouTube URL with additional parameters",
			input:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "Short link",
			input:    "https://youtu.be/dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "Short link with additional parameters",
			input:    "https://youtu.be/dQw4w9WgXcQ?t=42",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "Invalid URL",
			input:    "https://example.com/video",
			expected: "https://example.com/video",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeVideoID(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

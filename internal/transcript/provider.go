package transcript

import (
	"context"
	"log"
	"net/url"
	"strings"

	"github.com/matyo91/youtube-transcript-api/pkg/models"
)

// Provider supplies transcript documents from an upstream source. Fetching is
// deliberately behind this interface so the service stays independent of how
// captions are obtained.
type Provider interface {
	GetTranscript(ctx context.Context, videoID string, language string) (models.TranscriptDocument, error)
	ListTranscripts(ctx context.Context, videoID string) ([]models.TranscriptInfo, error)
}

// SanitizeVideoID accepts a bare video ID, a youtube.com watch URL or a
// youtu.be short link and returns the video ID.
func SanitizeVideoID(videoID string) string {
	if strings.HasPrefix(videoID, "http://") || strings.HasPrefix(videoID, "https://") || strings.HasPrefix(videoID, "www.") {
		u, err := url.Parse(videoID)
		if err != nil {
			log.Printf("Error parsing URL %q: %v", videoID, err)
			return videoID
		}
		if strings.Contains(videoID, "youtube.com") {
			return u.Query().Get("v")
		}
		if strings.Contains(videoID, "youtu.be") {
			if id := strings.Trim(u.Path, "/"); id != "" {
				return id
			}
			return videoID
		}
		log.Printf("Warning: %q doesn't look like a youtube video, we'll still try to process it.", videoID)
	}
	return videoID
}

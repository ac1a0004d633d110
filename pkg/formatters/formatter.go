package formatters

import (
	"fmt"
	"math"

	transcripterrors "github.com/matyo91/youtube-transcript-api/pkg/errors"
	"github.com/matyo91/youtube-transcript-api/pkg/models"
)

// Formatter defines the interface for transcript formatters
type Formatter interface {
	// Format converts a transcript document into a specific output format
	Format(doc models.TranscriptDocument) (string, error)
	// ContentType returns the MIME type matching the output format
	ContentType() string
}

// ByName resolves a format selector (json, text, webvtt, srt) to a formatter.
// Unknown selectors return ErrInvalidFormat; there is no default.
func ByName(name string) (Formatter, error) {
	switch name {
	case "json":
		return NewJSONFormatter(), nil
	case "text":
		return NewTextFormatter(), nil
	case "webvtt":
		return NewWebVTTFormatter(), nil
	case "srt":
		return NewSRTFormatter(), nil
	}
	return nil, fmt.Errorf("%w: %q", transcripterrors.ErrInvalidFormat, name)
}

// validateCues rejects negative timing. Negative values mean the upstream
// normalization is broken, so they are surfaced instead of clamped.
func validateCues(cues []models.Cue) error {
	for i, cue := range cues {
		if cue.Start < 0 || cue.Duration < 0 {
			return fmt.Errorf("%w: cue %d has negative timing (start=%f, duration=%f)",
				transcripterrors.ErrInvalidCueData, i, cue.Start, cue.Duration)
		}
	}
	return nil
}

// formatTimestamp renders an offset in seconds as HH:MM:SS<sep>mmm. The offset
// is rounded to the nearest millisecond first, so fractional-second rounding
// carries through seconds, minutes and hours (59.9996 -> 00:01:00.000).
func formatTimestamp(seconds float64, sep byte) string {
	millis := int64(math.Round(seconds * 1000))

	hours := millis / 3600000
	minutes := (millis % 3600000) / 60000
	secs := (millis % 60000) / 1000
	remainder := millis % 1000

	return fmt.Sprintf("%02d:%02d:%02d%c%03d", hours, minutes, secs, sep, remainder)
}

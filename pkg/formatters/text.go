package formatters

import (
	"strings"

	"github.com/matyo91/youtube-transcript-api/pkg/models"
)

type TextFormatter struct{}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format concatenates cue texts separated by newlines, without timing
// information. An empty document yields an empty string.
func (t *TextFormatter) Format(doc models.TranscriptDocument) (string, error) {
	if err := validateCues(doc.Cues); err != nil {
		return "", err
	}

	var text strings.Builder

	for i, cue := range doc.Cues {
		if i > 0 {
			text.WriteByte('\n')
		}
		text.WriteString(cue.Text)
	}

	return text.String(), nil
}

func (t *TextFormatter) ContentType() string {
	return "text/plain"
}

package formatters

import (
	"strings"

	"github.com/matyo91/youtube-transcript-api/pkg/models"
)

type WebVTTFormatter struct{}

func NewWebVTTFormatter() *WebVTTFormatter {
	return &WebVTTFormatter{}
}

// Format renders a WebVTT document: the WEBVTT header, then one block per cue
// with a period-delimited timestamp line. WebVTT carries no cue numbering.
func (v *WebVTTFormatter) Format(doc models.TranscriptDocument) (string, error) {
	if err := validateCues(doc.Cues); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("WEBVTT\n\n")

	for _, cue := range doc.Cues {
		b.WriteString(formatTimestamp(cue.Start, '.'))
		b.WriteString(" --> ")
		b.WriteString(formatTimestamp(cue.Start+cue.Duration, '.'))
		b.WriteByte('\n')
		b.WriteString(cue.Text)
		b.WriteString("\n\n")
	}

	return b.String(), nil
}

func (v *WebVTTFormatter) ContentType() string {
	return "text/vtt"
}

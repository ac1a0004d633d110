package formatters

import (
	"strconv"
	"strings"

	"github.com/matyo91/youtube-transcript-api/pkg/models"
)

type SRTFormatter struct{}

func NewSRTFormatter() *SRTFormatter {
	return &SRTFormatter{}
}

// Format renders a SubRip document: one block per cue with a 1-based index
// line and a comma-delimited timestamp line. Indices increment strictly by one
// regardless of timing gaps or overlaps.
func (s *SRTFormatter) Format(doc models.TranscriptDocument) (string, error) {
	if err := validateCues(doc.Cues); err != nil {
		return "", err
	}

	var b strings.Builder

	for i, cue := range doc.Cues {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteByte('\n')
		b.WriteString(formatTimestamp(cue.Start, ','))
		b.WriteString(" --> ")
		b.WriteString(formatTimestamp(cue.Start+cue.Duration, ','))
		b.WriteByte('\n')
		b.WriteString(cue.Text)
		b.WriteString("\n\n")
	}

	return b.String(), nil
}

func (s *SRTFormatter) ContentType() string {
	return "application/x-subrip"
}

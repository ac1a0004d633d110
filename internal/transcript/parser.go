package transcript

import (
	"encoding/xml"
	"fmt"
	"html"
	"strconv"
	"strings"

	xhtml "golang.org/x/net/html"

	"github.com/matyo91/youtube-transcript-api/pkg/models"
)

// ParseTimedText extracts cues from a YouTube timedtext XML document.
func ParseTimedText(data []byte) ([]models.Cue, error) {
	type timedText struct {
		XMLName xml.Name `xml:"transcript"`
		Texts   []struct {
			Text     string `xml:",chardata"`
			Start    string `xml:"start,attr"`
			Duration string `xml:"dur,attr"`
		} `xml:"text"`
	}

	var parsed timedText
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse timedtext XML: %w", err)
	}

	cues := make([]models.Cue, 0, len(parsed.Texts))
	for _, entry := range parsed.Texts {
		// Caption text is double-escaped: unescape the HTML entities left
		// after XML decoding, then strip inline markup
		text := html.UnescapeString(entry.Text)
		text = stripMarkup(text)

		start, err := strconv.ParseFloat(entry.Start, 64)
		if err != nil {
			start = 0.0
		}

		duration, err := strconv.ParseFloat(entry.Duration, 64)
		if err != nil {
			duration = 0.0
		}

		cues = append(cues, models.Cue{
			Text:     text,
			Start:    start,
			Duration: duration,
		})
	}

	return cues, nil
}

// stripMarkup removes the inline markup tags YouTube embeds in caption text
// (<b>, <i>, <font> and friends), keeping only the text content.
func stripMarkup(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	var b strings.Builder
	z := xhtml.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			// io.EOF ends the fragment
			return b.String()
		case xhtml.TextToken:
			b.Write(z.Text())
		}
	}
}

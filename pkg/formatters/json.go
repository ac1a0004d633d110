package formatters

import (
	"encoding/json"

	"github.com/matyo91/youtube-transcript-api/pkg/models"
)

// JSONFormatterOption is specifically for JSON formatter options
type JSONFormatterOption func(*JSONFormatter)

type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(options ...JSONFormatterOption) *JSONFormatter {
	f := &JSONFormatter{
		PrettyPrint: false,
	}

	for _, opt := range options {
		opt(f)
	}
	return f
}

// WithPrettyPrint returns a function that sets the PrettyPrint option
func WithPrettyPrint(pretty bool) JSONFormatterOption {
	return func(f *JSONFormatter) {
		f.PrettyPrint = pretty
	}
}

func (f *JSONFormatter) Format(doc models.TranscriptDocument) (string, error) {
	if err := validateCues(doc.Cues); err != nil {
		return "", err
	}

	cues := doc.Cues
	if cues == nil {
		// Marshal renders a nil slice as null, an empty document must be []
		cues = []models.Cue{}
	}

	var (
		bytes []byte
		err   error
	)

	if f.PrettyPrint {
		bytes, err = json.MarshalIndent(cues, "", "  ")
	} else {
		bytes, err = json.Marshal(cues)
	}

	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

func (f *JSONFormatter) ContentType() string {
	return "application/json"
}

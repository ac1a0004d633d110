package errors

type TranscriptError string

func (e TranscriptError) Error() string {
	return string(e)
}

const (
	ErrInvalidFormat       = TranscriptError("invalid transcript format")
	ErrInvalidCueData      = TranscriptError("invalid cue data")
	ErrNoTranscript        = TranscriptError("no transcript found")
	ErrVideoUnavailable    = TranscriptError("video is unavailable")
	ErrTranscriptsDisabled = TranscriptError("transcripts are disabled")
	ErrInvalidVideoID      = TranscriptError("invalid video ID")
)

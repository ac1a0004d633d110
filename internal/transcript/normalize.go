package transcript

import (
	"encoding/json"
	"fmt"
	"strconv"

	transcripterrors "github.com/matyo91/youtube-transcript-api/pkg/errors"
	"github.com/matyo91/youtube-transcript-api/pkg/models"
)

// Normalize converts the loosely-typed segment maps an upstream transcript
// library returns into fixed Cue records. Upstream numbers may arrive as
// float64, json.Number or strings depending on how the payload was decoded;
// all of them collapse to float64 seconds here. Negative timing is rejected
// rather than clamped so upstream defects stay visible.
func Normalize(segments []map[string]any) ([]models.Cue, error) {
	cues := make([]models.Cue, 0, len(segments))

	for i, segment := range segments {
		text, _ := segment["text"].(string)

		start, err := toSeconds(segment["start"])
		if err != nil {
			return nil, fmt.Errorf("%w: segment %d start: %v", transcripterrors.ErrInvalidCueData, i, err)
		}

		duration, err := toSeconds(segment["duration"])
		if err != nil {
			return nil, fmt.Errorf("%w: segment %d duration: %v", transcripterrors.ErrInvalidCueData, i, err)
		}

		if start < 0 || duration < 0 {
			return nil, fmt.Errorf("%w: segment %d has negative timing (start=%f, duration=%f)",
				transcripterrors.ErrInvalidCueData, i, start, duration)
		}

		cues = append(cues, models.Cue{
			Text:     text,
			Start:    start,
			Duration: duration,
		})
	}

	return cues, nil
}

func toSeconds(value any) (float64, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		return strconv.ParseFloat(v, 64)
	}
	return 0, fmt.Errorf("unsupported numeric value of type %T", value)
}

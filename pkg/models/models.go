package models

// Cue is one timed caption entry. Start and Duration are offsets in seconds
// from the beginning of the video; End is Start + Duration.
type Cue struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// TranscriptDocument is the ordered cue sequence for one video/language pair.
// Cues are expected in non-decreasing Start order.
type TranscriptDocument struct {
	VideoID      string
	Language     string
	LanguageCode string
	Cues         []Cue
}

// TranscriptInfo describes one available transcript track for a video.
type TranscriptInfo struct {
	Language       string `json:"language"`
	LanguageCode   string `json:"language_code"`
	IsGenerated    bool   `json:"is_generated"`
	IsTranslatable bool   `json:"is_translatable"`
}

package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/matyo91/youtube-transcript-api/internal/transcript"
	transcripterrors "github.com/matyo91/youtube-transcript-api/pkg/errors"
	"github.com/matyo91/youtube-transcript-api/pkg/formatters"
)

type TranscriptHandler struct {
	provider transcript.Provider
}

func NewTranscriptHandler(provider transcript.Provider) *TranscriptHandler {
	return &TranscriptHandler{provider: provider}
}

// Welcome describes the API for clients hitting the root path
func (h *TranscriptHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Welcome to the YouTube Transcript API",
		"description": "This API allows you to extract subtitles from YouTube videos",
		"endpoints": map[string]string{
			"/transcript":  "Get video subtitles (formats: json, text, webvtt, srt)",
			"/transcripts": "List available subtitles for a video",
		},
	})
}

// GetTranscript fetches a transcript for a video ID and language and returns
// it in the requested format with the matching content type.
func (h *TranscriptHandler) GetTranscript(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	videoID := query.Get("video_id")
	if videoID == "" {
		jsonError(w, "video_id is required", http.StatusUnprocessableEntity)
		return
	}

	language := query.Get("language")
	if language == "" {
		language = "en"
	}

	format := query.Get("format")
	if format == "" {
		format = "json"
	}

	// Resolve the formatter before touching the provider so an invalid
	// selector never produces partial output
	formatter, err := formatters.ByName(format)
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	doc, err := h.provider.GetTranscript(r.Context(), videoID, language)
	if err != nil {
		writeProviderError(w, err)
		return
	}

	body, err := formatter.Format(doc)
	if err != nil {
		log.Printf("Error formatting transcript for %s: %v", videoID, err)
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", formatter.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

// ListTranscripts returns the transcript tracks available for a video
func (h *TranscriptHandler) ListTranscripts(w http.ResponseWriter, r *http.Request) {
	videoID := r.URL.Query().Get("video_id")
	if videoID == "" {
		jsonError(w, "video_id is required", http.StatusUnprocessableEntity)
		return
	}

	infos, err := h.provider.ListTranscripts(r.Context(), videoID)
	if err != nil {
		writeProviderError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"video_id":              videoID,
		"available_transcripts": infos,
	})
}

func writeProviderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, transcripterrors.ErrNoTranscript):
		jsonError(w, "transcript not found for the specified language", http.StatusNotFound)
	case errors.Is(err, transcripterrors.ErrVideoUnavailable):
		jsonError(w, "video is unavailable", http.StatusNotFound)
	case errors.Is(err, transcripterrors.ErrTranscriptsDisabled):
		jsonError(w, "transcripts are disabled for this video", http.StatusNotFound)
	case errors.Is(err, transcripterrors.ErrInvalidVideoID):
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		log.Printf("Provider error: %v", err)
		jsonError(w, "internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

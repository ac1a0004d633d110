package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/matyo91/youtube-transcript-api/internal/config"
	"github.com/matyo91/youtube-transcript-api/internal/transcript/fixtures"
	"github.com/matyo91/youtube-transcript-api/pkg/models"
)

func TestRouterAPIKey(t *testing.T) {
	provider := &fixtures.MockProvider{}
	provider.On("GetTranscript", mock.Anything, "abc123", "en").
		Return(models.TranscriptDocument{VideoID: "abc123"}, nil)

	cfg := &config.Config{APIKey: "secret", CORSOrigins: []string{"*"}}
	router := NewRouter(provider, cfg)

	t.Run("missing key is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/transcript?video_id=abc123", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong key is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/transcript?video_id=abc123", nil)
		req.Header.Set("X-API-Key", "wrong")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("matching key is accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/transcript?video_id=abc123", nil)
		req.Header.Set("X-API-Key", "secret")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("root stays public", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("responses carry a request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})
}

func TestRouterWithoutAPIKey(t *testing.T) {
	provider := &fixtures.MockProvider{}
	provider.On("GetTranscript", mock.Anything, "abc123", "en").
		Return(models.TranscriptDocument{VideoID: "abc123"}, nil)

	cfg := &config.Config{CORSOrigins: []string{"*"}}
	router := NewRouter(provider, cfg)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/transcript?video_id=abc123", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

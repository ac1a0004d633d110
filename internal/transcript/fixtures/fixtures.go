package fixtures

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/matyo91/youtube-transcript-api/pkg/models"
)

// MockProvider implements transcript.Provider for testing
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetTranscript(ctx context.Context, videoID string, language string) (models.TranscriptDocument, error) {
	args := m.Called(ctx, videoID, language)
	return args.Get(0).(models.TranscriptDocument), args.Error(1)
}

func (m *MockProvider) ListTranscripts(ctx context.Context, videoID string) ([]models.TranscriptInfo, error) {
	args := m.Called(ctx, videoID)
	return args.Get(0).([]models.TranscriptInfo), args.Error(1)
}

package transcript

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	transcripterrors "github.com/matyo91/youtube-transcript-api/pkg/errors"
	"github.com/matyo91/youtube-transcript-api/pkg/models"
)

// Both values end up in a filename under the captions root, so anything
// outside the YouTube ID / BCP 47 alphabets is rejected before the path join.
// This keeps traversal sequences like "../secret" out of the filesystem.
var (
	videoIDPattern  = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	languagePattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
)

// LocalProvider serves transcripts from a directory of timedtext XML files
// named <videoID>.<languageCode>.xml. It is the filesystem-backed stand-in
// for a network caption source.
type LocalProvider struct {
	captionsPath string
}

func NewLocalProvider(captionsPath string) *LocalProvider {
	return &LocalProvider{captionsPath: captionsPath}
}

func (p *LocalProvider) GetTranscript(ctx context.Context, videoID string, language string) (models.TranscriptDocument, error) {
	videoID = SanitizeVideoID(videoID)
	if !videoIDPattern.MatchString(videoID) {
		return models.TranscriptDocument{}, fmt.Errorf("%w: %q", transcripterrors.ErrInvalidVideoID, videoID)
	}
	if !languagePattern.MatchString(language) {
		return models.TranscriptDocument{}, fmt.Errorf("%w for language %q", transcripterrors.ErrNoTranscript, language)
	}

	path := filepath.Join(p.captionsPath, fmt.Sprintf("%s.%s.xml", videoID, language))
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return models.TranscriptDocument{}, fmt.Errorf("failed to read captions file: %w", err)
		}
		// Distinguish a missing language from a missing video
		if _, lerr := p.ListTranscripts(ctx, videoID); lerr != nil {
			return models.TranscriptDocument{}, lerr
		}
		return models.TranscriptDocument{}, fmt.Errorf("%w for language %q", transcripterrors.ErrNoTranscript, language)
	}

	cues, err := ParseTimedText(data)
	if err != nil {
		return models.TranscriptDocument{}, err
	}

	return models.TranscriptDocument{
		VideoID:      videoID,
		Language:     language,
		LanguageCode: language,
		Cues:         cues,
	}, nil
}

func (p *LocalProvider) ListTranscripts(ctx context.Context, videoID string) ([]models.TranscriptInfo, error) {
	videoID = SanitizeVideoID(videoID)
	if !videoIDPattern.MatchString(videoID) {
		return nil, fmt.Errorf("%w: %q", transcripterrors.ErrInvalidVideoID, videoID)
	}

	matches, err := filepath.Glob(filepath.Join(p.captionsPath, videoID+".*.xml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list captions: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", transcripterrors.ErrVideoUnavailable, videoID)
	}

	sort.Strings(matches)

	infos := make([]models.TranscriptInfo, 0, len(matches))
	for _, match := range matches {
		name := strings.TrimSuffix(filepath.Base(match), ".xml")
		code := strings.TrimPrefix(name, videoID+".")
		infos = append(infos, models.TranscriptInfo{
			Language:     code,
			LanguageCode: code,
		})
	}

	return infos, nil
}

package transcript

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"ytfetch/internal/logging"
	"ytfetch/internal/youtube"
)

// Provider retrieves transcripts from the caption source. Implemented by
// *youtube.Client.
type Provider interface {
	FetchTranscript(ctx context.Context, videoID string, languages []string) (youtube.Transcript, error)
	FetchAnyTranscript(ctx context.Context, videoID string) (youtube.Transcript, error)
}

// Cache is consulted before the provider and fed after a successful fetch.
// Keys are (videoID, requested language), so a fallback result is replayed
// for the same request without re-resolving it.
type Cache interface {
	Lookup(ctx context.Context, videoID, language string) (Result, bool, error)
	Store(ctx context.Context, language string, result Result) error
}

// Service fetches transcripts with the two-step fallback: a fetch restricted
// to the requested language, then an unrestricted fetch of whatever track is
// available.
type Service struct {
	provider Provider
	cache    Cache
	logger   *slog.Logger
}

// NewService wires a fetch service. cache may be nil to disable caching.
func NewService(provider Provider, cache Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		provider: provider,
		cache:    cache,
		logger:   logging.NewComponentLogger(logger, "transcript"),
	}
}

// Fetch returns the transcript for videoID, preferring language. The error
// of the restricted attempt is logged, not surfaced; when both attempts
// fail the caller sees the unrestricted attempt's error.
func (s *Service) Fetch(ctx context.Context, videoID, language string) (Result, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return Result{}, errors.New("video id is required")
	}
	language = strings.TrimSpace(language)
	if language == "" {
		language = DefaultLanguage
	}

	if s.cache != nil {
		cached, found, err := s.cache.Lookup(ctx, videoID, language)
		if err != nil {
			s.logger.Warn("cache lookup failed",
				logging.String(logging.FieldEventType, "cache_lookup_failed"),
				logging.Error(err),
				logging.String(logging.FieldImpact, "transcript will be fetched from the network"))
		} else if found {
			s.logger.Debug("cache hit",
				logging.String("video_id", videoID),
				logging.String("language", language))
			return cached, nil
		}
	}

	fetched, err := s.provider.FetchTranscript(ctx, videoID, []string{language})
	if err != nil {
		s.logger.Debug("language-restricted fetch failed, trying any available track",
			logging.String("video_id", videoID),
			logging.String("language", language),
			logging.Error(err))
		fetched, err = s.provider.FetchAnyTranscript(ctx, videoID)
		if err != nil {
			return Result{}, err
		}
	}

	result := resultFromTranscript(fetched)
	if s.cache != nil {
		if err := s.cache.Store(ctx, language, result); err != nil {
			s.logger.Warn("cache store failed",
				logging.String(logging.FieldEventType, "cache_store_failed"),
				logging.Error(err),
				logging.String(logging.FieldImpact, "next invocation will fetch again"))
		}
	}
	return result, nil
}

func resultFromTranscript(fetched youtube.Transcript) Result {
	segments := make([]Segment, 0, len(fetched.Snippets))
	for _, snippet := range fetched.Snippets {
		segments = append(segments, Segment{
			Text:     snippet.Text,
			Start:    snippet.Start,
			Duration: snippet.Duration,
		})
	}
	return Result{
		VideoID:  fetched.VideoID,
		Language: fetched.LanguageCode,
		Segments: segments,
	}
}

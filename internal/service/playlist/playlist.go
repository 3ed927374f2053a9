// Package playlist turns a playlist URL into a generated course.
package playlist

import (
	"TubeCourse/internal/app_errors"
	"TubeCourse/internal/models"
	"TubeCourse/internal/service/course"
	"TubeCourse/internal/service/generation"
	"TubeCourse/pkg/logger"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const fallbackTitle = "AI Course from Playlist"

type catalog interface {
	PlaylistVideos(ctx context.Context, playlistID string) ([]models.Video, error)
}

type generator interface {
	Generate(ctx context.Context, p generation.Payload) (string, error)
}

type extractor interface {
	Extract(text string) (map[string]any, error)
}

type PlaylistService struct {
	log       logger.Log
	catalog   catalog
	generator generator
	extractor extractor
	// timeout bounds the generation call when positive
	timeout time.Duration
	now     func() time.Time
}

func NewPlaylistService(log logger.Log, c catalog, g generator, e extractor, timeout time.Duration) *PlaylistService {
	return &PlaylistService{
		log:       log,
		catalog:   c,
		generator: g,
		extractor: e,
		timeout:   timeout,
		now:       time.Now,
	}
}

// ExtractPlaylistID returns the list query parameter of an absolute URL.
func ExtractPlaylistID(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	id := u.Query().Get("list")
	return id, id != ""
}

// ProcessPlaylist fetches the playlist, asks the model for a course and
// returns it normalized. Nothing is persisted.
func (s *PlaylistService) ProcessPlaylist(ctx context.Context, playlistURL string) (models.GeneratedCourse, error) {
	if strings.TrimSpace(playlistURL) == "" {
		return models.GeneratedCourse{}, app_errors.ErrMissingPlaylistURL
	}
	playlistID, ok := ExtractPlaylistID(playlistURL)
	if !ok {
		return models.GeneratedCourse{}, app_errors.ErrInvalidPlaylistURL
	}

	log := s.log.With("playlist_id", playlistID)

	videos, err := s.catalog.PlaylistVideos(ctx, playlistID)
	if err != nil {
		return models.GeneratedCourse{}, fmt.Errorf("fetch playlist videos: %w", err)
	}
	if len(videos) == 0 {
		return models.GeneratedCourse{}, app_errors.ErrNoVideos
	}
	log.Info("process playlist: fetched videos", "count", len(videos))

	text, err := s.generate(ctx, generation.BuildPayload(videos))
	if err != nil {
		return models.GeneratedCourse{}, fmt.Errorf("generate course: %w", err)
	}

	data, err := s.extractor.Extract(text)
	if err != nil {
		log.ErrorErr("process playlist: failed to extract course JSON", err)
		return models.GeneratedCourse{}, &app_errors.ParseError{Raw: text, Err: err}
	}
	generated, err := course.FromMap(data)
	if err != nil {
		log.ErrorErr("process playlist: generated JSON is not a course", err)
		return models.GeneratedCourse{}, &app_errors.ParseError{Raw: text, Err: err}
	}

	raw := make([]string, len(videos))
	for i, v := range videos {
		raw[i] = v.Title
	}
	generated.Source = playlistURL
	generated.Raw = raw

	title := generated.Title
	if title == "" {
		title = fallbackTitle
	}

	return models.GeneratedCourse{
		ID:     fmt.Sprintf("course_%d", s.now().UnixMilli()),
		Title:  title,
		Source: playlistURL,
		Raw:    raw,
		Course: generated,
	}, nil
}

func (s *PlaylistService) generate(ctx context.Context, p generation.Payload) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.generator.Generate(ctx, p)
}

// Package youtube lists playlist entries through the YouTube Data API.
package youtube

import (
	"TubeCourse/internal/clients/upstream"
	"TubeCourse/internal/models"
	"TubeCourse/pkg/logger"
	"context"
	"fmt"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

const DefaultMaxResults = 50

type Client struct {
	log        logger.Log
	svc        *yt.Service
	maxResults int64
}

// New builds a client authenticated with apiKey. Extra options are appended
// after the key, so tests can point the client at a local server.
func New(ctx context.Context, apiKey string, maxResults int64, log logger.Log, opts ...option.ClientOption) (*Client, error) {
	if maxResults <= 0 || maxResults > DefaultMaxResults {
		maxResults = DefaultMaxResults
	}
	if apiKey != "" {
		opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	} else {
		// requests go out unauthenticated and fail upstream with the API's own error
		opts = append([]option.ClientOption{option.WithoutAuthentication()}, opts...)
	}
	svc, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &Client{log: log, svc: svc, maxResults: maxResults}, nil
}

// PlaylistVideos returns the first page of the playlist in playlist order.
// Entries without a title or video id are skipped.
func (c *Client) PlaylistVideos(ctx context.Context, playlistID string) ([]models.Video, error) {
	resp, err := c.svc.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(c.maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, upstream.Wrap("YouTube", err)
	}

	videos := make([]models.Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		sn := item.Snippet
		if sn == nil || sn.Title == "" || sn.ResourceId == nil || sn.ResourceId.VideoId == "" {
			c.log.Debug("youtube: skipping playlist item", "item_id", item.Id)
			continue
		}
		videos = append(videos, models.Video{
			Title:    sn.Title,
			VideoURL: models.WatchURL(sn.ResourceId.VideoId),
		})
	}
	return videos, nil
}

package playlist

import (
	"TubeCourse/internal/app_errors"
	"TubeCourse/internal/models"
	"TubeCourse/pkg/logger"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PlaylistService interface {
	ProcessPlaylist(ctx context.Context, playlistURL string) (models.GeneratedCourse, error)
}

type PlaylistHandler struct {
	log     logger.Log
	service PlaylistService
}

func NewPlaylistHandler(l logger.Log, s PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{
		log:     l,
		service: s,
	}
}

type processPlaylistRequest struct {
	PlaylistURL string `json:"playlistUrl"`
}

func (h *PlaylistHandler) ProcessPlaylist(c *gin.Context) {
	var input processPlaylistRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing playlistUrl"})
		return
	}

	generated, err := h.service.ProcessPlaylist(c.Request.Context(), input.PlaylistURL)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, generated)
}

func (h *PlaylistHandler) writeError(c *gin.Context, err error) {
	var parseErr *app_errors.ParseError
	var upstreamErr *app_errors.UpstreamError

	switch {
	case errors.Is(err, app_errors.ErrMissingPlaylistURL):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing playlistUrl"})
	case errors.Is(err, app_errors.ErrInvalidPlaylistURL):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid playlist URL"})
	case errors.Is(err, app_errors.ErrNoVideos):
		c.JSON(http.StatusNotFound, gin.H{"error": "No videos found in playlist."})
	case errors.As(err, &parseErr):
		h.log.ErrorErr("process playlist: failed to parse generated course", err, "raw_length", len(parseErr.Raw))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":         "Failed to parse course content from AI. Response was not valid JSON.",
			"rawAIResponse": parseErr.Raw,
		})
	case errors.As(err, &upstreamErr) && upstreamErr.StatusCode > 0:
		h.log.ErrorErr("process playlist: upstream API error", err, "service", upstreamErr.Service)
		c.JSON(upstreamErr.StatusCode, gin.H{
			"error": fmt.Sprintf("%s API Error: %d - %s", upstreamErr.Service, upstreamErr.StatusCode, upstreamErr.Message),
		})
	case upstreamErr != nil:
		h.log.ErrorErr("process playlist: upstream API error without status", err, "service", upstreamErr.Service)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process playlist due to an internal error.",
			"details": upstreamErr.Error(),
		})
	default:
		h.log.ErrorErr("process playlist: internal error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process playlist due to an internal error."})
	}
}

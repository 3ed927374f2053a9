package course

import (
	"TubeCourse/internal/app_errors"
	"TubeCourse/internal/export"
	"TubeCourse/pkg/logger"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ExportService interface {
	ExportCourse(ctx context.Context, id string, format export.Format) (export.File, error)
	PublishExport(ctx context.Context, id string, format export.Format) (string, error)
}

type ExportHandler struct {
	log     logger.Log
	service ExportService
}

func NewExportHandler(l logger.Log, s ExportService) *ExportHandler {
	return &ExportHandler{
		log:     l,
		service: s,
	}
}

func (h *ExportHandler) exportError(c *gin.Context, id string, err error) {
	switch {
	case errors.Is(err, app_errors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
	case errors.Is(err, app_errors.ErrUnknownExportFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, app_errors.ErrExportsDisabled):
		c.JSON(http.StatusNotImplemented, gin.H{"error": err.Error()})
	default:
		h.log.ErrorErr("export course failed", err, "course_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}

// Download streams the rendered course as an attachment.
func (h *ExportHandler) Download(c *gin.Context) {
	id := c.Param("course_id")
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		h.exportError(c, id, err)
		return
	}

	file, err := h.service.ExportCourse(c.Request.Context(), id, format)
	if err != nil {
		h.exportError(c, id, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

func (h *ExportHandler) Publish(c *gin.Context) {
	id := c.Param("course_id")
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		h.exportError(c, id, err)
		return
	}

	url, err := h.service.PublishExport(c.Request.Context(), id, format)
	if err != nil {
		h.exportError(c, id, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

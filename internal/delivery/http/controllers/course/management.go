package course

import (
	"TubeCourse/internal/app_errors"
	"TubeCourse/internal/models"
	"TubeCourse/pkg/logger"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ManagementService interface {
	CreateCourse(ctx context.Context, body map[string]any) (models.Course, error)
	UpdateCourse(ctx context.Context, id string, body map[string]any) (models.Course, error)
}

type ManagementHandler struct {
	log     logger.Log
	service ManagementService
}

func NewManagementHandler(l logger.Log, s ManagementService) *ManagementHandler {
	return &ManagementHandler{
		log:     l,
		service: s,
	}
}

func validationDetails(err error) ([]string, bool) {
	var vErr *app_errors.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Details, true
	}
	return nil, false
}

func (h *ManagementHandler) CreateCourse(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data", "details": []string{err.Error()}})
		return
	}

	course, err := h.service.CreateCourse(c.Request.Context(), body)
	if err != nil {
		if details, ok := validationDetails(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data", "details": details})
			return
		}
		h.log.ErrorErr("create course failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, course)
}

func (h *ManagementHandler) UpdateCourse(c *gin.Context) {
	id := c.Param("course_id")

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Update failed", "details": []string{err.Error()}})
		return
	}

	course, err := h.service.UpdateCourse(c.Request.Context(), id, body)
	if err != nil {
		if details, ok := validationDetails(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Update failed", "details": details})
			return
		}
		switch {
		case errors.Is(err, app_errors.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		default:
			h.log.ErrorErr("update course failed", err, "course_id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}
	c.JSON(http.StatusOK, course)
}

package course

import (
	"TubeCourse/internal/app_errors"
	"TubeCourse/internal/models"
	"TubeCourse/pkg/logger"
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type QueryService interface {
	CourseByID(ctx context.Context, id string) (models.Course, error)
	SearchCourses(ctx context.Context, query string, size int) ([]models.Course, error)
	CourseStats(ctx context.Context, id string) (models.CourseStats, error)
}

type QueryHandler struct {
	log     logger.Log
	service QueryService
}

func NewQueryHandler(log logger.Log, s QueryService) *QueryHandler {
	return &QueryHandler{
		log:     log,
		service: s,
	}
}

// courseError writes the response for a failed lookup by id.
func (h *QueryHandler) courseError(c *gin.Context, id string, err error) {
	if errors.Is(err, app_errors.ErrCourseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	h.log.ErrorErr("load course failed", err, "course_id", id)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
}

func (h *QueryHandler) CourseByID(c *gin.Context) {
	id := c.Param("course_id")
	course, err := h.service.CourseByID(c.Request.Context(), id)
	if err != nil {
		h.courseError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *QueryHandler) CourseStats(c *gin.Context) {
	id := c.Param("course_id")
	stats, err := h.service.CourseStats(c.Request.Context(), id)
	if err != nil {
		h.courseError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *QueryHandler) SearchCourses(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	limit := 0
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			h.log.ErrorErr("invalid limit parameter", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = v
	}

	courses, err := h.service.SearchCourses(c.Request.Context(), q, limit)
	if err != nil {
		if errors.Is(err, app_errors.ErrSearchDisabled) {
			c.JSON(http.StatusNotImplemented, gin.H{"error": err.Error()})
			return
		}
		h.log.ErrorErr("search courses failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search courses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":   len(courses),
		"courses": courses,
	})
}

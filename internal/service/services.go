package service

import (
	"TubeCourse/internal/service/course"
	"TubeCourse/internal/service/playlist"
)

type Collection struct {
	*course.CourseService
	*playlist.PlaylistService
}

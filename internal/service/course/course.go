package course

import (
	"TubeCourse/internal/app_errors"
	"TubeCourse/internal/export"
	"TubeCourse/internal/models"
	"TubeCourse/pkg/logger"
	"context"
	"fmt"
)

const defaultSearchSize = 20

type courseRepo interface {
	Create(ctx context.Context, course models.Course) (models.Course, error)
	Get(ctx context.Context, id string) (models.Course, error)
	Update(ctx context.Context, id string, course models.Course) (models.Course, error)
}

type searchRepo interface {
	Index(ctx context.Context, course models.Course) error
	Search(ctx context.Context, query string, size int) ([]string, error)
}

type exportRepo interface {
	UploadExport(ctx context.Context, courseID string, file export.File) (objectKey string, err error)
	ExportURL(ctx context.Context, objectKey string) (string, error)
}

type Option func(*CourseService)

// WithSearch enables indexing and full-text search.
func WithSearch(r searchRepo) Option {
	return func(s *CourseService) { s.searchRepo = r }
}

// WithExports enables publishing exports to object storage.
func WithExports(r exportRepo) Option {
	return func(s *CourseService) { s.exportRepo = r }
}

type CourseService struct {
	log        logger.Log
	courseRepo courseRepo
	searchRepo searchRepo
	exportRepo exportRepo
}

func NewCourseService(log logger.Log, courseRepo courseRepo, opts ...Option) *CourseService {
	s := &CourseService{
		log:        log,
		courseRepo: courseRepo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// decodeDocument turns a request body into a validated course.
func decodeDocument(body map[string]any) (models.Course, error) {
	course, err := FromMap(body)
	if err != nil {
		return models.Course{}, &app_errors.ValidationError{Details: []string{err.Error()}}
	}
	if err := Validate(&course); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (s *CourseService) CreateCourse(ctx context.Context, body map[string]any) (models.Course, error) {
	course, err := decodeDocument(body)
	if err != nil {
		return models.Course{}, err
	}
	created, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return models.Course{}, fmt.Errorf("create course: %w", err)
	}
	s.index(ctx, created)
	return created, nil
}

func (s *CourseService) CourseByID(ctx context.Context, id string) (models.Course, error) {
	return s.courseRepo.Get(ctx, id)
}

// UpdateCourse replaces the stored document. Fields missing from body are
// reset, matching a full-document write.
func (s *CourseService) UpdateCourse(ctx context.Context, id string, body map[string]any) (models.Course, error) {
	course, err := decodeDocument(body)
	if err != nil {
		return models.Course{}, err
	}
	updated, err := s.courseRepo.Update(ctx, id, course)
	if err != nil {
		return models.Course{}, err
	}
	s.index(ctx, updated)
	return updated, nil
}

func (s *CourseService) index(ctx context.Context, course models.Course) {
	if s.searchRepo == nil {
		return
	}
	if err := s.searchRepo.Index(ctx, course); err != nil {
		s.log.ErrorErr("index course failed", err, "course_id", course.ID)
	}
}

// SearchCourses returns stored courses matching query, best match first.
// Ids the store no longer knows are skipped.
func (s *CourseService) SearchCourses(ctx context.Context, query string, size int) ([]models.Course, error) {
	if s.searchRepo == nil {
		return nil, app_errors.ErrSearchDisabled
	}
	if size <= 0 {
		size = defaultSearchSize
	}
	ids, err := s.searchRepo.Search(ctx, query, size)
	if err != nil {
		return nil, fmt.Errorf("search courses: %w", err)
	}

	courses := make([]models.Course, 0, len(ids))
	for _, id := range ids {
		course, err := s.courseRepo.Get(ctx, id)
		if err != nil {
			s.log.ErrorErr("search: failed to load course by id", err, "course_id", id)
			continue
		}
		courses = append(courses, course)
	}
	return courses, nil
}

func (s *CourseService) ExportCourse(ctx context.Context, id string, format export.Format) (export.File, error) {
	course, err := s.courseRepo.Get(ctx, id)
	if err != nil {
		return export.File{}, err
	}
	return export.Render(&course, format)
}

// PublishExport uploads the rendered course and returns a presigned URL.
func (s *CourseService) PublishExport(ctx context.Context, id string, format export.Format) (string, error) {
	if s.exportRepo == nil {
		return "", app_errors.ErrExportsDisabled
	}
	file, err := s.ExportCourse(ctx, id, format)
	if err != nil {
		return "", err
	}
	key, err := s.exportRepo.UploadExport(ctx, id, file)
	if err != nil {
		return "", fmt.Errorf("upload export: %w", err)
	}
	return s.exportRepo.ExportURL(ctx, key)
}

func (s *CourseService) CourseStats(ctx context.Context, id string) (models.CourseStats, error) {
	course, err := s.courseRepo.Get(ctx, id)
	if err != nil {
		return models.CourseStats{}, err
	}
	return course.Stats(), nil
}

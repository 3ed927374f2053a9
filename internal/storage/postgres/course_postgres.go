package postgres

import (
	"TubeCourse/internal/app_errors"
	"TubeCourse/internal/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CoursePostgres stores each course as one JSONB document.
type CoursePostgres struct {
	db *pgxpool.Pool
}

func NewCoursePostgres(db *pgxpool.Pool) *CoursePostgres {
	return &CoursePostgres{db: db}
}

// document strips the fields that live in their own columns.
func document(course models.Course) ([]byte, error) {
	course.ID = ""
	course.CreatedAt = nil
	course.UpdatedAt = nil
	return json.Marshal(course)
}

func (r *CoursePostgres) Create(ctx context.Context, course models.Course) (models.Course, error) {
	id := uuid.New()
	now := time.Now().UTC()
	doc, err := document(course)
	if err != nil {
		return models.Course{}, fmt.Errorf("marshal course: %w", err)
	}

	query := `
		INSERT INTO courses (id, title, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	var created, updated time.Time
	err = r.db.QueryRow(ctx, query, id, course.Title, doc, now, now).Scan(&created, &updated)
	if err != nil {
		return models.Course{}, err
	}
	course.ID = id.String()
	course.CreatedAt = &created
	course.UpdatedAt = &updated
	return course, nil
}

func (r *CoursePostgres) Get(ctx context.Context, id string) (models.Course, error) {
	courseID, err := uuid.Parse(id)
	if err != nil {
		return models.Course{}, app_errors.ErrCourseNotFound
	}

	const query = `
        SELECT document, created_at, updated_at
        FROM courses
        WHERE id = $1
    `
	var (
		doc              []byte
		created, updated time.Time
	)
	err = r.db.QueryRow(ctx, query, courseID).Scan(&doc, &created, &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Course{}, app_errors.ErrCourseNotFound
		}
		return models.Course{}, err
	}

	var course models.Course
	if err := json.Unmarshal(doc, &course); err != nil {
		return models.Course{}, fmt.Errorf("unmarshal course %s: %w", id, err)
	}
	course.ID = courseID.String()
	course.CreatedAt = &created
	course.UpdatedAt = &updated
	return course, nil
}

func (r *CoursePostgres) Update(ctx context.Context, id string, course models.Course) (models.Course, error) {
	courseID, err := uuid.Parse(id)
	if err != nil {
		return models.Course{}, app_errors.ErrCourseNotFound
	}
	doc, err := document(course)
	if err != nil {
		return models.Course{}, fmt.Errorf("marshal course: %w", err)
	}

	const query = `
        UPDATE courses
           SET title      = $2,
               document   = $3,
               updated_at = $4
         WHERE id = $1
     RETURNING created_at, updated_at
    `
	var created, updated time.Time
	err = r.db.QueryRow(ctx, query, courseID, course.Title, doc, time.Now().UTC()).Scan(&created, &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Course{}, app_errors.ErrCourseNotFound
		}
		return models.Course{}, err
	}
	course.ID = courseID.String()
	course.CreatedAt = &created
	course.UpdatedAt = &updated
	return course, nil
}

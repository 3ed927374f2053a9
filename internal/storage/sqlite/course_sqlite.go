// Package sqlite stores courses in a single-file SQLite database.
package sqlite

import (
	"TubeCourse/internal/app_errors"
	"TubeCourse/internal/models"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const timeLayout = time.RFC3339Nano

type CourseSQLite struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*CourseSQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: init schema: %w", err)
	}
	return &CourseSQLite{db: db, now: func() time.Time { return time.Now().UTC() }}, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS courses (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL DEFAULT '',
		document   TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return err
}

func (s *CourseSQLite) Close() error {
	return s.db.Close()
}

func encode(course models.Course) (string, error) {
	course.ID = ""
	course.CreatedAt = nil
	course.UpdatedAt = nil
	b, err := json.Marshal(course)
	return string(b), err
}

func (s *CourseSQLite) Create(ctx context.Context, course models.Course) (models.Course, error) {
	doc, err := encode(course)
	if err != nil {
		return models.Course{}, fmt.Errorf("marshal course: %w", err)
	}
	id := uuid.NewString()
	now := s.now()
	stamp := now.Format(timeLayout)

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO courses (id, title, document, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, course.Title, doc, stamp, stamp,
	)
	if err != nil {
		return models.Course{}, fmt.Errorf("insert course: %w", err)
	}
	course.ID = id
	course.CreatedAt = &now
	course.UpdatedAt = &now
	return course, nil
}

func (s *CourseSQLite) Get(ctx context.Context, id string) (models.Course, error) {
	var doc, created, updated string
	err := s.db.QueryRowContext(ctx,
		`SELECT document, created_at, updated_at FROM courses WHERE id = ?`, id,
	).Scan(&doc, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Course{}, app_errors.ErrCourseNotFound
	}
	if err != nil {
		return models.Course{}, err
	}

	var course models.Course
	if err := json.Unmarshal([]byte(doc), &course); err != nil {
		return models.Course{}, fmt.Errorf("unmarshal course %s: %w", id, err)
	}
	ct, err := time.Parse(timeLayout, created)
	if err != nil {
		return models.Course{}, err
	}
	ut, err := time.Parse(timeLayout, updated)
	if err != nil {
		return models.Course{}, err
	}
	course.ID = id
	course.CreatedAt = &ct
	course.UpdatedAt = &ut
	return course, nil
}

func (s *CourseSQLite) Update(ctx context.Context, id string, course models.Course) (models.Course, error) {
	doc, err := encode(course)
	if err != nil {
		return models.Course{}, fmt.Errorf("marshal course: %w", err)
	}
	now := s.now()

	var created string
	err = s.db.QueryRowContext(ctx,
		`UPDATE courses SET title = ?, document = ?, updated_at = ? WHERE id = ? RETURNING created_at`,
		course.Title, doc, now.Format(timeLayout), id,
	).Scan(&created)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Course{}, app_errors.ErrCourseNotFound
	}
	if err != nil {
		return models.Course{}, fmt.Errorf("update course: %w", err)
	}
	ct, err := time.Parse(timeLayout, created)
	if err != nil {
		return models.Course{}, err
	}
	course.ID = id
	course.CreatedAt = &ct
	course.UpdatedAt = &now
	return course, nil
}

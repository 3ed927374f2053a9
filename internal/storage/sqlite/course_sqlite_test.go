package sqlite

import (
	"TubeCourse/internal/app_errors"
	"TubeCourse/internal/models"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *CourseSQLite {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "courses.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCreateGetUpdate(t *testing.T) {
	s := openTestStore(t)
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return t0 }
	ctx := context.Background()

	answer := 2
	url := "https://www.youtube.com/watch?v=a"
	in := models.Course{
		Title: "Go",
		Modules: []models.Module{{
			Title: "m",
			Lessons: []models.Lesson{{
				Title:    "l",
				VideoURL: &url,
				Quiz:     []models.QuizQuestion{{Question: "q", Options: []string{"a", "b", "c"}, CorrectAnswer: &answer}},
			}},
		}},
		Projects: []models.Project{},
	}

	created, err := s.Create(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	t1 := t0.Add(time.Minute)
	s.now = func() time.Time { return t1 }
	updated, err := s.Update(ctx, created.ID, models.Course{Title: "Go 2", Modules: []models.Module{}})
	require.NoError(t, err)
	assert.Equal(t, t0, *updated.CreatedAt)
	assert.Equal(t, t1, *updated.UpdatedAt)

	got, err = s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Empty(t, got.Modules)
}

func TestNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.True(t, errors.Is(err, app_errors.ErrCourseNotFound))

	_, err = s.Update(ctx, "missing", models.Course{})
	assert.True(t, errors.Is(err, app_errors.ErrCourseNotFound))
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	require.NoError(t, err)
	created, err := s.Create(ctx, models.Course{Title: "Persisted"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Persisted", got.Title)
}

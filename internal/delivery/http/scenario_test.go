package http

import (
	"TubeCourse/internal/models"
	"TubeCourse/internal/service"
	"TubeCourse/internal/service/course"
	"TubeCourse/internal/service/generation"
	"TubeCourse/internal/service/playlist"
	"TubeCourse/internal/storage/memory"
	"TubeCourse/pkg/jsonextract"
	"TubeCourse/pkg/logger"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tenVideoCatalog struct{}

func (tenVideoCatalog) PlaylistVideos(_ context.Context, _ string) ([]models.Video, error) {
	videos := make([]models.Video, 10)
	for i := range videos {
		videos[i] = models.Video{
			Title:    fmt.Sprintf("Video %d", i+1),
			VideoURL: models.WatchURL(fmt.Sprintf("v%d", i+1)),
		}
	}
	return videos, nil
}

// scriptedGenerator checks the request it receives and answers with a
// four-module course covering every video.
type scriptedGenerator struct {
	t      *testing.T
	called bool
}

func (g *scriptedGenerator) Generate(_ context.Context, p generation.Payload) (string, error) {
	g.called = true
	assert.Contains(g.t, p.Prompt, "equal to the number of videos listed (10)")
	assert.Contains(g.t, p.Prompt, "10. Video 10 - https://www.youtube.com/watch?v=v10")
	assert.Equal(g.t, generation.MIMETypeJSON, p.Config.ResponseMIMEType)
	require.NotNil(g.t, p.Config.ResponseSchema)

	sizes := []int{3, 3, 2, 2}
	modules := make([]any, 0, len(sizes))
	video := 1
	for m, size := range sizes {
		lessons := make([]any, 0, size)
		for i := 0; i < size; i++ {
			lessons = append(lessons, map[string]any{
				"title":       fmt.Sprintf("Video %d", video),
				"videoURL":    models.WatchURL(fmt.Sprintf("v%d", video)),
				"description": "Summary",
				"quiz": []any{
					map[string]any{"question": "Medium?", "options": []any{"a", "b", "c", "d"}, "correctAnswer": 1, "difficulty": "medium"},
					map[string]any{"question": "Hard?", "options": []any{"a", "b", "c", "d"}, "correctAnswer": 3, "difficulty": "hard"},
				},
			})
			video++
		}
		modules = append(modules, map[string]any{
			"title":       fmt.Sprintf("Module %d", m+1),
			"description": "Grouped lessons",
			"lessons":     lessons,
		})
	}
	body, err := json.MarshalIndent(map[string]any{
		"title":             "Ten Video Course",
		"targetAudience":    "Beginners",
		"estimatedDuration": "5 hours",
		"modules":           modules,
		"projects": []any{map[string]any{
			"title":            "Capstone",
			"description":      "Apply everything",
			"difficulty":       "Intermediate",
			"keySkillsCovered": []any{"a", "b", "c"},
			"estimatedTime":    "3 hours",
			"milestones":       []any{"one", "two", "three"},
			"suggestedTools":   []any{"go", "git"},
			"bonusFeatures":    []any{"tests"},
		}},
	}, "", "  ")
	require.NoError(g.t, err)
	return "```json\n" + string(body) + "\n```", nil
}

func TestTenVideoPlaylistScenario(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logger.NewDiscard()
	gen := &scriptedGenerator{t: t}
	r := InitRoutes(log, service.Collection{
		CourseService: course.NewCourseService(log, memory.NewCourseMemory()),
		PlaylistService: playlist.NewPlaylistService(log, tenVideoCatalog{}, gen,
			jsonextract.New(log, jsonextract.Options{}), 0),
	}, nil)

	w := do(t, r, http.MethodPost, "/api/process-playlist", map[string]any{"playlistUrl": playlistURL})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.True(t, gen.called)
	generated := decode(t, w)
	assert.Len(t, generated["raw"], 10)

	w = do(t, r, http.MethodPost, "/api/courses", generated["course"])
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode(t, w)["id"].(string)

	w = do(t, r, http.MethodGet, "/api/courses/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var saved models.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	require.Len(t, saved.Modules, 4)

	lessons := 0
	for _, m := range saved.Modules {
		for _, l := range m.Lessons {
			lessons++
			var difficulties []string
			for _, q := range l.Quiz {
				difficulties = append(difficulties, q.Difficulty)
			}
			assert.Contains(t, difficulties, models.QuizDifficultyMedium, l.Title)
			assert.Contains(t, difficulties, models.QuizDifficultyHard, l.Title)
		}
	}
	assert.Equal(t, 10, lessons)
	require.Len(t, saved.Projects, 1)
	assert.Equal(t, models.ProjectIntermediate, saved.Projects[0].Difficulty)
	assert.Equal(t, playlistURL, saved.Source)

	w = do(t, r, http.MethodGet, "/api/courses/"+id+"/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(20), decode(t, w)["quizQuestions"])
}

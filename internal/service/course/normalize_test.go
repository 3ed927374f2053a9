package course

import (
	"TubeCourse/internal/models"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSON(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func quizAnswer(t *testing.T, raw string) *int {
	t.Helper()
	m := decodeJSON(t, `{"modules":[{"lessons":[{"quiz":[{"question":"q","options":["a","b","c"],"correctAnswer":`+raw+`}]}]}]}`)
	c, err := FromMap(m)
	require.NoError(t, err)
	return c.Modules[0].Lessons[0].Quiz[0].CorrectAnswer
}

func TestFromMapCorrectAnswerCoercion(t *testing.T) {
	tests := []struct {
		raw  string
		want *int
	}{
		{raw: `2`, want: intPtr(2)},
		{raw: `0`, want: intPtr(0)},
		{raw: `1.0`, want: intPtr(1)},
		{raw: `"1"`, want: intPtr(1)},
		{raw: `" 2 "`, want: intPtr(2)},
		{raw: `1.5`, want: nil},
		{raw: `"b"`, want: nil},
		{raw: `null`, want: nil},
		{raw: `true`, want: nil},
		{raw: `[1]`, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, quizAnswer(t, tt.raw))
		})
	}
}

func TestFromMapFullDocument(t *testing.T) {
	m := decodeJSON(t, `{
		"title": "Go",
		"targetAudience": "Beginners",
		"estimatedDuration": "3 hours",
		"modules": [{
			"title": "Basics",
			"description": "Start here",
			"lessons": [{
				"title": "Hello",
				"description": "First program",
				"videoURL": "https://www.youtube.com/watch?v=a",
				"duration": "5:10",
				"quiz": [{"question": "q", "options": ["x", "y"], "correctAnswer": 1, "difficulty": "easy"}]
			}, {
				"title": "No link",
				"videoURL": null
			}]
		}],
		"projects": [{"title": "P", "difficulty": "Beginner", "milestones": ["m1"]}],
		"unknownField": 42
	}`)

	c, err := FromMap(m)
	require.NoError(t, err)

	assert.Equal(t, "Go", c.Title)
	assert.Equal(t, "Beginners", c.TargetAudience)
	require.Len(t, c.Modules, 1)
	require.Len(t, c.Modules[0].Lessons, 2)

	first := c.Modules[0].Lessons[0]
	require.NotNil(t, first.VideoURL)
	assert.Equal(t, "https://www.youtube.com/watch?v=a", *first.VideoURL)
	assert.Equal(t, "5:10", first.Duration)
	assert.Equal(t, "easy", first.Quiz[0].Difficulty, "difficulty drift is kept")
	assert.Equal(t, intPtr(1), first.Quiz[0].CorrectAnswer)

	second := c.Modules[0].Lessons[1]
	assert.Nil(t, second.VideoURL)
	assert.Equal(t, []models.QuizQuestion{}, second.Quiz)

	require.Len(t, c.Projects, 1)
	assert.Equal(t, []string{"m1"}, c.Projects[0].Milestones)
	assert.Equal(t, []string{}, c.Projects[0].KeySkillsCovered)
	assert.Equal(t, []string{}, c.Projects[0].SuggestedTools)
}

func TestFromMapRejectsWrongShape(t *testing.T) {
	_, err := FromMap(map[string]any{"modules": "not a list of modules"})
	require.Error(t, err)
}

func TestNormalizeDefaultsAndIdempotence(t *testing.T) {
	c := models.Course{
		Modules: []models.Module{{
			Lessons: []models.Lesson{{Quiz: []models.QuizQuestion{{}}}},
		}, {}},
		Projects: []models.Project{{}},
	}

	Normalize(&c)

	assert.Equal(t, []models.Lesson{}, c.Modules[1].Lessons)
	assert.Equal(t, []string{}, c.Modules[0].Lessons[0].Quiz[0].Options)
	assert.Equal(t, []string{}, c.Projects[0].Milestones)
	assert.Nil(t, c.Projects[0].BonusFeatures)

	once := c.Clone()
	Normalize(&c)
	assert.Equal(t, once, c)

	var empty models.Course
	Normalize(&empty)
	assert.Equal(t, []models.Module{}, empty.Modules)
	assert.Equal(t, []models.Project{}, empty.Projects)
}

package course

import (
	"TubeCourse/internal/models"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var intPtrType = reflect.TypeOf((*int)(nil))

// FromMap decodes an extracted JSON object into a course and normalizes it.
// Scalars are coerced where the meaning is unambiguous; a correctAnswer that
// is not an integer decodes as unknown.
func FromMap(m map[string]any) (models.Course, error) {
	var c models.Course
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(correctAnswerHook),
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           &c,
	})
	if err != nil {
		return models.Course{}, err
	}
	if err := dec.Decode(m); err != nil {
		return models.Course{}, fmt.Errorf("decode course: %w", err)
	}
	Normalize(&c)
	return c, nil
}

// correctAnswerHook turns the raw correctAnswer value into an int, or into
// nil when it has no integer reading.
func correctAnswerHook(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != intPtrType {
		return data, nil
	}
	idx, ok := integerValue(data)
	if !ok {
		return nil, nil
	}
	return idx, nil
}

func integerValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if math.Trunc(n) != n || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// Normalize replaces missing sequences with empty ones. It is idempotent.
func Normalize(c *models.Course) {
	if c.Modules == nil {
		c.Modules = []models.Module{}
	}
	if c.Projects == nil {
		c.Projects = []models.Project{}
	}
	for i := range c.Modules {
		m := &c.Modules[i]
		if m.Lessons == nil {
			m.Lessons = []models.Lesson{}
		}
		for j := range m.Lessons {
			l := &m.Lessons[j]
			if l.Quiz == nil {
				l.Quiz = []models.QuizQuestion{}
			}
			for k := range l.Quiz {
				if l.Quiz[k].Options == nil {
					l.Quiz[k].Options = []string{}
				}
			}
		}
	}
	for i := range c.Projects {
		p := &c.Projects[i]
		if p.KeySkillsCovered == nil {
			p.KeySkillsCovered = []string{}
		}
		if p.Milestones == nil {
			p.Milestones = []string{}
		}
		if p.SuggestedTools == nil {
			p.SuggestedTools = []string{}
		}
	}
}

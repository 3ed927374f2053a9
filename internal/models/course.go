package models

import (
	"time"
)

const (
	QuizDifficultyMedium = "medium"
	QuizDifficultyHard   = "hard"

	ProjectBeginner     = "Beginner"
	ProjectIntermediate = "Intermediate"
	ProjectAdvanced     = "Advanced"
)

type Course struct {
	ID                string     `json:"id,omitempty" mapstructure:"id"`
	Title             string     `json:"title" mapstructure:"title"`
	TargetAudience    string     `json:"targetAudience,omitempty" mapstructure:"targetAudience"`
	EstimatedDuration string     `json:"estimatedDuration,omitempty" mapstructure:"estimatedDuration"`
	Modules           []Module   `json:"modules" mapstructure:"modules"`
	Projects          []Project  `json:"projects" mapstructure:"projects" validate:"dive"`
	Raw               []string   `json:"raw,omitempty" mapstructure:"raw"`
	Source            string     `json:"source,omitempty" mapstructure:"source"`
	CreatedAt         *time.Time `json:"createdAt,omitempty" mapstructure:"-"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty" mapstructure:"-"`
}

type Module struct {
	Title       string   `json:"title" mapstructure:"title"`
	Description string   `json:"description" mapstructure:"description"`
	Lessons     []Lesson `json:"lessons" mapstructure:"lessons"`
}

type Lesson struct {
	Title       string         `json:"title" mapstructure:"title"`
	Description string         `json:"description" mapstructure:"description"`
	VideoURL    *string        `json:"videoURL" mapstructure:"videoURL"`
	Quiz        []QuizQuestion `json:"quiz" mapstructure:"quiz"`
	Duration    string         `json:"duration,omitempty" mapstructure:"duration"`
}

type QuizQuestion struct {
	Question string   `json:"question" mapstructure:"question"`
	Options  []string `json:"options" mapstructure:"options"`
	// CorrectAnswer is nil when the source value was not an integer.
	CorrectAnswer *int   `json:"correctAnswer" mapstructure:"correctAnswer"`
	Difficulty    string `json:"difficulty,omitempty" mapstructure:"difficulty"`
}

// CorrectIndex returns the index of the correct option, or false when it is
// unknown or points outside Options.
func (q QuizQuestion) CorrectIndex() (int, bool) {
	if q.CorrectAnswer == nil {
		return 0, false
	}
	i := *q.CorrectAnswer
	if i < 0 || i >= len(q.Options) {
		return 0, false
	}
	return i, true
}

type Project struct {
	Title            string   `json:"title" mapstructure:"title"`
	Description      string   `json:"description" mapstructure:"description"`
	Difficulty       string   `json:"difficulty,omitempty" mapstructure:"difficulty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	KeySkillsCovered []string `json:"keySkillsCovered" mapstructure:"keySkillsCovered"`
	EstimatedTime    string   `json:"estimatedTime,omitempty" mapstructure:"estimatedTime"`
	Milestones       []string `json:"milestones" mapstructure:"milestones"`
	SuggestedTools   []string `json:"suggestedTools" mapstructure:"suggestedTools"`
	BonusFeatures    []string `json:"bonusFeatures,omitempty" mapstructure:"bonusFeatures"`
}

type CourseStats struct {
	Modules       int `json:"modules"`
	Lessons       int `json:"lessons"`
	QuizQuestions int `json:"quizQuestions"`
	Projects      int `json:"projects"`
	Videos        int `json:"videos"`
}

func (c *Course) Stats() CourseStats {
	s := CourseStats{Modules: len(c.Modules), Projects: len(c.Projects)}
	for _, m := range c.Modules {
		s.Lessons += len(m.Lessons)
		for _, l := range m.Lessons {
			s.QuizQuestions += len(l.Quiz)
			if l.VideoURL != nil && *l.VideoURL != "" {
				s.Videos++
			}
		}
	}
	return s
}

// Clone returns a deep copy, so stores never hand out shared slices.
func (c *Course) Clone() Course {
	out := *c
	out.CreatedAt = cloneTime(c.CreatedAt)
	out.UpdatedAt = cloneTime(c.UpdatedAt)
	out.Raw = cloneStrings(c.Raw)

	if c.Modules != nil {
		out.Modules = make([]Module, len(c.Modules))
		for i, m := range c.Modules {
			out.Modules[i] = m
			if m.Lessons == nil {
				continue
			}
			out.Modules[i].Lessons = make([]Lesson, len(m.Lessons))
			for j, l := range m.Lessons {
				l.VideoURL = cloneString(l.VideoURL)
				if l.Quiz != nil {
					quiz := make([]QuizQuestion, len(l.Quiz))
					for k, q := range l.Quiz {
						q.Options = cloneStrings(q.Options)
						q.CorrectAnswer = cloneInt(q.CorrectAnswer)
						quiz[k] = q
					}
					l.Quiz = quiz
				}
				out.Modules[i].Lessons[j] = l
			}
		}
	}

	if c.Projects != nil {
		out.Projects = make([]Project, len(c.Projects))
		for i, p := range c.Projects {
			p.KeySkillsCovered = cloneStrings(p.KeySkillsCovered)
			p.Milestones = cloneStrings(p.Milestones)
			p.SuggestedTools = cloneStrings(p.SuggestedTools)
			p.BonusFeatures = cloneStrings(p.BonusFeatures)
			out.Projects[i] = p
		}
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

package export

import (
	"TubeCourse/internal/models"
	"fmt"
	"strings"
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Markdown renders the course outline with quizzes and projects.
func Markdown(c *models.Course) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", c.Title)
	fmt.Fprintf(&b, "**Target Audience:** %s\n", orNA(c.TargetAudience))
	fmt.Fprintf(&b, "**Estimated Duration:** %s\n\n", orNA(c.EstimatedDuration))

	if len(c.Modules) > 0 {
		b.WriteString("## Course Modules\n\n")
		for i, m := range c.Modules {
			writeModule(&b, i+1, m)
		}
	}

	if len(c.Projects) > 0 {
		b.WriteString("## Hands-on Projects\n\n")
		for i, p := range c.Projects {
			writeProject(&b, i+1, p)
		}
	}
	return b.String()
}

func writeModule(b *strings.Builder, n int, m models.Module) {
	fmt.Fprintf(b, "### Module %d: %s\n\n", n, m.Title)
	if m.Description != "" {
		fmt.Fprintf(b, "%s\n\n", m.Description)
	}
	for i, l := range m.Lessons {
		fmt.Fprintf(b, "#### Lesson %d: %s\n\n", i+1, l.Title)
		if l.Description != "" {
			fmt.Fprintf(b, "%s\n\n", l.Description)
		}
		if l.VideoURL != nil && *l.VideoURL != "" {
			fmt.Fprintf(b, "[Watch Video](%s)\n\n", *l.VideoURL)
		}
		if len(l.Quiz) == 0 {
			continue
		}
		b.WriteString("##### Quizzes\n\n")
		for j, q := range l.Quiz {
			writeQuestion(b, j+1, q)
		}
	}
}

func writeQuestion(b *strings.Builder, n int, q models.QuizQuestion) {
	fmt.Fprintf(b, "**Q%d (%s):** %s\n", n, q.Difficulty, q.Question)
	correct, known := q.CorrectIndex()
	for i, opt := range q.Options {
		mark := " "
		if known && i == correct {
			mark = "x"
		}
		fmt.Fprintf(b, "- [%s] %s\n", mark, opt)
	}
	answer := "Unknown"
	if known {
		answer = q.Options[correct]
	}
	fmt.Fprintf(b, "*Correct Answer: %s*\n\n", answer)
}

func writeProject(b *strings.Builder, n int, p models.Project) {
	fmt.Fprintf(b, "### Project %d: %s\n\n", n, p.Title)
	fmt.Fprintf(b, "%s\n\n", p.Description)
	fmt.Fprintf(b, "**Difficulty:** %s\n", p.Difficulty)
	fmt.Fprintf(b, "**Estimated Time:** %s\n", p.EstimatedTime)
	if len(p.KeySkillsCovered) > 0 {
		fmt.Fprintf(b, "**Key Skills:** %s\n", strings.Join(p.KeySkillsCovered, ", "))
	}
	if len(p.SuggestedTools) > 0 {
		fmt.Fprintf(b, "**Suggested Tools:** %s\n", strings.Join(p.SuggestedTools, ", "))
	}
	writeList(b, "Milestones", p.Milestones)
	writeList(b, "Bonus Features", p.BonusFeatures)
	b.WriteString("\n")
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s:**\n", label)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
}

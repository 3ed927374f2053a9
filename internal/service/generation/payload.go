// Package generation builds the prompt and structured-output configuration
// for turning a video list into a course.
package generation

import (
	"TubeCourse/internal/models"
	"fmt"
	"strings"
)

const (
	minModules = 3
	maxModules = 6

	MIMETypeJSON = "application/json"
)

type Config struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *Schema `json:"responseSchema"`
}

type Payload struct {
	Prompt string `json:"prompt"`
	Config Config `json:"generationConfig"`
}

const promptTemplate = `
You are an expert course designer.

Create a beginner-friendly course based on the following YouTube videos, each with its title and video URL:

%s

Instructions:
- The number of **lessons** must be equal to the number of videos listed (%d).
- Group related lessons into **%d to %d modules** based on content similarity.
- Each module should have a short description.
- Each **lesson** must include:
  - The exact **video title**
  - The **videoURL**
  - A short summary/description
  - At least **one medium-level quiz question**
  - At least **one hard-level quiz question**
- Include 1–2 practical projects at the end to apply the skills. For each project, provide:
  - A clear title and detailed description.
  - Its difficulty level (e.g., "Beginner", "Intermediate").
  - A list of 3-5 key skills covered.
  - An estimated time to complete.
  - 3-5 actionable milestones.
  - 2-3 suggested tools/technologies.
  - 1-2 bonus features for extending the project.
`

// BuildPayload lists the videos in order and asks for exactly one lesson per
// video.
func BuildPayload(videos []models.Video) Payload {
	lines := make([]string, len(videos))
	for i, v := range videos {
		lines[i] = fmt.Sprintf("%d. %s - %s", i+1, v.Title, v.VideoURL)
	}

	return Payload{
		Prompt: fmt.Sprintf(promptTemplate, strings.Join(lines, "\n"), len(videos), minModules, maxModules),
		Config: Config{
			ResponseMIMEType: MIMETypeJSON,
			ResponseSchema:   CourseSchema(),
		},
	}
}

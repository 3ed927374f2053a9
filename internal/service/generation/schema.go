package generation

const (
	TypeObject  = "OBJECT"
	TypeArray   = "ARRAY"
	TypeString  = "STRING"
	TypeInteger = "INTEGER"
)

// Schema is the structured-output description sent with a generation call.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
	MinItems    int                `json:"minItems,omitempty"`
	MaxItems    int                `json:"maxItems,omitempty"`
}

func str(desc string) *Schema {
	return &Schema{Type: TypeString, Description: desc}
}

func strList(desc string) *Schema {
	return &Schema{Type: TypeArray, Items: &Schema{Type: TypeString}, Description: desc}
}

func enum(desc string, values ...string) *Schema {
	return &Schema{Type: TypeString, Enum: values, Description: desc}
}

// CourseSchema mirrors models.Course.
func CourseSchema() *Schema {
	quiz := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"difficulty":    enum("Difficulty level of the quiz question", "medium", "hard"),
			"question":      str("Quiz question"),
			"options":       strList("Four possible answers"),
			"correctAnswer": {Type: TypeInteger, Description: "Index (0-3) of the correct option in the 'options' array"},
		},
		Required: []string{"difficulty", "question", "options", "correctAnswer"},
	}

	lesson := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"title":       str("Video title (must match original)"),
			"videoURL":    str("Video URL (must match original)"),
			"description": str("Short summary of the video content"),
			"quiz":        {Type: TypeArray, Items: quiz},
		},
		Required: []string{"title", "videoURL", "description", "quiz"},
	}

	module := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"title":       str("Module title"),
			"description": str("Module description"),
			"lessons":     {Type: TypeArray, Items: lesson},
		},
		Required: []string{"title", "description", "lessons"},
	}

	project := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"title":            str("Project title"),
			"description":      str("Detailed project description"),
			"difficulty":       enum("Difficulty level of the project", "Beginner", "Intermediate", "Advanced"),
			"keySkillsCovered": strList("List of key skills reinforced by this project"),
			"estimatedTime":    str("Estimated time to complete the project (e.g., '4-6 hours', '1 day')"),
			"milestones":       strList("Key steps or phases of the project"),
			"suggestedTools":   strList("Recommended tools or technologies for the project"),
			"bonusFeatures":    strList("Optional features to extend the project"),
		},
		Required: []string{"title", "description", "difficulty", "keySkillsCovered", "estimatedTime", "milestones", "suggestedTools"},
	}

	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"title":             str("Overall course title"),
			"targetAudience":    str("Who is this course for?"),
			"estimatedDuration": str("Estimated time to complete the course (e.g., '10 hours', '2 days')"),
			"modules":           {Type: TypeArray, Items: module, MinItems: minModules, MaxItems: maxModules},
			"projects":          {Type: TypeArray, Items: project},
		},
		Required: []string{"title", "targetAudience", "estimatedDuration", "modules"},
	}
}

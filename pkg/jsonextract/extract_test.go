package jsonextract

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string]any
	}{
		{
			name: "fenced json block with prose",
			text: "Here is your course:\n```json\n{\"title\": \"Go Basics\"}\n```\nEnjoy!",
			want: map[string]any{"title": "Go Basics"},
		},
		{
			name: "untagged fence",
			text: "```\n{\"title\": \"Go Basics\"}\n```",
			want: map[string]any{"title": "Go Basics"},
		},
		{
			name: "upper case tag",
			text: "```JSON\n{\"n\": 1}\n```",
			want: map[string]any{"n": float64(1)},
		},
		{
			name: "only first fenced block is used",
			text: "```json\n{\"a\": 1}\n```\nand also\n```json\n{\"b\": 2}\n```",
			want: map[string]any{"a": float64(1)},
		},
		{
			name: "prose around bare object",
			text: `Sure! {"title": "Go"} Hope that helps.`,
			want: map[string]any{"title": "Go"},
		},
		{
			name: "smart double quotes as delimiters",
			text: "{\u201ctitle\u201d: \u201cGo Basics\u201d, \u201cmodules\u201d: []}",
			want: map[string]any{"title": "Go Basics", "modules": []any{}},
		},
		{
			name: "smart single quotes become apostrophes",
			text: "{\"title\": \"Rob\u2019s course\"}",
			want: map[string]any{"title": "Rob's course"},
		},
		{
			name: "stray backslash is escaped",
			text: `{"path": "C:\dir"}`,
			want: map[string]any{"path": `C:\dir`},
		},
		{
			name: "escaped quotes survive",
			text: `{"question": "What does \"defer\" do?"}`,
			want: map[string]any{"question": `What does "defer" do?`},
		},
		{
			name: "commas inside values are kept",
			text: `{"description": "Loops, slices, and maps"}`,
			want: map[string]any{"description": "Loops, slices, and maps"},
		},
		{
			name: "unterminated value closed at line break",
			text: "{\n  \"title\": \"Go\",\n  \"description\": \"An intro\n}",
			want: map[string]any{"title": "Go", "description": "An intro"},
		},
		{
			name: "truncated videoURL before closing brace on next line",
			text: "{\n  \"title\": \"Intro\",\n  \"videoURL\": \"https://youtu.be/abc\n}",
			want: map[string]any{"title": "Intro", "videoURL": ""},
		},
		{
			name: "truncated videoURL before closing brace on same line",
			text: `{"title": "Intro", "videoURL": "https://youtu.be/abc}`,
			want: map[string]any{"title": "Intro", "videoURL": ""},
		},
		{
			name: "escaped backslash before a letter",
			text: `{"path": "C:\\dir\\alpha"}`,
			want: map[string]any{"path": `C:\dir\alpha`},
		},
		{
			name: "latex in a question",
			text: `{"q": "What is \\alpha?"}`,
			want: map[string]any{"q": `What is \alpha?`},
		},
		{
			name: "smart single quotes as delimiters",
			text: "{\u2018title\u2019: \u2018Go\u2019}",
			want: map[string]any{"title": "Go"},
		},
		{
			name: "lenient fallback",
			text: `{title: 'Go', modules: [],}`,
			want: map[string]any{"title": "Go", "modules": []any{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractNoObject(t *testing.T) {
	got, err := Extract("I could not generate a course for this playlist.")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, ErrNoJSONObject))

	var extErr *ExtractionError
	require.True(t, errors.As(err, &extErr))
	assert.Equal(t, "no JSON object found", extErr.Reason)
	assert.Contains(t, err.Error(), "no JSON object found")
}

func TestExtractClosingBeforeOpening(t *testing.T) {
	_, err := Extract("} nothing here {")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoJSONObject))
}

func TestExtractFailureCarriesPreview(t *testing.T) {
	text := "{" + strings.Repeat("x", 2000) + "}"

	_, err := Extract(text)
	require.Error(t, err)

	var extErr *ExtractionError
	require.True(t, errors.As(err, &extErr))
	assert.NotEmpty(t, extErr.Reason)
	assert.Equal(t, 1003, len(extErr.Candidate))
	assert.True(t, strings.HasSuffix(extErr.Candidate, "..."))
	assert.True(t, strings.HasPrefix(extErr.Candidate, "{xxx"))
}

func TestExtractShortFailureKeepsWholeCandidate(t *testing.T) {
	_, err := Extract("answer: {this is not json} ok")
	require.Error(t, err)

	var extErr *ExtractionError
	require.True(t, errors.As(err, &extErr))
	assert.Equal(t, "{this is not json}", extErr.Candidate)
}

func TestExtractRoundTrip(t *testing.T) {
	course := map[string]any{
		"title":             "Go, from zero",
		"targetAudience":    "Beginners",
		"estimatedDuration": "10 hours",
		"modules": []any{
			map[string]any{
				"title":       "Basics",
				"description": "Types, loops, and functions",
				"lessons": []any{
					map[string]any{
						"title":       "Hello {world}",
						"description": `Paths like C:\dir and $\alpha$`,
						"videoURL":    "https://www.youtube.com/watch?v=abc",
						"quiz": []any{
							map[string]any{
								"question":      "What prints \"hi\"?",
								"options":       []any{"fmt.Println", "print", "echo", "say"},
								"correctAnswer": float64(0),
								"difficulty":    "medium",
							},
						},
					},
				},
			},
		},
		"projects": []any{},
	}

	compact, err := json.Marshal(course)
	require.NoError(t, err)
	indented, err := json.MarshalIndent(course, "", "  ")
	require.NoError(t, err)

	for _, raw := range [][]byte{compact, indented} {
		var want map[string]any
		require.NoError(t, json.Unmarshal(raw, &want))

		got, err := Extract(string(raw))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestExtractBraceInTrailingProse(t *testing.T) {
	text := `{"title": "Go"} and a stray } brace`

	_, err := Extract(text)
	require.Error(t, err, "naive slice keeps the trailing prose")

	got, err := New(nil, Options{BalancedSlice: true}).Extract(text)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "Go"}, got)
}

func TestExtractPatternMode(t *testing.T) {
	e := New(nil, Options{RepairMode: RepairPattern})

	got, err := e.Extract(`{"a": "x, "b": "y"}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "x", "b": "y"}, got)

	// the legacy scan cuts values at their first comma
	_, err = e.Extract(`{"d": "one, two"}`)
	require.Error(t, err)
}

func TestExtractUnknownRepairMode(t *testing.T) {
	_, err := New(nil, Options{RepairMode: "regex"}).Extract(`{"a": 1}`)
	require.Error(t, err)
}

func TestEscapeLoneBackslashes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `plain`, want: `plain`},
		{in: `a\qb`, want: `a\\qb`},
		{in: `\n\t\"\/\u00e9`, want: `\n\t\"\/\u00e9`},
		{in: `\frac`, want: `\frac`},
		{in: `end\`, want: `end\\`},
		{in: `C:\\dir`, want: `C:\\\dir`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeLoneBackslashes(tt.in), tt.in)
	}
}

func TestObjectSpan(t *testing.T) {
	got, ok := objectSpan(`prefix {"a": {"b": 1}} suffix`)
	require.True(t, ok)
	assert.Equal(t, `{"a": {"b": 1}}`, got)

	_, ok = objectSpan("no braces")
	assert.False(t, ok)

	_, ok = objectSpan("{ open only")
	assert.False(t, ok)

	got, ok = balancedObjectSpan(`{"a": "}"} tail }`)
	require.True(t, ok)
	assert.Equal(t, `{"a": "}"}`, got)
}

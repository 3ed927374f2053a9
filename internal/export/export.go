// Package export renders courses as downloadable documents.
package export

import (
	"TubeCourse/internal/app_errors"
	"TubeCourse/internal/models"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// ParseFormat accepts "json", "markdown" and "md". Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q", app_errors.ErrUnknownExportFormat, s)
}

func Render(c *models.Course, f Format) (File, error) {
	switch f {
	case FormatJSON:
		data, err := JSON(c)
		if err != nil {
			return File{}, err
		}
		return File{Name: Filename(c.Title, ".json"), ContentType: "application/json", Data: data}, nil
	case FormatMarkdown:
		return File{
			Name:        Filename(c.Title, ".md"),
			ContentType: "text/markdown; charset=utf-8",
			Data:        []byte(Markdown(c)),
		}, nil
	}
	return File{}, fmt.Errorf("%w: %q", app_errors.ErrUnknownExportFormat, f)
}

// JSON is the course pretty-printed with two-space indentation.
func JSON(c *models.Course) ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// Filename builds tubecourse-<title>, lowercased with whitespace runs
// replaced by underscores.
func Filename(title, ext string) string {
	return "tubecourse-" + whitespaceRe.ReplaceAllString(strings.ToLower(title), "_") + ext
}

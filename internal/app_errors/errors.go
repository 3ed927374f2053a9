package app_errors

import (
	"errors"
	"fmt"
)

var ErrCourseNotFound = errors.New("course not found")
var ErrMissingPlaylistURL = errors.New("missing playlistUrl")
var ErrInvalidPlaylistURL = errors.New("invalid playlist URL")
var ErrNoVideos = errors.New("no videos found in playlist")
var ErrSearchDisabled = errors.New("search is not configured")
var ErrExportsDisabled = errors.New("export storage is not configured")
var ErrUnknownExportFormat = errors.New("unknown export format")

// ValidationError lists the fields a course document failed on.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid course: %v", e.Details)
}

// ParseError is returned when the generated text could not be turned into a
// course. Raw holds the text exactly as the model returned it.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return "failed to parse course content: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UpstreamError carries the HTTP status reported by a remote API.
type UpstreamError struct {
	Service    string
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error: %d - %s", e.Service, e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

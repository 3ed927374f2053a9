// Package jsonextract recovers a JSON object from free text produced by a
// generative model. The text may wrap the object in prose or markdown fences,
// use typographic quotes, carry stray backslashes or end in a truncated string.
package jsonextract

import (
	"encoding/json"
	"errors"
	"fmt"

	"TubeCourse/pkg/logger"
)

// RepairMode selects how unterminated string values are closed.
type RepairMode string

const (
	// RepairScanner closes strings with a quote-aware state machine.
	RepairScanner RepairMode = "scanner"
	// RepairPattern reproduces the legacy "key": "value... pattern scan.
	RepairPattern RepairMode = "pattern"
)

const previewLimit = 1000

var ErrNoJSONObject = errors.New("no JSON object found")

// ExtractionError is returned when no parseable object could be recovered.
// Candidate holds a bounded preview of the text handed to the parsers, empty
// when the pipeline failed before parsing.
type ExtractionError struct {
	Reason    string
	Candidate string
	Err       error
}

func (e *ExtractionError) Error() string {
	return "failed to extract valid JSON: " + e.Reason
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

type Options struct {
	RepairMode RepairMode
	// BalancedSlice ends the candidate at the brace closing the first '{'
	// instead of at the last '}' of the text.
	BalancedSlice bool
}

type Extractor struct {
	log  logger.Log
	opts Options
}

func New(log logger.Log, opts Options) *Extractor {
	if log == nil {
		log = logger.NewDiscard()
	}
	if opts.RepairMode == "" {
		opts.RepairMode = RepairScanner
	}
	return &Extractor{log: log, opts: opts}
}

// Extract runs the pipeline with default options and no logging.
func Extract(text string) (map[string]any, error) {
	return New(nil, Options{}).Extract(text)
}

func (e *Extractor) Extract(text string) (map[string]any, error) {
	candidate, err := e.Candidate(text)
	if err != nil {
		return nil, err
	}

	var out map[string]any
	strictErr := json.Unmarshal([]byte(candidate), &out)
	if strictErr == nil {
		return out, nil
	}
	e.log.Warn("extract: strict parse failed, trying JSON5", "reason", strictErr.Error())

	out, err = parseLenient(candidate)
	if err != nil {
		p := preview(candidate)
		e.log.Error("extract: final parse failed", "preview", p)
		return nil, &ExtractionError{Reason: err.Error(), Candidate: p, Err: err}
	}
	if out == nil {
		return nil, &ExtractionError{Reason: "parsed value is not an object", Candidate: preview(candidate)}
	}
	return out, nil
}

// Candidate returns the repaired text the parsers would see.
func (e *Extractor) Candidate(text string) (string, error) {
	cleaned := fencedBlock(text)
	cleaned = smartQuotes.Replace(cleaned)
	cleaned = escapeLoneBackslashes(cleaned)

	var (
		candidate string
		ok        bool
	)
	if e.opts.BalancedSlice {
		candidate, ok = balancedObjectSpan(cleaned)
	} else {
		candidate, ok = objectSpan(cleaned)
	}
	if !ok {
		return "", &ExtractionError{Reason: ErrNoJSONObject.Error(), Err: ErrNoJSONObject}
	}

	switch e.opts.RepairMode {
	case RepairPattern:
		candidate = closeStringsByPattern(candidate)
		candidate = blankTruncatedVideoURLByPattern(candidate)
	case RepairScanner:
		candidate = repairStrings(candidate)
	default:
		return "", &ExtractionError{Reason: fmt.Sprintf("unknown repair mode %q", e.opts.RepairMode)}
	}
	return candidate, nil
}

func preview(s string) string {
	r := []rune(s)
	if len(r) > previewLimit {
		return string(r[:previewLimit]) + "..."
	}
	return s
}

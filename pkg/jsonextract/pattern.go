package jsonextract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// truncatedVideoURLRe matches a videoURL value with no closing quote before
// the end of a line. [^"] crosses line breaks, so the match runs to the last
// line end before the next quote.
var truncatedVideoURLRe = regexp.MustCompile(`(?m)"videoURL":\s*?"[^"]*$`)

// closeStringsByPattern scans for `"key": "value` spans and appends a quote to
// each one that reaches ',', '\n', '\r' or '}' without meeting a quote first.
// Matching restarts right after each repaired span, so a value holding a
// comma is cut at the comma.
func closeStringsByPattern(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	last := 0
	for i := 0; i < len(s); {
		end, ok := matchOpenValue(s, i)
		if !ok {
			i++
			continue
		}
		b.WriteString(s[last:end])
		if s[end-1] != '"' {
			b.WriteByte('"')
		}
		last, i = end, end
	}
	b.WriteString(s[last:])
	return b.String()
}

// matchOpenValue reports where a `"key":<space>"value` match starting at i
// ends. The end is exclusive and sits on the stop character.
func matchOpenValue(s string, i int) (int, bool) {
	if s[i] != '"' {
		return 0, false
	}
	j := i + 1
	for j < len(s) && s[j] != '"' {
		j++
	}
	if j == i+1 || j+1 >= len(s) || s[j+1] != ':' {
		return 0, false
	}
	j += 2
	for j < len(s) {
		r, size := utf8.DecodeRuneInString(s[j:])
		if !unicode.IsSpace(r) {
			break
		}
		j += size
	}
	if j >= len(s) || s[j] != '"' {
		return 0, false
	}
	j++
	for ; j < len(s); j++ {
		switch s[j] {
		case ',', '\n', '\r', '}':
			return j, true
		case '"':
			return 0, false
		}
	}
	return 0, false
}

func blankTruncatedVideoURLByPattern(s string) string {
	return truncatedVideoURLRe.ReplaceAllLiteralString(s, `"videoURL": ""`)
}

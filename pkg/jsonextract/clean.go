package jsonextract

import (
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?i)```(?:json)?\\s*([\\s\\S]*?)\\s*```")

var smartQuotes = strings.NewReplacer(
	"\u201c", `"`,
	"\u201d", `"`,
	"\u2018", "'",
	"\u2019", "'",
)

// fencedBlock returns the interior of the first fenced code block, or the
// whole text when there is none.
func fencedBlock(text string) string {
	m := fenceRe.FindStringSubmatch(text)
	if m == nil {
		return text
	}
	return m[1]
}

// escapeLoneBackslashes doubles every backslash whose next character does not
// start a JSON escape. Each backslash is judged on its own successor, so the
// second half of an escaped "\\" pair is doubled when it precedes an ordinary
// letter.
func escapeLoneBackslashes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		b.WriteByte(c)
		if c != '\\' {
			continue
		}
		if i+1 < len(s) && isEscapeChar(s[i+1]) {
			continue
		}
		b.WriteByte('\\')
	}
	return b.String()
}

func isEscapeChar(c byte) bool {
	switch c {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
		return true
	}
	return false
}

// objectSpan slices from the first '{' to the last '}'. It is not depth
// aware: a stray '}' in trailing prose extends the span.
func objectSpan(s string) (string, bool) {
	first := strings.IndexByte(s, '{')
	last := strings.LastIndexByte(s, '}')
	if first == -1 || last == -1 {
		return "", false
	}
	if last < first {
		return "", true
	}
	return s[first : last+1], true
}

// balancedObjectSpan slices from the first '{' to the brace that closes it,
// skipping braces inside strings. An object that never closes falls back to
// the naive span.
func balancedObjectSpan(s string) (string, bool) {
	first := strings.IndexByte(s, '{')
	if first == -1 || strings.LastIndexByte(s, '}') == -1 {
		return "", false
	}
	depth := 0
	inString, escaped := false, false
	for i := first; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString:
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
		case c == '"':
			inString = true
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[first : i+1], true
			}
		}
	}
	return objectSpan(s)
}

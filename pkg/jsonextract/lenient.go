package jsonextract

import (
	"strings"

	"github.com/titanous/json5"
)

// identityEscapes rewrites backslash escapes JSON5 reads as the escaped
// character itself (\d is d) so the parser only sees escapes it knows.
// \v, \0 and \xHH become their \u forms; a backslash before a line break is
// a line continuation and is dropped with the break.
func identityEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		next := s[i+1]
		switch {
		case isEscapeChar(next) || next == '\'':
			b.WriteByte(c)
			b.WriteByte(next)
		case next == 'v':
			b.WriteString(`\u000b`)
		case next == '0' && (i+2 >= len(s) || !isDigit(s[i+2])):
			b.WriteString(`\u0000`)
		case next == 'x' && i+3 < len(s) && isHex(s[i+2]) && isHex(s[i+3]):
			b.WriteString(`\u00`)
			b.WriteString(s[i+2 : i+4])
			i += 2
		case next == '\r':
			if i+2 < len(s) && s[i+2] == '\n' {
				i++
			}
		case next == '\n':
		default:
			b.WriteByte(next)
		}
		i++
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// parseLenient reads candidate as JSON5: unquoted keys, single-quoted
// strings, trailing commas and identity escapes.
func parseLenient(candidate string) (map[string]any, error) {
	var out map[string]any
	if err := json5.Unmarshal([]byte(identityEscapes(candidate)), &out); err != nil {
		return nil, err
	}
	return out, nil
}

package jsonextract

type scanState int

const (
	stateOutside scanState = iota
	stateString
	stateEscape
)

const videoURLKey = "videoURL"

// stringScanner walks a candidate once and closes value strings that run into
// a line break or the end of input. A truncated videoURL value is blanked
// rather than closed.
type stringScanner struct {
	input string
	pos   int
	state scanState
	out   []byte

	afterColon bool
	lastKey    string

	// current string literal
	isValue      bool
	key          string
	quoteAt      int
	contentStart int
}

func repairStrings(s string) string {
	sc := &stringScanner{input: s, out: make([]byte, 0, len(s)+8)}
	for sc.pos < len(sc.input) {
		sc.step(sc.input[sc.pos])
		sc.pos++
	}
	sc.finish()
	return string(sc.out)
}

func (sc *stringScanner) step(c byte) {
	switch sc.state {
	case stateEscape:
		sc.out = append(sc.out, c)
		sc.state = stateString

	case stateString:
		switch c {
		case '\\':
			sc.state = stateEscape
		case '"':
			sc.state = stateOutside
			if !sc.isValue {
				sc.lastKey = sc.input[sc.contentStart:sc.pos]
			}
		case '\n', '\r':
			if sc.isValue {
				sc.closeAtLineBreak()
				sc.state = stateOutside
			}
		}
		sc.out = append(sc.out, c)

	case stateOutside:
		switch c {
		case '"':
			sc.isValue = sc.afterColon
			sc.key = sc.lastKey
			sc.quoteAt = len(sc.out)
			sc.contentStart = sc.pos + 1
			sc.afterColon = false
			sc.state = stateString
		case ':':
			sc.afterColon = true
		case ' ', '\t', '\n', '\r':
		default:
			sc.afterColon = false
		}
		sc.out = append(sc.out, c)
	}
}

func (sc *stringScanner) closeAtLineBreak() {
	if sc.key == videoURLKey {
		sc.out = append(sc.out[:sc.quoteAt], '"', '"')
		return
	}
	sc.out = append(sc.out, '"')
}

// finish handles a value string still open at the end of input. The closing
// brackets and whitespace that end the candidate belong to the structure, so
// the quote goes in front of them.
func (sc *stringScanner) finish() {
	if sc.state == stateOutside || !sc.isValue {
		return
	}
	end := len(sc.out)
	for end > sc.quoteAt+1 && isStructuralTail(sc.out[end-1]) {
		end--
	}
	tail := append([]byte(nil), sc.out[end:]...)

	if sc.key == videoURLKey {
		sc.out = append(append(sc.out[:sc.quoteAt], '"', '"'), tail...)
		return
	}
	body := sc.out[:end]
	if trailingBackslashes(body[sc.quoteAt+1:])%2 == 1 {
		body = body[:len(body)-1]
	}
	sc.out = append(append(body, '"'), tail...)
}

func isStructuralTail(c byte) bool {
	switch c {
	case '}', ']', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func trailingBackslashes(b []byte) int {
	n := 0
	for i := len(b) - 1; i >= 0 && b[i] == '\\'; i-- {
		n++
	}
	return n
}

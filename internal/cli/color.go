package cli

// ColorizeJSON wraps already-encoded JSON text in ANSI color codes for
// terminal display. It never changes what the text says - only
// cmd/toon's writeText calls it, and only when the rendered output is
// JSON and --no-color was not given; the library's JSON encoder itself never
// emits color codes, since EncodeResult.Text must stay valid RFC 8259
// JSON for every other caller.
//
// A single left-to-right scan colors:
//   - object keys (blue)
//   - string values (green)
//   - numbers (orange)
//   - true/false/null (purple)
//   - structural punctuation (gray)
func ColorizeJSON(in []byte) []byte {
	s := &scanner{input: in, output: make([]byte, 0, len(in)+len(in)/4)}
	return s.run()
}

const (
	colReset   = "\x1b[0m"
	colKey     = "\x1b[38;5;33m"  // blue
	colStr     = "\x1b[38;5;34m"  // green
	colNum     = "\x1b[38;5;214m" // orange
	colBoolNil = "\x1b[38;5;135m" // purple
	colPunct   = "\x1b[38;5;240m" // gray
)

// scanner walks already-valid JSON one byte at a time. expectKey holds
// one entry per currently-open object or array: true means the next
// string literal at that nesting level names a key rather than a
// value. Arrays push false, since an array element is never a key.
// inArray runs parallel to expectKey and marks which levels are arrays,
// so a ',' only re-arms key position inside an object.
type scanner struct {
	input     []byte
	output    []byte
	expectKey []bool
	inArray   []bool
	inString  bool
	escaped   bool
}

func (s *scanner) run() []byte {
	for i := 0; i < len(s.input); i++ {
		b := s.input[i]
		if s.inString {
			s.stringByte(b)
			continue
		}
		s.structuralByte(b, &i)
	}
	return s.output
}

func (s *scanner) stringByte(b byte) {
	s.emit(b)
	switch {
	case s.escaped:
		s.escaped = false
	case b == '\\':
		s.escaped = true
	case b == '"':
		s.color(colReset)
		s.inString = false
	}
}

func (s *scanner) structuralByte(b byte, i *int) {
	switch b {
	case '{':
		s.punct(b)
		s.expectKey = append(s.expectKey, true)
		s.inArray = append(s.inArray, false)
	case '}':
		s.punct(b)
		s.pop()
	case '[':
		s.punct(b)
		s.expectKey = append(s.expectKey, false)
		s.inArray = append(s.inArray, true)
	case ']':
		s.punct(b)
		s.pop()
	case ':':
		s.punct(b)
		s.setExpectKey(false)
	case ',':
		s.punct(b)
		s.setExpectKey(len(s.inArray) == 0 || !s.inArray[len(s.inArray)-1])
	case '"':
		if s.atKeyPosition() {
			s.color(colKey)
		} else {
			s.color(colStr)
		}
		s.emit('"')
		s.inString = true
	case 't':
		s.keyword(i, "true")
	case 'f':
		s.keyword(i, "false")
	case 'n':
		s.keyword(i, "null")
	default:
		if isNumberByte(b) {
			s.number(i)
		} else {
			s.emit(b)
		}
	}
}

func (s *scanner) number(i *int) {
	s.color(colNum)
	j := *i
	for j < len(s.input) && isNumberByte(s.input[j]) {
		j++
	}
	s.output = append(s.output, s.input[*i:j]...)
	s.color(colReset)
	*i = j - 1
}

// keyword colors a true/false/null literal starting at *i, advancing
// *i past it. Falls back to emitting the single byte uncolored if the
// expected word isn't actually present (malformed input).
func (s *scanner) keyword(i *int, word string) {
	end := *i + len(word)
	if end > len(s.input) || string(s.input[*i:end]) != word {
		s.emit(s.input[*i])
		return
	}
	s.color(colBoolNil)
	s.output = append(s.output, word...)
	s.color(colReset)
	*i = end - 1
}

func (s *scanner) emit(b byte) { s.output = append(s.output, b) }

func (s *scanner) color(code string) { s.output = append(s.output, code...) }

func (s *scanner) punct(b byte) {
	s.color(colPunct)
	s.emit(b)
	s.color(colReset)
}

func (s *scanner) pop() {
	if len(s.expectKey) > 0 {
		s.expectKey = s.expectKey[:len(s.expectKey)-1]
	}
	if len(s.inArray) > 0 {
		s.inArray = s.inArray[:len(s.inArray)-1]
	}
}

func (s *scanner) atKeyPosition() bool {
	if len(s.expectKey) == 0 {
		return false
	}
	return s.expectKey[len(s.expectKey)-1]
}

func (s *scanner) setExpectKey(v bool) {
	if len(s.expectKey) > 0 {
		s.expectKey[len(s.expectKey)-1] = v
	}
}

func isNumberByte(b byte) bool {
	switch b {
	case '-', '+', '.', 'e', 'E':
		return true
	default:
		return b >= '0' && b <= '9'
	}
}

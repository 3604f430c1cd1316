package yaml

import "strings"

// Detector implements format.Detector for YAML. YAML has no unambiguous
// leading byte the way JSON/XML do, so it scores below them: a document
// marker or directive scores high, a bare "key: value" first line scores
// a constant fallback, anything that looks like JSON or is empty scores 0.
type Detector struct{}

// Detect returns a confidence score in [0, 100].
func (d *Detector) Detect(peek []byte) int {
	head := strings.TrimLeft(string(peek), " \t\r\n")
	if len(head) == 0 {
		return 0
	}

	if head[0] == '%' || strings.HasPrefix(head, "---") {
		return 85
	}

	firstChar := head[0]
	if firstChar == '{' || firstChar == '[' {
		return 0
	}

	if looksLikeYAML(head) {
		return 40
	}
	return 0
}

// looksLikeYAML reports whether the first line has a YAML key: value
// shape: a colon appearing before any comma or closing brace.
func looksLikeYAML(head string) bool {
	line := head
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}

	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return false
	}

	comma := strings.IndexByte(line, ',')
	closeBrace := strings.IndexByte(line, '}')
	if comma == -1 {
		comma = 1 << 30
	}
	if closeBrace == -1 {
		closeBrace = 1 << 30
	}

	return colon < comma && colon < closeBrace
}

package tsv

import (
	"strings"

	"github.com/GeoffMall/toon/internal/value"
)

// Parser implements format.Parser for TSV. The first row is the header;
// subsequent rows become Objects keyed by that header. TSV has no
// quoting mechanism, so a cell's literal "\t"/"\n" two-character escapes
// are unescaped back to a tab/newline - the inverse of Encoder.
type Parser struct{}

// Parse decodes TSV bytes into an Array of Objects.
func (p *Parser) Parse(data []byte) (value.Value, error) {
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return value.EmptyArray(), nil
	}
	lines := strings.Split(text, "\n")

	header := splitAndUnescape(lines[0])

	var rows []value.Value
	for _, line := range lines[1:] {
		fields := splitAndUnescape(line)
		obj := value.NewObjectCap(len(header))
		for i, key := range header {
			cell := ""
			if i < len(fields) {
				cell = fields[i]
			}
			obj.Set(key, value.String(cell))
		}
		rows = append(rows, value.FromObject(obj))
	}

	return value.Array(rows), nil
}

func splitAndUnescape(line string) []string {
	line = strings.TrimSuffix(line, "\r")
	raw := strings.Split(line, "\t")
	out := make([]string, len(raw))
	for i, f := range raw {
		out[i] = unescapeCell(f)
	}
	return out
}

func unescapeCell(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 't':
				b.WriteByte('\t')
				i++
				continue
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

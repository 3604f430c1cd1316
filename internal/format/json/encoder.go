package json

import (
	"strconv"
	"strings"

	"github.com/GeoffMall/toon/internal/format"
	"github.com/GeoffMall/toon/internal/value"
)

// Encoder implements format.Encoder for compact JSON per RFC 8259: no
// insignificant whitespace, object keys in insertion order, floats via
// Go's shortest-round-trip formatter (strconv's -1 precision, which uses
// the same Ryu-class algorithm encoding/json itself relies on).
//
// Encoder walks value.Value directly instead of delegating to
// encoding/json.Marshal: Value isn't a type encoding/json knows how to
// traverse in insertion order, so compact JSON is produced the same way
// the teacher's colorizer processes JSON - by hand, one byte/value at a
// time - rather than through reflection.
type Encoder struct{}

// NewEncoder returns a compact JSON encoder. Compact JSON is always
// total and never emits a warning: every Value kind has an exact JSON
// representation.
func NewEncoder() *Encoder { return &Encoder{} }

// Encode renders v as compact JSON.
func (e *Encoder) Encode(v value.Value) (format.EncodeResult, error) {
	var b strings.Builder
	b.Grow(64)
	writeValue(&b, v)
	return format.EncodeResult{Text: b.String()}, nil
}

func writeValue(b *strings.Builder, v value.Value) {
	switch v.Kind() {
	case value.KindNull:
		b.WriteString("null")
	case value.KindBool:
		if v.Bool() {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case value.KindInt:
		b.WriteString(strconv.FormatInt(v.Int(), 10))
	case value.KindFloat:
		b.WriteString(formatFloat(v.Float()))
	case value.KindString:
		writeJSONString(b, v.Str())
	case value.KindArray:
		writeArray(b, v.Array())
	case value.KindObject:
		writeObject(b, v.Object())
	}
}

// formatFloat renders f with Go's shortest-round-trip formatter, then
// guarantees the result carries a decimal point. 'g' formatting drops
// the fractional part entirely for integer-valued floats (400.0 ->
// "400"), and the parser reads a bare digit run back as an Integer, not
// a Float - so an integer-valued Float would silently change Kind on a
// parse(encode(v)) round-trip. Appending ".0" keeps it unambiguously a
// Float without disturbing any value that already has a fractional
// part or exponent.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func writeArray(b *strings.Builder, elems []value.Value) {
	b.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			b.WriteByte(',')
		}
		writeValue(b, e)
	}
	b.WriteByte(']')
}

func writeObject(b *strings.Builder, obj *value.Object) {
	b.WriteByte('{')
	if obj != nil {
		keys := obj.Keys()
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSONString(b, k)
			b.WriteByte(':')
			val, _ := obj.Get(k)
			writeValue(b, val)
		}
	}
	b.WriteByte('}')
}

const hexDigits = "0123456789abcdef"

// writeJSONString escapes s per RFC 8259 §7: quote, reverse solidus, and
// control characters are escaped; everything else (including non-ASCII
// Unicode scalars) passes through untouched, since Non-goal excludes
// round-tripping exotic escaping conventions beyond what's required.
func writeJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[(r>>4)&0xf])
				b.WriteByte(hexDigits[r&0xf])
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}

package toon

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/GeoffMall/toon/internal/format"
	"github.com/GeoffMall/toon/internal/value"
)

// Encoder implements format.Encoder for TOON. It is always total: every
// legal Value has a TOON rendering, so Encode never returns a warning.
type Encoder struct{}

// NewEncoder returns a TOON encoder.
func NewEncoder() *Encoder { return &Encoder{} }

// Encode renders v in TOON form.
func (e *Encoder) Encode(v value.Value) (format.EncodeResult, error) {
	var b strings.Builder

	switch v.Kind() {
	case value.KindObject:
		obj := v.Object()
		if obj == nil || obj.Len() == 0 {
			return format.EncodeResult{Text: "{}"}, nil
		}
		// Rule 6: the root object has no "{k1,...}:" header of its own;
		// each of its keys is written directly at indent 0.
		for _, k := range obj.Keys() {
			val, _ := obj.Get(k)
			writeChild(&b, val, 0, k)
		}
	default:
		writeChild(&b, v, 0, "")
	}

	return format.EncodeResult{Text: strings.TrimSuffix(b.String(), "\n")}, nil
}

// writeChild renders v at the given indent level (in spaces), optionally
// prefixed by name when v occupies a named position (an object key); an
// empty name means v occupies an anonymous position (an array element,
// or the non-object root).
func writeChild(b *strings.Builder, v value.Value, indent int, name string) {
	pad := strings.Repeat(" ", indent)

	switch v.Kind() {
	case value.KindArray:
		writeArrayChild(b, v.Array(), pad, indent, name)
	case value.KindObject:
		writeObjectChild(b, v.Object(), pad, indent, name)
	default:
		if name != "" {
			b.WriteString(pad + name + ": " + encodeScalar(v) + "\n")
		} else {
			b.WriteString(pad + encodeScalar(v) + "\n")
		}
	}
}

func writeArrayChild(b *strings.Builder, elems []value.Value, pad string, indent int, name string) {
	n := len(elems)
	if n == 0 {
		if name != "" {
			b.WriteString(pad + name + ": []\n")
		} else {
			b.WriteString(pad + "[]\n")
		}
		return
	}

	if keys, ok := tabularEligible(elems); ok {
		header := "[" + strconv.Itoa(n) + "]{" + strings.Join(keys, ",") + "}:"
		b.WriteString(pad + name + header + "\n")
		rowPad := strings.Repeat(" ", indent+2)
		for _, elem := range elems {
			obj := elem.Object()
			cells := make([]string, len(keys))
			for i, k := range keys {
				val, _ := obj.Get(k)
				cells[i] = encodeScalar(val)
			}
			b.WriteString(rowPad + strings.Join(cells, ",") + "\n")
		}
		return
	}

	header := "[" + strconv.Itoa(n) + "]:"
	b.WriteString(pad + name + header + "\n")
	for _, elem := range elems {
		writeChild(b, elem, indent+2, "")
	}
}

func writeObjectChild(b *strings.Builder, obj *value.Object, pad string, indent int, name string) {
	if obj == nil || obj.Len() == 0 {
		if name != "" {
			b.WriteString(pad + name + ": {}\n")
		} else {
			b.WriteString(pad + "{}\n")
		}
		return
	}

	headerPad, bodyIndent := pad, indent+2
	if name != "" {
		b.WriteString(pad + name + ":\n")
		headerPad = strings.Repeat(" ", indent+2)
		bodyIndent = indent + 4
	}

	b.WriteString(headerPad + "{" + strings.Join(obj.Keys(), ",") + "}:\n")
	for _, k := range obj.Keys() {
		val, _ := obj.Get(k)
		// Rule 2: a primitive child is positional under the header - its
		// key already appears there, so the body line carries only the
		// bare value. A nested child still needs its own "key:" line
		// since the header doesn't describe its shape.
		if val.IsPrimitive() {
			writeChild(b, val, bodyIndent, "")
		} else {
			writeChild(b, val, bodyIndent, k)
		}
	}
}

// tabularEligible implements §4.3(3): A is non-empty, every element is
// an Object, every element shares the exact same key set in the exact
// same order as the first element, and every value in every element is
// primitive. Returns the shared key order when eligible.
func tabularEligible(elems []value.Value) ([]string, bool) {
	if len(elems) == 0 {
		return nil, false
	}
	if elems[0].Kind() != value.KindObject {
		return nil, false
	}
	first := elems[0].Object()
	keys := first.Keys()
	if !allPrimitive(first) {
		return nil, false
	}

	for _, elem := range elems[1:] {
		if elem.Kind() != value.KindObject {
			return nil, false
		}
		obj := elem.Object()
		ok := obj.Keys()
		if len(ok) != len(keys) {
			return nil, false
		}
		for i, k := range keys {
			if ok[i] != k {
				return nil, false
			}
		}
		if !allPrimitive(obj) {
			return nil, false
		}
	}
	return keys, true
}

func allPrimitive(obj *value.Object) bool {
	for _, k := range obj.Keys() {
		v, _ := obj.Get(k)
		if !v.IsPrimitive() {
			return false
		}
	}
	return true
}

// encodeScalar implements §4.3(1): value encoding for the primitive
// kinds, quoting strings only when required.
func encodeScalar(v value.Value) string {
	switch v.Kind() {
	case value.KindNull:
		return "null"
	case value.KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case value.KindInt:
		return strconv.FormatInt(v.Int(), 10)
	case value.KindFloat:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case value.KindString:
		return encodeString(v.Str())
	default:
		return "null"
	}
}

var toonKeywords = map[string]bool{"true": true, "false": true, "null": true}

func encodeString(s string) string {
	if needsQuoting(s) {
		return quoteString(s)
	}
	return s
}

func needsQuoting(s string) bool {
	if s == "" {
		return false
	}
	if strings.ContainsAny(s, ",\t\n\r\"'") {
		return true
	}
	switch s[0] {
	case '{', '[', '"', '\'':
		return true
	}
	if toonKeywords[s] {
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	if unicode.IsSpace(rune(s[0])) || unicode.IsSpace(rune(s[len(s)-1])) {
		return true
	}
	return false
}

func quoteString(s string) string {
	var b strings.Builder
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
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

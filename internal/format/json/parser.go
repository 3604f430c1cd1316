package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/GeoffMall/toon/internal/format"
	"github.com/GeoffMall/toon/internal/value"
)

// Parser implements format.Parser for JSON per RFC 8259. It decodes
// through json.Decoder's token stream (rather than into map[string]any)
// so that Object key order - first-occurrence order, per §4.1 - survives
// parsing, and so that integers within the int64 range are distinguished
// from floats instead of collapsing to float64 the way a plain
// json.Unmarshal(&any{}) would.
type Parser struct{}

// NewParser returns a JSON parser.
func NewParser() *Parser { return &Parser{} }

// Parse decodes data into a single Value. A trailing non-whitespace
// payload after the first JSON value is rejected, matching the "loads a
// payload fully" non-streaming contract.
func (p *Parser) Parse(data []byte) (value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return value.Null, &format.ParseError{Format: "json", ByteOffset: -1, Message: "empty input"}
		}
		return value.Null, &format.ParseError{Format: "json", ByteOffset: int(dec.InputOffset()), Message: err.Error()}
	}

	v, err := decodeValue(dec, tok)
	if err != nil {
		return value.Null, err
	}

	// Reject trailing garbage: there should be nothing left but EOF.
	if _, err := dec.Token(); err != io.EOF {
		return value.Null, &format.ParseError{Format: "json", ByteOffset: int(dec.InputOffset()), Message: "unexpected trailing data"}
	}

	return v, nil
}

// decodeValue interprets one already-read token, recursing into
// decodeArray/decodeObject for composite tokens.
func decodeValue(dec *json.Decoder, tok json.Token) (value.Value, error) {
	switch t := tok.(type) {
	case nil:
		return value.Null, nil
	case bool:
		return value.Bool(t), nil
	case string:
		return value.String(t), nil
	case json.Number:
		return decodeNumber(t)
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return value.Null, &format.ParseError{Format: "json", ByteOffset: int(dec.InputOffset()), Message: fmt.Sprintf("unexpected delimiter %q", t)}
		}
	default:
		return value.Null, &format.ParseError{Format: "json", ByteOffset: int(dec.InputOffset()), Message: fmt.Sprintf("unexpected token %T", tok)}
	}
}

// decodeNumber applies invariant 2: a number without a fractional part or
// exponent that fits in int64 becomes Integer; otherwise Float.
func decodeNumber(n json.Number) (value.Value, error) {
	s := n.String()
	if i, err := n.Int64(); err == nil {
		// Guard against forms like "1e2" that Int64 would reject anyway,
		// and forms like "9223372036854775808" that overflow int64.
		_ = s
		return value.Int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return value.Null, &format.ParseError{Format: "json", Message: fmt.Sprintf("invalid number %q", s)}
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return value.Null, &format.ParseError{Format: "json", Message: fmt.Sprintf("number %q out of range", s)}
	}
	return value.Float(f), nil
}

func decodeArray(dec *json.Decoder) (value.Value, error) {
	var elems []value.Value
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return value.Null, &format.ParseError{Format: "json", ByteOffset: int(dec.InputOffset()), Message: err.Error()}
		}
		v, err := decodeValue(dec, tok)
		if err != nil {
			return value.Null, err
		}
		elems = append(elems, v)
	}
	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return value.Null, &format.ParseError{Format: "json", ByteOffset: int(dec.InputOffset()), Message: err.Error()}
	}
	return value.Array(elems), nil
}

func decodeObject(dec *json.Decoder) (value.Value, error) {
	obj := value.NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return value.Null, &format.ParseError{Format: "json", ByteOffset: int(dec.InputOffset()), Message: err.Error()}
		}
		key, ok := keyTok.(string)
		if !ok {
			return value.Null, &format.ParseError{Format: "json", ByteOffset: int(dec.InputOffset()), Message: "object key is not a string"}
		}

		valTok, err := dec.Token()
		if err != nil {
			return value.Null, &format.ParseError{Format: "json", ByteOffset: int(dec.InputOffset()), Message: err.Error()}
		}
		v, err := decodeValue(dec, valTok)
		if err != nil {
			return value.Null, err
		}
		// Invariant 1: last wins, original position preserved.
		obj.Set(key, v)
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return value.Null, &format.ParseError{Format: "json", ByteOffset: int(dec.InputOffset()), Message: err.Error()}
	}
	return value.FromObject(obj), nil
}

package csv

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/GeoffMall/toon/internal/format"
	"github.com/GeoffMall/toon/internal/value"
)

// Parser implements format.Parser for CSV. The first row is the header;
// every subsequent row becomes an Object keyed by that header, with all
// cell values left as Strings (no type coercion per §4.1).
type Parser struct {
	Delimiter rune
}

// Parse decodes CSV bytes into an Array of Objects.
func (p *Parser) Parse(data []byte) (value.Value, error) {
	delim := p.Delimiter
	if delim == 0 {
		delim = ','
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = false

	header, err := r.Read()
	if err == io.EOF {
		return value.EmptyArray(), nil
	}
	if err != nil {
		return value.Null, &format.ParseError{Format: "csv", ByteOffset: -1, Message: err.Error()}
	}

	var rows []value.Value
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return value.Null, &format.ParseError{Format: "csv", ByteOffset: -1, Message: err.Error()}
		}

		obj := value.NewObjectCap(len(header))
		for i, key := range header {
			cell := ""
			if i < len(record) {
				cell = record[i]
			}
			obj.Set(key, value.String(cell))
		}
		rows = append(rows, value.FromObject(obj))
	}

	return value.Array(rows), nil
}

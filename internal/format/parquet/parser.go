package parquet

import (
	"bytes"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"github.com/GeoffMall/toon/internal/format"
	"github.com/GeoffMall/toon/internal/value"
)

// Parser implements format.Parser for Parquet files. Every row becomes
// an Object and the whole file becomes an Array of Objects, matching
// how the CSV/TSV parsers represent rows.
type Parser struct{}

// NewParser returns a Parquet parser.
func NewParser() *Parser { return &Parser{} }

// Parse reads every row out of a Parquet byte payload into an Array of
// Objects. A bytes.Reader satisfies parquet-go's io.ReaderAt
// requirement, so no temporary file or seekable os.File is needed.
func (p *Parser) Parse(data []byte) (value.Value, error) {
	br := bytes.NewReader(data)
	pf, err := parquet.OpenFile(br, int64(len(data)))
	if err != nil {
		return value.Null, &format.ParseError{Format: "parquet", ByteOffset: -1, Message: err.Error()}
	}

	reader := parquet.NewReader(pf)
	defer reader.Close()

	fields := pf.Schema().Fields()

	var rows []value.Value
	for {
		row := make(map[string]any)
		if err := reader.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return value.Null, &format.ParseError{Format: "parquet", ByteOffset: -1, Message: fmt.Sprintf("read row: %s", err)}
		}
		rows = append(rows, mapToValue(row, fields))
	}

	return value.Array(rows), nil
}

// mapToValue builds an Object from a decoded row or nested group,
// ordering keys by the schema's declared field order rather than map
// iteration order.
func mapToValue(m map[string]any, fields []parquet.Field) value.Value {
	obj := value.NewObjectCap(len(fields))
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		name := f.Name()
		if v, ok := m[name]; ok {
			obj.Set(name, anyToValue(v, f))
			seen[name] = true
		}
	}
	for k, v := range m {
		if !seen[k] {
			obj.Set(k, anyToValue(v, nil))
		}
	}
	return value.FromObject(obj)
}

// anyToValue converts one decoded column value, recursing into nested
// groups and repeated fields using the matching schema Field when one
// is known.
func anyToValue(x any, field parquet.Field) value.Value {
	if x == nil {
		return value.Null
	}

	switch t := x.(type) {
	case map[string]any:
		if field != nil && !field.Leaf() {
			return mapToValue(t, field.Fields())
		}
		return mapToValueNoSchema(t)
	case []any:
		elems := make([]value.Value, len(t))
		for i, e := range t {
			elems[i] = anyToValue(e, field)
		}
		return value.Array(elems)
	case bool:
		return value.Bool(t)
	case int:
		return value.Int(int64(t))
	case int32:
		return value.Int(int64(t))
	case int64:
		return value.Int(t)
	case float32:
		return value.Float(float64(t))
	case float64:
		return value.Float(t)
	case string:
		return value.String(t)
	case []byte:
		return value.String(string(t))
	default:
		return value.String(fmt.Sprintf("%v", t))
	}
}

// mapToValueNoSchema handles a nested map with no matching schema Field
// (shouldn't normally happen for a well-formed Parquet file); keys are
// emitted in the map's own iteration order since there is nothing more
// authoritative to sort by.
func mapToValueNoSchema(m map[string]any) value.Value {
	obj := value.NewObjectCap(len(m))
	for k, v := range m {
		obj.Set(k, anyToValue(v, nil))
	}
	return value.FromObject(obj)
}

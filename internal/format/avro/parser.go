package avro

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/hamba/avro/v2"
	"github.com/hamba/avro/v2/ocf"

	"github.com/GeoffMall/toon/internal/format"
	"github.com/GeoffMall/toon/internal/value"
)

// Parser implements format.Parser for Avro OCF files. An OCF file holds
// a sequence of records sharing one schema; the whole sequence becomes
// an Array of Objects, one per record, matching how the CSV/TSV parsers
// represent rows.
type Parser struct{}

// NewParser returns an Avro OCF parser.
func NewParser() *Parser { return &Parser{} }

// Parse reads every record out of an OCF byte payload into an Array of
// Objects. Field order within each record follows the record schema's
// declared field order, not map iteration order, since hamba/avro
// decodes generically into map[string]any and loses it otherwise.
func (p *Parser) Parse(data []byte) (value.Value, error) {
	dec, err := ocf.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return value.Null, &format.ParseError{Format: "avro", ByteOffset: -1, Message: err.Error()}
	}

	schema := dec.Schema()

	var rows []value.Value
	for dec.HasNext() {
		var rec map[string]any
		if err := dec.Decode(&rec); err != nil {
			return value.Null, &format.ParseError{Format: "avro", ByteOffset: -1, Message: fmt.Sprintf("decode record: %s", err)}
		}
		rows = append(rows, recordToValue(rec, schema))
	}
	if err := dec.Error(); err != nil {
		return value.Null, &format.ParseError{Format: "avro", ByteOffset: -1, Message: err.Error()}
	}

	return value.Array(rows), nil
}

// recordToValue converts a decoded Avro record into an Object, ordering
// keys by the record schema's field order when schema is a
// *avro.RecordSchema; any field the schema doesn't account for (should
// not happen for a well-formed decode) is appended afterward in map
// iteration order so no data is silently dropped.
func recordToValue(rec map[string]any, schema avro.Schema) value.Value {
	rs, ok := schema.(*avro.RecordSchema)
	if !ok {
		return mapToValueSorted(rec)
	}

	obj := value.NewObjectCap(len(rec))
	seen := make(map[string]bool, len(rec))
	for _, field := range rs.Fields() {
		name := field.Name()
		if v, ok := rec[name]; ok {
			obj.Set(name, anyToValue(v, field.Type()))
			seen[name] = true
		}
	}
	for k, v := range rec {
		if !seen[k] {
			obj.Set(k, anyToValue(v, nil))
		}
	}
	return value.FromObject(obj)
}

// anyToValue converts one decoded Avro field value to a Value, using
// the field's declared schema (when known) to recurse into nested
// records with the right field order and to distinguish Avro's union
// "null or T" encoding (decoded as a bare nil or the unwrapped T).
func anyToValue(x any, schema avro.Schema) value.Value {
	if x == nil {
		return value.Null
	}

	switch t := x.(type) {
	case map[string]any:
		if rs, ok := unwrapRecordSchema(schema); ok {
			return recordToValue(t, rs)
		}
		return mapToValueSorted(t)
	case []any:
		elemSchema := unwrapArraySchema(schema)
		elems := make([]value.Value, len(t))
		for i, e := range t {
			elems[i] = anyToValue(e, elemSchema)
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

// unwrapRecordSchema finds the *avro.RecordSchema a map value should be
// read against, looking through Avro unions (["null", "Record"]).
func unwrapRecordSchema(schema avro.Schema) (*avro.RecordSchema, bool) {
	switch s := schema.(type) {
	case *avro.RecordSchema:
		return s, true
	case *avro.UnionSchema:
		for _, t := range s.Types() {
			if rs, ok := unwrapRecordSchema(t); ok {
				return rs, true
			}
		}
	}
	return nil, false
}

// unwrapArraySchema returns the element schema of an Avro array schema,
// looking through unions the same way unwrapRecordSchema does.
func unwrapArraySchema(schema avro.Schema) avro.Schema {
	switch s := schema.(type) {
	case *avro.ArraySchema:
		return s.Items()
	case *avro.UnionSchema:
		for _, t := range s.Types() {
			if as, ok := t.(*avro.ArraySchema); ok {
				return as.Items()
			}
		}
	}
	return nil
}

// mapToValueSorted converts a map[string]any with no schema-derived
// order (an Avro "map" type, which the spec treats as genuinely
// unordered) into an Object keyed in sorted order, for determinism.
func mapToValueSorted(m map[string]any) value.Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	obj := value.NewObjectCap(len(keys))
	for _, k := range keys {
		obj.Set(k, anyToValue(m[k], nil))
	}
	return value.FromObject(obj)
}

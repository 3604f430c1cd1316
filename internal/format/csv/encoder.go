package csv

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	jsonfmt "github.com/GeoffMall/toon/internal/format/json"

	"github.com/GeoffMall/toon/internal/format"
	"github.com/GeoffMall/toon/internal/value"
)

// Encoder implements format.Encoder for CSV. The root must be an Array
// of Objects (header is the union of keys in first-occurrence order
// across rows, missing cells emitted empty) or an Array of Arrays (rows
// of stringified cells, no header); anything else is EncodeError::NotTabular.
// encoding/csv's Writer does the quoting, so the encoder leans on it
// rather than re-implementing escaping: a cell is quoted when it contains
// the delimiter, a quote, or a line break (embedded quotes doubled), and
// also when it begins with a whitespace character or is exactly `\.`.
type Encoder struct {
	Delimiter rune
}

// Encode renders v as CSV.
func (e *Encoder) Encode(v value.Value) (format.EncodeResult, error) {
	delim := e.Delimiter
	if delim == 0 {
		delim = ','
	}

	if v.Kind() != value.KindArray {
		return format.EncodeResult{}, &format.EncodeError{Kind: format.NotTabular, Encoder: "csv"}
	}
	rows := v.Array()

	if len(rows) > 0 && rows[0].Kind() == value.KindArray {
		return encodeArrayOfArrays(rows, delim)
	}
	return encodeArrayOfObjects(rows, delim)
}

func encodeArrayOfArrays(rows []value.Value, delim rune) (format.EncodeResult, error) {
	var warnings []string
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Comma = delim

	for i, row := range rows {
		if row.Kind() != value.KindArray {
			return format.EncodeResult{}, &format.EncodeError{Kind: format.NotTabular, Encoder: "csv"}
		}
		record := make([]string, 0, len(row.Array()))
		for j, cell := range row.Array() {
			s, warn := cellString(cell, fmt.Sprintf("[%d][%d]", i, j))
			if warn != "" {
				warnings = append(warnings, warn)
			}
			record = append(record, s)
		}
		if err := w.Write(record); err != nil {
			return format.EncodeResult{}, &format.EncodeError{Kind: format.UnrepresentableValue, Encoder: "csv"}
		}
	}
	w.Flush()
	return format.EncodeResult{Text: strings.TrimSuffix(b.String(), "\n"), Warning: strings.Join(warnings, "; ")}, nil
}

func encodeArrayOfObjects(rows []value.Value, delim rune) (format.EncodeResult, error) {
	var header []string
	seen := make(map[string]bool)
	for _, row := range rows {
		if row.Kind() != value.KindObject {
			return format.EncodeResult{}, &format.EncodeError{Kind: format.NotTabular, Encoder: "csv"}
		}
		for _, k := range row.Object().Keys() {
			if !seen[k] {
				seen[k] = true
				header = append(header, k)
			}
		}
	}

	var warnings []string
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Comma = delim

	if err := w.Write(header); err != nil {
		return format.EncodeResult{}, &format.EncodeError{Kind: format.UnrepresentableValue, Encoder: "csv"}
	}

	for i, row := range rows {
		obj := row.Object()
		record := make([]string, len(header))
		for j, key := range header {
			cell, ok := obj.Get(key)
			if !ok {
				record[j] = ""
				continue
			}
			s, warn := cellString(cell, fmt.Sprintf("[%d].%s", i, key))
			if warn != "" {
				warnings = append(warnings, warn)
			}
			record[j] = s
		}
		if err := w.Write(record); err != nil {
			return format.EncodeResult{}, &format.EncodeError{Kind: format.UnrepresentableValue, Encoder: "csv"}
		}
	}
	w.Flush()
	return format.EncodeResult{Text: strings.TrimSuffix(b.String(), "\n"), Warning: strings.Join(warnings, "; ")}, nil
}

// cellString stringifies a single cell. Non-primitive cells have no
// faithful CSV representation, so they fall back to compact JSON and
// report a warning at atPath, per the total-encoder contract in §4.3.
func cellString(v value.Value, atPath string) (string, string) {
	switch v.Kind() {
	case value.KindNull:
		return "", ""
	case value.KindBool:
		return strconv.FormatBool(v.Bool()), ""
	case value.KindInt:
		return strconv.FormatInt(v.Int(), 10), ""
	case value.KindFloat:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), ""
	case value.KindString:
		return v.Str(), ""
	default:
		enc := jsonfmt.NewEncoder()
		res, err := enc.Encode(v)
		if err != nil {
			return "", fmt.Sprintf("value at %s could not be stringified", atPath)
		}
		return res.Text, fmt.Sprintf("value at %s is not a primitive; stringified as compact JSON", atPath)
	}
}

package tsv

import (
	"fmt"
	"strconv"
	"strings"

	jsonfmt "github.com/GeoffMall/toon/internal/format/json"

	"github.com/GeoffMall/toon/internal/format"
	"github.com/GeoffMall/toon/internal/value"
)

// Encoder implements format.Encoder for TSV. Same root-shape rules as
// CSV (Array of Objects preferred, Array of Arrays as a fallback), but
// cells are escaped rather than quoted: a literal tab becomes "\t" and a
// literal newline becomes "\n", so the U+0009 separator and record break
// stay unambiguous without a quoting mechanism.
type Encoder struct{}

// Encode renders v as TSV.
func (e *Encoder) Encode(v value.Value) (format.EncodeResult, error) {
	if v.Kind() != value.KindArray {
		return format.EncodeResult{}, &format.EncodeError{Kind: format.NotTabular, Encoder: "tsv"}
	}
	rows := v.Array()

	if len(rows) > 0 && rows[0].Kind() == value.KindArray {
		return encodeArrayOfArrays(rows)
	}
	return encodeArrayOfObjects(rows)
}

func encodeArrayOfArrays(rows []value.Value) (format.EncodeResult, error) {
	var warnings []string
	var lines []string
	for i, row := range rows {
		if row.Kind() != value.KindArray {
			return format.EncodeResult{}, &format.EncodeError{Kind: format.NotTabular, Encoder: "tsv"}
		}
		cells := make([]string, 0, len(row.Array()))
		for j, cell := range row.Array() {
			s, warn := cellString(cell, fmt.Sprintf("[%d][%d]", i, j))
			if warn != "" {
				warnings = append(warnings, warn)
			}
			cells = append(cells, s)
		}
		lines = append(lines, strings.Join(cells, "\t"))
	}
	return format.EncodeResult{Text: strings.Join(lines, "\n"), Warning: strings.Join(warnings, "; ")}, nil
}

func encodeArrayOfObjects(rows []value.Value) (format.EncodeResult, error) {
	var header []string
	seen := make(map[string]bool)
	for _, row := range rows {
		if row.Kind() != value.KindObject {
			return format.EncodeResult{}, &format.EncodeError{Kind: format.NotTabular, Encoder: "tsv"}
		}
		for _, k := range row.Object().Keys() {
			if !seen[k] {
				seen[k] = true
				header = append(header, k)
			}
		}
	}

	var warnings []string
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(escapeAll(header), "\t"))

	for i, row := range rows {
		obj := row.Object()
		cells := make([]string, len(header))
		for j, key := range header {
			cell, ok := obj.Get(key)
			if !ok {
				cells[j] = ""
				continue
			}
			s, warn := cellString(cell, fmt.Sprintf("[%d].%s", i, key))
			if warn != "" {
				warnings = append(warnings, warn)
			}
			cells[j] = s
		}
		lines = append(lines, strings.Join(cells, "\t"))
	}

	return format.EncodeResult{Text: strings.Join(lines, "\n"), Warning: strings.Join(warnings, "; ")}, nil
}

func escapeAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = escapeCell(s)
	}
	return out
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\t", "\\t")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

// cellString stringifies and escapes a single cell, falling back to
// compact JSON (with a warning) for non-primitive values, same as CSV.
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
		return escapeCell(v.Str()), ""
	default:
		enc := jsonfmt.NewEncoder()
		res, err := enc.Encode(v)
		if err != nil {
			return "", fmt.Sprintf("value at %s could not be stringified", atPath)
		}
		return escapeCell(res.Text), fmt.Sprintf("value at %s is not a primitive; stringified as compact JSON", atPath)
	}
}

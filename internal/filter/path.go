package filter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/GeoffMall/toon/internal/value"
)

// stepKind identifies one segment of a parsed path expression.
type stepKind int

const (
	stepField stepKind = iota
	stepIndex
	stepWildcard
	stepPredicate
)

// step is one segment of a path: a member lookup, an array index
// (possibly negative), a wildcard projection, or a predicate filter.
type step struct {
	kind stepKind

	field string // stepField

	index int // stepIndex

	predKey     string // stepPredicate
	predOp      string
	predLiteral value.Value
}

// ParsePath parses a dot-and-bracket path expression: `name`, `a.b.c`,
// `[n]` (0-based, negative counts from the end), `[*]` (projection) and
// `[?key op literal]` (predicate, op one of == != < <= > >=).
func ParsePath(expr string) ([]step, error) {
	if expr == "" {
		return nil, &InvalidPathError{Expression: expr, Message: "empty path"}
	}

	var steps []step
	i, n := 0, len(expr)
	for i < n {
		switch expr[i] {
		case '.':
			i++
			continue
		case '[':
			end := strings.IndexByte(expr[i:], ']')
			if end < 0 {
				return nil, &InvalidPathError{Expression: expr, Message: "unterminated '['"}
			}
			inner := expr[i+1 : i+end]
			s, err := parseBracket(expr, inner)
			if err != nil {
				return nil, err
			}
			steps = append(steps, s)
			i += end + 1
		default:
			j := i
			for j < n && expr[j] != '.' && expr[j] != '[' {
				j++
			}
			name := expr[i:j]
			if name == "" {
				return nil, &InvalidPathError{Expression: expr, Message: "empty segment"}
			}
			steps = append(steps, step{kind: stepField, field: name})
			i = j
		}
	}
	return steps, nil
}

func parseBracket(expr, inner string) (step, error) {
	if inner == "*" {
		return step{kind: stepWildcard}, nil
	}
	if strings.HasPrefix(inner, "?") {
		return parsePredicate(expr, inner[1:])
	}
	n, err := strconv.Atoi(inner)
	if err != nil {
		return step{}, &InvalidPathError{Expression: expr, Message: fmt.Sprintf("invalid index %q", inner)}
	}
	return step{kind: stepIndex, index: n}, nil
}

var predicateOps = []string{"==", "!=", "<=", ">=", "<", ">"}

func parsePredicate(expr, inner string) (step, error) {
	for _, op := range predicateOps {
		idx := strings.Index(inner, op)
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(inner[:idx])
		litStr := strings.TrimSpace(inner[idx+len(op):])
		if key == "" {
			return step{}, &InvalidPathError{Expression: expr, Message: "predicate missing key"}
		}
		lit, err := parseLiteral(litStr)
		if err != nil {
			return step{}, &InvalidPathError{Expression: expr, Message: fmt.Sprintf("invalid literal %q: %s", litStr, err)}
		}
		return step{kind: stepPredicate, predKey: key, predOp: op, predLiteral: lit}, nil
	}
	return step{}, &InvalidPathError{Expression: expr, Message: "predicate missing comparison operator"}
}

// parseLiteral parses a predicate literal spelled as a JSON scalar.
func parseLiteral(s string) (value.Value, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var tok any
	if err := dec.Decode(&tok); err != nil {
		return value.Null, err
	}
	switch t := tok.(type) {
	case nil:
		return value.Null, nil
	case bool:
		return value.Bool(t), nil
	case string:
		return value.String(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return value.Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return value.Null, err
		}
		return value.Float(f), nil
	default:
		return value.Null, fmt.Errorf("not a scalar")
	}
}

// EvalPath evaluates a parsed path against v. A path that selects
// nothing returns Null.
func EvalPath(v value.Value, steps []step) value.Value {
	if len(steps) == 0 {
		return v
	}

	s, rest := steps[0], steps[1:]
	switch s.kind {
	case stepField:
		if v.Kind() != value.KindObject {
			return value.Null
		}
		obj := v.Object()
		if obj == nil {
			return value.Null
		}
		val, ok := obj.Get(s.field)
		if !ok {
			return value.Null
		}
		return EvalPath(val, rest)

	case stepIndex:
		if v.Kind() != value.KindArray {
			return value.Null
		}
		arr := v.Array()
		idx := s.index
		if idx < 0 {
			idx += len(arr)
		}
		if idx < 0 || idx >= len(arr) {
			return value.Null
		}
		return EvalPath(arr[idx], rest)

	case stepWildcard:
		if v.Kind() != value.KindArray {
			return value.Null
		}
		arr := v.Array()
		out := make([]value.Value, len(arr))
		for i, e := range arr {
			out[i] = EvalPath(e, rest)
		}
		return value.Array(out)

	case stepPredicate:
		if v.Kind() != value.KindArray {
			return value.Null
		}
		var kept []value.Value
		for _, e := range v.Array() {
			if matchPredicate(e, s) {
				kept = append(kept, EvalPath(e, rest))
			}
		}
		return value.Array(kept)

	default:
		return value.Null
	}
}

func matchPredicate(e value.Value, s step) bool {
	if e.Kind() != value.KindObject {
		return false
	}
	obj := e.Object()
	fv, ok := obj.Get(s.predKey)
	if !ok {
		return false
	}
	return comparePredicate(fv, s.predOp, s.predLiteral)
}

func comparePredicate(a value.Value, op string, lit value.Value) bool {
	switch op {
	case "==":
		return value.Equal(a, lit)
	case "!=":
		return !value.Equal(a, lit)
	}

	if af, aok := numericOf(a); aok {
		if bf, bok := numericOf(lit); bok {
			return compareFloats(af, op, bf)
		}
	}
	if a.Kind() == value.KindString && lit.Kind() == value.KindString {
		return compareStrings(a.Str(), op, lit.Str())
	}
	return false
}

func numericOf(v value.Value) (float64, bool) {
	switch v.Kind() {
	case value.KindInt:
		return float64(v.Int()), true
	case value.KindFloat:
		return v.Float(), true
	default:
		return 0, false
	}
}

func compareFloats(a float64, op string, b float64) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	default:
		return false
	}
}

func compareStrings(a, op, b string) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	default:
		return false
	}
}

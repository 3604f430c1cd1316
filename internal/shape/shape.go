// Package shape classifies a Value's overall structure and recommends
// which encoder is likely to produce the smallest output for it.
package shape

import "github.com/GeoffMall/toon/internal/value"

// Tag is a shape classification.
type Tag int

const (
	UniformArray Tag = iota
	SparseArray
	TabularData
	FlatObject
	NestedObject
	Primitive
	Empty
	Mixed
)

// String returns the tag's name, used in reports and recommendation lookups.
func (t Tag) String() string {
	switch t {
	case UniformArray:
		return "UniformArray"
	case SparseArray:
		return "SparseArray"
	case TabularData:
		return "TabularData"
	case FlatObject:
		return "FlatObject"
	case NestedObject:
		return "NestedObject"
	case Primitive:
		return "Primitive"
	case Empty:
		return "Empty"
	default:
		return "Mixed"
	}
}

// MarshalJSON renders the tag as its name rather than its ordinal,
// since the ordinal has no meaning outside this package.
func (t Tag) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// sampleCap bounds how many array elements the analyzer inspects for
// uniformity; arrays longer than this are sampled, not scanned exhaustively.
const sampleCap = 100

// Report is the analyzer's classification output.
type Report struct {
	Tag        Tag
	ArrayLen   int
	FieldCount int
	MaxDepth   int
	SampleKeys []string

	// AllPrimitive is only meaningful for UniformArray: it's true when
	// every field of every element is a primitive value, false when at
	// least one element holds a nested Object or Array. Recommend uses
	// this to pick between the two UniformArray rows of the
	// recommendation table.
	AllPrimitive bool
}

// Analyze classifies v and measures its shape metrics.
func Analyze(v value.Value) Report {
	r := classify(v)
	r.MaxDepth = maxDepth(v)
	return r
}

func classify(v value.Value) Report {
	switch v.Kind() {
	case value.KindNull:
		return Report{Tag: Empty}

	case value.KindBool, value.KindInt, value.KindFloat, value.KindString:
		return Report{Tag: Primitive}

	case value.KindObject:
		obj := v.Object()
		if obj == nil || obj.Len() == 0 {
			return Report{Tag: Empty}
		}
		allPrimitive := true
		for _, k := range obj.Keys() {
			val, _ := obj.Get(k)
			if !val.IsPrimitive() {
				allPrimitive = false
				break
			}
		}
		keys := obj.Keys()
		sample := keys
		if len(sample) > 5 {
			sample = sample[:5]
		}
		if allPrimitive {
			return Report{Tag: FlatObject, FieldCount: obj.Len(), SampleKeys: sample}
		}
		return Report{Tag: NestedObject, FieldCount: obj.Len(), SampleKeys: sample}

	case value.KindArray:
		return classifyArray(v.Array())

	default:
		return Report{Tag: Mixed}
	}
}

func classifyArray(elems []value.Value) Report {
	n := len(elems)
	if n == 0 {
		return Report{Tag: Empty}
	}

	sampled := elems
	if len(sampled) > sampleCap {
		sampled = sampled[:sampleCap]
	}

	allObjects := true
	allArrays := true
	for _, e := range sampled {
		if e.Kind() != value.KindObject {
			allObjects = false
		}
		if e.Kind() != value.KindArray {
			allArrays = false
		}
	}

	if allArrays {
		if r, ok := classifyArrayOfArrays(sampled); ok {
			r.ArrayLen = n
			return r
		}
		return Report{Tag: Mixed, ArrayLen: n}
	}

	if allObjects {
		r := classifyArrayOfObjects(sampled)
		r.ArrayLen = n
		return r
	}

	return Report{Tag: Mixed, ArrayLen: n}
}

func classifyArrayOfArrays(sampled []value.Value) (Report, bool) {
	rowLen := -1
	for _, row := range sampled {
		elems := row.Array()
		for _, cell := range elems {
			if !cell.IsPrimitive() {
				return Report{Tag: Mixed}, false
			}
		}
		if rowLen == -1 {
			rowLen = len(elems)
		} else if len(elems) != rowLen {
			return Report{Tag: Mixed}, false
		}
	}
	return Report{Tag: TabularData, FieldCount: rowLen}, true
}

func classifyArrayOfObjects(sampled []value.Value) Report {
	first := sampled[0].Object()
	keys := first.Keys()

	identical := true
	overlapping := true
	allPrimitiveValues := true
	seenKeys := make(map[string]bool, len(keys))
	for _, k := range keys {
		seenKeys[k] = true
	}

	for _, elem := range sampled {
		obj := elem.Object()
		ok := obj.Keys()
		if !sameKeySet(keys, ok) {
			identical = false
		}
		if !keysOverlap(seenKeys, ok) {
			overlapping = false
		}
		for _, k := range ok {
			val, _ := obj.Get(k)
			if !val.IsPrimitive() {
				allPrimitiveValues = false
			}
		}
	}

	sample := keys
	if len(sample) > 5 {
		sample = sample[:5]
	}

	switch {
	case identical:
		// Identical key sets across every element. The recommendation
		// table splits this single shape into two rows depending on
		// whether the values stay primitive (TSV fits) or some element
		// nests an Object/Array (TSV can't represent that cell, TOON
		// can) — AllPrimitive carries that distinction through.
		return Report{Tag: UniformArray, FieldCount: len(keys), SampleKeys: sample, AllPrimitive: allPrimitiveValues}
	case overlapping:
		return Report{Tag: SparseArray, FieldCount: len(keys), SampleKeys: sample}
	default:
		return Report{Tag: Mixed, FieldCount: len(keys), SampleKeys: sample}
	}
}

func sameKeySet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func keysOverlap(seen map[string]bool, keys []string) bool {
	for _, k := range keys {
		if seen[k] {
			return true
		}
	}
	return len(keys) == 0
}

// maxDepth measures nesting depth exactly: a primitive has depth 0;
// each level of Object/Array nesting adds one, so an empty container
// has depth 1.
func maxDepth(v value.Value) int {
	switch v.Kind() {
	case value.KindArray:
		max := 0
		for _, e := range v.Array() {
			if d := maxDepth(e); d > max {
				max = d
			}
		}
		return max + 1
	case value.KindObject:
		obj := v.Object()
		if obj == nil {
			return 1
		}
		max := 0
		for _, k := range obj.Keys() {
			val, _ := obj.Get(k)
			if d := maxDepth(val); d > max {
				max = d
			}
		}
		return max + 1
	default:
		return 0
	}
}

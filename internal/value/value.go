// Package value defines the ordered, typed tree that every parser, filter
// and encoder in toon operates on. It is the only currency passed between
// pipeline stages.
package value

import "fmt"

// Kind identifies which variant of Value is populated.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns a human-readable name for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one of Null, Bool, Number (Int or Float), String, Array or
// Object. Exactly one of the typed fields below is meaningful for a given
// Kind; the zero Value is Null.
//
// Value has no shared substructure: Array and Object own their children
// outright. Filters that "rewrite in place" take a Value by value and
// return a new Value of the same nominal kind; nothing here holds a
// back-reference into a caller's tree.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Value
	obj  *Object
}

// Null is the zero Value.
var Null = Value{kind: KindNull}

// Bool constructs a Bool Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int constructs an Integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float constructs a Float Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String constructs a String Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array constructs an Array Value from already-built elements. The slice
// is taken as-is; callers must not mutate it afterward.
func Array(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindArray, arr: elems}
}

// EmptyArray returns a Value holding a zero-length Array.
func EmptyArray() Value { return Array(nil) }

// FromObject constructs an Object Value wrapping the given Object.
func FromObject(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: KindObject, obj: o}
}

// Kind reports which variant this Value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether this Value is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsPrimitive reports whether this Value is Null, Bool, Int, Float or
// String (i.e. not a container).
func (v Value) IsPrimitive() bool {
	switch v.kind {
	case KindNull, KindBool, KindInt, KindFloat, KindString:
		return true
	default:
		return false
	}
}

// Bool returns the boolean payload; only meaningful when Kind() == KindBool.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload; only meaningful when Kind() == KindInt.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload; only meaningful when Kind() == KindFloat.
func (v Value) Float() float64 { return v.f }

// Str returns the string payload; only meaningful when Kind() == KindString.
func (v Value) Str() string { return v.s }

// Array returns the element slice; only meaningful when Kind() == KindArray.
// The returned slice shares storage with v and must not be mutated.
func (v Value) Array() []Value { return v.arr }

// Len reports the number of elements/keys for Array/Object, 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		if v.obj == nil {
			return 0
		}
		return v.obj.Len()
	default:
		return 0
	}
}

// Object returns the underlying Object; only meaningful when
// Kind() == KindObject. The returned pointer shares storage with v and
// must not be mutated by callers that don't own the Value outright.
func (v Value) Object() *Object {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// NumberIsInt reports whether this Value is a Number stored as an exact
// int64 rather than a float64 (invariant 2: promotion is one-way).
func (v Value) NumberIsInt() bool { return v.kind == KindInt }

// Equal reports deep, order-sensitive equality: Object key order and
// Array element order both participate.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i == b.i
	case KindFloat:
		return a.f == b.f
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		ak, bk := a.obj.Keys(), b.obj.Keys()
		if len(ak) != len(bk) {
			return false
		}
		for i, k := range ak {
			if k != bk[i] {
				return false
			}
			av, _ := a.obj.Get(k)
			bv, _ := b.obj.Get(k)
			if !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// GoString implements fmt.GoStringer for readable test failure output.
func (v Value) GoString() string {
	switch v.kind {
	case KindNull:
		return "value.Null"
	case KindBool:
		return fmt.Sprintf("value.Bool(%v)", v.b)
	case KindInt:
		return fmt.Sprintf("value.Int(%d)", v.i)
	case KindFloat:
		return fmt.Sprintf("value.Float(%v)", v.f)
	case KindString:
		return fmt.Sprintf("value.String(%q)", v.s)
	case KindArray:
		return fmt.Sprintf("value.Array(%#v)", v.arr)
	case KindObject:
		return fmt.Sprintf("value.FromObject(%#v)", v.obj)
	default:
		return "value.Value{<invalid>}"
	}
}

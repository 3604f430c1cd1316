package filter

import (
	"fmt"

	"github.com/GeoffMall/toon/internal/value"
)

// MaxDepth replaces non-empty Objects and Arrays at or past a depth cap
// with a summary String, rather than dropping them, so truncation stays
// visible to whoever consumes the output. The root is depth 0;
// primitives and empty containers are always preserved regardless of depth.
type MaxDepth struct {
	Depth int
}

// NewMaxDepth returns a depth filter capped at depth (depth >= 0).
func NewMaxDepth(depth int) *MaxDepth { return &MaxDepth{Depth: depth} }

// Apply walks v, summarizing any non-empty Object/Array reached at depth >= f.Depth.
func (f *MaxDepth) Apply(v value.Value) (value.Value, error) {
	return applyDepth(v, 0, f.Depth), nil
}

func applyDepth(v value.Value, depth, max int) value.Value {
	switch v.Kind() {
	case value.KindObject:
		obj := v.Object()
		if obj == nil || obj.Len() == 0 {
			return v
		}
		if depth >= max {
			return value.String(fmt.Sprintf("{…%d keys}", obj.Len()))
		}
		out := value.NewObjectCap(obj.Len())
		for _, k := range obj.Keys() {
			val, _ := obj.Get(k)
			out.Set(k, applyDepth(val, depth+1, max))
		}
		return value.FromObject(out)

	case value.KindArray:
		arr := v.Array()
		if len(arr) == 0 {
			return v
		}
		if depth >= max {
			return value.String(fmt.Sprintf("[…%d items]", len(arr)))
		}
		out := make([]value.Value, len(arr))
		for i, e := range arr {
			out[i] = applyDepth(e, depth+1, max)
		}
		return value.Array(out)

	default:
		return v
	}
}

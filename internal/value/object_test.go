package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectSetPreservesInsertionOrder(t *testing.T) {
	o := NewObject()
	o.Set("b", Int(2))
	o.Set("a", Int(1))
	o.Set("c", Int(3))

	assert.Equal(t, []string{"b", "a", "c"}, o.Keys())
}

func TestObjectSetDuplicateKeyKeepsOriginalPosition(t *testing.T) {
	o := NewObject()
	o.Set("a", Int(1))
	o.Set("b", Int(2))
	o.Set("a", Int(99)) // last wins, original position preserved

	assert.Equal(t, []string{"a", "b"}, o.Keys())
	v, ok := o.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(99), v.Int())
}

func TestObjectDeletePreservesOrderOfRemainder(t *testing.T) {
	o := NewObject()
	o.Set("a", Int(1))
	o.Set("b", Int(2))
	o.Set("c", Int(3))
	o.Delete("b")

	assert.Equal(t, []string{"a", "c"}, o.Keys())
	assert.False(t, o.Has("b"))
}

func TestObjectLenAndClone(t *testing.T) {
	o := NewObject()
	o.Set("a", Int(1))
	o.Set("b", Int(2))
	assert.Equal(t, 2, o.Len())

	clone := o.Clone()
	clone.Set("c", Int(3))
	assert.Equal(t, 2, o.Len())
	assert.Equal(t, 3, clone.Len())
}

func TestCloneValueIsDeep(t *testing.T) {
	inner := NewObject()
	inner.Set("x", Int(1))
	orig := Array([]Value{FromObject(inner)})

	clone := CloneValue(orig)
	clonedInner := clone.Array()[0].Object()
	clonedInner.Set("x", Int(2))

	origInner := orig.Array()[0].Object()
	v, ok := origInner.Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.Int(), "mutating clone must not affect original")
}

func TestEqualOrderSensitive(t *testing.T) {
	a := NewObject()
	a.Set("x", Int(1))
	a.Set("y", Int(2))

	b := NewObject()
	b.Set("y", Int(2))
	b.Set("x", Int(1))

	assert.False(t, Equal(FromObject(a), FromObject(b)), "Equal must be order-sensitive for Object keys")

	c := NewObject()
	c.Set("x", Int(1))
	c.Set("y", Int(2))
	assert.True(t, Equal(FromObject(a), FromObject(c)))
}

func TestNumberPromotionIsOneWay(t *testing.T) {
	i := Int(5)
	f := Float(5.0)
	assert.Equal(t, KindInt, i.Kind())
	assert.Equal(t, KindFloat, f.Kind())
	assert.False(t, Equal(i, f), "Int and Float of the same magnitude must not compare Equal")
}

func TestArrayEqualityIsElementwiseAndOrderSensitive(t *testing.T) {
	a := Array([]Value{Int(1), Int(2), Int(3)})
	b := Array([]Value{Int(1), Int(2), Int(3)})
	c := Array([]Value{Int(3), Int(2), Int(1)})

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestIsPrimitive(t *testing.T) {
	assert.True(t, Null.IsPrimitive())
	assert.True(t, Bool(true).IsPrimitive())
	assert.True(t, Int(1).IsPrimitive())
	assert.True(t, Float(1).IsPrimitive())
	assert.True(t, String("s").IsPrimitive())
	assert.False(t, EmptyArray().IsPrimitive())
	assert.False(t, FromObject(NewObject()).IsPrimitive())
}

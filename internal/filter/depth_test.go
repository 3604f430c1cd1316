package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeoffMall/toon/internal/format/json"
	"github.com/GeoffMall/toon/internal/value"
)

func TestDepthScenarioS3(t *testing.T) {
	p := json.NewParser()
	root, err := p.Parse([]byte(`{"a":{"b":{"c":{"d":1}}}}`))
	require.NoError(t, err)

	f := NewMaxDepth(2)
	got, err := f.Apply(root)
	require.NoError(t, err)

	enc := json.NewEncoder()
	res, err := enc.Encode(got)
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"b":"{…1 keys}"}}`, res.Text)
}

func TestDepthPrimitivesAlwaysPreserved(t *testing.T) {
	f := NewMaxDepth(0)
	got, err := f.Apply(value.Int(5))
	require.NoError(t, err)
	assert.True(t, value.Equal(value.Int(5), got))
}

func TestDepthEmptyContainersPassThrough(t *testing.T) {
	f := NewMaxDepth(0)
	got, err := f.Apply(value.EmptyArray())
	require.NoError(t, err)
	assert.True(t, value.Equal(value.EmptyArray(), got))
}

func TestDepthArraySummary(t *testing.T) {
	root := value.FromObject(obj("items", value.Array([]value.Value{value.Int(1), value.Int(2), value.Int(3)})))
	f := NewMaxDepth(1)
	got, err := f.Apply(root)
	require.NoError(t, err)

	items, ok := got.Object().Get("items")
	require.True(t, ok)
	assert.Equal(t, "[…3 items]", items.Str())
}

func TestDepthIdempotent(t *testing.T) {
	root := value.FromObject(obj(
		"a", value.FromObject(obj(
			"b", value.FromObject(obj(
				"c", value.FromObject(obj("d", value.Int(1))),
			)),
		)),
	))

	f := NewMaxDepth(2)
	once, err := f.Apply(root)
	require.NoError(t, err)
	twice, err := f.Apply(once)
	require.NoError(t, err)

	assert.True(t, value.Equal(once, twice))
}

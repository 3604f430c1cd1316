package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeoffMall/toon/internal/value"
)

func TestParserPreservesKeyOrder(t *testing.T) {
	p := NewParser()
	v, err := p.Parse([]byte(`{"z":1,"a":2,"m":3}`))
	require.NoError(t, err)

	obj := v.Object()
	require.NotNil(t, obj)
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())
}

func TestParserDuplicateKeyLastWinsOriginalPosition(t *testing.T) {
	p := NewParser()
	v, err := p.Parse([]byte(`{"a":1,"b":2,"a":3}`))
	require.NoError(t, err)

	obj := v.Object()
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	got, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(3), got.Int())
}

func TestParserIntegerStaysInteger(t *testing.T) {
	p := NewParser()
	v, err := p.Parse([]byte(`42`))
	require.NoError(t, err)
	assert.Equal(t, value.KindInt, v.Kind())
	assert.Equal(t, int64(42), v.Int())
}

func TestParserFloatStaysFloat(t *testing.T) {
	p := NewParser()
	v, err := p.Parse([]byte(`42.5`))
	require.NoError(t, err)
	assert.Equal(t, value.KindFloat, v.Kind())
	assert.InDelta(t, 42.5, v.Float(), 1e-9)

	v2, err := p.Parse([]byte(`4e2`))
	require.NoError(t, err)
	assert.Equal(t, value.KindFloat, v2.Kind())
}

func TestParserRejectsTrailingGarbage(t *testing.T) {
	p := NewParser()
	_, err := p.Parse([]byte(`{"a":1} garbage`))
	assert.Error(t, err)
}

func TestParserEmptyInputIsError(t *testing.T) {
	p := NewParser()
	_, err := p.Parse([]byte(``))
	assert.Error(t, err)
}

func TestEncoderCompactNoWhitespace(t *testing.T) {
	p := NewParser()
	v, err := p.Parse([]byte(`{"a": 1, "b": [1, 2, 3]}`))
	require.NoError(t, err)

	enc := NewEncoder()
	res, err := enc.Encode(v)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":[1,2,3]}`, res.Text)
}

func TestEncoderEscapesStrings(t *testing.T) {
	obj := value.NewObject()
	obj.Set("s", value.String("line1\nline2\t\"quoted\"\\"))
	enc := NewEncoder()
	res, err := enc.Encode(value.FromObject(obj))
	require.NoError(t, err)
	assert.Equal(t, `{"s":"line1\nline2\t\"quoted\"\\"}`, res.Text)
}

func TestEncoderIntegerValuedFloatKeepsDecimalPoint(t *testing.T) {
	enc := NewEncoder()
	res, err := enc.Encode(value.Float(400))
	require.NoError(t, err)
	assert.Equal(t, "400.0", res.Text)

	p := NewParser()
	v2, err := p.Parse([]byte(res.Text))
	require.NoError(t, err)
	assert.Equal(t, value.KindFloat, v2.Kind())
	assert.InDelta(t, 400.0, v2.Float(), 1e-9)
}

func TestParseEncodeRoundTrip(t *testing.T) {
	inputs := []string{
		`null`,
		`true`,
		`false`,
		`0`,
		`-17`,
		`3.25`,
		`400.0`,
		`"hello"`,
		`[]`,
		`{}`,
		`{"a":[1,2,{"b":"c"}]}`,
	}
	p := NewParser()
	enc := NewEncoder()
	for _, in := range inputs {
		v, err := p.Parse([]byte(in))
		require.NoError(t, err, in)
		res, err := enc.Encode(v)
		require.NoError(t, err, in)

		v2, err := p.Parse([]byte(res.Text))
		require.NoError(t, err, in)
		assert.True(t, value.Equal(v, v2), "round trip mismatch for %q -> %q", in, res.Text)
	}
}

func TestDetectorScoresJSON(t *testing.T) {
	d := &Detector{}
	assert.Equal(t, 100, d.Detect([]byte("  {\"a\":1}")))
	assert.Equal(t, 100, d.Detect([]byte("[1,2,3]")))
	assert.Equal(t, 0, d.Detect([]byte("key: value")))
	assert.Equal(t, 0, d.Detect([]byte("")))
}

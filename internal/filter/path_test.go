package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeoffMall/toon/internal/value"
)

func obj(pairs ...any) *value.Object {
	o := value.NewObject()
	for i := 0; i+1 < len(pairs); i += 2 {
		o.Set(pairs[i].(string), pairs[i+1].(value.Value))
	}
	return o
}

func TestIncludeScenarioS4PathSelection(t *testing.T) {
	root := value.FromObject(obj(
		"users", value.Array([]value.Value{
			value.FromObject(obj("id", value.Int(1), "name", value.String("A"))),
			value.FromObject(obj("id", value.Int(2), "name", value.String("B"))),
		}),
		"meta", value.FromObject(obj("page", value.Int(1))),
	))

	inc, err := NewInclude("users[*].name")
	require.NoError(t, err)

	got, err := inc.Apply(root)
	require.NoError(t, err)

	want := value.Array([]value.Value{value.String("A"), value.String("B")})
	assert.True(t, value.Equal(want, got))
}

func TestIncludeNegativeIndex(t *testing.T) {
	root := value.Array([]value.Value{value.Int(1), value.Int(2), value.Int(3)})
	inc, err := NewInclude("[-1]")
	require.NoError(t, err)

	got, err := inc.Apply(root)
	require.NoError(t, err)
	assert.True(t, value.Equal(value.Int(3), got))
}

func TestIncludeMissingPathReturnsNull(t *testing.T) {
	root := value.FromObject(obj("a", value.Int(1)))
	inc, err := NewInclude("b.c")
	require.NoError(t, err)

	got, err := inc.Apply(root)
	require.NoError(t, err)
	assert.True(t, value.Equal(value.Null, got))
}

func TestIncludePredicate(t *testing.T) {
	root := value.Array([]value.Value{
		value.FromObject(obj("name", value.String("A"), "age", value.Int(17))),
		value.FromObject(obj("name", value.String("B"), "age", value.Int(18))),
		value.FromObject(obj("name", value.String("C"), "age", value.Int(21))),
	})

	inc, err := NewInclude("[?age>=18].name")
	require.NoError(t, err)

	got, err := inc.Apply(root)
	require.NoError(t, err)
	want := value.Array([]value.Value{value.String("B"), value.String("C")})
	assert.True(t, value.Equal(want, got))
}

func TestIncludeChainedFieldLookup(t *testing.T) {
	root := value.FromObject(obj("a", value.FromObject(obj("b", value.FromObject(obj("c", value.Int(5)))))))
	inc, err := NewInclude("a.b.c")
	require.NoError(t, err)

	got, err := inc.Apply(root)
	require.NoError(t, err)
	assert.True(t, value.Equal(value.Int(5), got))
}

func TestParsePathRejectsUnterminatedBracket(t *testing.T) {
	_, err := ParsePath("a[0")
	require.Error(t, err)
	var pathErr *InvalidPathError
	require.ErrorAs(t, err, &pathErr)
}

func TestParsePathRejectsMissingPredicateOperator(t *testing.T) {
	_, err := ParsePath("[?age]")
	require.Error(t, err)
}

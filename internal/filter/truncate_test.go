package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeoffMall/toon/internal/value"
)

func intArray(n int) value.Value {
	elems := make([]value.Value, n)
	for i := range elems {
		elems[i] = value.Int(int64(i))
	}
	return value.Array(elems)
}

func TestTruncateHeadKeepsFirstN(t *testing.T) {
	max := 3
	tr, err := NewTruncate(&max, nil, StrategyHead, nil, 0, false)
	require.NoError(t, err)

	got, err := tr.Apply(intArray(10))
	require.NoError(t, err)
	want := value.Array([]value.Value{value.Int(0), value.Int(1), value.Int(2)})
	assert.True(t, value.Equal(want, got))
}

func TestTruncateTailKeepsLastN(t *testing.T) {
	max := 3
	tr, err := NewTruncate(&max, nil, StrategyTail, nil, 0, false)
	require.NoError(t, err)

	got, err := tr.Apply(intArray(10))
	require.NoError(t, err)
	want := value.Array([]value.Value{value.Int(7), value.Int(8), value.Int(9)})
	assert.True(t, value.Equal(want, got))
}

func TestTruncateBalancedSplitsHeadAndTail(t *testing.T) {
	max := 4
	tr, err := NewTruncate(&max, nil, StrategyBalanced, nil, 0, false)
	require.NoError(t, err)

	got, err := tr.Apply(intArray(10))
	require.NoError(t, err)
	want := value.Array([]value.Value{value.Int(0), value.Int(1), value.Int(8), value.Int(9)})
	assert.True(t, value.Equal(want, got))
}

func TestTruncateSampleIsDeterministicForSameSeed(t *testing.T) {
	max := 4
	tr1, err := NewTruncate(&max, nil, StrategySample, nil, 42, false)
	require.NoError(t, err)
	tr2, err := NewTruncate(&max, nil, StrategySample, nil, 42, false)
	require.NoError(t, err)

	got1, err := tr1.Apply(intArray(20))
	require.NoError(t, err)
	got2, err := tr2.Apply(intArray(20))
	require.NoError(t, err)

	assert.True(t, value.Equal(got1, got2))
	assert.Len(t, got1.Array(), 4)
}

func TestTruncateStringCutsAndAddsEllipsis(t *testing.T) {
	maxLen := 5
	tr, err := NewTruncate(nil, &maxLen, StrategyHead, nil, 0, false)
	require.NoError(t, err)

	got, err := tr.Apply(value.String("hello world"))
	require.NoError(t, err)
	assert.Equal(t, "hell…", got.Str())
	assert.Len(t, []rune(got.Str()), 5)
}

func TestTruncateStringUnchangedWhenUnderCap(t *testing.T) {
	maxLen := 50
	tr, err := NewTruncate(nil, &maxLen, StrategyHead, nil, 0, false)
	require.NoError(t, err)

	got, err := tr.Apply(value.String("short"))
	require.NoError(t, err)
	assert.Equal(t, "short", got.Str())
}

func TestTruncatePreservePathExemptsSubtree(t *testing.T) {
	max := 2
	root := value.FromObject(obj("items", value.Array([]value.Value{
		value.Int(1), value.Int(2), value.Int(3), value.Int(4), value.Int(5),
	})))

	// items[4] (value 5) is outside the head-strategy's natural window
	// but pinned via Preserve, so it must survive alongside the budget
	// selection from the remaining candidates.
	tr, err := NewTruncate(&max, nil, StrategyHead, []string{"items[4]"}, 0, false)
	require.NoError(t, err)

	got, err := tr.Apply(root)
	require.NoError(t, err)

	items, _ := got.Object().Get("items")
	arr := items.Array()
	require.Len(t, arr, 2)
	assert.True(t, value.Equal(value.Int(1), arr[0]))
	assert.True(t, value.Equal(value.Int(5), arr[1]))
}

func TestTruncateStrictIsStrictRefinementOfNonStrict(t *testing.T) {
	max := 3
	input := intArray(10)

	lenient, err := NewTruncate(&max, nil, StrategyHead, nil, 0, false)
	require.NoError(t, err)
	before, err := lenient.Apply(input)
	require.NoError(t, err)

	changed := !value.Equal(before, input)
	require.True(t, changed, "precondition: non-strict truncation must change this input")

	strict, err := NewTruncate(&max, nil, StrategyHead, nil, 0, true)
	require.NoError(t, err)
	_, err = strict.Apply(input)
	require.Error(t, err)

	var limitErr *LimitExceededError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, LimitMaxItems, limitErr.Kind)
	assert.Equal(t, 10, limitErr.Observed)
	assert.Equal(t, 3, limitErr.Limit)
}

func TestTruncateStrictPassesWhenNothingWouldChange(t *testing.T) {
	max := 20
	input := intArray(10)

	strict, err := NewTruncate(&max, nil, StrategyHead, nil, 0, true)
	require.NoError(t, err)
	got, err := strict.Apply(input)
	require.NoError(t, err)
	assert.True(t, value.Equal(input, got))
}

func TestTruncateRecursesIntoNestedArrays(t *testing.T) {
	max := 2
	root := value.Array([]value.Value{intArray(5), intArray(5)})

	tr, err := NewTruncate(&max, nil, StrategyHead, nil, 0, false)
	require.NoError(t, err)

	got, err := tr.Apply(root)
	require.NoError(t, err)
	require.Len(t, got.Array(), 2)
	for _, row := range got.Array() {
		assert.Len(t, row.Array(), 2)
	}
}

func TestApplyWithSummaryCountsChanges(t *testing.T) {
	max := 3
	tr, err := NewTruncate(&max, nil, StrategyHead, nil, 0, false)
	require.NoError(t, err)

	_, summary, err := tr.ApplyWithSummary(intArray(10))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ArraysTruncated)
	assert.Equal(t, 7, summary.ItemsRemoved)
}

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeoffMall/toon/internal/filter"
	"github.com/GeoffMall/toon/internal/format"
	"github.com/GeoffMall/toon/internal/shape"
)

func TestScenarioS1ConvertJSONToTOON(t *testing.T) {
	input := []byte(`{"users":[{"id":1,"name":"Alice","role":"admin"},{"id":2,"name":"Bob","role":"user"}]}`)
	out, err := Convert(input, ConvertOptions{InputFormat: "json", OutputFormat: "toon"})
	require.NoError(t, err)
	assert.Equal(t, "users[2]{id,name,role}:\n  1,Alice,admin\n  2,Bob,user", out)
}

func TestScenarioS3ConvertWithMaxDepth(t *testing.T) {
	input := []byte(`{"a":{"b":{"c":{"d":1}}}}`)
	out, err := Convert(input, ConvertOptions{
		InputFormat:  "json",
		OutputFormat: "json",
		Filters:      []FilterSpec{{MaxDepth: &MaxDepthSpec{Depth: 2}}},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"b":"{…1 keys}"}}`, out)
}

func TestScenarioS4ConvertWithInclude(t *testing.T) {
	input := []byte(`{"users":[{"id":1,"name":"A"},{"id":2,"name":"B"}],"meta":{"page":1}}`)
	out, err := Convert(input, ConvertOptions{
		InputFormat:  "json",
		OutputFormat: "json",
		Filters:      []FilterSpec{{Include: &IncludeSpec{Path: "users[*].name"}}},
	})
	require.NoError(t, err)
	assert.Equal(t, `["A","B"]`, out)
}

func TestScenarioS5ConvertToCSV(t *testing.T) {
	input := []byte(`[{"a":"hello, world","b":"line1\nline2"}]`)
	out, err := Convert(input, ConvertOptions{InputFormat: "json", OutputFormat: "csv"})
	require.NoError(t, err)
	assert.Equal(t, "a,b\n\"hello, world\",\"line1\nline2\"", out)
}

func TestScenarioS6AutoDetectYAMLFallback(t *testing.T) {
	input := []byte("key: value\nlist:\n  - 1\n  - 2\n")
	out, err := Convert(input, ConvertOptions{OutputFormat: "json"})
	require.NoError(t, err)
	assert.Equal(t, `{"key":"value","list":[1,2]}`, out)
}

func TestConvertUnknownOutputFormatIsConfigError(t *testing.T) {
	_, err := Convert([]byte(`{}`), ConvertOptions{InputFormat: "json", OutputFormat: "bogus"})
	require.Error(t, err)
	var cfgErr *format.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestConvertWithoutOutputFormatUsesRecommendation(t *testing.T) {
	input := []byte(`{"users":[{"id":1,"name":"Alice"},{"id":2,"name":"Bob"}]}`)
	out, err := Convert(input, ConvertOptions{InputFormat: "json"})
	require.NoError(t, err)
	assert.Equal(t, `{"users":[{"id":1,"name":"Alice"},{"id":2,"name":"Bob"}]}`, out)
}

func TestAnalyzeToleratesEncoderFailure(t *testing.T) {
	input := []byte(`{"a":1,"b":{"c":2}}`)
	report, err := Analyze(input, "json", "")
	require.NoError(t, err)

	csvOutcome, ok := report.PerEncoder["csv"]
	require.True(t, ok)
	assert.Nil(t, csvOutcome.EncodedTokens)
	assert.NotEmpty(t, csvOutcome.FailureReason)

	jsonOutcome, ok := report.PerEncoder["json"]
	require.True(t, ok)
	require.NotNil(t, jsonOutcome.EncodedTokens)
}

func TestInvariant6AnalyzeMatchesRecommendationTable(t *testing.T) {
	inputs := [][]byte{
		[]byte(`{"users":[{"id":1,"name":"A"},{"id":2,"name":"B"}]}`),
		[]byte(`{"a":1,"b":2}`),
		[]byte(`[1,2,3]`),
		[]byte(`"just a string"`),
	}
	for _, in := range inputs {
		report, err := Analyze(in, "json", "")
		require.NoError(t, err)
		assert.Equal(t, shape.Recommend(report.Shape), report.RecommendedEncoder)
	}
}

func TestInvariant7AutoDetectStableAcrossFormats(t *testing.T) {
	cases := []struct {
		name  string
		input []byte
	}{
		{"json", []byte(`{"a":1}`)},
		{"yaml", []byte("a: 1\n")},
		{"csv", []byte("a,b\n1,2\n3,4\n")},
		{"tsv", []byte("a\tb\n1\t2\n3\t4\n")},
	}
	for _, c := range cases {
		first, err := Convert(c.input, ConvertOptions{OutputFormat: c.name})
		require.NoError(t, err, c.name)
		second, err := Convert([]byte(first), ConvertOptions{OutputFormat: c.name})
		require.NoError(t, err, c.name)
		assert.Equal(t, first, second, c.name)
	}
}

func TestDetectShapeReturnsClassificationOnly(t *testing.T) {
	tag, err := DetectShape([]byte(`{"a":1,"b":2}`), "json", "")
	require.NoError(t, err)
	assert.Equal(t, shape.FlatObject, tag)
}

func TestBuildRejectsUnknownFormatUpFront(t *testing.T) {
	_, err := Build("bogus", "json", nil, false)
	require.Error(t, err)
}

func TestPipelineRunWrapsParseError(t *testing.T) {
	p, err := Build("json", "json", nil, false)
	require.NoError(t, err)

	_, err = p.Run([]byte("{not json"))
	require.Error(t, err)
	var pipeErr *Error
	require.ErrorAs(t, err, &pipeErr)
	assert.Equal(t, StageParse, pipeErr.Stage)
}

func TestPipelineRunWrapsFilterError(t *testing.T) {
	max := 1
	p, err := Build("json", "json", []FilterSpec{
		{Truncate: &TruncateSpec{MaxItems: &max, Strategy: filter.StrategyHead, Strict: true}},
	}, false)
	require.NoError(t, err)

	_, err = p.Run([]byte(`[1,2,3]`))
	require.Error(t, err)
	var pipeErr *Error
	require.ErrorAs(t, err, &pipeErr)
	assert.Equal(t, StageFilter, pipeErr.Stage)
}

func TestPipelineRunWrapsEncodeError(t *testing.T) {
	p, err := Build("json", "csv", nil, false)
	require.NoError(t, err)

	_, err = p.Run([]byte(`{"a":{"b":1}}`))
	require.Error(t, err)
	var pipeErr *Error
	require.ErrorAs(t, err, &pipeErr)
	assert.Equal(t, StageEncode, pipeErr.Stage)
}

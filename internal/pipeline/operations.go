package pipeline

import (
	"github.com/GeoffMall/toon/internal/filter"
	"github.com/GeoffMall/toon/internal/format"
	"github.com/GeoffMall/toon/internal/shape"
	"github.com/GeoffMall/toon/internal/tokenest"
)

// ConvertOptions configures the convert operation. An empty InputFormat
// means auto-detect; an empty OutputFormat means run the shape analyzer
// and use its recommendation.
type ConvertOptions struct {
	InputFormat  string
	Filename     string
	OutputFormat string
	Filters      []FilterSpec
	Strict       bool
}

// Convert runs the full pipeline once: resolve the input format (pinned
// or auto-detected), parse, filter, resolve the output format (pinned
// or recommended) and encode.
func Convert(data []byte, opts ConvertOptions) (string, error) {
	inFmt, err := resolveInputFormat(data, opts.InputFormat, opts.Filename)
	if err != nil {
		return "", &Error{Stage: StageParse, Err: err}
	}

	v, err := inFmt.Parser().Parse(data)
	if err != nil {
		return "", &Error{Stage: StageParse, Err: err}
	}

	filters, err := buildFilters(opts.Filters, opts.Strict)
	if err != nil {
		return "", err
	}

	v, err = filter.Chain(v, filters)
	if err != nil {
		return "", &Error{Stage: StageFilter, Err: err}
	}

	outTag := opts.OutputFormat
	if outTag == "" {
		outTag = string(shape.Recommend(shape.Analyze(v)))
	}
	outFmt, err := format.Get(outTag)
	if err != nil {
		return "", err
	}
	enc := outFmt.Encoder()
	if enc == nil {
		return "", &format.ConfigError{Tag: outTag}
	}

	res, err := enc.Encode(v)
	if err != nil {
		return "", &Error{Stage: StageEncode, Err: err}
	}
	return res.Text, nil
}

func resolveInputFormat(data []byte, tag, filename string) (format.Format, error) {
	if tag != "" {
		return format.Get(tag)
	}
	return format.DetectFormat(data, filename)
}

// EncoderOutcome is one entry of AnalysisReport.PerEncoder: either a
// token count and savings percentage, or a failure reason when that
// encoder can't represent this particular Value.
type EncoderOutcome struct {
	EncodedTokens  *int
	SavingsVsInput *float64
	FailureReason  string
}

// AnalysisReport is the result of the analyze operation.
type AnalysisReport struct {
	Shape              shape.Report
	RecommendedEncoder shape.Encoder
	PerEncoder         map[string]EncoderOutcome
}

// Analyze parses data once, then encodes the resulting Value with
// every registered encoder, measuring estimated tokens on each
// output. An encoder that fails (e.g. TSV on a non-tabular Value) is
// recorded with a failure reason instead of propagating an error.
func Analyze(data []byte, inputFormatTag, filename string) (AnalysisReport, error) {
	inFmt, err := resolveInputFormat(data, inputFormatTag, filename)
	if err != nil {
		return AnalysisReport{}, &Error{Stage: StageParse, Err: err}
	}

	v, err := inFmt.Parser().Parse(data)
	if err != nil {
		return AnalysisReport{}, &Error{Stage: StageParse, Err: err}
	}

	rep := shape.Analyze(v)
	recommended := shape.Recommend(rep)

	input := string(data)
	perEncoder := make(map[string]EncoderOutcome)
	for _, name := range format.List() {
		f, err := format.Get(name)
		if err != nil {
			continue
		}
		enc := f.Encoder()
		if enc == nil {
			continue
		}

		res, err := enc.Encode(v)
		if err != nil {
			perEncoder[name] = EncoderOutcome{FailureReason: err.Error()}
			continue
		}

		tokens := tokenest.Estimate(res.Text)
		savings := tokenest.Savings(input, res.Text)
		perEncoder[name] = EncoderOutcome{EncodedTokens: &tokens, SavingsVsInput: &savings}
	}

	return AnalysisReport{Shape: rep, RecommendedEncoder: recommended, PerEncoder: perEncoder}, nil
}

// DetectShape parses data and returns only its shape classification,
// without encoding anything.
func DetectShape(data []byte, inputFormatTag, filename string) (shape.Tag, error) {
	inFmt, err := resolveInputFormat(data, inputFormatTag, filename)
	if err != nil {
		return 0, &Error{Stage: StageParse, Err: err}
	}

	v, err := inFmt.Parser().Parse(data)
	if err != nil {
		return 0, &Error{Stage: StageParse, Err: err}
	}

	return shape.Analyze(v).Tag, nil
}

// Package pipeline wires one parser, an ordered list of filters and
// one encoder into a single callable unit, and implements the three
// top-level operations (convert, analyze, detect_shape) that sit on
// top of it.
package pipeline

import (
	"fmt"

	"github.com/GeoffMall/toon/internal/filter"
	"github.com/GeoffMall/toon/internal/format"
)

// Pipeline holds exactly one parser, an ordered filter chain and one
// encoder. Run executes the three stages in order, wrapping any stage
// failure into an *Error tagged with the stage it came from.
type Pipeline struct {
	Parser  format.Parser
	Filters []filter.Filter
	Encoder format.Encoder
}

// Run executes the pipeline on data.
func (p *Pipeline) Run(data []byte) (string, error) {
	v, err := p.Parser.Parse(data)
	if err != nil {
		return "", &Error{Stage: StageParse, Err: err}
	}

	v, err = filter.Chain(v, p.Filters)
	if err != nil {
		return "", &Error{Stage: StageFilter, Err: err}
	}

	res, err := p.Encoder.Encode(v)
	if err != nil {
		return "", &Error{Stage: StageEncode, Err: err}
	}
	return res.Text, nil
}

// FilterSpec is a tagged record describing one filter: exactly one of
// Include, MaxDepth or Truncate should be non-nil.
type FilterSpec struct {
	Include  *IncludeSpec
	MaxDepth *MaxDepthSpec
	Truncate *TruncateSpec
}

// IncludeSpec selects a sub-tree with a path expression.
type IncludeSpec struct {
	Path string
}

// MaxDepthSpec caps nesting depth, summarizing anything deeper.
type MaxDepthSpec struct {
	Depth int
}

// TruncateSpec caps array length and string length.
type TruncateSpec struct {
	MaxItems        *int
	MaxStringLength *int
	Strategy        filter.Strategy
	Preserve        []string
	Seed            uint64
	Strict          bool
}

func (s FilterSpec) build() (filter.Filter, error) {
	switch {
	case s.Include != nil:
		return filter.NewInclude(s.Include.Path)
	case s.MaxDepth != nil:
		return filter.NewMaxDepth(s.MaxDepth.Depth), nil
	case s.Truncate != nil:
		t := s.Truncate
		return filter.NewTruncate(t.MaxItems, t.MaxStringLength, t.Strategy, t.Preserve, t.Seed, t.Strict)
	default:
		return nil, fmt.Errorf("empty filter spec")
	}
}

// buildFilters constructs each spec's filter. When strict is true every
// Truncate spec is forced into strict mode regardless of its own Strict
// field, matching convert's pipeline-wide strict option.
func buildFilters(specs []FilterSpec, strict bool) ([]filter.Filter, error) {
	out := make([]filter.Filter, 0, len(specs))
	for _, s := range specs {
		if strict && s.Truncate != nil && !s.Truncate.Strict {
			clone := *s.Truncate
			clone.Strict = true
			s = FilterSpec{Truncate: &clone}
		}
		f, err := s.build()
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// Build constructs a Pipeline from format tags and filter specs,
// rejecting an unknown format tag immediately rather than failing
// lazily the first time Run is called.
func Build(inputTag, outputTag string, specs []FilterSpec, strict bool) (*Pipeline, error) {
	inFmt, err := format.Get(inputTag)
	if err != nil {
		return nil, err
	}
	outFmt, err := format.Get(outputTag)
	if err != nil {
		return nil, err
	}

	parser := inFmt.Parser()
	if parser == nil {
		return nil, fmt.Errorf("format %q has no parser", inputTag)
	}
	enc := outFmt.Encoder()
	if enc == nil {
		return nil, fmt.Errorf("format %q has no encoder", outputTag)
	}

	filters, err := buildFilters(specs, strict)
	if err != nil {
		return nil, err
	}

	return &Pipeline{Parser: parser, Filters: filters, Encoder: enc}, nil
}

package yaml

import (
	"strconv"
	"strings"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/GeoffMall/toon/internal/format"
	"github.com/GeoffMall/toon/internal/value"
)

// Encoder implements format.Encoder for YAML block style, 2-space indent.
// Like the parser, it builds *yaml.Node trees rather than handing a Go
// `any` to the encoder, so Object key order survives into the rendered
// document instead of being re-sorted or randomized by map iteration.
type Encoder struct{}

// NewEncoder returns a YAML encoder.
func NewEncoder() *Encoder { return &Encoder{} }

// Encode renders v as a single YAML document.
func (e *Encoder) Encode(v value.Value) (format.EncodeResult, error) {
	node := valueToNode(v)

	var b strings.Builder
	enc := yamlv3.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		_ = enc.Close()
		return format.EncodeResult{}, &format.EncodeError{Kind: format.UnrepresentableValue, Encoder: "yaml"}
	}
	if err := enc.Close(); err != nil {
		return format.EncodeResult{}, &format.EncodeError{Kind: format.UnrepresentableValue, Encoder: "yaml"}
	}
	return format.EncodeResult{Text: b.String()}, nil
}

func valueToNode(v value.Value) *yamlv3.Node {
	switch v.Kind() {
	case value.KindNull:
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!null", Value: "null"}
	case value.KindBool:
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.Bool())}
	case value.KindInt:
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v.Int(), 10)}
	case value.KindFloat:
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(v.Float(), 'g', -1, 64)}
	case value.KindString:
		return stringNode(v.Str())
	case value.KindArray:
		seq := &yamlv3.Node{Kind: yamlv3.SequenceNode, Tag: "!!seq"}
		for _, e := range v.Array() {
			seq.Content = append(seq.Content, valueToNode(e))
		}
		return seq
	case value.KindObject:
		mapping := &yamlv3.Node{Kind: yamlv3.MappingNode, Tag: "!!map"}
		obj := v.Object()
		if obj != nil {
			for _, k := range obj.Keys() {
				val, _ := obj.Get(k)
				mapping.Content = append(mapping.Content, stringNode(k), valueToNode(val))
			}
		}
		return mapping
	default:
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// stringNode builds a scalar string node, letting the yaml.v3 encoder
// pick the minimal quoting style on its own (plain when safe, single or
// double quoted when the string would otherwise be misread as another
// type or contains characters that need escaping) - except for
// multi-line strings, which are forced into literal block style (`|`)
// rather than the default double-quoted `\n`-escaped rendering.
func stringNode(s string) *yamlv3.Node {
	node := &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: s}
	if strings.Contains(s, "\n") {
		node.Style = yamlv3.LiteralStyle
	}
	return node
}

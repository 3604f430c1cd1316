package yaml

import (
	"fmt"
	"strconv"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/GeoffMall/toon/internal/format"
	"github.com/GeoffMall/toon/internal/value"
)

// Parser implements format.Parser for YAML. It decodes through
// *yaml.Node rather than into `any`, because yaml.v3's `any` decoding
// target collapses mappings into Go maps and loses key order - the same
// reason the json package walks tokens by hand instead of unmarshaling
// into `any`.
type Parser struct{}

// NewParser returns a YAML parser.
func NewParser() *Parser { return &Parser{} }

// Parse decodes a single YAML document into a Value. Only the first
// document is read; additional --- separated documents are ignored,
// since toon's pipeline operates on one payload at a time.
func (p *Parser) Parse(data []byte) (value.Value, error) {
	var doc yamlv3.Node
	if err := yamlv3.Unmarshal(data, &doc); err != nil {
		return value.Null, &format.ParseError{Format: "yaml", ByteOffset: -1, Message: err.Error()}
	}
	if doc.Kind == 0 {
		// Empty input decodes to a zero Node.
		return value.Null, nil
	}

	root := &doc
	if root.Kind == yamlv3.DocumentNode {
		if len(root.Content) == 0 {
			return value.Null, nil
		}
		root = root.Content[0]
	}

	v, err := nodeToValue(root)
	if err != nil {
		return value.Null, &format.ParseError{Format: "yaml", ByteOffset: -1, Message: err.Error()}
	}
	return v, nil
}

func nodeToValue(n *yamlv3.Node) (value.Value, error) {
	switch n.Kind {
	case yamlv3.ScalarNode:
		return scalarToValue(n), nil
	case yamlv3.SequenceNode:
		elems := make([]value.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeToValue(c)
			if err != nil {
				return value.Null, err
			}
			elems = append(elems, v)
		}
		return value.Array(elems), nil
	case yamlv3.MappingNode:
		obj := value.NewObjectCap(len(n.Content) / 2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			key := mapKeyString(keyNode)
			v, err := nodeToValue(valNode)
			if err != nil {
				return value.Null, err
			}
			obj.Set(key, v)
		}
		return value.FromObject(obj), nil
	case yamlv3.AliasNode:
		return nodeToValue(n.Alias)
	default:
		return value.Null, fmt.Errorf("unsupported YAML node kind %d", n.Kind)
	}
}

// mapKeyString stringifies a mapping key node. YAML permits non-string
// scalar keys (numbers, booleans); toon's Object requires string keys,
// so every key is rendered via its own scalar tag the same way it would
// print unquoted.
func mapKeyString(n *yamlv3.Node) string {
	if n.Kind == yamlv3.ScalarNode {
		return n.Value
	}
	return n.Value
}

// scalarToValue converts a scalar node to a Value using its resolved
// tag, so "true"/"123"/"1.5" typed in source come back as Bool/Int/Float
// rather than String, matching JSON's native typing.
func scalarToValue(n *yamlv3.Node) value.Value {
	switch n.Tag {
	case "!!null":
		return value.Null
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return value.String(n.Value)
		}
		return value.Bool(b)
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 10, 64)
		if err != nil {
			return value.String(n.Value)
		}
		return value.Int(i)
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return value.String(n.Value)
		}
		return value.Float(f)
	default:
		return value.String(n.Value)
	}
}

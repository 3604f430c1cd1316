package xml

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/GeoffMall/toon/internal/format"
	"github.com/GeoffMall/toon/internal/value"
)

// Parser implements format.Parser for XML. Each element becomes an
// Object: attributes become "@name" keys, text content becomes a
// "#text" key, and repeated sibling elements sharing a tag collapse
// into an Array under that tag. Namespaces are stripped by default -
// encoding/xml already reports the local Name.Local without prefix, so
// stripping falls out of using Name.Local rather than Name.Space+":"+Local.
type Parser struct{}

// NewParser returns an XML parser.
func NewParser() *Parser { return &Parser{} }

// Parse decodes the root element of an XML document into a Value.
func (p *Parser) Parse(data []byte) (value.Value, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true

	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return value.Null, &format.ParseError{Format: "xml", ByteOffset: -1, Message: "no root element found"}
			}
			return value.Null, &format.ParseError{Format: "xml", ByteOffset: -1, Message: err.Error()}
		}
		if start, ok := tok.(xml.StartElement); ok {
			v, err := decodeElement(dec, start)
			if err != nil {
				return value.Null, &format.ParseError{Format: "xml", ByteOffset: -1, Message: err.Error()}
			}
			return v, nil
		}
	}
}

// decodeElement reads tokens until the matching EndElement for start,
// building an Object from its attributes, text runs and child elements.
func decodeElement(dec *xml.Decoder, start xml.StartElement) (value.Value, error) {
	obj := value.NewObject()
	for _, attr := range start.Attr {
		obj.Set("@"+attr.Name.Local, value.String(attr.Value))
	}

	var text strings.Builder
	// childOrder preserves first-occurrence order of child tags;
	// childVals accumulates one or more Values per tag for the
	// repeated-sibling-collapses-to-Array rule.
	var childOrder []string
	childVals := make(map[string][]value.Value)

	for {
		tok, err := dec.Token()
		if err != nil {
			return value.Null, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			childName := t.Name.Local
			childVal, err := decodeElement(dec, t)
			if err != nil {
				return value.Null, err
			}
			if _, seen := childVals[childName]; !seen {
				childOrder = append(childOrder, childName)
			}
			childVals[childName] = append(childVals[childName], childVal)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			return finishElement(obj, text.String(), childOrder, childVals), nil
		}
	}
}

func finishElement(obj *value.Object, text string, childOrder []string, childVals map[string][]value.Value) value.Value {
	for _, name := range childOrder {
		vals := childVals[name]
		if len(vals) == 1 {
			obj.Set(name, vals[0])
		} else {
			obj.Set(name, value.Array(vals))
		}
	}

	trimmed := strings.TrimSpace(text)
	if trimmed != "" {
		obj.Set("#text", value.String(trimmed))
	}

	return value.FromObject(obj)
}

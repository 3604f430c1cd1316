// Package xml implements a read path from XML into toon's Value tree.
// XML is ingestion-only: there is no XML encoder, since the element/
// attribute/text split has no canonical inverse from an arbitrary Value.
package xml

import (
	"github.com/GeoffMall/toon/internal/format"
)

// Format implements format.Format for XML.
type Format struct{}

// Name returns the format identifier.
func (f *Format) Name() string { return "xml" }

// Detector returns an XML format detector.
func (f *Format) Detector() format.Detector { return &Detector{} }

// Parser returns an XML parser.
func (f *Format) Parser() format.Parser { return NewParser() }

// Encoder returns nil: XML has no encoder. The registry still holds a
// Format for it so the tag is recognized and routes to DetectFormat.
func (f *Format) Encoder() format.Encoder { return nil }

// Register the XML format on package initialization.
//
//nolint:gochecknoinits // required for automatic format registration
func init() {
	format.Register(&Format{})
}

// Package json implements compact JSON (RFC 8259) parsing and encoding
// for toon.
package json

import (
	"github.com/GeoffMall/toon/internal/format"
)

// Format implements format.Format for JSON.
type Format struct{}

// Name returns the format identifier.
func (f *Format) Name() string { return "json" }

// Detector returns a JSON format detector.
func (f *Format) Detector() format.Detector { return &Detector{} }

// Parser returns a JSON parser.
func (f *Format) Parser() format.Parser { return NewParser() }

// Encoder returns the compact JSON encoder.
func (f *Format) Encoder() format.Encoder { return NewEncoder() }

// Register the JSON format on package initialization.
//
//nolint:gochecknoinits // required for automatic format registration
func init() {
	format.Register(&Format{})
}

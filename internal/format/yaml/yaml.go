// Package yaml implements YAML parsing and block-style encoding for
// toon, preserving mapping key order through *yaml.Node rather than `any`.
package yaml

import (
	"github.com/GeoffMall/toon/internal/format"
)

// Format implements format.Format for YAML.
type Format struct{}

// Name returns the format identifier.
func (f *Format) Name() string { return "yaml" }

// Detector returns a YAML format detector.
func (f *Format) Detector() format.Detector { return &Detector{} }

// Parser returns a YAML parser.
func (f *Format) Parser() format.Parser { return NewParser() }

// Encoder returns the YAML encoder.
func (f *Format) Encoder() format.Encoder { return NewEncoder() }

// Register the YAML format on package initialization.
//
//nolint:gochecknoinits // required for automatic format registration
func init() {
	format.Register(&Format{})
}

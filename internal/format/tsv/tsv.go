// Package tsv implements tab-separated value parsing and tabular
// encoding for toon. Unlike CSV, TSV has no quoting mechanism: literal
// tabs and newlines inside a cell are textually escaped as "\t"/"\n".
package tsv

import (
	"github.com/GeoffMall/toon/internal/format"
)

// Format implements format.Format for TSV.
type Format struct{}

// Name returns the format identifier.
func (f *Format) Name() string { return "tsv" }

// Detector returns a TSV format detector.
func (f *Format) Detector() format.Detector { return &Detector{} }

// Parser returns a TSV parser.
func (f *Format) Parser() format.Parser { return &Parser{} }

// Encoder returns the TSV tabular encoder.
func (f *Format) Encoder() format.Encoder { return &Encoder{} }

// Register the TSV format on package initialization.
//
//nolint:gochecknoinits // required for automatic format registration
func init() {
	format.Register(&Format{})
}

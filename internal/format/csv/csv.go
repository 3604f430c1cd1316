// Package csv implements RFC 4180 CSV parsing and tabular encoding for
// toon, grounded on encoding/csv (the pack's only CSV-specific example,
// a standalone shape-csv file, is not a fetchable third-party module -
// see the design notes for the full justification).
package csv

import (
	"github.com/GeoffMall/toon/internal/format"
)

// Format implements format.Format for CSV.
type Format struct{}

// Name returns the format identifier.
func (f *Format) Name() string { return "csv" }

// Detector returns a CSV format detector.
func (f *Format) Detector() format.Detector { return &Detector{Delimiter: ','} }

// Parser returns a CSV parser.
func (f *Format) Parser() format.Parser { return &Parser{Delimiter: ','} }

// Encoder returns the CSV tabular encoder.
func (f *Format) Encoder() format.Encoder { return &Encoder{Delimiter: ','} }

// Register the CSV format on package initialization.
//
//nolint:gochecknoinits // required for automatic format registration
func init() {
	format.Register(&Format{})
}

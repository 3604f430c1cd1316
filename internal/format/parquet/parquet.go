// Package parquet implements read-only parsing of Apache Parquet files
// for toon. Like Avro, Parquet is a binary columnar container with no
// text form toon would ever emit, so this format is input-only and
// never participates in auto-detection; it is only selected by an
// explicit --from parquet flag or a .parquet file extension.
package parquet

import (
	"github.com/GeoffMall/toon/internal/format"
)

// Format implements format.Format for Parquet.
type Format struct{}

// Name returns the format identifier used in CLI flags (--from parquet).
func (f *Format) Name() string { return "parquet" }

// Detector always returns nil; see the package doc comment.
func (f *Format) Detector() format.Detector { return nil }

// Parser returns a Parquet parser.
func (f *Format) Parser() format.Parser { return NewParser() }

// Encoder returns nil: Parquet is input-only.
func (f *Format) Encoder() format.Encoder { return nil }

//nolint:gochecknoinits // required for automatic format registration
func init() {
	format.Register(&Format{})
}

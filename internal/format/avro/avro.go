// Package avro implements read-only parsing of Apache Avro Object
// Container Files (OCF) for toon. Avro has no text serialization toon
// would ever want to produce, so this format is input-only and never
// participates in byte-sniffing auto-detection; it is only selected by
// an explicit --from avro flag or a .avro file extension.
package avro

import (
	"github.com/GeoffMall/toon/internal/format"
)

// Format implements format.Format for Avro OCF.
type Format struct{}

// Name returns the format identifier used in CLI flags (--from avro).
func (f *Format) Name() string { return "avro" }

// Detector always returns nil: Avro OCF starts with a 4-byte magic that
// is cheap to check, but the spec reserves auto-detection for text
// formats and routes binary containers through explicit tag or
// extension only.
func (f *Format) Detector() format.Detector { return nil }

// Parser returns an Avro OCF parser.
func (f *Format) Parser() format.Parser { return NewParser() }

// Encoder returns nil: Avro is input-only.
func (f *Format) Encoder() format.Encoder { return nil }

//nolint:gochecknoinits // required for automatic format registration
func init() {
	format.Register(&Format{})
}

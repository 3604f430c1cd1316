// Package format provides abstractions for the data formats toon can read
// and write (JSON, YAML, XML, CSV, TSV, TOON, plus read-only Avro and
// Parquet ingestion).
//
// # Architecture
//
// The format package defines the core interfaces every format implements:
//
//  1. Detector - scores input bytes for auto-detection
//  2. Parser   - lifts a full byte payload into a value.Value
//  3. Encoder  - renders a value.Value back to text
//  4. Format   - combines the above into one named, registrable unit
//
// # Adding a New Format
//
// To add support for a new format:
//
//  1. Create a new package under internal/format/yourformat/
//  2. Implement Parser and/or Encoder (a format may be input-only,
//     output-only, or both)
//  3. Create a Format implementation that wires them together
//  4. Register the format in init() using format.Register()
//
// See internal/format/json/ for a complete reference implementation.
//
// # Non-streaming Semantics
//
// Unlike a row-oriented streaming converter, toon loads a payload fully:
// Parse receives the complete byte slice and returns one value.Value tree.
// This matches the spec's non-goal of streaming parse support for inputs
// larger than memory.
package format

import "github.com/GeoffMall/toon/internal/value"

// Format represents a data format (JSON, YAML, XML, CSV, TSV, TOON, Avro,
// Parquet). It provides detection, parsing and/or encoding.
type Format interface {
	// Name returns the format's canonical, lowercase tag (e.g. "json").
	Name() string

	// Detector returns a detector usable during auto-detection, or nil if
	// this format never participates in byte-sniffing auto-detection
	// (Avro, Parquet and TOON are only selected by explicit tag or file
	// extension).
	Detector() Detector

	// Parser returns a parser for this format, or nil if the format is
	// output-only.
	Parser() Parser

	// Encoder returns an encoder for this format, or nil if the format is
	// input-only (Avro, Parquet).
	Encoder() Encoder
}

// Detector analyzes input bytes to determine if they match a specific
// format. Detectors are used during auto-detection to identify the input
// format.
type Detector interface {
	// Detect analyzes the given peek window and returns a confidence
	// score (0-100). Higher scores indicate stronger confidence that the
	// data matches this format. A score of 0 means "definitely not this
	// format". Detectors must skip leading ASCII whitespace themselves.
	Detect(peek []byte) int
}

// Parser lifts a complete byte payload into a single value.Value.
type Parser interface {
	// Parse converts data into a Value, or returns a *ParseError
	// describing where and why parsing failed. No partial Value is ever
	// returned alongside a non-nil error.
	Parse(data []byte) (value.Value, error)
}

// EncodeResult is the outcome of a successful Encoder.Encode call.
type EncodeResult struct {
	// Text is the rendered output.
	Text string

	// Warning is non-empty when the encoder had to fall back to a lossy
	// representation for some part of the Value (e.g. stringifying a
	// nested Array inside a CSV cell) but otherwise completed.
	Warning string
}

// Encoder renders a value.Value to text. Encoders MUST be total on every
// legal Value: they never panic, and a Value that cannot be faithfully
// represented is stringified through the compact JSON encoder with a
// warning recorded in EncodeResult - except where the spec calls for a
// hard error (e.g. CSV/TSV on a non-tabular root), which encoders return
// as an *EncodeError instead of a result.
type Encoder interface {
	// Encode renders v, or returns an *EncodeError.
	Encode(v value.Value) (EncodeResult, error)
}

// Package toon implements the TOON (Token-Oriented Object Notation)
// encoder: the centerpiece of the transcoder and the primary reason the
// project exists. TOON collapses a uniform array of objects into one
// header row plus one compact data row per element, eliminating
// repeated key names and quoting overhead relative to JSON.
//
// TOON is output-only: there is no parser, since decoding a TOON
// document back into a Value isn't part of this system's scope.
package toon

import (
	"github.com/GeoffMall/toon/internal/format"
)

// Format implements format.Format for TOON.
type Format struct{}

// Name returns the format identifier.
func (f *Format) Name() string { return "toon" }

// Detector returns nil: TOON never participates in byte-sniffing
// auto-detection, only explicit format tag or file extension selection.
func (f *Format) Detector() format.Detector { return nil }

// Parser returns nil: TOON has no parser.
func (f *Format) Parser() format.Parser { return nil }

// Encoder returns the TOON encoder.
func (f *Format) Encoder() format.Encoder { return NewEncoder() }

// Register the TOON format on package initialization.
//
//nolint:gochecknoinits // required for automatic format registration
func init() {
	format.Register(&Format{})
}

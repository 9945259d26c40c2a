// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for binary ingestion and glyph
// rendering. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies options in order.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts ReadInto or Render and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"encoding/binary"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreshold: an entry strictly greater than this renders as filled.
	DefaultThreshold = 0.1

	// DefaultFilledGlyph is written for entries above the threshold.
	DefaultFilledGlyph = "**"

	// DefaultBlankGlyph is written for all other entries.
	DefaultBlankGlyph = "  "

	// Float32Size is the number of bytes per serialized element.
	Float32Size = 4
)

// DefaultByteOrder is the byte order of serialized float32 values.
var DefaultByteOrder binary.ByteOrder = binary.LittleEndian

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid = "matrix: WithThreshold: threshold must not be NaN"
	panicByteOrderNil     = "matrix: WithByteOrder: byte order must not be nil"
	panicGlyphsMismatch   = "matrix: WithGlyphs: glyphs must have equal, non-zero width"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	// ingestion policy
	byteOrder binary.ByteOrder // DefaultByteOrder

	// render policy
	threshold float64 // DefaultThreshold
	filled    string  // DefaultFilledGlyph
	blank     string  // DefaultBlankGlyph
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		byteOrder: DefaultByteOrder,
		threshold: DefaultThreshold,
		filled:    DefaultFilledGlyph,
		blank:     DefaultBlankGlyph,
	}
}

// gatherOptions applies opts over defaults, later options overriding earlier ones.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithByteOrder selects the byte order used to decode serialized float32 values.
// Panics if bo is nil.
func WithByteOrder(bo binary.ByteOrder) Option {
	if bo == nil {
		panic(panicByteOrderNil)
	}

	return func(o *Options) { o.byteOrder = bo }
}

// WithThreshold sets the display threshold for Render (strict '>' comparison).
// ±Inf are accepted (render everything blank / filled); NaN panics.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithGlyphs overrides the filled and blank markers used by Render.
// Both glyphs must be non-empty and of equal byte width so rows stay aligned.
func WithGlyphs(filled, blank string) Option {
	if filled == "" || len(filled) != len(blank) {
		panic(panicGlyphsMismatch)
	}

	return func(o *Options) {
		o.filled = filled
		o.blank = blank
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
type GlyphID uint16

// Glyph is a positioned glyph produced by Layout.
type Glyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the rune index in the laid out text this glyph belongs to.
	Cluster int

	// X, Y are the pen position of the glyph origin relative to the start
	// of the line. Y grows upwards.
	X, Y float64

	// Advance is the horizontal advance of the glyph.
	Advance float64
}

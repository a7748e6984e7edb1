// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
)

// Typeface is a loaded font used to extrude text into 3D geometry.
// It is immutable once created and safe for concurrent use.
//
// Typeface must not be copied after creation (enforced by copyCheck).
type Typeface struct {
	// addr is used for copy protection (Ebitengine pattern).
	addr *Typeface

	data   []byte
	parsed ParsedFont

	// shaping is the go-text view of the same font data, used for layout.
	shaping *font.Font

	name string
}

// NewTypeface creates a Typeface from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewTypeface(data []byte, opts ...SourceOption) (*Typeface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parsed, err := getParser(config.parserName).Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	face, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	t := &Typeface{
		data:    dataCopy,
		parsed:  parsed,
		shaping: face.Font,
	}
	t.addr = t
	t.name = config.name
	if t.name == "" {
		t.name = extractFontName(parsed)
	}
	return t, nil
}

// NewTypefaceFromFile loads a Typeface from a font file path.
func NewTypefaceFromFile(path string, opts ...SourceOption) (*Typeface, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewTypeface(data, opts...)
}

// Name returns the font name.
func (t *Typeface) Name() string {
	t.copyCheck()
	return t.name
}

// Parsed returns the parsed font for advanced operations.
func (t *Typeface) Parsed() ParsedFont {
	t.copyCheck()
	return t.parsed
}

// UnitsPerEm returns the design units per em of the font.
func (t *Typeface) UnitsPerEm() int {
	t.copyCheck()
	return t.parsed.UnitsPerEm()
}

// LayoutPPEM is the pixels-per-em at which glyphs should be laid out and
// extracted to keep full design precision. Callers scale the result down to
// their own size.
func (t *Typeface) LayoutPPEM() float64 {
	upem := t.UnitsPerEm()
	if upem <= 0 {
		return 1000
	}
	return float64(upem)
}

// copyCheck panics if Typeface was copied by value.
func (t *Typeface) copyCheck() {
	if t.addr != t {
		panic("text: Typeface must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}
	return "Unknown Font"
}

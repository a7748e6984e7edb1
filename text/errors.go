// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilProvider is returned when Load is called without a Provider.
	ErrNilProvider = errors.New("text: nil provider")

	// ErrNoOutline is returned for glyphs that carry no vector outline
	// (bitmap or color layer glyphs).
	ErrNoOutline = errors.New("text: glyph has no vector outline")
)

// FontError represents a font-related error.
type FontError struct {
	Reason string
}

func (e *FontError) Error() string {
	return "text: " + e.Reason
}

// ErrUnsupportedFontType is returned when the parsed font does not expose
// outlines to the extractor.
var ErrUnsupportedFontType = &FontError{Reason: "unsupported font type for outline extraction"}

// LoadError is returned when a Provider fails to produce a typeface.
type LoadError struct {
	// Source names what was being loaded (a path or "embedded").
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return "text: load typeface " + e.Source + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

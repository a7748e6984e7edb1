// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package text loads typefaces and turns strings into positioned glyph
// outlines.
//
// A Typeface wraps one font file. Layout shapes a line of text with
// go-text/typesetting (HarfBuzz), Outline extracts glyph contours with
// golang.org/x/image/font/sfnt, and GlyphOutline.Contours flattens them into
// polylines ready for extrusion.
//
// Typefaces are usually obtained through a Provider. Load runs a provider on
// its own goroutine and delivers exactly one LoadResult:
//
//	res := <-text.Load(ctx, text.DefaultProvider())
//	if res.Err != nil {
//	    return res.Err
//	}
//	glyphs := res.Typeface.Layout(text.Normalize("love"), res.Typeface.LayoutPPEM())
package text

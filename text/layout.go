// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has internal
// mutable state and is NOT safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Layout shapes a single line of text at the given pixels-per-em and returns
// the positioned glyphs, left to right, starting at pen position 0.
// Kerning and ligatures from the font are applied.
//
// The text is used as given; call Normalize first for user input.
func (t *Typeface) Layout(s string, ppem float64) []Glyph {
	t.copyCheck()
	if s == "" || ppem <= 0 {
		return nil
	}

	runes := []rune(s)

	// font.Face is NOT safe for concurrent use; font.Font is.
	face := font.NewFace(t.shaping)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      floatToFixed(ppem),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	return convertGlyphs(output.Glyphs)
}

// Advance returns the total advance of the laid out text at ppem.
func (t *Typeface) Advance(s string, ppem float64) float64 {
	var total float64
	for _, g := range t.Layout(s, ppem) {
		total += g.Advance
	}
	return total
}

// detectScript returns the script of the first non-space rune.
// Mixed-script text is shaped as a single run of that script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs converts go-text/typesetting output glyphs to Glyph values.
func convertGlyphs(glyphs []shaping.Glyph) []Glyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]Glyph, len(glyphs))
	var x float64
	for i, g := range glyphs {
		adv := fixedToFloat(g.Advance)
		result[i] = Glyph{
			GID:     GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph ids fit in uint16 for TrueType/OpenType
			Cluster: g.TextIndex(),
			X:       x + fixedToFloat(g.XOffset),
			Y:       fixedToFloat(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	return result
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"errors"

	"github.com/chewxy/math32"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OutlinePoint represents a point in a glyph outline.
// Coordinates are in pixels at the extraction ppem with Y growing
// downwards, as returned by sfnt.
type OutlinePoint struct {
	X, Y float32
}

// Dist returns the distance between two points.
func (p OutlinePoint) Dist(q OutlinePoint) float32 {
	return math32.Hypot(q.X-p.X, q.Y-p.Y)
}

// lerp interpolates between p and q.
func (p OutlinePoint) lerp(q OutlinePoint, t float32) OutlinePoint {
	return OutlinePoint{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	Op OutlineOp

	// Points contains the control and end points for this segment.
	//   - MoveTo, LineTo: Points[0] is the target
	//   - QuadTo: Points[0] is the control, Points[1] the target
	//   - CubicTo: Points[0], Points[1] are controls, Points[2] the target
	Points [3]OutlinePoint
}

// GlyphOutline is the vector outline of a glyph: one or more closed
// contours.
type GlyphOutline struct {
	Segments []OutlineSegment
	GID      GlyphID
}

// IsEmpty returns true if the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// Outline extracts the outline of a glyph at ppem.
// Glyphs without ink (space) return an empty outline and no error.
// Color and bitmap glyphs return ErrNoOutline.
func (t *Typeface) Outline(gid GlyphID, ppem float64) (*GlyphOutline, error) {
	t.copyCheck()
	xi, ok := t.parsed.(*ximageParsedFont)
	if !ok {
		return nil, ErrUnsupportedFontType
	}

	segs, err := xi.loadSegments(gid, ppem)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, ErrNoOutline
		}
		return nil, err
	}

	outline := &GlyphOutline{
		Segments: make([]OutlineSegment, 0, len(segs)),
		GID:      gid,
	}
	for _, seg := range segs {
		var out OutlineSegment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = OutlineOpMoveTo
			out.Points[0] = fixedPointToOutline(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
			out.Points[0] = fixedPointToOutline(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
			out.Points[0] = fixedPointToOutline(seg.Args[0])
			out.Points[1] = fixedPointToOutline(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
			out.Points[0] = fixedPointToOutline(seg.Args[0])
			out.Points[1] = fixedPointToOutline(seg.Args[1])
			out.Points[2] = fixedPointToOutline(seg.Args[2])
		}
		outline.Segments = append(outline.Segments, out)
	}
	return outline, nil
}

// minPointDist is the distance under which consecutive flattened points
// are merged.
const minPointDist = 1e-3

// Contours flattens the outline into closed polylines. Each curve is split
// into curveSegments straight pieces (at least 1). The closing point of a
// contour is not repeated. Contours with fewer than three distinct points
// are dropped.
func (o *GlyphOutline) Contours(curveSegments int) [][]OutlinePoint {
	if o.IsEmpty() {
		return nil
	}
	if curveSegments < 1 {
		curveSegments = 1
	}

	var (
		contours [][]OutlinePoint
		cur      []OutlinePoint
	)
	flush := func() {
		if n := len(cur); n > 1 && cur[0].Dist(cur[n-1]) < minPointDist {
			cur = cur[:n-1]
		}
		if len(cur) >= 3 {
			contours = append(contours, cur)
		}
		cur = nil
	}
	add := func(p OutlinePoint) {
		if n := len(cur); n > 0 && cur[n-1].Dist(p) < minPointDist {
			return
		}
		cur = append(cur, p)
	}

	for _, seg := range o.Segments {
		switch seg.Op {
		case OutlineOpMoveTo:
			flush()
			add(seg.Points[0])
		case OutlineOpLineTo:
			add(seg.Points[0])
		case OutlineOpQuadTo:
			if len(cur) == 0 {
				add(seg.Points[1])
				continue
			}
			p0 := cur[len(cur)-1]
			for i := 1; i <= curveSegments; i++ {
				t := float32(i) / float32(curveSegments)
				add(quadAt(p0, seg.Points[0], seg.Points[1], t))
			}
		case OutlineOpCubicTo:
			if len(cur) == 0 {
				add(seg.Points[2])
				continue
			}
			p0 := cur[len(cur)-1]
			for i := 1; i <= curveSegments; i++ {
				t := float32(i) / float32(curveSegments)
				add(cubicAt(p0, seg.Points[0], seg.Points[1], seg.Points[2], t))
			}
		}
	}
	flush()
	return contours
}

// quadAt evaluates a quadratic bezier with de Casteljau.
func quadAt(p0, p1, p2 OutlinePoint, t float32) OutlinePoint {
	a := p0.lerp(p1, t)
	b := p1.lerp(p2, t)
	return a.lerp(b, t)
}

// cubicAt evaluates a cubic bezier with de Casteljau.
func cubicAt(p0, p1, p2, p3 OutlinePoint, t float32) OutlinePoint {
	a := p0.lerp(p1, t)
	b := p1.lerp(p2, t)
	c := p2.lerp(p3, t)
	return quadAt(a, b, c, t)
}

// fixedPointToOutline converts a fixed.Point26_6 to OutlinePoint.
func fixedPointToOutline(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: float32(p.X) / 64.0,
		Y: float32(p.Y) / 64.0,
	}
}

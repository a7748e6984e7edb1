// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/spheretext/surface"
	"github.com/gogpu/spheretext/text"
)

// TextGeometry is the extruded geometry of one line of text.
// It is immutable once built.
type TextGeometry struct {
	// Text is the normalized text the geometry was built from.
	Text string

	// Params are the extrusion parameters used.
	Params Params

	// Box bounds every vertex. Box.Min.X is 0 unless the geometry is empty.
	Box Box3

	// Walls holds the side walls and bevel chamfers.
	Walls *surface.Mesh

	// Front and Back are the cap regions facing +Z and -Z, one per glyph.
	Front, Back []*surface.Region

	surf *surface.Composite
}

// Width returns the extent of the geometry along X.
// It is zero for empty or whitespace-only text.
func (g *TextGeometry) Width() float64 {
	if g == nil {
		return 0
	}
	return g.Box.Width()
}

// Area returns the total sampled surface area.
func (g *TextGeometry) Area() float64 {
	if g == nil {
		return 0
	}
	return g.surf.Area()
}

// Surface returns the whole outer surface: walls and both caps.
func (g *TextGeometry) Surface() surface.Surface {
	if g == nil {
		return surface.NewComposite()
	}
	return g.surf
}

// Build lays out s with tf and extrudes it according to p.
//
// The text is normalized first. Glyphs without an outline (spaces, color
// glyphs) still advance the pen but contribute no geometry. Text without
// any outlined glyph yields an empty geometry of zero width, not an error.
func Build(s string, tf *text.Typeface, p Params) (*TextGeometry, error) {
	if tf == nil {
		return nil, ErrNoTypeface
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s = text.Normalize(s)
	shapes, err := layoutShapes(s, tf, p)
	if err != nil {
		return nil, err
	}
	return extrude(s, shapes, p), nil
}

// layoutShapes returns one shape per outlined glyph, in scene units.
func layoutShapes(s string, tf *text.Typeface, p Params) ([]shape, error) {
	ppem := tf.LayoutPPEM()
	scale := p.Size / ppem

	var shapes []shape
	for _, g := range tf.Layout(s, ppem) {
		o, err := tf.Outline(g.GID, ppem)
		if errors.Is(err, text.ErrNoOutline) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("geometry: outline of glyph %d: %w", g.GID, err)
		}

		pts := o.Contours(p.CurveSegments)
		if len(pts) == 0 {
			continue
		}
		contours := make([][]mgl64.Vec2, len(pts))
		for i, c := range pts {
			cc := make([]mgl64.Vec2, len(c))
			for j, pt := range c {
				// Outline Y grows downwards, scene Y grows upwards.
				cc[j] = mgl64.Vec2{
					(g.X + float64(pt.X)) * scale,
					(g.Y - float64(pt.Y)) * scale,
				}
			}
			contours[i] = cc
		}
		if sh, ok := newShape(contours); ok {
			shapes = append(shapes, sh)
		}
	}
	return shapes, nil
}

// extrude builds walls, chamfers and caps for shapes.
func extrude(s string, shapes []shape, p Params) *TextGeometry {
	var bevelT, bevelS float64
	if p.BevelEnabled {
		bevelT, bevelS = p.BevelThickness, p.BevelSize
	}
	zBack, zFront := -bevelT, p.Depth+bevelT

	// Rings that carry the walls, outset when bevelled.
	walls := make([][][]mgl64.Vec2, len(shapes))
	for i, sh := range shapes {
		if bevelS > 0 {
			walls[i] = sh.outset(bevelS)
		} else {
			walls[i] = sh.contours
		}
	}

	bb := newBoxBuilder()
	for i, sh := range shapes {
		for _, c := range walls[i] {
			for _, pt := range c {
				bb.addXY(pt, 0)
				bb.addXY(pt, p.Depth)
			}
		}
		for _, c := range sh.contours {
			for _, pt := range c {
				bb.addXY(pt, zBack)
				bb.addXY(pt, zFront)
			}
		}
	}
	box := bb.result()

	// Shift so the box starts at x = 0.
	dx := -box.Min.X()
	if !bb.empty {
		for i, sh := range shapes {
			translateContours(sh.contours, dx)
			if bevelS > 0 {
				translateContours(walls[i], dx)
			}
		}
		box = box.Translate(mgl64.Vec3{dx, 0, 0})
	}

	g := &TextGeometry{
		Text:   s,
		Params: p,
		Box:    box,
	}

	var tris []surface.Triangle
	parts := make([]surface.Surface, 0, 1+2*len(shapes))
	for i, sh := range shapes {
		for j, c := range sh.contours {
			w := walls[i][j]
			tris = append(tris, band(w, w, 0, p.Depth)...)
			if bevelT > 0 || bevelS > 0 {
				tris = append(tris, band(c, w, zBack, 0)...)
				tris = append(tris, band(w, c, p.Depth, zFront)...)
			}
		}
		front := surface.NewRegion(zFront, sh.contours...)
		back := surface.NewRegion(zBack, sh.contours...)
		g.Front = append(g.Front, front)
		g.Back = append(g.Back, back)
		parts = append(parts, front, back)
	}
	g.Walls = surface.NewMesh(tris)
	parts = append(parts, g.Walls)
	g.surf = surface.NewComposite(parts...)
	return g
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/spheretext/surface"
)

// minMiterCos limits how far a sharp corner is pushed when offsetting:
// the miter is never longer than 1/minMiterCos times the offset.
const minMiterCos = 0.25

// shape is the set of closed contours of one glyph in scene units, Y up.
type shape struct {
	contours [][]mgl64.Vec2

	// orient is +1 when the filled side of each edge is on its left
	// (counter-clockwise outer contours) and -1 otherwise.
	orient float64
}

// newShape returns a shape for the contours of one glyph, or false when
// the contours enclose no area.
func newShape(contours [][]mgl64.Vec2) (shape, bool) {
	var area float64
	for _, c := range contours {
		area += surface.SignedArea(c)
	}
	switch {
	case area > 0:
		return shape{contours: contours, orient: 1}, true
	case area < 0:
		return shape{contours: contours, orient: -1}, true
	default:
		return shape{}, false
	}
}

// outset returns the contours moved away from the filled side by d.
func (s shape) outset(d float64) [][]mgl64.Vec2 {
	out := make([][]mgl64.Vec2, len(s.contours))
	for i, c := range s.contours {
		out[i] = offsetContour(c, s.orient, d)
	}
	return out
}

// offsetContour moves every vertex of c along the mitered outward normal of
// its two edges by d.
func offsetContour(c []mgl64.Vec2, orient, d float64) []mgl64.Vec2 {
	n := len(c)
	out := make([]mgl64.Vec2, n)
	for i, cur := range c {
		prev := c[(i+n-1)%n]
		next := c[(i+1)%n]
		n0 := outwardNormal(prev, cur, orient)
		n1 := outwardNormal(cur, next, orient)

		m := n0.Add(n1)
		if m.Len() < 1e-9 {
			// Spike: the edges fold back on each other.
			m = n0
			if m.Len() == 0 {
				m = n1
			}
		} else {
			m = m.Normalize()
		}
		cos := math.Max(m.Dot(n0), m.Dot(n1))
		if cos < minMiterCos {
			cos = minMiterCos
		}
		out[i] = cur.Add(m.Mul(d / cos))
	}
	return out
}

// outwardNormal returns the unit normal of edge a->b pointing away from the
// filled side, or zero for a degenerate edge.
func outwardNormal(a, b mgl64.Vec2, orient float64) mgl64.Vec2 {
	e := b.Sub(a)
	l := e.Len()
	if l == 0 {
		return mgl64.Vec2{}
	}
	return mgl64.Vec2{e.Y(), -e.X()}.Mul(orient / l)
}

// band returns the triangles joining ring lo at zLo to ring hi at zHi.
// Both rings must have the same number of vertices.
func band(lo, hi []mgl64.Vec2, zLo, zHi float64) []surface.Triangle {
	n := len(lo)
	tris := make([]surface.Triangle, 0, 2*n)
	for i := range n {
		j := (i + 1) % n
		a0 := mgl64.Vec3{lo[i].X(), lo[i].Y(), zLo}
		b0 := mgl64.Vec3{lo[j].X(), lo[j].Y(), zLo}
		a1 := mgl64.Vec3{hi[i].X(), hi[i].Y(), zHi}
		b1 := mgl64.Vec3{hi[j].X(), hi[j].Y(), zHi}
		tris = append(tris,
			surface.Triangle{a0, b0, b1},
			surface.Triangle{a0, b1, a1},
		)
	}
	return tris
}

// translateContours shifts every point of cs by dx along X in place.
func translateContours(cs [][]mgl64.Vec2, dx float64) {
	for _, c := range cs {
		for i := range c {
			c[i][0] += dx
		}
	}
}

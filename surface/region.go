// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// maxRejections bounds the rejection sampling loop of Region.Sample.
const maxRejections = 256

// Region is a planar set of closed polygons lying in the plane z = Z.
// Points are inside when their winding number is nonzero, matching how
// TrueType and OpenType glyphs are filled.
//
// Region area is the absolute sum of the contours' signed areas, which is
// exact when holes wind opposite to their outer contour and contours do not
// overlap.
type Region struct {
	contours [][]mgl64.Vec2
	z        float64
	lo, hi   mgl64.Vec2
	area     float64
}

// NewRegion creates a Region at height z. Contours with fewer than three
// points are ignored.
func NewRegion(z float64, contours ...[]mgl64.Vec2) *Region {
	r := &Region{z: z}
	first := true
	var signed float64
	for _, c := range contours {
		if len(c) < 3 {
			continue
		}
		r.contours = append(r.contours, c)
		signed += SignedArea(c)
		for _, p := range c {
			if first {
				r.lo, r.hi = p, p
				first = false
				continue
			}
			r.lo = mgl64.Vec2{math.Min(r.lo[0], p[0]), math.Min(r.lo[1], p[1])}
			r.hi = mgl64.Vec2{math.Max(r.hi[0], p[0]), math.Max(r.hi[1], p[1])}
		}
	}
	r.area = math.Abs(signed)
	return r
}

// Z returns the height of the plane.
func (r *Region) Z() float64 {
	return r.z
}

// Contours returns the polygons of the region.
func (r *Region) Contours() [][]mgl64.Vec2 {
	return r.contours
}

// Bounds returns the bounding rectangle of the region.
func (r *Region) Bounds() (lo, hi mgl64.Vec2) {
	return r.lo, r.hi
}

// Area implements Surface.
func (r *Region) Area() float64 {
	return r.area
}

// Contains reports whether p has a nonzero winding number.
func (r *Region) Contains(p mgl64.Vec2) bool {
	w := 0
	for _, c := range r.contours {
		w += Winding(c, p)
	}
	return w != 0
}

// Sample implements Surface. It rejection samples the bounding rectangle;
// if no inside point is found within a bounded number of attempts it falls
// back to the first contour vertex, which lies on the region's boundary.
func (r *Region) Sample(rng *rand.Rand) mgl64.Vec3 {
	if len(r.contours) == 0 {
		return mgl64.Vec3{0, 0, r.z}
	}
	size := r.hi.Sub(r.lo)
	for range maxRejections {
		p := mgl64.Vec2{
			r.lo[0] + rng.Float64()*size[0],
			r.lo[1] + rng.Float64()*size[1],
		}
		if r.Contains(p) {
			return mgl64.Vec3{p[0], p[1], r.z}
		}
	}
	v := r.contours[0][0]
	return mgl64.Vec3{v[0], v[1], r.z}
}

// SignedArea returns the shoelace area of a closed polygon: positive for
// counter-clockwise winding in a Y-up frame.
func SignedArea(c []mgl64.Vec2) float64 {
	var a float64
	for i := range c {
		p, q := c[i], c[(i+1)%len(c)]
		a += p[0]*q[1] - q[0]*p[1]
	}
	return a / 2
}

// Winding returns the winding number of the closed polygon c around p.
func Winding(c []mgl64.Vec2, p mgl64.Vec2) int {
	w := 0
	for i := range c {
		a, b := c[i], c[(i+1)%len(c)]
		if a[1] <= p[1] {
			if b[1] > p[1] && isLeft(a, b, p) > 0 {
				w++
			}
		} else if b[1] <= p[1] && isLeft(a, b, p) < 0 {
			w--
		}
	}
	return w
}

// isLeft is positive when p is left of the directed line a->b.
func isLeft(a, b, p mgl64.Vec2) float64 {
	return (b[0]-a[0])*(p[1]-a[1]) - (p[0]-a[0])*(b[1]-a[1])
}

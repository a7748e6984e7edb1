// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pool

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/spheretext/surface"
)

// DefaultDensity is the number of spheres per unit of text width.
const DefaultDensity = 150

// RequiredCount returns ceil(width * density), or 0 when the product is not
// a positive finite number. Products beyond the int range give math.MaxInt.
func RequiredCount(width, density float64) int {
	v := width * density
	if !(v > 0) || math.IsInf(v, 0) {
		return 0
	}
	v = math.Ceil(v)
	if v >= math.MaxInt {
		return math.MaxInt
	}
	return int(v)
}

// Targets samples n points from s, adds offset to each, and returns them
// sorted by Key. A surface without area yields n copies of offset.
func Targets(s surface.Surface, n int, offset mgl64.Vec3, rng *rand.Rand) []mgl64.Vec3 {
	pts := surface.SampleN(s, n, rng)
	for i := range pts {
		pts[i] = pts[i].Add(offset)
	}
	SortTargets(pts)
	return pts
}

// SortTargets sorts pts by ascending Key. Equal keys keep their order.
func SortTargets(pts []mgl64.Vec3) {
	slices.SortStableFunc(pts, func(a, b mgl64.Vec3) int {
		ka, kb := Key(a), Key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	})
}

// Key is the ordering key of a target: x + y + z.
func Key(p mgl64.Vec3) float64 {
	return p.X() + p.Y() + p.Z()
}

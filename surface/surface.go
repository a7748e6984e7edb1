// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"math/rand/v2"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Surface is a 2-manifold in 3D space that can be sampled.
type Surface interface {
	// Area returns the total surface area.
	Area() float64

	// Sample returns a uniformly random point on the surface.
	// Calls are independent of each other.
	Sample(rng *rand.Rand) mgl64.Vec3
}

// Sample draws one point from s. Nil surfaces and surfaces without area
// yield the origin.
func Sample(s Surface, rng *rand.Rand) mgl64.Vec3 {
	if s == nil || !(s.Area() > 0) {
		return mgl64.Vec3{}
	}
	return s.Sample(rng)
}

// SampleN draws n independent points from s.
func SampleN(s Surface, n int, rng *rand.Rand) []mgl64.Vec3 {
	if n <= 0 {
		return nil
	}
	pts := make([]mgl64.Vec3, n)
	for i := range pts {
		pts[i] = Sample(s, rng)
	}
	return pts
}

// cdf is a cumulative area table used to pick a part proportionally to
// its area.
type cdf []float64

// pick returns the index of the first bucket whose cumulative value
// exceeds u. Empty buckets are never picked for u in [0, total).
func (c cdf) pick(u float64) int {
	i := sort.Search(len(c), func(i int) bool { return c[i] > u })
	if i >= len(c) {
		i = len(c) - 1
	}
	return i
}

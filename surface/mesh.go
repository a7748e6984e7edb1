// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Triangle is a triangle in 3D space.
type Triangle [3]mgl64.Vec3

// Area returns the area of the triangle.
func (t Triangle) Area() float64 {
	return 0.5 * t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Len()
}

// Normal returns the unit normal following the right hand rule, or the
// zero vector for degenerate triangles.
func (t Triangle) Normal() mgl64.Vec3 {
	n := t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
	if l := n.Len(); l > 0 {
		return n.Mul(1 / l)
	}
	return mgl64.Vec3{}
}

// Sample returns a uniform point inside the triangle. The point is built
// from t[0] along the two edges, so a coordinate shared by all three
// vertices is reproduced exactly.
func (t Triangle) Sample(rng *rand.Rand) mgl64.Vec3 {
	r1 := math.Sqrt(rng.Float64())
	r2 := rng.Float64()
	b := r1 * (1 - r2)
	c := r1 * r2
	return t[0].Add(t[1].Sub(t[0]).Mul(b)).Add(t[2].Sub(t[0]).Mul(c))
}

// Mesh is an immutable triangle soup sampled proportionally to triangle
// area.
type Mesh struct {
	tris []Triangle
	cdf  cdf
	area float64
}

// NewMesh creates a Mesh from triangles. Zero-area triangles are kept in
// Triangles but are never sampled.
func NewMesh(tris []Triangle) *Mesh {
	m := &Mesh{
		tris: tris,
		cdf:  make(cdf, len(tris)),
	}
	for i, t := range tris {
		m.area += t.Area()
		m.cdf[i] = m.area
	}
	return m
}

// Triangles returns the triangles of the mesh. The slice must not be
// modified.
func (m *Mesh) Triangles() []Triangle {
	return m.tris
}

// Len returns the number of triangles.
func (m *Mesh) Len() int {
	return len(m.tris)
}

// Area implements Surface.
func (m *Mesh) Area() float64 {
	return m.area
}

// Sample implements Surface.
func (m *Mesh) Sample(rng *rand.Rand) mgl64.Vec3 {
	if len(m.tris) == 0 || !(m.area > 0) {
		return mgl64.Vec3{}
	}
	i := m.cdf.pick(rng.Float64() * m.area)
	return m.tris[i].Sample(rng)
}

// Bounds returns the axis aligned bounds of all vertices. An empty mesh
// returns zero vectors.
func (m *Mesh) Bounds() (lo, hi mgl64.Vec3) {
	if len(m.tris) == 0 {
		return lo, hi
	}
	lo, hi = m.tris[0][0], m.tris[0][0]
	for _, t := range m.tris {
		for _, v := range t {
			for k := 0; k < 3; k++ {
				lo[k] = math.Min(lo[k], v[k])
				hi[k] = math.Max(hi[k], v[k])
			}
		}
	}
	return lo, hi
}

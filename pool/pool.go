// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pool

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Pool is a variable-length, index aligned collection of spheres and their
// targets. It is not safe for concurrent use.
type Pool struct {
	spheres []*Sphere
	targets []mgl64.Vec3
	nextID  int
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{}
}

// Len returns the number of spheres.
func (p *Pool) Len() int {
	return len(p.spheres)
}

// Spheres returns the spheres in index order. The slice must not be
// modified.
func (p *Pool) Spheres() []*Sphere {
	return p.spheres
}

// Targets returns the current targets in index order. The slice must not
// be modified.
func (p *Pool) Targets() []mgl64.Vec3 {
	return p.targets
}

// Reconcile resizes the pool to len(targets) and assigns targets[i] to
// sphere i.
//
// New spheres start at the origin with attributes drawn from rng and are
// returned in added; the caller adds them to its scene. Spheres cut from
// the tail are returned in removed; the caller releases them.
func (p *Pool) Reconcile(targets []mgl64.Vec3, rng *rand.Rand) (added, removed []*Sphere) {
	n := len(targets)

	switch cur := len(p.spheres); {
	case n > cur:
		added = make([]*Sphere, 0, n-cur)
		for range n - cur {
			s := newSphere(p.nextID, NewAttributes(rng))
			p.nextID++
			p.spheres = append(p.spheres, s)
			added = append(added, s)
		}
	case n < cur:
		removed = make([]*Sphere, cur-n)
		copy(removed, p.spheres[n:])
		clear(p.spheres[n:])
		p.spheres = p.spheres[:n]
	}

	p.targets = append(p.targets[:0], targets...)
	for i, s := range p.spheres {
		s.Target = p.targets[i]
	}
	return added, removed
}

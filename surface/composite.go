// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Composite is the union of several surfaces, sampled proportionally to
// each part's area.
type Composite struct {
	parts []Surface
	cdf   cdf
	area  float64
}

// NewComposite combines parts. Nil parts and parts without area are
// dropped.
func NewComposite(parts ...Surface) *Composite {
	c := &Composite{}
	for _, p := range parts {
		if p == nil {
			continue
		}
		a := p.Area()
		if !(a > 0) {
			continue
		}
		c.area += a
		c.parts = append(c.parts, p)
		c.cdf = append(c.cdf, c.area)
	}
	return c
}

// Parts returns the surfaces that contribute area.
func (c *Composite) Parts() []Surface {
	return c.parts
}

// Area implements Surface.
func (c *Composite) Area() float64 {
	return c.area
}

// Sample implements Surface.
func (c *Composite) Sample(rng *rand.Rand) mgl64.Vec3 {
	if len(c.parts) == 0 {
		return mgl64.Vec3{}
	}
	i := c.cdf.pick(rng.Float64() * c.area)
	return c.parts[i].Sample(rng)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pool

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Visual attribute ranges of new spheres.
const (
	// Saturation is the HSL saturation of every sphere.
	Saturation = 1.0

	// Lightness is the HSL lightness of every sphere.
	Lightness = 0.5

	// MinRoughness and MaxRoughness bound the material roughness,
	// [MinRoughness, MaxRoughness).
	MinRoughness = 0.2
	MaxRoughness = 0.8

	// BaseRadius is the smallest sphere radius.
	BaseRadius = 0.02

	// RadiusJitter is the exclusive upper bound of the random amount added
	// to BaseRadius.
	RadiusJitter = 0.002
)

// Attributes are the visual properties of a sphere.
type Attributes struct {
	// Hue in degrees, [0, 360).
	Hue float64

	// Roughness of the sphere material.
	Roughness float64

	// Radius of the sphere.
	Radius float64
}

// NewAttributes draws random attributes from rng.
func NewAttributes(rng *rand.Rand) Attributes {
	return Attributes{
		Hue:       rng.Float64() * 360,
		Roughness: MinRoughness + rng.Float64()*(MaxRoughness-MinRoughness),
		Radius:    BaseRadius + rng.Float64()*RadiusJitter,
	}
}

// Color returns the sphere colour: the hue at full saturation and medium
// lightness.
func (a Attributes) Color() colorful.Color {
	return colorful.Hsl(a.Hue, Saturation, Lightness).Clamped()
}

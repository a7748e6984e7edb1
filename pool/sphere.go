// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pool

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Sphere is one animated sphere.
//
// Position, Velocity and Target are owned by the animation loop. The visual
// attributes are fixed at creation.
type Sphere struct {
	// ID is unique within the pool that created the sphere.
	ID int

	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Target   mgl64.Vec3

	attrs Attributes
	color colorful.Color
}

func newSphere(id int, attrs Attributes) *Sphere {
	return &Sphere{
		ID:    id,
		attrs: attrs,
		color: attrs.Color(),
	}
}

// Attributes returns the visual attributes of s.
func (s *Sphere) Attributes() Attributes { return s.attrs }

// Center returns the current position.
func (s *Sphere) Center() mgl64.Vec3 { return s.Position }

// Radius returns the sphere radius.
func (s *Sphere) Radius() float64 { return s.attrs.Radius }

// Color returns the sphere colour.
func (s *Sphere) Color() colorful.Color { return s.color }

// Roughness returns the material roughness.
func (s *Sphere) Roughness() float64 { return s.attrs.Roughness }

// Name returns a stable name for scene bookkeeping.
func (s *Sphere) Name() string { return "sphere-" + strconv.Itoa(s.ID) }

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box3 is an axis-aligned bounding box.
// The zero value is an empty box at the origin.
type Box3 struct {
	Min, Max mgl64.Vec3
}

// Width returns the extent along X.
func (b Box3) Width() float64 { return b.Max.X() - b.Min.X() }

// Height returns the extent along Y.
func (b Box3) Height() float64 { return b.Max.Y() - b.Min.Y() }

// Depth returns the extent along Z.
func (b Box3) Depth() float64 { return b.Max.Z() - b.Min.Z() }

// Center returns the middle of the box.
func (b Box3) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// IsEmpty reports whether the box has no volume and no extent.
func (b Box3) IsEmpty() bool {
	return b.Min == b.Max
}

// Contains reports whether p lies inside the box, within eps.
func (b Box3) Contains(p mgl64.Vec3, eps float64) bool {
	for i := range 3 {
		if p[i] < b.Min[i]-eps || p[i] > b.Max[i]+eps {
			return false
		}
	}
	return true
}

// Translate returns the box moved by d.
func (b Box3) Translate(d mgl64.Vec3) Box3 {
	return Box3{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// boxBuilder accumulates points into a Box3.
type boxBuilder struct {
	box   Box3
	empty bool
}

func newBoxBuilder() boxBuilder {
	inf := math.Inf(1)
	return boxBuilder{
		box: Box3{
			Min: mgl64.Vec3{inf, inf, inf},
			Max: mgl64.Vec3{-inf, -inf, -inf},
		},
		empty: true,
	}
}

func (bb *boxBuilder) addXY(p mgl64.Vec2, z float64) {
	bb.add(mgl64.Vec3{p.X(), p.Y(), z})
}

func (bb *boxBuilder) add(p mgl64.Vec3) {
	bb.empty = false
	for i := range 3 {
		bb.box.Min[i] = math.Min(bb.box.Min[i], p[i])
		bb.box.Max[i] = math.Max(bb.box.Max[i], p[i])
	}
}

func (bb *boxBuilder) result() Box3 {
	if bb.empty {
		return Box3{}
	}
	return bb.box
}

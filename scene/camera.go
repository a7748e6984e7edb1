// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Default perspective camera parameters.
const (
	DefaultFOV  = 50 // degrees, vertical
	DefaultNear = 0.1
	DefaultFar  = 2000
)

// fitMargin leaves some room around fitted content.
const fitMargin = 1.15

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	// FOV is the vertical field of view in degrees.
	FOV       float64
	Aspect    float64
	Near, Far float64

	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
}

// NewCamera returns a camera at z = 5 looking at the origin, with aspect 1.
func NewCamera() *Camera {
	return &Camera{
		FOV:      DefaultFOV,
		Aspect:   1,
		Near:     DefaultNear,
		Far:      DefaultFar,
		Position: mgl64.Vec3{0, 0, 5},
		Up:       mgl64.Vec3{0, 1, 0},
	}
}

// SetAspect sets the aspect ratio from a viewport size. Non-positive sizes
// are ignored.
func (c *Camera) SetAspect(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.Aspect = float64(w) / float64(h)
}

// Fit moves the camera along +Z so that a box centred at center with the
// given half extents fills the view, and aims it at center.
func (c *Camera) Fit(center mgl64.Vec3, halfW, halfH, halfD float64) {
	tanHalf := math.Tan(mgl64.DegToRad(c.FOV) / 2)
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	extent := math.Max(halfH, halfW/aspect)
	if extent <= 0 {
		extent = 1
	}
	dist := extent*fitMargin/tanHalf + halfD
	c.Target = center
	c.Position = center.Add(mgl64.Vec3{0, 0, dist})
}

// View returns the view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(vec32(c.Position), vec32(c.Target), vec32(c.Up))
}

// Projection returns the projection matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(
		mgl32.DegToRad(float32(c.FOV)),
		float32(c.Aspect),
		float32(c.Near),
		float32(c.Far),
	)
}

// Projected is a point mapped to a viewport.
type Projected struct {
	// X, Y are pixel coordinates, Y down.
	X, Y float64

	// Depth is the distance in front of the camera along its view axis.
	Depth float64

	// Scale is the number of pixels per scene unit at Depth.
	Scale float64
}

// Project maps p to a w x h viewport. It returns false for points behind
// the near plane or beyond the far plane.
func (c *Camera) Project(p mgl64.Vec3, w, h int) (Projected, bool) {
	view := c.View()
	eye := view.Mul4x1(vec32(p).Vec4(1))
	depth := float64(-eye.Z())
	if depth < c.Near || depth > c.Far {
		return Projected{}, false
	}

	clip := c.Projection().Mul4x1(eye)
	ndc := clip.Vec3().Mul(1 / clip.W())

	tanHalf := math.Tan(mgl64.DegToRad(c.FOV) / 2)
	return Projected{
		X:     (float64(ndc.X()) + 1) / 2 * float64(w),
		Y:     (1 - float64(ndc.Y())) / 2 * float64(h),
		Depth: depth,
		Scale: float64(h) / 2 / (tanHalf * depth),
	}, true
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import (
	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultDamping is the fraction of the remaining distance covered each
// frame by the default easer.
const DefaultDamping = 0.1

// Easer advances a position towards a target by one frame.
type Easer interface {
	Ease(pos, vel, target mgl64.Vec3) (newPos, newVel mgl64.Vec3)
}

// ValidDamping reports whether d is a usable Lerp damping: strictly
// between 0 and 1. Zero never moves, one snaps, and anything outside
// overshoots or moves away from the target.
func ValidDamping(d float64) bool {
	return d > 0 && d < 1
}

// Lerp moves a fixed fraction of the remaining distance every frame:
// pos += (target - pos) * Damping. With a ValidDamping value it approaches
// the target without reaching or passing it. The returned velocity is the
// step taken.
type Lerp struct {
	Damping float64
}

// Ease implements Easer.
func (l Lerp) Ease(pos, _, target mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	step := target.Sub(pos).Mul(l.Damping)
	return pos.Add(step), step
}

// Spring eases with a damped harmonic oscillator. With a damping ratio of
// at least 1 it settles without overshooting.
type Spring struct {
	s harmonica.Spring
}

// NewSpring returns a spring stepped at fps frames per second with the given
// angular frequency and damping ratio.
func NewSpring(fps int, frequency, damping float64) Spring {
	return Spring{s: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Ease implements Easer.
func (s Spring) Ease(pos, vel, target mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	var np, nv mgl64.Vec3
	for i := range 3 {
		np[i], nv[i] = s.s.Update(pos[i], vel[i], target[i])
	}
	return np, nv
}

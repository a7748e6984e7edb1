// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import (
	"time"

	"github.com/gogpu/spheretext/pool"
)

// Driver eases the spheres of a pool towards their targets and renders,
// once per frame. It is not safe for concurrent use; run it on the
// scheduler's goroutine.
type Driver struct {
	pool   *pool.Pool
	easer  Easer
	render func() error

	sched   Scheduler
	handle  FrameHandle
	running bool
	frames  uint64
	onError func(error)
}

// NewDriver returns a driver for p. A nil easer means Lerp with
// DefaultDamping; a nil render is skipped.
func NewDriver(p *pool.Pool, e Easer, render func() error) *Driver {
	if e == nil {
		e = Lerp{Damping: DefaultDamping}
	}
	return &Driver{pool: p, easer: e, render: render}
}

// OnError sets the function receiving render errors from scheduled frames.
func (d *Driver) OnError(fn func(error)) {
	d.onError = fn
}

// Step advances every sphere that has a target by one frame and renders.
// Spheres and targets are paired by index up to the shorter of the two.
func (d *Driver) Step() error {
	spheres := d.pool.Spheres()
	targets := d.pool.Targets()
	n := min(len(spheres), len(targets))
	for i := range n {
		s := spheres[i]
		s.Position, s.Velocity = d.easer.Ease(s.Position, s.Velocity, targets[i])
	}
	d.frames++
	if d.render == nil {
		return nil
	}
	return d.render()
}

// Start requests the first frame from s. Each frame requests the next one
// until Stop. Start on a running driver is a no-op.
func (d *Driver) Start(s Scheduler) {
	if d.running {
		return
	}
	d.sched = s
	d.running = true
	d.handle = s.RequestFrame(d.frame)
}

// Stop cancels the outstanding frame. No frame runs after Stop returns.
func (d *Driver) Stop() {
	if !d.running {
		return
	}
	d.running = false
	d.sched.CancelFrame(d.handle)
	d.handle = 0
}

// Running reports whether frames are being scheduled.
func (d *Driver) Running() bool {
	return d.running
}

// Frames returns the number of steps taken.
func (d *Driver) Frames() uint64 {
	return d.frames
}

func (d *Driver) frame(time.Time) {
	if !d.running {
		return
	}
	if err := d.Step(); err != nil && d.onError != nil {
		d.onError(err)
	}
	if d.running {
		d.handle = d.sched.RequestFrame(d.frame)
	}
}

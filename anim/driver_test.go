// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/spheretext/pool"
)

func newPool(t *testing.T, targets ...mgl64.Vec3) *pool.Pool {
	t.Helper()
	p := pool.New()
	p.Reconcile(targets, rand.New(rand.NewPCG(1, 1)))
	return p
}

func TestDriver_StepConverges(t *testing.T) {
	target := mgl64.Vec3{2, 1, 0.5}
	p := newPool(t, target, mgl64.Vec3{-1, 0, 0})

	var renders int
	d := NewDriver(p, nil, func() error {
		renders++
		return nil
	})
	for range 200 {
		if err := d.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if renders != 200 || d.Frames() != 200 {
		t.Errorf("renders = %d, frames = %d, want 200", renders, d.Frames())
	}
	if got := p.Spheres()[0].Position; !got.ApproxEqualThreshold(target, 1e-6) {
		t.Errorf("position = %v, want %v", got, target)
	}
}

// stubScheduler records requests and lets the test fire them by hand.
type stubScheduler struct {
	next      FrameHandle
	pending   map[FrameHandle]FrameFunc
	cancelled int
}

func newStubScheduler() *stubScheduler {
	return &stubScheduler{pending: map[FrameHandle]FrameFunc{}}
}

func (s *stubScheduler) RequestFrame(fn FrameFunc) FrameHandle {
	s.next++
	s.pending[s.next] = fn
	return s.next
}

func (s *stubScheduler) CancelFrame(h FrameHandle) {
	if _, ok := s.pending[h]; ok {
		s.cancelled++
	}
	delete(s.pending, h)
}

func (s *stubScheduler) fire() int {
	fns := s.pending
	s.pending = map[FrameHandle]FrameFunc{}
	for _, fn := range fns {
		fn(time.Time{})
	}
	return len(fns)
}

func TestDriver_StartStop(t *testing.T) {
	p := newPool(t, mgl64.Vec3{1, 0, 0})
	var renders int
	d := NewDriver(p, Lerp{Damping: 0.5}, func() error {
		renders++
		return nil
	})
	s := newStubScheduler()

	d.Start(s)
	d.Start(s)
	if len(s.pending) != 1 {
		t.Fatalf("pending = %d after double Start, want 1", len(s.pending))
	}
	for range 3 {
		s.fire()
	}
	if renders != 3 {
		t.Errorf("renders = %d, want 3", renders)
	}

	d.Stop()
	if d.Running() {
		t.Error("Running() after Stop")
	}
	if s.cancelled != 1 || len(s.pending) != 0 {
		t.Errorf("cancelled = %d, pending = %d", s.cancelled, len(s.pending))
	}
	if s.fire() != 0 || renders != 3 {
		t.Errorf("renders = %d after Stop, want 3", renders)
	}
	d.Stop()
}

func TestDriver_StopInsideRender(t *testing.T) {
	p := newPool(t)
	s := newStubScheduler()
	var d *Driver
	d = NewDriver(p, nil, func() error {
		d.Stop()
		return nil
	})
	d.Start(s)
	s.fire()
	if len(s.pending) != 0 {
		t.Error("frame re-requested after Stop inside render")
	}
}

func TestDriver_RenderError(t *testing.T) {
	errBoom := errors.New("boom")
	d := NewDriver(newPool(t), nil, func() error { return errBoom })
	var got error
	d.OnError(func(err error) { got = err })

	s := newStubScheduler()
	d.Start(s)
	s.fire()
	if !errors.Is(got, errBoom) {
		t.Errorf("OnError got %v, want %v", got, errBoom)
	}
	if !d.Running() || len(s.pending) != 1 {
		t.Error("driver stopped after render error")
	}
}

func TestDriver_NoRender(t *testing.T) {
	d := NewDriver(newPool(t, mgl64.Vec3{1, 1, 1}), nil, nil)
	if err := d.Step(); err != nil {
		t.Errorf("Step() error = %v", err)
	}
}

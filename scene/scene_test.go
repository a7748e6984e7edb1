// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/spheretext/surface"
)

type ball struct {
	name string
	c    mgl64.Vec3
}

func (b *ball) Name() string          { return b.name }
func (b *ball) Center() mgl64.Vec3    { return b.c }
func (b *ball) Radius() float64       { return 0.02 }
func (b *ball) Color() colorful.Color { return colorful.Color{R: 1} }
func (b *ball) Roughness() float64    { return 0.5 }

type marker string

func (m marker) Name() string { return string(m) }

func TestScene_AddRemove(t *testing.T) {
	s := New()
	a, b, c := &ball{name: "a"}, &ball{name: "b"}, &ball{name: "c"}

	s.Add(a, b, c, a, nil)
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	v := s.Version()

	s.Remove(b, &ball{name: "stranger"})
	if s.Len() != 2 || s.Objects()[0] != a || s.Objects()[1] != c {
		t.Fatalf("Objects() = %v, want [a c]", s.Objects())
	}
	if s.Version() == v {
		t.Error("Version() not bumped by Remove")
	}

	v = s.Version()
	s.Remove(b)
	if s.Version() != v {
		t.Error("Version() bumped by no-op Remove")
	}

	s.Add(marker("m"))
	if got := len(s.Spheres()); got != 2 {
		t.Errorf("len(Spheres()) = %d, want 2", got)
	}
}

type plate struct{ shown bool }

func (*plate) Name() string             { return "plate" }
func (*plate) Surface() surface.Surface { return surface.NewComposite() }
func (*plate) Offset() mgl64.Vec3       { return mgl64.Vec3{} }
func (p *plate) Visible() bool          { return p.shown }

func TestScene_Meshes(t *testing.T) {
	s := New()
	m := &plate{}
	s.Add(&ball{name: "a"}, m)
	if got := s.Meshes(); len(got) != 1 || got[0] != Mesh(m) {
		t.Errorf("Meshes() = %v, want [plate]", got)
	}
	if got := s.Spheres(); len(got) != 1 {
		t.Errorf("len(Spheres()) = %d, want 1", len(got))
	}
	s.Remove(m)
	if got := s.Meshes(); len(got) != 0 {
		t.Errorf("Meshes() after Remove = %v", got)
	}
}

func TestCamera_Project(t *testing.T) {
	c := NewCamera()
	c.SetAspect(800, 600)

	p, ok := c.Project(mgl64.Vec3{}, 800, 600)
	if !ok {
		t.Fatal("origin not visible")
	}
	if math.Abs(p.X-400) > 1e-3 || math.Abs(p.Y-300) > 1e-3 {
		t.Errorf("origin at (%v, %v), want viewport centre", p.X, p.Y)
	}
	if math.Abs(p.Depth-5) > 1e-5 {
		t.Errorf("Depth = %v, want 5", p.Depth)
	}

	up, _ := c.Project(mgl64.Vec3{0, 1, 0}, 800, 600)
	if up.Y >= p.Y {
		t.Errorf("+Y projected below origin: %v >= %v", up.Y, p.Y)
	}
	if math.Abs((p.Y-up.Y)-p.Scale) > 1e-2 {
		t.Errorf("Scale = %v, want %v pixels per unit", p.Scale, p.Y-up.Y)
	}

	if _, ok := c.Project(mgl64.Vec3{0, 0, 10}, 800, 600); ok {
		t.Error("point behind camera reported visible")
	}
}

func TestCamera_Fit(t *testing.T) {
	c := NewCamera()
	c.SetAspect(1000, 500)
	center := mgl64.Vec3{0, 0.35, 0.1}
	c.Fit(center, 1.5, 0.35, 0.12)

	if c.Target != center {
		t.Errorf("Target = %v, want %v", c.Target, center)
	}
	for _, x := range []float64{-1.5, 1.5} {
		p, ok := c.Project(mgl64.Vec3{x, 0.35, 0.22}, 1000, 500)
		if !ok || p.X < 0 || p.X > 1000 {
			t.Errorf("edge x=%v projected to %+v, ok %v", x, p, ok)
		}
	}
}

func TestCamera_SetAspectIgnoresZero(t *testing.T) {
	c := NewCamera()
	c.SetAspect(0, 100)
	if c.Aspect != 1 {
		t.Errorf("Aspect = %v, want 1", c.Aspect)
	}
}

func TestViewport(t *testing.T) {
	v := NewViewport(640, 480)
	var calls int
	var gotW, gotH int
	cancel := v.OnResize(func(w, h int) {
		calls++
		gotW, gotH = w, h
	})

	v.Resize(640, 480)
	v.Resize(0, 10)
	if calls != 0 {
		t.Errorf("calls = %d for unchanged or invalid size, want 0", calls)
	}

	v.Resize(1024, 768)
	if calls != 1 || gotW != 1024 || gotH != 768 {
		t.Errorf("calls = %d, size = %dx%d", calls, gotW, gotH)
	}
	if w, h := v.Size(); w != 1024 || h != 768 {
		t.Errorf("Size() = %dx%d", w, h)
	}

	cancel()
	cancel()
	if v.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d after cancel, want 0", v.Subscribers())
	}
	v.Resize(800, 600)
	if calls != 1 {
		t.Errorf("calls = %d after cancel, want 1", calls)
	}
}

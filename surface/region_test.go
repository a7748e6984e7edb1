// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// ring returns a 4x4 square with a 2x2 hole, the hole wound opposite to
// the outer contour.
func ring() (outer, hole []mgl64.Vec2) {
	outer = []mgl64.Vec2{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	hole = []mgl64.Vec2{{1, 1}, {1, 3}, {3, 3}, {3, 1}}
	return outer, hole
}

func TestSignedArea(t *testing.T) {
	outer, hole := ring()
	if got := SignedArea(outer); got != 16 {
		t.Errorf("SignedArea(outer) = %v, want 16", got)
	}
	if got := SignedArea(hole); got != -4 {
		t.Errorf("SignedArea(hole) = %v, want -4", got)
	}
}

func TestWinding(t *testing.T) {
	outer, hole := ring()
	tests := []struct {
		p    mgl64.Vec2
		want int
	}{
		{mgl64.Vec2{0.5, 0.5}, 1},
		{mgl64.Vec2{2, 2}, 1},
		{mgl64.Vec2{5, 2}, 0},
	}
	for _, tt := range tests {
		if got := Winding(outer, tt.p); got != tt.want {
			t.Errorf("Winding(outer, %v) = %d, want %d", tt.p, got, tt.want)
		}
	}
	if got := Winding(hole, mgl64.Vec2{2, 2}); got != -1 {
		t.Errorf("Winding(hole, center) = %d, want -1", got)
	}
}

func TestRegion(t *testing.T) {
	outer, hole := ring()
	r := NewRegion(0.5, outer, hole, []mgl64.Vec2{{9, 9}})

	if len(r.Contours()) != 2 {
		t.Fatalf("len(Contours()) = %d, want 2 (short contour dropped)", len(r.Contours()))
	}
	if r.Area() != 12 {
		t.Errorf("Area() = %v, want 12", r.Area())
	}
	if r.Z() != 0.5 {
		t.Errorf("Z() = %v, want 0.5", r.Z())
	}
	lo, hi := r.Bounds()
	if lo != (mgl64.Vec2{0, 0}) || hi != (mgl64.Vec2{4, 4}) {
		t.Errorf("Bounds() = %v, %v", lo, hi)
	}

	if r.Contains(mgl64.Vec2{2, 2}) {
		t.Error("hole center reported inside")
	}
	if !r.Contains(mgl64.Vec2{0.5, 2}) {
		t.Error("ring point reported outside")
	}

	rng := newRand()
	for i := 0; i < 2000; i++ {
		p := r.Sample(rng)
		if p.Z() != 0.5 {
			t.Fatalf("sample %v off plane", p)
		}
		if !r.Contains(mgl64.Vec2{p.X(), p.Y()}) {
			t.Fatalf("sample %v not inside region", p)
		}
	}
}

func TestRegion_Uniform(t *testing.T) {
	outer, hole := ring()
	r := NewRegion(0, outer, hole)
	rng := newRand()

	// The left strip x < 1 holds 4 of the 12 units of area.
	const n = 12000
	var left int
	for i := 0; i < n; i++ {
		if r.Sample(rng).X() < 1 {
			left++
		}
	}
	if frac := float64(left) / n; math.Abs(frac-1.0/3) > 0.03 {
		t.Errorf("fraction in left strip = %v, want about 1/3", frac)
	}
}

func TestRegion_FallbackOnBoundary(t *testing.T) {
	// Sliver with positive area that rejection sampling will almost never
	// hit inside its wide bounding box.
	sliver := []mgl64.Vec2{{0, 0}, {1000, 0}, {1000, 1e-9}}
	r := NewRegion(1, sliver)
	p := r.Sample(newRand())
	if p.Z() != 1 {
		t.Errorf("fallback sample %v off plane", p)
	}
}

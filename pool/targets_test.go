// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pool

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/spheretext/surface"
)

func TestRequiredCount(t *testing.T) {
	tests := []struct {
		width, density float64
		want           int
	}{
		{0, 150, 0},
		{-1, 150, 0},
		{math.NaN(), 150, 0},
		{math.Inf(1), 150, 0},
		{1, 150, 150},
		{0.001, 150, 1},
		{2.5, 150, 375},
		{1.0001, 10, 11},
		{2, 1e300, math.MaxInt},
		{1, math.MaxInt, math.MaxInt},
	}
	for _, tt := range tests {
		if got := RequiredCount(tt.width, tt.density); got != tt.want {
			t.Errorf("RequiredCount(%v, %v) = %d, want %d", tt.width, tt.density, got, tt.want)
		}
	}
}

func TestTargets(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{2, 0, 0}
	c := mgl64.Vec3{2, 1, 0}
	m := surface.NewMesh([]surface.Triangle{{a, b, c}})
	offset := mgl64.Vec3{-1, 0, 0}

	pts := Targets(m, 200, offset, newRand())
	if len(pts) != 200 {
		t.Fatalf("len = %d, want 200", len(pts))
	}
	for i, p := range pts {
		if p.X() < -1 || p.X() > 1 {
			t.Fatalf("pts[%d] = %v not offset", i, p)
		}
		if i > 0 && Key(pts[i-1]) > Key(p) {
			t.Fatalf("pts not sorted at %d", i)
		}
	}
}

func TestTargets_Degenerate(t *testing.T) {
	offset := mgl64.Vec3{-0.5, 0, 0}
	pts := Targets(surface.NewMesh(nil), 3, offset, newRand())
	for _, p := range pts {
		if p != offset {
			t.Errorf("point %v, want offset %v", p, offset)
		}
	}
	if got := Targets(surface.NewMesh(nil), 0, offset, newRand()); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestSortTargets_Stable(t *testing.T) {
	pts := []mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}, {0, 0, 1}}
	SortTargets(pts)
	want := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("pts[%d] = %v, want %v", i, pts[i], want[i])
		}
	}
}

// Repeated reconciliation with the same text keeps the count but not the
// exact target positions.
func TestTargets_ResampleKeepsCount(t *testing.T) {
	m := surface.NewMesh([]surface.Triangle{{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}})
	rng := newRand()
	p := New()
	n := RequiredCount(1, DefaultDensity)

	p.Reconcile(Targets(m, n, mgl64.Vec3{}, rng), rng)
	first := append([]mgl64.Vec3(nil), p.Targets()...)
	added, removed := p.Reconcile(Targets(m, n, mgl64.Vec3{}, rng), rng)

	if len(added) != 0 || len(removed) != 0 || p.Len() != n {
		t.Fatalf("second reconcile changed size: +%d -%d len %d", len(added), len(removed), p.Len())
	}
	same := true
	for i := range first {
		if first[i] != p.Targets()[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("targets identical after resampling")
	}
}

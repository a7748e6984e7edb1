// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Params)
		wantErr bool
	}{
		{"default", func(*Params) {}, false},
		{"zero size", func(p *Params) { p.Size = 0 }, true},
		{"negative depth", func(p *Params) { p.Depth = -1 }, true},
		{"infinite size", func(p *Params) { p.Size = math.Inf(1) }, true},
		{"NaN depth", func(p *Params) { p.Depth = math.NaN() }, true},
		{"no curve segments", func(p *Params) { p.CurveSegments = 0 }, true},
		{"negative bevel", func(p *Params) { p.BevelSize = -0.1 }, true},
		{"negative bevel disabled", func(p *Params) {
			p.BevelEnabled = false
			p.BevelSize = -0.1
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Validate() error = %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestOffsetContour(t *testing.T) {
	square := []mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	sh, ok := newShape([][]mgl64.Vec2{square})
	if !ok || sh.orient != 1 {
		t.Fatalf("newShape() = %+v, %v", sh, ok)
	}
	out := sh.outset(0.1)[0]
	want := []mgl64.Vec2{{-0.1, -0.1}, {1.1, -0.1}, {1.1, 1.1}, {-0.1, 1.1}}
	for i := range want {
		if !out[i].ApproxEqualThreshold(want[i], 1e-12) {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}

	// Clockwise winding offsets the same way.
	cw := []mgl64.Vec2{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	sh, _ = newShape([][]mgl64.Vec2{cw})
	if sh.orient != -1 {
		t.Fatalf("orient = %v, want -1", sh.orient)
	}
	if got := sh.outset(0.1)[0][0]; !got.ApproxEqualThreshold(mgl64.Vec2{-0.1, -0.1}, 1e-12) {
		t.Errorf("cw out[0] = %v, want (-0.1, -0.1)", got)
	}

	if _, ok := newShape([][]mgl64.Vec2{{{0, 0}, {1, 1}, {2, 2}}}); ok {
		t.Error("newShape(collinear) ok = true, want false")
	}
}

func TestBox3(t *testing.T) {
	b := Box3{Min: mgl64.Vec3{0, -1, 2}, Max: mgl64.Vec3{4, 1, 3}}
	if b.Width() != 4 || b.Height() != 2 || b.Depth() != 1 {
		t.Errorf("extents = %v %v %v", b.Width(), b.Height(), b.Depth())
	}
	if b.Center() != (mgl64.Vec3{2, 0, 2.5}) {
		t.Errorf("Center() = %v", b.Center())
	}
	if b.IsEmpty() || !(Box3{}).IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
	if !b.Contains(mgl64.Vec3{4, 1, 3}, 0) || b.Contains(mgl64.Vec3{5, 0, 2.5}, 0) {
		t.Error("Contains mismatch")
	}
}

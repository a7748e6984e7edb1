// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestLerp(t *testing.T) {
	e := Lerp{Damping: DefaultDamping}
	pos, _ := e.Ease(mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{10, -10, 0})
	if !pos.ApproxEqual(mgl64.Vec3{1, -1, 0}) {
		t.Errorf("first step = %v, want (1, -1, 0)", pos)
	}
}

func TestEasers_ConvergeWithoutOvershoot(t *testing.T) {
	tests := []struct {
		name   string
		e      Easer
		frames int
	}{
		{"lerp", Lerp{Damping: DefaultDamping}, 300},
		{"spring", NewSpring(60, 6, 1), 600},
	}
	target := mgl64.Vec3{1, 2, -3}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pos, vel mgl64.Vec3
			prev := target.Len()
			for i := 0; i < tt.frames; i++ {
				pos, vel = tt.e.Ease(pos, vel, target)
				for k := range 3 {
					// Moving from 0 towards target[k], never past it.
					if target[k] > 0 && pos[k] > target[k]+1e-9 ||
						target[k] < 0 && pos[k] < target[k]-1e-9 {
						t.Fatalf("frame %d overshoot: %v", i, pos)
					}
				}
				d := target.Sub(pos).Len()
				if d > prev+1e-12 {
					t.Fatalf("frame %d distance grew: %v > %v", i, d, prev)
				}
				prev = d
			}
			if prev > 1e-3 {
				t.Errorf("distance after %d frames = %v, want < 1e-3", tt.frames, prev)
			}
		})
	}
}

func TestValidDamping(t *testing.T) {
	tests := []struct {
		d    float64
		want bool
	}{
		{DefaultDamping, true},
		{0.5, true},
		{0, false},
		{1, false},
		{1.5, false},
		{-0.2, false},
	}
	for _, tt := range tests {
		if got := ValidDamping(tt.d); got != tt.want {
			t.Errorf("ValidDamping(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

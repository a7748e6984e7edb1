// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import "testing"

func TestLayout(t *testing.T) {
	tf := newGoRegular(t)
	ppem := tf.LayoutPPEM()

	tests := []struct {
		name   string
		text   string
		glyphs int
	}{
		{"empty", "", 0},
		{"single", "A", 1},
		{"word", "love", 4},
		{"with space", "a b", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			glyphs := tf.Layout(tt.text, ppem)
			if len(glyphs) != tt.glyphs {
				t.Fatalf("Layout(%q) = %d glyphs, want %d", tt.text, len(glyphs), tt.glyphs)
			}
			for i := 1; i < len(glyphs); i++ {
				if glyphs[i].X <= glyphs[i-1].X {
					t.Errorf("glyph %d X = %v, not right of glyph %d X = %v", i, glyphs[i].X, i-1, glyphs[i-1].X)
				}
			}
		})
	}
}

func TestLayout_ZeroPPEM(t *testing.T) {
	tf := newGoRegular(t)
	if got := tf.Layout("A", 0); got != nil {
		t.Errorf("Layout(ppem=0) = %v, want nil", got)
	}
}

func TestAdvance_Monotonic(t *testing.T) {
	tf := newGoRegular(t)
	ppem := tf.LayoutPPEM()

	a := tf.Advance("A", ppem)
	ab := tf.Advance("AB", ppem)
	abc := tf.Advance("ABC", ppem)
	if a <= 0 || ab <= a || abc <= ab {
		t.Errorf("advances not increasing: A=%v AB=%v ABC=%v", a, ab, abc)
	}
}

func TestAdvance_ScalesWithPPEM(t *testing.T) {
	tf := newGoRegular(t)
	small := tf.Advance("love", 100)
	large := tf.Advance("love", 200)
	if small <= 0 {
		t.Fatalf("Advance at 100 = %v, want > 0", small)
	}
	ratio := large / small
	if ratio < 1.9 || ratio > 2.1 {
		t.Errorf("Advance ratio = %v, want about 2", ratio)
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"testing"
)

func TestCache_Build(t *testing.T) {
	tf := goRegular(t)
	c := NewCache(2)

	a, err := c.Build("ab", tf, DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	again, err := c.Build("ab", tf, DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if a != again {
		t.Error("second Build should return the cached geometry")
	}

	p := DefaultParams()
	p.Depth = 0.5
	deep, err := c.Build("ab", tf, p)
	if err != nil {
		t.Fatal(err)
	}
	if deep == a {
		t.Error("different params must not share geometry")
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 2 || c.Len() != 2 {
		t.Errorf("stats = %+v, len = %d", s, c.Len())
	}
}

func TestCache_NormalizedKey(t *testing.T) {
	tf := goRegular(t)
	c := NewCache(0)
	a, _ := c.Build("e\u0301", tf, DefaultParams())
	b, _ := c.Build("\u00e9", tf, DefaultParams())
	if a == nil || a != b {
		t.Error("canonically equivalent text should hit the same entry")
	}
}

func TestCache_ErrorsNotCached(t *testing.T) {
	c := NewCache(4)
	if _, err := c.Build("x", nil, DefaultParams()); !errors.Is(err, ErrNoTypeface) {
		t.Errorf("Build(nil typeface) error = %v, want ErrNoTypeface", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewTypeface(t *testing.T) {
	tf, err := NewTypeface(goregular.TTF)
	if err != nil {
		t.Fatalf("NewTypeface() error = %v", err)
	}
	if tf.Name() == "" {
		t.Error("Name() is empty")
	}
	if tf.UnitsPerEm() <= 0 {
		t.Errorf("UnitsPerEm() = %d, want > 0", tf.UnitsPerEm())
	}
	if got := tf.LayoutPPEM(); got != float64(tf.UnitsPerEm()) {
		t.Errorf("LayoutPPEM() = %v, want %v", got, tf.UnitsPerEm())
	}
	if tf.Parsed().NumGlyphs() == 0 {
		t.Error("NumGlyphs() = 0")
	}
}

func TestNewTypeface_Errors(t *testing.T) {
	if _, err := NewTypeface(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewTypeface(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewTypeface([]byte("not a font")); err == nil {
		t.Error("NewTypeface(garbage) error = nil, want error")
	}
}

func TestNewTypeface_CopiesData(t *testing.T) {
	data := make([]byte, len(goregular.TTF))
	copy(data, goregular.TTF)

	tf, err := NewTypeface(data)
	if err != nil {
		t.Fatalf("NewTypeface() error = %v", err)
	}
	for i := range data {
		data[i] = 0
	}
	if glyphs := tf.Layout("A", tf.LayoutPPEM()); len(glyphs) != 1 {
		t.Errorf("Layout after clobbering input = %d glyphs, want 1", len(glyphs))
	}
}

func TestWithName(t *testing.T) {
	tf, err := NewTypeface(goregular.TTF, WithName("custom"))
	if err != nil {
		t.Fatalf("NewTypeface() error = %v", err)
	}
	if tf.Name() != "custom" {
		t.Errorf("Name() = %q, want %q", tf.Name(), "custom")
	}
}

func TestNewTypefaceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewTypefaceFromFile(path); err != nil {
		t.Errorf("NewTypefaceFromFile() error = %v", err)
	}
	if _, err := NewTypefaceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("NewTypefaceFromFile(missing) error = nil, want error")
	}
}

func TestTypeface_CopyPanics(t *testing.T) {
	tf, err := NewTypeface(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	copied := *tf //nolint:govet // intentional copy
	defer func() {
		if recover() == nil {
			t.Error("using a copied Typeface did not panic")
		}
	}()
	_ = copied.Name()
}

func newGoRegular(t *testing.T) *Typeface {
	t.Helper()
	tf, err := NewTypeface(goregular.TTF)
	if err != nil {
		t.Fatalf("NewTypeface() error = %v", err)
	}
	return tf
}

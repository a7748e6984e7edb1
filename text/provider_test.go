// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestLoad_Default(t *testing.T) {
	res := <-Load(context.Background(), DefaultProvider())
	if res.Err != nil {
		t.Fatalf("Load() error = %v", res.Err)
	}
	if res.Typeface == nil {
		t.Fatal("Load() typeface = nil")
	}
	if res.Typeface.Name() != "Go Regular" {
		t.Errorf("Name() = %q, want %q", res.Typeface.Name(), "Go Regular")
	}
}

func TestLoad_ResolvesOnce(t *testing.T) {
	ch := Load(context.Background(), DefaultProvider())
	<-ch
	if _, ok := <-ch; ok {
		t.Error("second receive succeeded, want closed channel")
	}
}

func TestLoad_NilProvider(t *testing.T) {
	res := <-Load(context.Background(), nil)
	if !errors.Is(res.Err, ErrNilProvider) {
		t.Errorf("Load(nil) error = %v, want ErrNilProvider", res.Err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	p := FileProvider{Path: filepath.Join(t.TempDir(), "missing.ttf")}
	res := <-Load(context.Background(), p)

	var le *LoadError
	if !errors.As(res.Err, &le) {
		t.Fatalf("Load() error = %v, want *LoadError", res.Err)
	}
	if le.Source != p.Path {
		t.Errorf("LoadError.Source = %q, want %q", le.Source, p.Path)
	}
	if res.Typeface != nil {
		t.Error("typeface returned alongside error")
	}
}

func TestLoad_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := <-Load(ctx, DefaultProvider())
	if !errors.Is(res.Err, context.Canceled) {
		t.Errorf("Load(canceled) error = %v, want context.Canceled", res.Err)
	}
}

func TestProviderFunc(t *testing.T) {
	boom := errors.New("boom")
	p := ProviderFunc(func(context.Context) (*Typeface, error) { return nil, boom })
	res := <-Load(context.Background(), p)
	if !errors.Is(res.Err, boom) {
		t.Errorf("Load() error = %v, want boom", res.Err)
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"context"

	"golang.org/x/image/font/gofont/goregular"
)

// Provider loads a typeface. Implementations may block (disk, network);
// use Load to run one asynchronously.
type Provider interface {
	Load(ctx context.Context) (*Typeface, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context) (*Typeface, error)

// Load implements Provider.
func (f ProviderFunc) Load(ctx context.Context) (*Typeface, error) {
	return f(ctx)
}

// FileProvider loads a typeface from a font file.
type FileProvider struct {
	Path    string
	Options []SourceOption
}

// Load implements Provider.
func (p FileProvider) Load(ctx context.Context) (*Typeface, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Source: p.Path, Err: err}
	}
	t, err := NewTypefaceFromFile(p.Path, p.Options...)
	if err != nil {
		return nil, &LoadError{Source: p.Path, Err: err}
	}
	return t, nil
}

// BytesProvider parses a typeface from in-memory font data.
type BytesProvider struct {
	Name string
	Data []byte
}

// Load implements Provider.
func (p BytesProvider) Load(ctx context.Context) (*Typeface, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Source: p.Name, Err: err}
	}
	t, err := NewTypeface(p.Data, WithName(p.Name))
	if err != nil {
		return nil, &LoadError{Source: p.Name, Err: err}
	}
	return t, nil
}

// DefaultProvider returns a provider for the embedded Go Regular font.
func DefaultProvider() Provider {
	return BytesProvider{Name: "Go Regular", Data: goregular.TTF}
}

// LoadResult is the outcome of an asynchronous Load.
type LoadResult struct {
	Typeface *Typeface
	Err      error
}

// Load runs p on a new goroutine. The returned channel receives exactly one
// result and is then closed. Cancelling ctx does not interrupt a provider
// that ignores it, but the result then carries the context error.
func Load(ctx context.Context, p Provider) <-chan LoadResult {
	ch := make(chan LoadResult, 1)
	if p == nil {
		ch <- LoadResult{Err: ErrNilProvider}
		close(ch)
		return ch
	}
	go func() {
		defer close(ch)
		t, err := p.Load(ctx)
		if err == nil && ctx.Err() != nil {
			t, err = nil, &LoadError{Source: "context", Err: ctx.Err()}
		}
		ch <- LoadResult{Typeface: t, Err: err}
	}()
	return ch
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import "sync"

// Viewport is a resizable drawing area that notifies subscribers of size
// changes. It is safe for concurrent use. Subscribers run on the goroutine
// calling Resize.
type Viewport struct {
	mu   sync.Mutex
	w, h int
	next int
	subs map[int]func(w, h int)
}

// NewViewport returns a viewport of w x h pixels.
func NewViewport(w, h int) *Viewport {
	return &Viewport{w: w, h: h, subs: make(map[int]func(w, h int))}
}

// Size returns the current size.
func (v *Viewport) Size() (w, h int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.w, v.h
}

// OnResize registers fn for size changes and returns a function that
// unregisters it. The cancel function may be called more than once.
func (v *Viewport) OnResize(fn func(w, h int)) (cancel func()) {
	v.mu.Lock()
	id := v.next
	v.next++
	v.subs[id] = fn
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.subs, id)
			v.mu.Unlock()
		})
	}
}

// Resize changes the size and notifies subscribers when it differs from the
// current one. Non-positive sizes are ignored.
func (v *Viewport) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	v.mu.Lock()
	if w == v.w && h == v.h {
		v.mu.Unlock()
		return
	}
	v.w, v.h = w, h
	subs := make([]func(w, h int), 0, len(v.subs))
	for _, fn := range v.subs {
		subs = append(subs, fn)
	}
	v.mu.Unlock()

	for _, fn := range subs {
		fn(w, h)
	}
}

// Subscribers returns the number of registered resize functions.
func (v *Viewport) Subscribers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import (
	"context"
	"slices"
	"sync"
	"time"
)

// DefaultFPS is the frame rate of a Loop created with a non-positive fps.
const DefaultFPS = 60

// Loop is a Scheduler that runs frames and posted functions on a single
// goroutine.
//
// RequestFrame, CancelFrame and Post may be called from any goroutine.
// Frame callbacks and posted functions run on the goroutine calling Run,
// RunUntil, Tick or Drain.
type Loop struct {
	interval time.Duration

	mu     sync.Mutex
	next   FrameHandle
	frames map[FrameHandle]FrameFunc
	posted []func()
	closed bool

	wake chan struct{}
	done chan struct{}
}

// NewLoop returns a loop that ticks fps times per second when run.
func NewLoop(fps int) *Loop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Loop{
		interval: time.Second / time.Duration(fps),
		frames:   make(map[FrameHandle]FrameFunc),
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Interval returns the time between frames.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// RequestFrame implements Scheduler.
func (l *Loop) RequestFrame(fn FrameFunc) FrameHandle {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next++
	l.frames[l.next] = fn
	return l.next
}

// CancelFrame implements Scheduler.
func (l *Loop) CancelFrame(h FrameHandle) {
	l.mu.Lock()
	delete(l.frames, h)
	l.mu.Unlock()
}

// Pending returns the number of frame requests waiting for a tick.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.frames)
}

// Post queues fn to run on the loop goroutine. It returns false if the
// loop is closed.
func (l *Loop) Post(fn func()) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.posted = append(l.posted, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Drain runs every queued posted function, including ones posted while
// draining, and returns how many ran.
func (l *Loop) Drain() int {
	var n int
	for {
		l.mu.Lock()
		batch := l.posted
		l.posted = nil
		l.mu.Unlock()
		if len(batch) == 0 {
			return n
		}
		for _, fn := range batch {
			fn()
		}
		n += len(batch)
	}
}

// Tick drains posted work, then runs the frame callbacks requested before
// the tick started, in request order. Callbacks requested during the tick
// wait for the next one; callbacks cancelled during the tick do not run.
// Tick returns the number of frame callbacks run.
func (l *Loop) Tick(now time.Time) int {
	l.Drain()

	l.mu.Lock()
	handles := make([]FrameHandle, 0, len(l.frames))
	for h := range l.frames {
		handles = append(handles, h)
	}
	l.mu.Unlock()
	slices.Sort(handles)

	var n int
	for _, h := range handles {
		l.mu.Lock()
		fn, ok := l.frames[h]
		delete(l.frames, h)
		l.mu.Unlock()
		if !ok {
			continue
		}
		fn(now)
		n++
	}
	return n
}

// Run ticks the loop in real time until ctx is done or the loop is closed.
// Posted work runs as soon as it arrives.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			l.Drain()
			return nil
		case <-l.wake:
			l.Drain()
		case now := <-ticker.C:
			l.Tick(now)
		}
	}
}

// RunUntil runs the loop as fast as possible until cond reports true.
// Frames are stamped with a virtual clock advancing by Interval per tick.
// When nothing is queued it blocks for posted work. It returns ctx.Err()
// if ctx ends first, or nil if the loop is closed.
func (l *Loop) RunUntil(ctx context.Context, cond func() bool) error {
	now := time.Now()
	for {
		l.Drain()
		if cond() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if l.Pending() > 0 {
			now = now.Add(l.interval)
			l.Tick(now)
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		case <-l.wake:
		}
	}
}

// Close stops Run and RunUntil and rejects further Post calls. Pending
// frames are dropped.
func (l *Loop) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	clear(l.frames)
	close(l.done)
}

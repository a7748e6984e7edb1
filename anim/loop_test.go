// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLoop_TickOrder(t *testing.T) {
	l := NewLoop(60)
	var got []int
	l.RequestFrame(func(time.Time) { got = append(got, 1) })
	h := l.RequestFrame(func(time.Time) { got = append(got, 2) })
	l.RequestFrame(func(time.Time) {
		got = append(got, 3)
		// Requested during the tick: runs on the next one.
		l.RequestFrame(func(time.Time) { got = append(got, 4) })
	})
	l.CancelFrame(h)

	if n := l.Tick(time.Now()); n != 2 {
		t.Errorf("Tick() = %d, want 2", n)
	}
	if n := l.Tick(time.Now()); n != 1 {
		t.Errorf("second Tick() = %d, want 1", n)
	}
	want := []int{1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLoop_CancelDuringTick(t *testing.T) {
	l := NewLoop(60)
	var ran bool
	var second FrameHandle
	l.RequestFrame(func(time.Time) { l.CancelFrame(second) })
	second = l.RequestFrame(func(time.Time) { ran = true })
	l.Tick(time.Now())
	if ran {
		t.Error("frame cancelled during tick still ran")
	}
}

func TestLoop_PostFromOtherGoroutine(t *testing.T) {
	l := NewLoop(60)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var done bool
	go func() {
		l.Post(func() { done = true })
	}()
	if err := l.RunUntil(ctx, func() bool { return done }); err != nil {
		t.Fatalf("RunUntil() error = %v", err)
	}
}

func TestLoop_RunUntilTicksVirtualClock(t *testing.T) {
	l := NewLoop(10)
	var stamps []time.Time
	var frame FrameFunc
	frame = func(now time.Time) {
		stamps = append(stamps, now)
		l.RequestFrame(frame)
	}
	l.RequestFrame(frame)

	err := l.RunUntil(context.Background(), func() bool { return len(stamps) == 5 })
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(stamps); i++ {
		if d := stamps[i].Sub(stamps[i-1]); d != 100*time.Millisecond {
			t.Errorf("frame %d delta = %v, want 100ms", i, d)
		}
	}
}

func TestLoop_Close(t *testing.T) {
	l := NewLoop(60)
	l.RequestFrame(func(time.Time) { t.Error("frame ran after Close") })
	l.Close()
	l.Close()
	if l.Post(func() {}) {
		t.Error("Post() after Close = true")
	}
	if err := l.Run(context.Background()); err != nil {
		t.Errorf("Run() after Close = %v, want nil", err)
	}
	if l.Tick(time.Now()) != 0 {
		t.Error("Tick() after Close ran frames")
	}
}

func TestLoop_RunContext(t *testing.T) {
	l := NewLoop(1000)
	ctx, cancel := context.WithCancel(context.Background())
	var frames int
	var frame FrameFunc
	frame = func(time.Time) {
		frames++
		if frames == 3 {
			cancel()
			return
		}
		l.RequestFrame(frame)
	}
	l.RequestFrame(frame)
	if err := l.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if frames != 3 {
		t.Errorf("frames = %d, want 3", frames)
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package anim

import "time"

// FrameFunc is called once for a requested frame.
type FrameFunc func(now time.Time)

// FrameHandle identifies a requested frame. The zero handle is never
// returned by RequestFrame.
type FrameHandle uint64

// Scheduler delivers frame callbacks, one request at a time, in the manner
// of requestAnimationFrame: a callback that wants another frame requests
// it again.
type Scheduler interface {
	// RequestFrame schedules fn for the next frame.
	RequestFrame(fn FrameFunc) FrameHandle

	// CancelFrame cancels a pending request. Cancelling a handle that has
	// already run or was never issued is a no-op.
	CancelFrame(h FrameHandle)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package anim moves spheres towards their targets once per frame.
//
// A Driver owns the per-frame step: every sphere is eased towards the
// target with the same index, then the scene is rendered. Frames come from
// a Scheduler; Loop is a single goroutine scheduler that also runs work
// posted from other goroutines, so all state touched by frames and posted
// work stays on one goroutine.
package anim

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pool manages the spheres of a sphere text and the points they
// travel to.
//
// A Pool is index aligned: after Reconcile, sphere i moves towards target
// i. Reassignment is purely positional. When the target count grows, new
// spheres are appended with random visual attributes; when it shrinks, the
// tail of the pool is dropped. Attributes are never changed after a sphere
// is created.
package pool

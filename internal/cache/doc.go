// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides a small generic least-recently-used cache.
//
// It backs the geometry cache, which keeps recently built text meshes so
// that switching back to a previous string skips extrusion.
package cache

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene holds the 3D scene a sphere text is drawn into: the set of
// objects, lights, a perspective camera, and the viewport whose size the
// camera follows.
//
// Renderers read the scene; they do not own it. Objects are added and
// removed by identity.
package scene

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface draws uniformly distributed random points from 3D
// surfaces.
//
// A Surface reports its area and samples one point per call. Mesh covers
// triangle meshes, Region covers planar polygon sets filled with the
// nonzero winding rule, and Composite combines surfaces weighted by area.
// Sampling never loops unboundedly: degenerate inputs yield the origin (or,
// for Region, a point on its boundary).
package surface

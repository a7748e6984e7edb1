// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package geometry turns a line of text into extruded 3D geometry whose
// surface can be sampled.
//
// Build lays the text out with a text.Typeface, flattens every glyph outline
// into closed contours, and extrudes them along +Z:
//
//   - side walls become a triangle mesh (surface.Mesh)
//   - front and back caps stay planar regions (surface.Region) filled by
//     the nonzero winding rule, one region per glyph and side
//   - with bevel enabled, the walls are pushed outwards by BevelSize, the
//     caps move out by BevelThickness and chamfer bands join the two
//
// The result is translated so that its bounding box starts at x = 0. Its
// width is therefore Box.Max.X, and a caller centres the text by offsetting
// it by -0.5 * Width().
package geometry

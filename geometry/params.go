// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"
)

// Params controls text extrusion. All lengths are in scene units.
type Params struct {
	// Size is the em size of the text.
	Size float64

	// Depth is the extrusion length along +Z.
	Depth float64

	// CurveSegments is the number of straight pieces each outline curve is
	// flattened into.
	CurveSegments int

	// BevelEnabled turns on the chamfer between walls and caps.
	BevelEnabled bool

	// BevelThickness is how far the caps move out along Z.
	BevelThickness float64

	// BevelSize is how far the walls move out from the glyph outline.
	BevelSize float64
}

// DefaultParams returns the extrusion used by the sphere text widget.
func DefaultParams() Params {
	return Params{
		Size:           1,
		Depth:          0.2,
		CurveSegments:  8,
		BevelEnabled:   true,
		BevelThickness: 0.02,
		BevelSize:      0.01,
	}
}

// Validate reports whether p can be used by Build.
// The returned error wraps ErrInvalidParams.
func (p Params) Validate() error {
	switch {
	case !positive(p.Size):
		return fmt.Errorf("%w: size %v", ErrInvalidParams, p.Size)
	case !positive(p.Depth):
		return fmt.Errorf("%w: depth %v", ErrInvalidParams, p.Depth)
	case p.CurveSegments < 1:
		return fmt.Errorf("%w: curve segments %d", ErrInvalidParams, p.CurveSegments)
	}
	if p.BevelEnabled {
		if !nonNegative(p.BevelThickness) {
			return fmt.Errorf("%w: bevel thickness %v", ErrInvalidParams, p.BevelThickness)
		}
		if !nonNegative(p.BevelSize) {
			return fmt.Errorf("%w: bevel size %v", ErrInvalidParams, p.BevelSize)
		}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geometry

import "errors"

var (
	// ErrNoTypeface is returned by Build when no typeface is given.
	ErrNoTypeface = errors.New("geometry: no typeface")

	// ErrInvalidParams is returned when Params fail validation.
	ErrInvalidParams = errors.New("geometry: invalid params")
)

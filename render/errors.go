// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrNilTarget is returned when rendering to a nil target.
	ErrNilTarget = errors.New("render: nil target")

	// ErrNoPixels is returned when a CPU renderer is given a target
	// without CPU pixel access.
	ErrNoPixels = errors.New("render: target does not support CPU rendering")

	// ErrUnsupportedFormat is returned for targets whose pixel format the
	// renderer cannot write.
	ErrUnsupportedFormat = errors.New("render: unsupported target format")
)

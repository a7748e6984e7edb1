// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// FrameSink receives every frame rendered by a Host. The image is reused
// for the next frame; sinks that keep it must copy it.
type FrameSink interface {
	WriteFrame(frame uint64, img *image.RGBA) error
}

// FrameSinkFunc adapts a function to FrameSink.
type FrameSinkFunc func(frame uint64, img *image.RGBA) error

// WriteFrame calls f.
func (f FrameSinkFunc) WriteFrame(frame uint64, img *image.RGBA) error {
	return f(frame, img)
}

// PNGSink writes frames to a directory as frame-00000.png,
// frame-00001.png, and so on.
type PNGSink struct {
	dir     string
	enc     png.Encoder
	created bool
}

// NewPNGSink returns a sink writing into dir. The directory is created on
// the first frame.
func NewPNGSink(dir string) *PNGSink {
	return &PNGSink{
		dir: dir,
		enc: png.Encoder{CompressionLevel: png.BestSpeed},
	}
}

// Path returns the file a frame is written to.
func (s *PNGSink) Path(frame uint64) string {
	return filepath.Join(s.dir, fmt.Sprintf("frame-%05d.png", frame))
}

// WriteFrame encodes img as PNG.
func (s *PNGSink) WriteFrame(frame uint64, img *image.RGBA) (err error) {
	if !s.created {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return fmt.Errorf("render: create frame dir: %w", err)
		}
		s.created = true
	}

	f, err := os.Create(s.Path(frame))
	if err != nil {
		return fmt.Errorf("render: create frame: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: close frame: %w", cerr)
		}
	}()

	if err := s.enc.Encode(f, img); err != nil {
		return fmt.Errorf("render: encode frame %d: %w", frame, err)
	}
	return nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"
)

// ErrNoTexture is returned by Present before the first frame was uploaded.
var ErrNoTexture = errors.New("render: no texture uploaded")

// TextureSink uploads every frame to a GPU texture of the host
// application. The texture is created on the first frame and on every
// size change; later frames update it in place when the texture supports
// gpucontext.TextureUpdater.
type TextureSink struct {
	creator gpucontext.TextureCreator
	tex     gpucontext.Texture
	w, h    int
	buf     []byte
	uploads uint64
}

// Ensure TextureSink implements FrameSink.
var _ FrameSink = (*TextureSink)(nil)

// NewTextureSink returns a sink creating textures with creator.
func NewTextureSink(creator gpucontext.TextureCreator) *TextureSink {
	return &TextureSink{creator: creator}
}

// WriteFrame implements FrameSink.
func (s *TextureSink) WriteFrame(frame uint64, img *image.RGBA) error {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return nil
	}
	data := s.pack(img, w, h)

	if s.tex == nil || w != s.w || h != s.h {
		tex, err := s.creator.NewTextureFromRGBA(w, h, data)
		if err != nil {
			return fmt.Errorf("render: create texture for frame %d: %w", frame, err)
		}
		s.tex, s.w, s.h = tex, w, h
		s.uploads++
		return nil
	}

	updater, ok := s.tex.(gpucontext.TextureUpdater)
	if !ok {
		tex, err := s.creator.NewTextureFromRGBA(w, h, data)
		if err != nil {
			return fmt.Errorf("render: recreate texture for frame %d: %w", frame, err)
		}
		s.tex = tex
		s.uploads++
		return nil
	}
	if err := updater.UpdateData(data); err != nil {
		return fmt.Errorf("render: update texture for frame %d: %w", frame, err)
	}
	s.uploads++
	return nil
}

// pack returns the pixels of img as densely packed RGBA rows.
func (s *TextureSink) pack(img *image.RGBA, w, h int) []byte {
	row := w * 4
	if img.Stride == row && len(img.Pix) >= row*h {
		return img.Pix[:row*h]
	}
	if cap(s.buf) < row*h {
		s.buf = make([]byte, row*h)
	}
	s.buf = s.buf[:row*h]
	b := img.Bounds()
	for y := range h {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(s.buf[y*row:(y+1)*row], img.Pix[off:off+row])
	}
	return s.buf
}

// Texture returns the current texture, or nil before the first frame.
func (s *TextureSink) Texture() gpucontext.Texture {
	return s.tex
}

// Uploads returns the number of frames uploaded.
func (s *TextureSink) Uploads() uint64 {
	return s.uploads
}

// Present draws the current texture at the top-left corner of dc.
func (s *TextureSink) Present(dc gpucontext.TextureDrawer) error {
	if s.tex == nil {
		return ErrNoTexture
	}
	return dc.DrawTexture(s.tex, 0, 0)
}

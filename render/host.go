// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/spheretext"
	"github.com/gogpu/spheretext/scene"
)

// HostOption configures a Host during creation.
//
// Example:
//
//	host := render.NewHost(800, 600,
//	    render.WithDevice(gc.DeviceHandle()),
//	    render.WithSink(render.NewPNGSink("frames")),
//	)
type HostOption func(*hostOptions)

// hostOptions holds optional configuration for Host creation.
type hostOptions struct {
	device   DeviceHandle
	renderer Renderer
	sinks    []FrameSink
}

// WithDevice passes the GPU device of the host application. When the
// device provider can create textures (gpucontext.TextureDrawer or
// gpucontext.TextureCreator) every frame is uploaded to a texture that
// Present draws. Otherwise frames stay on the CPU.
func WithDevice(h DeviceHandle) HostOption {
	return func(o *hostOptions) {
		o.device = h
	}
}

// WithRenderer sets a custom renderer. The default is a SoftwareRenderer.
func WithRenderer(r Renderer) HostOption {
	return func(o *hostOptions) {
		o.renderer = r
	}
}

// WithSink adds a sink that receives every rendered frame.
func WithSink(s FrameSink) HostOption {
	return func(o *hostOptions) {
		o.sinks = append(o.sinks, s)
	}
}

// Host owns a scene, a renderer and a CPU target, and renders the scene on
// demand. It implements spheretext.Host.
type Host struct {
	scene    *scene.Scene
	renderer Renderer
	target   *PixmapTarget
	device   DeviceHandle
	sinks    []FrameSink
	texture  *TextureSink
	frames   uint64
}

// Ensure Host implements spheretext.Host.
var _ spheretext.Host = (*Host)(nil)

// NewHost returns a host rendering width x height frames.
func NewHost(width, height int, opts ...HostOption) *Host {
	o := hostOptions{device: NullDeviceHandle{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.renderer == nil {
		o.renderer = NewSoftwareRenderer()
	}
	if o.device == nil {
		o.device = NullDeviceHandle{}
	}

	h := &Host{
		scene:    scene.New(),
		renderer: o.renderer,
		target:   NewPixmapTarget(width, height),
		device:   o.device,
		sinks:    o.sinks,
	}
	h.scene.Camera().SetAspect(width, height)

	if creator, ok := textureCreator(o.device); ok {
		h.texture = NewTextureSink(creator)
		h.sinks = append(h.sinks, h.texture)
		spheretext.Logger().Info("render: uploading frames to host device",
			"surfaceFormat", o.device.SurfaceFormat())
	} else if hasDevice(o.device) {
		spheretext.Logger().Warn("render: host device cannot create textures, frames stay on the CPU")
	}
	return h
}

// Scene returns the scene drawn by the host.
func (h *Host) Scene() *scene.Scene {
	return h.scene
}

// Add adds objects to the scene.
func (h *Host) Add(objs ...scene.Object) {
	h.scene.Add(objs...)
}

// Remove removes objects from the scene.
func (h *Host) Remove(objs ...scene.Object) {
	h.scene.Remove(objs...)
}

// Camera returns the scene camera.
func (h *Host) Camera() *scene.Camera {
	return h.scene.Camera()
}

// SetSize resizes the target and matches the camera aspect to it.
func (h *Host) SetSize(w, height int) {
	if w <= 0 || height <= 0 {
		return
	}
	h.target.Resize(w, height)
	h.scene.Camera().SetAspect(w, height)
}

// Size returns the target size.
func (h *Host) Size() (w, height int) {
	return h.target.Width(), h.target.Height()
}

// AddSink adds a sink for subsequent frames.
func (h *Host) AddSink(s FrameSink) {
	h.sinks = append(h.sinks, s)
}

// Render draws the scene and passes the frame to every sink.
func (h *Host) Render() error {
	if err := h.renderer.Render(h.target, h.scene); err != nil {
		return fmt.Errorf("render: frame %d: %w", h.frames, err)
	}
	if err := h.renderer.Flush(); err != nil {
		return fmt.Errorf("render: flush frame %d: %w", h.frames, err)
	}
	frame := h.frames
	h.frames++
	for _, s := range h.sinks {
		if err := s.WriteFrame(frame, h.target.Image()); err != nil {
			return err
		}
	}
	return nil
}

// Present draws the last uploaded frame with dc. It returns ErrNoTexture
// when the host has no texture-capable device or has not rendered yet.
func (h *Host) Present(dc gpucontext.TextureDrawer) error {
	if h.texture == nil {
		return ErrNoTexture
	}
	return h.texture.Present(dc)
}

// Texture returns the texture receiving frames, or nil without a
// texture-capable device.
func (h *Host) Texture() gpucontext.Texture {
	if h.texture == nil {
		return nil
	}
	return h.texture.Texture()
}

// Frames returns the number of frames rendered.
func (h *Host) Frames() uint64 {
	return h.frames
}

// Image returns the last rendered frame. It is overwritten by the next
// Render.
func (h *Host) Image() *image.RGBA {
	return h.target.Image()
}

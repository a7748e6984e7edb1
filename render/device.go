// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// A host that already owns a GPU device (a window toolkit, a game engine)
// passes it in instead of having the renderer create one. DeviceHandle is
// an alias for gpucontext.DeviceProvider so any gpucontext provider can be
// used directly.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for CPU-only rendering where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// textureCreator returns the texture creator offered by h, if any. A
// device provider that is also a gpucontext.TextureDrawer or
// gpucontext.TextureCreator receives every rendered frame as a texture.
func textureCreator(h DeviceHandle) (gpucontext.TextureCreator, bool) {
	if !hasDevice(h) {
		return nil, false
	}
	switch d := h.(type) {
	case gpucontext.TextureDrawer:
		return d.TextureCreator(), d.TextureCreator() != nil
	case gpucontext.TextureCreator:
		return d, true
	}
	return nil, false
}

// hasDevice reports whether h carries a real GPU device.
func hasDevice(h DeviceHandle) bool {
	return h != nil && h.Device() != nil
}

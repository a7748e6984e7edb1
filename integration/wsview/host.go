// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wsview

import (
	"github.com/gogpu/spheretext"
	"github.com/gogpu/spheretext/scene"
)

// Host keeps a scene and broadcasts it through a Hub on every Render.
// It implements spheretext.Host and is not safe for concurrent use.
type Host struct {
	hub   *Hub
	scene *scene.Scene
	w, h  int
	frame uint64
}

// Ensure Host implements spheretext.Host.
var _ spheretext.Host = (*Host)(nil)

// NewHost returns a host broadcasting to hub with an initial viewport of
// w x h pixels.
func NewHost(hub *Hub, w, h int) *Host {
	host := &Host{hub: hub, scene: scene.New(), w: w, h: h}
	host.scene.Camera().SetAspect(w, h)
	return host
}

// Scene returns the broadcast scene.
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

// SetSize records the client viewport size and matches the camera aspect.
func (h *Host) SetSize(w, height int) {
	if w <= 0 || height <= 0 {
		return
	}
	h.w, h.h = w, height
	h.scene.Camera().SetAspect(w, height)
}

// Render broadcasts the current scene as a FrameMessage.
func (h *Host) Render() error {
	msg := h.Snapshot()
	h.frame++
	return h.hub.Broadcast(msg)
}

// Snapshot returns the frame message for the current scene.
func (h *Host) Snapshot() FrameMessage {
	cam := h.scene.Camera()
	spheres := h.scene.Spheres()
	msg := FrameMessage{
		Type:   MessageTypeFrame,
		Frame:  h.frame,
		Width:  h.w,
		Height: h.h,
		Camera: CameraMessage{
			Position: cam.Position,
			Target:   cam.Target,
			FOV:      cam.FOV,
			Aspect:   cam.Aspect,
			Near:     cam.Near,
			Far:      cam.Far,
		},
		Spheres: make([]SphereMessage, len(spheres)),
	}
	for i, s := range spheres {
		msg.Spheres[i] = SphereMessage{
			P: s.Center(),
			R: s.Radius(),
			C: s.Color().Clamped().Hex(),
			M: s.Roughness(),
		}
	}
	return msg
}

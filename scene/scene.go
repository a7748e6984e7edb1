// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Scene is an ordered set of objects plus lighting and a camera.
// It is not safe for concurrent use.
type Scene struct {
	objects []Object
	index   map[Object]struct{}

	// Background is the clear colour.
	Background colorful.Color

	Ambient     AmbientLight
	Directional DirectionalLight

	camera *Camera

	// version is incremented on each modification.
	version uint64
}

// New returns an empty scene with default lighting and a default camera.
func New() *Scene {
	white := colorful.Color{R: 1, G: 1, B: 1}
	return &Scene{
		index:      make(map[Object]struct{}),
		Background: colorful.Color{},
		Ambient:    AmbientLight{Color: white, Intensity: 0.4},
		Directional: DirectionalLight{
			Color:     white,
			Intensity: 0.8,
			Direction: mgl64.Vec3{-1, -1, -2}.Normalize(),
		},
		camera: NewCamera(),
	}
}

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Add appends objects that are not already in the scene.
func (s *Scene) Add(objs ...Object) {
	for _, o := range objs {
		if o == nil {
			continue
		}
		if _, ok := s.index[o]; ok {
			continue
		}
		s.index[o] = struct{}{}
		s.objects = append(s.objects, o)
	}
	s.version++
}

// Remove drops objects from the scene. Unknown objects are ignored.
func (s *Scene) Remove(objs ...Object) {
	n := 0
	for _, o := range objs {
		if _, ok := s.index[o]; ok {
			delete(s.index, o)
			n++
		}
	}
	if n == 0 {
		return
	}
	kept := s.objects[:0]
	for _, o := range s.objects {
		if _, ok := s.index[o]; ok {
			kept = append(kept, o)
		}
	}
	clear(s.objects[len(kept):])
	s.objects = kept
	s.version++
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Objects returns the objects in insertion order. The slice must not be
// modified.
func (s *Scene) Objects() []Object {
	return s.objects
}

// Spheres returns the objects that are spheres, in insertion order.
func (s *Scene) Spheres() []Sphere {
	out := make([]Sphere, 0, len(s.objects))
	for _, o := range s.objects {
		if sp, ok := o.(Sphere); ok {
			out = append(out, sp)
		}
	}
	return out
}

// Meshes returns the objects that are meshes, in insertion order.
func (s *Scene) Meshes() []Mesh {
	var out []Mesh
	for _, o := range s.objects {
		if m, ok := o.(Mesh); ok {
			out = append(out, m)
		}
	}
	return out
}

// Version returns a counter bumped on every Add and Remove.
func (s *Scene) Version() uint64 {
	return s.version
}

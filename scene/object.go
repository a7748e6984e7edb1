// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/spheretext/surface"
)

// Object is anything that can be placed in a Scene.
// Implementations must be comparable, typically pointers.
type Object interface {
	Name() string
}

// Sphere is a sphere with a physically based material.
type Sphere interface {
	Object
	Center() mgl64.Vec3
	Radius() float64
	Color() colorful.Color
	Roughness() float64
}

// Mesh is a surface placed in the scene at Offset. Renderers skip meshes
// that are not Visible.
type Mesh interface {
	Object
	Surface() surface.Surface
	Offset() mgl64.Vec3
	Visible() bool
}

// AmbientLight lights every surface equally.
type AmbientLight struct {
	Color     colorful.Color
	Intensity float64
}

// DirectionalLight is a light infinitely far away shining along Direction.
type DirectionalLight struct {
	Color     colorful.Color
	Intensity float64

	// Direction points from the light towards the scene.
	Direction mgl64.Vec3
}

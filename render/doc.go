// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render draws a sphere scene into a render target.
//
// # Core Interfaces
//
//   - DeviceHandle: GPU device access from a host application
//   - RenderTarget: where rendering output goes
//   - Renderer: draws a *scene.Scene into a RenderTarget
//   - FrameSink: receives every rendered frame
//
// # Implementations
//
//   - SoftwareRenderer: CPU renderer. Spheres are projected through the
//     scene camera, sorted back to front, and filled as anti-aliased discs
//     shaded with ambient, diffuse and specular terms.
//   - PixmapTarget: CPU-backed *image.RGBA target
//   - PNGSink: writes frames as numbered PNG files
//   - Host: ties a scene, a renderer and a target together and is the host
//     a sphere text component draws into
//
// # Usage
//
//	host := render.NewHost(800, 600, render.WithSink(render.NewPNGSink("out")))
//	st := spheretext.New(host)
//	...
//	img := host.Image()
//
// # Thread Safety
//
// Renderers and hosts are NOT thread-safe. Use them from the goroutine that
// drives the animation.
package render

package spheretext

import (
	"github.com/gogpu/spheretext/anim"
	"github.com/gogpu/spheretext/scene"
)

// Host is the 3D engine a component draws into. It owns the scene, the
// camera and the renderer; the component only adds and removes objects,
// adjusts the camera, and asks for frames.
//
// render.Host and wsview.Host implement Host.
type Host interface {
	// Add places objects in the scene.
	Add(objs ...scene.Object)

	// Remove takes objects out of the scene.
	Remove(objs ...scene.Object)

	// Camera returns the scene camera.
	Camera() *scene.Camera

	// SetSize resizes the render viewport.
	SetSize(w, h int)

	// Render draws one frame.
	Render() error
}

// Window reports the size of the display area and notifies of changes.
// scene.Viewport implements Window.
type Window interface {
	Size() (w, h int)

	// OnResize registers fn and returns a function that unregisters it.
	OnResize(fn func(w, h int)) (cancel func())
}

// Dispatcher delivers frames and runs posted functions on one goroutine.
// anim.Loop implements Dispatcher.
type Dispatcher interface {
	anim.Scheduler

	// Post queues fn to run on the dispatcher goroutine. It returns false
	// if fn will never run.
	Post(fn func()) bool
}

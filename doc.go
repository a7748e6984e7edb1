// Package spheretext renders a line of text as a cloud of small spheres
// spread over the surface of the extruded text, and eases the spheres to
// their new places whenever the text changes.
//
// # Overview
//
// A SphereText component draws into a Host (a 3D scene with a camera and a
// renderer) and is driven by a Dispatcher that delivers frames and runs
// posted work on a single goroutine. On every text change the component:
//
//  1. builds extruded geometry for the text (package geometry)
//  2. samples ceil(width * density) points over its surface (package surface)
//  3. centres and sorts the points and resizes the sphere pool to match
//     (package pool)
//
// Every frame, each sphere moves a fraction of the way to its point
// (package anim) and the host renders.
//
// # Lifecycle
//
//	Uninitialized --Mount--> AwaitingTypeface --typeface--> Ready
//	                                     \--load error--> Failed
//	any state --Teardown--> TornDown
//
// Text set before the typeface arrives is kept, and the latest value is
// built once the component is Ready. A failed typeface load leaves the
// scene empty but still rendering.
//
// # Usage
//
//	loop := anim.NewLoop(60)
//	host := render.NewHost(800, 600)
//	st := spheretext.New(host, spheretext.WithText("hello"))
//	if err := st.Mount(ctx, loop); err != nil {
//	    return err
//	}
//	defer st.Teardown()
//	loop.Run(ctx)
//
// All methods of SphereText except State must be called on the
// dispatcher's goroutine, for example through Dispatcher.Post.
//
// # Logging
//
// spheretext is silent by default. Call SetLogger to route its log records,
// and those of its render and integration packages, to a slog.Logger.
package spheretext

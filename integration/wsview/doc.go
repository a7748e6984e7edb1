// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package wsview streams a sphere text scene to browser clients over
// websockets.
//
// The data flow is:
//
//	spheretext component -> Host (scene) -> Hub -> websocket clients
//
// Host implements spheretext.Host. Every Render turns the scene into a JSON
// frame message and the Hub broadcasts it to all connected clients. Clients
// draw the spheres themselves and send control messages back:
//
//	{"text": "hello"}              change the text
//	{"width": 800, "height": 600}  report the client viewport size
//
// # Usage
//
//	hub := wsview.NewHub(
//	    wsview.WithTextHandler(func(s string) { loop.Post(func() { st.SetText(s) }) }),
//	    wsview.WithResizeHandler(viewport.Resize),
//	)
//	http.Handle("/ws", hub)
//	st := spheretext.New(wsview.NewHost(hub, 800, 600), spheretext.WithWindow(viewport))
//
// Handlers run on the connection's read goroutine. Hand work to the
// animation goroutine instead of touching the component directly.
package wsview

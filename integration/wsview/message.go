// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wsview

// MessageTypeFrame is the type of FrameMessage.
const MessageTypeFrame = "frame"

// FrameMessage is sent to clients after every rendered frame.
type FrameMessage struct {
	Type    string          `json:"type"`
	Frame   uint64          `json:"frame"`
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Camera  CameraMessage   `json:"camera"`
	Spheres []SphereMessage `json:"spheres"`
}

// CameraMessage describes the perspective camera of a frame.
type CameraMessage struct {
	Position [3]float64 `json:"position"`
	Target   [3]float64 `json:"target"`
	FOV      float64    `json:"fov"`
	Aspect   float64    `json:"aspect"`
	Near     float64    `json:"near"`
	Far      float64    `json:"far"`
}

// SphereMessage is one sphere of a frame.
type SphereMessage struct {
	// P is the centre.
	P [3]float64 `json:"p"`

	// R is the radius.
	R float64 `json:"r"`

	// C is the colour as #rrggbb.
	C string `json:"c"`

	// M is the material roughness.
	M float64 `json:"m"`
}

// ControlMessage is sent by clients. Absent fields are left unchanged.
type ControlMessage struct {
	Text   *string `json:"text,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
}

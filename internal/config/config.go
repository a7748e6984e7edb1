// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads sphere text settings from HJSON files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/hjson/hjson-go"

	"github.com/gogpu/spheretext/anim"
	"github.com/gogpu/spheretext/geometry"
	"github.com/gogpu/spheretext/pool"
)

// Easing names.
const (
	EasingLerp   = "lerp"
	EasingSpring = "spring"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config holds every setting of the spheretext command.
type Config struct {
	Text    string  `json:"text"`
	Font    string  `json:"font"`
	Density float64 `json:"density"`

	Easing  string  `json:"easing"`
	Damping float64 `json:"damping"`
	Spring  Spring  `json:"spring"`

	Geometry Geometry `json:"geometry"`

	Width  int `json:"width"`
	Height int `json:"height"`
	FPS    int `json:"fps"`

	Frames int    `json:"frames"`
	Out    string `json:"out"`
	Serve  string `json:"serve"`

	Seed uint64 `json:"seed"`
}

// Spring configures the spring easer.
type Spring struct {
	Frequency float64 `json:"frequency"`
	Ratio     float64 `json:"ratio"`
}

// Geometry mirrors geometry.Params.
type Geometry struct {
	Size           float64 `json:"size"`
	Depth          float64 `json:"depth"`
	CurveSegments  int     `json:"curve-segments"`
	BevelEnabled   bool    `json:"bevel-enabled"`
	BevelThickness float64 `json:"bevel-thickness"`
	BevelSize      float64 `json:"bevel-size"`
}

// Default returns the built-in settings.
func Default() Config {
	p := geometry.DefaultParams()
	return Config{
		Text:    "love",
		Density: pool.DefaultDensity,
		Easing:  EasingLerp,
		Damping: anim.DefaultDamping,
		Spring:  Spring{Frequency: 6, Ratio: 1},
		Geometry: Geometry{
			Size:           p.Size,
			Depth:          p.Depth,
			CurveSegments:  p.CurveSegments,
			BevelEnabled:   p.BevelEnabled,
			BevelThickness: p.BevelThickness,
			BevelSize:      p.BevelSize,
		},
		Width:  800,
		Height: 600,
		FPS:    anim.DefaultFPS,
		Frames: 60,
		Out:    "frames",
	}
}

// Load reads an HJSON file. Settings missing from the file keep their
// Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes HJSON data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	conf := Default()

	var m map[string]any
	if err := hjson.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	js, err := json.Marshal(m)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := json.Unmarshal(js, &conf); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case !(c.Density >= 0) || math.IsInf(c.Density, 0):
		return fmt.Errorf("%w: density %v", ErrInvalid, c.Density)
	case c.Easing != EasingLerp && c.Easing != EasingSpring:
		return fmt.Errorf("%w: easing %q", ErrInvalid, c.Easing)
	case c.Easing == EasingLerp && !anim.ValidDamping(c.Damping):
		return fmt.Errorf("%w: damping %v not in (0, 1)", ErrInvalid, c.Damping)
	case c.Easing == EasingSpring && (c.Spring.Frequency <= 0 || c.Spring.Ratio <= 0):
		return fmt.Errorf("%w: spring %+v", ErrInvalid, c.Spring)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	case c.Frames < 0:
		return fmt.Errorf("%w: frames %d", ErrInvalid, c.Frames)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Params returns the geometry parameters.
func (c Config) Params() geometry.Params {
	g := c.Geometry
	return geometry.Params{
		Size:           g.Size,
		Depth:          g.Depth,
		CurveSegments:  g.CurveSegments,
		BevelEnabled:   g.BevelEnabled,
		BevelThickness: g.BevelThickness,
		BevelSize:      g.BevelSize,
	}
}

// Easer returns the configured easer.
func (c Config) Easer() anim.Easer {
	if c.Easing == EasingSpring {
		return anim.NewSpring(c.FPS, c.Spring.Frequency, c.Spring.Ratio)
	}
	return anim.Lerp{Damping: c.Damping}
}

package spheretext

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/spheretext/anim"
	"github.com/gogpu/spheretext/geometry"
	"github.com/gogpu/spheretext/pool"
	"github.com/gogpu/spheretext/text"
)

// DefaultText is the text shown when none is set.
const DefaultText = "love"

// Option configures a SphereText during creation.
//
// Example:
//
//	st := spheretext.New(host,
//	    spheretext.WithText("hello"),
//	    spheretext.WithProvider(text.FileProvider{Path: "font.ttf"}),
//	    spheretext.WithWindow(viewport),
//	)
type Option func(*options)

// options holds optional configuration for SphereText creation.
type options struct {
	text     string
	provider text.Provider
	window   Window
	density  float64
	easer    anim.Easer
	params   geometry.Params
	rng      *rand.Rand

	cacheSize   int
	meshVisible bool
}

// defaultOptions returns the default component options.
func defaultOptions() options {
	return options{
		text:     DefaultText,
		provider: text.DefaultProvider(),
		density:  pool.DefaultDensity,
		easer:    anim.Lerp{Damping: anim.DefaultDamping},
		params:   geometry.DefaultParams(),

		cacheSize: geometry.DefaultCacheSize,
	}
}

// WithText sets the initial text.
func WithText(s string) Option {
	return func(o *options) {
		o.text = s
	}
}

// WithProvider sets where the typeface is loaded from. The default is the
// embedded Go Regular font.
func WithProvider(p text.Provider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithWindow makes the component follow the size of w: the host viewport
// and the camera aspect are updated on mount and on every resize.
func WithWindow(w Window) Option {
	return func(o *options) {
		o.window = w
	}
}

// WithDensity sets the number of spheres per unit of text width.
// Negative and non-finite values are ignored.
func WithDensity(d float64) Option {
	return func(o *options) {
		if d >= 0 && !math.IsInf(d, 0) {
			o.density = d
		}
	}
}

// WithDamping eases spheres linearly, covering fraction d of the remaining
// distance every frame. Values outside (0, 1) are ignored.
func WithDamping(d float64) Option {
	return func(o *options) {
		if anim.ValidDamping(d) {
			o.easer = anim.Lerp{Damping: d}
		}
	}
}

// WithEaser sets a custom easer, for example anim.NewSpring.
func WithEaser(e anim.Easer) Option {
	return func(o *options) {
		if e != nil {
			o.easer = e
		}
	}
}

// WithParams sets the text extrusion parameters.
func WithParams(p geometry.Params) Option {
	return func(o *options) {
		o.params = p
	}
}

// WithRand sets the random source for sampling and sphere attributes.
// Use a seeded source for reproducible output.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithGeometryCache sets how many built geometries are kept for reuse
// when the text switches back to an earlier value.
func WithGeometryCache(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// WithMeshVisible asks renderers to draw the text mesh under the spheres.
func WithMeshVisible(v bool) Option {
	return func(o *options) {
		o.meshVisible = v
	}
}

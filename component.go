package spheretext

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/spheretext/anim"
	"github.com/gogpu/spheretext/geometry"
	"github.com/gogpu/spheretext/pool"
	"github.com/gogpu/spheretext/scene"
	"github.com/gogpu/spheretext/text"
)

// SphereText shows a line of text as spheres spread over the surface of
// the extruded text.
//
// Create it with New, start it with Mount and stop it with Teardown.
// Except for State, methods must be called on the dispatcher goroutine.
type SphereText struct {
	host Host
	opts options
	rng  *rand.Rand

	state  atomic.Int32
	text   string
	tf     *text.Typeface
	geom   *geometry.TextGeometry
	mesh   *TextMesh
	meshes int
	err    error

	pool   *pool.Pool
	driver *anim.Driver
	cache  *geometry.Cache

	cancelLoad    context.CancelFunc
	cancelResize  func()
	lastRenderErr string
}

// New returns an unmounted component drawing into host.
func New(host Host, opts ...Option) *SphereText {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	c := &SphereText{
		host:  host,
		opts:  o,
		rng:   rng,
		text:  o.text,
		pool:  pool.New(),
		cache: geometry.NewCache(o.cacheSize),
	}
	c.driver = anim.NewDriver(c.pool, o.easer, c.render)
	c.driver.OnError(c.renderFailed)
	return c
}

// State returns the lifecycle state. It is safe to call from any goroutine.
func (c *SphereText) State() State {
	return State(c.state.Load())
}

func (c *SphereText) setState(s State) {
	old := State(c.state.Swap(int32(s)))
	if old != s {
		Logger().Debug("spheretext: state", "from", old, "to", s)
	}
}

// Text returns the most recently requested text.
func (c *SphereText) Text() string {
	return c.text
}

// Pool returns the sphere pool.
func (c *SphereText) Pool() *pool.Pool {
	return c.pool
}

// Geometry returns the geometry the current targets were sampled from,
// or nil before the first successful build.
func (c *SphereText) Geometry() *geometry.TextGeometry {
	return c.geom
}

// Mesh returns the text mesh currently in the scene, or nil.
func (c *SphereText) Mesh() *TextMesh {
	return c.mesh
}

// Err returns the typeface load error after a transition to StateFailed.
func (c *SphereText) Err() error {
	return c.err
}

// Frames returns the number of frames stepped.
func (c *SphereText) Frames() uint64 {
	return c.driver.Frames()
}

// Mount starts frame delivery on d, follows the window size if one was
// configured, and begins loading the typeface. The load result is posted
// to d. Cancelling ctx abandons the load.
func (c *SphereText) Mount(ctx context.Context, d Dispatcher) error {
	switch c.State() {
	case StateUninitialized:
	case StateTornDown:
		return ErrTornDown
	default:
		return ErrAlreadyMounted
	}
	if c.host == nil {
		return ErrNilHost
	}

	if w := c.opts.window; w != nil {
		c.resize(w.Size())
		c.cancelResize = w.OnResize(func(width, height int) {
			d.Post(func() { c.resize(width, height) })
		})
	}

	c.setState(StateAwaitingTypeface)
	c.driver.Start(d)

	loadCtx, cancel := context.WithCancel(ctx)
	c.cancelLoad = cancel
	results := text.Load(loadCtx, c.opts.provider)
	go func() {
		res := <-results
		if !d.Post(func() { c.TypefaceLoaded(res) }) {
			Logger().Debug("spheretext: typeface result dropped, dispatcher closed")
		}
	}()
	return nil
}

// TypefaceLoaded completes a typeface load. On success the component
// becomes Ready and builds the latest text. On failure it becomes Failed;
// frames keep rendering with no spheres. Results arriving in any state
// other than StateAwaitingTypeface are ignored.
func (c *SphereText) TypefaceLoaded(res text.LoadResult) {
	if c.State() != StateAwaitingTypeface {
		return
	}
	if res.Err == nil && res.Typeface == nil {
		res.Err = ErrNoTypeface
	}
	if res.Err != nil {
		c.err = res.Err
		c.setState(StateFailed)
		Logger().Warn("spheretext: typeface load failed", "err", res.Err)
		return
	}

	c.tf = res.Typeface
	c.setState(StateReady)
	Logger().Info("spheretext: typeface loaded", "family", res.Typeface.Name())
	if err := c.rebuild(); err != nil {
		Logger().Warn("spheretext: initial text", "text", c.text, "err", err)
	}
}

// SetText changes the text. While the typeface loads the value is kept
// and built on arrival. Once Ready the spheres are retargeted immediately;
// if the build fails the previous targets stay in place and the error is
// returned.
func (c *SphereText) SetText(s string) error {
	if c.State() == StateTornDown {
		return ErrTornDown
	}
	c.text = s
	if c.State() != StateReady {
		return nil
	}
	return c.rebuild()
}

// Teardown stops frame delivery, stops following the window, abandons
// any pending typeface load and removes the mesh and spheres from the host.
// Teardown is idempotent.
func (c *SphereText) Teardown() {
	if c.State() == StateTornDown {
		return
	}
	c.driver.Stop()
	if c.cancelResize != nil {
		c.cancelResize()
		c.cancelResize = nil
	}
	if c.cancelLoad != nil {
		c.cancelLoad()
		c.cancelLoad = nil
	}
	if c.host != nil && c.mesh != nil {
		c.host.Remove(c.mesh)
		c.mesh = nil
	}
	if c.host != nil && c.pool.Len() > 0 {
		c.host.Remove(objects(c.pool.Spheres())...)
	}
	c.setState(StateTornDown)
}

// rebuild builds geometry for the current text, samples new targets and
// reconciles the pool. Nothing is changed unless every step succeeds.
func (c *SphereText) rebuild() error {
	g, err := c.cache.Build(c.text, c.tf, c.opts.params)
	if err != nil {
		return fmt.Errorf("spheretext: build %q: %w", c.text, err)
	}

	width := g.Width()
	n := pool.RequiredCount(width, c.opts.density)
	offset := mgl64.Vec3{-0.5 * width, 0, 0}
	targets := pool.Targets(g.Surface(), n, offset, c.rng)

	added, removed := c.pool.Reconcile(targets, c.rng)
	c.geom = g

	c.meshes++
	mesh := &TextMesh{id: c.meshes, geom: g, offset: offset, visible: c.opts.meshVisible}
	if c.mesh != nil {
		c.host.Remove(c.mesh)
	}
	c.host.Add(mesh)
	c.mesh = mesh

	if len(removed) > 0 {
		c.host.Remove(objects(removed)...)
	}
	if len(added) > 0 {
		c.host.Add(objects(added)...)
	}
	c.fitCamera()

	Logger().Debug("spheretext: retargeted",
		"text", c.text, "width", width, "spheres", n,
		"added", len(added), "removed", len(removed))
	return nil
}

// fitCamera frames the centred text.
func (c *SphereText) fitCamera() {
	if c.geom == nil || c.geom.Width() <= 0 {
		return
	}
	box := c.geom.Box
	center := mgl64.Vec3{0, box.Center().Y(), box.Center().Z()}
	c.host.Camera().Fit(center, box.Width()/2, box.Height()/2, box.Depth()/2)
}

func (c *SphereText) resize(w, h int) {
	if c.State() == StateTornDown || w <= 0 || h <= 0 {
		return
	}
	c.host.SetSize(w, h)
	c.host.Camera().SetAspect(w, h)
	c.fitCamera()
}

func (c *SphereText) render() error {
	return c.host.Render()
}

// renderFailed logs render errors once per distinct message.
func (c *SphereText) renderFailed(err error) {
	msg := err.Error()
	if msg == c.lastRenderErr {
		return
	}
	c.lastRenderErr = msg
	Logger().Warn("spheretext: render failed", "err", err)
}

func objects(spheres []*pool.Sphere) []scene.Object {
	objs := make([]scene.Object, len(spheres))
	for i, s := range spheres {
		objs[i] = s
	}
	return objs
}

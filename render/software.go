// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"cmp"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"

	"github.com/gogpu/spheretext/scene"
	"github.com/gogpu/spheretext/surface"
)

// kappa places the control points of a cubic Bézier approximating a
// quarter circle.
const kappa = 0.5522847498

// meshRoughness is the material roughness of visible meshes.
const meshRoughness = 0.9

// meshColor is the base colour of visible meshes.
var meshColor = colorful.Color{R: 0.75, G: 0.75, B: 0.75}

// maxSpecularExponent caps the Blinn-Phong exponent of very smooth spheres.
const maxSpecularExponent = 1024

// SoftwareRenderer is a CPU renderer for sphere scenes.
//
// Visible meshes are drawn first as flat shaded triangles, far to near.
// Only triangle parts are drawn; planar regions are skipped.
//
// Every sphere is projected through the scene camera and drawn as an
// anti-aliased disc, far to near, so nearer spheres cover farther ones.
// Inside the disc the sphere normal is reconstructed per pixel and shaded
// with the scene's ambient and directional light: Lambert diffuse plus a
// Blinn-Phong highlight whose sharpness follows the sphere's roughness.
//
// Example:
//
//	renderer := render.NewSoftwareRenderer()
//	target := render.NewPixmapTarget(800, 600)
//	renderer.Render(target, s)
//	img := target.Image()
type SoftwareRenderer struct {
	// raster is reused for disc coverage.
	raster *vector.Rasterizer

	// discs and tris are reused between frames.
	discs []disc
	tris  []facet
}

// facet is a projected mesh triangle with its flat shade.
type facet struct {
	pts   [3][2]float64
	depth float64
	color color.RGBA
}

// disc is a projected sphere.
type disc struct {
	x, y, r   float64
	depth     float64
	color     colorful.Color
	roughness float64
}

// NewSoftwareRenderer creates a new CPU-based software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{raster: vector.NewRasterizer(0, 0)}
}

// Render clears the target to the scene background and draws every sphere
// of the scene.
//
// Returns an error if the target has no CPU pixels or is not RGBA8.
func (r *SoftwareRenderer) Render(target RenderTarget, s *scene.Scene) error {
	dst, err := rgbaView(target)
	if err != nil {
		return err
	}
	if s == nil {
		return nil
	}

	clearRGBA(dst, toRGBA(s.Background))
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	if w == 0 || h == 0 {
		return nil
	}

	cam := s.Camera()
	r.discs = r.discs[:0]
	for _, sp := range s.Spheres() {
		p, ok := cam.Project(sp.Center(), w, h)
		if !ok {
			continue
		}
		rad := sp.Radius() * p.Scale
		if !(rad > 0) || p.X+rad < 0 || p.Y+rad < 0 || p.X-rad > float64(w) || p.Y-rad > float64(h) {
			continue
		}
		r.discs = append(r.discs, disc{
			x:         p.X,
			y:         p.Y,
			r:         rad,
			depth:     p.Depth,
			color:     sp.Color(),
			roughness: sp.Roughness(),
		})
	}
	slices.SortStableFunc(r.discs, func(a, b disc) int {
		return cmp.Compare(b.depth, a.depth)
	})

	light := newLighting(s, cam)
	r.projectMeshes(s, cam, light, w, h)
	for i := range r.tris {
		r.drawFacet(dst, &r.tris[i])
	}
	for i := range r.discs {
		r.drawDisc(dst, &r.discs[i], light)
	}
	return nil
}

// Flush is a no-op; rendering is synchronous.
func (r *SoftwareRenderer) Flush() error {
	return nil
}

// Capabilities returns the renderer's capabilities.
func (r *SoftwareRenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		IsGPU:                false,
		SupportsAntialiasing: true,
	}
}

// drawDisc fills the circle of d with its shaded sphere.
func (r *SoftwareRenderer) drawDisc(dst *image.RGBA, d *disc, light lighting) {
	bounds := image.Rect(
		int(math.Floor(d.x-d.r))-1,
		int(math.Floor(d.y-d.r))-1,
		int(math.Ceil(d.x+d.r))+1,
		int(math.Ceil(d.y+d.r))+1,
	).Intersect(dst.Bounds())
	if bounds.Empty() {
		return
	}

	z := r.raster
	z.Reset(bounds.Dx(), bounds.Dy())

	// Rasterizer coordinates are relative to bounds.Min.
	cx := float32(d.x - float64(bounds.Min.X))
	cy := float32(d.y - float64(bounds.Min.Y))
	rr := float32(d.r)
	k := rr * kappa
	z.MoveTo(cx+rr, cy)
	z.CubeTo(cx+rr, cy+k, cx+k, cy+rr, cx, cy+rr)
	z.CubeTo(cx-k, cy+rr, cx-rr, cy+k, cx-rr, cy)
	z.CubeTo(cx-rr, cy-k, cx-k, cy-rr, cx, cy-rr)
	z.CubeTo(cx+k, cy-rr, cx+rr, cy-k, cx+rr, cy)
	z.ClosePath()

	z.Draw(dst, bounds, &sphereShader{
		cx:        d.x,
		cy:        d.y,
		r:         d.r,
		base:      d.color,
		roughness: d.roughness,
		light:     light,
	}, bounds.Min)
}

// projectMeshes fills r.tris with the visible mesh triangles sorted far
// to near.
func (r *SoftwareRenderer) projectMeshes(s *scene.Scene, cam *scene.Camera, light lighting, w, h int) {
	r.tris = r.tris[:0]
	view := cam.View()
	for _, m := range s.Meshes() {
		if !m.Visible() {
			continue
		}
		off := m.Offset()
		eachTriangle(m.Surface(), func(t surface.Triangle) {
			var f facet
			for k, v := range t {
				p, ok := cam.Project(v.Add(off), w, h)
				if !ok {
					return
				}
				f.pts[k] = [2]float64{p.X, p.Y}
				f.depth += p.Depth / 3
			}
			n := t.Normal()
			if n == (mgl64.Vec3{}) {
				return
			}
			nv := view.Mul4x1(mgl32.Vec4{float32(n[0]), float32(n[1]), float32(n[2]), 0})
			vn := mgl64.Vec3{float64(nv[0]), float64(nv[1]), float64(nv[2])}
			if vn.Z() < 0 {
				vn = vn.Mul(-1)
			}
			f.color = light.shade(vn.Normalize(), meshColor, meshRoughness)
			r.tris = append(r.tris, f)
		})
	}
	slices.SortStableFunc(r.tris, func(a, b facet) int {
		return cmp.Compare(b.depth, a.depth)
	})
}

// eachTriangle calls fn for every triangle of the mesh parts of s.
func eachTriangle(s surface.Surface, fn func(surface.Triangle)) {
	switch v := s.(type) {
	case *surface.Mesh:
		for _, t := range v.Triangles() {
			fn(t)
		}
	case *surface.Composite:
		for _, p := range v.Parts() {
			eachTriangle(p, fn)
		}
	}
}

// drawFacet fills one projected triangle with its flat colour.
func (r *SoftwareRenderer) drawFacet(dst *image.RGBA, f *facet) {
	lo := [2]float64{math.Inf(1), math.Inf(1)}
	hi := [2]float64{math.Inf(-1), math.Inf(-1)}
	for _, p := range f.pts {
		lo[0], lo[1] = math.Min(lo[0], p[0]), math.Min(lo[1], p[1])
		hi[0], hi[1] = math.Max(hi[0], p[0]), math.Max(hi[1], p[1])
	}
	bounds := image.Rect(
		int(math.Floor(lo[0]))-1, int(math.Floor(lo[1]))-1,
		int(math.Ceil(hi[0]))+1, int(math.Ceil(hi[1]))+1,
	).Intersect(dst.Bounds())
	if bounds.Empty() {
		return
	}

	z := r.raster
	z.Reset(bounds.Dx(), bounds.Dy())
	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	z.MoveTo(float32(f.pts[0][0]-ox), float32(f.pts[0][1]-oy))
	z.LineTo(float32(f.pts[1][0]-ox), float32(f.pts[1][1]-oy))
	z.LineTo(float32(f.pts[2][0]-ox), float32(f.pts[2][1]-oy))
	z.ClosePath()
	z.Draw(dst, bounds, image.NewUniform(f.color), bounds.Min)
}

// lighting is the scene light expressed in view space.
type lighting struct {
	ambient colorful.Color
	diffuse colorful.Color

	// toLight and half are unit vectors in view space.
	toLight mgl64.Vec3
	half    mgl64.Vec3
}

func newLighting(s *scene.Scene, cam *scene.Camera) lighting {
	amb := scaleColor(s.Ambient.Color, s.Ambient.Intensity)
	dif := scaleColor(s.Directional.Color, s.Directional.Intensity)

	d := s.Directional.Direction.Mul(-1)
	v := cam.View().Mul4x1(mgl32.Vec4{float32(d[0]), float32(d[1]), float32(d[2]), 0})
	toLight := mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
	if toLight.Len() == 0 {
		toLight = mgl64.Vec3{0, 0, 1}
	}
	toLight = toLight.Normalize()

	return lighting{
		ambient: amb,
		diffuse: dif,
		toLight: toLight,
		half:    toLight.Add(mgl64.Vec3{0, 0, 1}).Normalize(),
	}
}

// shade returns the colour of a surface point with view space normal n.
func (l lighting) shade(n mgl64.Vec3, base colorful.Color, roughness float64) color.RGBA {
	diff := math.Max(0, n.Dot(l.toLight))
	var spec float64
	if diff > 0 {
		spec = math.Pow(math.Max(0, n.Dot(l.half)), specularExponent(roughness)) * (1 - roughness)
	}
	c := colorful.Color{
		R: base.R*(l.ambient.R+l.diffuse.R*diff) + l.diffuse.R*spec,
		G: base.G*(l.ambient.G+l.diffuse.G*diff) + l.diffuse.G*spec,
		B: base.B*(l.ambient.B+l.diffuse.B*diff) + l.diffuse.B*spec,
	}
	return toRGBA(c)
}

// specularExponent maps roughness in (0, 1] to a Blinn-Phong exponent.
func specularExponent(roughness float64) float64 {
	if roughness <= 0 {
		return maxSpecularExponent
	}
	a := roughness * roughness
	return math.Min(maxSpecularExponent, math.Max(1, 2/(a*a)-2))
}

// sphereShader is the source image of one sphere: each pixel is the shaded
// colour of the sphere surface seen through it.
type sphereShader struct {
	cx, cy, r float64
	base      colorful.Color
	roughness float64
	light     lighting
}

func (s *sphereShader) ColorModel() color.Model { return color.RGBAModel }

func (s *sphereShader) Bounds() image.Rectangle {
	return image.Rect(-1<<30, -1<<30, 1<<30, 1<<30)
}

func (s *sphereShader) At(x, y int) color.Color {
	nx := (float64(x) + 0.5 - s.cx) / s.r
	ny := -(float64(y) + 0.5 - s.cy) / s.r
	d2 := nx*nx + ny*ny
	if d2 > 1 {
		l := math.Sqrt(d2)
		nx, ny, d2 = nx/l, ny/l, 1
	}
	n := mgl64.Vec3{nx, ny, math.Sqrt(1 - d2)}
	return s.light.shade(n, s.base, s.roughness)
}

func scaleColor(c colorful.Color, k float64) colorful.Color {
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

package spheretext

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/spheretext/geometry"
	"github.com/gogpu/spheretext/scene"
	"github.com/gogpu/spheretext/surface"
)

// TextMesh places one built geometry in the scene, shifted by the same
// centring offset as the sphere targets. It is hidden unless shown with
// WithMeshVisible; the spheres carry the picture.
type TextMesh struct {
	id      int
	geom    *geometry.TextGeometry
	offset  mgl64.Vec3
	visible bool
}

// Ensure TextMesh implements scene.Mesh.
var _ scene.Mesh = (*TextMesh)(nil)

// Name implements scene.Object.
func (m *TextMesh) Name() string { return "text-mesh-" + strconv.Itoa(m.id) }

// Geometry returns the geometry the mesh was built from.
func (m *TextMesh) Geometry() *geometry.TextGeometry { return m.geom }

// Surface implements scene.Mesh.
func (m *TextMesh) Surface() surface.Surface { return m.geom.Surface() }

// Offset implements scene.Mesh.
func (m *TextMesh) Offset() mgl64.Vec3 { return m.offset }

// Visible implements scene.Mesh.
func (m *TextMesh) Visible() bool { return m.visible }

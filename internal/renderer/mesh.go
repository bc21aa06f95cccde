package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a drawable object: vertex data plus the TRS transform that feeds
// u_World and the material selecting its pipeline family.
type Mesh struct {
	// HOT DATA - accessed every draw
	WorldMatrix mgl32.Mat4
	Position    mgl32.Vec3
	Scale       mgl32.Vec3
	Rotation    mgl32.Quat
	Material    Material
	IsDirty     bool

	// MEDIUM DATA - culling
	BoundingSphereCenter mgl32.Vec3
	BoundingSphereRadius float32

	// COLD DATA
	Name     string
	Vertices []Vertex
}

func NewMesh(name string, vertices []Vertex, material Material) *Mesh {
	m := &Mesh{
		Name:     name,
		Vertices: vertices,
		Material: material,
		Scale:    mgl32.Vec3{1, 1, 1},
		Rotation: mgl32.QuatIdent(),
	}
	m.updateWorldMatrix()
	return m
}

func (m *Mesh) SetPosition(x, y, z float32) {
	m.Position = mgl32.Vec3{x, y, z}
	m.updateWorldMatrix()
	m.IsDirty = true
}

func (m *Mesh) SetScale(x, y, z float32) {
	m.Scale = mgl32.Vec3{x, y, z}
	m.updateWorldMatrix()
	m.IsDirty = true
}

func (m *Mesh) Rotate(angleX, angleY, angleZ float32) {
	if m.Rotation == (mgl32.Quat{}) {
		m.Rotation = mgl32.QuatIdent()
	}
	rotationX := mgl32.QuatRotate(mgl32.DegToRad(angleX), mgl32.Vec3{1, 0, 0})
	rotationY := mgl32.QuatRotate(mgl32.DegToRad(angleY), mgl32.Vec3{0, 1, 0})
	rotationZ := mgl32.QuatRotate(mgl32.DegToRad(angleZ), mgl32.Vec3{0, 0, 1})
	m.Rotation = m.Rotation.Mul(rotationX).Mul(rotationY).Mul(rotationZ)
	m.updateWorldMatrix()
	m.IsDirty = true
}

// Locals assembles this mesh's per-draw uniform block.
func (m *Mesh) Locals(lighting *Lighting) LocalsBlock {
	return m.Material.BuildLocals(m.WorldMatrix, lighting)
}

// ShadowPassLocals assembles the depth-pass block for the given light
// viewpoint, combining it with this mesh's world matrix.
func (m *Mesh) ShadowPassLocals(lightViewProjection mgl32.Mat4) *ShadowLocals {
	return &ShadowLocals{
		ModelViewProjection: lightViewProjection.Mul4(m.WorldMatrix),
	}
}

func (m *Mesh) updateWorldMatrix() {
	// TRS order: scale first, then rotate, then translate
	scaleMatrix := mgl32.Scale3D(m.Scale.X(), m.Scale.Y(), m.Scale.Z())
	rotationMatrix := m.Rotation.Mat4()
	translationMatrix := mgl32.Translate3D(m.Position.X(), m.Position.Y(), m.Position.Z())
	m.WorldMatrix = translationMatrix.Mul4(rotationMatrix).Mul4(scaleMatrix)
	m.CalculateBoundingSphere()
}

func (m *Mesh) CalculateBoundingSphere() {
	if len(m.Vertices) == 0 {
		m.BoundingSphereCenter = m.Position
		m.BoundingSphereRadius = 0
		return
	}

	var center mgl32.Vec3
	for _, v := range m.Vertices {
		world := m.WorldMatrix.Mul4x1(v.Position)
		center = center.Add(world.Vec3())
	}
	center = center.Mul(1.0 / float32(len(m.Vertices)))

	var maxDistanceSq float32
	for _, v := range m.Vertices {
		world := m.WorldMatrix.Mul4x1(v.Position)
		distanceSq := world.Vec3().Sub(center).LenSqr()
		if distanceSq > maxDistanceSq {
			maxDistanceSq = distanceSq
		}
	}

	m.BoundingSphereCenter = center
	m.BoundingSphereRadius = math32.Sqrt(maxDistanceSq)
}

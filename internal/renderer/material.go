package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// PipelineFamily identifies which globals schema a program consumes. The
// lit and basic families use incompatible b_Globals layouts and must never
// share a buffer binding; the shadow family binds no globals at all.
type PipelineFamily int

const (
	FamilyLit PipelineFamily = iota
	FamilyBasic
	FamilyShadow
)

func (f PipelineFamily) String() string {
	switch f {
	case FamilyLit:
		return "lit"
	case FamilyBasic:
		return "basic"
	case FamilyShadow:
		return "shadow"
	}
	return "unknown"
}

// MaterialKind tags the material variants.
type MaterialKind int

const (
	KindBasic MaterialKind = iota
	KindGouraud
	KindPhong
	KindShadow
)

// Material is a tagged variant; each kind carries its own strongly-typed
// b_Locals schema rather than reusing one loosely-shaped layout.
type Material interface {
	Kind() MaterialKind
	Family() PipelineFamily

	// BuildLocals assembles the per-draw uniform block for this material.
	// Lighting is ignored by unlit kinds.
	BuildLocals(world mgl32.Mat4, lighting *Lighting) LocalsBlock
}

// BasicMaterial renders a solid color, or a texture lookup modulated by
// that color when Map is set.
type BasicMaterial struct {
	Color mgl32.Vec4
	Map   *Texture
}

func NewBasicMaterial() *BasicMaterial {
	return &BasicMaterial{Color: mgl32.Vec4{1, 1, 1, 1}}
}

func (m *BasicMaterial) Kind() MaterialKind     { return KindBasic }
func (m *BasicMaterial) Family() PipelineFamily { return FamilyBasic }

func (m *BasicMaterial) BuildLocals(world mgl32.Mat4, _ *Lighting) LocalsBlock {
	uvRange := mgl32.Vec4{0, 0, 1, 1}
	if m.Map != nil {
		uvRange = m.Map.UvRange()
	}
	return &BasicLocals{
		World:   world,
		Color:   m.Color,
		UvRange: uvRange,
	}
}

// GouraudMaterial is lit per-vertex; Smoothness dials continuously between
// flat (provoking-vertex) and smoothly interpolated shading.
type GouraudMaterial struct {
	Color      mgl32.Vec4
	Smoothness float32
}

func NewGouraudMaterial() *GouraudMaterial {
	return &GouraudMaterial{Color: mgl32.Vec4{1, 1, 1, 1}, Smoothness: 1}
}

func (m *GouraudMaterial) Kind() MaterialKind     { return KindGouraud }
func (m *GouraudMaterial) Family() PipelineFamily { return FamilyLit }

func (m *GouraudMaterial) BuildLocals(world mgl32.Mat4, lighting *Lighting) LocalsBlock {
	return &GouraudLocals{
		World:      world,
		Color:      m.Color,
		Smoothness: m.Smoothness,
		Lights:     lighting,
	}
}

// PhongMaterial is lit per-pixel with a specular glossiness constant.
type PhongMaterial struct {
	Glossiness float32
}

func NewPhongMaterial() *PhongMaterial {
	return &PhongMaterial{Glossiness: 30}
}

func (m *PhongMaterial) Kind() MaterialKind     { return KindPhong }
func (m *PhongMaterial) Family() PipelineFamily { return FamilyLit }

func (m *PhongMaterial) BuildLocals(world mgl32.Mat4, lighting *Lighting) LocalsBlock {
	return &PhongLocals{
		World:      world,
		Glossiness: m.Glossiness,
		Lights:     lighting,
	}
}

// ShadowMaterial is the depth-only shadow pass. BuildLocals expects the
// pre-combined model-view-projection matrix of the light's viewpoint.
type ShadowMaterial struct{}

func (m *ShadowMaterial) Kind() MaterialKind     { return KindShadow }
func (m *ShadowMaterial) Family() PipelineFamily { return FamilyShadow }

func (m *ShadowMaterial) BuildLocals(mvp mgl32.Mat4, _ *Lighting) LocalsBlock {
	return &ShadowLocals{ModelViewProjection: mvp}
}

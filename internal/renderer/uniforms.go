package renderer

import (
	"Troika3D/internal/std140"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/linmath"
)

// Uniform block binding contract. The host pipeline must bind b_Locals and
// b_Globals at these indices for every program in the set.
const (
	LocalsBlockName  = "b_Locals"
	GlobalsBlockName = "b_Globals"

	LocalsBinding  = 0
	GlobalsBinding = 1
)

// std140 images of the light structs.
const (
	ambientLightSize     = 16
	directionalLightSize = 48
	pointLightSize       = 32
)

// LitGlobals layout (phong/gouraud family).
const (
	LitGlobalsViewProjectionOffset = 0
	LitGlobalsAmbientOffset        = 64
	LitGlobalsDirectionalOffset    = 80
	LitGlobalsSize                 = 128
)

// BasicGlobals layout (unlit/texture family).
const (
	BasicGlobalsViewProjectionOffset    = 0
	BasicGlobalsInverseProjectionOffset = 64
	BasicGlobalsViewOffset              = 128
	BasicGlobalsNumLightsOffset         = 192
	BasicGlobalsSize                    = 208
)

// PhongLocals layout.
const (
	PhongLocalsWorldOffset       = 0
	PhongLocalsGlossinessOffset  = 64
	PhongLocalsPointLightsOffset = 80
	PhongLocalsSize              = 336
)

// GouraudLocals layout.
const (
	GouraudLocalsWorldOffset       = 0
	GouraudLocalsColorOffset       = 64
	GouraudLocalsSmoothnessOffset  = 80
	GouraudLocalsPointLightsOffset = 96
	GouraudLocalsSize              = 352
)

// BasicLocals layout.
const (
	BasicLocalsWorldOffset   = 0
	BasicLocalsColorOffset   = 64
	BasicLocalsUvRangeOffset = 80
	BasicLocalsSize          = 96
)

// ShadowLocals layout.
const (
	ShadowLocalsMVPOffset = 0
	ShadowLocalsSize      = 64
)

// Block is a uniform block that can produce its std140 byte image.
type Block interface {
	Size() int
	Encode(w *std140.Writer)
}

// GlobalsBlock is the per-frame block of one pipeline family. The two
// globals schemas are incompatible and must never share a buffer binding,
// so each carries its family tag.
type GlobalsBlock interface {
	Block
	Family() PipelineFamily
}

// LocalsBlock is the per-draw block of one material.
type LocalsBlock interface {
	Block
	Family() PipelineFamily
}

// EncodeBlock renders a block into a freshly allocated std140 byte image.
func EncodeBlock(b Block) []byte {
	w := std140.NewWriter(b.Size())
	b.Encode(w)
	return w.Bytes()
}

// toLinMat re-packs an mgl32 matrix into the raw column-major layout
// uploaded to the GPU.
func toLinMat(m mgl32.Mat4) linmath.Mat4x4 {
	var out linmath.Mat4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[i*4+j]
		}
	}
	return out
}

// LitGlobals is the per-frame block of the lit-material family: combined
// view-projection plus the global ambient and directional terms.
type LitGlobals struct {
	ViewProjection mgl32.Mat4
	Ambient        AmbientLight
	Directional    DirectionalLight
}

func (g *LitGlobals) Family() PipelineFamily { return FamilyLit }

func (g *LitGlobals) Size() int { return LitGlobalsSize }

func (g *LitGlobals) Encode(w *std140.Writer) {
	w.PutMat4(toLinMat(g.ViewProjection))
	g.Ambient.encode(w)
	w.Pad(LitGlobalsDirectionalOffset)
	g.Directional.encode(w)
	w.Pad(LitGlobalsSize)
}

// BasicGlobals is the per-frame block of the unlit/texture family.
type BasicGlobals struct {
	ViewProjection    mgl32.Mat4
	InverseProjection mgl32.Mat4
	View              mgl32.Mat4
	NumLights         uint32
}

func (g *BasicGlobals) Family() PipelineFamily { return FamilyBasic }

func (g *BasicGlobals) Size() int { return BasicGlobalsSize }

func (g *BasicGlobals) Encode(w *std140.Writer) {
	w.PutMat4(toLinMat(g.ViewProjection))
	w.PutMat4(toLinMat(g.InverseProjection))
	w.PutMat4(toLinMat(g.View))
	w.PutUint32(g.NumLights)
	w.Pad(BasicGlobalsSize)
}

// PhongLocals is the per-draw block of a phong material: world matrix,
// specular glossiness and the fixed point-light array.
type PhongLocals struct {
	World      mgl32.Mat4
	Glossiness float32
	Lights     *Lighting
}

func (l *PhongLocals) Family() PipelineFamily { return FamilyLit }

func (l *PhongLocals) Size() int { return PhongLocalsSize }

func (l *PhongLocals) Encode(w *std140.Writer) {
	w.PutMat4(toLinMat(l.World))
	w.PutFloat32(l.Glossiness)
	w.Pad(PhongLocalsPointLightsOffset)
	encodePoints(w, l.Lights)
	w.Pad(PhongLocalsSize)
}

// GouraudLocals is the per-draw block of a gouraud material: world matrix,
// tint color, the flat/smooth blend factor and the point-light array.
type GouraudLocals struct {
	World      mgl32.Mat4
	Color      mgl32.Vec4
	Smoothness float32
	Lights     *Lighting
}

func (l *GouraudLocals) Family() PipelineFamily { return FamilyLit }

func (l *GouraudLocals) Size() int { return GouraudLocalsSize }

func (l *GouraudLocals) Encode(w *std140.Writer) {
	w.PutMat4(toLinMat(l.World))
	w.PutVec4(l.Color.X(), l.Color.Y(), l.Color.Z(), l.Color.W())
	w.PutFloat32(l.Smoothness)
	w.Pad(GouraudLocalsPointLightsOffset)
	encodePoints(w, l.Lights)
	w.Pad(GouraudLocalsSize)
}

// BasicLocals is the per-draw block of an unlit/textured material: world
// matrix, base color and the UV remapping range for atlas sub-rectangles.
type BasicLocals struct {
	World   mgl32.Mat4
	Color   mgl32.Vec4
	UvRange mgl32.Vec4
}

func (l *BasicLocals) Family() PipelineFamily { return FamilyBasic }

func (l *BasicLocals) Size() int { return BasicLocalsSize }

func (l *BasicLocals) Encode(w *std140.Writer) {
	w.PutMat4(toLinMat(l.World))
	w.PutVec4(l.Color.X(), l.Color.Y(), l.Color.Z(), l.Color.W())
	w.PutVec4(l.UvRange.X(), l.UvRange.Y(), l.UvRange.Z(), l.UvRange.W())
}

// ShadowLocals is the per-draw block of the depth-only shadow pass: one
// combined model-view-projection matrix, no globals block at all.
type ShadowLocals struct {
	ModelViewProjection mgl32.Mat4
}

func (l *ShadowLocals) Family() PipelineFamily { return FamilyShadow }

func (l *ShadowLocals) Size() int { return ShadowLocalsSize }

func (l *ShadowLocals) Encode(w *std140.Writer) {
	w.PutMat4(toLinMat(l.ModelViewProjection))
}

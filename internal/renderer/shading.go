package renderer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// CPU reference implementation of the shading stages. Each function mirrors
// one shader invocation: a pure function of its inputs with no state shared
// between invocations. The GPU programs in shaders.go are the source of
// truth; these exist so the shading and layout contract is executable.

// Vertex is one input vertex in object space. Position is homogeneous with
// w = 1 for meshes.
type Vertex struct {
	Position mgl32.Vec4
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Interpolants carries the vertex stage outputs that rasterization would
// interpolate. Fields not produced by a given stage stay zero.
type Interpolants struct {
	ClipPosition  mgl32.Vec4
	WorldPosition mgl32.Vec3
	Normal        mgl32.Vec3
	TexCoord      mgl32.Vec2
	Depth         float32
	ColorSmooth   mgl32.Vec4
	ColorFlat     mgl32.Vec4
}

// transformNormal applies the upper-left 3x3 of the world matrix and
// renormalizes. mat3 drops translation; the result is only correct for
// uniform-scale world matrices, matching the shader.
func transformNormal(world mgl32.Mat4, n mgl32.Vec3) mgl32.Vec3 {
	return world.Mat3().Mul3x1(n).Normalize()
}

func mix(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// RemapUV maps an input UV into the atlas sub-rectangle: (0,0) lands on
// uvRange.xy and (1,1) on uvRange.zw.
func RemapUV(uvRange mgl32.Vec4, uv mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		mix(uvRange.X(), uvRange.Z(), uv.X()),
		mix(uvRange.Y(), uvRange.W(), uv.Y()),
	}
}

// diffuseAt accumulates the ambient and diffuse terms at a world-space
// position with the given unit normal. When guardDegenerate is set, a point
// light coincident with the position contributes zero instead of
// propagating NaN through the normalize.
func diffuseAt(lighting *Lighting, position, normal mgl32.Vec3, guardDegenerate bool) mgl32.Vec3 {
	lit := lighting.Ambient.Color.Mul(lighting.Ambient.Intensity)

	if lighting.Directional.Intensity != 0 {
		dir := lighting.Directional.Direction.Mul(-1).Normalize()
		lit = lit.Add(lighting.Directional.Color.
			Mul(lighting.Directional.Intensity * math32.Max(0, normal.Dot(dir))))
	}

	for _, light := range lighting.Points() {
		toLight := light.Position.Vec3().Sub(position)
		if guardDegenerate && toLight.Len() == 0 {
			continue
		}
		dir := toLight.Normalize()
		lit = lit.Add(light.Color.
			Mul(light.Intensity * math32.Max(0, normal.Dot(dir))))
	}
	return lit
}

// VertexBasic is the unlit/textured vertex stage: clip transform plus UV
// remapping into the atlas sub-rectangle.
func VertexBasic(g *BasicGlobals, l *BasicLocals, v Vertex) Interpolants {
	world := l.World.Mul4x1(v.Position)
	return Interpolants{
		ClipPosition:  g.ViewProjection.Mul4x1(world),
		WorldPosition: world.Vec3(),
		TexCoord:      RemapUV(l.UvRange, v.TexCoord),
	}
}

// VertexPhong transforms position and normal into world space for per-pixel
// lighting.
func VertexPhong(g *LitGlobals, l *PhongLocals, v Vertex) Interpolants {
	world := l.World.Mul4x1(v.Position)
	return Interpolants{
		ClipPosition:  g.ViewProjection.Mul4x1(world),
		WorldPosition: world.Vec3(),
		Normal:        transformNormal(l.World, v.Normal),
	}
}

// VertexGouraud evaluates lighting per vertex, writing the result to both
// the smoothly interpolated and the flat (provoking-vertex) outputs.
func VertexGouraud(g *LitGlobals, l *GouraudLocals, v Vertex, cfg *RenderConfig) Interpolants {
	world := l.World.Mul4x1(v.Position)
	normal := transformNormal(l.World, v.Normal)

	lighting := Lighting{Ambient: g.Ambient}
	if l.Lights != nil {
		lighting = *l.Lights
		lighting.Ambient = g.Ambient
		lighting.Directional.Intensity = 0 // gouraud sums ambient + point lights only
	}
	lit := diffuseAt(&lighting, world.Vec3(), normal, cfg.guardDegenerate())

	color := mgl32.Vec4{
		lit.X() * l.Color.X(),
		lit.Y() * l.Color.Y(),
		lit.Z() * l.Color.Z(),
		l.Color.W(),
	}
	return Interpolants{
		ClipPosition:  g.ViewProjection.Mul4x1(world),
		WorldPosition: world.Vec3(),
		Normal:        normal,
		ColorSmooth:   color,
		ColorFlat:     color,
	}
}

// VertexShadow emits clip position plus the normalized device depth
// (clip z over clip w). Behavior for clip w <= 0 is undefined, matching the
// shader; callers must cull behind-camera vertices first.
func VertexShadow(l *ShadowLocals, v Vertex) Interpolants {
	clip := l.ModelViewProjection.Mul4x1(v.Position)
	return Interpolants{
		ClipPosition: clip,
		Depth:        clip.Z() / clip.W(),
	}
}

// FragmentPhong shades per pixel: renormalized interpolated normal, then
// ambient plus directional and point diffuse terms. The specular
// accumulator is carried but never fed, matching the shader's unfinished
// specular path.
func FragmentPhong(g *LitGlobals, l *PhongLocals, in Interpolants, cfg *RenderConfig) mgl32.Vec4 {
	normal := in.Normal.Normalize()

	lighting := Lighting{Ambient: g.Ambient, Directional: g.Directional}
	if l.Lights != nil {
		lighting = *l.Lights
		lighting.Ambient = g.Ambient
		lighting.Directional = g.Directional
	}
	lit := diffuseAt(&lighting, in.WorldPosition, normal, cfg.guardDegenerate())

	specular := mgl32.Vec3{}
	lit = lit.Add(specular)
	return lit.Vec4(1)
}

// FragmentGouraud blends the flat and smooth per-vertex results; smoothness
// 0 yields exactly the flat color and 1 exactly the smooth color.
func FragmentGouraud(l *GouraudLocals, in Interpolants) mgl32.Vec4 {
	s := l.Smoothness
	return mgl32.Vec4{
		mix(in.ColorFlat.X(), in.ColorSmooth.X(), s),
		mix(in.ColorFlat.Y(), in.ColorSmooth.Y(), s),
		mix(in.ColorFlat.Z(), in.ColorSmooth.Z(), s),
		mix(in.ColorFlat.W(), in.ColorSmooth.W(), s),
	}
}

// FragmentBasic outputs the flat color, modulated by the texture lookup
// when a sampler is bound.
func FragmentBasic(l *BasicLocals, tex Sampler, in Interpolants) mgl32.Vec4 {
	if tex == nil {
		return l.Color
	}
	sample := tex.Sample(in.TexCoord.X(), in.TexCoord.Y())
	return mgl32.Vec4{
		l.Color.X() * sample.X(),
		l.Color.Y() * sample.Y(),
		l.Color.Z() * sample.Z(),
		l.Color.W() * sample.W(),
	}
}

// FragmentShadow writes the interpolated depth to the red channel of the
// color attachment, zero elsewhere.
func FragmentShadow(in Interpolants) mgl32.Vec4 {
	return mgl32.Vec4{in.Depth, 0, 0, 0}
}

package renderer

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

// Texture describes a texel region of a (possibly larger) texture atlas.
// The host engine owns the pixel data; this side only tracks the UV
// sub-rectangle fed to u_UvRange.
type Texture struct {
	width  int
	height int
	tex0   mgl32.Vec2
	tex1   mgl32.Vec2
}

// NewTexture creates a texture covering its full size.
func NewTexture(width, height int) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("texture size must be positive, got %dx%d", width, height)
	}
	return &Texture{
		width:  width,
		height: height,
		tex1:   mgl32.Vec2{float32(width), float32(height)},
	}, nil
}

// SetTexelRange selects a sub-rectangle in texel coordinates with a
// top-left origin, for sprite-sheet and atlas sampling.
func (t *Texture) SetTexelRange(baseX, baseY int, sizeX, sizeY int) {
	t.tex0 = mgl32.Vec2{
		float32(baseX),
		float32(t.height - baseY - sizeY),
	}
	t.tex1 = mgl32.Vec2{
		float32(baseX + sizeX),
		float32(t.height - baseY),
	}
}

// UvRange returns the normalized UV rectangle (x0, y0, x1, y1) of the
// current texel range. This is the value encoded into u_UvRange.
func (t *Texture) UvRange() mgl32.Vec4 {
	return mgl32.Vec4{
		t.tex0.X() / float32(t.width),
		t.tex0.Y() / float32(t.height),
		t.tex1.X() / float32(t.width),
		t.tex1.Y() / float32(t.height),
	}
}

// Sampler is the texture lookup used by the basic fragment reference path,
// standing in for the t_Map sampler2D.
type Sampler interface {
	Sample(u, v float32) mgl32.Vec4
}

// SolidSampler returns one color everywhere.
type SolidSampler struct {
	Color mgl32.Vec4
}

func (s SolidSampler) Sample(u, v float32) mgl32.Vec4 {
	return s.Color
}

// NoiseSampler is a procedural grayscale texture backed by Perlin noise,
// handy for demos and for exercising the textured path without image data.
type NoiseSampler struct {
	noise *perlin.Perlin
	scale float64
}

// NewNoiseSampler creates a noise texture. Scale stretches the noise
// features across UV space.
func NewNoiseSampler(seed int64, scale float64) *NoiseSampler {
	return &NoiseSampler{
		noise: perlin.NewPerlin(2, 2, 3, seed),
		scale: scale,
	}
}

func (s *NoiseSampler) Sample(u, v float32) mgl32.Vec4 {
	// Perlin output is roughly [-1, 1]; remap to [0, 1]
	n := float32(s.noise.Noise2D(float64(u)*s.scale, float64(v)*s.scale))
	n = n*0.5 + 0.5
	return mgl32.Vec4{n, n, n, 1}
}

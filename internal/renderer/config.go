package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderConfig holds host-side rendering options that affect how uniform
// buffers are built and how the reference shading model evaluates.
type RenderConfig struct {
	// Framebuffer clear values used by the host before the forward pass.
	ClearColor mgl32.Vec3 `json:"clearColor"`
	ClearDepth float32    `json:"clearDepth"`

	// GuardDegenerateLights zeroes the contribution of a point light whose
	// position coincides with the shaded position. Off reproduces the raw
	// shader behavior, which propagates NaN through the lighting sum.
	GuardDegenerateLights bool `json:"guardDegenerateLights"`

	// EnableShadowPass toggles building shadow-family draws.
	EnableShadowPass bool `json:"enableShadowPass"`

	// Procedural noise sampler settings for the textured basic path.
	NoiseSeed  int64   `json:"noiseSeed"`
	NoiseScale float64 `json:"noiseScale"`
}

// DefaultRenderConfig returns the engine defaults: black clear, far depth,
// degenerate lights guarded, shadows on.
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		ClearColor:            mgl32.Vec3{0, 0, 0},
		ClearDepth:            1.0,
		GuardDegenerateLights: true,
		EnableShadowPass:      true,
		NoiseSeed:             1,
		NoiseScale:            8,
	}
}

// Validate rejects configurations the pipeline cannot honor.
func (c *RenderConfig) Validate() error {
	if c.ClearDepth < 0 || c.ClearDepth > 1 {
		return fmt.Errorf("clear depth %f outside [0, 1]", c.ClearDepth)
	}
	if c.NoiseScale <= 0 {
		return fmt.Errorf("noise scale must be positive, got %f", c.NoiseScale)
	}
	return nil
}

// NoiseSampler builds the procedural sampler described by the config.
func (c *RenderConfig) NoiseSampler() *NoiseSampler {
	return NewNoiseSampler(c.NoiseSeed, c.NoiseScale)
}

// guardDegenerate is nil-safe so reference shading works without a config.
func (c *RenderConfig) guardDegenerate() bool {
	if c == nil {
		return true
	}
	return c.GuardDegenerateLights
}

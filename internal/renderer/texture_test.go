package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewTextureFullRange(t *testing.T) {
	tex, err := NewTexture(256, 128)
	if err != nil {
		t.Fatalf("NewTexture failed: %v", err)
	}

	if tex.UvRange() != (mgl32.Vec4{0, 0, 1, 1}) {
		t.Errorf("fresh texture uv range = %v, want full (0,0,1,1)", tex.UvRange())
	}
}

func TestNewTextureRejectsBadSize(t *testing.T) {
	if _, err := NewTexture(0, 64); err == nil {
		t.Error("zero width should be rejected")
	}
	if _, err := NewTexture(64, -1); err == nil {
		t.Error("negative height should be rejected")
	}
}

func TestSetTexelRange(t *testing.T) {
	tex, err := NewTexture(128, 128)
	if err != nil {
		t.Fatalf("NewTexture failed: %v", err)
	}

	// 32x32 tile at texel (32, 0), top-left origin; V flips to a
	// bottom-left UV origin
	tex.SetTexelRange(32, 0, 32, 32)

	want := mgl32.Vec4{0.25, 0.75, 0.5, 1.0}
	if tex.UvRange() != want {
		t.Errorf("uv range = %v, want %v", tex.UvRange(), want)
	}
}

func TestSolidSampler(t *testing.T) {
	s := SolidSampler{Color: mgl32.Vec4{0.1, 0.2, 0.3, 1}}
	if s.Sample(0.9, 0.1) != s.Color {
		t.Error("solid sampler should return its color everywhere")
	}
}

func TestNoiseSamplerRangeAndDeterminism(t *testing.T) {
	a := NewNoiseSampler(7, 8)
	b := NewNoiseSampler(7, 8)

	for _, uv := range [][2]float32{{0, 0}, {0.3, 0.7}, {0.9, 0.2}, {1, 1}} {
		sample := a.Sample(uv[0], uv[1])
		for c := 0; c < 3; c++ {
			if sample[c] < 0 || sample[c] > 1 {
				t.Errorf("noise sample channel %d = %f outside [0,1]", c, sample[c])
			}
		}
		if sample.W() != 1 {
			t.Errorf("noise sample alpha = %f, want 1", sample.W())
		}
		if sample != b.Sample(uv[0], uv[1]) {
			t.Error("same seed should give identical samples")
		}
	}
}

package renderer

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNewDefaultCamera(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	if cam == nil {
		t.Fatal("NewDefaultCamera returned nil")
	}

	if cam.Position == (mgl32.Vec3{0, 0, 0}) {
		t.Error("Camera position should not be at origin")
	}

	if cam.AspectRatio != 800.0/600.0 {
		t.Errorf("aspect ratio = %f, want %f", cam.AspectRatio, 800.0/600.0)
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 5}
	cam.Front = mgl32.Vec3{0, 0, -1}
	cam.Up = mgl32.Vec3{0, 1, 0}

	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	proj := cam.GetProjectionMatrix()

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraGetViewProjection(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	vp := cam.GetViewProjection()

	zero := mgl32.Mat4{}
	if vp == zero {
		t.Error("ViewProjection should not be zero matrix")
	}
}

func TestCameraInverseProjection(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	inv := cam.GetInverseProjection()
	roundTrip := cam.Projection.Mul4(inv)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if math32.Abs(roundTrip.At(i, j)-want) > 1e-5 {
				t.Fatalf("projection * inverse != identity at (%d,%d): %f",
					i, j, roundTrip.At(i, j))
			}
		}
	}
}

func TestCameraUpdateVectors(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Yaw = -90
	cam.Pitch = 0

	cam.updateCameraVectors()

	frontLen := cam.Front.Len()
	if math32.Abs(frontLen-1.0) > 0.01 {
		t.Errorf("Front vector should be normalized, length=%f", frontLen)
	}
}

func TestCameraGlobalsBlocks(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	lighting := DefaultLighting()
	lighting.Ambient.Intensity = 0.7

	lit := cam.LitGlobals(lighting)
	if lit.ViewProjection != cam.GetViewProjection() {
		t.Error("lit globals should carry the camera's view-projection")
	}
	if lit.Ambient.Intensity != 0.7 {
		t.Error("lit globals should carry the lighting's ambient term")
	}

	basic := cam.BasicGlobals(3)
	if basic.View != cam.GetViewMatrix() {
		t.Error("basic globals should carry the view matrix")
	}
	if basic.NumLights != 3 {
		t.Errorf("basic globals light count = %d, want 3", basic.NumLights)
	}
}

func TestFrustumIntersectsSphere(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 10}
	cam.Front = mgl32.Vec3{0, 0, -1}

	frustum := cam.CalculateFrustum()

	if !frustum.IntersectsSphere(mgl32.Vec3{0, 0, 0}, 1) {
		t.Error("sphere in front of the camera should intersect the frustum")
	}

	if frustum.IntersectsSphere(mgl32.Vec3{0, 0, 100}, 1) {
		t.Error("sphere far behind the camera should be culled")
	}
}

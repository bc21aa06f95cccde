package renderer

import (
	"Troika3D/internal/logger"
	"Troika3D/internal/std140"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// MaxPointLights is the fixed capacity of the per-draw point light array.
// Lights added beyond this count are dropped.
const MaxPointLights = 8

// AmbientLight is the global ambient term. std140 image: 16 bytes
// (color at 0, intensity packed at 12).
type AmbientLight struct {
	Color     mgl32.Vec3
	Intensity float32
}

// DirectionalLight is the global directional term. std140 image: 48 bytes
// (position at 0, direction at 16, color at 32, intensity packed at 44).
type DirectionalLight struct {
	Position  mgl32.Vec4
	Direction mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
}

// PointLight is a single local light. std140 image: 32 bytes, which is also
// the array stride (position at 0, color at 16, intensity packed at 28).
type PointLight struct {
	Position  mgl32.Vec4
	Color     mgl32.Vec3
	Intensity float32
}

// Lighting aggregates the illumination for one draw: the global ambient and
// directional terms plus up to MaxPointLights local point lights.
type Lighting struct {
	Ambient     AmbientLight
	Directional DirectionalLight
	points      [MaxPointLights]PointLight
	numPoints   int
	dropLogged  bool
}

// DefaultLighting mirrors the engine defaults: dim white ambient, an unlit
// downward directional, no point lights.
func DefaultLighting() *Lighting {
	return &Lighting{
		Ambient: AmbientLight{
			Color:     mgl32.Vec3{1, 1, 1},
			Intensity: 0.2,
		},
		Directional: DirectionalLight{
			Direction: mgl32.Vec3{0, -1, 0},
			Color:     mgl32.Vec3{1, 1, 1},
			Intensity: 0,
		},
	}
}

// AddPoint appends a point light. Once the fixed capacity is reached,
// further lights are silently dropped; the encoded buffer never grows past
// MaxPointLights entries.
func (l *Lighting) AddPoint(light PointLight) {
	if l.numPoints >= MaxPointLights {
		if !l.dropLogged && logger.Log != nil {
			logger.Log.Debug("point light capacity reached, dropping",
				zap.Int("capacity", MaxPointLights))
			l.dropLogged = true
		}
		return
	}
	l.points[l.numPoints] = light
	l.numPoints++
}

// NumPoints reports how many point lights are held (at most MaxPointLights).
func (l *Lighting) NumPoints() int {
	return l.numPoints
}

// Points returns the held point lights.
func (l *Lighting) Points() []PointLight {
	return l.points[:l.numPoints]
}

// ClearPoints removes all point lights, keeping the global terms.
func (l *Lighting) ClearPoints() {
	l.numPoints = 0
}

func (a AmbientLight) encode(w *std140.Writer) {
	w.PutVec3(a.Color.X(), a.Color.Y(), a.Color.Z())
	w.PutFloat32(a.Intensity)
}

func (d DirectionalLight) encode(w *std140.Writer) {
	w.PutVec4(d.Position.X(), d.Position.Y(), d.Position.Z(), d.Position.W())
	w.PutVec3(d.Direction.X(), d.Direction.Y(), d.Direction.Z())
	// direction's trailing 4 bytes stay unused; color re-aligns to 16
	w.PutVec3(d.Color.X(), d.Color.Y(), d.Color.Z())
	w.PutFloat32(d.Intensity)
}

func (p PointLight) encode(w *std140.Writer) {
	w.PutVec4(p.Position.X(), p.Position.Y(), p.Position.Z(), p.Position.W())
	w.PutVec3(p.Color.X(), p.Color.Y(), p.Color.Z())
	w.PutFloat32(p.Intensity)
}

// encodePoints writes the fixed-size point light array: numPoints live
// entries followed by zeroed slots up to MaxPointLights.
func encodePoints(w *std140.Writer, l *Lighting) {
	base := std140.Align(w.Offset(), std140.AlignVec4)
	w.Pad(base)
	for i := 0; i < MaxPointLights; i++ {
		w.Pad(base + i*pointLightSize)
		if l != nil && i < l.numPoints {
			l.points[i].encode(w)
		} else {
			w.PutVec4(0, 0, 0, 0)
			w.PutVec3(0, 0, 0)
			w.PutFloat32(0)
		}
	}
	w.Pad(base + MaxPointLights*pointLightSize)
}

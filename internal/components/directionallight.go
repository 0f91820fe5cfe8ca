package components

import (
	"math"

	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type DirectionalLight struct {
	engine.BaseComponent
	Direction      rl.Vector3
	Color          rl.Color
	Intensity      float32
	AmbientColor   rl.Color
	ShadowDistance float32
	CastShadow     bool
}

// NewDirectionalLight creates a sun shining from position towards the origin.
func NewDirectionalLight(position rl.Vector3, intensity float32) *DirectionalLight {
	return &DirectionalLight{
		Direction:      rl.Vector3Normalize(rl.Vector3Negate(position)),
		Color:          rl.White,
		Intensity:      intensity,
		AmbientColor:   rl.NewColor(25, 25, 25, 255),
		ShadowDistance: 50.0,
		CastShadow:     true,
	}
}

func (l *DirectionalLight) GetLightCamera(orthoSize float32) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3Scale(l.Direction, -l.ShadowDistance),
		Target:     rl.Vector3Zero(),
		Up:         l.lightCameraUp(),
		Fovy:       orthoSize,
		Projection: rl.CameraOrthographic,
	}
}

// GetColorFloat returns the light color scaled by intensity. The shader
// expects a physically-unscaled value around 1, so intensity is divided
// down from the authored units.
func (l *DirectionalLight) GetColorFloat() []float32 {
	scale := l.Intensity / 5
	return []float32{
		float32(l.Color.R) / 255.0 * scale,
		float32(l.Color.G) / 255.0 * scale,
		float32(l.Color.B) / 255.0 * scale,
		1.0,
	}
}

func (l *DirectionalLight) GetAmbientFloat() []float32 {
	return []float32{
		float32(l.AmbientColor.R) / 255.0,
		float32(l.AmbientColor.G) / 255.0,
		float32(l.AmbientColor.B) / 255.0,
		1.0,
	}
}

func (l *DirectionalLight) lightCameraUp() rl.Vector3 {
	if math.Abs(float64(l.Direction.Y)) > 0.9 {
		return rl.Vector3{X: 0, Y: 0, Z: 1}
	}
	return rl.Vector3{X: 0, Y: 1, Z: 0}
}

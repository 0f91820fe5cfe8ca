package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input is the pointer state for one frame.
type Input struct {
	Delta    rl.Vector2
	Wheel    float32
	Rotating bool
}

// PollInput reads the mouse. Left drag rotates, the wheel zooms.
func PollInput() Input {
	return Input{
		Delta:    rl.GetMouseDelta(),
		Wheel:    rl.GetMouseWheelMove(),
		Rotating: rl.IsMouseButtonDown(rl.MouseLeftButton),
	}
}

// OrbitControls keeps the camera on a sphere around Target. Azimuth is
// measured from +Z towards +X, elevation from the XZ plane, both in radians.
type OrbitControls struct {
	Target    rl.Vector3
	Radius    float32
	Azimuth   float32
	Elevation float32

	MinRadius    float32
	MaxRadius    float32
	MinElevation float32
	MaxElevation float32

	RotateSpeed float32 // radians per pixel dragged
	ZoomSpeed   float32
	// Damping is the share of pending motion applied each update. Zero or
	// one applies input immediately.
	Damping float32
	Fovy    float32

	azimuthVel   float32
	elevationVel float32
}

func New(position, target rl.Vector3) *OrbitControls {
	c := &OrbitControls{
		Target:       target,
		MinRadius:    1,
		MaxRadius:    80,
		MinElevation: -math32.Pi/2 + 0.01,
		MaxElevation: math32.Pi/2 - 0.01,
		RotateSpeed:  0.005,
		ZoomSpeed:    1,
		Damping:      0.1,
		Fovy:         75,
	}
	c.LookFrom(position)
	return c
}

// LookFrom places the camera at position, keeping the target.
func (c *OrbitControls) LookFrom(position rl.Vector3) {
	offset := rl.Vector3Subtract(position, c.Target)
	c.Radius = rl.Vector3Length(offset)
	if c.Radius == 0 {
		return
	}
	c.Azimuth = math32.Atan2(offset.X, offset.Z)
	c.Elevation = math32.Asin(offset.Y / c.Radius)
	c.azimuthVel, c.elevationVel = 0, 0
}

func (c *OrbitControls) Update(in Input) {
	if in.Rotating {
		c.azimuthVel -= in.Delta.X * c.RotateSpeed
		c.elevationVel += in.Delta.Y * c.RotateSpeed
	}
	if in.Wheel != 0 {
		c.Radius *= math32.Pow(0.95, in.Wheel*c.ZoomSpeed)
	}

	k := c.Damping
	if k <= 0 || k > 1 {
		k = 1
	}
	c.Azimuth += c.azimuthVel * k
	c.Elevation += c.elevationVel * k
	c.azimuthVel *= 1 - k
	c.elevationVel *= 1 - k

	c.clamp()
}

func (c *OrbitControls) clamp() {
	if c.Elevation > c.MaxElevation {
		c.Elevation = c.MaxElevation
		c.elevationVel = 0
	}
	if c.Elevation < c.MinElevation {
		c.Elevation = c.MinElevation
		c.elevationVel = 0
	}
	if c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}

func (c *OrbitControls) Position() rl.Vector3 {
	cosEl := math32.Cos(c.Elevation)
	return rl.Vector3{
		X: c.Target.X + c.Radius*cosEl*math32.Sin(c.Azimuth),
		Y: c.Target.Y + c.Radius*math32.Sin(c.Elevation),
		Z: c.Target.Z + c.Radius*cosEl*math32.Cos(c.Azimuth),
	}
}

func (c *OrbitControls) Camera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

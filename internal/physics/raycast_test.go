package physics

import (
	"testing"

	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWidth  = 1600
	testHeight = 900
	testAspect = float32(testWidth) / testHeight
	testNear   = float32(0.1)
	testFar    = float32(100)
)

func defaultCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3{X: 3, Y: 10, Z: 20},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Y: 1},
		Fovy:       75,
		Projection: rl.CameraPerspective,
	}
}

// project maps a world point to NDC through raylib's own screen projection.
func project(p rl.Vector3, cam rl.Camera3D) rl.Vector2 {
	px := rl.GetWorldToScreenEx(p, cam, testWidth, testHeight)
	return ToNDC(px.X, px.Y, testWidth, testHeight)
}

// onDoor maps a point of the door's local plane to world space.
func onDoor(d *engine.GameObject, x, z float32) rl.Vector3 {
	return rl.Vector3Transform(rl.Vector3{X: x, Z: z}, d.WorldMatrix())
}

// door mirrors the scene's door: a 0.8 x 1.2 plane stood upright in front
// of the house.
func door() *engine.GameObject {
	house := engine.NewGameObject("House")
	d := engine.NewGameObject("Door")
	d.Transform.Position = rl.Vector3{X: 0, Y: -0.4, Z: 1.001}
	d.Transform.Rotation.X = 90
	house.AddChild(d)
	return d
}

func TestToNDC(t *testing.T) {
	assert.Equal(t, rl.Vector2{X: -1, Y: 1}, ToNDC(0, 0, 800, 600))
	assert.Equal(t, rl.Vector2{X: 0, Y: 0}, ToNDC(400, 300, 800, 600))
	assert.Equal(t, rl.Vector2{X: 1, Y: -1}, ToNDC(800, 600, 800, 600))
}

func TestRayFromNDCCenterPointsAtTarget(t *testing.T) {
	cam := defaultCamera()
	ray := RayFromNDC(rl.Vector2{}, cam, testAspect, testNear, testFar)

	want := rl.Vector3Normalize(rl.Vector3Subtract(cam.Target, cam.Position))
	assert.InDelta(t, want.X, ray.Direction.X, 1e-4)
	assert.InDelta(t, want.Y, ray.Direction.Y, 1e-4)
	assert.InDelta(t, want.Z, ray.Direction.Z, 1e-4)
	assert.InDelta(t, testNear, rl.Vector3Distance(ray.Position, cam.Position), 1e-2)
}

func TestRayFromNDCMatchesRaylib(t *testing.T) {
	cam := defaultCamera()
	for _, px := range []rl.Vector2{{X: 800, Y: 450}, {X: 100, Y: 50}, {X: 1500, Y: 800}} {
		want := rl.GetScreenToWorldRayEx(px, cam, testWidth, testHeight)
		got := RayFromNDC(ToNDC(px.X, px.Y, testWidth, testHeight), cam, testAspect, testNear, testFar)

		assert.InDelta(t, want.Direction.X, got.Direction.X, 1e-3, "pixel %v", px)
		assert.InDelta(t, want.Direction.Y, got.Direction.Y, 1e-3, "pixel %v", px)
		assert.InDelta(t, want.Direction.Z, got.Direction.Z, 1e-3, "pixel %v", px)
		assert.Less(t, rl.Vector3Distance(got.Position, cam.Position), float32(0.2))
	}
}

func TestRaycastQuad(t *testing.T) {
	flat := rl.MatrixIdentity()
	down := rl.Ray{Position: rl.Vector3{Y: 5}, Direction: rl.Vector3{Y: -1}}

	hit, ok := RaycastQuad(down, flat, 2, 2, 100)
	require.True(t, ok)
	assert.InDelta(t, 5, hit.Distance, 1e-5)
	assert.InDelta(t, 1, hit.Normal.Y, 1e-5)

	offset := rl.Ray{Position: rl.Vector3{X: 1.5, Y: 5}, Direction: rl.Vector3{Y: -1}}
	_, ok = RaycastQuad(offset, flat, 2, 2, 100)
	assert.False(t, ok)

	parallel := rl.Ray{Position: rl.Vector3{Y: 1}, Direction: rl.Vector3{X: 1}}
	_, ok = RaycastQuad(parallel, flat, 2, 2, 100)
	assert.False(t, ok)

	_, ok = RaycastQuad(down, rl.MatrixTranslate(0, 10, 0), 2, 2, 100)
	assert.False(t, ok, "plane behind the ray")
}

func TestPickerHitsDoorFromDefaultCamera(t *testing.T) {
	cam := defaultCamera()
	d := door()
	picker := NewPicker(testFar)
	picker.Add(d, Quad{Width: 0.8, Length: 1.2})

	center := d.WorldPosition()
	ray := RayFromNDC(project(center, cam), cam, testAspect, testNear, testFar)

	hit, ok := picker.Pick(ray)
	require.True(t, ok)
	assert.Same(t, d, hit.GameObject)
	assert.InDelta(t, center.X, hit.Point.X, 1e-2)
	assert.InDelta(t, center.Y, hit.Point.Y, 1e-2)
	assert.InDelta(t, center.Z, hit.Point.Z, 1e-2)
	assert.Greater(t, hit.Normal.Z, float32(0.99))
}

func TestPickerHitsDoorNearCorners(t *testing.T) {
	cam := defaultCamera()
	d := door()
	picker := NewPicker(testFar)
	picker.Add(d, Quad{Width: 0.8, Length: 1.2})

	for _, c := range [][2]float32{{0.35, 0.55}, {-0.35, 0.55}, {0.35, -0.55}, {-0.35, -0.55}} {
		p := onDoor(d, c[0], c[1])
		hit, ok := picker.Pick(RayFromNDC(project(p, cam), cam, testAspect, testNear, testFar))
		require.True(t, ok, "corner %v", c)
		assert.InDelta(t, 0, rl.Vector3Distance(p, hit.Point), 1e-2, "corner %v", c)
	}
}

func TestPickerMissesJustOutsideDoor(t *testing.T) {
	cam := defaultCamera()
	d := door()
	picker := NewPicker(testFar)
	picker.Add(d, Quad{Width: 0.8, Length: 1.2})

	outside := [][2]float32{{0.45, 0}, {-0.45, 0}, {0, 0.65}, {0, -0.65}}
	for _, c := range outside {
		ray := RayFromNDC(project(onDoor(d, c[0], c[1]), cam), cam, testAspect, testNear, testFar)
		_, ok := picker.Pick(ray)
		assert.False(t, ok, "edge %v", c)
	}
	for _, ndc := range []rl.Vector2{{X: 0.9, Y: 0.9}, {X: -0.9, Y: -0.9}} {
		_, ok := picker.Pick(RayFromNDC(ndc, cam, testAspect, testNear, testFar))
		assert.False(t, ok, "ndc %v", ndc)
	}
}

func TestPickerNearestAndHidden(t *testing.T) {
	near := engine.NewGameObject("Near")
	near.Transform.Position = rl.Vector3{Y: 5}
	far := engine.NewGameObject("Far")

	picker := NewPicker(100)
	picker.Add(far, Quad{Width: 2, Length: 2})
	picker.Add(near, Quad{Width: 2, Length: 2})
	require.Equal(t, 2, picker.Len())

	ray := rl.Ray{Position: rl.Vector3{Y: 20}, Direction: rl.Vector3{Y: -1}}
	hit, ok := picker.Pick(ray)
	require.True(t, ok)
	assert.Same(t, near, hit.GameObject)
	assert.InDelta(t, 15, hit.Distance, 1e-4)

	near.Active = false
	hit, ok = picker.Pick(ray)
	require.True(t, ok)
	assert.Same(t, far, hit.GameObject)
}

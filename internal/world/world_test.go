package world

import (
	"math/rand"
	"testing"

	"diorama/internal/components"
	"diorama/internal/engine"
	"diorama/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld() *World {
	w := New()
	w.GenModel = func(MeshSpec) rl.Model { return rl.Model{} }
	return w
}

func TestProps(t *testing.T) {
	props := Props()
	require.Len(t, props, 4)

	names := []string{props[0].Name, props[1].Name, props[2].Name, props[3].Name}
	assert.Equal(t, []string{PropHouse, PropRoof, PropDoor, PropGround}, names)

	door := props[2]
	assert.Equal(t, rl.Vector3{X: 0, Y: -0.4, Z: 1.001}, door.Position)
	assert.Equal(t, Plane(0.8, 1.2), door.Mesh)
	assert.False(t, door.Scalable)

	ground := props[3]
	assert.Equal(t, float32(-1), ground.Position.Y)
	assert.True(t, ground.ReceiveShadow)
	assert.Equal(t, uint32(0x00ff00), ground.Color)

	roof := props[1]
	assert.Equal(t, Cone(1.8, 1.5, 30), roof.Mesh)
	assert.Equal(t, float32(1.7), roof.Position.Y)
}

func TestBushesWithinBounds(t *testing.T) {
	bushes := Bushes(200, rand.New(rand.NewSource(1)))
	require.Len(t, bushes, 200)
	for _, b := range bushes {
		assert.GreaterOrEqual(t, b.Radius, float32(0.5))
		assert.Less(t, b.Radius, float32(0.8))
		assert.GreaterOrEqual(t, b.Position.X, float32(-14))
		assert.Less(t, b.Position.X, float32(14))
		assert.GreaterOrEqual(t, b.Position.Z, float32(-14))
		assert.Less(t, b.Position.Z, float32(14))
		assert.Equal(t, float32(-0.5), b.Position.Y)
	}
	assert.Empty(t, Bushes(0, rand.New(rand.NewSource(1))))
}

func TestFlowersAreSeeded(t *testing.T) {
	a := Flowers(10, rand.New(rand.NewSource(7)))
	b := Flowers(10, rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
	for _, f := range a {
		assert.Equal(t, uint8(255), f.Color.A)
	}
}

func TestMeshSpec(t *testing.T) {
	assert.Equal(t, float32(-0.75), Cone(1.8, 1.5, 30).BaseOffset())
	assert.Equal(t, float32(-0.25), FlowerStem.BaseOffset())
	assert.Zero(t, Cube(2, 2, 2).BaseOffset())
	assert.Zero(t, Plane(30, 30).BaseOffset())

	assert.InDelta(t, 1.7320508, Cube(2, 2, 2).BoundingRadius(), 1e-5)
	assert.InDelta(t, 0.5, Plane(0.6, 0.8).BoundingRadius(), 1e-5)
	assert.Equal(t, float32(0.7), Sphere(0.7, 10, 10).BoundingRadius())
}

func TestBuild(t *testing.T) {
	w := newTestWorld()
	prepared := 0
	w.Build(Options{Bushes: 15, Flowers: 10, Rand: rand.New(rand.NewSource(3)), Prepare: func(*components.ModelRenderer) { prepared++ }})

	// 4 props, 15 bushes, 10 flowers of two meshes each
	assert.Equal(t, 4+15+20, prepared)
	assert.Len(t, w.Scene.FindByTag("bush"), 15)
	assert.Len(t, w.Scene.FindByTag("flower"), 10)
	assert.Len(t, w.Scene.FindByTag("prop"), 4)
	require.NotNil(t, w.Sun)
	assert.Equal(t, float32(5), w.Sun.Intensity)
	assert.True(t, w.Sun.CastShadow)

	door := w.Prop(PropDoor)
	require.NotNil(t, door)
	assert.Same(t, door, engine.GetComponent[*components.ModelRenderer](door).GetGameObject())
	assert.Equal(t, float32(90), door.Transform.Rotation.X)

	// The roof's cone is lowered onto a child so the prop node stays centered
	roof := w.Prop(PropRoof)
	require.Len(t, roof.Children, 1)
	assert.Equal(t, float32(-0.75), roof.Children[0].Transform.Position.Y)
	assert.Same(t, roof.Children[0], w.PropRenderer(PropRoof).GetGameObject())

	assert.True(t, w.PropRenderer(PropGround).ReceiveShadow)
	assert.Equal(t, components.HexColor(0xF5F5DC), w.PropRenderer(PropHouse).Material.Color)
}

func TestBuildFlowers(t *testing.T) {
	w := newTestWorld()
	w.Build(Options{Flowers: 3, Rand: rand.New(rand.NewSource(5))})

	for _, flower := range w.Scene.FindByTag("flower") {
		light := engine.GetComponent[*components.PointLight](flower)
		require.NotNil(t, light)
		assert.Equal(t, float32(1), light.Intensity)
		assert.Equal(t, float32(3), light.Radius)

		blossom := flower.Children[1]
		r := engine.GetComponent[*components.ModelRenderer](blossom.Children[0])
		require.NotNil(t, r)
		assert.Equal(t, light.Color, r.Material.Emissive)
		assert.Equal(t, float32(1), r.Material.EmissiveIntensity)
		assert.Equal(t, float32(180), blossom.Transform.Rotation.X)
	}
}

func TestCollectPointLights(t *testing.T) {
	w := newTestWorld()
	w.Build(Options{Flowers: 20, Rand: rand.New(rand.NewSource(9))})

	assert.Len(t, CollectPointLights(w.Scene, MaxPointLights), MaxPointLights)

	w.Scene.FindByName("Flowers").Active = false
	assert.Empty(t, CollectPointLights(w.Scene, MaxPointLights))
}

func TestCollectPointLightsSkipsDisabled(t *testing.T) {
	w := newTestWorld()
	w.Build(Options{Flowers: 3, Rand: rand.New(rand.NewSource(2))})

	w.Scene.FindByName("Flower_1").Active = false
	lights := CollectPointLights(w.Scene, MaxPointLights)
	require.Len(t, lights, 2)
	for _, l := range lights {
		assert.True(t, l.Enabled())
	}
}

func TestViewportResize(t *testing.T) {
	v := NewViewport(1280, 720)
	assert.InDelta(t, 16.0/9.0, v.Aspect, 1e-6)
	assert.Equal(t, int32(1280), v.Width)
	assert.Equal(t, int32(720), v.Height)

	assert.True(t, v.Resize(1000, 333))
	assert.InDelta(t, 1000.0/333.0, v.Aspect, 1e-5)
	assert.Equal(t, int32(333), v.Height)

	assert.False(t, v.Resize(0, 0))
	assert.Equal(t, int32(1000), v.Width, "minimized window keeps the last size")
}

func TestFrustumKeepsPropsInView(t *testing.T) {
	cam := rl.Camera3D{Position: rl.Vector3{X: 3, Y: 10, Z: 20}, Up: rl.Vector3{Y: 1}, Fovy: 75}
	f := (&Renderer{}).Frustum(cam, 16.0/9.0, 0.1, 100)

	for _, p := range Props() {
		assert.True(t, f.ContainsSphere(p.Position, p.Mesh.BoundingRadius()), p.Name)
	}
	// The door alone, not padded by the house
	assert.True(t, f.ContainsSphere(rl.Vector3{X: 0, Y: -0.4, Z: 1.001}, 0.01))
	assert.False(t, f.ContainsSphere(rl.Vector3{X: -200}, 1))
	assert.True(t, f.ContainsSphere(rl.Vector3{X: -200}, 300))
	ahead := rl.Vector3Normalize(rl.Vector3Subtract(cam.Target, cam.Position))
	assert.False(t, f.ContainsSphere(rl.Vector3Add(cam.Position, rl.Vector3Scale(ahead, 150)), 1), "past the far plane")
	assert.False(t, f.ContainsSphere(rl.Vector3Subtract(cam.Position, ahead), 0.5), "behind the camera")
}

func TestFrustumCullsPropsBehindCamera(t *testing.T) {
	cam := rl.Camera3D{Position: rl.Vector3{Z: 10}, Target: rl.Vector3{Z: 20}, Up: rl.Vector3{Y: 1}, Fovy: 75}
	f := ExtractFrustum(physics.ViewMatrix(cam), physics.ProjectionMatrix(cam, 16.0/9.0, 0.1, 100))

	culled := map[string]bool{PropHouse: true, PropRoof: true, PropDoor: true, PropGround: false}
	for _, p := range Props() {
		assert.Equal(t, !culled[p.Name], f.ContainsSphere(p.Position, p.Mesh.BoundingRadius()), p.Name)
	}
	assert.True(t, f.ContainsSphere(rl.Vector3{Z: 30}, 1))
}

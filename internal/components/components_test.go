package components

import (
	"testing"

	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKindNames(t *testing.T) {
	assert.Equal(t, "ambientOcclusion", MapAmbientOcclusion.String())
	assert.Equal(t, "alpha", MapAlpha.String())
	assert.Equal(t, "unknown", MapKind(99).String())
}

func TestMapKindBitsAreDistinct(t *testing.T) {
	var all int32
	for k := MapColor; k < mapKindCount; k++ {
		assert.Zero(t, all&k.Bit(), k.String())
		all |= k.Bit()
	}
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, rl.NewColor(0xF5, 0xF5, 0xDC, 255), HexColor(0xF5F5DC))
	assert.Equal(t, rl.NewColor(0, 0x77, 0xbe, 255), HexColor(0x0077be))
}

func TestSetMapWithoutMaterialsIsNoop(t *testing.T) {
	r := NewModelRenderer(rl.Model{}, rl.White)

	r.SetMap(MapNormal, rl.Texture2D{ID: 3})

	assert.False(t, r.Material.Has(MapNormal))
	assert.Zero(t, r.Material.Mask())
}

func TestEmissiveFloat(t *testing.T) {
	m := NewMaterial(rl.White)
	m.Emissive = rl.NewColor(255, 0, 51, 255)
	m.EmissiveIntensity = 2

	got := m.EmissiveFloat()

	assert.InDeltaSlice(t, []float32{2, 0, 0.4}, got, 1e-5)
}

func TestAnimationPlayerLoops(t *testing.T) {
	var applied []int32
	p := newClipPlayer(3, func(f int32) { applied = append(applied, f) })

	p.Advance(1.0 / ClipFrameRate)
	assert.Empty(t, applied, "not playing yet")

	p.Play()
	for range 4 {
		p.Advance(1.0 / ClipFrameRate)
	}

	assert.True(t, p.Playing())
	require.Len(t, applied, 5)
	assert.Equal(t, int32(0), applied[0])
	for _, f := range applied {
		assert.GreaterOrEqual(t, f, int32(0))
		assert.Less(t, f, int32(3))
	}
}

func TestAnimationPlayerSmallStep(t *testing.T) {
	frames := 0
	p := newClipPlayer(30, func(int32) { frames++ })
	p.Play()

	// 0.005s per tick is under a third of a clip frame
	for range 3 {
		p.Advance(0.005)
	}
	assert.Equal(t, int32(0), p.Frame())
	p.Advance(0.005)
	assert.Equal(t, int32(1), p.Frame())
	assert.Equal(t, 5, frames)
}

func TestAnimationPlayerOnceStopsOnLastFrame(t *testing.T) {
	p := newClipPlayer(2, func(int32) {})
	p.Loop = false
	p.Play()

	p.Advance(1)

	assert.False(t, p.Playing())
	assert.Equal(t, int32(1), p.Frame())
}

func TestPointLightFollowsNode(t *testing.T) {
	flower := engine.NewGameObject("Flower")
	flower.Transform.Position = rl.Vector3{X: 2, Y: -0.5, Z: 3}
	light := NewPointLight(rl.Red, 1, 3)
	flower.AddComponent(light)

	assert.Equal(t, flower.Transform.Position, light.GetPosition())
	assert.True(t, light.Enabled())
	flower.Active = false
	assert.False(t, light.Enabled())
	assert.InDeltaSlice(t, []float32{230.0 / 255, 41.0 / 255, 55.0 / 255}, light.GetColorFloat(), 1e-5)
}

func TestDirectionalLightPointsAtOrigin(t *testing.T) {
	sun := NewDirectionalLight(rl.Vector3{X: 15, Y: 50, Z: 25}, 5)

	assert.InDelta(t, 1, rl.Vector3Length(sun.Direction), 1e-5)
	assert.Less(t, sun.Direction.Y, float32(0))
	assert.Equal(t, rl.Vector3{Y: 1}, sun.GetLightCamera(50).Up)
}

package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MapKind names a texture slot of a material.
type MapKind int

const (
	MapColor MapKind = iota
	MapNormal
	MapAmbientOcclusion
	MapRoughness
	MapHeight
	MapMetalness
	MapAlpha
	mapKindCount
)

var mapKindNames = [mapKindCount]string{
	"color", "normal", "ambientOcclusion", "roughness", "height", "metalness", "alpha",
}

func (k MapKind) String() string {
	if k < 0 || k >= mapKindCount {
		return "unknown"
	}
	return mapKindNames[k]
}

// rlIndex is the raylib material map each slot is uploaded to. raylib has no
// alpha slot; the lighting shader samples it from the BRDF slot.
func (k MapKind) rlIndex() int32 {
	switch k {
	case MapColor:
		return int32(rl.MapAlbedo)
	case MapNormal:
		return int32(rl.MapNormal)
	case MapAmbientOcclusion:
		return int32(rl.MapOcclusion)
	case MapRoughness:
		return int32(rl.MapRoughness)
	case MapHeight:
		return int32(rl.MapHeight)
	case MapMetalness:
		return int32(rl.MapMetalness)
	case MapAlpha:
		return int32(rl.MapBrdf)
	}
	return int32(rl.MapAlbedo)
}

// Bit is the MapKind's flag in the shader's mapMask uniform.
func (k MapKind) Bit() int32 {
	return 1 << k
}

// Material is the surface state the lighting shader reads for one renderer.
type Material struct {
	Color             rl.Color
	Emissive          rl.Color
	EmissiveIntensity float32
	// Tint applies Color to the model's first material on every draw.
	// Loaded models keep their own colors.
	Tint bool
	mask int32
}

func NewMaterial(color rl.Color) *Material {
	return &Material{Color: color, Tint: true}
}

// Mask reports which texture slots have been bound.
func (m *Material) Mask() int32 {
	return m.mask
}

func (m *Material) Has(kind MapKind) bool {
	return m.mask&kind.Bit() != 0
}

// EmissiveFloat returns the emissive color scaled by its intensity.
func (m *Material) EmissiveFloat() []float32 {
	return []float32{
		float32(m.Emissive.R) / 255.0 * m.EmissiveIntensity,
		float32(m.Emissive.G) / 255.0 * m.EmissiveIntensity,
		float32(m.Emissive.B) / 255.0 * m.EmissiveIntensity,
	}
}

// HexColor converts 0xRRGGBB to an opaque color.
func HexColor(hex uint32) rl.Color {
	return rl.NewColor(uint8(hex>>16), uint8(hex>>8), uint8(hex), 255)
}

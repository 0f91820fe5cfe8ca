package world

import (
	"math/rand"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Shape int

const (
	ShapeCube Shape = iota
	ShapeCone
	ShapeCylinder
	ShapeSphere
	ShapePlane
)

// MeshSpec describes a generated mesh. Cones and cylinders are centered on
// their node like the other shapes.
type MeshSpec struct {
	Shape        Shape
	Width        float32
	Height       float32
	Length       float32
	Radius       float32
	RadiusTop    float32
	RadiusBottom float32
	Slices       int32
	Rings        int32
}

func Cube(w, h, l float32) MeshSpec {
	return MeshSpec{Shape: ShapeCube, Width: w, Height: h, Length: l}
}

func Cone(radius, height float32, slices int32) MeshSpec {
	return MeshSpec{Shape: ShapeCone, Radius: radius, Height: height, Slices: slices}
}

func Cylinder(radiusTop, radiusBottom, height float32, slices int32) MeshSpec {
	return MeshSpec{Shape: ShapeCylinder, RadiusTop: radiusTop, RadiusBottom: radiusBottom, Height: height, Slices: slices}
}

func Sphere(radius float32, rings, slices int32) MeshSpec {
	return MeshSpec{Shape: ShapeSphere, Radius: radius, Rings: rings, Slices: slices}
}

// Plane lies in XZ and faces +Y.
func Plane(w, l float32) MeshSpec {
	return MeshSpec{Shape: ShapePlane, Width: w, Length: l}
}

// BaseOffset is how far the generated mesh must be lowered to be centered.
// raylib builds cones and cylinders upwards from their base.
func (m MeshSpec) BaseOffset() float32 {
	switch m.Shape {
	case ShapeCone, ShapeCylinder:
		return -m.Height / 2
	}
	return 0
}

// BoundingRadius is the radius of a sphere around the centered mesh.
func (m MeshSpec) BoundingRadius() float32 {
	switch m.Shape {
	case ShapeCube:
		return math32.Sqrt(m.Width*m.Width+m.Height*m.Height+m.Length*m.Length) / 2
	case ShapePlane:
		return math32.Sqrt(m.Width*m.Width+m.Length*m.Length) / 2
	case ShapeSphere:
		return m.Radius
	case ShapeCone:
		return math32.Hypot(m.Radius, m.Height/2)
	case ShapeCylinder:
		return math32.Hypot(max(m.RadiusTop, m.RadiusBottom), m.Height/2)
	}
	return 0
}

// GenModel builds the mesh on the GPU. raylib has no tapered cylinder, so
// cylinders use the mean of both radii.
func GenModel(m MeshSpec) rl.Model {
	var mesh rl.Mesh
	switch m.Shape {
	case ShapeCube:
		mesh = rl.GenMeshCube(m.Width, m.Height, m.Length)
	case ShapeCone:
		mesh = rl.GenMeshCone(m.Radius, m.Height, int(m.Slices))
	case ShapeCylinder:
		mesh = rl.GenMeshCylinder((m.RadiusTop+m.RadiusBottom)/2, m.Height, int(m.Slices))
	case ShapeSphere:
		mesh = rl.GenMeshSphere(m.Radius, int(m.Rings), int(m.Slices))
	case ShapePlane:
		mesh = rl.GenMeshPlane(m.Width, m.Length, 1, 1)
	}
	return rl.LoadModelFromMesh(mesh)
}

// PropSpec is one of the fixed, editable props.
type PropSpec struct {
	Name          string
	Mesh          MeshSpec
	Color         uint32
	Position      rl.Vector3
	Rotation      rl.Vector3 // degrees
	CastShadow    bool
	ReceiveShadow bool
	// Scalable props expose scale controls in the debug panel.
	Scalable bool
}

const (
	PropHouse  = "House"
	PropRoof   = "Roof"
	PropDoor   = "Door"
	PropGround = "Ground"
)

// Props lists the house, its roof and door, and the ground, in panel order.
func Props() []PropSpec {
	return []PropSpec{
		{
			Name:       PropHouse,
			Mesh:       Cube(2, 2, 2),
			Color:      0xF5F5DC,
			CastShadow: true,
			Scalable:   true,
		},
		{
			Name:       PropRoof,
			Mesh:       Cone(1.8, 1.5, 30),
			Color:      0x8B4513,
			Position:   rl.Vector3{Y: 1.7},
			CastShadow: true,
			Scalable:   true,
		},
		{
			Name:       PropDoor,
			Mesh:       Plane(0.8, 1.2),
			Color:      0x8B4513,
			Position:   rl.Vector3{X: 0, Y: -0.4, Z: 1.001},
			Rotation:   rl.Vector3{X: 90},
			CastShadow: true,
		},
		{
			Name:          PropGround,
			Mesh:          Plane(30, 30),
			Color:         0x00ff00,
			Position:      rl.Vector3{Y: -1},
			ReceiveShadow: true,
			Scalable:      true,
		},
	}
}

const (
	ScatterExtent = 14
	BushColor     = 0x006400
	StemColor     = 0x006400
)

func randRange(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

func scatter(rng *rand.Rand, y float32) rl.Vector3 {
	return rl.Vector3{
		X: randRange(rng, -ScatterExtent, ScatterExtent),
		Y: y,
		Z: randRange(rng, -ScatterExtent, ScatterExtent),
	}
}

type BushSpec struct {
	Position rl.Vector3
	Radius   float32
}

// Bushes places n bushes of radius [0.5, 0.8) across the lawn.
func Bushes(n int, rng *rand.Rand) []BushSpec {
	bushes := make([]BushSpec, 0, n)
	for range n {
		radius := randRange(rng, 0.5, 0.8)
		bushes = append(bushes, BushSpec{Position: scatter(rng, -0.5), Radius: radius})
	}
	return bushes
}

type FlowerSpec struct {
	Position rl.Vector3
	Color    rl.Color
}

// Flowers places n flowers of random color across the lawn.
func Flowers(n int, rng *rand.Rand) []FlowerSpec {
	flowers := make([]FlowerSpec, 0, n)
	for range n {
		color := rl.NewColor(uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)), 255)
		flowers = append(flowers, FlowerSpec{Position: scatter(rng, -0.5), Color: color})
	}
	return flowers
}

var (
	FlowerStem      = Cylinder(0.2, 0.1, 0.5, 5)
	FlowerBlossom   = Cone(0.2, 0.3, 5)
	StemOffset      = rl.Vector3{Y: -0.1}
	BlossomOffset   = rl.Vector3{Y: 0.2}
	FlowerLightGain = float32(1)
	FlowerLightSize = float32(3)
)

// SunPosition is where the directional light shines from, towards the origin.
var SunPosition = rl.Vector3{X: 15, Y: 50, Z: 25}

const SunIntensity = 5

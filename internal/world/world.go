package world

import (
	"fmt"
	"math/rand"

	"diorama/internal/components"
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World is the assembled diorama: the fixed props, the scattered bushes and
// flowers, and the sun.
type World struct {
	Scene *engine.Scene
	Sun   *components.DirectionalLight
	// GenModel builds a mesh. It is replaced in tests to avoid a GL context.
	GenModel func(MeshSpec) rl.Model

	props     map[string]*engine.GameObject
	renderers map[string]*components.ModelRenderer
}

func New() *World {
	return &World{
		Scene:     engine.NewScene("Diorama"),
		GenModel:  GenModel,
		props:     make(map[string]*engine.GameObject),
		renderers: make(map[string]*components.ModelRenderer),
	}
}

type Options struct {
	Bushes  int
	Flowers int
	Rand    *rand.Rand
	// Prepare is applied to every renderer created.
	Prepare func(*components.ModelRenderer)
}

// Build adds every static node to the scene and starts it. Birds and the
// text label are attached later by the asset loaders.
func (w *World) Build(opts Options) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	sun := engine.NewGameObject("Sun")
	sun.Transform.Position = SunPosition
	w.Sun = components.NewDirectionalLight(SunPosition, SunIntensity)
	sun.AddComponent(w.Sun)
	w.Scene.AddGameObject(sun)

	for _, spec := range Props() {
		node := engine.NewGameObject(spec.Name)
		node.Tags = []string{"prop"}
		node.Transform.Position = spec.Position
		node.Transform.Rotation = spec.Rotation
		r := w.attachMesh(node, spec.Mesh, components.HexColor(spec.Color), opts.Prepare)
		r.CastShadow = spec.CastShadow
		r.ReceiveShadow = spec.ReceiveShadow
		w.Scene.AddGameObject(node)
		w.props[spec.Name] = node
		w.renderers[spec.Name] = r
	}

	for i, b := range Bushes(opts.Bushes, rng) {
		bush := engine.NewGameObject(fmt.Sprintf("Bush_%d", i))
		bush.Tags = []string{"bush"}
		bush.Transform.Position = b.Position
		r := w.attachMesh(bush, Sphere(b.Radius, 10, 10), components.HexColor(BushColor), opts.Prepare)
		r.CastShadow = true
		w.Scene.AddGameObject(bush)
	}

	flowers := engine.NewGameObject("Flowers")
	for i, f := range Flowers(opts.Flowers, rng) {
		flowers.AddChild(w.buildFlower(i, f, opts.Prepare))
	}
	w.Scene.AddGameObject(flowers)

	w.Scene.Start()
}

func (w *World) buildFlower(i int, spec FlowerSpec, prepare func(*components.ModelRenderer)) *engine.GameObject {
	flower := engine.NewGameObject(fmt.Sprintf("Flower_%d", i))
	flower.Tags = []string{"flower"}
	flower.Transform.Position = spec.Position

	stem := engine.NewGameObject("Stem")
	stem.Transform.Position = StemOffset
	w.attachMesh(stem, FlowerStem, components.HexColor(StemColor), prepare).CastShadow = true
	flower.AddChild(stem)

	blossom := engine.NewGameObject("Blossom")
	blossom.Transform.Position = BlossomOffset
	blossom.Transform.Rotation.X = 180
	r := w.attachMesh(blossom, FlowerBlossom, spec.Color, prepare)
	r.CastShadow = true
	r.Material.Emissive = spec.Color
	r.Material.EmissiveIntensity = 1
	flower.AddChild(blossom)

	flower.AddComponent(components.NewPointLight(spec.Color, FlowerLightGain, FlowerLightSize))
	return flower
}

// attachMesh adds a renderer for mesh to node. Meshes raylib builds from
// their base get an offset child so that node stays at the mesh center.
func (w *World) attachMesh(node *engine.GameObject, mesh MeshSpec, color rl.Color, prepare func(*components.ModelRenderer)) *components.ModelRenderer {
	r := components.NewModelRenderer(w.GenModel(mesh), color)
	r.BoundingRadius = mesh.BoundingRadius()
	if prepare != nil {
		prepare(r)
	}

	target := node
	if off := mesh.BaseOffset(); off != 0 {
		target = engine.NewGameObject(node.Name + "Mesh")
		target.Transform.Position.Y = off
		node.AddChild(target)
	}
	target.AddComponent(r)
	return r
}

// Prop returns the node of a named prop, or nil.
func (w *World) Prop(name string) *engine.GameObject {
	return w.props[name]
}

// PropRenderer returns the renderer whose material a prop's color and
// textures apply to.
func (w *World) PropRenderer(name string) *components.ModelRenderer {
	return w.renderers[name]
}

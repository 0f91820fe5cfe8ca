package game

import (
	"math/rand"
	"time"

	"diorama/internal/assets"
	"diorama/internal/components"
	"diorama/internal/debugpanel"
	"diorama/internal/orbit"
	"diorama/internal/physics"
	"diorama/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Text label placement, in world units.
var (
	LabelPosition = rl.Vector3{X: -0.2, Y: 0.1, Z: 1}
	LabelHeight   = float32(0.05)
)

// DoorSize is the pickable extent of the door plane.
var DoorSize = physics.Quad{Width: 0.8, Length: 1.2}

const panelWidth = 260

// BuildScene assembles the static props, starts every asset load, binds the
// birds to their orbits and wires the door and the debug panel. Loads
// resolve in later Ticks. g.Loader must be set.
func (g *Game) BuildScene(decoder assets.Decoder) {
	cfg := g.Config

	seed := cfg.Scene.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.World.Build(world.Options{
		Bushes:  cfg.Scene.Bushes,
		Flowers: cfg.Scene.Flowers,
		Rand:    rand.New(rand.NewSource(seed)),
		Prepare: g.Renderer.Prepare,
	})
	g.Renderer.SetLight(g.World.Sun)

	textures := &assets.Textures{Loader: g.Loader, Decoder: decoder, Cache: g.Cache}
	textures.LoadSet(assets.HouseTextures(), g.World.PropRenderer(world.PropHouse), nil)
	textures.LoadSet(assets.DoorTextures(), g.World.PropRenderer(world.PropDoor), nil)

	g.Actors = &assets.Actors{
		Loader:   g.Loader,
		Decoder:  decoder,
		Cache:    g.Cache,
		Registry: g.Registry,
		ClipStep: cfg.Animation.ClipStep,
		Scale:    func() float32 { return g.stepScale },
		Prepare:  g.Renderer.Prepare,
	}
	scene := g.World.Scene
	flamingo := g.Actors.LoadActor(scene, assets.BirdSpec("Flamingo", cfg.Assets.Flamingo))
	parrot := g.Actors.LoadActor(scene, assets.BirdSpec("Parrot", cfg.Assets.Parrot))
	g.Animator.Bind(orbit.FlamingoPath(cfg.Animation.OrbitStep), flamingo)
	g.Animator.Bind(orbit.ParrotPath(cfg.Animation.OrbitStep), parrot)

	g.Actors.LoadText(scene, assets.TextSpec{
		Name:     "Label",
		FontPath: cfg.Assets.Font,
		Text:     cfg.Scene.Text,
		Height:   LabelHeight,
		Position: LabelPosition,
	})

	g.Picker = physics.NewPicker(cfg.Render.Far)
	g.Picker.Add(g.World.Prop(world.PropDoor), DoorSize)

	if cfg.Debug.Panel {
		g.Panel = g.buildPanel()
	}
}

func (g *Game) buildPanel() *debugpanel.Panel {
	var colors debugpanel.ColorSource = debugpanel.NewSharedColor(rl.White)
	if g.Config.Debug.IndependentColors {
		colors = debugpanel.NewIndependentColors(rl.White)
	}

	var folders []*debugpanel.Folder
	for _, spec := range world.Props() {
		renderer := g.World.PropRenderer(spec.Name)
		folders = append(folders, debugpanel.NewFolder(spec.Name, g.World.Prop(spec.Name), debugpanel.FolderOptions{
			Scale:  spec.Scalable,
			Colors: colors,
			OnChange: func(c rl.Color) {
				recolor(renderer, c)
			},
		}))
	}
	return debugpanel.New(float32(g.Viewport.Width)-panelWidth-10, 10, panelWidth, folders...)
}

func recolor(r *components.ModelRenderer, c rl.Color) {
	r.Material.Color = c
}

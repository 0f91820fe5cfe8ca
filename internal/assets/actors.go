package assets

import (
	"log"

	"diorama/internal/components"
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ActorSpec describes an animated model loaded into its own group.
type ActorSpec struct {
	Name   string
	Path   string
	Scale  float32
	Height float32
}

func BirdSpec(name, path string) ActorSpec {
	return ActorSpec{Name: name, Path: path, Scale: 0.02, Height: 5}
}

// TextSpec describes a floating text label.
type TextSpec struct {
	Name     string
	FontPath string
	Text     string
	Height   float32
	Position rl.Vector3
}

// Player is the part of an animation player the registry callback needs.
type Player interface {
	Play()
	Advance(dt float32)
}

// Actors attaches asset-backed nodes to the scene.
type Actors struct {
	Loader   *Loader
	Decoder  Decoder
	Cache    *Cache
	Registry *engine.AnimationRegistry
	// ClipStep is the clip time each registry callback advances by. It is
	// read on every call, so changes apply to actors already loaded.
	ClipStep float32
	// Scale multiplies ClipStep on every call, for elapsed-time stepping.
	// Nil means 1.
	Scale func() float32
	// Prepare is applied to every renderer created from a loaded asset,
	// typically to assign the lighting shader.
	Prepare func(r *components.ModelRenderer)
	// NewPlayer binds a clip to a model. Defaults to an AnimationPlayer.
	NewPlayer func(model rl.Model, clip rl.ModelAnimation) Player
	// OnError reports failed loads. Defaults to logging.
	OnError func(path string, err error)
}

func (a *Actors) reportError(path string, err error) {
	if a.OnError != nil {
		a.OnError(path, err)
		return
	}
	log.Printf("Model could not load: %s: %v", path, err)
}

func (a *Actors) clipStep() float32 {
	if a.Scale == nil {
		return a.ClipStep
	}
	return a.ClipStep * a.Scale()
}

func (a *Actors) prepare(r *components.ModelRenderer) {
	if a.Prepare != nil {
		a.Prepare(r)
	}
}

// LoadActor attaches an empty group for spec to scene right away and fills
// it once the model resolves. On failure the group stays empty. The group is
// returned so callers can animate it before the model arrives.
func (a *Actors) LoadActor(scene *engine.Scene, spec ActorSpec) *engine.GameObject {
	group := engine.NewGameObject(spec.Name)
	group.Tags = []string{"actor"}
	scene.AddGameObject(group)

	if cached, ok := a.Cache.Model(spec.Path); ok {
		a.attachActor(group, spec, cached.Model, cached.Clips)
		return group
	}
	a.Loader.Load(spec.Path, func(data []byte) {
		model, anims, err := a.Decoder.Model(data)
		if err != nil {
			a.reportError(spec.Path, err)
			return
		}
		a.Cache.AddModel(spec.Path, model, anims)
		a.attachActor(group, spec, model, anims)
	}, func(err error) {
		a.reportError(spec.Path, err)
	})
	return group
}

func (a *Actors) attachActor(group *engine.GameObject, spec ActorSpec, model rl.Model, anims []rl.ModelAnimation) {
	body := engine.NewGameObject(spec.Name + "Model")
	body.Transform.Scale = rl.Vector3{X: spec.Scale, Y: spec.Scale, Z: spec.Scale}
	body.Transform.Position.Y = spec.Height

	renderer := components.NewModelRendererShared(model)
	renderer.CastShadow = true
	a.prepare(renderer)
	body.AddComponent(renderer)
	group.AddChild(body)

	if len(anims) == 0 {
		return
	}
	newPlayer := a.NewPlayer
	if newPlayer == nil {
		newPlayer = func(model rl.Model, clip rl.ModelAnimation) Player {
			p := components.NewAnimationPlayer(model, clip)
			body.AddComponent(p)
			return p
		}
	}
	player := newPlayer(model, anims[0])
	player.Play()
	a.Registry.Register(func() { player.Advance(a.clipStep()) })
}

// LoadText attaches a text label once its font resolves.
func (a *Actors) LoadText(scene *engine.Scene, spec TextSpec) {
	a.Loader.Load(spec.FontPath, func(data []byte) {
		model, tex, err := a.Decoder.Label(data, spec.Text, spec.Height)
		if err != nil {
			a.reportError(spec.FontPath, err)
			return
		}
		key := spec.FontPath + "#" + spec.Name
		a.Cache.AddModel(key, model, nil)
		a.Cache.AddTexture(key, tex)
		label := engine.NewGameObject(spec.Name)
		label.Transform.Position = spec.Position
		label.Transform.Rotation.X = 90

		renderer := components.NewModelRendererShared(model)
		renderer.Material.Emissive = rl.White
		renderer.Material.EmissiveIntensity = 1
		a.prepare(renderer)
		label.AddComponent(renderer)
		scene.AddGameObject(label)
		label.Start()
	}, func(err error) {
		a.reportError(spec.FontPath, err)
	})
}

package game

import (
	"context"
	"log"
	"path/filepath"

	"diorama/internal/assets"
	"diorama/internal/camera"
	"diorama/internal/components"
	"diorama/internal/config"
	"diorama/internal/debugpanel"
	"diorama/internal/engine"
	"diorama/internal/orbit"
	"diorama/internal/physics"
	"diorama/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Initial camera placement.
var (
	CameraStart  = rl.Vector3{X: 3, Y: 10, Z: 20}
	CameraTarget = rl.Vector3{}
)

// shadowArea is the width the sun's shadow camera covers: the lawn plus a
// margin for props scaled past its edge.
const shadowArea = 30 + 20

type Game struct {
	Config   config.Config
	World    *world.World
	Renderer *world.Renderer
	Viewport *world.Viewport
	Controls *camera.OrbitControls
	Animator *orbit.Animator
	Registry *engine.AnimationRegistry
	Cache    *assets.Cache
	Loader   *assets.Loader
	Actors   *assets.Actors
	Picker   *physics.Picker
	Panel    *debugpanel.Panel

	// Reload delivers new settings, typically from config.Watch.
	Reload <-chan config.Config
	// MaxFrames stops Run after that many frames. Zero runs until the
	// window closes.
	MaxFrames int

	frames    int
	stepScale float32
}

func New(cfg config.Config) *Game {
	stepper, err := orbit.NewStepper(cfg.Animation.StepMode)
	if err != nil {
		log.Printf("%v, using fixed stepping", err)
		stepper = orbit.FixedStep{}
	}

	controls := camera.New(CameraStart, CameraTarget)
	controls.Fovy = cfg.Render.FOV

	return &Game{
		Config:   cfg,
		World:    world.New(),
		Renderer: world.NewRenderer(components.HexColor(cfg.Render.ClearColor), cfg.Render.Shadows),
		Viewport: world.NewViewport(cfg.Window.Width, cfg.Window.Height),
		Controls: controls,
		Animator: orbit.NewAnimator(stepper),
		Registry: engine.NewAnimationRegistry(),
		Cache:    assets.NewCache(),
	}
}

// Run opens the window and drives frames until the window closes, ctx is
// done or MaxFrames is reached. It must be called from the main thread.
func (g *Game) Run(ctx context.Context) error {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if g.Config.Window.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	defer rl.CloseWindow()

	// Vsync paces the loop, one tick per display refresh
	rl.SetTargetFPS(0)

	g.Renderer.Initialize(filepath.Join(g.Config.Assets.Root, "shaders"), shadowArea)

	timeout, err := g.Config.Assets.Timeout()
	if err != nil {
		return err
	}
	fetcher := assets.NewDirFetcher(g.Config.Assets.Root)
	g.Loader = assets.NewLoader(ctx, fetcher, timeout)
	g.BuildScene(assets.RaylibDecoder{})
	g.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	defer g.Unload()

	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			return nil
		case cfg, ok := <-g.Reload:
			if !ok {
				g.Reload = nil
				break
			}
			g.Apply(cfg)
		default:
		}

		g.frame()

		g.frames++
		if g.MaxFrames > 0 && g.frames >= g.MaxFrames {
			break
		}
	}
	return nil
}

func (g *Game) frame() {
	if rl.IsWindowResized() {
		g.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	}

	g.Tick(rl.GetFrameTime())

	mouse := rl.GetMousePosition()
	overPanel := g.Panel != nil && g.Panel.Contains(mouse)
	if !overPanel {
		g.Controls.Update(camera.PollInput())
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		g.HandleClick(mouse)
	}

	g.Draw()
}

// Tick runs one animation step: finished loads attach first, then the
// orbit animator moves the actors, then the registered clip players advance.
// Both use the same stepper scale.
func (g *Game) Tick(deltaTime float32) {
	if g.Loader != nil {
		g.Loader.Poll()
	}
	g.stepScale = g.Animator.Stepper.Scale(deltaTime)
	g.Animator.Tick(deltaTime)
	g.Registry.Invoke()
	g.World.Scene.Update(deltaTime)
}

func (g *Game) Draw() {
	cam := g.Controls.Camera()
	near, far := g.Config.Render.Near, g.Config.Render.Far

	g.Renderer.DrawShadowMap(g.World.Scene)

	rl.BeginDrawing()
	rl.ClearBackground(g.Renderer.ClearColor)

	rl.BeginMode3D(cam)
	rl.SetMatrixProjection(physics.ProjectionMatrix(cam, g.Viewport.Aspect, near, far))
	g.Renderer.DrawScene(g.World.Scene, cam.Position, g.Renderer.Frustum(cam, g.Viewport.Aspect, near, far))
	rl.EndMode3D()

	if g.Panel != nil {
		g.Panel.Draw()
	}
	rl.EndDrawing()
}

func (g *Game) Unload() {
	if g.Loader != nil {
		g.Loader.Close()
	}
	g.Renderer.Unload(g.World.Scene)
	g.Cache.Unload()
}

package game

import (
	"log"

	"diorama/internal/components"
	"diorama/internal/config"
	"diorama/internal/orbit"
)

// Apply takes the live-tunable sections of cfg: animation pacing and the
// render clear color and shadows. Everything else needs a restart.
func (g *Game) Apply(cfg config.Config) {
	stepper, err := orbit.NewStepper(cfg.Animation.StepMode)
	if err != nil {
		log.Printf("Config not applied: %v", err)
		return
	}
	g.Animator.Stepper = stepper
	g.Animator.SetStep(cfg.Animation.OrbitStep)
	if g.Actors != nil {
		g.Actors.ClipStep = cfg.Animation.ClipStep
	}

	g.Renderer.ClearColor = components.HexColor(cfg.Render.ClearColor)
	g.Renderer.Shadows = cfg.Render.Shadows

	g.Config.Animation = cfg.Animation
	g.Config.Render.ClearColor = cfg.Render.ClearColor
	g.Config.Render.Shadows = cfg.Render.Shadows
	log.Printf("Config reloaded: step mode %s, orbit step %g", cfg.Animation.StepMode, cfg.Animation.OrbitStep)
}

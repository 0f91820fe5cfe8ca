// Package orbit moves the flying actors along their scripted paths.
package orbit

import (
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type actor struct {
	path *Path
	node *engine.GameObject
}

// Animator advances every path once per tick and writes the result into the
// node bound to it. The nodes are the pre-attached actor groups, so it works
// whether or not the actor's model has loaded yet.
type Animator struct {
	Stepper Stepper
	actors  []actor
}

func NewAnimator(stepper Stepper) *Animator {
	if stepper == nil {
		stepper = FixedStep{}
	}
	return &Animator{Stepper: stepper}
}

// Bind drives node along path.
func (a *Animator) Bind(path *Path, node *engine.GameObject) {
	a.actors = append(a.actors, actor{path: path, node: node})
}

// Paths returns the bound paths in bind order.
func (a *Animator) Paths() []*Path {
	paths := make([]*Path, len(a.actors))
	for i, ac := range a.actors {
		paths[i] = ac.path
	}
	return paths
}

// SetStep changes the per-tick phase step of every path, keeping each
// path's direction of travel.
func (a *Animator) SetStep(step float32) {
	for _, ac := range a.actors {
		ac.path.Step = copySign(step, ac.path.Step)
		ac.path.Yaw = copySign(step, ac.path.Yaw)
	}
}

func (a *Animator) Tick(deltaTime float32) {
	scale := a.Stepper.Scale(deltaTime)
	for _, ac := range a.actors {
		ac.path.Phase += ac.path.Step * scale
		if ac.node == nil {
			continue
		}
		ac.node.Transform.Position = ac.path.Position()
		ac.node.Transform.Rotation.Y += ac.path.Yaw * scale * rl.Rad2deg
	}
}

func copySign(mag, sign float32) float32 {
	if mag < 0 {
		mag = -mag
	}
	if sign < 0 {
		return -mag
	}
	return mag
}

package orbit

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Path is a scripted flight path: a phase angle advanced every tick and a
// parametric curve mapping the phase to a position.
type Path struct {
	Name   string
	Radius float32
	Phase  float32 // radians, unbounded
	Step   float32 // radians per tick, signed
	Yaw    float32 // radians per tick added to the node's Y rotation
	Curve  func(phase float32) rl.Vector3
}

// Position evaluates the curve at the current phase.
func (p *Path) Position() rl.Vector3 {
	return p.Curve(p.Phase)
}

// FlamingoPath circles at radius 10, bobbing with sin(phase).
func FlamingoPath(step float32) *Path {
	const r = 10
	return &Path{
		Name:   "Flamingo",
		Radius: r,
		Phase:  math32.Pi,
		Step:   step,
		Yaw:    -step,
		Curve: func(p float32) rl.Vector3 {
			return rl.Vector3{
				X: -r * math32.Cos(p),
				Y: math32.Sin(p),
				Z: -r * math32.Sin(p),
			}
		},
	}
}

// ParrotPath circles at radius 4 the other way, at height 1.5 + cos(phase).
func ParrotPath(step float32) *Path {
	const r = 4
	return &Path{
		Name:   "Parrot",
		Radius: r,
		Phase:  math32.Pi,
		Step:   -step,
		Yaw:    step,
		Curve: func(p float32) rl.Vector3 {
			return rl.Vector3{
				X: r * math32.Cos(p),
				Y: 1.5 + math32.Cos(p),
				Z: r * math32.Sin(p),
			}
		},
	}
}

package physics

import (
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape is a pickable surface attached to a node.
type Shape interface {
	Raycast(ray rl.Ray, node *engine.GameObject, maxDistance float32) (RaycastHit, bool)
}

// Quad is a plane rectangle in the node's local XZ plane.
type Quad struct {
	Width  float32
	Length float32
}

func (q Quad) Raycast(ray rl.Ray, node *engine.GameObject, maxDistance float32) (RaycastHit, bool) {
	return RaycastQuad(ray, node.WorldMatrix(), q.Width, q.Length, maxDistance)
}

type target struct {
	node  *engine.GameObject
	shape Shape
}

// Picker tests rays against an explicit list of registered nodes.
type Picker struct {
	MaxDistance float32
	targets     []target
}

func NewPicker(maxDistance float32) *Picker {
	return &Picker{MaxDistance: maxDistance}
}

func (p *Picker) Add(node *engine.GameObject, shape Shape) {
	p.targets = append(p.targets, target{node: node, shape: shape})
}

func (p *Picker) Len() int {
	return len(p.targets)
}

// Pick returns the nearest registered node hit by ray. Hidden nodes are
// skipped.
func (p *Picker) Pick(ray rl.Ray) (RaycastHit, bool) {
	closest := RaycastHit{Distance: p.MaxDistance}
	hit := false

	for _, t := range p.targets {
		if !t.node.Visible() {
			continue
		}
		if h, ok := t.shape.Raycast(ray, t.node, p.MaxDistance); ok && h.Distance < closest.Distance {
			closest = h
			closest.GameObject = t.node
			hit = true
		}
	}
	return closest, hit
}

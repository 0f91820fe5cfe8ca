package game

import (
	"log"

	"diorama/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Resize tracks a new window size. The panel stays pinned to the right edge.
func (g *Game) Resize(width, height int32) {
	if !g.Viewport.Resize(width, height) {
		return
	}
	if g.Panel != nil {
		g.Panel.X = float32(g.Viewport.Width) - g.Panel.Width - 10
	}
}

// HandleClick casts a ray through a pixel and knocks when it lands on the
// door. Clicks on the debug panel are ignored. It reports whether the door
// was hit.
func (g *Game) HandleClick(pixel rl.Vector2) bool {
	if g.Picker == nil {
		return false
	}
	if g.Panel != nil && g.Panel.Contains(pixel) {
		return false
	}

	ndc := physics.ToNDC(pixel.X, pixel.Y, float32(g.Viewport.Width), float32(g.Viewport.Height))
	ray := physics.RayFromNDC(ndc, g.Controls.Camera(), g.Viewport.Aspect, g.Config.Render.Near, g.Config.Render.Far)
	if _, ok := g.Picker.Pick(ray); !ok {
		return false
	}
	log.Println("knock knock")
	return true
}

package world

import "github.com/chewxy/math32"

// Viewport tracks the drawing surface and the camera aspect derived from it.
type Viewport struct {
	Width  int32
	Height int32
	Aspect float32
}

func NewViewport(width, height int32) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Resize recomputes the aspect from the window and sizes the surface to
// (width, width/aspect). Zero sizes, such as a minimized window, are ignored.
func (v *Viewport) Resize(width, height int32) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	v.Aspect = float32(width) / float32(height)
	v.Width = width
	v.Height = int32(math32.Round(float32(width) / v.Aspect))
	return true
}

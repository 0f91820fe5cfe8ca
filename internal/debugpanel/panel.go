package debugpanel

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	rowHeight    = 20
	rowGap       = 4
	headerHeight = 24
	pickerHeight = 96
	padding      = 8
	labelWidth   = 80
	valueWidth   = 40
)

// Panel draws folders as a column of collapsible groups with raygui.
type Panel struct {
	X, Y    float32
	Width   float32
	Folders []*Folder
}

func New(x, y, width float32, folders ...*Folder) *Panel {
	return &Panel{X: x, Y: y, Width: width, Folders: folders}
}

func folderHeight(f *Folder) float32 {
	h := float32(headerHeight)
	if !f.Open {
		return h
	}
	rows := len(f.Floats)
	if f.Visible != nil {
		rows++
	}
	h += float32(rows)*(rowHeight+rowGap) + padding
	if f.Color != nil {
		h += pickerHeight + rowGap
	}
	return h
}

// Bounds returns the screen area the panel covers.
func (p *Panel) Bounds() rl.Rectangle {
	h := float32(0)
	for _, f := range p.Folders {
		h += folderHeight(f) + rowGap
	}
	return rl.Rectangle{X: p.X, Y: p.Y, Width: p.Width, Height: h}
}

// Contains reports whether a screen point lies over the panel.
func (p *Panel) Contains(point rl.Vector2) bool {
	b := p.Bounds()
	return point.X >= b.X && point.X < b.X+b.Width &&
		point.Y >= b.Y && point.Y < b.Y+b.Height
}

func (p *Panel) Draw() {
	y := p.Y
	for _, f := range p.Folders {
		p.drawFolder(f, y)
		y += folderHeight(f) + rowGap
	}
}

func (p *Panel) drawFolder(f *Folder, y float32) {
	arrow := "#115#"
	if f.Open {
		arrow = "#116#"
	}
	header := rl.Rectangle{X: p.X, Y: y, Width: p.Width, Height: headerHeight}
	if gui.Button(header, arrow+f.Title) {
		f.Open = !f.Open
	}
	if !f.Open {
		return
	}

	body := rl.Rectangle{X: p.X, Y: y + headerHeight, Width: p.Width, Height: folderHeight(f) - headerHeight}
	gui.GroupBox(body, "")

	x := p.X + padding
	w := p.Width - 2*padding
	rowY := body.Y + padding

	if f.Visible != nil {
		checked := gui.CheckBox(rl.Rectangle{X: x, Y: rowY, Width: rowHeight, Height: rowHeight}, f.Visible.Label, f.Visible.Get())
		if checked != f.Visible.Get() {
			f.Visible.Set(checked)
		}
		rowY += rowHeight + rowGap
	}

	for _, c := range f.Floats {
		bounds := rl.Rectangle{X: x + labelWidth, Y: rowY, Width: w - labelWidth - valueWidth, Height: rowHeight}
		v := gui.Slider(bounds, c.Label, fmt.Sprintf("%.2f", c.Get()), c.Get(), c.Min, c.Max)
		if v != c.Get() {
			c.Set(v)
		}
		rowY += rowHeight + rowGap
	}

	if f.Color != nil {
		// raygui draws the hue bar to the right of the picker
		bounds := rl.Rectangle{X: x, Y: rowY, Width: w - 30, Height: pickerHeight}
		current := f.Color.Get()
		picked := gui.ColorPicker(bounds, f.Color.Label, current)
		if picked != current {
			f.Color.Set(picked)
		}
	}
}

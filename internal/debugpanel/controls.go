package debugpanel

import (
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	PositionMin = -3
	PositionMax = 3
	ScaleMin    = 0.1
	ScaleMax    = 2
)

// Float edits a float32 in place within [Min, Max].
type Float struct {
	Label    string
	Value    *float32
	Min, Max float32
}

func (f *Float) Get() float32 {
	return *f.Value
}

// Set stores v clamped to the control's range.
func (f *Float) Set(v float32) {
	*f.Value = min(max(v, f.Min), f.Max)
}

// Toggle edits a bool in place.
type Toggle struct {
	Label string
	Value *bool
}

func (t *Toggle) Get() bool {
	return *t.Value
}

func (t *Toggle) Set(v bool) {
	*t.Value = v
}

// ColorSource stores the value shown by color controls.
type ColorSource interface {
	Color(folder string) rl.Color
	SetColor(folder string, c rl.Color)
}

// SharedColor is a single value behind every folder's color control.
// Editing it from one folder recolors only that folder's prop, but every
// control then shows the new value.
type SharedColor struct {
	Value rl.Color
}

func NewSharedColor(c rl.Color) *SharedColor {
	return &SharedColor{Value: c}
}

func (s *SharedColor) Color(string) rl.Color {
	return s.Value
}

func (s *SharedColor) SetColor(_ string, c rl.Color) {
	s.Value = c
}

// IndependentColors keeps one value per folder.
type IndependentColors struct {
	Initial rl.Color
	values  map[string]rl.Color
}

func NewIndependentColors(initial rl.Color) *IndependentColors {
	return &IndependentColors{Initial: initial, values: make(map[string]rl.Color)}
}

func (s *IndependentColors) Color(folder string) rl.Color {
	if c, ok := s.values[folder]; ok {
		return c
	}
	return s.Initial
}

func (s *IndependentColors) SetColor(folder string, c rl.Color) {
	s.values[folder] = c
}

// Color is a color control. Set writes the source and then runs OnChange.
type Color struct {
	Label    string
	folder   string
	source   ColorSource
	OnChange func(rl.Color)
}

func (c *Color) Get() rl.Color {
	return c.source.Color(c.folder)
}

func (c *Color) Set(v rl.Color) {
	c.source.SetColor(c.folder, v)
	if c.OnChange != nil {
		c.OnChange(v)
	}
}

// Folder groups the controls bound to one prop.
type Folder struct {
	Title   string
	Open    bool
	Visible *Toggle
	Floats  []*Float
	Color   *Color
}

// FolderOptions selects which controls NewFolder binds.
type FolderOptions struct {
	Scale    bool
	Colors   ColorSource
	OnChange func(rl.Color)
}

// NewFolder binds the visibility flag, position and optionally scale of
// node, plus a color control writing through opts.Colors.
func NewFolder(title string, node *engine.GameObject, opts FolderOptions) *Folder {
	f := &Folder{
		Title:   title,
		Visible: &Toggle{Label: "Visible", Value: &node.Active},
	}
	pos := &node.Transform.Position
	f.Floats = append(f.Floats,
		&Float{Label: "Position X", Value: &pos.X, Min: PositionMin, Max: PositionMax},
		&Float{Label: "Position Y", Value: &pos.Y, Min: PositionMin, Max: PositionMax},
		&Float{Label: "Position Z", Value: &pos.Z, Min: PositionMin, Max: PositionMax},
	)
	if opts.Scale {
		scale := &node.Transform.Scale
		f.Floats = append(f.Floats,
			&Float{Label: "Scale X", Value: &scale.X, Min: ScaleMin, Max: ScaleMax},
			&Float{Label: "Scale Y", Value: &scale.Y, Min: ScaleMin, Max: ScaleMax},
			&Float{Label: "Scale Z", Value: &scale.Z, Min: ScaleMin, Max: ScaleMax},
		)
	}
	if opts.Colors != nil {
		f.Color = &Color{Label: "Color", folder: title, source: opts.Colors, OnChange: opts.OnChange}
	}
	return f
}

// Control returns the float control with the given label, or nil.
func (f *Folder) Control(label string) *Float {
	for _, c := range f.Floats {
		if c.Label == label {
			return c
		}
	}
	return nil
}

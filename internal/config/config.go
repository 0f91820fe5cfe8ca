// Package config loads the diorama settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Window    Window    `toml:"window"`
	Assets    Assets    `toml:"assets"`
	Animation Animation `toml:"animation"`
	Render    Render    `toml:"render"`
	Scene     Scene     `toml:"scene"`
	Debug     Debug     `toml:"debug"`
}

type Window struct {
	Width  int32  `toml:"width"`
	Height int32  `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type Assets struct {
	Root         string `toml:"root"`
	Flamingo     string `toml:"flamingo"`
	Parrot       string `toml:"parrot"`
	Font         string `toml:"font"`
	FetchTimeout string `toml:"fetch_timeout"` // e.g. "10s"; empty means no timeout
}

type Animation struct {
	StepMode  string  `toml:"step_mode"`  // "fixed" or "elapsed"
	OrbitStep float32 `toml:"orbit_step"` // radians per tick
	ClipStep  float32 `toml:"clip_step"`  // seconds of clip time per tick
}

type Render struct {
	ClearColor uint32  `toml:"clear_color"` // 0xRRGGBB
	Shadows    bool    `toml:"shadows"`
	FOV        float32 `toml:"fov"`
	Near       float32 `toml:"near"`
	Far        float32 `toml:"far"`
}

type Scene struct {
	Bushes  int    `toml:"bushes"`
	Flowers int    `toml:"flowers"`
	Seed    int64  `toml:"seed"` // zero picks a time-based seed
	Text    string `toml:"text"`
}

type Debug struct {
	Panel             bool `toml:"panel"`
	IndependentColors bool `toml:"independent_colors"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "Diorama",
			VSync:  true,
		},
		Assets: Assets{
			Root:     "assets",
			Flamingo: "models/Flamingo.glb",
			Parrot:   "models/Parrot.glb",
			Font:     "fonts/gentilis_regular.ttf",
		},
		Animation: Animation{
			StepMode:  "fixed",
			OrbitStep: 0.005,
			ClipStep:  0.005,
		},
		Render: Render{
			ClearColor: 0x0077be,
			Shadows:    true,
			FOV:        75,
			Near:       0.1,
			Far:        100,
		},
		Scene: Scene{
			Bushes:  15,
			Flowers: 10,
			Text:    "mathis.moreau",
		},
		Debug: Debug{
			Panel: true,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg and validates the result.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Animation.StepMode {
	case "fixed", "elapsed":
	default:
		return fmt.Errorf("animation.step_mode: unknown mode %q", c.Animation.StepMode)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Scene.Bushes < 0 || c.Scene.Flowers < 0 {
		return errors.New("scene: prop counts must not be negative")
	}
	if _, err := c.Assets.Timeout(); err != nil {
		return fmt.Errorf("assets.fetch_timeout: %w", err)
	}
	if c.Render.Near <= 0 || c.Render.Far <= c.Render.Near {
		return fmt.Errorf("render: bad clip planes near=%v far=%v", c.Render.Near, c.Render.Far)
	}
	return nil
}

// Timeout parses FetchTimeout. Zero means fetches never time out.
func (a Assets) Timeout() (time.Duration, error) {
	if a.FetchTimeout == "" {
		return 0, nil
	}
	return time.ParseDuration(a.FetchTimeout)
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

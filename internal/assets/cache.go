package assets

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CachedModel is a decoded model and the clips that came with it.
type CachedModel struct {
	Model rl.Model
	Clips []rl.ModelAnimation
}

// Cache keeps every GPU resource created from fetched assets so they can be
// shared by path and released together.
type Cache struct {
	models   map[string]CachedModel
	textures map[string]rl.Texture2D

	// Overridable for tests; default to raylib.
	unloadModel   func(rl.Model)
	unloadClips   func([]rl.ModelAnimation)
	unloadTexture func(rl.Texture2D)
}

func NewCache() *Cache {
	return &Cache{
		models:        make(map[string]CachedModel),
		textures:      make(map[string]rl.Texture2D),
		unloadModel:   rl.UnloadModel,
		unloadClips:   rl.UnloadModelAnimations,
		unloadTexture: rl.UnloadTexture,
	}
}

func (c *Cache) Model(path string) (CachedModel, bool) {
	m, ok := c.models[path]
	return m, ok
}

func (c *Cache) AddModel(path string, model rl.Model, clips []rl.ModelAnimation) {
	c.models[path] = CachedModel{Model: model, Clips: clips}
}

func (c *Cache) Texture(path string) (rl.Texture2D, bool) {
	tex, ok := c.textures[path]
	return tex, ok
}

func (c *Cache) AddTexture(path string, tex rl.Texture2D) {
	c.textures[path] = tex
}

func (c *Cache) Len() int {
	return len(c.models) + len(c.textures)
}

// Unload releases every model, clip set and texture. raylib's UnloadModel
// leaves material textures alone, so textures a model uses must be added
// separately.
func (c *Cache) Unload() {
	for _, m := range c.models {
		if len(m.Clips) > 0 {
			c.unloadClips(m.Clips)
		}
		c.unloadModel(m.Model)
	}
	for _, texture := range c.textures {
		c.unloadTexture(texture)
	}
	c.models = make(map[string]CachedModel)
	c.textures = make(map[string]rl.Texture2D)
}

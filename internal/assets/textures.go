package assets

import (
	"log"
	"path"

	"diorama/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextureSlot is one named map of a material and where to fetch it.
type TextureSlot struct {
	Kind components.MapKind
	Path string
}

// TextureSet is the full set of maps for one material.
type TextureSet struct {
	Name  string
	Slots []TextureSlot
}

func textureSet(name, dir string, files map[components.MapKind]string, order ...components.MapKind) TextureSet {
	set := TextureSet{Name: name}
	for _, kind := range order {
		set.Slots = append(set.Slots, TextureSlot{Kind: kind, Path: path.Join(dir, files[kind])})
	}
	return set
}

func HouseTextures() TextureSet {
	return textureSet("house", "textures/house", map[components.MapKind]string{
		components.MapColor:            "color.jpg",
		components.MapNormal:           "normal.jpg",
		components.MapAmbientOcclusion: "ambientOcclusion.jpg",
		components.MapRoughness:        "roughness.jpg",
	}, components.MapColor, components.MapNormal, components.MapAmbientOcclusion, components.MapRoughness)
}

func DoorTextures() TextureSet {
	return textureSet("door", "textures/door", map[components.MapKind]string{
		components.MapColor:            "color.jpg",
		components.MapAlpha:            "alpha.jpg",
		components.MapNormal:           "normal.jpg",
		components.MapHeight:           "height.jpg",
		components.MapRoughness:        "roughness.jpg",
		components.MapMetalness:        "metalness.jpg",
		components.MapAmbientOcclusion: "ambientOcclusion.jpg",
	}, components.MapColor, components.MapAlpha, components.MapNormal, components.MapHeight,
		components.MapRoughness, components.MapMetalness, components.MapAmbientOcclusion)
}

// MapTarget receives decoded texture maps.
type MapTarget interface {
	SetMap(kind components.MapKind, texture rl.Texture2D)
}

// SlotErrorFunc reports a texture slot that could not be applied.
type SlotErrorFunc func(slot string, err error)

// LogSlotError is the default SlotErrorFunc.
func LogSlotError(slot string, err error) {
	log.Printf("Texture could not load: %s (%v)", slot, err)
}

type Textures struct {
	Loader  *Loader
	Decoder Decoder
	Cache   *Cache
}

// LoadSet fetches every slot of set independently and applies each map to
// target as soon as its own fetch resolves. A failing slot is reported
// through onError and does not affect the others.
func (t *Textures) LoadSet(set TextureSet, target MapTarget, onError SlotErrorFunc) {
	if onError == nil {
		onError = LogSlotError
	}
	for _, slot := range set.Slots {
		if tex, ok := t.Cache.Texture(slot.Path); ok {
			target.SetMap(slot.Kind, tex)
			continue
		}
		t.Loader.Load(slot.Path, func(data []byte) {
			tex, err := t.Decoder.Texture(data)
			if err != nil {
				onError(slot.Kind.String(), err)
				return
			}
			t.Cache.AddTexture(slot.Path, tex)
			target.SetMap(slot.Kind, tex)
		}, func(err error) {
			onError(slot.Kind.String(), err)
		})
	}
}

package assets

import (
	"bytes"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/h2non/filetype"
)

// Decoder turns fetched bytes into GPU resources. It must be called on the
// thread that owns the GL context.
type Decoder interface {
	Model(data []byte) (rl.Model, []rl.ModelAnimation, error)
	Texture(data []byte) (rl.Texture2D, error)
	// Label also returns the text texture so the caller can release it.
	Label(fontData []byte, text string, height float32) (rl.Model, rl.Texture2D, error)
}

var glbMagic = []byte("glTF")

// imageExt sniffs the image format raylib needs to pick a decoder.
func imageExt(data []byte) (string, error) {
	kind, err := filetype.Image(data)
	if err != nil || kind == filetype.Unknown {
		return "", ErrUnknownFormat
	}
	return "." + kind.Extension, nil
}

func fontExt(data []byte) (string, error) {
	kind, err := filetype.Match(data)
	if err != nil || !filetype.IsFont(data) {
		return "", ErrUnknownFormat
	}
	return "." + kind.Extension, nil
}

func checkGLB(data []byte) error {
	if len(data) < 12 || !bytes.Equal(data[:4], glbMagic) {
		return fmt.Errorf("%w: missing glTF binary header", ErrBadModel)
	}
	return nil
}

// RaylibDecoder decodes with raylib.
type RaylibDecoder struct {
	// LabelFontSize is the pixel size text labels are rasterized at.
	LabelFontSize int32
}

// Model loads a binary glTF. raylib only loads models from disk, so the
// bytes go through a temporary file.
func (d RaylibDecoder) Model(data []byte) (rl.Model, []rl.ModelAnimation, error) {
	if err := checkGLB(data); err != nil {
		return rl.Model{}, nil, err
	}
	f, err := os.CreateTemp("", "diorama-*.glb")
	if err != nil {
		return rl.Model{}, nil, err
	}
	defer os.Remove(f.Name())
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return rl.Model{}, nil, err
	}

	model := rl.LoadModel(f.Name())
	if model.MeshCount == 0 {
		return rl.Model{}, nil, fmt.Errorf("%w: no meshes", ErrBadModel)
	}
	return model, rl.LoadModelAnimations(f.Name()), nil
}

func (d RaylibDecoder) Texture(data []byte) (rl.Texture2D, error) {
	ext, err := imageExt(data)
	if err != nil {
		return rl.Texture2D{}, err
	}
	img := rl.LoadImageFromMemory(ext, data, int32(len(data)))
	if img == nil || img.Width == 0 {
		return rl.Texture2D{}, fmt.Errorf("%w: cannot decode %s", ErrUnknownFormat, ext)
	}
	defer rl.UnloadImage(img)

	tex := rl.LoadTextureFromImage(img)
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	return tex, nil
}

// Label rasterizes text with the given font and maps it onto a quad of the
// given world height facing +Y. Callers rotate it upright.
func (d RaylibDecoder) Label(fontData []byte, text string, height float32) (rl.Model, rl.Texture2D, error) {
	ext, err := fontExt(fontData)
	if err != nil {
		return rl.Model{}, rl.Texture2D{}, err
	}
	size := d.LabelFontSize
	if size <= 0 {
		size = 64
	}
	font := rl.LoadFontFromMemory(ext, fontData, size, nil)
	if font.Texture.ID == 0 {
		return rl.Model{}, rl.Texture2D{}, fmt.Errorf("%w: cannot load font", ErrUnknownFormat)
	}
	defer rl.UnloadFont(font)

	img := rl.ImageTextEx(font, text, float32(size), 2, rl.White)
	defer rl.UnloadImage(img)
	if img.Height == 0 {
		return rl.Model{}, rl.Texture2D{}, fmt.Errorf("empty label %q", text)
	}
	tex := rl.LoadTextureFromImage(img)
	rl.SetTextureFilter(tex, rl.FilterBilinear)

	width := height * float32(img.Width) / float32(img.Height)
	model := rl.LoadModelFromMesh(rl.GenMeshPlane(width, height, 1, 1))
	rl.SetMaterialTexture(model.Materials, int32(rl.MapAlbedo), tex)
	return model, tex, nil
}

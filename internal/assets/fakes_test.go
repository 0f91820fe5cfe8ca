package assets

import (
	"context"
	"errors"
	"sync"
	"testing/fstest"

	"diorama/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}
	jpgHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10, 'J', 'F', 'I', 'F', 0}
	glbHeader = []byte{'g', 'l', 'T', 'F', 2, 0, 0, 0, 12, 0, 0, 0}
	ttfHeader = []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x0C, 0x00, 0x80}
)

var errDecode = errors.New("decode failed")

// fakeDecoder stands in for raylib so no GL context is needed.
type fakeDecoder struct {
	nextID uint32
	clips  int
	fail   map[string]bool // keyed by payload
}

func (d *fakeDecoder) Model(data []byte) (rl.Model, []rl.ModelAnimation, error) {
	if d.fail[string(data)] {
		return rl.Model{}, nil, errDecode
	}
	if err := checkGLB(data); err != nil {
		return rl.Model{}, nil, err
	}
	return rl.Model{MeshCount: 1}, make([]rl.ModelAnimation, d.clips), nil
}

func (d *fakeDecoder) Texture(data []byte) (rl.Texture2D, error) {
	if d.fail[string(data)] {
		return rl.Texture2D{}, errDecode
	}
	if _, err := imageExt(data); err != nil {
		return rl.Texture2D{}, err
	}
	d.nextID++
	return rl.Texture2D{ID: d.nextID, Width: 1, Height: 1}, nil
}

func (d *fakeDecoder) Label(fontData []byte, text string, height float32) (rl.Model, rl.Texture2D, error) {
	if _, err := fontExt(fontData); err != nil {
		return rl.Model{}, rl.Texture2D{}, err
	}
	d.nextID++
	return rl.Model{MeshCount: 1}, rl.Texture2D{ID: d.nextID}, nil
}

type fakeTarget struct {
	maps map[components.MapKind]rl.Texture2D
}

func (t *fakeTarget) SetMap(kind components.MapKind, tex rl.Texture2D) {
	if t.maps == nil {
		t.maps = make(map[components.MapKind]rl.Texture2D)
	}
	t.maps[kind] = tex
}

type fakePlayer struct {
	playing  bool
	advanced []float32
}

func (p *fakePlayer) Play()              { p.playing = true }
func (p *fakePlayer) Advance(dt float32) { p.advanced = append(p.advanced, dt) }

// blockingFetcher never returns until its context is cancelled.
type blockingFetcher struct {
	started sync.WaitGroup
}

func (f *blockingFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	f.started.Done()
	<-ctx.Done()
	return nil, ctx.Err()
}

func testFS(files map[string][]byte) FSFetcher {
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: data}
	}
	return FSFetcher{FS: fsys}
}

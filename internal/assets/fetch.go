// Package assets fetches models, fonts and textures off the render thread
// and hands them back to it for decoding and attachment.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

var (
	ErrNotFound      = errors.New("asset not found")
	ErrUnknownFormat = errors.New("unknown asset format")
	ErrBadModel      = errors.New("malformed model")
)

// Fetcher retrieves the raw bytes of an asset.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// FSFetcher reads assets from a file system rooted at the static asset root.
type FSFetcher struct {
	FS fs.FS
}

func (f FSFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimPrefix(path, "/")
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("fetch %s: %w", path, fs.ErrInvalid)
	}
	data, err := fs.ReadFile(f.FS, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("fetch %s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	return data, nil
}

// NewDirFetcher serves assets from a directory on disk.
func NewDirFetcher(root string) FSFetcher {
	return FSFetcher{FS: os.DirFS(root)}
}

package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageExt(t *testing.T) {
	ext, err := imageExt(jpgHeader)
	require.NoError(t, err)
	assert.Equal(t, ".jpg", ext)

	ext, err = imageExt(pngHeader)
	require.NoError(t, err)
	assert.Equal(t, ".png", ext)

	_, err = imageExt([]byte("plain text"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFontExt(t *testing.T) {
	ext, err := fontExt(ttfHeader)
	require.NoError(t, err)
	assert.Equal(t, ".ttf", ext)

	_, err = fontExt(jpgHeader)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestCheckGLB(t *testing.T) {
	assert.NoError(t, checkGLB(glbHeader))
	assert.ErrorIs(t, checkGLB([]byte("glTF")), ErrBadModel)
	assert.ErrorIs(t, checkGLB([]byte(`{"asset":{"version":"2.0"}}`)), ErrBadModel)
}

package resources_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstage/inkstage/resources"
)

func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.White)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageCacheRegisterFromBytes(t *testing.T) {
	c := resources.NewImageCache()
	dims, err := c.Register("logo.png", encodeTestPNG(t, 32, 16))
	require.NoError(t, err)
	assert.Equal(t, resources.ImageDims{Width: 32, Height: 16}, dims)

	looked, ok := c.Lookup("logo.png")
	require.True(t, ok)
	assert.Equal(t, dims, looked)
}

func TestImageCacheRegisterFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "banner.png")
	require.NoError(t, os.WriteFile(path, encodeTestPNG(t, 64, 48), 0o644))

	c := resources.NewImageCache()
	dims, err := c.Register(path, nil)
	require.NoError(t, err)
	assert.Equal(t, resources.ImageDims{Width: 64, Height: 48}, dims)
	assert.Equal(t, 1, c.Len())
}

func TestImageCacheLookupMissingKey(t *testing.T) {
	c := resources.NewImageCache()
	_, ok := c.Lookup("missing.png")
	assert.False(t, ok)
}

package resources

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // format sniffing for DecodeConfig
	_ "image/jpeg" // format sniffing for DecodeConfig
	_ "image/png"  // format sniffing for DecodeConfig
	"os"
)

// ImageDims is a decoded image's intrinsic pixel size, what a layout
// expression needs to size an image() box that wasn't given an explicit
// width/height.
type ImageDims struct {
	Width, Height int
}

// ImageCache maps an image source (by path, or by content hash for
// in-memory data) to its decoded dimensions. Per spec.md §5 it is
// populated single-threaded during step discovery - every image() box a
// deck can ever render is visited once while enumerating steps, before
// any render worker starts - and is read-only for the remainder of a
// render, so no mutex guards the lookup path. Actual pixel decoding
// (rasterizing into a page) stays the render backend's job; this cache
// only answers "how big is it", using the standard library's format
// sniffing rather than a full decoder.
type ImageCache struct {
	dims map[string]ImageDims
}

// NewImageCache returns an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{dims: make(map[string]ImageDims)}
}

// Register decodes the image at path (or, if data is non-nil, the given
// bytes under the key path) and stores its dimensions. Safe to call
// repeatedly for the same key; later calls overwrite earlier ones. Not
// safe to call concurrently with Lookup - callers must finish discovery
// before dispatching render workers, per the package's concurrency note.
func (c *ImageCache) Register(key string, data []byte) (ImageDims, error) {
	var cfg image.Config
	var err error
	if data != nil {
		cfg, _, err = image.DecodeConfig(bytes.NewReader(data))
	} else {
		var f *os.File
		f, err = os.Open(key)
		if err != nil {
			return ImageDims{}, fmt.Errorf("resources: opening image %s: %w", key, err)
		}
		defer f.Close()
		cfg, _, err = image.DecodeConfig(f)
	}
	if err != nil {
		return ImageDims{}, fmt.Errorf("resources: decoding image %s: %w", key, err)
	}

	dims := ImageDims{Width: cfg.Width, Height: cfg.Height}
	c.dims[key] = dims
	return dims, nil
}

// Lookup returns the previously registered dimensions for key.
func (c *ImageCache) Lookup(key string) (ImageDims, bool) {
	dims, ok := c.dims[key]
	return dims, ok
}

// Len reports how many distinct images have been registered.
func (c *ImageCache) Len() int {
	return len(c.dims)
}

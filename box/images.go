package box

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// CollectImageSources walks the tree rooted at b and returns every
// distinct ImageSource reachable through an image() box's stepped
// Source, across every step it is ever defined at (not just the value
// at one particular step). Per spec.md §5 this is meant to run once,
// single-threaded, during step discovery, so a caller can pre-populate
// an image cache (see resources.ImageCache) before dispatching render
// workers instead of re-decoding per page.
func CollectImageSources(b *Box) []ImageSource {
	seen := make(map[string]bool)
	var out []ImageSource

	var walk func(n *Box)
	walk = func(n *Box) {
		if n == nil {
			return
		}
		if ic, ok := n.Content.(ImageContent); ok && ic.Source != nil {
			for _, k := range ic.Source.Keys() {
				src := ic.Source.Get(k, ImageSource{})
				key := imageSourceKey(src)
				if key == "" || seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, src)
			}
		}
		for _, child := range n.Children {
			if cb, ok := child.(*Box); ok {
				walk(cb)
			}
		}
	}
	walk(b)
	return out
}

// imageSourceKey is the dedup/cache key for an ImageSource: its path when
// it has one, else a hash of its in-memory bytes.
func imageSourceKey(src ImageSource) string {
	if src.Path != "" {
		return src.Path
	}
	if len(src.Data) == 0 {
		return ""
	}
	return fmt.Sprintf("inline:%x", xxhash.Sum64(src.Data))
}

// ImageSourceKey exports imageSourceKey for callers (resources.ImageCache
// registration) that need the same identity CollectImageSources used for
// deduplication.
func ImageSourceKey(src ImageSource) string {
	return imageSourceKey(src)
}

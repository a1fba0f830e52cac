// Package resources manages the asset registries a deck renders against:
// font families, code-syntax definitions, code themes, and a decoded-image
// cache. It is the external-adapter boundary spec.md §6 describes (the
// actual font database / text shaper / image decoder stay out of scope);
// this package only tracks what's been registered and resolves a name to
// it, the same registry-of-handles role the teacher's decorator Registry
// plays for decorators.
package resources

import (
	"sync"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Resources is the per-deck asset registry: font families (by generic
// role and by exact name), custom code-syntax/theme names layered on top
// of chroma's built-in lexer/style registries, and a decoded-image cache.
// Registered once during deck setup and step discovery, then read-only for
// the rest of a render (see ImageCache for the concurrency rationale).
type Resources struct {
	mu sync.RWMutex

	genericFamilies map[string]string   // "sans-serif" -> resolved family name
	fonts           map[string][]string // family name -> font file paths, declaration order

	customSyntaxes map[string]string // display name -> source file path
	customThemes   map[string]string // display name -> source file path

	images *ImageCache
}

// New builds a Resources with the original's default generic-family
// mapping (DejaVu Sans / DejaVu Sans Mono) pre-registered; a caller with
// its own font set calls SetGenericFamily to override either.
func New() *Resources {
	r := &Resources{
		genericFamilies: map[string]string{
			"sans-serif": "DejaVu Sans",
			"monospace":  "DejaVu Sans Mono",
		},
		fonts:          make(map[string][]string),
		customSyntaxes: make(map[string]string),
		customThemes:   make(map[string]string),
		images:         NewImageCache(),
	}
	return r
}

// Images returns the deck's decoded-image cache.
func (r *Resources) Images() *ImageCache {
	return r.images
}

// SetGenericFamily binds a CSS-style generic family name ("sans-serif",
// "monospace", "serif") to a concrete font family, the same override point
// the original's set_sans_serif/set_monospace/set_serif expose individually.
func (r *Resources) SetGenericFamily(generic, family string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.genericFamilies[generic] = family
}

// ResolveFont resolves a font name to its registered family, following one
// generic-family indirection if name isn't itself a loaded family. Returns
// ErrFontNotFound (carrying a fuzzy "did you mean" suggestion drawn from
// every loaded family name) when nothing matches.
func (r *Resources) ResolveFont(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.fonts[name]; ok {
		return name, nil
	}
	if generic, ok := r.genericFamilies[name]; ok {
		if _, ok := r.fonts[generic]; ok {
			return generic, nil
		}
		// A generic family may point at a builtin the caller never loaded
		// a file for (tests commonly stub Resources without font files);
		// still honor the mapping rather than treating it as unresolved.
		return generic, nil
	}

	return "", &ErrFontNotFound{Name: name, Suggestion: r.suggestFont(name)}
}

// suggestFont finds the closest loaded family name to name by Levenshtein
// distance, for use in ErrFontNotFound's message. Empty when nothing is
// loaded yet.
func (r *Resources) suggestFont(name string) string {
	candidates := make([]string, 0, len(r.fonts))
	for family := range r.fonts {
		candidates = append(candidates, family)
	}
	ranks := fuzzy.RankFindFold(name, candidates)
	if len(ranks) == 0 {
		return ""
	}
	return ranks[0].Target
}

// Syntaxes lists every known code-syntax name: chroma's built-in lexer
// registry plus any custom names registered via LoadCodeSyntaxDir.
// HighlightCode recognizes only the built-in ones; a custom name gets
// chroma's fallback lexer.
func (r *Resources) Syntaxes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lexers.Names(false)
	for name := range r.customSyntaxes {
		names = append(names, name)
	}
	return names
}

// Themes lists every known code theme name: chroma's built-in style
// registry plus any custom names registered via LoadCodeThemeDir.
// HighlightCode recognizes only the built-in ones; a custom name gets
// chroma's fallback style.
func (r *Resources) Themes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := styles.Names()
	for name := range r.customThemes {
		names = append(names, name)
	}
	return names
}

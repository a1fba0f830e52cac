package resources

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// fontExtensions are the font file suffixes LoadFontsDir recognizes.
var fontExtensions = map[string]bool{
	".ttf": true, ".otf": true, ".ttc": true, ".woff": true, ".woff2": true,
}

// LoadFontsDir registers every font file under dir (recursively) by a
// family name heuristically derived from its filename. There's no
// TTF/OTF name-table parser in reach here, so unlike the original's Rust
// backend (which reads a font's own "family name" record), the family
// name is the filename with its extension stripped and separators turned
// into spaces - good enough to make a font usable by the name a deck
// author would naturally reach for, not a guarantee it matches the
// font's self-declared name.
func (r *Resources) LoadFontsDir(dir string) error {
	matches, err := doublestar.Glob(os.DirFS(dir), "**/*")
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, match := range matches {
		ext := strings.ToLower(filepath.Ext(match))
		if !fontExtensions[ext] {
			continue
		}
		family := familyNameFromFilename(match)
		path := filepath.Join(dir, match)
		r.fonts[family] = append(r.fonts[family], path)
	}
	return nil
}

func familyNameFromFilename(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return strings.Join(strings.Fields(base), " ")
}

// syntaxExtensions are the definition-file suffixes LoadCodeSyntaxDir
// recognizes, matching the original's syntect-backed loader.
var syntaxExtensions = map[string]bool{".sublime-syntax": true}

// LoadCodeSyntaxDir registers every syntax-definition file under dir
// (recursively) under a display name taken from its basename. There is no
// .sublime-syntax parser in reach here (the original's Rust backend uses
// syntect's own), so a custom syntax's highlighting still falls back to
// chroma's Fallback lexer at HighlightCode time; this registry only makes
// the custom name itself a recognized Syntaxes() entry rather than an
// unknown one.
func (r *Resources) LoadCodeSyntaxDir(dir string) error {
	return r.loadNamedDir(dir, syntaxExtensions, r.customSyntaxes)
}

// themeExtensions are the theme-definition file suffixes LoadCodeThemeDir
// recognizes, matching the original's syntect-backed loader.
var themeExtensions = map[string]bool{".tmTheme": true}

// LoadCodeThemeDir registers every theme-definition file under dir
// (recursively) under a display name taken from its basename, with the
// same chroma-fallback caveat LoadCodeSyntaxDir documents.
func (r *Resources) LoadCodeThemeDir(dir string) error {
	return r.loadNamedDir(dir, themeExtensions, r.customThemes)
}

func (r *Resources) loadNamedDir(dir string, extensions map[string]bool, into map[string]string) error {
	matches, err := doublestar.Glob(os.DirFS(dir), "**/*")
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, match := range matches {
		ext := filepath.Ext(match)
		if !extensions[ext] {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(match), ext)
		into[name] = filepath.Join(dir, match)
	}
	return nil
}

// Package manifest loads the optional inkstage.toml/inkstage.yaml resource
// manifest a deck author can drop next to their slide source: generic font
// family bindings, asset directories to feed into resources.Resources, and
// render defaults. Nothing in deck or render requires one; its absence
// just means resources.New()'s built-in defaults stand.
package manifest

// Manifest is the top-level structure both inkstage.toml and
// inkstage.yaml decode into.
type Manifest struct {
	Fonts  FontsConfig  `toml:"fonts" yaml:"fonts"`
	Code   CodeConfig   `toml:"code" yaml:"code"`
	Render RenderConfig `toml:"render" yaml:"render"`
}

// FontsConfig maps to the [fonts] section: generic-family overrides and
// directories to scan for font files.
type FontsConfig struct {
	SansSerif string   `toml:"sans_serif" yaml:"sans_serif"`
	Monospace string   `toml:"monospace" yaml:"monospace"`
	Serif     string   `toml:"serif" yaml:"serif"`
	Dirs      []string `toml:"dirs" yaml:"dirs"`
}

// CodeConfig maps to the [code] section: directories to scan for custom
// syntax/theme definitions.
type CodeConfig struct {
	SyntaxDirs []string `toml:"syntax_dirs" yaml:"syntax_dirs"`
	ThemeDirs  []string `toml:"theme_dirs" yaml:"theme_dirs"`
	Language   string   `toml:"default_language" yaml:"default_language"`
	Theme      string   `toml:"default_theme" yaml:"default_theme"`
}

// RenderConfig maps to the [render] section: default page geometry and
// worker-pool sizing passed through to render.Pool.
type RenderConfig struct {
	Width   float64 `toml:"width" yaml:"width"`
	Height  float64 `toml:"height" yaml:"height"`
	Workers int     `toml:"workers" yaml:"workers"`
}

package manifest

// NewDefaults returns a Manifest populated with the values resources.New
// and render.Pool already fall back to absent a manifest file, so a
// caller can load a partial manifest over top of these rather than
// special-casing zero values throughout.
func NewDefaults() *Manifest {
	return &Manifest{
		Fonts: FontsConfig{
			SansSerif: "DejaVu Sans",
			Monospace: "DejaVu Sans Mono",
		},
		Render: RenderConfig{
			Width:  1920,
			Height: 1080,
		},
	}
}

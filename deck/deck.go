// Package deck is the top-level facade spec.md §6 describes: a deck
// holds default geometry/styling, a slide list, and the resource
// registry every slide renders against. It wires together every other
// package (box/slide/counter/render/layoutengine/resources) the way the
// original's Deck class wires together its Python builder API and Rust
// render backend, without implementing either the layout algorithm or
// the rasterizer itself — those stay the external collaborators
// layoutengine.Engine and Backend define.
package deck

import (
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/inkstage/inkstage/box"
	"github.com/inkstage/inkstage/internal/logx"
	"github.com/inkstage/inkstage/resources"
	"github.com/inkstage/inkstage/slide"
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
	"github.com/inkstage/inkstage/textmodel"
)

const (
	defaultWidth     = 1920.0
	defaultHeight    = 1080.0
	defaultCodeTheme = "monokai"
)

// WatchEvent re-exports the file-system event type an outer watch-mode
// loop (spec.md §5's explicitly external collaborator) reacts to when
// deciding to rebuild and re-render a deck. The core never watches
// anything itself; this alias just gives that loop a stable event type
// to depend on without importing fsnotify directly.
type WatchEvent = fsnotify.Event

// Options configures a new Deck.
type Options struct {
	Width, Height float64
	BgColor       string

	// TextStyle and CodeStyle seed the deck-wide "default"/"code" named
	// styles every slide inherits (see box.Box.GetStyle's ancestor walk);
	// nil leaves neither bound; the base style a text content always
	// merges onto is textmodel.DefaultStyle(), so leaving both unset is
	// a valid deck.
	TextStyle *stepval.StepVal[textmodel.Style]
	CodeStyle *stepval.StepVal[textmodel.Style]

	CodeTheme    string
	CodeLanguage string

	// Resources is the font/syntax/theme/image registry this deck's
	// renders consult. A caller who wants LoadFontsDir etc. applied
	// before any slide is built should pass one in; nil gets
	// resources.New()'s defaults.
	Resources *resources.Resources
}

// Deck is a slide-deck author session: default geometry/style, the slide
// list in declaration order, and the resource registry renders consult.
type Deck struct {
	width, height float64
	bgColor       string
	codeTheme     string
	codeLanguage  string

	scope     *box.Box
	resources *resources.Resources
	slides    []*slide.Slide
	logger    *log.Logger
}

// New builds a Deck. Width/Height default to 1920x1080; CodeTheme
// defaults to "monokai" (chroma's best-known dark theme, matching the
// original's own default pick).
func New(opts Options) *Deck {
	width, height := opts.Width, opts.Height
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}
	codeTheme := opts.CodeTheme
	if codeTheme == "" {
		codeTheme = defaultCodeTheme
	}
	res := opts.Resources
	if res == nil {
		res = resources.New()
	}

	scope := box.New(box.BoxOptions{Name: "deck"})
	if opts.TextStyle != nil {
		scope.SetStyle("default", opts.TextStyle)
	}
	if opts.CodeStyle != nil {
		scope.SetStyle("code", opts.CodeStyle)
	}

	return &Deck{
		width: width, height: height, bgColor: opts.BgColor,
		codeTheme: codeTheme, codeLanguage: opts.CodeLanguage,
		scope:     scope,
		resources: res,
		logger:    logx.New("deck"),
	}
}

// Resources returns the deck's asset registry, for a caller to call
// LoadFontsDir/LoadCodeSyntaxDir/LoadCodeThemeDir/SetGenericFamily on
// before rendering.
func (d *Deck) Resources() *resources.Resources { return d.resources }

// SetStyle binds name to style in the deck's own scope, the outermost
// ancestor of every slide's GetStyle walk. A constant style set under
// "default" is merged over the existing "default" entry, as UpdateStyle
// does, instead of replacing it; a stepped one, or one set over a stepped
// existing entry, replaces it.
func (d *Deck) SetStyle(name string, style *stepval.StepVal[textmodel.Style]) {
	if name == "default" && style != nil && style.Len() == 1 {
		if v, ok := style.GetOk(step.FromInt(1)); ok && d.scope.UpdateStyle(name, v) == nil {
			return
		}
	}
	d.scope.SetStyle(name, style)
}

// UpdateStyle merges style's set fields over the deck-scope constant
// style under name, failing if that style is stepped (see
// box.Box.UpdateStyle).
func (d *Deck) UpdateStyle(name string, style textmodel.Style) error {
	return d.scope.UpdateStyle(name, style)
}

// GetStyle resolves name in the deck's own scope (it has no ancestor, so
// this never walks further than one level).
func (d *Deck) GetStyle(name string) (*stepval.StepVal[textmodel.Style], bool) {
	return d.scope.GetStyle(name)
}

// NewSlide builds a slide and appends it to the deck's slide list,
// defaulting Width/Height/BgColor to the deck's own settings and
// attaching the deck's named-style scope as the slide root's style
// ancestor.
func (d *Deck) NewSlide(opts slide.Options) *slide.Slide {
	if opts.Width == nil {
		opts.Width = stepval.Const(d.width)
	}
	if opts.Height == nil {
		opts.Height = stepval.Const(d.height)
	}
	if opts.BgColor == nil && d.bgColor != "" {
		opts.BgColor = stepval.Const(d.bgColor)
	}

	s := slide.New(opts)
	s.Box.AttachScope(d.scope)
	d.slides = append(d.slides, s)
	d.logger.Debug("slide registered", "name", opts.Name, "index", len(d.slides)-1)
	return s
}

// Slide is the decorator-style counterpart to NewSlide, mirroring the
// original's @deck.slide() decorator: it builds the slide via opts, then
// calls build against it before returning, so a caller can write the
// whole slide body as one literal closure instead of a sequence of
// statements against the returned value.
func (d *Deck) Slide(opts slide.Options, build func(s *slide.Slide)) *slide.Slide {
	s := d.NewSlide(opts)
	if build != nil {
		build(s)
	}
	return s
}

// Slides returns every slide registered so far, in declaration order. The
// returned slice is a copy; appending to it does not affect the deck.
func (d *Deck) Slides() []*slide.Slide {
	return append([]*slide.Slide(nil), d.slides...)
}

// CodeDefaults returns the deck's default code theme/language, consulted
// by a code() box whose own Theme/Language is unset at a given step.
func (d *Deck) CodeDefaults() (theme, language string) {
	return d.codeTheme, d.codeLanguage
}

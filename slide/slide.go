// Package slide implements the Slide/subslide data model and the
// two-pass step discovery and page-ordering it drives: Discover collects
// every step a slide must emit a page for, and Plan walks a whole deck
// producing an ordered job per page, interleaving subslides and advancing
// the current/total counter pair a postprocess hook may read.
package slide

import (
	"sort"

	"github.com/inkstage/inkstage/box"
	"github.com/inkstage/inkstage/counter"
	"github.com/inkstage/inkstage/selector"
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
)

// Postprocess mutates a shallow copy of a slide just before its page at a
// single step is materialised, typically to stamp counter values into
// freshly-added children. current and total are never mutated by the
// call; total reflects the whole deck's final counts, current reflects
// progress through emission so far (this page's counters already
// advanced).
type Postprocess func(s *Slide, current, total *counter.Storage) *Slide

type subslideEntry struct {
	at    step.Step
	slide *Slide
}

// Slide is one slide's tree plus its step-emission configuration. A Slide
// embeds its root *box.Box, so every box builder (Box, Overlay, DrawLine,
// Margin, Padding, Text, Code, Image, and the layout-accessor family)
// is directly callable on a *Slide.
type Slide struct {
	*box.Box

	Width, Height *stepval.StepVal[float64]
	BgColor       *stepval.StepVal[string]
	Name          string

	CounterSet  []string
	DebugSteps  bool
	DebugLayout string

	InitSteps   []step.Step
	Postprocess Postprocess

	extraSteps step.Set
	ignoreSV   *stepval.StepVal[bool]
	subslides  []subslideEntry
}

// Options configures a new slide. Width/Height/BgColor default to the
// deck's own settings when left nil (applied by the caller, normally
// deck.NewSlide); InitSteps defaults to step 1 here if left empty.
type Options struct {
	Width, Height *stepval.StepVal[float64]
	BgColor       *stepval.StepVal[string]
	Name          string

	CounterSet  []string
	DebugSteps  bool
	DebugLayout string

	InitSteps   []step.Step
	Postprocess Postprocess
}

// New builds a slide with a fresh root box.
func New(opts Options) *Slide {
	initSteps := opts.InitSteps
	if len(initSteps) == 0 {
		initSteps = []step.Step{step.FromInt(1)}
	}
	return &Slide{
		Box: box.New(box.BoxOptions{Name: opts.Name}),

		Width: opts.Width, Height: opts.Height, BgColor: opts.BgColor,
		Name: opts.Name,

		CounterSet:  opts.CounterSet,
		DebugSteps:  opts.DebugSteps,
		DebugLayout: opts.DebugLayout,

		InitSteps:   initSteps,
		Postprocess: opts.Postprocess,
		extraSteps:  step.NewSet(),
	}
}

// InsertStep adds an extra step at which this slide emits a page, beyond
// whatever its content's own step markers already imply.
func (s *Slide) InsertStep(st step.Step) {
	s.extraSteps.Add(st)
}

// IgnoreSteps parses a step selector and excludes every step it names
// from discovery (init steps are exempt, see Discover).
func (s *Slide) IgnoreSteps(selectorText string) error {
	sv, _, err := selector.Parse(selectorText)
	if err != nil {
		return err
	}
	s.ignoreSV = sv
	return nil
}

// NewSlideAt attaches a new subslide anchored at step at: it is emitted
// within this slide's own page sequence, immediately before the main
// page at step at (see Discover/Plan).
func (s *Slide) NewSlideAt(at step.Step, opts Options) *Slide {
	sub := New(opts)
	s.subslides = append(s.subslides, subslideEntry{at: at.Clone(), slide: sub})
	return sub
}

// GetSteps returns the steps this slide will emit pages for, in order.
func (s *Slide) GetSteps() []step.Step {
	return Discover(s)
}

// subslidesAt returns the subslides anchored at st, in attachment order.
func (s *Slide) subslidesAt(st step.Step) []*Slide {
	var out []*Slide
	for _, e := range s.subslides {
		if step.Eq(e.at, st) {
			out = append(out, e.slide)
		}
	}
	return out
}

// effectiveCounterSet is CounterSet with "global" always included.
func (s *Slide) effectiveCounterSet() []string {
	seen := map[string]bool{"global": true}
	for _, n := range s.CounterSet {
		seen[n] = true
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// ShallowCopy duplicates the slide and its children list (not the
// children themselves), so a Postprocess hook can append stamped content
// for one page without affecting the slide's other steps.
func (s *Slide) ShallowCopy() *Slide {
	rootCopy := *s.Box
	rootCopy.Children = append([]any(nil), s.Box.Children...)
	cp := *s
	cp.Box = &rootCopy
	return &cp
}

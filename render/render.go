package render

import (
	"context"
	"fmt"

	"github.com/inkstage/inkstage/layoutengine"
	"github.com/inkstage/inkstage/raw"
	"github.com/inkstage/inkstage/slide"
	"github.com/inkstage/inkstage/step"
)

// Page is one fully-resolved page, ready for a rasterizing backend:
// geometry substituted against the layout engine's answer, debug
// overlays already appended.
type Page struct {
	Index         int
	Step          step.Step
	Width, Height float64
	BgColor       string
	Scene         *layoutengine.ResolvedBox
}

// Options configures a render run.
type Options struct {
	// Engine submits each page's compiled scene for layout. Required.
	Engine layoutengine.Engine

	CodeTheme    string
	CodeLanguage string

	// Workers bounds concurrent compile/layout/resolve work; <= 0 uses
	// runtime.NumCPU(), matching Pool's own default.
	Workers int
}

// Render compiles, lays out, and resolves every job in jobs, fanning the
// per-page work out across Options.Workers goroutines and returning
// pages in the same order jobs were given. Per spec.md §5, counter
// advance already happened on the calling goroutine while slide.Plan
// built jobs; only the CPU-bound per-page work runs in the pool, so no
// counter state crosses a worker boundary.
func Render(ctx context.Context, jobs []slide.PageJob, opts Options) ([]Page, error) {
	if opts.Engine == nil {
		return nil, fmt.Errorf("render: Options.Engine is required")
	}

	pool := NewPool(opts.Workers)
	pages := make([]Page, len(jobs))

	err := pool.Run(ctx, len(jobs), func(_ context.Context, i int) error {
		page, err := renderOne(jobs[i], opts)
		if err != nil {
			return fmt.Errorf("render: page %d: %w", i, err)
		}
		page.Index = i
		pages[i] = page
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pages, nil
}

func renderOne(job slide.PageJob, opts Options) (Page, error) {
	s := job.Slide

	var width, height float64
	if s.Width != nil {
		width = s.Width.Get(job.Step, 0)
	}
	if s.Height != nil {
		height = s.Height.Get(job.Step, 0)
	}
	var bgColor string
	if s.BgColor != nil {
		bgColor = s.BgColor.Get(job.Step, "")
	}

	compiled, err := raw.CompileSlide(s.Box, job.Step, raw.Options{
		Width:        width,
		Height:       height,
		BgColor:      bgColor,
		CodeTheme:    opts.CodeTheme,
		CodeLanguage: opts.CodeLanguage,
		DebugLayout:  s.DebugLayout,
		DebugSteps:   s.DebugSteps,
	})
	if err != nil {
		return Page{}, err
	}

	geom, err := opts.Engine.Submit(compiled.Root)
	if err != nil {
		return Page{}, err
	}

	resolved, err := layoutengine.Resolve(compiled.Root, geom)
	if err != nil {
		return Page{}, err
	}

	if len(compiled.DebugBoxes) > 0 {
		if err := layoutengine.Overlay(resolved, compiled.DebugBoxes, geom, s.DebugLayout); err != nil {
			return Page{}, err
		}
	}

	return Page{
		Step:    job.Step,
		Width:   compiled.Width,
		Height:  compiled.Height,
		BgColor: bgColor,
		Scene:   resolved,
	}, nil
}

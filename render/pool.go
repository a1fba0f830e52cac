// Package render farms the CPU-bound half of producing a deck's pages -
// compiling each step's box tree, submitting it to a layout engine, and
// resolving the result - across a fixed worker pool, then hands the
// resolved scenes to whatever backend rasterizes them.
package render

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool runs a fixed number of indexed jobs concurrently. Grounded on the
// teacher's ReviewOrchestrator fan-out (errgroup.WithContext + SetLimit,
// one goroutine per unit of work), simplified for jobs that write to
// their own slot of a pre-sized result slice instead of appending under
// a mutex - page order has to survive the pool, and index-addressed
// writes get that for free.
type Pool struct {
	Workers int
}

// NewPool returns a Pool with workers goroutines in flight at once; a
// non-positive value is replaced with runtime.NumCPU(), matching
// render.Options's own default.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{Workers: workers}
}

// Run calls fn(ctx, i) for every i in [0, n) with at most p.Workers
// concurrent calls in flight, returning the first error encountered
// (others' sibling goroutines still run to completion; errgroup cancels
// their context but does not abort already-started work).
func (p *Pool) Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Workers)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			return fn(gctx, i)
		})
	}
	return g.Wait()
}

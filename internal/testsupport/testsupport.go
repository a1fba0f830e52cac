// Package testsupport collects fixtures shared by this module's test
// suites: a deterministic stand-in for the external layoutengine.Engine
// collaborator, and small StepVal/step comparison helpers, grounded on
// the teacher's testing/harness.go and testing/assertion_helpers.go.
package testsupport

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/inkstage/inkstage/layoutexpr"
	"github.com/inkstage/inkstage/raw"
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
)

// FixedEngine answers every Submit with a geometry map built by walking
// the compiled scene and assigning every node a uniform rectangle at the
// origin sized Width x Height (defaulting to 800x600) — good enough to
// exercise render/deck plumbing without depending on a real layout
// algorithm.
type FixedEngine struct {
	Width, Height float64
}

// NewFixedEngine returns a FixedEngine with the original's common test
// canvas size (800x600).
func NewFixedEngine() FixedEngine {
	return FixedEngine{Width: 800, Height: 600}
}

// Submit implements layoutengine.Engine.
func (e FixedEngine) Submit(scene *raw.Box) (layoutexpr.GeometryMap, error) {
	w, h := e.Width, e.Height
	if w == 0 {
		w = 800
	}
	if h == 0 {
		h = 600
	}

	geom := layoutexpr.GeometryMap{}
	var walk func(b *raw.Box)
	walk = func(b *raw.Box) {
		geom[b.NodeID] = layoutexpr.Geometry{W: w, H: h}
		for _, child := range b.Children {
			if childBox, ok := child.(*raw.Box); ok {
				walk(childBox)
			}
		}
	}
	walk(scene)
	return geom, nil
}

// AssertStepValEqual compares two StepVal[T]s at each of the given steps,
// reporting a readable diff (via go-cmp) through t.Errorf for every
// mismatching step. Intended for golden-style assertions where
// constructing the expected StepVal by hand is clearer than comparing
// internal representations directly.
func AssertStepValEqual[T any](t *testing.T, want, got *stepval.StepVal[T], steps []step.Step) {
	t.Helper()
	var zero T
	for _, s := range steps {
		wv := want.Get(s, zero)
		gv := got.Get(s, zero)
		if diff := cmp.Diff(wv, gv); diff != "" {
			t.Errorf("StepVal mismatch at step %s (-want +got):\n%s", s, diff)
		}
	}
}

// RequireSteps fails t unless got's steps, stringified, equal wantStrs in
// order — a terser assertion than comparing []step.Step literals when a
// test only cares about the textual step sequence (e.g. "1", "2.1", "3").
func RequireSteps(t *testing.T, wantStrs []string, got []step.Step) {
	t.Helper()
	gotStrs := make([]string, len(got))
	for i, s := range got {
		gotStrs[i] = s.String()
	}
	require.Equal(t, wantStrs, gotStrs)
}

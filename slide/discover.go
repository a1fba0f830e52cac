package slide

import (
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
)

// Discover collects the sorted, deduplicated steps a slide must emit a
// page for: seed with init_steps; traverse the tree for every stepped
// attribute's named steps (or StepVal keys); add extra inserted steps and
// subslide anchor steps; filter out invisible steps (leading component <
// 1) and anything the ignore selector names; sort. Init steps bypass the
// ignore selector (a decided Open Question) but must still be visible.
func Discover(s *Slide) []step.Step {
	collected := step.NewSet()
	stepval.ExtractSteps(collected, s.Box)
	stepval.ExtractSteps(collected, s.Width)
	stepval.ExtractSteps(collected, s.Height)
	stepval.ExtractSteps(collected, s.BgColor)
	collected.AddAll(s.extraSteps)
	for _, e := range s.subslides {
		collected.Add(e.at)
	}

	ignored := s.ignoredPredicate()
	result := step.NewSet()
	for _, st := range collected.Sorted() {
		if step.Visible(st, ignored) {
			result.Add(st)
		}
	}
	for _, st := range s.InitSteps {
		if step.Visible(st, nil) {
			result.Add(st)
		}
	}
	return result.Sorted()
}

func (s *Slide) ignoredPredicate() func(step.Step) bool {
	if s.ignoreSV == nil {
		return nil
	}
	return func(st step.Step) bool {
		return s.ignoreSV.Get(st, false)
	}
}

package slide

import (
	"github.com/inkstage/inkstage/counter"
	"github.com/inkstage/inkstage/step"
)

// PageJob is one page's worth of emission work: the (possibly
// postprocessed) slide to materialise, the step to materialise it at, and
// a snapshot of the counters as they stood once this page's own advance
// had happened.
type PageJob struct {
	Slide   *Slide
	Step    step.Step
	Current *counter.Storage
	Total   *counter.Storage
}

// Plan walks a deck's top-level slides in declaration order and returns
// one PageJob per page, in final emission order: subslides interleaved
// before the main page of the step they're anchored at, postprocess
// applied per page, and counters advanced exactly once per slide
// (IncrementSlide) and once per page (IncrementPage) in that order.
//
// total is computed with a first, side-effect-free walk so a postprocess
// hook can always read the deck's final counts, matching the original's
// two-counter-storage model.
func Plan(slides []*Slide) []PageJob {
	total := counter.NewStorage()
	walk(slides, total, nil, nil)

	current := counter.NewStorage()
	var jobs []PageJob
	walk(slides, current, total, &jobs)
	return jobs
}

// walk advances storage through slides' slide/page counters in emission
// order. When jobs is non-nil, it also appends a PageJob per page,
// postprocessing against storage (current) and total.
func walk(slides []*Slide, storage, total *counter.Storage, jobs *[]PageJob) {
	for _, s := range slides {
		steps := Discover(s)
		set := s.effectiveCounterSet()
		storage.IncrementSlide(set)

		for _, st := range steps {
			if subs := s.subslidesAt(st); len(subs) > 0 {
				walk(subs, storage, total, jobs)
			}

			storage.IncrementPage(set)

			if jobs == nil {
				continue
			}
			page := s
			if s.Postprocess != nil {
				page = s.Postprocess(s.ShallowCopy(), storage, total)
			}
			*jobs = append(*jobs, PageJob{
				Slide:   page,
				Step:    st.Clone(),
				Current: storage.Clone(),
				Total:   total.Clone(),
			})
		}
	}
}

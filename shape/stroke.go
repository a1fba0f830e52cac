package shape

import (
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
)

// Stroke is an outline: color, width, and an optional dash pattern. Its
// presence on a shape is fixed at construction time, but each field may
// individually vary by step.
type Stroke struct {
	Color      *stepval.StepVal[string]
	Width      *stepval.StepVal[float64]
	DashArray  *stepval.StepVal[[]float64]
	DashOffset *stepval.StepVal[float64]
}

// NewStroke builds a solid stroke of width 1 and no dash pattern.
func NewStroke(color string) *Stroke {
	return &Stroke{
		Color:      stepval.Const(color),
		Width:      stepval.Const(1.0),
		DashOffset: stepval.Const(0.0),
	}
}

// ResolvedStroke is a stroke's values at a single step.
type ResolvedStroke struct {
	Color      string
	Width      float64
	DashArray  []float64
	DashOffset float64
}

// Resolve reads every field at s, defaulting width to 1 and offset to 0
// when left unset.
func (s *Stroke) Resolve(at step.Step) ResolvedStroke {
	r := ResolvedStroke{
		Width:      1,
		DashOffset: 0,
	}
	if s.Color != nil {
		r.Color = s.Color.Get(at, "")
	}
	if s.Width != nil {
		r.Width = s.Width.Get(at, 1)
	}
	if s.DashArray != nil {
		r.DashArray = s.DashArray.Get(at, nil)
	}
	if s.DashOffset != nil {
		r.DashOffset = s.DashOffset.Get(at, 0)
	}
	return r
}

package shape

import (
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
)

// ExtractSteps implements stepval.Extractable so a box's step discovery
// walk can descend into a drawable child without reflecting over its
// unexported geometry.
func (r *Rect) ExtractSteps(out step.Set) {
	stepval.ExtractSteps(out, r.P1)
	stepval.ExtractSteps(out, r.P2)
	stepval.ExtractSteps(out, r.FillColor)
	stepval.ExtractSteps(out, r.ZLevel)
	stepval.ExtractSteps(out, r.Show)
	r.Stroke.extractSteps(out)
}

// ExtractSteps implements stepval.Extractable.
func (p *Path) ExtractSteps(out step.Set) {
	for _, pt := range p.Points {
		stepval.ExtractSteps(out, pt)
	}
	stepval.ExtractSteps(out, p.FillColor)
	stepval.ExtractSteps(out, p.ZLevel)
	stepval.ExtractSteps(out, p.Show)
	p.Stroke.extractSteps(out)
}

// extractSteps contributes a stroke's own stepped fields, a no-op on a
// nil stroke.
func (s *Stroke) extractSteps(out step.Set) {
	if s == nil {
		return
	}
	stepval.ExtractSteps(out, s.Color)
	stepval.ExtractSteps(out, s.Width)
	stepval.ExtractSteps(out, s.DashArray)
	stepval.ExtractSteps(out, s.DashOffset)
}

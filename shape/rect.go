package shape

import (
	"github.com/inkstage/inkstage/layoutexpr"
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
)

// RectKind distinguishes the two BaseRect subclasses of the original:
// an axis-aligned rectangle or an ellipse inscribed in the same bounds.
type RectKind int

const (
	RectKindRect RectKind = iota
	RectKindOval
)

// RawRect is a rectangle or oval's unresolved description for a single
// step: endpoints and styling are still Value (percent/layout-expr may
// not resolve until after layout has run).
type RawRect struct {
	Kind      RectKind
	P1, P2    Point
	ZLevel    int
	Stroke    *ResolvedStroke
	FillColor string
}

// ResolvedRect is a RawRect with P1/P2 resolved to concrete coordinates
// against a parent node's post-layout geometry.
type ResolvedRect struct {
	Kind            RectKind
	X1, Y1, X2, Y2  float64
	ZLevel          int
	Stroke          *ResolvedStroke
	FillColor       string
}

// Resolve resolves P1/P2 against the given node's geometry.
func (r RawRect) Resolve(node layoutexpr.NodeID, geom layoutexpr.GeometryMap) (ResolvedRect, error) {
	x1, y1, err := r.P1.Resolve(node, geom)
	if err != nil {
		return ResolvedRect{}, err
	}
	x2, y2, err := r.P2.Resolve(node, geom)
	if err != nil {
		return ResolvedRect{}, err
	}
	return ResolvedRect{
		Kind:      r.Kind,
		X1:        x1,
		Y1:        y1,
		X2:        x2,
		Y2:        y2,
		ZLevel:    r.ZLevel,
		Stroke:    r.Stroke,
		FillColor: r.FillColor,
	}, nil
}

// Rect is a stepped rectangle or oval builder: the endpoints, fill color
// and z-level may each vary by step independently, and visibility is
// gated by Show.
type Rect struct {
	Kind      RectKind
	P1, P2    *stepval.StepVal[Point]
	Stroke    *Stroke
	FillColor *stepval.StepVal[string]
	ZLevel    *stepval.StepVal[int]
	Show      *stepval.StepVal[bool]
}

// NewRect builds a rectangle spanning p1 to p2, visible at every step by
// default.
func NewRect(p1, p2 *stepval.StepVal[Point]) *Rect {
	return &Rect{Kind: RectKindRect, P1: p1, P2: p2, Show: stepval.Const(true)}
}

// NewOval builds an oval inscribed in the box spanning p1 to p2.
func NewOval(p1, p2 *stepval.StepVal[Point]) *Rect {
	r := NewRect(p1, p2)
	r.Kind = RectKindOval
	return r
}

// ToRaw compiles the rectangle at s, returning nil if it is hidden at
// that step. defaultZLevel is the enclosing scope's z-level, used when
// the rectangle doesn't set its own.
func (r *Rect) ToRaw(at step.Step, defaultZLevel int) *RawRect {
	if r.Show != nil && !r.Show.Get(at, true) {
		return nil
	}
	zLevel := defaultZLevel
	if r.ZLevel != nil {
		zLevel = r.ZLevel.Get(at, defaultZLevel)
	}
	var stroke *ResolvedStroke
	if r.Stroke != nil {
		resolved := r.Stroke.Resolve(at)
		stroke = &resolved
	}
	var fillColor string
	if r.FillColor != nil {
		fillColor = r.FillColor.Get(at, "")
	}
	return &RawRect{
		Kind:      r.Kind,
		P1:        r.P1.Get(at, Point{}),
		P2:        r.P2.Get(at, Point{}),
		ZLevel:    zLevel,
		Stroke:    stroke,
		FillColor: fillColor,
	}
}

// Package shape implements the drawable primitives (rectangles, ovals,
// arbitrary paths) that a box can draw onto a slide: stepped geometry and
// styling compiled to an immutable "raw" description per step, with final
// numeric resolution deferred until after layout.
package shape

import (
	"fmt"

	"github.com/inkstage/inkstage/layoutexpr"
)

// ValueKind distinguishes the three ways a numeric shape parameter may be
// given: a literal number, a percentage of the parent box, or a deferred
// layout expression.
type ValueKind int

const (
	ValueNumber ValueKind = iota
	ValuePercent
	ValueExpr
)

// Value is a shape's numeric parameter before layout-dependent resolution:
// int|float|percent|LayoutExpr, per the spec's parameter grammar.
type Value struct {
	Kind ValueKind
	Num  float64 // literal for ValueNumber, 0-100 for ValuePercent
	Expr *layoutexpr.Expr
}

// Num builds a literal numeric value.
func Num(f float64) Value { return Value{Kind: ValueNumber, Num: f} }

// Percent builds a percentage-of-parent value (p in [0,100]).
func Percent(p float64) Value { return Value{Kind: ValuePercent, Num: p} }

// FromExpr builds a deferred layout-expression value.
func FromExpr(e *layoutexpr.Expr) Value { return Value{Kind: ValueExpr, Expr: e} }

// Resolve computes the final number. Percent resolves against parent's
// width on the x-axis, height on the y-axis, matching the spec's rule
// ("x-axis for x/width/line_x/line_width/inline_*x*, y-axis for the rest").
func (v Value) Resolve(parent layoutexpr.NodeID, axis layoutexpr.Axis, geom layoutexpr.GeometryMap) (float64, error) {
	switch v.Kind {
	case ValueNumber:
		return v.Num, nil
	case ValuePercent:
		g, ok := geom[parent]
		if !ok {
			return 0, &layoutexpr.ErrLayoutResolveMissingNode{Node: parent}
		}
		if axis == layoutexpr.AxisX {
			return g.W * v.Num / 100, nil
		}
		return g.H * v.Num / 100, nil
	case ValueExpr:
		return layoutexpr.Resolve(v.Expr, geom)
	default:
		return 0, fmt.Errorf("shape: unknown value kind %d", v.Kind)
	}
}

// Point is a pair of shape values resolved against a parent node's
// geometry, x against the x-axis and y against the y-axis.
type Point struct {
	X, Y Value
}

// PointNum builds a literal point, the common case for fixed coordinates.
func PointNum(x, y float64) Point { return Point{X: Num(x), Y: Num(y)} }

// Resolve resolves both coordinates against parent's geometry.
func (p Point) Resolve(parent layoutexpr.NodeID, geom layoutexpr.GeometryMap) (x, y float64, err error) {
	x, err = p.X.Resolve(parent, layoutexpr.AxisX, geom)
	if err != nil {
		return 0, 0, err
	}
	y, err = p.Y.Resolve(parent, layoutexpr.AxisY, geom)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

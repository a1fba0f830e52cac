package box

import (
	"github.com/inkstage/inkstage/layoutexpr"
	"github.com/inkstage/inkstage/shape"
	"github.com/inkstage/inkstage/stepval"
)

// constExpr lifts a layout expression to a constant stepped position/size
// value, for the synthetic x/y/width/height a LineBox/InlineBox computes.
func constExpr(e *layoutexpr.Expr) *stepval.StepVal[shape.Value] {
	return stepval.Const(shape.FromExpr(e))
}

// X returns an expression for this box's x-coordinate, optionally offset
// by a fraction of its own width (0 for the plain left edge).
func (b *Box) X(widthFraction float64) *layoutexpr.Expr {
	n := b.NodeID()
	expr := layoutexpr.X(n)
	if widthFraction == 0 {
		return expr
	}
	return layoutexpr.Add(expr, layoutexpr.W(n, widthFraction))
}

// Y returns an expression for this box's y-coordinate, optionally offset
// by a fraction of its own height.
func (b *Box) Y(heightFraction float64) *layoutexpr.Expr {
	n := b.NodeID()
	expr := layoutexpr.Y(n)
	if heightFraction == 0 {
		return expr
	}
	return layoutexpr.Add(expr, layoutexpr.H(n, heightFraction))
}

// P returns a point at the given x/y width/height fractions of this box.
func (b *Box) P(x, y float64) shape.Point {
	return shape.Point{X: shape.FromExpr(b.X(x)), Y: shape.FromExpr(b.Y(y))}
}

// W returns an expression for a fraction of this box's width.
func (b *Box) W(fraction float64) *layoutexpr.Expr {
	return layoutexpr.W(b.NodeID(), fraction)
}

// H returns an expression for a fraction of this box's height.
func (b *Box) H(fraction float64) *layoutexpr.Expr {
	return layoutexpr.H(b.NodeID(), fraction)
}

// LineX returns an expression for a text line's x-coordinate, optionally
// offset by a fraction of the line's width.
func (b *Box) LineX(lineIdx int, widthFraction float64) *layoutexpr.Expr {
	n := b.NodeID()
	expr := layoutexpr.LineX(n, lineIdx)
	if widthFraction == 0 {
		return expr
	}
	return layoutexpr.Add(expr, layoutexpr.LineW(n, lineIdx, widthFraction))
}

// LineY returns an expression for a text line's y-coordinate, optionally
// offset by a fraction of the line's height.
func (b *Box) LineY(lineIdx int, heightFraction float64) *layoutexpr.Expr {
	n := b.NodeID()
	expr := layoutexpr.LineY(n, lineIdx)
	if heightFraction == 0 {
		return expr
	}
	return layoutexpr.Add(expr, layoutexpr.LineH(n, lineIdx, heightFraction))
}

// LineP returns a point at the given fractions of a text line.
func (b *Box) LineP(lineIdx int, x, y float64) shape.Point {
	return shape.Point{X: shape.FromExpr(b.LineX(lineIdx, x)), Y: shape.FromExpr(b.LineY(lineIdx, y))}
}

// LineW returns an expression for a fraction of a text line's width.
func (b *Box) LineW(lineIdx int, fraction float64) *layoutexpr.Expr {
	return layoutexpr.LineW(b.NodeID(), lineIdx, fraction)
}

// LineH returns an expression for a fraction of a text line's height.
func (b *Box) LineH(lineIdx int, fraction float64) *layoutexpr.Expr {
	return layoutexpr.LineH(b.NodeID(), lineIdx, fraction)
}

// InlineX returns an expression for an inline text anchor's x-coordinate.
func (b *Box) InlineX(anchor layoutexpr.AnchorID, widthFraction float64) *layoutexpr.Expr {
	n := b.NodeID()
	expr := layoutexpr.InlineX(n, anchor)
	if widthFraction == 0 {
		return expr
	}
	return layoutexpr.Add(expr, layoutexpr.InlineW(n, anchor, widthFraction))
}

// InlineY returns an expression for an inline text anchor's y-coordinate.
func (b *Box) InlineY(anchor layoutexpr.AnchorID, heightFraction float64) *layoutexpr.Expr {
	n := b.NodeID()
	expr := layoutexpr.InlineY(n, anchor)
	if heightFraction == 0 {
		return expr
	}
	return layoutexpr.Add(expr, layoutexpr.InlineH(n, anchor, heightFraction))
}

// InlineP returns a point at the given fractions of an inline anchor.
func (b *Box) InlineP(anchor layoutexpr.AnchorID, x, y float64) shape.Point {
	return shape.Point{X: shape.FromExpr(b.InlineX(anchor, x)), Y: shape.FromExpr(b.InlineY(anchor, y))}
}

// InlineW returns an expression for a fraction of an inline anchor's width.
func (b *Box) InlineW(anchor layoutexpr.AnchorID, fraction float64) *layoutexpr.Expr {
	return layoutexpr.InlineW(b.NodeID(), anchor, fraction)
}

// InlineH returns an expression for a fraction of an inline anchor's height.
func (b *Box) InlineH(anchor layoutexpr.AnchorID, fraction float64) *layoutexpr.Expr {
	return layoutexpr.InlineH(b.NodeID(), anchor, fraction)
}

// LineBox creates a new box positioned over n_lines text lines starting
// at lineIdx, spanning the max width of those lines.
func (b *Box) LineBox(lineIdx, nLines int, opts BoxOptions) *Box {
	opts.X = constExpr(b.LineX(lineIdx, 0))
	opts.Y = constExpr(b.LineY(lineIdx, 0))
	if nLines == 1 {
		opts.Width = constExpr(b.LineW(lineIdx, 1))
		opts.Height = constExpr(b.LineH(lineIdx, 1))
		return b.Box(opts)
	}
	children := make([]*layoutexpr.Expr, nLines)
	for i := 0; i < nLines; i++ {
		children[i] = b.LineW(lineIdx+i, 1)
	}
	opts.Width = constExpr(layoutexpr.Max(children...))
	opts.Height = constExpr(layoutexpr.Mul(b.LineH(lineIdx, 1), layoutexpr.Const(float64(nLines))))
	return b.Box(opts)
}

// InlineBox creates a new box positioned over an inline text anchor.
func (b *Box) InlineBox(anchor layoutexpr.AnchorID, opts BoxOptions) *Box {
	opts.X = constExpr(b.InlineX(anchor, 0))
	opts.Y = constExpr(b.InlineY(anchor, 0))
	opts.Width = constExpr(b.InlineW(anchor, 1))
	opts.Height = constExpr(b.InlineH(anchor, 1))
	return b.Box(opts)
}

package layoutexpr

// LineGeom is the resolved geometry of a single text line within a box.
type LineGeom struct {
	X, Y, W, H float64
}

// InlineGeom is the resolved geometry of an inline anchor within a box's
// shaped text.
type InlineGeom struct {
	X, Y, W, H float64
}

// Geometry is the post-layout geometry of one box, as returned by the
// external layout engine collaborator.
type Geometry struct {
	X, Y, W, H float64
	Lines      []LineGeom
	Inline     map[AnchorID]InlineGeom
}

// GeometryMap is the full post-layout result the layout engine hands back:
// node identity to resolved geometry.
type GeometryMap map[NodeID]Geometry

// Resolve evaluates the expression tree against geom, the same way the
// teacher's EvaluateExpr walks ExprIR against a values map - a single
// recursive switch over Kind, with atoms looked up directly instead of
// through an intermediate values map.
func Resolve(e *Expr, geom GeometryMap) (float64, error) {
	if e == nil {
		return 0, &ErrInvalidExpr{Reason: "nil expression"}
	}
	switch e.Kind {
	case KindConst:
		return e.Value, nil

	case KindAtom:
		return resolveAtom(e, geom)

	case KindBinOp:
		left, err := Resolve(e.Left, geom)
		if err != nil {
			return 0, err
		}
		right, err := Resolve(e.Right, geom)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case "+":
			return left + right, nil
		case "-":
			return left - right, nil
		case "*":
			return left * right, nil
		default:
			return 0, &ErrInvalidExpr{Reason: "unknown operator " + e.Op}
		}

	case KindMax:
		if len(e.Children) == 0 {
			return 0, &ErrInvalidExpr{Reason: "max() with no children"}
		}
		best, err := Resolve(e.Children[0], geom)
		if err != nil {
			return 0, err
		}
		for _, child := range e.Children[1:] {
			v, err := Resolve(child, geom)
			if err != nil {
				return 0, err
			}
			if v > best {
				best = v
			}
		}
		return best, nil

	default:
		return 0, &ErrInvalidExpr{Reason: "unknown expression kind"}
	}
}

func resolveAtom(e *Expr, geom GeometryMap) (float64, error) {
	g, ok := geom[e.Node]
	if !ok {
		return 0, &ErrLayoutResolveMissingNode{Node: e.Node}
	}

	switch e.AtomKind {
	case AtomX:
		return g.X, nil
	case AtomY:
		return g.Y, nil
	case AtomW:
		return g.W * e.Fraction, nil
	case AtomH:
		return g.H * e.Fraction, nil

	case AtomLineX, AtomLineY, AtomLineW, AtomLineH:
		if e.Line < 0 || e.Line >= len(g.Lines) {
			return 0, &ErrLayoutResolveMissingLine{Node: e.Node, Line: e.Line}
		}
		line := g.Lines[e.Line]
		switch e.AtomKind {
		case AtomLineX:
			return line.X, nil
		case AtomLineY:
			return line.Y, nil
		case AtomLineW:
			return line.W * e.Fraction, nil
		default: // AtomLineH
			return line.H * e.Fraction, nil
		}

	case AtomInlineX, AtomInlineY, AtomInlineW, AtomInlineH:
		inline, ok := g.Inline[e.Anchor]
		if !ok {
			return 0, &ErrLayoutResolveMissingAnchor{Node: e.Node, Anchor: e.Anchor}
		}
		switch e.AtomKind {
		case AtomInlineX:
			return inline.X, nil
		case AtomInlineY:
			return inline.Y, nil
		case AtomInlineW:
			return inline.W * e.Fraction, nil
		default: // AtomInlineH
			return inline.H * e.Fraction, nil
		}

	default:
		return 0, &ErrInvalidExpr{Reason: "unknown atom kind"}
	}
}

// Package layoutexpr implements deferred layout expressions: a small
// algebraic tree over operators (+, -, *, max) and atoms that reference
// box/line/inline-anchor geometry, resolved once the layout engine has
// returned final positions.
//
// The node shape is a direct structural adaptation of the teacher's
// planner.ExprIR / EvaluateExpr (a Kind-tagged struct walked by a single
// switch), generalized from "variable or decorator reference" atoms to
// "box/line/anchor geometry" atoms.
package layoutexpr

import "fmt"

// NodeID identifies a box by its dense interned identity, assigned by the
// box package. layoutexpr never constructs a NodeID; it only carries one
// through to resolution.
type NodeID uint32

// AnchorID identifies an inline anchor declared in styled text via a
// numeric marker (~N{...}).
type AnchorID int

// Axis distinguishes which axis a fractional atom resolves against.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Kind identifies the shape of an Expr node.
type Kind int

const (
	KindConst Kind = iota
	KindAtom
	KindBinOp
	KindMax
)

// AtomKind identifies which geometry field an Atom references.
type AtomKind int

const (
	AtomX AtomKind = iota
	AtomY
	AtomW
	AtomH
	AtomLineX
	AtomLineY
	AtomLineW
	AtomLineH
	AtomInlineX
	AtomInlineY
	AtomInlineW
	AtomInlineH
)

// Expr is the unified layout-expression representation: a literal
// constant, a geometry atom, a binary operation, or a max() of children.
type Expr struct {
	Kind Kind

	// KindConst
	Value float64

	// KindAtom
	AtomKind AtomKind
	Node     NodeID
	Line     int      // for AtomLine*
	Anchor   AnchorID // for AtomInline*
	Fraction float64  // for W/H/LineW/LineH/InlineW/InlineH atoms

	// KindBinOp
	Op    string // "+", "-", "*"
	Left  *Expr
	Right *Expr

	// KindMax
	Children []*Expr
}

// Const builds a literal constant expression. AddN/SubN lift a plain
// number to Const; Add/Sub/Mul take only *Expr operands.
func Const(v float64) *Expr {
	return &Expr{Kind: KindConst, Value: v}
}

// X returns the x-position atom for node n.
func X(n NodeID) *Expr { return &Expr{Kind: KindAtom, AtomKind: AtomX, Node: n} }

// Y returns the y-position atom for node n.
func Y(n NodeID) *Expr { return &Expr{Kind: KindAtom, AtomKind: AtomY, Node: n} }

// W returns the width atom for node n at fraction f (f=1 is the full width).
func W(n NodeID, f float64) *Expr {
	return &Expr{Kind: KindAtom, AtomKind: AtomW, Node: n, Fraction: f}
}

// H returns the height atom for node n at fraction f.
func H(n NodeID, f float64) *Expr {
	return &Expr{Kind: KindAtom, AtomKind: AtomH, Node: n, Fraction: f}
}

// LineX returns the x-position atom of line i within node n.
func LineX(n NodeID, i int) *Expr {
	return &Expr{Kind: KindAtom, AtomKind: AtomLineX, Node: n, Line: i}
}

// LineY returns the y-position atom of line i within node n.
func LineY(n NodeID, i int) *Expr {
	return &Expr{Kind: KindAtom, AtomKind: AtomLineY, Node: n, Line: i}
}

// LineW returns the width atom of line i within node n at fraction f.
func LineW(n NodeID, i int, f float64) *Expr {
	return &Expr{Kind: KindAtom, AtomKind: AtomLineW, Node: n, Line: i, Fraction: f}
}

// LineH returns the height atom of line i within node n at fraction f.
func LineH(n NodeID, i int, f float64) *Expr {
	return &Expr{Kind: KindAtom, AtomKind: AtomLineH, Node: n, Line: i, Fraction: f}
}

// InlineX returns the x-position atom of inline anchor a within node n.
func InlineX(n NodeID, a AnchorID) *Expr {
	return &Expr{Kind: KindAtom, AtomKind: AtomInlineX, Node: n, Anchor: a}
}

// InlineY returns the y-position atom of inline anchor a within node n.
func InlineY(n NodeID, a AnchorID) *Expr {
	return &Expr{Kind: KindAtom, AtomKind: AtomInlineY, Node: n, Anchor: a}
}

// InlineW returns the width atom of inline anchor a within node n at
// fraction f.
func InlineW(n NodeID, a AnchorID, f float64) *Expr {
	return &Expr{Kind: KindAtom, AtomKind: AtomInlineW, Node: n, Anchor: a, Fraction: f}
}

// InlineH returns the height atom of inline anchor a within node n at
// fraction f.
func InlineH(n NodeID, a AnchorID, f float64) *Expr {
	return &Expr{Kind: KindAtom, AtomKind: AtomInlineH, Node: n, Anchor: a, Fraction: f}
}

// Add returns a + b. AddN is the form taking a plain float64 operand.
func Add(a, b *Expr) *Expr { return &Expr{Kind: KindBinOp, Op: "+", Left: a, Right: b} }

// Sub returns a - b.
func Sub(a, b *Expr) *Expr { return &Expr{Kind: KindBinOp, Op: "-", Left: a, Right: b} }

// Mul returns a * b.
func Mul(a, b *Expr) *Expr { return &Expr{Kind: KindBinOp, Op: "*", Left: a, Right: b} }

// Max returns max(children...). Resolving an empty Max is a syntax error
// surfaced at Resolve time, not at construction time (construction has no
// geometry to validate against yet).
func Max(children ...*Expr) *Expr {
	return &Expr{Kind: KindMax, Children: children}
}

// AddN lifts a plain float64 to Const and returns a + n.
func AddN(a *Expr, n float64) *Expr { return Add(a, Const(n)) }

// SubN lifts a plain float64 to Const and returns a - n.
func SubN(a *Expr, n float64) *Expr { return Sub(a, Const(n)) }

// String renders a human-readable form, primarily for error messages and
// debug overlays.
func (e *Expr) String() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case KindConst:
		return fmt.Sprintf("%g", e.Value)
	case KindAtom:
		return e.atomString()
	case KindBinOp:
		return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
	case KindMax:
		return fmt.Sprintf("max(%v)", e.Children)
	default:
		return "<invalid-expr>"
	}
}

func (e *Expr) atomString() string {
	switch e.AtomKind {
	case AtomX:
		return fmt.Sprintf("x(%d)", e.Node)
	case AtomY:
		return fmt.Sprintf("y(%d)", e.Node)
	case AtomW:
		return fmt.Sprintf("w(%d,%g)", e.Node, e.Fraction)
	case AtomH:
		return fmt.Sprintf("h(%d,%g)", e.Node, e.Fraction)
	case AtomLineX:
		return fmt.Sprintf("line_x(%d,%d)", e.Node, e.Line)
	case AtomLineY:
		return fmt.Sprintf("line_y(%d,%d)", e.Node, e.Line)
	case AtomLineW:
		return fmt.Sprintf("line_w(%d,%d,%g)", e.Node, e.Line, e.Fraction)
	case AtomLineH:
		return fmt.Sprintf("line_h(%d,%d,%g)", e.Node, e.Line, e.Fraction)
	case AtomInlineX:
		return fmt.Sprintf("inline_x(%d,%d)", e.Node, e.Anchor)
	case AtomInlineY:
		return fmt.Sprintf("inline_y(%d,%d)", e.Node, e.Anchor)
	case AtomInlineW:
		return fmt.Sprintf("inline_w(%d,%d,%g)", e.Node, e.Anchor, e.Fraction)
	case AtomInlineH:
		return fmt.Sprintf("inline_h(%d,%d,%g)", e.Node, e.Anchor, e.Fraction)
	default:
		return "<invalid-atom>"
	}
}

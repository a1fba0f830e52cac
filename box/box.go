package box

import (
	"github.com/inkstage/inkstage/layoutexpr"
	"github.com/inkstage/inkstage/shape"
	"github.com/inkstage/inkstage/stepval"
	"github.com/inkstage/inkstage/textmodel"
)

// MarginValue is a margin side's value: either a length or the literal
// "auto" keyword flex layout uses to center/absorb extra space.
type MarginValue struct {
	Auto  bool
	Value Length
}

// AutoMargin returns the "auto" margin value.
func AutoMargin() MarginValue { return MarginValue{Auto: true} }

// FixedMargin returns a literal-length margin value.
func FixedMargin(v Length) MarginValue { return MarginValue{Value: v} }

// Box is one node of the slide tree: stepped layout attributes, ordered
// children (child boxes and drawables), optional leaf content, and a
// named text-style scope consulted by GetStyle's ancestor walk.
type Box struct {
	id     ID
	Name   string
	parent *Box

	PosX, PosY   *stepval.StepVal[shape.Value] // nil: layout engine positions it
	SizeW, SizeH *stepval.StepVal[shape.Value] // nil: size follows content

	ZLevel *stepval.StepVal[int] // nil: inherit enclosing z-level
	Show   *stepval.StepVal[bool]
	Active *stepval.StepVal[bool]

	BgColor *stepval.StepVal[string] // nil: no fill

	Row     *stepval.StepVal[bool]
	Reverse *stepval.StepVal[bool]

	PaddingLeft, PaddingRight, PaddingTop, PaddingBottom *stepval.StepVal[Length]
	MarginLeft, MarginRight, MarginTop, MarginBottom     *stepval.StepVal[MarginValue]

	FlexGrow, FlexShrink               *stepval.StepVal[float64]
	AlignItems, AlignSelf, JustifySelf *stepval.StepVal[AlignItems]
	AlignContent, JustifyContent       *stepval.StepVal[AlignContent]

	GapX, GapY   *stepval.StepVal[Length]
	BorderRadius *stepval.StepVal[float64]

	URL         *stepval.StepVal[string]
	DebugLayout string // "" or a color name/hex

	Content  Content
	Children []any // *Box, *shape.Rect, *shape.Path

	styles map[string]*stepval.StepVal[textmodel.Style]
}

// BoxOptions configures a new box. Every pointer field left nil falls
// back to the original's documented default (z_level/x/y/width/height/
// bg_color/url unset, show/active true, row/reverse false, padding/gap/
// border_radius 0, margins 0, flex_grow 0, flex_shrink 1).
type BoxOptions struct {
	Name string

	X, Y          *stepval.StepVal[shape.Value]
	Width, Height *stepval.StepVal[shape.Value]

	ZLevel *stepval.StepVal[int]
	Show   *stepval.StepVal[bool]
	Active *stepval.StepVal[bool]

	BgColor *stepval.StepVal[string]

	Row, Reverse *stepval.StepVal[bool]

	PaddingLeft, PaddingRight, PaddingTop, PaddingBottom *stepval.StepVal[Length]
	MarginLeft, MarginRight, MarginTop, MarginBottom     *stepval.StepVal[MarginValue]

	FlexGrow, FlexShrink               *stepval.StepVal[float64]
	AlignItems, AlignSelf, JustifySelf *stepval.StepVal[AlignItems]
	AlignContent, JustifyContent       *stepval.StepVal[AlignContent]

	GapX, GapY   *stepval.StepVal[Length]
	BorderRadius *stepval.StepVal[float64]

	URL         *stepval.StepVal[string]
	DebugLayout string
}

func orConstBool(sv *stepval.StepVal[bool], def bool) *stepval.StepVal[bool] {
	if sv != nil {
		return sv
	}
	return stepval.Const(def)
}

func orConstFloat(sv *stepval.StepVal[float64], def float64) *stepval.StepVal[float64] {
	if sv != nil {
		return sv
	}
	return stepval.Const(def)
}

func orConstLength(sv *stepval.StepVal[Length], def Length) *stepval.StepVal[Length] {
	if sv != nil {
		return sv
	}
	return stepval.Const(def)
}

func orConstMargin(sv *stepval.StepVal[MarginValue], def MarginValue) *stepval.StepVal[MarginValue] {
	if sv != nil {
		return sv
	}
	return stepval.Const(def)
}

// New builds a root box (the slide's own root, or a detached subtree).
// Child boxes should normally be created through an existing box's Box
// method so the parent pointer used by GetStyle's ancestor walk is set.
func New(opts BoxOptions) *Box {
	b := &Box{
		id:   newID(),
		Name: opts.Name,

		PosX: opts.X, PosY: opts.Y,
		SizeW: opts.Width, SizeH: opts.Height,

		ZLevel: opts.ZLevel,
		Show:   orConstBool(opts.Show, true),
		Active: orConstBool(opts.Active, true),

		BgColor: opts.BgColor,

		Row:     orConstBool(opts.Row, false),
		Reverse: orConstBool(opts.Reverse, false),

		PaddingLeft:   orConstLength(opts.PaddingLeft, shape.Num(0)),
		PaddingRight:  orConstLength(opts.PaddingRight, shape.Num(0)),
		PaddingTop:    orConstLength(opts.PaddingTop, shape.Num(0)),
		PaddingBottom: orConstLength(opts.PaddingBottom, shape.Num(0)),

		MarginLeft:   orConstMargin(opts.MarginLeft, FixedMargin(shape.Num(0))),
		MarginRight:  orConstMargin(opts.MarginRight, FixedMargin(shape.Num(0))),
		MarginTop:    orConstMargin(opts.MarginTop, FixedMargin(shape.Num(0))),
		MarginBottom: orConstMargin(opts.MarginBottom, FixedMargin(shape.Num(0))),

		FlexGrow:   orConstFloat(opts.FlexGrow, 0),
		FlexShrink: orConstFloat(opts.FlexShrink, 1),

		AlignItems: opts.AlignItems, AlignSelf: opts.AlignSelf, JustifySelf: opts.JustifySelf,
		AlignContent: opts.AlignContent, JustifyContent: opts.JustifyContent,

		GapX: orConstLength(opts.GapX, shape.Num(0)),
		GapY: orConstLength(opts.GapY, shape.Num(0)),

		BorderRadius: orConstFloat(opts.BorderRadius, 0),

		URL:         opts.URL,
		DebugLayout: opts.DebugLayout,
	}
	return b
}

// ID returns the box's dense process-wide identity.
func (b *Box) ID() ID { return b.id }

// AttachScope sets parent as b's style-scope ancestor for GetStyle's
// walk, without making b one of parent's Children or a layout child of
// it. deck.New uses this to give every slide's root box access to
// deck-level named styles ("default", "code") through the same ancestor
// walk a nested box already gets from Add, matching the original's deck
// acting as the outermost style scope above every slide.
func (b *Box) AttachScope(parent *Box) {
	b.parent = parent
}

// NodeID is the layout-expression node identity this box's accessor
// methods (X/Y/W/H/...) bind expressions to.
func (b *Box) NodeID() layoutexpr.NodeID { return b.id.NodeID() }

// Add appends a child box or drawable (*shape.Rect/*shape.Path) to this
// box, in declaration order. If child is a *Box, its parent pointer is
// set so GetStyle can walk up to this box's scope.
func (b *Box) Add(child any) {
	if cb, ok := child.(*Box); ok {
		cb.parent = b
	}
	b.Children = append(b.Children, child)
}

// Box creates a child box, adds it to this box's children, and returns it.
func (b *Box) Box(opts BoxOptions) *Box {
	child := New(opts)
	b.Add(child)
	return child
}

// Overlay creates a child box spanning this box's full area, the
// original's `overlay()` shortcut (defaults x/y to 0 and width/height
// to 100% when the caller didn't already set them).
func (b *Box) Overlay(opts BoxOptions) *Box {
	if opts.X == nil {
		opts.X = stepval.Const(shape.Num(0))
	}
	if opts.Y == nil {
		opts.Y = stepval.Const(shape.Num(0))
	}
	if opts.Width == nil {
		opts.Width = stepval.Const(shape.Percent(100))
	}
	if opts.Height == nil {
		opts.Height = stepval.Const(shape.Percent(100))
	}
	return b.Box(opts)
}

// DrawLine is a shortcut for adding a straight two-point path.
func (b *Box) DrawLine(p1, p2 shape.Point) *shape.Path {
	path := shape.NewPath()
	path.MoveTo(stepval.Const(p1))
	path.LineTo(stepval.Const(p2))
	b.Add(path)
	return path
}

// MarginOpts mirrors the original's margin() kwargs: all, then x/y, then
// the specific sides, applied in that order so later fields win.
type MarginOpts struct {
	All                          *stepval.StepVal[MarginValue]
	X, Y                         *stepval.StepVal[MarginValue]
	Left, Right, Top, Bottom     *stepval.StepVal[MarginValue]
}

// Margin writes the four margin sides with the last-written-wins rule
// (all -> x/y -> specific), matching the original's margin() method.
func (b *Box) Margin(opts MarginOpts) *Box {
	if opts.All != nil {
		b.MarginTop, b.MarginBottom, b.MarginLeft, b.MarginRight = opts.All, opts.All, opts.All, opts.All
	}
	if opts.X != nil {
		b.MarginLeft, b.MarginRight = opts.X, opts.X
	}
	if opts.Y != nil {
		b.MarginTop, b.MarginBottom = opts.Y, opts.Y
	}
	if opts.Left != nil {
		b.MarginLeft = opts.Left
	}
	if opts.Right != nil {
		b.MarginRight = opts.Right
	}
	if opts.Top != nil {
		b.MarginTop = opts.Top
	}
	if opts.Bottom != nil {
		b.MarginBottom = opts.Bottom
	}
	return b
}

// PaddingOpts mirrors the original's padding() kwargs.
type PaddingOpts struct {
	All                      *stepval.StepVal[Length]
	X, Y                     *stepval.StepVal[Length]
	Left, Right, Top, Bottom *stepval.StepVal[Length]
}

// Padding writes the four padding sides with the last-written-wins rule.
func (b *Box) Padding(opts PaddingOpts) *Box {
	if opts.All != nil {
		b.PaddingTop, b.PaddingBottom, b.PaddingLeft, b.PaddingRight = opts.All, opts.All, opts.All, opts.All
	}
	if opts.X != nil {
		b.PaddingLeft, b.PaddingRight = opts.X, opts.X
	}
	if opts.Y != nil {
		b.PaddingTop, b.PaddingBottom = opts.Y, opts.Y
	}
	if opts.Left != nil {
		b.PaddingLeft = opts.Left
	}
	if opts.Right != nil {
		b.PaddingRight = opts.Right
	}
	if opts.Top != nil {
		b.PaddingTop = opts.Top
	}
	if opts.Bottom != nil {
		b.PaddingBottom = opts.Bottom
	}
	return b
}

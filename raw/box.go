package raw

import (
	boxpkg "github.com/inkstage/inkstage/box"
	"github.com/inkstage/inkstage/internal/invariant"
	"github.com/inkstage/inkstage/layoutexpr"
	"github.com/inkstage/inkstage/shape"
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
)

// Box is one step's compiled scene node: every stepped Box attribute
// resolved to its value at that step, children recursively compiled.
// Position/size stay as shape.Value (nil meaning "let the layout engine
// decide") since percent/layout-expr values can't resolve until the whole
// tree's geometry is known.
type Box struct {
	NodeID layoutexpr.NodeID
	Name   string

	X, Y          *shape.Value
	Width, Height *shape.Value

	Show    bool
	ZLevel  int
	BgColor string

	Row, Reverse bool

	PaddingLeft, PaddingRight, PaddingTop, PaddingBottom shape.Value
	MarginLeft, MarginRight, MarginTop, MarginBottom     boxpkg.MarginValue

	FlexGrow, FlexShrink               float64
	AlignItems, AlignSelf, JustifySelf boxpkg.AlignItems
	AlignContent, JustifyContent       boxpkg.AlignContent

	GapX, GapY   shape.Value
	BorderRadius float64

	URL string

	Content  Content
	Children []any // *Box, *shape.RawRect, *shape.RawPath
}

// ToRaw compiles b at step at. ctx carries the z-level/debug-layout state
// inherited from ancestors; it is copied (not mutated) on the way down,
// mirroring the original's `ctx = copy(ctx)` whenever a box overrides one
// of these ambient settings.
func ToRaw(b *boxpkg.Box, at step.Step, ctx Ctx) (*Box, error) {
	invariant.NotNil(b, "b")
	invariant.Precondition(len(at) > 0, "ToRaw: at must be a non-empty step, got %v", at)

	if z, ok := getOkZ(b, at); ok {
		ctx = ctx.withZLevel(z)
	}

	// A box's own DebugLayout only affects its own overlay frame's color
	// (applied later, once geometry is known - see DebugLayoutFrame); the
	// slide-level setting in ctx decides which boxes get tracked at all, the
	// same as the original never threading a per-box override back down
	// into ctx.debug_layout for descendants to see.
	debugEnabled := b.DebugLayout != "" || ctx.DebugLayout != ""
	if debugEnabled && ctx.DebugBoxes != nil {
		*ctx.DebugBoxes = append(*ctx.DebugBoxes, b)
	}

	var content Content
	if b.Content != nil {
		compiled, err := compileContent(b, b.Content, at, ctx)
		if err != nil {
			return nil, err
		}
		content = compiled
	}

	children, err := childrenToRaw(b.Children, at, ctx)
	if err != nil {
		return nil, err
	}
	invariant.Postcondition(len(children) <= len(b.Children), "ToRaw: compiled more children (%d) than the source box has (%d)", len(children), len(b.Children))

	return &Box{
		NodeID: b.NodeID(),
		Name:   b.Name,

		X: posValue(b.PosX, at), Y: posValue(b.PosY, at),
		Width: posValue(b.SizeW, at), Height: posValue(b.SizeH, at),

		Show:    b.Show.Get(at, true),
		ZLevel:  ctx.ZLevel,
		BgColor: getOr(b.BgColor, at, ""),

		Row:     b.Row.Get(at, false),
		Reverse: b.Reverse.Get(at, false),

		PaddingLeft:   b.PaddingLeft.Get(at, shape.Num(0)),
		PaddingRight:  b.PaddingRight.Get(at, shape.Num(0)),
		PaddingTop:    b.PaddingTop.Get(at, shape.Num(0)),
		PaddingBottom: b.PaddingBottom.Get(at, shape.Num(0)),

		MarginLeft:   b.MarginLeft.Get(at, boxpkg.FixedMargin(shape.Num(0))),
		MarginRight:  b.MarginRight.Get(at, boxpkg.FixedMargin(shape.Num(0))),
		MarginTop:    b.MarginTop.Get(at, boxpkg.FixedMargin(shape.Num(0))),
		MarginBottom: b.MarginBottom.Get(at, boxpkg.FixedMargin(shape.Num(0))),

		FlexGrow:   b.FlexGrow.Get(at, 0),
		FlexShrink: b.FlexShrink.Get(at, 1),

		AlignItems:   getOr(b.AlignItems, at, boxpkg.AlignItems("")),
		AlignSelf:    getOr(b.AlignSelf, at, boxpkg.AlignItems("")),
		JustifySelf:  getOr(b.JustifySelf, at, boxpkg.AlignItems("")),
		AlignContent: getOr(b.AlignContent, at, boxpkg.AlignContent("")),
		JustifyContent: getOr(b.JustifyContent, at, boxpkg.AlignContent("")),

		GapX: b.GapX.Get(at, shape.Num(0)),
		GapY: b.GapY.Get(at, shape.Num(0)),

		BorderRadius: b.BorderRadius.Get(at, 0),
		URL:          getOr(b.URL, at, ""),

		Content:  content,
		Children: children,
	}, nil
}

// childrenToRaw compiles every child active at at: a *Box whose Active is
// false is skipped entirely (it contributes nothing, not even a hidden
// node); drawables compile through their own ToRaw and are skipped when
// they report hidden.
func childrenToRaw(children []any, at step.Step, ctx Ctx) ([]any, error) {
	out := make([]any, 0, len(children))
	for _, child := range children {
		switch c := child.(type) {
		case *boxpkg.Box:
			if !c.Active.Get(at, true) {
				continue
			}
			raw, err := ToRaw(c, at, ctx)
			if err != nil {
				return nil, err
			}
			out = append(out, raw)
		case *shape.Rect:
			if raw := c.ToRaw(at, ctx.ZLevel); raw != nil {
				out = append(out, raw)
			}
		case *shape.Path:
			if raw := c.ToRaw(at, ctx.ZLevel); raw != nil {
				out = append(out, raw)
			}
		}
	}
	return out, nil
}

func posValue(sv *stepval.StepVal[shape.Value], at step.Step) *shape.Value {
	if sv == nil {
		return nil
	}
	v, ok := sv.GetOk(at)
	if !ok {
		return nil
	}
	return &v
}

func getOkZ(b *boxpkg.Box, at step.Step) (int, bool) {
	if b.ZLevel == nil {
		return 0, false
	}
	return b.ZLevel.GetOk(at)
}

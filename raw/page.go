package raw

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	boxpkg "github.com/inkstage/inkstage/box"
	"github.com/inkstage/inkstage/layoutexpr"
	"github.com/inkstage/inkstage/shape"
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/textmodel"
)

// Sentinel node ids for the synthetic boxes CompileSlide may wrap a page
// in: box ids are issued from 3 upward, so a real box's NodeID never
// collides with these, the same way the original's debug-steps wrapper/frame/label use
// the reserved object ids 0/1/2 rather than a real box's id(...).
const (
	debugStepsWrapperNodeID layoutexpr.NodeID = 0
	debugStepsFrameNodeID   layoutexpr.NodeID = 1
	debugStepsLabelNodeID   layoutexpr.NodeID = 2
)

const (
	debugStepsFrameHeight   = 20.0
	debugStepsFrameFontSize = 15.0
	debugLayoutZLevel       = 999999
	debugLayoutFontSize     = 8.0
	debugLayoutDefaultColor = "#ff00ff"
)

// Page is one step's fully compiled slide: canvas dimensions, background,
// and the compiled root node.
type Page struct {
	Width, Height float64
	BgColor       string
	Root          *Box

	// DebugBoxes lists every box whose debug-layout overlay is active,
	// collected while compiling Root. A layout engine resolves their
	// geometry and appends the frames DebugLayoutFrame builds from it;
	// CompileSlide cannot do this itself since it runs before layout.
	DebugBoxes []*boxpkg.Box
}

// Options configures a slide compile beyond the box tree itself.
type Options struct {
	Width, Height float64
	BgColor       string
	CodeTheme     string
	CodeLanguage  string
	DebugLayout   string
	DebugSteps    bool
}

// CompileSlide compiles root (a slide's root box, already postprocessed)
// at step at into a Page, mirroring slide_to_raw minus the debug-layout
// frame insertion (deferred to the layout engine, see Page.DebugBoxes) and
// minus the postprocess call (done by the caller against the slide before
// CompileSlide sees its root).
func CompileSlide(root *boxpkg.Box, at step.Step, opts Options) (*Page, error) {
	var debugBoxes []*boxpkg.Box
	ctx := Ctx{
		CodeTheme:    opts.CodeTheme,
		CodeLanguage: opts.CodeLanguage,
		DebugLayout:  opts.DebugLayout,
		DebugBoxes:   &debugBoxes,
	}

	compiledRoot, err := ToRaw(root, at, ctx)
	if err != nil {
		return nil, err
	}
	compiledRoot.Width = ptrShape(shape.Num(opts.Width))
	compiledRoot.Height = ptrShape(shape.Num(opts.Height))

	page := &Page{
		Width: opts.Width, Height: opts.Height,
		BgColor:    opts.BgColor,
		Root:       compiledRoot,
		DebugBoxes: debugBoxes,
	}

	if opts.DebugSteps {
		page.Height += debugStepsFrameHeight
		page.Root = &Box{
			NodeID: debugStepsWrapperNodeID,
			Show:   true,
			Width:  ptrShape(shape.Num(opts.Width)),
			Height: ptrShape(shape.Num(page.Height)),
			Children: []any{
				compiledRoot,
				debugStepsFrame(at),
			},
		}
	}
	return page, nil
}

// debugStepsFrame builds the thin footer banner a slide with DebugSteps
// enabled gets, printing the step it was emitted at.
func debugStepsFrame(at step.Step) *Box {
	return &Box{
		NodeID:  debugStepsFrameNodeID,
		Show:    true,
		BgColor: "black",
		Width:   ptrShape(shape.Percent(100)),
		Height:  ptrShape(shape.Num(debugStepsFrameHeight)),
		Children: []any{
			&Box{
				NodeID: debugStepsLabelNodeID,
				Show:   true,
				Content: &Text{
					Align: boxpkg.TextAlignStart,
					Styled: flatStyledText(at.String(), textmodel.Style{
						FontFamily: []string{"monospace"},
						Color:      textmodel.StringPtr("white"),
						Size:       textmodel.Float64(debugStepsFrameFontSize),
					}),
				},
			},
		},
	}
}

// DebugLayoutFrame builds the dashed outline and name/size label a layout
// engine appends next to box once it has resolved its geometry, mirroring
// insert_debug_layout_frame. inherited is the debug-layout color box would
// inherit from an ancestor if it doesn't set its own.
func DebugLayoutFrame(box *boxpkg.Box, inherited string, x, y, width, height float64) (*shape.RawRect, *Box) {
	color := inherited
	if color == "" {
		color = debugLayoutDefaultColor
	}
	if box.DebugLayout != "" {
		color = box.DebugLayout
	}

	w := math.Max(1, width)
	h := math.Max(1, height)

	rect := &shape.RawRect{
		Kind:   shape.RectKindRect,
		P1:     shape.Point{X: shape.Num(x), Y: shape.Num(y)},
		P2:     shape.Point{X: shape.Num(x + w), Y: shape.Num(y + h)},
		ZLevel: debugLayoutZLevel,
		Stroke: &shape.ResolvedStroke{Color: color, Width: 1, DashArray: []float64{5, 2}},
	}

	text := fmt.Sprintf("[%sx%s]", trimFloat(width), trimFloat(height))
	if box.Name != "" {
		text = fmt.Sprintf("%s %s", box.Name, text)
	}
	label := &Box{
		Show:   true,
		ZLevel: debugLayoutZLevel,
		X:      ptrShape(shape.Num(x + 1)),
		Y:      ptrShape(shape.Num(y + 1)),
		Content: &Text{
			Styled: flatStyledText(text, textmodel.Style{
				FontFamily: []string{"monospace"},
				Color:      textmodel.StringPtr(color),
				Size:       textmodel.Float64(debugLayoutFontSize),
			}),
		},
	}
	return rect, label
}

func trimFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func ptrShape(v shape.Value) *shape.Value { return &v }

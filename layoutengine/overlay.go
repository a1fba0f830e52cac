package layoutengine

import (
	boxpkg "github.com/inkstage/inkstage/box"
	"github.com/inkstage/inkstage/layoutexpr"
	"github.com/inkstage/inkstage/raw"
	"github.com/inkstage/inkstage/shape"
)

// Overlay appends a dashed outline plus a name/size label to root for
// every box in debugBoxes, using each box's now-resolved geometry -
// mirroring insert_debug_layout_frame's loop over ctx.debug_layout_boxes
// once the original's temporary layout-only render pass returns a
// position map. inherited is the slide-level debug-layout color (empty
// when debug layout wasn't turned on at the slide at all); a box's own
// DebugLayout, if set, still wins for that box's frame.
func Overlay(root *ResolvedBox, debugBoxes []*boxpkg.Box, geom layoutexpr.GeometryMap, inherited string) error {
	for _, b := range debugBoxes {
		g, ok := geom[b.NodeID()]
		if !ok {
			return &layoutexpr.ErrLayoutResolveMissingNode{Node: b.NodeID()}
		}

		rawRect, rawLabel := raw.DebugLayoutFrame(b, inherited, g.X, g.Y, g.W, g.H)

		resolvedRect, err := rawRect.Resolve(root.NodeID, geom)
		if err != nil {
			return err
		}
		root.Children = append(root.Children, &resolvedRect, convertDebugLabel(rawLabel))
	}
	return nil
}

// convertDebugLabel turns a debug-layout label box (built by
// raw.DebugLayoutFrame, carrying only literal already-placed coordinates
// and a content span) into a ResolvedBox directly, without a GeometryMap
// lookup: it was synthesized after layout ran and was never submitted to
// the engine, so it has no entry in geom to look up. Width/Height are left
// at zero, meaning "size to the label's own text content" - the same way
// the original never assigns the label box an explicit width or height.
func convertDebugLabel(label *raw.Box) *ResolvedBox {
	return &ResolvedBox{
		NodeID:  label.NodeID,
		Name:    label.Name,
		X:       numOrZero(label.X),
		Y:       numOrZero(label.Y),
		Show:    label.Show,
		ZLevel:  label.ZLevel,
		BgColor: label.BgColor,
		Content: label.Content,
	}
}

func numOrZero(v *shape.Value) float64 {
	if v == nil {
		return 0
	}
	return v.Num
}

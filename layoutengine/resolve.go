package layoutengine

import (
	"fmt"

	"github.com/inkstage/inkstage/internal/invariant"
	"github.com/inkstage/inkstage/layoutexpr"
	"github.com/inkstage/inkstage/raw"
	"github.com/inkstage/inkstage/shape"
)

// ResolvedBox is a compiled box with its geometry substituted from a
// GeometryMap: X/Y/Width/Height are now plain numbers instead of deferred
// shape.Value atoms, and every drawable child has its points resolved
// against this box's own geometry. Content is carried through unchanged -
// per spec, text/image content resolution is a no-op here since the
// layout engine that produced geom already finalized line/inline geometry.
type ResolvedBox struct {
	NodeID layoutexpr.NodeID
	Name   string

	X, Y, Width, Height float64

	Show    bool
	ZLevel  int
	BgColor string
	URL     string

	Content raw.Content

	// Children preserves the original declaration-then-z-level ordering:
	// each element is a *ResolvedBox, *shape.ResolvedRect, or
	// *ResolvedPath.
	Children []any
}

// ResolvedPath is a path with every command's points resolved to concrete
// coordinates against its owning box's geometry.
type ResolvedPath struct {
	ZLevel               int
	Stroke               *shape.ResolvedStroke
	FillColor            string
	StartArrow, EndArrow *shape.Arrow
	Commands             []shape.ResolvedPathCommand
}

// Resolve walks b, substituting geometry from geom at every node. It
// mirrors the teacher's executeTreeIO recursive type-switch: a single
// function handling every child kind a raw scene can hold, recursing into
// *raw.Box and resolving drawables directly against the parent node's
// geometry.
func Resolve(b *raw.Box, geom layoutexpr.GeometryMap) (*ResolvedBox, error) {
	invariant.NotNil(b, "b")
	invariant.NotNil(geom, "geom")

	g, ok := geom[b.NodeID]
	if !ok {
		return nil, &layoutexpr.ErrLayoutResolveMissingNode{Node: b.NodeID}
	}

	children := make([]any, 0, len(b.Children))
	for _, child := range b.Children {
		resolved, err := resolveChild(b.NodeID, child, geom)
		if err != nil {
			return nil, err
		}
		children = append(children, resolved)
	}
	invariant.Invariant(len(children) == len(b.Children), "layoutengine: resolved %d children, source scene had %d - an atom was dropped or duplicated", len(children), len(b.Children))

	return &ResolvedBox{
		NodeID:  b.NodeID,
		Name:    b.Name,
		X:       g.X,
		Y:       g.Y,
		Width:   g.W,
		Height:  g.H,
		Show:    b.Show,
		ZLevel:  b.ZLevel,
		BgColor: b.BgColor,
		URL:     b.URL,
		Content: b.Content,
		Children: children,
	}, nil
}

func resolveChild(owner layoutexpr.NodeID, child any, geom layoutexpr.GeometryMap) (any, error) {
	switch c := child.(type) {
	case *raw.Box:
		return Resolve(c, geom)

	case *shape.RawRect:
		resolved, err := c.Resolve(owner, geom)
		if err != nil {
			return nil, err
		}
		return &resolved, nil

	case *shape.RawPath:
		commands, err := c.Resolve(owner, geom)
		if err != nil {
			return nil, err
		}
		return &ResolvedPath{
			ZLevel:     c.ZLevel,
			Stroke:     c.Stroke,
			FillColor:  c.FillColor,
			StartArrow: c.StartArrow,
			EndArrow:   c.EndArrow,
			Commands:   commands,
		}, nil

	default:
		return nil, &ErrUnknownSceneChild{Type: fmt.Sprintf("%T", child)}
	}
}

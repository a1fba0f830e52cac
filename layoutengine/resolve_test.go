package layoutengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstage/inkstage/box"
	"github.com/inkstage/inkstage/layoutexpr"
	"github.com/inkstage/inkstage/layoutengine"
	"github.com/inkstage/inkstage/raw"
	"github.com/inkstage/inkstage/shape"
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
)

func TestResolveSubstitutesGeometryAtRoot(t *testing.T) {
	root := box.New(box.BoxOptions{})
	compiled, err := raw.ToRaw(root, step.FromInt(1), raw.Ctx{})
	require.NoError(t, err)

	geom := layoutexpr.GeometryMap{
		compiled.NodeID: {X: 1, Y: 2, W: 800, H: 600},
	}

	resolved, err := layoutengine.Resolve(compiled, geom)
	require.NoError(t, err)
	assert.Equal(t, 1.0, resolved.X)
	assert.Equal(t, 2.0, resolved.Y)
	assert.Equal(t, 800.0, resolved.Width)
	assert.Equal(t, 600.0, resolved.Height)
}

func TestResolveMissingNodeErrors(t *testing.T) {
	root := box.New(box.BoxOptions{})
	compiled, err := raw.ToRaw(root, step.FromInt(1), raw.Ctx{})
	require.NoError(t, err)

	_, err = layoutengine.Resolve(compiled, layoutexpr.GeometryMap{})
	require.Error(t, err)
}

func TestResolveRecursesIntoChildBoxes(t *testing.T) {
	root := box.New(box.BoxOptions{})
	child := root.Box(box.BoxOptions{})

	compiled, err := raw.ToRaw(root, step.FromInt(1), raw.Ctx{})
	require.NoError(t, err)
	compiledChild := compiled.Children[0].(*raw.Box)

	geom := layoutexpr.GeometryMap{
		compiled.NodeID:      {W: 800, H: 600},
		compiledChild.NodeID: {X: 10, Y: 20, W: 100, H: 50},
	}

	resolved, err := layoutengine.Resolve(compiled, geom)
	require.NoError(t, err)
	require.Len(t, resolved.Children, 1)
	resolvedChild := resolved.Children[0].(*layoutengine.ResolvedBox)
	assert.Equal(t, 10.0, resolvedChild.X)
	assert.Equal(t, 50.0, resolvedChild.Height)
	_ = child
}

func TestResolveResolvesDrawableChildAgainstOwner(t *testing.T) {
	root := box.New(box.BoxOptions{})
	rect := shape.NewRect(
		stepval.Const(shape.PointNum(0, 0)),
		stepval.Const(shape.Point{X: shape.Percent(50), Y: shape.Percent(50)}),
	)
	root.Add(rect)

	compiled, err := raw.ToRaw(root, step.FromInt(1), raw.Ctx{})
	require.NoError(t, err)

	geom := layoutexpr.GeometryMap{
		compiled.NodeID: {X: 0, Y: 0, W: 200, H: 100},
	}

	resolved, err := layoutengine.Resolve(compiled, geom)
	require.NoError(t, err)
	require.Len(t, resolved.Children, 1)
	resolvedRect := resolved.Children[0].(*shape.ResolvedRect)
	assert.Equal(t, 100.0, resolvedRect.X2) // 50% of width 200
	assert.Equal(t, 50.0, resolvedRect.Y2)  // 50% of height 100
}

package layoutexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstage/inkstage/layoutexpr"
)

func geomFixture() layoutexpr.GeometryMap {
	return layoutexpr.GeometryMap{
		1: {X: 10, Y: 20, W: 100, H: 50,
			Lines: []layoutexpr.LineGeom{{X: 10, Y: 20, W: 90, H: 10}},
			Inline: map[layoutexpr.AnchorID]layoutexpr.InlineGeom{
				0: {X: 15, Y: 25, W: 5, H: 8},
			},
		},
		2: {X: 200, Y: 300, W: 40, H: 40},
	}
}

func TestResolveArrowExpression(t *testing.T) {
	// Two boxes at known coordinates; a path from b2.p(0,0.5) to
	// (b2.x()-30, b1.y(0.5)), mirroring scenario §8.4. The start point is
	// checked as its offset from b2's origin (w*0, h*0.5), the end point
	// as absolute coordinates.
	geom := geomFixture()

	startX, err := layoutexpr.Resolve(layoutexpr.W(2, 0), geom)
	require.NoError(t, err)
	assert.Equal(t, 0.0, startX)

	startY, err := layoutexpr.Resolve(layoutexpr.AddN(layoutexpr.H(2, 0.5), 0), geom)
	require.NoError(t, err)
	assert.Equal(t, 20.0, startY) // 40 * 0.5

	endX, err := layoutexpr.Resolve(layoutexpr.SubN(layoutexpr.X(2), 30), geom)
	require.NoError(t, err)
	assert.Equal(t, 170.0, endX) // 200 - 30

	endY, err := layoutexpr.Resolve(layoutexpr.Add(layoutexpr.Y(1), layoutexpr.H(1, 0.5)), geom)
	require.NoError(t, err)
	assert.Equal(t, 45.0, endY) // b1.y(0.5) == y(1) + h(1)*0.5 == 20 + 25
}

func TestResolveBinOps(t *testing.T) {
	geom := geomFixture()

	v, err := layoutexpr.Resolve(layoutexpr.Add(layoutexpr.X(1), layoutexpr.Const(5)), geom)
	require.NoError(t, err)
	assert.Equal(t, 15.0, v)

	v, err = layoutexpr.Resolve(layoutexpr.Mul(layoutexpr.Const(3), layoutexpr.Const(4)), geom)
	require.NoError(t, err)
	assert.Equal(t, 12.0, v)
}

func TestResolveMax(t *testing.T) {
	geom := geomFixture()
	v, err := layoutexpr.Resolve(layoutexpr.Max(layoutexpr.X(1), layoutexpr.X(2)), geom)
	require.NoError(t, err)
	assert.Equal(t, 200.0, v)
}

func TestResolveMaxEmptyIsError(t *testing.T) {
	_, err := layoutexpr.Resolve(layoutexpr.Max(), geomFixture())
	require.Error(t, err)
}

func TestResolveMissingNode(t *testing.T) {
	_, err := layoutexpr.Resolve(layoutexpr.X(99), geomFixture())
	require.Error(t, err)
	var missing *layoutexpr.ErrLayoutResolveMissingNode
	assert.ErrorAs(t, err, &missing)
}

func TestResolveMissingLine(t *testing.T) {
	_, err := layoutexpr.Resolve(layoutexpr.LineX(1, 9), geomFixture())
	require.Error(t, err)
	var missing *layoutexpr.ErrLayoutResolveMissingLine
	assert.ErrorAs(t, err, &missing)
}

func TestResolveMissingAnchor(t *testing.T) {
	_, err := layoutexpr.Resolve(layoutexpr.InlineX(1, 99), geomFixture())
	require.Error(t, err)
	var missing *layoutexpr.ErrLayoutResolveMissingAnchor
	assert.ErrorAs(t, err, &missing)
}

func TestResolveLineAndInlineAtoms(t *testing.T) {
	geom := geomFixture()

	v, err := layoutexpr.Resolve(layoutexpr.LineY(1, 0), geom)
	require.NoError(t, err)
	assert.Equal(t, 20.0, v)

	v, err = layoutexpr.Resolve(layoutexpr.InlineW(1, 0, 1), geom)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

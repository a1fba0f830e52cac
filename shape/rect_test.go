package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstage/inkstage/layoutexpr"
	"github.com/inkstage/inkstage/shape"
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
)

func TestRectToRawHiddenAtStep(t *testing.T) {
	r := shape.NewRect(
		stepval.Const(shape.PointNum(0, 0)),
		stepval.Const(shape.PointNum(10, 10)),
	)
	show := stepval.New[bool]()
	show.At(step.FromInt(1), false)
	show.At(step.FromInt(2), true)
	r.Show = show

	assert.Nil(t, r.ToRaw(step.FromInt(1), 0))
	require.NotNil(t, r.ToRaw(step.FromInt(2), 0))
}

func TestRectToRawUsesFallbackZLevel(t *testing.T) {
	r := shape.NewOval(
		stepval.Const(shape.PointNum(0, 0)),
		stepval.Const(shape.PointNum(10, 10)),
	)
	raw := r.ToRaw(step.FromInt(1), 5)
	require.NotNil(t, raw)
	assert.Equal(t, shape.RectKindOval, raw.Kind)
	assert.Equal(t, 5, raw.ZLevel)
}

func TestRectToRawOwnZLevelOverridesDefault(t *testing.T) {
	r := shape.NewRect(
		stepval.Const(shape.PointNum(0, 0)),
		stepval.Const(shape.PointNum(10, 10)),
	)
	r.ZLevel = stepval.Const(9)
	raw := r.ToRaw(step.FromInt(1), 5)
	require.NotNil(t, raw)
	assert.Equal(t, 9, raw.ZLevel)
}

func TestRectToRawResolvesStroke(t *testing.T) {
	r := shape.NewRect(
		stepval.Const(shape.PointNum(0, 0)),
		stepval.Const(shape.PointNum(10, 10)),
	)
	r.Stroke = shape.NewStroke("blue")
	raw := r.ToRaw(step.FromInt(1), 0)
	require.NotNil(t, raw)
	require.NotNil(t, raw.Stroke)
	assert.Equal(t, "blue", raw.Stroke.Color)
	assert.Equal(t, 1.0, raw.Stroke.Width)
}

func TestRawRectResolve(t *testing.T) {
	raw := shape.RawRect{
		Kind: shape.RectKindRect,
		P1:   shape.PointNum(0, 0),
		P2:   shape.Point{X: shape.Percent(50), Y: shape.Num(20)},
	}
	geom := layoutexpr.GeometryMap{3: {W: 200, H: 100}}
	resolved, err := raw.Resolve(3, geom)
	require.NoError(t, err)
	assert.Equal(t, 0.0, resolved.X1)
	assert.Equal(t, 0.0, resolved.Y1)
	assert.Equal(t, 100.0, resolved.X2)
	assert.Equal(t, 20.0, resolved.Y2)
}

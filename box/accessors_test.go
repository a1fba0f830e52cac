package box_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstage/inkstage/box"
	"github.com/inkstage/inkstage/layoutexpr"
	"github.com/inkstage/inkstage/shape"
	"github.com/inkstage/inkstage/step"
)

func TestXZeroFractionReturnsPlainAtom(t *testing.T) {
	b := box.New(box.BoxOptions{})
	expr := b.X(0)
	assert.Equal(t, layoutexpr.KindAtom, expr.Kind)
	assert.Equal(t, layoutexpr.AtomX, expr.AtomKind)
}

func TestXNonZeroFractionAddsWidthAtom(t *testing.T) {
	b := box.New(box.BoxOptions{})
	expr := b.X(0.5)
	assert.Equal(t, layoutexpr.KindBinOp, expr.Kind)
	assert.Equal(t, "+", expr.Op)
	assert.Equal(t, 0.5, expr.Right.Fraction)
}

func TestLineBoxSingleLineUsesLineWidth(t *testing.T) {
	b := box.New(box.BoxOptions{})
	lb := b.LineBox(0, 1, box.BoxOptions{})
	require.NotNil(t, lb.SizeW)
	v := lb.SizeW.Get(step.FromInt(1), shape.Value{})
	require.Equal(t, shape.ValueExpr, v.Kind)
	assert.Equal(t, layoutexpr.AtomLineW, v.Expr.AtomKind)
}

func TestLineBoxMultiLineUsesMaxWidthAndScaledHeight(t *testing.T) {
	b := box.New(box.BoxOptions{})
	lb := b.LineBox(2, 3, box.BoxOptions{})
	w := lb.SizeW.Get(step.FromInt(1), shape.Value{})
	require.Equal(t, layoutexpr.KindMax, w.Expr.Kind)
	require.Len(t, w.Expr.Children, 3)

	h := lb.SizeH.Get(step.FromInt(1), shape.Value{})
	require.Equal(t, layoutexpr.KindBinOp, h.Expr.Kind)
	assert.Equal(t, "*", h.Expr.Op)
	assert.Equal(t, 3.0, h.Expr.Right.Value)
}

func TestInlineBoxBindsAllFourAtoms(t *testing.T) {
	b := box.New(box.BoxOptions{})
	ib := b.InlineBox(layoutexpr.AnchorID(7), box.BoxOptions{})
	require.NotNil(t, ib.PosX)
	require.NotNil(t, ib.SizeW)
	v := ib.PosX.Get(step.FromInt(1), shape.Value{})
	assert.Equal(t, layoutexpr.AtomInlineX, v.Expr.AtomKind)
	assert.Equal(t, layoutexpr.AnchorID(7), v.Expr.Anchor)
}

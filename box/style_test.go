package box_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstage/inkstage/box"
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
	"github.com/inkstage/inkstage/textmodel"
)

func TestGetStyleMissingReturnsFalse(t *testing.T) {
	root := box.New(box.BoxOptions{})
	_, ok := root.GetStyle("missing")
	assert.False(t, ok)
}

func TestChildShadowsParentStyle(t *testing.T) {
	root := box.New(box.BoxOptions{})
	root.SetStyle("hl", stepval.Const(textStyle("red")))
	child := root.Box(box.BoxOptions{})
	child.SetStyle("hl", stepval.Const(textStyle("blue")))

	sv, ok := child.GetStyle("hl")
	require.True(t, ok)
	assert.Equal(t, "blue", *sv.Get(step.FromInt(1), textmodel.Style{}).Color)
}

func TestUpdateStyleMergesOverExistingConstant(t *testing.T) {
	root := box.New(box.BoxOptions{})
	require.NoError(t, root.UpdateStyle("hl", textmodel.Style{Color: textmodel.StringPtr("red")}))
	require.NoError(t, root.UpdateStyle("hl", textmodel.Style{Size: textmodel.Float64(10)}))

	sv, ok := root.GetStyle("hl")
	require.True(t, ok)
	merged := sv.Get(step.FromInt(1), textmodel.Style{})
	assert.Equal(t, "red", *merged.Color)
	assert.Equal(t, 10.0, *merged.Size)
}

func TestUpdateStyleRejectsSteppedExisting(t *testing.T) {
	root := box.New(box.BoxOptions{})
	sv := stepval.New[textmodel.Style]()
	sv.At(step.FromInt(1), textStyle("red"))
	sv.At(step.FromInt(2), textStyle("blue"))
	root.SetStyle("hl", sv)

	err := root.UpdateStyle("hl", textmodel.Style{Size: textmodel.Float64(10)})
	assert.ErrorIs(t, err, box.ErrNonPrimitiveStyle)
}

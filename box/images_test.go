package box_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkstage/inkstage/box"
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
)

func TestCollectImageSourcesDedupesByPathAcrossSteps(t *testing.T) {
	root := box.New(box.BoxOptions{})
	sv := stepval.New[box.ImageSource]()
	sv.At(step.FromInt(1), box.ImageSource{Path: "a.png"})
	sv.At(step.FromInt(2), box.ImageSource{Path: "b.png"})
	sv.At(step.FromInt(3), box.ImageSource{Path: "a.png"})
	root.Image(sv, box.DefaultImageOpts())

	got := box.CollectImageSources(root)
	assert.Len(t, got, 2)
}

func TestCollectImageSourcesWalksNestedChildren(t *testing.T) {
	root := box.New(box.BoxOptions{})
	child := root.Box(box.BoxOptions{})
	child.Image(stepval.Const(box.ImageSource{Path: "nested.png"}), box.DefaultImageOpts())

	got := box.CollectImageSources(root)
	assert.Equal(t, []box.ImageSource{{Path: "nested.png"}}, got)
}

func TestCollectImageSourcesIgnoresEmptySource(t *testing.T) {
	root := box.New(box.BoxOptions{})
	root.Image(stepval.Const(box.ImageSource{}), box.DefaultImageOpts())

	assert.Empty(t, box.CollectImageSources(root))
}

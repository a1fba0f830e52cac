package box

import (
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
)

// ExtractSteps implements stepval.Extractable: it contributes the named
// steps of every one of this box's own stepped attributes, then
// recurses into its content and children, mirroring the original's
// recursive walk over a box's `__dict__` plus its children list.
func (b *Box) ExtractSteps(out step.Set) {
	stepval.ExtractSteps(out, b.PosX)
	stepval.ExtractSteps(out, b.PosY)
	stepval.ExtractSteps(out, b.SizeW)
	stepval.ExtractSteps(out, b.SizeH)
	stepval.ExtractSteps(out, b.ZLevel)
	stepval.ExtractSteps(out, b.Show)
	stepval.ExtractSteps(out, b.Active)
	stepval.ExtractSteps(out, b.BgColor)
	stepval.ExtractSteps(out, b.Row)
	stepval.ExtractSteps(out, b.Reverse)
	stepval.ExtractSteps(out, b.PaddingLeft)
	stepval.ExtractSteps(out, b.PaddingRight)
	stepval.ExtractSteps(out, b.PaddingTop)
	stepval.ExtractSteps(out, b.PaddingBottom)
	stepval.ExtractSteps(out, b.MarginLeft)
	stepval.ExtractSteps(out, b.MarginRight)
	stepval.ExtractSteps(out, b.MarginTop)
	stepval.ExtractSteps(out, b.MarginBottom)
	stepval.ExtractSteps(out, b.FlexGrow)
	stepval.ExtractSteps(out, b.FlexShrink)
	stepval.ExtractSteps(out, b.AlignItems)
	stepval.ExtractSteps(out, b.AlignSelf)
	stepval.ExtractSteps(out, b.JustifySelf)
	stepval.ExtractSteps(out, b.AlignContent)
	stepval.ExtractSteps(out, b.JustifyContent)
	stepval.ExtractSteps(out, b.GapX)
	stepval.ExtractSteps(out, b.GapY)
	stepval.ExtractSteps(out, b.BorderRadius)
	stepval.ExtractSteps(out, b.URL)

	switch c := b.Content.(type) {
	case TextContent:
		stepval.ExtractSteps(out, c.Text)
		stepval.ExtractSteps(out, c.Style)
		stepval.ExtractSteps(out, c.Align)
		stepval.ExtractSteps(out, c.SyntaxLanguage)
		stepval.ExtractSteps(out, c.SyntaxTheme)
	case ImageContent:
		stepval.ExtractSteps(out, c.Source)
		stepval.ExtractSteps(out, c.EnableSteps)
	}

	for _, child := range b.Children {
		stepval.ExtractSteps(out, child)
	}
}

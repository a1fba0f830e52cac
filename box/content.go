package box

import (
	"github.com/inkstage/inkstage/stepval"
	"github.com/inkstage/inkstage/textmodel"
)

// Content is a box's leaf payload: text or an image. A box with nil
// Content is a pure layout container.
type Content interface {
	isContent()
}

// TextContent is the stepped text payload of a text()/code() box.
type TextContent struct {
	Text            *stepval.StepVal[string]
	StyleName       string // non-empty: resolve a named style from the scope chain
	Style           *stepval.StepVal[textmodel.Style]
	Align           *stepval.StepVal[TextAlign]
	IsCode          bool
	ParseStyles     bool
	StyleDelimiters textmodel.Delimiters
	SyntaxLanguage  *stepval.StepVal[string]
	SyntaxTheme     *stepval.StepVal[string]
}

func (TextContent) isContent() {}

// ImageSource is a caller-supplied image: either a filesystem path or
// raw encoded bytes already in memory.
type ImageSource struct {
	Path string
	Data []byte
}

// ImageContent is the stepped image payload of an image() box.
type ImageContent struct {
	Source      *stepval.StepVal[ImageSource]
	EnableSteps *stepval.StepVal[bool]
	ShiftSteps  int
}

func (ImageContent) isContent() {}

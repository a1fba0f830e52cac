package raw

import (
	"strings"

	boxpkg "github.com/inkstage/inkstage/box"
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
	"github.com/inkstage/inkstage/textmodel"
)

// Content is a compiled leaf payload: Text or Image.
type Content interface {
	isContent()
}

// Text is a text or code box's content at one step: parsed lines/spans/
// anchors plus the resolved style each span indexes into, and - for code -
// the syntax-highlight spans laid over the same line structure.
type Text struct {
	Styled         textmodel.StyledText
	Align          boxpkg.TextAlign
	IsCode         bool
	SyntaxLanguage string
	SyntaxTheme    string
	Highlighted    []textmodel.HighlightedLine // nil unless IsCode
}

func (Text) isContent() {}

// Image is an image box's content at one step.
type Image struct {
	Source boxpkg.ImageSource
}

func (Image) isContent() {}

type styleProviderFunc func(name string) (*stepval.StepVal[textmodel.Style], bool)

func (f styleProviderFunc) Style(name string) (*stepval.StepVal[textmodel.Style], bool) { return f(name) }

// compileContent resolves owner's content at step at. owner is the box the
// content belongs to, used to resolve named styles through its ancestor
// scope (box.GetStyle), the same precedence box_to_raw gets for free from
// ToRawContext's pushed-while-descending style stack.
func compileContent(owner *boxpkg.Box, c boxpkg.Content, at step.Step, ctx Ctx) (Content, error) {
	switch tc := c.(type) {
	case boxpkg.TextContent:
		return compileText(owner, tc, at, ctx)
	case boxpkg.ImageContent:
		return compileImage(tc, at)
	default:
		return nil, nil
	}
}

func compileText(owner *boxpkg.Box, c boxpkg.TextContent, at step.Step, ctx Ctx) (*Text, error) {
	text := getOr(c.Text, at, "")
	align := getOr(c.Align, at, boxpkg.TextAlignStart)

	base := textmodel.DefaultStyle()
	if c.IsCode {
		if codeSV, ok := owner.GetStyle("code"); ok {
			base = base.Update(codeSV.Get(at, textmodel.Style{}))
		}
	}
	if defaultSV, ok := owner.GetStyle("default"); ok {
		base = base.Update(defaultSV.Get(at, textmodel.Style{}))
	}
	if c.StyleName != "" {
		named, ok := owner.GetStyle(c.StyleName)
		if !ok {
			return nil, &ErrUnknownStyle{Name: c.StyleName}
		}
		base = base.Update(named.Get(at, textmodel.Style{}))
	}
	if c.Style != nil {
		base = base.Update(c.Style.Get(at, textmodel.Style{}))
	}

	var styled textmodel.StyledText
	if c.ParseStyles {
		provider := styleProviderFunc(owner.GetStyle)
		sv, err := textmodel.ParseStyledText(text, c.StyleDelimiters, base, provider)
		if err != nil {
			return nil, err
		}
		styled = sv.Get(at, textmodel.StyledText{})
	} else {
		styled = flatStyledText(text, base)
	}

	out := &Text{Styled: styled, Align: align, IsCode: c.IsCode}
	if c.IsCode {
		language := getOr(c.SyntaxLanguage, at, ctx.CodeLanguage)
		theme := getOr(c.SyntaxTheme, at, ctx.CodeTheme)
		highlighted, err := textmodel.HighlightCode(text, language, theme)
		if err != nil {
			return nil, err
		}
		out.SyntaxLanguage = language
		out.SyntaxTheme = theme
		out.Highlighted = highlighted
	}
	return out, nil
}

// flatStyledText builds the trivial StyledText a non-parsed text content
// compiles to: every line is one span, uniformly styled under base.
func flatStyledText(text string, base textmodel.Style) textmodel.StyledText {
	lines := make([]textmodel.Line, 0)
	for _, l := range strings.Split(text, "\n") {
		lines = append(lines, textmodel.Line{
			Text:  l,
			Spans: []textmodel.Span{{Start: 0, Length: len(l), StyleIndex: 0}},
		})
	}
	return textmodel.StyledText{
		Lines:              lines,
		Styles:             []textmodel.Style{base},
		DefaultFontSize:    derefOr(base.Size, 32),
		DefaultLineSpacing: derefOr(base.LineSpacing, 1.2),
	}
}

func derefOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func compileImage(c boxpkg.ImageContent, at step.Step) (*Image, error) {
	return &Image{Source: getOr(c.Source, at, boxpkg.ImageSource{})}, nil
}

// getOr reads sv at at, tolerating a nil StepVal (an unset optional
// stepped field) by returning def instead of panicking on the nil
// receiver.
func getOr[T any](sv *stepval.StepVal[T], at step.Step, def T) T {
	if sv == nil {
		return def
	}
	return sv.Get(at, def)
}

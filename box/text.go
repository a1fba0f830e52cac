package box

import (
	"strings"

	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
	"github.com/inkstage/inkstage/textmodel"
)

// TextOpts configures a text() box beyond the shared BoxOptions.
type TextOpts struct {
	Box             BoxOptions
	StyleName       string
	Style           *stepval.StepVal[textmodel.Style]
	Align           *stepval.StepVal[TextAlign]
	Strip           bool
	ParseStyles     bool
	StyleDelimiters textmodel.Delimiters
}

// DefaultTextOpts returns the original's text() defaults: strip
// leading/trailing whitespace, parse inline styles, default delimiters.
func DefaultTextOpts() TextOpts {
	return TextOpts{
		Align:           stepval.Const(TextAlignStart),
		Strip:           true,
		ParseStyles:     true,
		StyleDelimiters: textmodel.DefaultDelimiters(),
	}
}

// Text creates a child box whose content is plain styled text.
func (b *Box) Text(text *stepval.StepVal[string], opts TextOpts) *Box {
	if opts.Strip {
		text = stepval.Map(text, strings.TrimSpace)
	}
	child := b.Box(opts.Box)
	child.Content = TextContent{
		Text:            text,
		StyleName:       opts.StyleName,
		Style:           opts.Style,
		Align:           opts.Align,
		IsCode:          false,
		ParseStyles:     opts.ParseStyles,
		StyleDelimiters: opts.StyleDelimiters,
	}
	return child
}

// CodeOpts configures a code() box beyond the shared BoxOptions.
type CodeOpts struct {
	Box             BoxOptions
	Language        *stepval.StepVal[string]
	Theme           *stepval.StepVal[string]
	StyleName       string
	Style           *stepval.StepVal[textmodel.Style]
	Align           *stepval.StepVal[TextAlign]
	Strip           bool
	ParseStyles     bool
	StyleDelimiters textmodel.Delimiters

	// Marker is the trailing-line step-reveal token (see
	// textmodel.ParseStepMarkers). Empty uses textmodel.DefaultCodeStepMarker.
	Marker string
}

// DefaultCodeOpts returns the original's code() defaults: strip, do NOT
// parse inline styles (code step-markers use a separate parser), default
// delimiters for when a caller opts back into ParseStyles.
func DefaultCodeOpts() CodeOpts {
	return CodeOpts{
		Align:           stepval.Const(TextAlignStart),
		Strip:           true,
		ParseStyles:     false,
		StyleDelimiters: textmodel.DefaultDelimiters(),
	}
}

// Code creates a child box whose content is a syntax-highlighted,
// step-gated code block. Trailing "<marker> SELECTOR" lines (see
// textmodel.ParseStepMarkers) are parsed against the value at step 1: a
// parse failure (unknown mode flag, bad selector) is not reported at all:
// Code builds a box rather than returning an error, the box keeps the
// unparsed text, and the raw scene compiler does not re-parse it. On
// success, the parsed StepVal's named steps make the reveal
// boundaries visible to step discovery for free, since they become
// TextContent.Text's own named steps.
func (b *Box) Code(text *stepval.StepVal[string], opts CodeOpts) *Box {
	if opts.Strip {
		text = stepval.Map(text, strings.TrimSpace)
	}
	marker := opts.Marker
	if marker == "" {
		marker = textmodel.DefaultCodeStepMarker
	}
	if marked, _, err := textmodel.ParseStepMarkers(text.Get(step.FromInt(1), ""), marker); err == nil {
		text = marked
	}
	child := b.Box(opts.Box)
	child.Content = TextContent{
		Text:            text,
		StyleName:       opts.StyleName,
		Style:           opts.Style,
		Align:           opts.Align,
		IsCode:          true,
		ParseStyles:     opts.ParseStyles,
		StyleDelimiters: opts.StyleDelimiters,
		SyntaxLanguage:  opts.Language,
		SyntaxTheme:     opts.Theme,
	}
	return child
}

// ImageOpts configures an image() box beyond the shared BoxOptions.
type ImageOpts struct {
	Box         BoxOptions
	EnableSteps *stepval.StepVal[bool]
	ShiftSteps  int
}

// DefaultImageOpts returns the original's image() defaults: step-aware
// multi-page image formats (SVG layers, etc.) are enabled by default.
func DefaultImageOpts() ImageOpts {
	return ImageOpts{EnableSteps: stepval.Const(true)}
}

// Image creates a child box whose content is an image.
func (b *Box) Image(source *stepval.StepVal[ImageSource], opts ImageOpts) *Box {
	child := b.Box(opts.Box)
	child.Content = ImageContent{
		Source:      source,
		EnableSteps: opts.EnableSteps,
		ShiftSteps:  opts.ShiftSteps,
	}
	return child
}

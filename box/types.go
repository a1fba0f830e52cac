// Package box implements the slide-deck node tree: stepped layout
// attributes, children (child boxes and drawables), and a named
// text-style scope, matching the original's Box/BoxBuilderMixin pair.
package box

import "github.com/inkstage/inkstage/shape"

// Length is a padding/gap magnitude: a literal number or percent of the
// parent box. Unlike MarginValue, it never carries "auto".
type Length = shape.Value

// AlignItems is the closed cross-axis alignment enum (spec.md's "closed
// enum" for alignment/justification).
type AlignItems string

const (
	AlignStart    AlignItems = "start"
	AlignEnd      AlignItems = "end"
	AlignCenter   AlignItems = "center"
	AlignStretch  AlignItems = "stretch"
	AlignBaseline AlignItems = "baseline"
)

// AlignContent is the closed main-axis distribution enum.
type AlignContent string

const (
	ContentStart        AlignContent = "start"
	ContentEnd          AlignContent = "end"
	ContentCenter        AlignContent = "center"
	ContentStretch       AlignContent = "stretch"
	ContentSpaceBetween  AlignContent = "space-between"
	ContentSpaceAround   AlignContent = "space-around"
	ContentSpaceEvenly   AlignContent = "space-evenly"
)

// TextAlign is the closed enum for a text content's line alignment.
type TextAlign string

const (
	TextAlignStart   TextAlign = "start"
	TextAlignCenter  TextAlign = "center"
	TextAlignEnd     TextAlign = "end"
	TextAlignJustify TextAlign = "justify"
)

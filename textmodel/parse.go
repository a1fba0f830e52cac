package textmodel

import (
	"strconv"
	"strings"

	"github.com/inkstage/inkstage/layoutexpr"
	"github.com/inkstage/inkstage/stepval"
)

// Delimiters configures the inline style syntax: Start<NAME>Open...Close.
// A doubled Start byte escapes to one literal Start byte.
type Delimiters struct {
	Start byte
	Open  byte
	Close byte
}

// DefaultDelimiters is "~name{...}" / "~3{...}" for anchors, matching the
// corpus's default style marker.
func DefaultDelimiters() Delimiters {
	return Delimiters{Start: '~', Open: '{', Close: '}'}
}

// Span is a byte-offset range of a raw line rendered under one resolved
// style, indexed into StyledText.Styles.
type Span struct {
	Start      int
	Length     int
	StyleIndex int
}

// Line is one line of raw (delimiter-stripped) text plus its styled spans.
type Line struct {
	Text  string
	Spans []Span
}

// Anchor is a declared inline anchor: the enclosing byte range of one line,
// the style in effect there, and the anchor id a layout expression can
// reference via layoutexpr.InlineX/Y/W/H.
type Anchor struct {
	ID         layoutexpr.AnchorID
	LineIndex  int
	Start      int
	Length     int
	StyleIndex int
}

// StyledText is the fully parsed result: fixed line/span/anchor structure
// plus the list of resolved styles each span indexes into.
type StyledText struct {
	Lines              []Line
	Styles             []Style
	Anchors            []Anchor
	DefaultFontSize    float64
	DefaultLineSpacing float64
}

// StyleProvider resolves a named style to its (possibly stepped) value, as
// recorded in the enclosing box's style scope.
type StyleProvider interface {
	Style(name string) (*stepval.StepVal[Style], bool)
}

type frameKind int

const (
	frameStyle frameKind = iota
	frameAnchor
)

type frame struct {
	kind     frameKind
	name     string
	anchorID layoutexpr.AnchorID
	rawStart int
}

// ParseStyledText parses text into a step-varying StyledText. The line/span/
// anchor structure never varies by step - only the merged TextStyle of
// each distinct style-stack can, since named styles may themselves be
// stepped. The final bundle of merged styles is produced by zipping every
// stack's resolved StepVal[Style] together, the same shape as the teacher's
// zip_in_steps(...).map(...) pipeline.
func ParseStyledText(text string, delim Delimiters, base Style, provider StyleProvider) (*stepval.StepVal[StyledText], error) {
	var lines []Line
	var anchors []Anchor

	var stackNames [][]string
	stackIndex := make(map[string]int)

	ensureStack := func(names []string) int {
		key := strings.Join(names, "\x00")
		if idx, ok := stackIndex[key]; ok {
			return idx
		}
		idx := len(stackNames)
		stackNames = append(stackNames, append([]string(nil), names...))
		stackIndex[key] = idx
		return idx
	}

	for lineIdx, rawInputLine := range strings.Split(text, "\n") {
		var frames []frame
		var raw strings.Builder
		var spans []Span
		var buf strings.Builder

		styleNameStack := func() []string {
			names := make([]string, 0, len(frames))
			for _, f := range frames {
				if f.kind == frameStyle {
					names = append(names, f.name)
				}
			}
			return names
		}

		addChunk := func(chunk string) {
			if chunk == "" {
				return
			}
			idx := ensureStack(styleNameStack())
			spans = append(spans, Span{Start: raw.Len(), Length: len(chunk), StyleIndex: idx})
			raw.WriteString(chunk)
		}

		i := 0
		for i < len(rawInputLine) {
			ch := rawInputLine[i]

			switch {
			case ch == delim.Close && len(frames) > 0:
				addChunk(buf.String())
				buf.Reset()

				top := frames[len(frames)-1]
				frames = frames[:len(frames)-1]
				if top.kind == frameAnchor {
					anchors = append(anchors, Anchor{
						ID:         top.anchorID,
						LineIndex:  lineIdx,
						Start:      top.rawStart,
						Length:     raw.Len() - top.rawStart,
						StyleIndex: ensureStack(styleNameStack()),
					})
				}
				i++

			case ch == delim.Start:
				if i+1 < len(rawInputLine) && rawInputLine[i+1] == delim.Start {
					buf.WriteByte(delim.Start)
					i += 2
					continue
				}
				addChunk(buf.String())
				buf.Reset()

				blockPos := strings.IndexByte(rawInputLine[i:], delim.Open)
				if blockPos == -1 {
					return nil, &ErrUnterminatedStyle{Line: lineIdx, Name: rawInputLine[i+1:]}
				}
				blockPos += i
				name := rawInputLine[i+1 : blockPos]

				if n, convErr := strconv.Atoi(name); convErr == nil {
					frames = append(frames, frame{kind: frameAnchor, anchorID: layoutexpr.AnchorID(n), rawStart: raw.Len()})
				} else {
					if _, ok := provider.Style(name); !ok {
						return nil, &ErrUnknownStyleName{Name: name}
					}
					frames = append(frames, frame{kind: frameStyle, name: name})
				}
				i = blockPos + 1

			case ch == delim.Close:
				return nil, &ErrUnbalancedBracket{Line: lineIdx}

			default:
				buf.WriteByte(ch)
				i++
			}
		}
		addChunk(buf.String())

		if len(frames) > 0 {
			top := frames[len(frames)-1]
			name := top.name
			if top.kind == frameAnchor {
				name = strconv.Itoa(int(top.anchorID))
			}
			return nil, &ErrUnterminatedStyle{Line: lineIdx, Name: name}
		}

		lines = append(lines, Line{Text: raw.String(), Spans: spans})
	}

	perStack := make([]*stepval.StepVal[Style], len(stackNames))
	for idx, names := range stackNames {
		sv, err := resolveStack(names, base, provider)
		if err != nil {
			return nil, err
		}
		perStack[idx] = sv
	}

	bundle := stepval.Const([]Style{})
	for _, sv := range perStack {
		bundle = stepval.Zip(bundle, sv, nil, Style{}, func(acc []Style, s Style) []Style {
			return append(append([]Style(nil), acc...), s)
		})
	}

	result := stepval.Map(bundle, func(styles []Style) StyledText {
		return StyledText{
			Lines:              lines,
			Styles:             styles,
			Anchors:            anchors,
			DefaultFontSize:    derefOr(base.Size, 32),
			DefaultLineSpacing: derefOr(base.LineSpacing, 1.2),
		}
	})
	return result, nil
}

func resolveStack(names []string, base Style, provider StyleProvider) (*stepval.StepVal[Style], error) {
	acc := stepval.Const(base)
	for _, name := range names {
		sv, ok := provider.Style(name)
		if !ok {
			return nil, &ErrUnknownStyleName{Name: name}
		}
		acc = stepval.Zip(acc, sv, Style{}, Style{}, func(a, b Style) Style { return a.Update(b) })
	}
	return acc, nil
}

func derefOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

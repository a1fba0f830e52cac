package textmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstage/inkstage/layoutexpr"
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
	"github.com/inkstage/inkstage/textmodel"
)

type fakeProvider map[string]*stepval.StepVal[textmodel.Style]

func (f fakeProvider) Style(name string) (*stepval.StepVal[textmodel.Style], bool) {
	sv, ok := f[name]
	return sv, ok
}

func constStyle(s textmodel.Style) *stepval.StepVal[textmodel.Style] {
	return stepval.Const(s)
}

func TestParseStyledTextPlainLine(t *testing.T) {
	base := textmodel.DefaultStyle()
	out, err := textmodel.ParseStyledText("hello world", textmodel.DefaultDelimiters(), base, fakeProvider{})
	require.NoError(t, err)

	st := out.Get(step.FromInt(1), textmodel.StyledText{})
	require.Len(t, st.Lines, 1)
	assert.Equal(t, "hello world", st.Lines[0].Text)
	require.Len(t, st.Lines[0].Spans, 1)
	assert.Equal(t, textmodel.Span{Start: 0, Length: len("hello world"), StyleIndex: 0}, st.Lines[0].Spans[0])
	require.Len(t, st.Styles, 1)
	assert.Equal(t, base, st.Styles[0])
}

func TestParseStyledTextNestedNamedStyle(t *testing.T) {
	base := textmodel.DefaultStyle()
	provider := fakeProvider{
		"bold": constStyle(textmodel.Style{Color: textmodel.StringPtr("red")}),
	}
	out, err := textmodel.ParseStyledText("a~bold{b}c", textmodel.DefaultDelimiters(), base, provider)
	require.NoError(t, err)

	st := out.Get(step.FromInt(1), textmodel.StyledText{})
	require.Len(t, st.Lines, 1)
	assert.Equal(t, "abc", st.Lines[0].Text)
	require.Len(t, st.Lines[0].Spans, 3)
	assert.Equal(t, textmodel.Span{Start: 0, Length: 1, StyleIndex: 0}, st.Lines[0].Spans[0])
	assert.Equal(t, textmodel.Span{Start: 1, Length: 1, StyleIndex: 1}, st.Lines[0].Spans[1])
	assert.Equal(t, textmodel.Span{Start: 2, Length: 1, StyleIndex: 0}, st.Lines[0].Spans[2])

	require.Len(t, st.Styles, 2)
	assert.Equal(t, base, st.Styles[0])
	assert.Equal(t, "red", *st.Styles[1].Color)
}

func TestParseStyledTextDoubledDelimiterEscapes(t *testing.T) {
	base := textmodel.DefaultStyle()
	out, err := textmodel.ParseStyledText("a~~b", textmodel.DefaultDelimiters(), base, fakeProvider{})
	require.NoError(t, err)
	st := out.Get(step.FromInt(1), textmodel.StyledText{})
	assert.Equal(t, "a~b", st.Lines[0].Text)
}

func TestParseStyledTextInlineAnchor(t *testing.T) {
	base := textmodel.DefaultStyle()
	out, err := textmodel.ParseStyledText("go ~42{here} now", textmodel.DefaultDelimiters(), base, fakeProvider{})
	require.NoError(t, err)
	st := out.Get(step.FromInt(1), textmodel.StyledText{})
	assert.Equal(t, "go here now", st.Lines[0].Text)
	require.Len(t, st.Anchors, 1)
	assert.Equal(t, layoutexpr.AnchorID(42), st.Anchors[0].ID)
	assert.Equal(t, 3, st.Anchors[0].Start)
	assert.Equal(t, 4, st.Anchors[0].Length)
}

func TestParseStyledTextSteppedNamedStyle(t *testing.T) {
	base := textmodel.DefaultStyle()
	sv := stepval.New[textmodel.Style]()
	sv.At(step.FromInt(1), textmodel.Style{Color: textmodel.StringPtr("green")})
	sv.At(step.FromInt(2), textmodel.Style{Color: textmodel.StringPtr("orange")})
	provider := fakeProvider{"hl": sv}

	out, err := textmodel.ParseStyledText("~hl{x}", textmodel.DefaultDelimiters(), base, provider)
	require.NoError(t, err)

	at1 := out.Get(step.FromInt(1), textmodel.StyledText{})
	assert.Equal(t, "green", *at1.Styles[0].Color)

	at2 := out.Get(step.FromInt(2), textmodel.StyledText{})
	assert.Equal(t, "orange", *at2.Styles[0].Color)
}

func TestParseStyledTextUnterminatedStyle(t *testing.T) {
	_, err := textmodel.ParseStyledText("a~bold{unterminated", textmodel.DefaultDelimiters(), textmodel.DefaultStyle(), fakeProvider{
		"bold": constStyle(textmodel.Style{}),
	})
	require.Error(t, err)
	var unterminated *textmodel.ErrUnterminatedStyle
	require.ErrorAs(t, err, &unterminated)
}

func TestParseStyledTextUnbalancedBracket(t *testing.T) {
	_, err := textmodel.ParseStyledText("a}b", textmodel.DefaultDelimiters(), textmodel.DefaultStyle(), fakeProvider{})
	require.Error(t, err)
	var unbalanced *textmodel.ErrUnbalancedBracket
	require.ErrorAs(t, err, &unbalanced)
}

func TestParseStyledTextUnknownStyleName(t *testing.T) {
	_, err := textmodel.ParseStyledText("a~missing{x}", textmodel.DefaultDelimiters(), textmodel.DefaultStyle(), fakeProvider{})
	require.Error(t, err)
	var unknown *textmodel.ErrUnknownStyleName
	require.ErrorAs(t, err, &unknown)
}

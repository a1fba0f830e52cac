package textmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstage/inkstage/textmodel"
)

func TestStyleUpdateLeavesUnsetFieldsAlone(t *testing.T) {
	base := textmodel.DefaultStyle()
	green := textmodel.Style{Color: textmodel.StringPtr("green")}

	merged := base.Update(green)
	assert.Equal(t, "green", *merged.Color)
	assert.Equal(t, 32.0, *merged.Size)
	assert.Equal(t, []string{"DejaVu Sans"}, merged.FontFamily)
	assert.Equal(t, 400, *merged.Weight)
}

func TestStyleUpdateOverridesEveryFieldWhenSet(t *testing.T) {
	base := textmodel.DefaultStyle()
	full, err := textmodel.NewStyle(textmodel.Style{
		FontFamily:  []string{"Arial"},
		Color:       textmodel.StringPtr("red"),
		Size:        textmodel.Float64(10),
		LineSpacing: textmodel.Float64(2),
		Italic:      textmodel.Bool(true),
		Underline:   textmodel.Bool(true),
		LineThrough: textmodel.Bool(true),
		Stretch:     textmodel.Stretch(textmodel.StretchExpanded),
		Weight:      textmodel.Int(600),
		Bold:        textmodel.Bool(true),
	})
	require.NoError(t, err)

	merged := base.Update(full)
	assert.Equal(t, []string{"Arial"}, merged.FontFamily)
	assert.Equal(t, "red", *merged.Color)
	assert.Equal(t, 10.0, *merged.Size)
	assert.Equal(t, 2.0, *merged.LineSpacing)
	assert.True(t, *merged.Italic)
	assert.True(t, *merged.Underline)
	assert.True(t, *merged.LineThrough)
	assert.Equal(t, textmodel.StretchExpanded, *merged.Stretch)
	assert.Equal(t, 600, *merged.Weight)
	assert.True(t, *merged.Bold)
}

func TestNewStyleRejectsNegativeSize(t *testing.T) {
	_, err := textmodel.NewStyle(textmodel.Style{Size: textmodel.Float64(-1)})
	require.Error(t, err)
}

func TestNewStyleRejectsNegativeLineSpacing(t *testing.T) {
	_, err := textmodel.NewStyle(textmodel.Style{LineSpacing: textmodel.Float64(-0.5)})
	require.Error(t, err)
}

func TestNewStyleRejectsOutOfRangeWeight(t *testing.T) {
	_, err := textmodel.NewStyle(textmodel.Style{Weight: textmodel.Int(0)})
	require.Error(t, err)

	_, err = textmodel.NewStyle(textmodel.Style{Weight: textmodel.Int(1001)})
	require.Error(t, err)
}

func TestNewStyleRejectsInvalidFontStretch(t *testing.T) {
	bad := textmodel.FontStretch(0)
	_, err := textmodel.NewStyle(textmodel.Style{Stretch: &bad})
	require.Error(t, err)

	bad = textmodel.FontStretch(10)
	_, err = textmodel.NewStyle(textmodel.Style{Stretch: &bad})
	require.Error(t, err)
}

func TestNewStyleRejectsEmptyColor(t *testing.T) {
	_, err := textmodel.NewStyle(textmodel.Style{Color: textmodel.StringPtr("")})
	require.Error(t, err)
}

func TestNewStyleRejectsMalformedHexColor(t *testing.T) {
	_, err := textmodel.NewStyle(textmodel.Style{Color: textmodel.StringPtr("#zzzzzz")})
	require.Error(t, err)
}

func TestNewStyleAcceptsNamedColor(t *testing.T) {
	s, err := textmodel.NewStyle(textmodel.Style{Color: textmodel.StringPtr("cornflowerblue")})
	require.NoError(t, err)
	assert.Equal(t, "cornflowerblue", *s.Color)
}

func TestDefaultStyleHasEveryFieldSet(t *testing.T) {
	d := textmodel.DefaultStyle()
	require.NotNil(t, d.Color)
	require.NotNil(t, d.Size)
	require.NotNil(t, d.LineSpacing)
	require.NotEmpty(t, d.FontFamily)
	require.NotNil(t, d.Italic)
	require.NotNil(t, d.Underline)
	require.NotNil(t, d.LineThrough)
	require.NotNil(t, d.Stretch)
	require.NotNil(t, d.Weight)
	require.NotNil(t, d.Bold)
}

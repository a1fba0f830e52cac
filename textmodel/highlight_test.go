package textmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstage/inkstage/textmodel"
)

func TestHighlightCodeSplitsAcrossLines(t *testing.T) {
	lines, err := textmodel.HighlightCode("fn main() {\n    1\n}", "rust", "monokai")
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "fn main() {", lines[0].Text)
	assert.Equal(t, "    1", lines[1].Text)
	assert.Equal(t, "}", lines[2].Text)
}

func TestHighlightCodeUnknownLanguageFallsBackToPlainText(t *testing.T) {
	lines, err := textmodel.HighlightCode("just plain text", "not-a-real-language", "not-a-real-theme")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "just plain text", lines[0].Text)
}

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstage/inkstage/resources"
)

func TestNewRegistersDefaultGenericFamilies(t *testing.T) {
	r := resources.New()

	name, err := r.ResolveFont("sans-serif")
	require.NoError(t, err)
	assert.Equal(t, "DejaVu Sans", name)

	name, err = r.ResolveFont("monospace")
	require.NoError(t, err)
	assert.Equal(t, "DejaVu Sans Mono", name)
}

func TestSetGenericFamilyOverridesDefault(t *testing.T) {
	r := resources.New()
	r.SetGenericFamily("sans-serif", "Inter")

	name, err := r.ResolveFont("sans-serif")
	require.NoError(t, err)
	assert.Equal(t, "Inter", name)
}

func TestResolveFontUnknownNameErrorsWithSuggestion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Roboto Mono.ttf"), []byte("stub"), 0o644))

	r := resources.New()
	require.NoError(t, r.LoadFontsDir(dir))

	_, err := r.ResolveFont("Roboto Mon")
	require.Error(t, err)

	var notFound *resources.ErrFontNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Roboto Mon", notFound.Name)
	assert.Equal(t, "Roboto Mono", notFound.Suggestion)
}

func TestSyntaxesAndThemesIncludeBuiltins(t *testing.T) {
	r := resources.New()

	syntaxes := r.Syntaxes()
	assert.Contains(t, syntaxes, "Python")

	themes := r.Themes()
	assert.Contains(t, themes, "monokai")
}

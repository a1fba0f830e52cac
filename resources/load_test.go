package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstage/inkstage/resources"
)

func TestLoadFontsDirDerivesFamilyFromFilename(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Open_Sans-Bold.ttf"), []byte("stub"), 0o644))

	r := resources.New()
	require.NoError(t, r.LoadFontsDir(dir))

	name, err := r.ResolveFont("Open Sans Bold")
	require.NoError(t, err)
	assert.Equal(t, "Open Sans Bold", name)
}

func TestLoadFontsDirIgnoresNonFontFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("stub"), 0o644))

	r := resources.New()
	require.NoError(t, r.LoadFontsDir(dir))

	_, err := r.ResolveFont("readme")
	assert.Error(t, err)
}

func TestLoadCodeSyntaxDirRegistersCustomName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "testC.sublime-syntax"), []byte("stub"), 0o644))

	r := resources.New()
	require.NoError(t, r.LoadCodeSyntaxDir(dir))

	assert.Contains(t, r.Syntaxes(), "testC")
}

func TestLoadCodeThemeDirRegistersCustomName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.tmTheme"), []byte("stub"), 0o644))

	r := resources.New()
	require.NoError(t, r.LoadCodeThemeDir(dir))

	assert.Contains(t, r.Themes(), "test")
}

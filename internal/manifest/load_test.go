package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstage/inkstage/internal/manifest"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFromFileTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "inkstage.toml", `
[fonts]
sans_serif = "Inter"
dirs = ["assets/fonts"]

[render]
width = 1280
height = 720
workers = 4
`)

	m, vr, err := manifest.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Inter", m.Fonts.SansSerif)
	assert.Equal(t, []string{"assets/fonts"}, m.Fonts.Dirs)
	assert.Equal(t, 1280.0, m.Render.Width)
	assert.Equal(t, 4, m.Render.Workers)
	assert.NotNil(t, vr)
}

func TestLoadFromFileTOMLUnknownKeyWarns(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "inkstage.toml", `
[fonts]
sans_serif = "Inter"
made_up_field = "oops"
`)

	_, vr, err := manifest.LoadFromFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, vr.Issues)

	found := false
	for _, issue := range vr.Issues {
		if issue.Field == "fonts.made_up_field" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestLoadFromFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "inkstage.yaml", `
fonts:
  monospace: "Fira Code"
code:
  default_theme: monokai
render:
  width: 1920
  height: 1080
`)

	m, vr, err := manifest.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Fira Code", m.Fonts.Monospace)
	assert.Equal(t, "monokai", m.Code.Theme)
	assert.False(t, vr.HasErrors())
}

func TestLoadFromFileYAMLUnknownKeyErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "inkstage.yaml", "made_up_section:\n  foo: bar\n")

	_, _, err := manifest.LoadFromFile(path)
	require.Error(t, err)
}

func TestLoadFromFileUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "inkstage.json", "{}")

	_, _, err := manifest.LoadFromFile(path)
	require.Error(t, err)
}

func TestLoadFromFileMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "inkstage.toml", "[fonts\nsans_serif = oops")

	_, _, err := manifest.LoadFromFile(path)
	require.Error(t, err)
}

func TestFindManifestFileInParentDir(t *testing.T) {
	parent := t.TempDir()
	child := filepath.Join(parent, "slides", "deep")
	require.NoError(t, os.MkdirAll(child, 0o755))
	path := writeFile(t, parent, "inkstage.toml", "")

	found, err := manifest.FindManifestFile(child)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindManifestFileNotFound(t *testing.T) {
	dir := t.TempDir()
	found, err := manifest.FindManifestFile(dir)
	require.NoError(t, err)
	assert.Empty(t, found)
}

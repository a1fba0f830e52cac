package deck_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstage/inkstage/box"
	"github.com/inkstage/inkstage/deck"
	"github.com/inkstage/inkstage/internal/testsupport"
	"github.com/inkstage/inkstage/render"
	"github.com/inkstage/inkstage/selector"
	"github.com/inkstage/inkstage/slide"
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
	"github.com/inkstage/inkstage/textmodel"
)

// fakeBackend encodes each page as a tiny deterministic marker so tests
// can assert on page identity without a real rasterizer.
type fakeBackend struct{}

func (fakeBackend) RenderPage(p render.Page) ([]byte, error) {
	return []byte(fmt.Sprintf("page:%dx%d", int(p.Width), int(p.Height))), nil
}

func (fakeBackend) CombinePDF(pages [][]byte, compressionLevel int) ([]byte, error) {
	var out []byte
	for _, p := range pages {
		out = append(out, p...)
		out = append(out, '\n')
	}
	return out, nil
}

func mustSelector(t *testing.T, text string) *stepval.StepVal[bool] {
	t.Helper()
	sv, _, err := selector.Parse(text)
	require.NoError(t, err)
	return sv
}

func TestNewSlideInheritsDeckDefaults(t *testing.T) {
	d := deck.New(deck.Options{Width: 1024, Height: 768, BgColor: "white"})
	s := d.NewSlide(slide.Options{Name: "one"})

	require.Len(t, d.Slides(), 1)
	one := step.FromInt(1)
	assert.Equal(t, 1024.0, s.Width.Get(one, 0))
	assert.Equal(t, 768.0, s.Height.Get(one, 0))
	assert.Equal(t, "white", s.BgColor.Get(one, ""))
}

func TestSlideDecoratorBuildsAndRegisters(t *testing.T) {
	d := deck.New(deck.Options{})
	called := false
	d.Slide(slide.Options{Name: "decorated"}, func(s *slide.Slide) {
		called = true
		s.Text(stepval.Const("hi"), box.DefaultTextOpts())
	})
	assert.True(t, called)
	require.Len(t, d.Slides(), 1)
}

func TestDeckStylePropagatesToDeckScope(t *testing.T) {
	style := stepval.Const(textmodel.Style{Color: textmodel.StringPtr("red")})
	d := deck.New(deck.Options{TextStyle: style})

	sv, ok := d.GetStyle("default")
	require.True(t, ok)
	assert.Equal(t, "red", *sv.Get(step.FromInt(1), textmodel.Style{}).Color)
}

func TestRenderRequiresEngineAndBackend(t *testing.T) {
	d := deck.New(deck.Options{})
	_, err := d.Render(context.Background(), deck.RenderOptions{})
	require.Error(t, err)

	_, err = d.Render(context.Background(), deck.RenderOptions{Engine: testsupport.NewFixedEngine()})
	require.Error(t, err)
}

func TestRenderRejectsBadCompressionLevel(t *testing.T) {
	d := deck.New(deck.Options{})
	_, err := d.Render(context.Background(), deck.RenderOptions{
		Engine:           testsupport.NewFixedEngine(),
		Backend:          fakeBackend{},
		CompressionLevel: 11,
	})
	require.Error(t, err)
}

func TestRenderReturnsOneOutputPerPage(t *testing.T) {
	d := deck.New(deck.Options{Width: 800, Height: 600})
	d.Slide(slide.Options{Name: "frag"}, func(s *slide.Slide) {
		s.Box.Box(box.BoxOptions{Show: stepval.Const(true)})
		s.Box.Box(box.BoxOptions{Show: mustSelector(t, "2+")})
		s.Box.Box(box.BoxOptions{Show: mustSelector(t, "3+")})
	})

	outputs, err := d.Render(context.Background(), deck.RenderOptions{
		Engine:  testsupport.NewFixedEngine(),
		Backend: fakeBackend{},
	})
	require.NoError(t, err)
	require.Len(t, outputs, 3)
	for i, o := range outputs {
		assert.Equal(t, i, o.Index)
		assert.NotEmpty(t, o.Bytes)
	}
}

func TestRenderWritesPDFFile(t *testing.T) {
	d := deck.New(deck.Options{Width: 800, Height: 600})
	d.Slide(slide.Options{Name: "one"}, func(s *slide.Slide) {
		s.Text(stepval.Const("hello"), box.DefaultTextOpts())
	})

	dir := t.TempDir()
	path := filepath.Join(dir, "out.pdf")
	_, err := d.Render(context.Background(), deck.RenderOptions{
		Engine:  testsupport.NewFixedEngine(),
		Backend: fakeBackend{},
		Format:  "pdf",
		Path:    path,
	})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderWritesPNGDirectory(t *testing.T) {
	d := deck.New(deck.Options{Width: 800, Height: 600})
	d.Slide(slide.Options{Name: "one"}, func(s *slide.Slide) {
		s.Text(stepval.Const("hello"), box.DefaultTextOpts())
	})

	dir := t.TempDir()
	_, err := d.Render(context.Background(), deck.RenderOptions{
		Engine:  testsupport.NewFixedEngine(),
		Backend: fakeBackend{},
		Format:  "png",
		Path:    dir,
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "0.png"))
	require.NoError(t, err)
}

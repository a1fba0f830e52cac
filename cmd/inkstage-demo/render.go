package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkstage/inkstage/box"
	"github.com/inkstage/inkstage/deck"
	"github.com/inkstage/inkstage/layoutexpr"
	"github.com/inkstage/inkstage/raw"
	"github.com/inkstage/inkstage/render"
	"github.com/inkstage/inkstage/selector"
	"github.com/inkstage/inkstage/slide"
	"github.com/inkstage/inkstage/stepval"
)

var renderDemo string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one of the spec's worked example decks and print a page summary",
	Long: `Render builds one of two tiny built-in decks - "hello" (a single text
slide) or "fragment" (spec.md §8's three-box step-reveal scenario) - and
renders it with a minimal stand-in layout engine and backend, printing a
one-line summary per emitted page. It exists to exercise deck.Render end
to end; a real deployment supplies its own layoutengine.Engine and
deck.Backend.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var d *deck.Deck
		switch renderDemo {
		case "hello", "":
			d = buildHelloDeck()
		case "fragment":
			d = buildFragmentDeck()
		default:
			return fmt.Errorf("unknown --demo %q, want \"hello\" or \"fragment\"", renderDemo)
		}

		outputs, err := d.Render(context.Background(), deck.RenderOptions{
			Engine:  stackEngine{},
			Backend: summaryBackend{},
		})
		if err != nil {
			return err
		}

		for _, o := range outputs {
			fmt.Printf("page %d (step %s): %s\n", o.Index, o.Step, o.Bytes)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderDemo, "demo", "hello", `which built-in deck to render: "hello" or "fragment"`)
	rootCmd.AddCommand(renderCmd)
}

func buildHelloDeck() *deck.Deck {
	d := deck.New(deck.Options{Width: 1024, Height: 768})
	d.Slide(slide.Options{Name: "hello"}, func(s *slide.Slide) {
		s.Text(stepval.Const("Hello world!"), box.DefaultTextOpts())
	})
	return d
}

func buildFragmentDeck() *deck.Deck {
	d := deck.New(deck.Options{Width: 1024, Height: 768})
	d.Slide(slide.Options{Name: "fragment"}, func(s *slide.Slide) {
		mustShow := func(selectorText string) *stepval.StepVal[bool] {
			sv, _, err := selector.Parse(selectorText)
			if err != nil {
				panic(err)
			}
			return sv
		}
		s.Box.Box(box.BoxOptions{Name: "one", Show: mustShow("1+")})
		s.Box.Box(box.BoxOptions{Name: "two", Show: mustShow("2+")})
		s.Box.Box(box.BoxOptions{Name: "three", Show: mustShow("3+")})
	})
	return d
}

// stackEngine is a minimal stand-in for the real layout engine spec.md
// §1 keeps out of this module's scope: it gives every node the slide's
// own canvas rectangle rather than computing flex/grid layout, good
// enough to drive deck.Render end to end for this demo and nothing more.
type stackEngine struct{}

func (stackEngine) Submit(scene *raw.Box) (layoutexpr.GeometryMap, error) {
	geom := layoutexpr.GeometryMap{}
	var w, h float64
	if scene.Width != nil {
		w = scene.Width.Num
	}
	if scene.Height != nil {
		h = scene.Height.Num
	}
	var walk func(b *raw.Box)
	walk = func(b *raw.Box) {
		geom[b.NodeID] = layoutexpr.Geometry{W: w, H: h}
		for _, child := range b.Children {
			if childBox, ok := child.(*raw.Box); ok {
				walk(childBox)
			}
		}
	}
	walk(scene)
	return geom, nil
}

// summaryBackend is a minimal stand-in for the real rendering backend
// spec.md §1 keeps out of this module's scope: instead of rasterizing a
// page it prints how many top-level children the resolved scene carries.
type summaryBackend struct{}

func (summaryBackend) RenderPage(p render.Page) ([]byte, error) {
	return []byte(fmt.Sprintf("%dx%d, %d children", int(p.Width), int(p.Height), len(p.Scene.Children))), nil
}

func (summaryBackend) CombinePDF(pages [][]byte, compressionLevel int) ([]byte, error) {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = string(p)
	}
	return []byte(strings.Join(parts, "\n")), nil
}

package deck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/inkstage/inkstage/box"
	"github.com/inkstage/inkstage/layoutengine"
	"github.com/inkstage/inkstage/render"
	"github.com/inkstage/inkstage/slide"
	"github.com/inkstage/inkstage/step"
)

// Backend is the render-backend collaborator spec.md §1/§6 keeps out of
// this module's scope: given a fully laid-out, resolved page it returns
// that page's encoded bytes (a PDF page stream, or a standalone SVG/PNG
// file), and — for PDF output only — combines every page's bytes into
// one document. The actual rasterizer/vector writer lives entirely
// behind this interface.
type Backend interface {
	RenderPage(p render.Page) ([]byte, error)
	CombinePDF(pages [][]byte, compressionLevel int) ([]byte, error)
}

// PageOutput is one emitted page: its index in the final sequence, the
// step it was rendered at, and its encoded bytes (a PDF page or a
// standalone SVG/PNG document), matching spec.md §6's
// (page_index, step, bytes) triple.
type PageOutput struct {
	Index int
	Step  step.Step
	Bytes []byte
}

// RenderOptions configures a render run.
type RenderOptions struct {
	// Engine submits each page's compiled scene for layout. Required.
	Engine layoutengine.Engine
	// Backend encodes each resolved page to bytes. Required.
	Backend Backend

	// Format selects the output container: "pdf" (default), "svg", or
	// "png". Only affects Path-based output; Render always returns every
	// page's individually-encoded bytes.
	Format string

	// Path, if non-empty, is where output is written: a single file for
	// "pdf", or a directory populated with "<index>.<ext>" files for
	// "svg"/"png". Left empty, nothing is written to disk and the
	// caller consumes the returned triples directly.
	Path string

	// CompressionLevel is 0 (none) to 10 (max), PDF output only.
	CompressionLevel int

	// Workers bounds concurrent page work; <=0 uses render.Pool's own
	// default (runtime.NumCPU()).
	Workers int

	// Progress, if set, is called once per completed page in final
	// emission order, for a caller driving a progress bar.
	Progress func(done, total int)
}

// Render compiles, lays out, resolves, and encodes every page of every
// slide this deck has registered, in spec.md §4.7's page-ordering rule
// (subslides interleaved, declaration order across slides). Image
// sources reachable from any slide are registered into the deck's image
// cache first, single-threaded, before any per-page work is dispatched
// (spec.md §5's image-cache concurrency policy).
func (d *Deck) Render(ctx context.Context, opts RenderOptions) ([]PageOutput, error) {
	if opts.Engine == nil {
		return nil, fmt.Errorf("deck: Render: Options.Engine is required")
	}
	if opts.Backend == nil {
		return nil, fmt.Errorf("deck: Render: Options.Backend is required")
	}
	if opts.CompressionLevel < 0 || opts.CompressionLevel > 10 {
		return nil, fmt.Errorf("deck: Render: CompressionLevel must be 0-10, got %d", opts.CompressionLevel)
	}
	format := opts.Format
	if format == "" {
		format = "pdf"
	}

	sessionID := uuid.New().String()
	logger := d.logger.With("session", sessionID)

	for _, s := range d.slides {
		for _, src := range box.CollectImageSources(s.Box) {
			key := box.ImageSourceKey(src)
			if key == "" {
				continue
			}
			if _, ok := d.resources.Images().Lookup(key); ok {
				continue
			}
			if _, err := d.resources.Images().Register(key, src.Data); err != nil {
				return nil, fmt.Errorf("deck: render %s: %w", sessionID, err)
			}
		}
	}

	jobs := slide.Plan(d.slides)
	logger.Info("render starting", "slides", len(d.slides), "pages", len(jobs), "format", format)

	pages, err := render.Render(ctx, jobs, render.Options{
		Engine:       opts.Engine,
		CodeTheme:    d.codeTheme,
		CodeLanguage: d.codeLanguage,
		Workers:      opts.Workers,
	})
	if err != nil {
		return nil, fmt.Errorf("deck: render %s: %w", sessionID, err)
	}

	outputs := make([]PageOutput, len(pages))
	for i, p := range pages {
		b, err := opts.Backend.RenderPage(p)
		if err != nil {
			return nil, fmt.Errorf("deck: render %s: backend: page %d: %w", sessionID, i, err)
		}
		outputs[i] = PageOutput{Index: i, Step: p.Step, Bytes: b}
		if opts.Progress != nil {
			opts.Progress(i+1, len(pages))
		}
	}

	if opts.Path == "" {
		logger.Info("render complete", "pages", len(outputs))
		return outputs, nil
	}
	if err := writeOutput(opts.Backend, outputs, format, opts.Path, opts.CompressionLevel); err != nil {
		return nil, fmt.Errorf("deck: render %s: %w", sessionID, err)
	}
	logger.Info("render complete", "pages", len(outputs), "path", opts.Path)
	return outputs, nil
}

func writeOutput(backend Backend, outputs []PageOutput, format, path string, compressionLevel int) error {
	switch format {
	case "pdf":
		raw := make([][]byte, len(outputs))
		for i, o := range outputs {
			raw[i] = o.Bytes
		}
		combined, err := backend.CombinePDF(raw, compressionLevel)
		if err != nil {
			return fmt.Errorf("combining pdf: %w", err)
		}
		return os.WriteFile(path, combined, 0o644)
	case "svg", "png":
		if err := os.MkdirAll(path, 0o755); err != nil {
			return err
		}
		for _, o := range outputs {
			name := filepath.Join(path, fmt.Sprintf("%d.%s", o.Index, format))
			if err := os.WriteFile(name, o.Bytes, 0o644); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

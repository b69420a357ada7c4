package md2html

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/alnah/go-md2html/internal/engine"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ Capability[Highlighter] = (*engine.Provider[Highlighter])(nil)
	_ Capability[Typesetter]  = (*engine.Provider[Typesetter])(nil)
)

// Renderer compiles Markdown documents.
// Create with NewRenderer. Safe for concurrent use.
type Renderer struct {
	compiler pipeline.Compiler
	workers  int
}

// NewRenderer creates a Renderer using the process-wide engines.
// Returns ErrInvalidTOCDepth or ErrInvalidWorkers for out-of-range options.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		compiler: pipeline.Compiler{
			Highlighters: engine.DefaultHighlighter(),
			Typesetters:  engine.DefaultTypesetter(),
			TOCMaxDepth:  DefaultTOCDepth,
		},
	}

	for _, opt := range opts {
		opt(r)
	}

	if d := r.compiler.TOCMaxDepth; d < MinTOCDepth || d > MaxTOCDepth {
		return nil, fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidTOCDepth, d, MinTOCDepth, MaxTOCDepth)
	}
	if r.workers < 0 {
		return nil, fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidWorkers, r.workers)
	}
	r.compiler.Workers = ResolveWorkers(r.workers)

	return r, nil
}

// Render compiles markdown into HTML and its TOC.
// Only parse and render failures (ErrHTMLConversion) and invalid front
// matter (ErrFrontMatter) are returned; missing engines degrade silently.
// A cancelled ctx returns ctx.Err().
func (r *Renderer) Render(ctx context.Context, markdown string) (*Result, error) {
	out, err := r.compiler.Compile(ctx, markdown)
	if err != nil {
		return nil, err
	}
	return &Result{HTML: out.HTML, TOC: out.TOC, Meta: out.Meta}, nil
}

var defaultRenderer = sync.OnceValue(func() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err) // defaults are always valid
	}
	return r
})

// RenderMarkdown compiles markdown with the default Renderer.
func RenderMarkdown(ctx context.Context, markdown string) (*Result, error) {
	return defaultRenderer().Render(ctx, markdown)
}

// NewHighlighter creates a chroma-backed Highlighter.
// Returns ErrEngineUnavailable when highlighting is compiled out and
// ErrUnknownStyle for an unknown style.
func NewHighlighter(opts HighlightOptions) (Highlighter, error) {
	return engine.NewHighlighter(opts)
}

// WriteStyleCSS writes the stylesheet matching highlighted output for opts.
func WriteStyleCSS(w io.Writer, opts HighlightOptions) error {
	return engine.WriteStyleCSS(w, opts)
}

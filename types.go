package md2html

import (
	"log/slog"

	"github.com/alnah/go-md2html/internal/engine"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// TocItem is one table of contents entry.
// ID equals the id attribute of the matching heading in Result.HTML.
type TocItem = pipeline.TocItem

// Result is the output of rendering one Markdown document.
type Result struct {
	HTML string    `json:"html"`
	TOC  []TocItem `json:"toc"`
	// Meta holds the parsed front matter. Nil unless front matter is
	// enabled and present.
	Meta map[string]any `json:"meta,omitempty"`
}

// Highlighter renders source code as highlighted HTML.
type Highlighter = engine.Highlighter

// Typesetter renders LaTeX math as markup.
type Typesetter = engine.Typesetter

// Capability hands out an optional engine, reporting false when unavailable.
type Capability[T any] = engine.Capability[T]

// HighlightOptions configures a chroma-backed Highlighter.
type HighlightOptions = engine.HighlightOptions

// TOC depth bounds.
const (
	MinTOCDepth     = 1
	MaxTOCDepth     = 6
	DefaultTOCDepth = pipeline.DefaultTOCMaxDepth
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithHighlighter sets the syntax highlighter. Nil disables highlighting.
func WithHighlighter(h Highlighter) Option {
	return func(r *Renderer) {
		if h == nil {
			r.compiler.Highlighters = engine.Unavailable[Highlighter](engine.HighlighterName)
			return
		}
		r.compiler.Highlighters = engine.Available(engine.HighlighterName, h)
	}
}

// WithHighlighterProvider sets a lazily resolved syntax highlighter.
func WithHighlighterProvider(c Capability[Highlighter]) Option {
	return func(r *Renderer) {
		r.compiler.Highlighters = c
	}
}

// WithTypesetter sets the math typesetter. Nil disables math typesetting.
func WithTypesetter(t Typesetter) Option {
	return func(r *Renderer) {
		if t == nil {
			r.compiler.Typesetters = engine.Unavailable[Typesetter](engine.TypesetterName)
			return
		}
		r.compiler.Typesetters = engine.Available(engine.TypesetterName, t)
	}
}

// WithTypesetterProvider sets a lazily resolved math typesetter.
func WithTypesetterProvider(c Capability[Typesetter]) Option {
	return func(r *Renderer) {
		r.compiler.Typesetters = c
	}
}

// WithLogger sets the logger for degradation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.compiler.Logger = logger
	}
}

// WithWorkers bounds concurrent code block highlighting.
// Zero selects a value from GOMAXPROCS (see ResolveWorkers).
func WithWorkers(n int) Option {
	return func(r *Renderer) {
		r.workers = n
	}
}

// WithTOCMaxDepth sets the deepest heading level listed in the TOC (1-6).
func WithTOCMaxDepth(depth int) Option {
	return func(r *Renderer) {
		r.compiler.TOCMaxDepth = depth
	}
}

// WithFrontMatter enables stripping a leading YAML front matter block
// into Result.Meta.
func WithFrontMatter(enabled bool) Option {
	return func(r *Renderer) {
		r.compiler.FrontMatter = enabled
	}
}

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alnah/go-md2html/internal/engine"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"golang.org/x/sync/errgroup"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Output is the result of compiling one Markdown document.
type Output struct {
	HTML string
	TOC  []TocItem
	Meta map[string]any
}

// Compiler turns Markdown into an HTML fragment and its TOC.
// The zero value compiles without highlighting or math typesetting.
// Safe for concurrent use; no parse state is shared between calls.
type Compiler struct {
	Highlighters engine.Capability[engine.Highlighter]
	Typesetters  engine.Capability[engine.Typesetter]

	// Workers bounds concurrent code block highlighting (0 means 1).
	Workers int
	// TOCMaxDepth is the deepest heading level listed in the TOC
	// (0 means DefaultTOCMaxDepth).
	TOCMaxDepth int
	// FrontMatter enables YAML front matter stripping.
	FrontMatter bool

	Logger *slog.Logger
}

// Compile converts Markdown to HTML.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context. A cancelled compile finishes
// in the background and its result is discarded.
func (c *Compiler) Compile(ctx context.Context, markdown string) (*Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		out *Output
		err error
	}

	done := make(chan result, 1)

	go func() {
		out, err := c.compile(ctx, markdown)
		done <- result{out: out, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.out, r.err
	}
}

func (c *Compiler) compile(ctx context.Context, markdown string) (out *Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: panic: %v", ErrHTMLConversion, r)
		}
	}()

	highlighter, typesetter := c.acquireEngines()

	pre, err := Preprocessor{FrontMatter: c.FrontMatter}.Preprocess(markdown)
	if err != nil {
		return nil, err
	}

	ext := NewExtension(NewMathRenderer(typesetter, c.logger()), html.WithXHTML())
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			ext,
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)

	source := pre.Source
	doc := md.Parser().Parse(text.NewReader(source))

	toc := ExtractTOC(doc, source, c.tocMaxDepth())

	ext.SetCodeBlocks(HighlightCodeBlocks(ctx, doc, source, highlighter, c.Workers, c.logger()))

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, source, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	return &Output{HTML: buf.String(), TOC: toc, Meta: pre.Meta}, nil
}

// acquireEngines resolves both optional engines concurrently.
// A missing or unavailable engine yields a nil handle.
func (c *Compiler) acquireEngines() (engine.Highlighter, engine.Typesetter) {
	var (
		highlighter engine.Highlighter
		typesetter  engine.Typesetter
		g           errgroup.Group
	)
	g.Go(func() error {
		if c.Highlighters != nil {
			if h, ok := c.Highlighters.Acquire(); ok {
				highlighter = h
			}
		}
		return nil
	})
	g.Go(func() error {
		if c.Typesetters != nil {
			if t, ok := c.Typesetters.Acquire(); ok {
				typesetter = t
			}
		}
		return nil
	})
	_ = g.Wait()
	return highlighter, typesetter
}

func (c *Compiler) tocMaxDepth() int {
	if c.TOCMaxDepth <= 0 {
		return DefaultTOCMaxDepth
	}
	return c.TOCMaxDepth
}

func (c *Compiler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alnah/go-md2html/internal/engine"
	"github.com/yuin/goldmark/ast"
	"golang.org/x/sync/errgroup"
)

// defaultLanguage is used for code blocks without a language tag.
const defaultLanguage = "text"

// CodeBlockRecord holds the pre-rendered form of one code block.
// HTML is empty when highlighting was unavailable or failed.
type CodeBlockRecord struct {
	HTML     string
	Original string
}

// CodeBlockMap maps code block nodes to their records. It is built before
// rendering starts and only read while rendering.
type CodeBlockMap map[ast.Node]CodeBlockRecord

// Lookup returns the record for a code block node.
func (m CodeBlockMap) Lookup(n ast.Node) (CodeBlockRecord, bool) {
	rec, ok := m[n]
	return rec, ok
}

// codeHighlighting pre-renders every code block of a document.
type codeHighlighting struct {
	highlighter engine.Highlighter // nil when unavailable
	workers     int
	logger      *slog.Logger
}

// HighlightCodeBlocks collects the fenced and indented code blocks of doc in
// document order and highlights them concurrently with at most workers
// goroutines. Every block gets a record; a block whose highlighting fails
// gets a record with empty HTML. All work completes before it returns.
func HighlightCodeBlocks(ctx context.Context, doc ast.Node, source []byte, highlighter engine.Highlighter, workers int, logger *slog.Logger) CodeBlockMap {
	if logger == nil {
		logger = slog.Default()
	}
	h := codeHighlighting{highlighter: highlighter, workers: workers, logger: logger}
	return h.run(ctx, doc, source)
}

func (h codeHighlighting) run(ctx context.Context, doc ast.Node, source []byte) CodeBlockMap {
	blocks := collectCodeBlocks(doc)
	records := make([]CodeBlockRecord, len(blocks))
	for i, b := range blocks {
		records[i].Original = codeBlockSource(b, source)
	}

	if h.highlighter != nil && len(blocks) > 0 {
		var g errgroup.Group
		g.SetLimit(max(h.workers, 1))
		for i, b := range blocks {
			language := codeBlockLanguage(b, source)
			g.Go(func() error {
				html, err := h.highlight(ctx, records[i].Original, language)
				if err != nil {
					h.logger.Debug("code block highlighting failed", "language", language, "error", err)
					return nil
				}
				records[i].HTML = html
				return nil
			})
		}
		_ = g.Wait() // workers never return errors
	}

	m := make(CodeBlockMap, len(blocks))
	for i, b := range blocks {
		m[b] = records[i]
	}
	return m
}

func (h codeHighlighting) highlight(ctx context.Context, code, language string) (html string, err error) {
	defer func() {
		if r := recover(); r != nil {
			html, err = "", fmt.Errorf("highlighter panicked: %v", r)
		}
	}()
	return h.highlighter.Highlight(ctx, code, language)
}

func collectCodeBlocks(doc ast.Node) []ast.Node {
	var blocks []ast.Node
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock:
			blocks = append(blocks, n)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return blocks
}

// codeBlockSource joins the block's lines, dropping the final newline.
func codeBlockSource(n ast.Node, source []byte) string {
	lines := n.Lines()
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(source))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func codeBlockLanguage(n ast.Node, source []byte) string {
	if fenced, ok := n.(*ast.FencedCodeBlock); ok {
		if lang := fenced.Language(source); len(lang) > 0 {
			return string(lang)
		}
	}
	return defaultLanguage
}

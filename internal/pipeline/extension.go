package pipeline

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Priorities relative to goldmark's built-ins: the default HTML renderer is
// registered at 1000 and GFM's task checkbox renderer at 500, so 100 wins.
const (
	mathBlockParserPriority  = 150
	inlineMathParserPriority = 150
	nodeRendererPriority     = 100
)

// Extension registers the math grammar and the custom node renderers.
// It holds per-document state and must not be shared between documents.
type Extension struct {
	renderer *nodeRenderer
}

var _ goldmark.Extender = (*Extension)(nil)

// NewExtension creates an Extension rendering math with m.
func NewExtension(m *MathRenderer, opts ...html.Option) *Extension {
	return &Extension{renderer: newNodeRenderer(m, opts...)}
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(md goldmark.Markdown) {
	md.Parser().AddOptions(
		parser.WithBlockParsers(util.Prioritized(NewMathBlockParser(), mathBlockParserPriority)),
		parser.WithInlineParsers(util.Prioritized(NewInlineMathParser(), inlineMathParserPriority)),
	)
	md.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(e.renderer, nodeRendererPriority)),
	)
}

// SetCodeBlocks hands the pre-rendered code blocks to the renderer.
// Call it after parsing and before rendering.
func (e *Extension) SetCodeBlocks(m CodeBlockMap) {
	e.renderer.codeBlocks = m
}

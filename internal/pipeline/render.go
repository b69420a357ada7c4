package pipeline

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// attributeEscaper escapes text for a double-quoted attribute value.
var attributeEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#39;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeAttribute escapes &, ", ', < and > for use in an attribute value.
func EscapeAttribute(s string) string {
	return attributeEscaper.Replace(s)
}

// nodeRenderer overrides headings, code blocks, list items and task
// checkboxes, and renders the math node kinds.
type nodeRenderer struct {
	html.Config
	codeBlocks CodeBlockMap
	math       *MathRenderer
}

var _ renderer.NodeRenderer = (*nodeRenderer)(nil)

func newNodeRenderer(math *MathRenderer, opts ...html.Option) *nodeRenderer {
	r := &nodeRenderer{
		Config: html.NewConfig(),
		math:   math,
	}
	for _, opt := range opts {
		opt.SetHTMLOption(&r.Config)
	}
	return r
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *nodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindFencedCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindListItem, r.renderListItem)
	reg.Register(east.KindTaskCheckBox, r.renderTaskCheckBox)
	reg.Register(KindMathBlock, r.renderMathBlock)
	reg.Register(KindInlineMath, r.renderInlineMath)
}

func (r *nodeRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if entering {
		_, _ = w.WriteString("<h")
		_ = w.WriteByte("0123456"[n.Level])
		_, _ = w.WriteString(` id="`)
		_, _ = w.WriteString(EscapeAttribute(Slugify(HeadingText(n, source))))
		_, _ = w.WriteString(`">`)
	} else {
		_, _ = w.WriteString("</h")
		_ = w.WriteByte("0123456"[n.Level])
		_, _ = w.WriteString(">\n")
	}
	return ast.WalkContinue, nil
}

// renderCodeBlock emits the pre-rendered record for a code block.
// A block without a record renders as bare inline code.
func (r *nodeRenderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	rec, ok := r.codeBlocks.Lookup(node)
	if !ok {
		_, _ = w.WriteString("<code>")
		_, _ = w.Write(util.EscapeHTML([]byte(codeBlockSource(node, source))))
		_, _ = w.WriteString("</code>\n")
		return ast.WalkSkipChildren, nil
	}

	_, _ = w.WriteString(`<pre data-code="`)
	_, _ = w.WriteString(EscapeAttribute(rec.Original))
	_, _ = w.WriteString(`">`)
	if rec.HTML != "" {
		_, _ = w.WriteString(rec.HTML)
	} else {
		_, _ = w.WriteString("<code>")
		_, _ = w.Write(util.EscapeHTML([]byte(rec.Original)))
		_, _ = w.WriteString("</code>")
	}
	_, _ = w.WriteString("</pre>\n")
	return ast.WalkSkipChildren, nil
}

func (r *nodeRenderer) renderListItem(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</li>\n")
		return ast.WalkContinue, nil
	}

	if isTaskListItem(node) {
		_, _ = w.WriteString(`<li class="task-list-item">`)
	} else {
		_, _ = w.WriteString("<li>")
	}
	if fc := node.FirstChild(); fc != nil {
		if _, ok := fc.(*ast.TextBlock); !ok {
			_ = w.WriteByte('\n')
		}
	}
	return ast.WalkContinue, nil
}

func (r *nodeRenderer) renderTaskCheckBox(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*east.TaskCheckBox)
	if n.IsChecked {
		_, _ = w.WriteString(`<input type="checkbox" checked disabled`)
	} else {
		_, _ = w.WriteString(`<input type="checkbox" disabled`)
	}
	if r.XHTML {
		_, _ = w.WriteString(" /> ")
	} else {
		_, _ = w.WriteString("> ")
	}
	return ast.WalkContinue, nil
}

func (r *nodeRenderer) renderMathBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*MathBlock)
	_, _ = w.WriteString(r.math.Render(string(n.Literal), true))
	_ = w.WriteByte('\n')
	return ast.WalkSkipChildren, nil
}

func (r *nodeRenderer) renderInlineMath(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*InlineMath)
	_, _ = w.WriteString(r.math.Render(string(n.Literal), false))
	return ast.WalkSkipChildren, nil
}

// isTaskListItem reports whether the item's first block starts with a
// task checkbox.
func isTaskListItem(item ast.Node) bool {
	fc := item.FirstChild()
	if fc == nil {
		return false
	}
	_, ok := fc.FirstChild().(*east.TaskCheckBox)
	return ok
}

package pipeline

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
)

// HeadingText returns the plain text of a heading: inline markup is dropped,
// escapes and entity references are resolved. The heading renderer and the
// TOC extractor both derive ids from this value.
func HeadingText(n ast.Node, source []byte) string {
	var b strings.Builder
	writePlainText(&b, n, source)
	return strings.TrimSpace(b.String())
}

func writePlainText(b *strings.Builder, n ast.Node, source []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			value := v.Segment.Value(source)
			if !v.IsRaw() {
				value = util.ResolveNumericReferences(util.ResolveEntityNames(util.UnescapePunctuations(value)))
			}
			b.Write(value)
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		case *ast.AutoLink:
			b.Write(v.Label(source))
		case *ast.RawHTML:
			// omitted from output
		case *InlineMath:
			b.Write(v.Literal)
		default:
			writePlainText(b, c, source)
		}
	}
}

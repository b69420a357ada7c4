package pipeline

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var mathDelimiter = []byte("$$")

// KindMathBlock is the node kind of display math ($$ ... $$).
var KindMathBlock = ast.NewNodeKind("MathBlock")

// MathBlock is display math spanning one or more lines.
type MathBlock struct {
	ast.BaseBlock

	// Literal is the source between the delimiters, trimmed.
	Literal []byte

	buf    []byte
	closed bool
}

// Kind implements ast.Node.
func (n *MathBlock) Kind() ast.NodeKind {
	return KindMathBlock
}

// IsRaw implements ast.Node. Math content is never parsed as inlines.
func (n *MathBlock) IsRaw() bool {
	return true
}

// Dump implements ast.Node.
func (n *MathBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Literal": string(n.Literal)}, nil)
}

// KindInlineMath is the node kind of inline math ($...$).
var KindInlineMath = ast.NewNodeKind("InlineMath")

// InlineMath is math inside a line of text.
type InlineMath struct {
	ast.BaseInline

	// Literal is the source between the delimiters, trimmed.
	Literal []byte
}

// Kind implements ast.Node.
func (n *InlineMath) Kind() ast.NodeKind {
	return KindInlineMath
}

// Dump implements ast.Node.
func (n *InlineMath) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Literal": string(n.Literal)}, nil)
}

// mathBlockParser recognizes $$ ... $$ blocks. The opening line starts with
// $$; the block ends on the first line whose trimmed content ends with $$,
// which may be the opening line itself. An opening $$ with no closing line
// anywhere after it is left to the paragraph parser.
type mathBlockParser struct{}

var _ parser.BlockParser = (*mathBlockParser)(nil)

// NewMathBlockParser returns a block parser for display math.
func NewMathBlockParser() parser.BlockParser {
	return &mathBlockParser{}
}

func (b *mathBlockParser) Trigger() []byte {
	return []byte{'$'}
}

func (b *mathBlockParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || !bytes.HasPrefix(line[pos:], mathDelimiter) {
		return nil, parser.NoChildren
	}

	rest := line[pos+len(mathDelimiter):]
	node := &MathBlock{}
	if body, ok := cutClosingDelimiter(rest); ok {
		node.buf = append(node.buf, body...)
		node.closed = true
	} else {
		if !hasClosingLine(reader.Source()[segment.Stop:]) {
			return nil, parser.NoChildren
		}
		node.buf = append(node.buf, rest...)
	}

	reader.Advance(lineContentLength(line, segment))
	return node, parser.NoChildren
}

func (b *mathBlockParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	n := node.(*MathBlock)
	if n.closed {
		return parser.Close
	}

	line, segment := reader.PeekLine()
	if line == nil {
		return parser.Close
	}

	if body, ok := cutClosingDelimiter(line); ok {
		n.buf = append(n.buf, body...)
		n.closed = true
		reader.Advance(lineContentLength(line, segment))
		return parser.Close
	}

	n.buf = append(n.buf, line...)
	reader.Advance(lineContentLength(line, segment))
	return parser.Continue | parser.NoChildren
}

func (b *mathBlockParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {
	n := node.(*MathBlock)
	n.Literal = bytes.TrimSpace(n.buf)
	n.buf = nil
}

func (b *mathBlockParser) CanInterruptParagraph() bool {
	return true
}

func (b *mathBlockParser) CanAcceptIndentedLine() bool {
	return false
}

// cutClosingDelimiter reports whether line ends with $$ (ignoring trailing
// whitespace) and returns the content before it.
func cutClosingDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimRight(line, " \t\r\n")
	if !bytes.HasSuffix(trimmed, mathDelimiter) {
		return nil, false
	}
	return trimmed[:len(trimmed)-len(mathDelimiter)], true
}

func hasClosingLine(src []byte) bool {
	for len(src) > 0 {
		line := src
		if i := bytes.IndexByte(src, '\n'); i >= 0 {
			line, src = src[:i+1], src[i+1:]
		} else {
			src = nil
		}
		if _, ok := cutClosingDelimiter(line); ok {
			return true
		}
	}
	return false
}

// lineContentLength is the advance that consumes a line up to, not
// including, its newline.
func lineContentLength(line []byte, segment text.Segment) int {
	newline := 0
	if len(line) > 0 && line[len(line)-1] == '\n' {
		newline = 1
	}
	return segment.Stop - segment.Start - newline + segment.Padding
}

// inlineMathParser recognizes $...$ spans within a single line.
// A span is rejected when it starts with $$, when it has no closing $ on the
// same line, or when its content is blank. An escaped opening $ never reaches
// the parser; goldmark consumes \$ as literal text.
type inlineMathParser struct{}

var _ parser.InlineParser = (*inlineMathParser)(nil)

// NewInlineMathParser returns an inline parser for $...$ math.
func NewInlineMathParser() parser.InlineParser {
	return &inlineMathParser{}
}

func (p *inlineMathParser) Trigger() []byte {
	return []byte{'$'}
}

func (p *inlineMathParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if len(line) < 2 || line[1] == '$' {
		return nil
	}

	end := -1
	for i := 1; i < len(line); i++ {
		c := line[i]
		if c == '\n' || c == '\r' {
			return nil
		}
		if c == '$' {
			end = i
			break
		}
	}
	if end < 0 {
		return nil
	}

	content := bytes.TrimSpace(line[1:end])
	if len(content) == 0 {
		return nil
	}

	block.Advance(end + 1)
	return &InlineMath{Literal: bytes.Clone(content)}
}

package pipeline

import "github.com/yuin/goldmark/ast"

// DefaultTOCMaxDepth keeps the TOC to h1-h3.
const DefaultTOCMaxDepth = 3

// TocItem is one TOC entry. ID matches the id attribute of the heading.
type TocItem struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// ExtractTOC collects headings with level <= maxDepth in document order,
// including headings nested in block quotes and list items. Headings with
// the same text produce the same id; ids are not deduplicated.
func ExtractTOC(doc ast.Node, source []byte, maxDepth int) []TocItem {
	toc := []TocItem{}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if heading.Level <= maxDepth {
			text := HeadingText(heading, source)
			toc = append(toc, TocItem{ID: Slugify(text), Text: text, Level: heading.Level})
		}
		return ast.WalkSkipChildren, nil
	})
	return toc
}

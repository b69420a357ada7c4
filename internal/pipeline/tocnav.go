package pipeline

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// numberingState tracks hierarchical numbering for TOC entries.
// Depth is the position of a heading among its open ancestors, so the first
// heading is depth 1 and skipped levels do not add depth.
type numberingState struct {
	counters [6]int // counters[0] = depth 1 count, etc.
	open     []int  // raw levels of the current ancestor chain
}

// next returns the number string and effective depth for a heading level.
// H1 -> H3 -> H3 numbers as 1., 1.1., 1.2.
func (n *numberingState) next(level int) (numStr string, effectiveDepth int) {
	for len(n.open) > 0 && n.open[len(n.open)-1] >= level {
		n.open = n.open[:len(n.open)-1]
	}
	n.open = append(n.open, level)
	effectiveDepth = min(len(n.open), len(n.counters))

	for i := effectiveDepth; i < len(n.counters); i++ {
		n.counters[i] = 0
	}
	n.counters[effectiveDepth-1]++

	parts := make([]string, 0, effectiveDepth)
	for i := 0; i < effectiveDepth; i++ {
		parts = append(parts, strconv.Itoa(n.counters[i]))
	}
	return strings.Join(parts, ".") + ".", effectiveDepth
}

// TOCNavHTML renders a numbered navigation block linking to each TOC item.
// Returns "" when items is empty.
func TOCNavHTML(items []TocItem, title string) string {
	if len(items) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(`<nav class="toc">`)

	if title != "" {
		buf.WriteString(`<p class="toc-title">`)
		buf.WriteString(html.EscapeString(title))
		buf.WriteString(`</p>`)
	}

	buf.WriteString(`<div class="toc-list">`)

	var numbering numberingState
	for _, item := range items {
		num, depth := numbering.next(item.Level)

		buf.WriteString(`<div class="toc-item"`)
		if indent := float64(depth-1) * 1.5; indent > 0 {
			fmt.Fprintf(&buf, ` style="padding-left:%.1fem"`, indent)
		}
		buf.WriteString(`><a href="#`)
		buf.WriteString(html.EscapeString(item.ID))
		buf.WriteString(`">`)
		buf.WriteString(num)
		buf.WriteString(` `)
		buf.WriteString(html.EscapeString(item.Text))
		buf.WriteString(`</a></div>`)
	}

	buf.WriteString(`</div></nav>`)
	return buf.String()
}

package md2html

import (
	"strings"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// DocumentOptions configures a standalone HTML page.
type DocumentOptions struct {
	// Title defaults to the front matter "title", then "Document".
	Title string
	// CSS is inlined in a <style> block.
	CSS string
	// TOCTitle labels the navigation block.
	TOCTitle string
	// NoTOC omits the navigation block.
	NoTOC bool
	// Lang is the page language as a BCP 47 tag. Defaults to the front
	// matter "lang".
	Lang string
}

// Document wraps the HTML in a standalone HTML5 page with the given title
// and inline CSS, preceded by a numbered TOC navigation block.
func (r *Result) Document(title, css string) string {
	return r.DocumentWith(DocumentOptions{Title: title, CSS: css})
}

// DocumentWith is Document with full control over the page.
func (r *Result) DocumentWith(opts DocumentOptions) string {
	title := opts.Title
	if strings.TrimSpace(title) == "" {
		if t, ok := r.Meta["title"].(string); ok {
			title = t
		}
	}

	lang := opts.Lang
	if strings.TrimSpace(lang) == "" {
		if l, ok := r.Meta["lang"].(string); ok {
			lang = l
		}
	}

	var toc []TocItem
	if !opts.NoTOC {
		toc = r.TOC
	}

	return pipeline.Document(r.HTML, pipeline.DocumentOptions{
		Title:    title,
		CSS:      opts.CSS,
		TOC:      toc,
		TOCTitle: opts.TOCTitle,
		Lang:     lang,
	})
}

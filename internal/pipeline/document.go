package pipeline

import (
	"fmt"
	"html"
	"strings"

	"golang.org/x/text/language"
)

// DefaultDocumentTitle is used when a document has no title.
const DefaultDocumentTitle = "Document"

// documentTemplate wraps an HTML fragment in a complete HTML5 document.
// Placeholders: lang attribute, title, style block, TOC nav, body.
const documentTemplate = `<!DOCTYPE html>
<html%s>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
%s</head>
<body>
%s<main>
%s</main>
</body>
</html>
`

// DocumentOptions configures a standalone HTML document.
type DocumentOptions struct {
	Title    string
	CSS      string
	TOC      []TocItem
	TOCTitle string
	Lang     string // BCP 47 tag; invalid tags are omitted
}

// Document wraps a rendered fragment in a standalone HTML5 page with an
// optional <style> block and a numbered TOC navigation block.
func Document(fragment string, opts DocumentOptions) string {
	title := opts.Title
	if strings.TrimSpace(title) == "" {
		title = DefaultDocumentTitle
	}

	style := ""
	if opts.CSS != "" {
		style = "<style>" + sanitizeCSS(opts.CSS) + "</style>\n"
	}

	nav := TOCNavHTML(opts.TOC, opts.TOCTitle)
	if nav != "" {
		nav += "\n"
	}

	return fmt.Sprintf(documentTemplate, langAttribute(opts.Lang), html.EscapeString(title), style, nav, fragment)
}

// langAttribute returns the canonical lang attribute for tag, or "".
func langAttribute(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}
	t, err := language.Parse(tag)
	if err != nil {
		return ""
	}
	return ` lang="` + EscapeAttribute(t.String()) + `"`
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

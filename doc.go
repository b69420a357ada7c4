// Package md2html compiles Markdown into embeddable HTML and a table of
// contents whose anchor ids match the ids in the HTML.
//
// # Quick Start
//
//	result, err := md2html.RenderMarkdown(ctx, "# Hello\n\nWorld")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.HTML)
//	for _, item := range result.TOC {
//	    fmt.Println(item.Level, item.ID, item.Text)
//	}
//
// # Compilation Pipeline
//
// Each call runs these stages on a fresh goldmark parser:
//
//  1. Optional engines (syntax highlighter, math typesetter) are acquired
//  2. Markdown preprocessing (line normalization, optional front matter)
//  3. Parsing with GFM, footnotes and $ / $$ math
//  4. TOC extraction (h1-h3 by default)
//  5. Concurrent code block highlighting
//  6. Rendering with heading ids, code blocks, task list items and math
//
// # Optional Engines
//
// Highlighting uses chroma and math uses a LaTeX to MathML converter. Both
// load at most once per process. When an engine is compiled out (build tags
// nohighlight and nomath) or fails to load, rendering still succeeds: code
// blocks keep their escaped source and math keeps its $ delimiters.
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r, err := md2html.NewRenderer(
//	    md2html.WithTOCMaxDepth(4),
//	    md2html.WithFrontMatter(true),
//	    md2html.WithWorkers(4),
//	)
//
// # Standalone Pages
//
// Result.Document wraps the fragment in a complete HTML5 page with a
// numbered navigation block built from the TOC.
package md2html

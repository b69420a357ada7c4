// Package pipeline implements the Markdown-to-HTML compilation pipeline.
//
// A compile runs in stages over a single goldmark tree:
//   - preprocessing (line ending normalization, optional front matter)
//   - parsing with the math grammar (block $$ and inline $)
//   - TOC extraction from headings, using the same slug as the heading ids
//   - concurrent code block highlighting into a map keyed by node
//   - rendering with the custom heading, code, list item and math renderers
//
// Optional engines come from internal/engine. When an engine is missing the
// pipeline still produces complete HTML with plain fallbacks.
package pipeline

package md2html

import "github.com/alnah/go-md2html/internal/pipeline"

// Slugify maps heading text to the anchor id used in rendered HTML.
// It lowercases, keeps a-z, 0-9, '-' and CJK ideographs, and joins
// whitespace-separated words with '-'.
func Slugify(text string) string {
	return pipeline.Slugify(text)
}

package pipeline

import (
	"reflect"
	"testing"
)

func TestExtractTOC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		maxDepth int
		want     []TocItem
	}{
		{
			name:     "no headings",
			markdown: "just text\n",
			maxDepth: DefaultTOCMaxDepth,
			want:     []TocItem{},
		},
		{
			name:     "levels filtered by depth",
			markdown: "# One\n\n## Two\n\n### Three\n\n#### Four\n",
			maxDepth: DefaultTOCMaxDepth,
			want: []TocItem{
				{ID: "one", Text: "One", Level: 1},
				{ID: "two", Text: "Two", Level: 2},
				{ID: "three", Text: "Three", Level: 3},
			},
		},
		{
			name:     "depth one",
			markdown: "# One\n\n## Two\n",
			maxDepth: 1,
			want:     []TocItem{{ID: "one", Text: "One", Level: 1}},
		},
		{
			name:     "setext headings",
			markdown: "Title\n=====\n\nSub\n---\n",
			maxDepth: DefaultTOCMaxDepth,
			want: []TocItem{
				{ID: "title", Text: "Title", Level: 1},
				{ID: "sub", Text: "Sub", Level: 2},
			},
		},
		{
			name:     "nested in block quote",
			markdown: "> ## Quoted\n",
			maxDepth: DefaultTOCMaxDepth,
			want:     []TocItem{{ID: "quoted", Text: "Quoted", Level: 2}},
		},
		{
			name:     "inline markup stripped",
			markdown: "## A **bold** [link](http://x.y) and `code`\n",
			maxDepth: DefaultTOCMaxDepth,
			want:     []TocItem{{ID: "a-bold-link-and-code", Text: "A bold link and code", Level: 2}},
		},
		{
			name:     "escapes and entities resolved",
			markdown: "## Fish &amp; Chips \\*\n",
			maxDepth: DefaultTOCMaxDepth,
			want:     []TocItem{{ID: "fish-chips", Text: "Fish & Chips *", Level: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, source := parseMarkdown(tt.markdown)
			got := ExtractTOC(doc, source, tt.maxDepth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractTOC() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

package pipeline

// Notes:
// - Tests RebaseRelativePaths through its public API
// - Directories are built with filepath so the expectations hold on Windows

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRebaseRelativePaths(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sourceDir := filepath.Join(root, "docs")
	outputDir := filepath.Join(root, "site", "out")

	tests := []struct {
		name         string
		html         string
		sourceDir    string
		outputDir    string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "image rebased onto output dir",
			html:         `<img src="images/logo.png"/>`,
			sourceDir:    sourceDir,
			outputDir:    outputDir,
			wantContains: []string{`src="../../docs/images/logo.png"`},
		},
		{
			name:         "link with fragment keeps suffix",
			html:         `<a href="./guide.html#install">g</a>`,
			sourceDir:    sourceDir,
			outputDir:    outputDir,
			wantContains: []string{`href="../../docs/guide.html#install"`},
		},
		{
			name:         "file URL without output dir",
			html:         `<img src="logo.png"/>`,
			sourceDir:    sourceDir,
			wantContains: []string{`src="file://`, `/docs/logo.png"`},
		},
		{
			name:         "anchor unchanged",
			html:         `<a href="#intro">i</a>`,
			sourceDir:    sourceDir,
			outputDir:    outputDir,
			wantContains: []string{`href="#intro"`},
		},
		{
			name:         "urls unchanged",
			html:         `<a href="https://example.com/x">x</a><a href="mailto:a@b.c">m</a><img src="data:image/png;base64,AA"/>`,
			sourceDir:    sourceDir,
			outputDir:    outputDir,
			wantContains: []string{`href="https://example.com/x"`, `href="mailto:a@b.c"`, `src="data:image/png;base64,AA"`},
		},
		{
			name:         "absolute path unchanged",
			html:         `<img src="/abs/logo.png"/>`,
			sourceDir:    sourceDir,
			outputDir:    outputDir,
			wantContains: []string{`src="/abs/logo.png"`},
		},
		{
			name:         "traversal outside source dir unchanged",
			html:         `<img src="../../etc/passwd"/>`,
			sourceDir:    sourceDir,
			outputDir:    outputDir,
			wantContains: []string{`src="../../etc/passwd"`},
		},
		{
			name:         "other attributes preserved",
			html:         `<img src="a.png" alt="An image" class="wide"/>`,
			sourceDir:    sourceDir,
			outputDir:    outputDir,
			wantContains: []string{`alt="An image"`, `class="wide"`},
		},
		{
			name:         "fragment not wrapped",
			html:         `<p>text</p>`,
			sourceDir:    sourceDir,
			outputDir:    outputDir,
			wantContains: []string{`<p>text</p>`},
			wantExcludes: []string{"<html>", "<body>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RebaseRelativePaths(tt.html, tt.sourceDir, tt.outputDir)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("result missing %q in:\n%s", want, got)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("result should not contain %q:\n%s", exclude, got)
				}
			}
		})
	}
}

func TestRebaseRelativePaths_Unchanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := `<img src="logo.png" />`

	tests := []struct {
		name      string
		sourceDir string
		outputDir string
	}{
		{name: "empty source dir", sourceDir: "", outputDir: dir},
		{name: "same directory", sourceDir: dir, outputDir: dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RebaseRelativePaths(input, tt.sourceDir, tt.outputDir)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != input {
				t.Errorf("got %q, want input unchanged", got)
			}
		})
	}
}

func TestIsRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ref  string
		want bool
	}{
		{"img.png", true},
		{"./img.png", true},
		{"../img.png", true},
		{"", false},
		{"#top", false},
		{"//cdn.example.com/x.js", false},
		{"http://example.com", false},
		{"file:///tmp/x", false},
		{"data:text/plain,hi", false},
		{"/abs/path", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			t.Parallel()

			if got := isRelativePath(tt.ref); got != tt.want {
				t.Errorf("isRelativePath(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RebaseRelativePaths rewrites relative img[src] and a[href] paths of an
// HTML fragment so they keep pointing at the same files when the fragment is
// written to outputDir instead of next to its source in sourceDir.
// An empty outputDir produces absolute file:// URLs.
// Returns the fragment unchanged when sourceDir is empty or both directories
// are the same.
//
// Absolute paths, URLs, anchors and paths escaping sourceDir are left alone.
func RebaseRelativePaths(fragment, sourceDir, outputDir string) (string, error) {
	if sourceDir == "" {
		return fragment, nil
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}
	absOutputDir := ""
	if outputDir != "" {
		if absOutputDir, err = filepath.Abs(outputDir); err != nil {
			return "", err
		}
		if absOutputDir == absSourceDir {
			return fragment, nil
		}
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	r := rebaser{sourceDir: absSourceDir, outputDir: absOutputDir}
	r.walk(root)

	return renderFragment(root)
}

// parseFragment parses HTML in body context and wraps the nodes in a
// container for uniform traversal.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders the container children without an <html><body> wrapper.
func renderFragment(container *html.Node) (string, error) {
	var buf strings.Builder
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

type rebaser struct {
	sourceDir string
	outputDir string // empty means file:// URLs
}

func (r rebaser) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			r.rewriteAttr(n, "src")
		case atom.A:
			r.rewriteAttr(n, "href")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.walk(c)
	}
}

func (r rebaser) rewriteAttr(n *html.Node, attrName string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRelativePath(attr.Val) {
			continue
		}
		if rebased, ok := r.rebase(attr.Val); ok {
			n.Attr[i].Val = rebased
		}
	}
}

// rebase maps a path relative to sourceDir onto outputDir.
// A "?query" or "#fragment" suffix is preserved.
func (r rebaser) rebase(ref string) (string, bool) {
	path, suffix := splitSuffix(ref)
	if path == "" {
		return "", false
	}

	absPath := filepath.Join(r.sourceDir, filepath.FromSlash(path))
	if !isPathUnderDir(absPath, r.sourceDir) {
		return "", false
	}

	if r.outputDir == "" {
		return pathToFileURL(absPath) + suffix, true
	}

	rel, err := filepath.Rel(r.outputDir, absPath)
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(rel) + suffix, true
}

// splitSuffix separates the path from a trailing query or fragment.
func splitSuffix(ref string) (path, suffix string) {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		return ref[:i], ref[i:]
	}
	return ref, ""
}

// isRelativePath reports whether ref is a relative filesystem path.
func isRelativePath(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return false
	}

	// Any scheme (http, https, file, data, mailto, ...) is not a path.
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		return false
	}

	return !filepath.IsAbs(ref) && !strings.HasPrefix(ref, "/")
}

// isPathUnderDir checks if absPath is under dir (prevents path traversal).
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}

	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}

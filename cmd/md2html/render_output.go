package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// renderContent renders markdown and encodes it in the configured format.
// sourceDir and outputDir drive relative path rebasing when enabled.
func renderContent(ctx context.Context, params *renderParams, markdown, sourceDir, outputDir string) ([]byte, error) {
	res, err := params.renderer.Render(ctx, markdown)
	if err != nil {
		return nil, err
	}

	if params.rebase {
		rebased, err := pipeline.RebaseRelativePaths(res.HTML, sourceDir, outputDir)
		if err != nil {
			return nil, fmt.Errorf("rebasing relative paths: %w", err)
		}
		res.HTML = rebased
	}

	return formatOutput(res, params.format, params.document)
}

// formatOutput encodes a result as an HTML fragment, JSON or a document.
func formatOutput(res *md2html.Result, format string, doc md2html.DocumentOptions) ([]byte, error) {
	switch format {
	case config.FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return nil, fmt.Errorf("encoding JSON: %w", err)
		}
		return buf.Bytes(), nil
	case config.FormatDocument:
		if doc.Title == "" {
			doc.Title = documentTitle(res)
		}
		return []byte(res.DocumentWith(doc)), nil
	default:
		return []byte(res.HTML), nil
	}
}

// documentTitle picks the front matter title, then the first H1.
func documentTitle(res *md2html.Result) string {
	if t, ok := res.Meta["title"].(string); ok && strings.TrimSpace(t) != "" {
		return t
	}
	for _, item := range res.TOC {
		if item.Level == 1 {
			return item.Text
		}
	}
	return ""
}

// outputExtension returns the file extension for a format.
func outputExtension(format string) string {
	if format == config.FormatJSON {
		return "json"
	}
	return "html"
}

// buildDocumentOptions resolves the page settings shared by every document.
func buildDocumentOptions(cfg *config.Config) (md2html.DocumentOptions, error) {
	css, err := resolveDocumentCSS(cfg)
	if err != nil {
		return md2html.DocumentOptions{}, err
	}
	return md2html.DocumentOptions{
		Title:    cfg.Document.Title,
		CSS:      css,
		TOCTitle: cfg.TOC.Title,
		NoTOC:    !cfg.TOC.Nav,
		Lang:     cfg.Document.Lang,
	}, nil
}

// resolveDocumentCSS concatenates the theme, the highlight stylesheet when
// highlighting uses classes, and the extra CSS file, in that order.
func resolveDocumentCSS(cfg *config.Config) (string, error) {
	themeCSS, err := loadTheme(cfg.Assets.BasePath, cfg.Document.Theme)
	if err != nil {
		return "", err
	}
	parts := []string{themeCSS}

	if cfg.Highlight.Enabled && cfg.Highlight.Classes {
		var buf strings.Builder
		err := md2html.WriteStyleCSS(&buf, highlightOptions(cfg))
		if err != nil && !errors.Is(err, md2html.ErrEngineUnavailable) {
			return "", err
		}
		parts = append(parts, buf.String())
	}

	if cfg.Document.CSSFile != "" {
		content, err := os.ReadFile(cfg.Document.CSSFile) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		parts = append(parts, string(content))
	}

	return joinNonEmpty(parts, "\n"), nil
}

// loadTheme loads a theme from basePath, falling back to the built-in
// themes. An empty name selects the default theme.
func loadTheme(basePath, name string) (string, error) {
	if name == "" {
		name = assets.DefaultStyleName
	}

	resolver, err := assets.NewResolver(basePath)
	if err != nil {
		return "", err
	}

	css, err := resolver.LoadStyle(name)
	if errors.Is(err, assets.ErrStyleNotFound) {
		return "", fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.StyleNames()))
	}
	return css, err
}

func joinNonEmpty(parts []string, sep string) string {
	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

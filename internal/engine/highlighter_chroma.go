//go:build !nohighlight

package engine

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// chromaHighlighter highlights code with chroma (pure Go).
type chromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

var _ Highlighter = (*chromaHighlighter)(nil)

func newBuiltinHighlighter(opts HighlightOptions) (Highlighter, error) {
	style, err := lookupStyle(opts.style())
	if err != nil {
		return nil, err
	}
	if len(lexers.Names(false)) == 0 {
		return nil, fmt.Errorf("%w: no lexers registered", ErrUnavailable)
	}
	return &chromaHighlighter{
		style:     style,
		formatter: newFormatter(opts),
	}, nil
}

func newFormatter(opts HighlightOptions) *chromahtml.Formatter {
	return chromahtml.New(
		chromahtml.WithClasses(opts.Classes),
		chromahtml.TabWidth(opts.tabWidth()),
		chromahtml.PreventSurroundingPre(true), // the caller owns the <pre> wrapper
	)
}

// lookupStyle resolves a style by name. styles.Get silently falls back to a
// default style, so the returned name is compared against the request.
func lookupStyle(name string) (*chroma.Style, error) {
	style := styles.Get(name)
	if style == nil || !strings.EqualFold(style.Name, name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return style, nil
}

// Highlight tokenizes code with the lexer registered for language and
// returns it wrapped in a <code class="chroma language-..."> element.
func (h *chromaHighlighter) Highlight(ctx context.Context, code, language string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenizing %s: %w", language, err)
	}

	var buf strings.Builder
	buf.WriteString(`<code class="chroma language-`)
	buf.WriteString(languageClass(language))
	buf.WriteString(`">`)
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", fmt.Errorf("formatting %s: %w", language, err)
	}
	buf.WriteString("</code>")
	return buf.String(), nil
}

// languageClass keeps only characters that are safe inside a class attribute.
func languageClass(language string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '+', r == '#':
			return r
		default:
			return -1
		}
	}, language)
}

func writeBuiltinCSS(w io.Writer, opts HighlightOptions) error {
	style, err := lookupStyle(opts.style())
	if err != nil {
		return err
	}
	return newFormatter(opts).WriteCSS(w, style)
}

func builtinStyleNames() []string {
	return styles.Names()
}

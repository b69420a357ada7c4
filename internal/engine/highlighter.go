package engine

import (
	"context"
	"io"
)

// DefaultStyle is the highlight style used when none is configured.
const DefaultStyle = "github"

// Highlighter renders source code to highlighted HTML.
type Highlighter interface {
	Highlight(ctx context.Context, code, language string) (string, error)
}

// HighlightOptions configures the built-in highlighter.
type HighlightOptions struct {
	Style    string // chroma style name (default: DefaultStyle)
	Classes  bool   // emit CSS classes instead of inline styles
	TabWidth int    // tab expansion width (default: 4)
}

func (o HighlightOptions) style() string {
	if o.Style == "" {
		return DefaultStyle
	}
	return o.Style
}

func (o HighlightOptions) tabWidth() int {
	if o.TabWidth <= 0 {
		return 4
	}
	return o.TabWidth
}

// NewHighlighter returns the built-in highlighter, or an error wrapping
// ErrUnavailable when it was compiled out.
func NewHighlighter(opts HighlightOptions) (Highlighter, error) {
	return newBuiltinHighlighter(opts)
}

// WriteStyleCSS writes the stylesheet matching a class-based highlighter.
func WriteStyleCSS(w io.Writer, opts HighlightOptions) error {
	return writeBuiltinCSS(w, opts)
}

// StyleNames lists the highlight styles compiled into the binary.
func StyleNames() []string {
	return builtinStyleNames()
}

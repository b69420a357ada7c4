package engine

import "sync"

// Engine names used in log records and diagnostics.
const (
	HighlighterName = "highlighter"
	TypesetterName  = "typesetter"
)

var (
	defaultHighlighter = sync.OnceValue(func() *Provider[Highlighter] {
		return NewProvider[Highlighter](HighlighterName, func() (Highlighter, error) {
			return NewHighlighter(HighlightOptions{})
		}, nil)
	})
	defaultTypesetter = sync.OnceValue(func() *Provider[Typesetter] {
		return NewProvider[Typesetter](TypesetterName, NewTypesetter, nil)
	})
)

// DefaultHighlighter returns the process-wide highlighter provider.
func DefaultHighlighter() *Provider[Highlighter] {
	return defaultHighlighter()
}

// DefaultTypesetter returns the process-wide typesetter provider.
func DefaultTypesetter() *Provider[Typesetter] {
	return defaultTypesetter()
}

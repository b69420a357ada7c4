//go:build nohighlight

package engine

import (
	"fmt"
	"io"
)

func newBuiltinHighlighter(HighlightOptions) (Highlighter, error) {
	return nil, fmt.Errorf("%w: built with nohighlight", ErrUnavailable)
}

func writeBuiltinCSS(io.Writer, HighlightOptions) error {
	return fmt.Errorf("%w: built with nohighlight", ErrUnavailable)
}

func builtinStyleNames() []string {
	return nil
}

package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/alnah/go-md2html/internal/engine"
	"github.com/yuin/goldmark/util"
)

// MathRenderer turns math source into markup, falling back to the
// delimiter-wrapped source when no typesetter is available or it fails.
// A nil *MathRenderer always falls back.
type MathRenderer struct {
	typesetter engine.Typesetter
	logger     *slog.Logger
}

// NewMathRenderer creates a MathRenderer. A nil typesetter means unavailable.
func NewMathRenderer(typesetter engine.Typesetter, logger *slog.Logger) *MathRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &MathRenderer{typesetter: typesetter, logger: logger}
}

// Render returns typeset math for src. It never panics and never returns an
// empty string for non-empty input.
func (m *MathRenderer) Render(src string, display bool) string {
	if m == nil || m.typesetter == nil {
		return mathFallback(src, display)
	}

	out, err := m.typeset(src, display)
	if err != nil {
		m.logger.Debug("math typesetting failed", "display", display, "error", err)
		return mathFallback(src, display)
	}
	return out
}

func (m *MathRenderer) typeset(src string, display bool) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", engine.ErrTypeset, r)
		}
	}()

	out, err = m.typesetter.Typeset(src, display)
	if err == nil && out == "" {
		err = fmt.Errorf("%w: empty output", engine.ErrTypeset)
	}
	return out, err
}

// mathFallback keeps the original delimiters so unrendered math stays
// readable as text.
func mathFallback(src string, display bool) string {
	delim := "$"
	if display {
		delim = "$$"
	}
	return delim + string(util.EscapeHTML([]byte(src))) + delim
}

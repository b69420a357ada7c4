package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alnah/go-md2html/internal/engine"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// ---------------------------------------------------------------------------
// Test doubles
// ---------------------------------------------------------------------------

type typesetCall struct {
	src     string
	display bool
}

// recordingTypesetter records calls and wraps the source in a <math> element.
type recordingTypesetter struct {
	mu    sync.Mutex
	calls []typesetCall
	err   error
}

func (r *recordingTypesetter) Typeset(src string, display bool) (string, error) {
	r.mu.Lock()
	r.calls = append(r.calls, typesetCall{src: src, display: display})
	r.mu.Unlock()
	if r.err != nil {
		return "", r.err
	}
	return fmt.Sprintf(`<math display="%t">%s</math>`, display, src), nil
}

func (r *recordingTypesetter) Calls() []typesetCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]typesetCall(nil), r.calls...)
}

// fakeHighlighter returns a fixed rendering, or an error for failLanguage.
type fakeHighlighter struct {
	failLanguage string
	panicky      bool
}

func (f *fakeHighlighter) Highlight(_ context.Context, code, language string) (string, error) {
	if f.panicky {
		panic("boom")
	}
	if language == f.failLanguage {
		return "", fmt.Errorf("%w: %s", engine.ErrUnsupportedLanguage, language)
	}
	return fmt.Sprintf(`<code class="hl-%s">HL</code>`, language), nil
}

var errTypesetFailed = errors.New("typeset failed")

// newTestCompiler returns a compiler with the given engines; nil means unavailable.
func newTestCompiler(h engine.Highlighter, ts engine.Typesetter) *Compiler {
	c := &Compiler{Workers: 2}
	if h != nil {
		c.Highlighters = engine.Available(engine.HighlighterName, h)
	} else {
		c.Highlighters = engine.Unavailable[engine.Highlighter](engine.HighlighterName)
	}
	if ts != nil {
		c.Typesetters = engine.Available(engine.TypesetterName, ts)
	} else {
		c.Typesetters = engine.Unavailable[engine.Typesetter](engine.TypesetterName)
	}
	return c
}

// parseMarkdown parses src with the math grammar and GFM.
func parseMarkdown(src string) (ast.Node, []byte) {
	source := []byte(src)
	md := goldmark.New(goldmark.WithExtensions(extension.GFM, NewExtension(nil)))
	return md.Parser().Parse(text.NewReader(source)), source
}

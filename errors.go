package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/engine"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrFrontMatter    = pipeline.ErrFrontMatter

	// Option validation errors.
	ErrInvalidTOCDepth = errors.New("invalid TOC depth")
	ErrInvalidWorkers  = errors.New("invalid worker count")

	// Engine errors, returned by NewHighlighter and WriteStyleCSS.
	ErrEngineUnavailable = engine.ErrUnavailable
	ErrUnknownStyle      = engine.ErrUnknownStyle
)

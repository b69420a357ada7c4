package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// highlightFlags holds syntax highlighting flags.
type highlightFlags struct {
	style    string
	classes  bool
	tabWidth int
	disabled bool
}

// tocFlags holds table of contents flags.
type tocFlags struct {
	title    string
	maxDepth int
	disabled bool // omit the nav block from documents
}

// documentFlags holds standalone document flags.
type documentFlags struct {
	title     string
	theme     string
	cssFile   string
	assetPath string
	lang      string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common      commonFlags
	output      string
	format      string
	workers     int
	noMath      bool
	frontMatter bool
	rebasePaths bool
	highlight   highlightFlags
	toc         tocFlags
	document    documentFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and engine fallbacks")
}

// addHighlightFlags adds highlighting flags to a FlagSet.
func addHighlightFlags(fs *flag.FlagSet, f *highlightFlags) {
	fs.StringVar(&f.style, "highlight-style", "", "chroma style name (default: github)")
	fs.BoolVar(&f.classes, "highlight-classes", false, "emit CSS classes instead of inline styles")
	fs.IntVar(&f.tabWidth, "tab-width", 0, "tab width in code blocks (0 = default)")
	fs.BoolVar(&f.disabled, "no-highlight", false, "disable syntax highlighting")
}

// addTOCFlags adds TOC flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.StringVar(&f.title, "toc-title", "", "table of contents heading")
	fs.IntVar(&f.maxDepth, "toc-depth", 0, "max heading depth for TOC (1-6, default: 3)")
	fs.BoolVar(&f.disabled, "no-toc", false, "omit the TOC block from documents")
}

// addDocumentFlags adds standalone document flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "document title (\"\" = front matter or first H1)")
	fs.StringVar(&f.theme, "theme", "", "theme name, or \"none\"")
	fs.StringVar(&f.cssFile, "css", "", "extra CSS file appended after the theme")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom theme directory")
	fs.StringVar(&f.lang, "lang", "", "document language tag, e.g. en or pt-BR")
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors are reported once by the caller
	f := &renderFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output directory, or file for stdin input")
	fs.StringVarP(&f.format, "format", "f", "", "output format: html, json, document")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Feature flags
	fs.BoolVar(&f.noMath, "no-math", false, "disable math typesetting")
	fs.BoolVar(&f.frontMatter, "front-matter", false, "parse a leading YAML front matter block")
	fs.BoolVar(&f.rebasePaths, "rebase-paths", false, "rewrite relative links for the output directory")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addHighlightFlags(fs, &f.highlight)
	addTOCFlags(fs, &f.toc)
	addDocumentFlags(fs, &f.document)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

package main

import (
	"errors"
	"fmt"
	"io"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/engine"
	"github.com/alnah/go-md2html/internal/hints"
	flag "github.com/spf13/pflag"
)

// cssFlags holds flags for the css command.
type cssFlags struct {
	style     string
	theme     string
	assetPath string
	list      bool
}

// parseCSSFlags parses css command flags.
func parseCSSFlags(args []string) (*cssFlags, error) {
	fs := flag.NewFlagSet("css", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cssFlags{}

	fs.StringVar(&f.style, "highlight-style", "", "chroma style name (default: github)")
	fs.StringVar(&f.theme, "theme", "", "print a document theme instead")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom theme directory")
	fs.BoolVar(&f.list, "list", false, "list highlight styles and themes")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return f, nil
}

// runCSS prints the stylesheet matching class-based highlighting, or a
// document theme.
func runCSS(args []string, env *Environment) error {
	flags, err := parseCSSFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printCSSUsage(env.Stdout)
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if flags.list {
		printStyleList(env.Stdout)
		return nil
	}

	if flags.theme != "" {
		css, err := loadTheme(flags.assetPath, flags.theme)
		if err != nil {
			return err
		}
		_, err = io.WriteString(env.Stdout, css)
		return err
	}

	opts := md2html.HighlightOptions{Style: flags.style, Classes: true}
	if err := md2html.WriteStyleCSS(env.Stdout, opts); err != nil {
		switch {
		case errors.Is(err, md2html.ErrUnknownStyle):
			return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(engine.StyleNames()))
		case errors.Is(err, md2html.ErrEngineUnavailable):
			return fmt.Errorf("%w%s", err, hints.ForEngineUnavailable(engine.HighlighterName, "nohighlight"))
		}
		return err
	}
	return nil
}

// printStyleList prints the compiled-in highlight styles and themes.
func printStyleList(w io.Writer) {
	fmt.Fprintln(w, "Highlight styles:")
	styles := engine.StyleNames()
	if len(styles) == 0 {
		fmt.Fprintln(w, "  (highlighting not compiled in)")
	}
	for _, name := range styles {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Themes:")
	for _, name := range assets.StyleNames() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintf(w, "  %s (no theme CSS)\n", assets.NoStyleName)
}

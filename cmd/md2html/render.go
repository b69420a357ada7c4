package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/engine"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage        = errors.New("invalid usage")
	ErrNoInput      = errors.New("no input specified")
	ErrReadCSS      = errors.New("failed to read CSS file")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteOutput  = errors.New("failed to write output file")
)

// stdinInput is the positional argument that reads Markdown from stdin.
const stdinInput = "-"

// renderParams groups parameters shared across batch/file rendering.
type renderParams struct {
	renderer *md2html.Renderer
	format   string
	document md2html.DocumentOptions // only used for FormatDocument
	rebase   bool
}

// runRender orchestrates the render command.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positionalArgs, err := parseRenderFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printRenderUsage(env.Stdout)
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	warnUnknownEnvVars(logger)

	// Load configuration: CLI flags > env vars > config file > defaults
	envCfg := loadEnvConfig()
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	renderer, err := buildRenderer(cfg, logger)
	if err != nil {
		return err
	}

	params := &renderParams{
		renderer: renderer,
		format:   cfg.OutputFormat(),
		rebase:   cfg.Output.RebasePaths,
	}
	if params.format == config.FormatDocument {
		if params.document, err = buildDocumentOptions(cfg); err != nil {
			return err
		}
	}

	inputs, err := resolveInputs(positionalArgs, cfg)
	if err != nil {
		return err
	}

	if inputs[0] == stdinInput {
		return renderStdin(ctx, params, flags.output, env, logger)
	}

	outputDir := resolveOutputDir(flags.output, cfg)
	files, err := discoverFiles(inputs, outputDir, outputExtension(params.format))
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s%s",
			ErrNoInput, strings.Join(inputs, ", "), hints.ForNoInput())
	}

	workers := md2html.ResolveWorkers(cfg.Workers)
	logger.Debug("rendering", "files", len(files), "workers", workers, "format", params.format)

	results := renderBatch(ctx, files, params, workers, env.Now)

	failed, firstErr := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed: %w", failed, len(results), firstErr)
	}

	return nil
}

// loadConfig loads the config named by --config, then MD2HTML_CONFIG.
// Without either, the defaults apply.
func loadConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(configSearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// configSearchPaths lists the user-level location searched for a config name.
func configSearchPaths(name string) []string {
	if fileutil.IsFilePath(name) {
		return nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "go-md2html", name+".yaml")}
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *renderFlags, cfg *config.Config) {
	// Output flags
	if flags.format != "" {
		cfg.Output.Format = flags.format
	}
	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}
	if flags.rebasePaths {
		cfg.Output.RebasePaths = true
	}

	// Feature toggles
	if flags.noMath {
		cfg.Math.Enabled = false
	}
	if flags.frontMatter {
		cfg.FrontMatter.Enabled = true
	}

	// Highlight flags
	if flags.highlight.disabled {
		cfg.Highlight.Enabled = false
	}
	if flags.highlight.style != "" {
		cfg.Highlight.Style = flags.highlight.style
	}
	if flags.highlight.classes {
		cfg.Highlight.Classes = true
	}
	if flags.highlight.tabWidth != 0 {
		cfg.Highlight.TabWidth = flags.highlight.tabWidth
	}

	// TOC flags
	if flags.toc.title != "" {
		cfg.TOC.Title = flags.toc.title
	}
	if flags.toc.maxDepth != 0 {
		cfg.TOC.MaxDepth = flags.toc.maxDepth
	}
	if flags.toc.disabled {
		cfg.TOC.Nav = false
	}

	// Document flags
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.theme != "" {
		cfg.Document.Theme = flags.document.theme
	}
	if flags.document.cssFile != "" {
		cfg.Document.CSSFile = flags.document.cssFile
	}
	if flags.document.assetPath != "" {
		cfg.Assets.BasePath = flags.document.assetPath
	}
	if flags.document.lang != "" {
		cfg.Document.Lang = flags.document.lang
	}
}

// buildRenderer creates a Renderer whose engines log through logger.
// Disabled engines are wired as unavailable so output degrades the same
// way as a binary built without them.
func buildRenderer(cfg *config.Config, logger *slog.Logger) (*md2html.Renderer, error) {
	opts := []md2html.Option{
		md2html.WithLogger(logger),
		md2html.WithWorkers(cfg.Workers),
		md2html.WithTOCMaxDepth(cfg.TOCDepth()),
		md2html.WithFrontMatter(cfg.FrontMatter.Enabled),
	}

	if cfg.Highlight.Enabled {
		hlOpts := highlightOptions(cfg)
		if err := validateHighlightStyle(hlOpts); err != nil {
			return nil, err
		}
		opts = append(opts, md2html.WithHighlighterProvider(
			engine.NewProvider[engine.Highlighter](engine.HighlighterName, func() (engine.Highlighter, error) {
				return engine.NewHighlighter(hlOpts)
			}, logger),
		))
	} else {
		opts = append(opts, md2html.WithHighlighter(nil))
	}

	if cfg.Math.Enabled {
		opts = append(opts, md2html.WithTypesetterProvider(
			engine.NewProvider[engine.Typesetter](engine.TypesetterName, engine.NewTypesetter, logger),
		))
	} else {
		opts = append(opts, md2html.WithTypesetter(nil))
	}

	return md2html.NewRenderer(opts...)
}

func highlightOptions(cfg *config.Config) md2html.HighlightOptions {
	return md2html.HighlightOptions{
		Style:    cfg.Highlight.Style,
		Classes:  cfg.Highlight.Classes,
		TabWidth: cfg.Highlight.TabWidth,
	}
}

// validateHighlightStyle rejects an unknown style name before rendering.
// A binary built without highlighting accepts any name.
func validateHighlightStyle(opts md2html.HighlightOptions) error {
	if opts.Style == "" {
		return nil
	}
	err := md2html.WriteStyleCSS(io.Discard, opts)
	if errors.Is(err, md2html.ErrUnknownStyle) {
		return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(engine.StyleNames()))
	}
	return nil
}

// resolveInputs returns the positional inputs, falling back to
// input.defaultDir. Stdin ("-") cannot be combined with other inputs.
func resolveInputs(args []string, cfg *config.Config) ([]string, error) {
	if len(args) > 0 {
		for _, a := range args {
			if a == stdinInput && len(args) > 1 {
				return nil, fmt.Errorf("%w: stdin input %q cannot be combined with files", ErrUsage, stdinInput)
			}
		}
		return args, nil
	}

	if cfg.Input.DefaultDir != "" {
		return []string{cfg.Input.DefaultDir}, nil
	}

	return nil, fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
}

// resolveOutputDir picks the -o flag, then output.defaultDir.
// Empty means next to each source file.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// renderStdin renders Markdown read from stdin to stdout, or to the file
// named by output.
func renderStdin(ctx context.Context, params *renderParams, output string, env *Environment, logger *slog.Logger) error {
	if isTerminal(env.Stdin) {
		logger.Warn("reading Markdown from terminal, end input with Ctrl-D")
	}

	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: stdin: %v", ErrReadMarkdown, err)
	}

	if output == "" {
		out, err := renderContent(ctx, params, string(content), "", "")
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(out)
		return err
	}

	// Relative links in piped Markdown resolve against the working directory
	out, err := renderContent(ctx, params, string(content), ".", filepath.Dir(output))
	if err != nil {
		return err
	}
	return writeOutput(output, out)
}

package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
)

// envPrefix is the prefix shared by all recognized environment variables.
const envPrefix = "MD2HTML_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath string // MD2HTML_CONFIG: config file name or path
	Format     string // MD2HTML_FORMAT: html, json, document
	Theme      string // MD2HTML_THEME: document theme name

	// Tier 2 - I/O
	InputDir  string // MD2HTML_INPUT_DIR: default input directory
	OutputDir string // MD2HTML_OUTPUT_DIR: default output directory
	AssetPath string // MD2HTML_ASSET_PATH: custom theme directory

	// Tier 3 - Extended
	HighlightStyle string // MD2HTML_HIGHLIGHT_STYLE: chroma style name
	TOCDepth       int    // MD2HTML_TOC_DEPTH: max TOC heading depth
	Workers        int    // MD2HTML_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	// Tier 1 - Essential
	"MD2HTML_CONFIG": true,
	"MD2HTML_FORMAT": true,
	"MD2HTML_THEME":  true,
	// Tier 2 - I/O
	"MD2HTML_INPUT_DIR":  true,
	"MD2HTML_OUTPUT_DIR": true,
	"MD2HTML_ASSET_PATH": true,
	// Tier 3 - Extended
	"MD2HTML_HIGHLIGHT_STYLE": true,
	"MD2HTML_TOC_DEPTH":       true,
	"MD2HTML_WORKERS":         true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized MD2HTML_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		// Tier 1
		ConfigPath: os.Getenv("MD2HTML_CONFIG"),
		Format:     os.Getenv("MD2HTML_FORMAT"),
		Theme:      os.Getenv("MD2HTML_THEME"),
		// Tier 2
		InputDir:  os.Getenv("MD2HTML_INPUT_DIR"),
		OutputDir: os.Getenv("MD2HTML_OUTPUT_DIR"),
		AssetPath: os.Getenv("MD2HTML_ASSET_PATH"),
		// Tier 3
		HighlightStyle: os.Getenv("MD2HTML_HIGHLIGHT_STYLE"),
	}

	// Unparsable or out-of-range numbers are ignored, not errors
	cfg.TOCDepth = positiveInt(os.Getenv("MD2HTML_TOC_DEPTH"))
	cfg.Workers = positiveInt(os.Getenv("MD2HTML_WORKERS"))

	return cfg
}

func positiveInt(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
// Helps catch typos like MD2HTML_THEMES instead of MD2HTML_THEME.
func warnUnknownEnvVars(logger *slog.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are applied later
// via mergeFlags. Priority: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	// Tier 1
	if env.Format != "" {
		cfg.Output.Format = env.Format
	}
	if env.Theme != "" {
		cfg.Document.Theme = env.Theme
	}

	// Tier 2
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}

	// Tier 3
	if env.HighlightStyle != "" {
		cfg.Highlight.Style = env.HighlightStyle
	}
	if env.TOCDepth > 0 {
		cfg.TOC.MaxDepth = env.TOCDepth
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}

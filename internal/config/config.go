package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
	"golang.org/x/text/language"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// configDirName is the directory searched under the user config dir.
const configDirName = "go-md2html"

// Field length limits.
const (
	MaxTitleLength    = 200  // Document title
	MaxTOCTitleLength = 100  // TOC title
	MaxStyleLength    = 64   // Theme or highlight style name
	MaxLangLength     = 35   // BCP 47 language tag
	MaxPathLength     = 4096 // Directories and CSS file paths
)

// Output formats.
const (
	FormatHTML     = "html"     // HTML fragment
	FormatJSON     = "json"     // {"html", "toc", "meta"}
	FormatDocument = "document" // standalone HTML5 page
)

// TOC depth bounds.
const (
	MinTOCDepth     = 1
	MaxTOCDepth     = 6
	DefaultTOCDepth = 3
)

// MaxTabWidth bounds highlight.tabWidth.
const MaxTabWidth = 16

// Config holds all configuration for Markdown rendering.
type Config struct {
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	Highlight   HighlightConfig   `yaml:"highlight"`
	Math        MathConfig        `yaml:"math"`
	TOC         TOCConfig         `yaml:"toc"`
	Document    DocumentConfig    `yaml:"document"`
	Assets      AssetsConfig      `yaml:"assets"`
	FrontMatter FrontMatterConfig `yaml:"frontMatter"`
	Workers     int               `yaml:"workers"` // 0 = auto
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Format      string `yaml:"format"`      // html, json or document (default: html)
	DefaultDir  string `yaml:"defaultDir"`  // Default output directory (empty = same as source)
	RebasePaths bool   `yaml:"rebasePaths"` // Rewrite relative links when output dir differs
}

// HighlightConfig defines syntax highlighting options.
type HighlightConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Style    string `yaml:"style"`    // chroma style (default: github)
	Classes  bool   `yaml:"classes"`  // CSS classes instead of inline styles
	TabWidth int    `yaml:"tabWidth"` // 0 = default (4)
}

// MathConfig defines math typesetting options.
type MathConfig struct {
	Enabled bool `yaml:"enabled"`
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	MaxDepth int    `yaml:"maxDepth"` // 1-6, default 3
	Title    string `yaml:"title"`    // Empty = no title above the nav block
	Nav      bool   `yaml:"nav"`      // Include the nav block in documents
}

// DocumentConfig defines standalone document options.
type DocumentConfig struct {
	Title   string `yaml:"title"`   // Fallback: front matter title, first H1
	Theme   string `yaml:"theme"`   // Theme name, "none" for no theme CSS
	CSSFile string `yaml:"cssFile"` // Extra CSS appended after the theme
	Lang    string `yaml:"lang"`    // BCP 47 tag, fallback: front matter lang
}

// AssetsConfig defines theme loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = built-in themes only
}

// FrontMatterConfig defines YAML front matter handling.
type FrontMatterConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "", FormatHTML, FormatJSON, FormatDocument:
	default:
		return fmt.Errorf("%w: output.format %q (must be %s, %s or %s)",
			ErrInvalidValue, c.Output.Format, FormatHTML, FormatJSON, FormatDocument)
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleLength); err != nil {
		return err
	}
	if c.Highlight.TabWidth < 0 || c.Highlight.TabWidth > MaxTabWidth {
		return fmt.Errorf("%w: highlight.tabWidth must be between 0 and %d, got %d",
			ErrInvalidValue, MaxTabWidth, c.Highlight.TabWidth)
	}

	if c.TOC.MaxDepth != 0 && (c.TOC.MaxDepth < MinTOCDepth || c.TOC.MaxDepth > MaxTOCDepth) {
		return fmt.Errorf("%w: toc.maxDepth must be between %d and %d, got %d",
			ErrInvalidValue, MinTOCDepth, MaxTOCDepth, c.TOC.MaxDepth)
	}
	if err := validateFieldLength("toc.title", c.TOC.Title, MaxTOCTitleLength); err != nil {
		return err
	}

	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.theme", c.Document.Theme, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.cssFile", c.Document.CSSFile, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.lang", c.Document.Lang, MaxLangLength); err != nil {
		return err
	}
	if c.Document.Lang != "" {
		if _, err := language.Parse(c.Document.Lang); err != nil {
			return fmt.Errorf("%w: document.lang %q: %v", ErrInvalidValue, c.Document.Lang, err)
		}
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidValue, c.Workers)
	}

	return nil
}

// TOCDepth returns the effective TOC depth.
func (c *Config) TOCDepth() int {
	if c.TOC.MaxDepth == 0 {
		return DefaultTOCDepth
	}
	return c.TOC.MaxDepth
}

// OutputFormat returns the effective output format.
func (c *Config) OutputFormat() string {
	if c.Output.Format == "" {
		return FormatHTML
	}
	return c.Output.Format
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used without a config file:
// HTML fragments, both engines on, h1-h3 in the TOC.
func DefaultConfig() *Config {
	return &Config{
		Output:    OutputConfig{Format: FormatHTML},
		Highlight: HighlightConfig{Enabled: true},
		Math:      MathConfig{Enabled: true},
		TOC:       TOCConfig{MaxDepth: DefaultTOCDepth, Nav: true},
		Document:  DocumentConfig{Theme: "default"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg := DefaultConfig()
	if err := yamlutil.ReadStrict(f, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2html/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.OutputFormat() != FormatHTML {
		t.Errorf("OutputFormat() = %q, want %q", cfg.OutputFormat(), FormatHTML)
	}
	if !cfg.Highlight.Enabled || !cfg.Math.Enabled {
		t.Error("engines should be enabled by default")
	}
	if cfg.TOCDepth() != DefaultTOCDepth {
		t.Errorf("TOCDepth() = %d, want %d", cfg.TOCDepth(), DefaultTOCDepth)
	}
	if cfg.FrontMatter.Enabled {
		t.Error("FrontMatter.Enabled = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{name: "under limit", value: "abc", maxLength: 5},
		{name: "at limit", value: "abcde", maxLength: 5},
		{name: "over limit", value: "abcdef", maxLength: 5, wantErr: true},
		{name: "empty", value: "", maxLength: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("field", tt.value, tt.maxLength)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error = %v, want ErrFieldTooLong", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "json format", mutate: func(c *Config) { c.Output.Format = FormatJSON }},
		{name: "document format", mutate: func(c *Config) { c.Output.Format = FormatDocument }},
		{name: "empty format", mutate: func(c *Config) { c.Output.Format = "" }},
		{name: "unknown format", mutate: func(c *Config) { c.Output.Format = "pdf" }, wantErr: ErrInvalidValue},
		{name: "toc depth 0 means default", mutate: func(c *Config) { c.TOC.MaxDepth = 0 }},
		{name: "toc depth 6", mutate: func(c *Config) { c.TOC.MaxDepth = 6 }},
		{name: "toc depth 7", mutate: func(c *Config) { c.TOC.MaxDepth = 7 }, wantErr: ErrInvalidValue},
		{name: "toc depth negative", mutate: func(c *Config) { c.TOC.MaxDepth = -1 }, wantErr: ErrInvalidValue},
		{name: "tab width negative", mutate: func(c *Config) { c.Highlight.TabWidth = -1 }, wantErr: ErrInvalidValue},
		{name: "tab width too large", mutate: func(c *Config) { c.Highlight.TabWidth = MaxTabWidth + 1 }, wantErr: ErrInvalidValue},
		{name: "workers negative", mutate: func(c *Config) { c.Workers = -2 }, wantErr: ErrInvalidValue},
		{name: "title too long", mutate: func(c *Config) { c.Document.Title = strings.Repeat("x", MaxTitleLength+1) }, wantErr: ErrFieldTooLong},
		{name: "toc title too long", mutate: func(c *Config) { c.TOC.Title = strings.Repeat("x", MaxTOCTitleLength+1) }, wantErr: ErrFieldTooLong},
		{name: "lang tag", mutate: func(c *Config) { c.Document.Lang = "pt-BR" }},
		{name: "invalid lang", mutate: func(c *Config) { c.Document.Lang = "not a tag!" }, wantErr: ErrInvalidValue},
		{name: "lang too long", mutate: func(c *Config) { c.Document.Lang = strings.Repeat("x", MaxLangLength+1) }, wantErr: ErrFieldTooLong},
		{name: "style too long", mutate: func(c *Config) { c.Highlight.Style = strings.Repeat("x", MaxStyleLength+1) }, wantErr: ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `output:
  format: document
  defaultDir: "/out"
highlight:
  style: monokai
  classes: true
toc:
  maxDepth: 4
  title: Contents
frontMatter:
  enabled: true
workers: 3
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.OutputFormat() != FormatDocument || cfg.Output.DefaultDir != "/out" {
			t.Errorf("Output = %+v", cfg.Output)
		}
		if cfg.Highlight.Style != "monokai" || !cfg.Highlight.Classes {
			t.Errorf("Highlight = %+v", cfg.Highlight)
		}
		if cfg.TOCDepth() != 4 || cfg.TOC.Title != "Contents" {
			t.Errorf("TOC = %+v", cfg.TOC)
		}
		if !cfg.FrontMatter.Enabled || cfg.Workers != 3 {
			t.Errorf("FrontMatter = %+v, Workers = %d", cfg.FrontMatter, cfg.Workers)
		}
	})

	t.Run("absent fields keep defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig(writeConfig(t, "workers: 2\n"))
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if !cfg.Highlight.Enabled || !cfg.Math.Enabled || cfg.TOCDepth() != DefaultTOCDepth {
			t.Errorf("defaults lost: %+v", cfg)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(writeConfig(t, "toc: [unclosed"))
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(writeConfig(t, "footer:\n  enabled: true\n"))
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value fails validation", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(writeConfig(t, "toc:\n  maxDepth: 9\n"))
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})
}

func TestLoadConfig_ByName(t *testing.T) {
	// Not parallel: changes the working directory and XDG_CONFIG_HOME.
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	if err := os.WriteFile("local.yml", []byte("workers: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig("local")
	if err != nil {
		t.Fatalf("LoadConfig(local) error = %v", err)
	}
	if cfg.Workers != 5 {
		t.Errorf("Workers = %d, want 5", cfg.Workers)
	}

	_, err = LoadConfig("missing")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), "missing.yaml") {
		t.Errorf("error %q should list tried paths", err)
	}
}

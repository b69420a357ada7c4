package pipeline

import (
	"regexp"
)

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Preprocessor prepares raw Markdown for parsing.
type Preprocessor struct {
	// FrontMatter enables stripping of a leading YAML block.
	FrontMatter bool
}

// Preprocessed is the Markdown body ready for parsing plus its metadata.
type Preprocessed struct {
	Source []byte
	// Meta is nil when front matter is disabled or absent.
	Meta map[string]any
}

// Preprocess normalizes line endings and, when enabled, strips front matter.
func (p Preprocessor) Preprocess(content string) (Preprocessed, error) {
	content = normalizeLineEndings(content)

	if !p.FrontMatter {
		return Preprocessed{Source: []byte(content)}, nil
	}

	block, body, ok := SplitFrontMatter(content)
	if !ok {
		return Preprocessed{Source: []byte(content)}, nil
	}
	meta, err := ParseFrontMatter(block)
	if err != nil {
		return Preprocessed{}, err
	}
	return Preprocessed{Source: []byte(body), Meta: meta}, nil
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

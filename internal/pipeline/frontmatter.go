package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// ErrFrontMatter indicates the front matter block is not valid YAML.
var ErrFrontMatter = errors.New("invalid front matter")

const frontMatterDelimiter = "---"

// SplitFrontMatter separates a leading YAML block delimited by "---" lines
// from the Markdown body. Input must use "\n" line endings.
// ok is false when content has no complete front matter block, in which
// case body is content unchanged.
func SplitFrontMatter(content string) (yamlBlock, body string, ok bool) {
	first, rest, found := strings.Cut(content, "\n")
	if !found || strings.TrimRight(first, " \t") != frontMatterDelimiter {
		return "", content, false
	}

	offset := 0
	for offset <= len(rest) {
		line, next, more := strings.Cut(rest[offset:], "\n")
		if strings.TrimRight(line, " \t") == frontMatterDelimiter {
			yamlBlock = rest[:offset]
			if more {
				body = next
			}
			return yamlBlock, body, true
		}
		if !more {
			break
		}
		offset += len(line) + 1
	}
	return "", content, false
}

// ParseFrontMatter decodes a YAML front matter block into a map.
// An empty block yields an empty, non-nil map.
func ParseFrontMatter(yamlBlock string) (map[string]any, error) {
	meta := map[string]any{}
	if strings.TrimSpace(yamlBlock) == "" {
		return meta, nil
	}
	if err := yamlutil.Unmarshal([]byte(yamlBlock), &meta); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return meta, nil
}

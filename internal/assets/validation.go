package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that a style name is safe for use as a filename.
// Names must be non-empty and free of path separators and dots.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

package assets

import "errors"

// Resolver tries a custom directory first and falls back to the built-in
// themes when a style is not found there.
type Resolver struct {
	custom   StyleLoader // nil if no custom directory configured
	embedded StyleLoader
}

var _ StyleLoader = (*Resolver)(nil)

// NewResolver creates a Resolver. An empty customDir uses only the
// built-in themes.
func NewResolver(customDir string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if customDir != "" {
		fsLoader, err := NewFilesystemLoader(customDir)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}

	return r, nil
}

// LoadStyle loads a theme. NoStyleName yields empty CSS.
func (r *Resolver) LoadStyle(name string) (string, error) {
	if name == NoStyleName {
		return "", nil
	}
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	css, err := r.custom.LoadStyle(name)
	if err == nil {
		return css, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}
	return r.embedded.LoadStyle(name)
}

// Package assets provides the CSS themes used by standalone HTML documents.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in themes)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// A custom directory holds {name}.css files directly. Theme names are
// validated and FilesystemLoader resolves symlinks and verifies paths stay
// within the directory.
package assets

package engine

import "errors"

// Sentinel errors for engine operations.
var (
	ErrUnavailable         = errors.New("engine unavailable")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrUnknownStyle        = errors.New("unknown highlight style")
	ErrTypeset             = errors.New("math typesetting failed")
)

package assets

// DefaultStyleName is the name of the built-in theme.
const DefaultStyleName = "default"

// NoStyleName disables theme CSS.
const NoStyleName = "none"

// StyleLoader loads a CSS theme by name (without .css extension).
type StyleLoader interface {
	// LoadStyle returns ErrStyleNotFound if the style doesn't exist and
	// ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)
}

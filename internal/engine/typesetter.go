package engine

// Typesetter renders TeX math source to HTML or MathML.
type Typesetter interface {
	Typeset(src string, display bool) (string, error)
}

// NewTypesetter returns the built-in typesetter, or an error wrapping
// ErrUnavailable when it was compiled out or fails its smoke test.
func NewTypesetter() (Typesetter, error) {
	return newBuiltinTypesetter()
}

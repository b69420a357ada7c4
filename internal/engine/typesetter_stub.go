//go:build nomath

package engine

import "fmt"

func newBuiltinTypesetter() (Typesetter, error) {
	return nil, fmt.Errorf("%w: built with nomath", ErrUnavailable)
}

//go:build !nomath

package engine

import (
	"fmt"
	"strings"

	"git.sr.ht/~mekyt/latex2mathml"
)

const mathMLNamespace = "http://www.w3.org/1998/Math/MathML"

// mathMLTypesetter converts TeX to MathML with latex2mathml (pure Go).
type mathMLTypesetter struct{}

var _ Typesetter = mathMLTypesetter{}

// newBuiltinTypesetter probes the converter once with a trivial expression
// so a broken build is reported as unavailable rather than per expression.
func newBuiltinTypesetter() (Typesetter, error) {
	t := mathMLTypesetter{}
	if _, err := t.Typeset("x", false); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return t, nil
}

// Typeset converts src to a <math> element. Conversion panics and empty
// output are reported as ErrTypeset.
func (mathMLTypesetter) Typeset(src string, display bool) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = "", fmt.Errorf("%w: %v", ErrTypeset, r)
		}
	}()

	mode := "inline"
	if display {
		mode = "block"
	}

	out = latex2mathml.Convert(src, mathMLNamespace, mode, 0)
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("%w: empty output for %q", ErrTypeset, src)
	}
	return out, nil
}

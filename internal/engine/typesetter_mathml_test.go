//go:build !nomath

package engine

import (
	"strings"
	"testing"
)

func TestMathMLTypesetter_Typeset(t *testing.T) {
	t.Parallel()

	ts, err := NewTypesetter()
	if err != nil {
		t.Fatalf("NewTypesetter() error = %v", err)
	}

	tests := []struct {
		name    string
		src     string
		display bool
	}{
		{name: "inline", src: "E=mc^2", display: false},
		{name: "display", src: `\frac{a}{b}`, display: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ts.Typeset(tt.src, tt.display)
			if err != nil {
				t.Fatalf("Typeset() error = %v", err)
			}
			if !strings.Contains(got, "math") {
				t.Errorf("Typeset() = %q, want a math element", got)
			}
		})
	}
}

func TestDefaultTypesetter_Available(t *testing.T) {
	t.Parallel()

	if _, ok := DefaultTypesetter().Acquire(); !ok {
		t.Fatal("default typesetter should be available in a default build")
	}
	if DefaultTypesetter().State() != StateAvailable {
		t.Errorf("State() = %v, want available", DefaultTypesetter().State())
	}
}

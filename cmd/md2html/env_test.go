package main

// Notes:
// - DefaultEnv: we test that all fields are wired.
// - newLogger: we test level selection and timestamp removal through the
//   records it writes.
// - isTerminal: only the non-terminal paths; a real TTY is not available in CI.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestDefaultEnv - Production wiring
// ---------------------------------------------------------------------------

func TestDefaultEnv(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()
	if env.Now == nil || env.Stdin == nil || env.Stdout == nil || env.Stderr == nil {
		t.Errorf("DefaultEnv has nil fields: %+v", env)
	}
}

// ---------------------------------------------------------------------------
// TestNewLogger - Level selection
// ---------------------------------------------------------------------------

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		quiet     bool
		verbose   bool
		wantDebug bool
		wantWarn  bool
		wantError bool
	}{
		{"default", false, false, false, true, true},
		{"verbose", false, true, true, true, true},
		{"quiet", true, false, false, false, true},
		{"quiet wins over verbose", true, true, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := newLogger(&buf, tt.quiet, tt.verbose)
			logger.Debug("debug-record")
			logger.Warn("warn-record")
			logger.Error("error-record")

			out := buf.String()
			if got := strings.Contains(out, "debug-record"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}
			if got := strings.Contains(out, "warn-record"); got != tt.wantWarn {
				t.Errorf("warn logged = %v, want %v", got, tt.wantWarn)
			}
			if got := strings.Contains(out, "error-record"); got != tt.wantError {
				t.Errorf("error logged = %v, want %v", got, tt.wantError)
			}
			if strings.Contains(out, "time=") {
				t.Errorf("timestamps should be dropped: %q", out)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	if isTerminal(strings.NewReader("# x")) {
		t.Error("isTerminal(strings.Reader) = true, want false")
	}

	f, err := os.CreateTemp(t.TempDir(), "stdin-*.md")
	if err != nil {
		t.Fatalf("CreateTemp() error = %v", err)
	}
	defer f.Close()
	if isTerminal(f) {
		t.Error("isTerminal(regular file) = true, want false")
	}
}

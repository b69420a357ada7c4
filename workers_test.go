package md2html

import (
	"runtime"
	"testing"
)

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	t.Run("explicit value wins", func(t *testing.T) {
		t.Parallel()

		if got := ResolveWorkers(12); got != 12 {
			t.Errorf("ResolveWorkers(12) = %d, want 12", got)
		}
	})

	t.Run("auto within bounds", func(t *testing.T) {
		t.Parallel()

		got := ResolveWorkers(0)
		if got < MinWorkers || got > MaxWorkers {
			t.Errorf("ResolveWorkers(0) = %d, want %d-%d", got, MinWorkers, MaxWorkers)
		}

		want := min(max(runtime.GOMAXPROCS(0)/cpuDivisor, MinWorkers), MaxWorkers)
		if got != want {
			t.Errorf("ResolveWorkers(0) = %d, want %d", got, want)
		}
	})
}

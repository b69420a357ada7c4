package md2html

import "runtime"

// Worker sizing constants.
const (
	// MinWorkers ensures at least one highlighting goroutine.
	MinWorkers = 1

	// MaxWorkers caps automatic sizing.
	MaxWorkers = 8

	// cpuDivisor leaves headroom for concurrent documents.
	cpuDivisor = 2
)

// ResolveWorkers determines the highlighting concurrency.
// Priority: explicit value > GOMAXPROCS-based calculation.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs in containers
	n := runtime.GOMAXPROCS(0) / cpuDivisor

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}

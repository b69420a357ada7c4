package engine

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// State is the resolution state of a Provider.
type State int32

const (
	StateUnresolved State = iota
	StateAvailable
	StateUnavailable
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateAvailable:
		return "available"
	case StateUnavailable:
		return "unavailable"
	default:
		return "unresolved"
	}
}

// Capability hands out an optional engine handle.
// The boolean is false when the engine cannot be used.
type Capability[T any] interface {
	Acquire() (T, bool)
}

// LoadFunc loads an engine handle.
type LoadFunc[T any] func() (T, error)

// Provider loads an engine at most once and caches the outcome.
// A failed load is permanent: the provider never calls the loader again.
// Safe for concurrent use.
type Provider[T any] struct {
	name   string
	load   LoadFunc[T]
	logger *slog.Logger

	once   sync.Once
	state  atomic.Int32
	handle T
	err    error
}

// Compile-time interface implementation check.
var _ Capability[Highlighter] = (*Provider[Highlighter])(nil)

// NewProvider creates a provider that resolves with load on first Acquire.
// A nil logger means slog.Default() at resolution time.
func NewProvider[T any](name string, load LoadFunc[T], logger *slog.Logger) *Provider[T] {
	return &Provider[T]{name: name, load: load, logger: logger}
}

// Available returns a provider that is already resolved to handle.
func Available[T any](name string, handle T) *Provider[T] {
	p := &Provider[T]{name: name}
	p.once.Do(func() {
		p.handle = handle
		p.state.Store(int32(StateAvailable))
	})
	return p
}

// Unavailable returns a provider that is already resolved as unavailable.
// It logs nothing.
func Unavailable[T any](name string) *Provider[T] {
	p := &Provider[T]{name: name}
	p.once.Do(func() {
		p.err = ErrUnavailable
		p.state.Store(int32(StateUnavailable))
	})
	return p
}

// Acquire resolves the engine on first use and returns the cached handle.
// It never panics and never retries a failed load.
func (p *Provider[T]) Acquire() (T, bool) {
	p.once.Do(p.resolve)
	if State(p.state.Load()) != StateAvailable {
		var zero T
		return zero, false
	}
	return p.handle, true
}

// Name returns the engine name used in log records.
func (p *Provider[T]) Name() string {
	return p.name
}

// State reports the current resolution state without triggering a load.
func (p *Provider[T]) State() State {
	return State(p.state.Load())
}

// Err returns the load error once the provider resolved as unavailable.
// It is only meaningful after State reports StateUnavailable.
func (p *Provider[T]) Err() error {
	if p.State() != StateUnavailable {
		return nil
	}
	return p.err
}

func (p *Provider[T]) resolve() {
	handle, err := p.safeLoad()
	if err != nil {
		p.err = err
		p.state.Store(int32(StateUnavailable))
		p.log().Warn("optional engine unavailable", "engine", p.name, "error", err)
		return
	}
	p.handle = handle
	p.state.Store(int32(StateAvailable))
}

// safeLoad turns a nil loader or a panicking loader into an error.
func (p *Provider[T]) safeLoad() (handle T, err error) {
	if p.load == nil {
		return handle, ErrUnavailable
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: loader panicked: %v", ErrUnavailable, r)
		}
	}()
	return p.load()
}

func (p *Provider[T]) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return slog.Default()
}

// Package sweep defines execution modes, options, and sentinel errors
// for the sweep subpackage of github.com/markovkit/markovkit.
package sweep

import (
	"errors"
	"runtime"
)

// Sentinel errors for sweep operations.
var (
	// ErrUnknownMode indicates a Mode outside {Sequential, Parallel}.
	ErrUnknownMode = errors.New("sweep: unknown execution mode")
	// ErrNegativeCount indicates a negative index count.
	ErrNegativeCount = errors.New("sweep: index count must be non-negative")
	// ErrNilKernel indicates a nil per-index function.
	ErrNilKernel = errors.New("sweep: kernel function must be non-nil")
)

// Mode selects how a sweep is executed: one fixed-order loop (Sequential)
// or a data-parallel dispatch with a barrier on return (Parallel).
type Mode int

const (
	// Sequential runs fn(0), fn(1), …, fn(n-1) on the calling goroutine.
	Sequential Mode = iota
	// Parallel runs fn across up to Workers goroutines and waits for all.
	Parallel
)

// String returns the human-readable mode name.
func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// Options configures sweep execution.
//
// Fields:
//   - Mode    — Sequential or Parallel.
//   - Workers — maximum goroutines in Parallel mode; values ≤ 0 fall back
//     to runtime.GOMAXPROCS(0). Ignored in Sequential mode.
type Options struct {
	Mode    Mode
	Workers int
}

// DefaultOptions returns production-safe defaults:
// Sequential execution, Workers = GOMAXPROCS.
func DefaultOptions() Options {
	return Options{
		Mode:    Sequential,
		Workers: runtime.GOMAXPROCS(0),
	}
}

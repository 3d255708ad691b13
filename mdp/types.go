// Package mdp defines algorithms, options, and sentinel errors for the
// mdp subpackage of github.com/markovkit/markovkit.
package mdp

import (
	"errors"
	"fmt"

	"github.com/markovkit/markovkit/sweep"
)

// Sentinel errors for mdp operations.
var (
	// ErrNilModel indicates a nil *Model was passed to a solver.
	ErrNilModel = errors.New("mdp: model must be non-nil")
	// ErrInvalidModel indicates a structural invariant violated at model construction.
	ErrInvalidModel = errors.New("mdp: invalid model")
	// ErrUnsupportedAlgorithm indicates an Algorithm outside the known set.
	ErrUnsupportedAlgorithm = errors.New("mdp: unsupported algorithm")
	// ErrNilHeuristic indicates LAO* was requested without an admissible heuristic.
	ErrNilHeuristic = errors.New("mdp: LAO* requires a heuristic value per state")
	// ErrHeuristicLength indicates a heuristic whose length differs from the state count.
	ErrHeuristicLength = errors.New("mdp: heuristic length must equal the number of states")
	// ErrStartOutOfRange indicates a start state outside [0, n).
	ErrStartOutOfRange = errors.New("mdp: start state out of range")
	// ErrNonPositiveEpsilon indicates a convergence tolerance ≤ 0.
	ErrNonPositiveEpsilon = errors.New("mdp: epsilon must be positive")
	// ErrNegativeIterationCap indicates a negative iteration budget.
	ErrNegativeIterationCap = errors.New("mdp: iteration cap must be non-negative")
	// ErrStateNotCovered indicates a query for a state the policy does not cover.
	ErrStateNotCovered = errors.New("mdp: state not covered by policy")
)

// ModelError carries the detail of a structural model violation.
// It unwraps to ErrInvalidModel so callers can match with errors.Is.
type ModelError struct {
	Field  string // offending component: "T", "R", "gamma", "goal", …
	State  int    // state index, -1 when not applicable
	Action int    // action index, -1 when not applicable
	Detail string
}

func (e ModelError) Error() string {
	return fmt.Sprintf("mdp: invalid model: %s (state=%d action=%d): %s",
		e.Field, e.State, e.Action, e.Detail)
}

func (e ModelError) Unwrap() error { return ErrInvalidModel }

// Algorithm selects the MDP solver.
type Algorithm int

const (
	// ValueIteration runs synchronous Bellman sweeps over all states.
	ValueIteration Algorithm = iota
	// LAOStar runs heuristic-guided partial-expansion search (SSP models).
	LAOStar
	// RTDP runs trial-based asynchronous backups (SSP models).
	RTDP
)

// String returns the canonical algorithm name.
func (a Algorithm) String() string {
	switch a {
	case ValueIteration:
		return "vi"
	case LAOStar:
		return "lao*"
	case RTDP:
		return "rtdp"
	default:
		return "unknown"
	}
}

// Options configures all MDP solvers.
//
// Fields:
//   - Algorithm    — ValueIteration, LAOStar, or RTDP.
//   - Mode         — sweep.Sequential or sweep.Parallel. Value Iteration
//     and the LAO* backup step honor it; RTDP trials are inherently
//     sequential and ignore it.
//   - Workers      — goroutine bound for sweep.Parallel; ≤ 0 means GOMAXPROCS.
//   - Epsilon      — Bellman residual threshold for convergence.
//   - IterationCap — hard bound on sweeps (VI, LAO*) or trials (RTDP).
//     A cap of 0 returns immediately with a zero-initialized policy and
//     Converged=false.
//   - Heuristic    — per-state admissible cost heuristic, required by LAO*
//     and optional for RTDP (nil means all-zero, admissible for
//     non-negative costs). Admissibility is the caller's responsibility;
//     it is not verified.
//   - Start        — start state for LAO* and RTDP.
//   - Seed         — RTDP trajectory seed; 0 selects a fixed default so
//     results stay reproducible.
//   - MaxTrialDepth — RTDP step bound per trial; ≤ 0 derives a bound from
//     the model horizon (or 10·n when the horizon is unbounded).
type Options struct {
	Algorithm     Algorithm
	Mode          sweep.Mode
	Workers       int
	Epsilon       float64
	IterationCap  int
	Heuristic     []float64
	Start         int
	Seed          int64
	MaxTrialDepth int
}

// DefaultOptions returns production-safe defaults: Value Iteration,
// sequential execution, ε=1e-6, 10000 iterations.
func DefaultOptions() Options {
	return Options{
		Algorithm:    ValueIteration,
		Mode:         sweep.Sequential,
		Epsilon:      1e-6,
		IterationCap: 10000,
	}
}

// Package pomdp defines options, enums, and sentinel errors for the
// pomdp subpackage of github.com/markovkit/markovkit.
package pomdp

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/markovkit/markovkit/sweep"
)

// Sentinel errors for pomdp operations.
var (
	// ErrNilModel indicates a nil *Model.
	ErrNilModel = errors.New("pomdp: model must be non-nil")
	// ErrNilBeliefSet indicates a nil *BeliefSet.
	ErrNilBeliefSet = errors.New("pomdp: belief set must be non-nil")
	// ErrInvalidModel indicates a structural invariant violated at model construction.
	ErrInvalidModel = errors.New("pomdp: invalid model")
	// ErrInvalidBelief indicates a belief that is not a distribution over states.
	ErrInvalidBelief = errors.New("pomdp: belief must be a non-negative distribution summing to 1")
	// ErrDimensionMismatch indicates a belief whose length differs from the state count.
	ErrDimensionMismatch = errors.New("pomdp: belief length must equal the number of states")
	// ErrEmptyBeliefSet indicates a solve or expansion over zero beliefs.
	ErrEmptyBeliefSet = errors.New("pomdp: belief set must contain at least one belief")
	// ErrUnknownExpandMethod indicates an ExpandMethod outside the known set.
	ErrUnknownExpandMethod = errors.New("pomdp: unknown expansion method")
	// ErrNoReachableSuccessor indicates expansion could not reach any new belief.
	ErrNoReachableSuccessor = errors.New("pomdp: no reachable successor belief")
	// ErrNonPositiveEpsilon indicates a convergence tolerance ≤ 0.
	ErrNonPositiveEpsilon = errors.New("pomdp: epsilon must be positive")
	// ErrNegativeIterationCap indicates a negative iteration budget.
	ErrNegativeIterationCap = errors.New("pomdp: iteration cap must be non-negative")
	// ErrUndiscounted indicates a discount of exactly 1, unsupported for
	// infinite-horizon alpha-vector backup.
	ErrUndiscounted = errors.New("pomdp: discount must be strictly below 1")
)

// ModelError carries the detail of a structural model violation.
// It unwraps to ErrInvalidModel so callers can match with errors.Is.
type ModelError struct {
	Field  string // offending component: "T", "O", "R", "gamma", …
	State  int    // state index, -1 when not applicable
	Action int    // action index, -1 when not applicable
	Detail string
}

func (e ModelError) Error() string {
	return fmt.Sprintf("pomdp: invalid model: %s (state=%d action=%d): %s",
		e.Field, e.State, e.Action, e.Detail)
}

func (e ModelError) Unwrap() error { return ErrInvalidModel }

// ExpandMethod selects the belief expansion strategy.
type ExpandMethod int

const (
	// RandomWalk grows beliefs by simulating random action/observation
	// trajectories from existing beliefs.
	RandomWalk ExpandMethod = iota
)

// PruneMode selects how the alpha-vector set is bounded between sweeps.
type PruneMode int

const (
	// PruneNone keeps every vector (one per belief and sweep).
	PruneNone PruneMode = iota
	// PruneDuplicates drops vectors equal to an earlier one within tolerance.
	PruneDuplicates
	// PruneDominated additionally drops vectors pointwise dominated by
	// another vector (dominated everywhere on the belief simplex).
	PruneDominated
)

// ExpandOptions configures belief set expansion.
//
// Fields:
//   - Method       — expansion strategy (RandomWalk).
//   - NumDesired   — how many new beliefs to add; 0 is a no-op.
//   - Seed         — trajectory seed; 0 selects a fixed default so growth
//     stays deterministic.
//   - DupTolerance — max-norm radius within which a candidate counts as a
//     duplicate of an existing belief; 0 rejects exact matches only.
//   - MaxAttempts  — trajectory budget before giving up; ≤ 0 derives
//     64·NumDesired + 64.
type ExpandOptions struct {
	Method       ExpandMethod
	NumDesired   int
	Seed         int64
	DupTolerance float64
	MaxAttempts  int
}

// DefaultExpandOptions returns production-safe defaults: random walk,
// 100 new beliefs, fixed seed, exact-duplicate rejection.
func DefaultExpandOptions() ExpandOptions {
	return ExpandOptions{
		Method:     RandomWalk,
		NumDesired: 100,
	}
}

// Options configures the point-based alpha-vector solve.
//
// Fields:
//   - Mode, Workers   — execution backend selection (one unit per belief
//     in Parallel mode).
//   - Epsilon         — Bellman residual threshold over the belief set.
//   - IterationCap    — hard sweep bound; 0 returns the initial bound
//     immediately with Converged=false.
//   - Prune           — vector pruning policy between sweeps.
//   - PruneTolerance  — comparison tolerance for Prune (default 1e-9).
//   - InitialGamma    — optional initial alpha-vectors (r×n); nil starts
//     from the single uniform lower-bound vector min R/(1−γ).
type Options struct {
	Mode           sweep.Mode
	Workers        int
	Epsilon        float64
	IterationCap   int
	Prune          PruneMode
	PruneTolerance float64
	InitialGamma   *mat.Dense
}

// DefaultOptions returns production-safe defaults: sequential execution,
// ε=1e-4, 1000 sweeps, duplicate pruning.
func DefaultOptions() Options {
	return Options{
		Mode:           sweep.Sequential,
		Epsilon:        1e-4,
		IterationCap:   1000,
		Prune:          PruneDuplicates,
		PruneTolerance: 1e-9,
	}
}

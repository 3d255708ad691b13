package pomdp

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/markovkit/markovkit/sweep"
)

// Solve runs point-based value iteration over the beliefs of bs and
// returns the resulting alpha-vector set.
//
// ─────────────────────────────────────────────────────────────────────────
// Algorithm outline (point-based alpha-vector iteration):
//  1. Seed Γ₀ with opts.InitialGamma, or with the single uniform
//     lower-bound vector (min R)/(1−γ) when nil.
//  2. Each sweep backs up every belief in the set against Γ_k
//     (see backupBelief), producing one candidate vector per belief.
//     Beliefs are independent within a sweep, so Parallel mode schedules
//     one unit of work per belief.
//  3. The sweep residual is max_b |V_{k+1}(b) − V_k(b)| over the belief
//     set; the loop stops once it falls below Epsilon or the cap is hit.
//  4. Between sweeps the candidate set is bounded per opts.Prune.
//
// IterationCap = 0 returns the initial bound immediately with
// Converged=false and no error. The belief set is read-only during the
// solve; interleave Expand and Solve to trade coverage for time.
//
// Complexity: O(cap · |B|² · m·z·n²) time, O(|B|·n) space.
// ─────────────────────────────────────────────────────────────────────────
func Solve(m *Model, bs *BeliefSet, opts Options) (*AlphaVectorSet, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if bs == nil {
		return nil, ErrNilBeliefSet
	}
	if bs.n != m.n {
		return nil, ErrDimensionMismatch
	}
	if bs.Len() == 0 {
		return nil, ErrEmptyBeliefSet
	}
	if opts.Epsilon <= 0 {
		return nil, ErrNonPositiveEpsilon
	}
	if opts.IterationCap < 0 {
		return nil, ErrNegativeIterationCap
	}

	gamma, pi, err := initialGamma(m, opts.InitialGamma)
	if err != nil {
		return nil, err
	}

	sweepOpts := sweep.Options{Mode: opts.Mode, Workers: opts.Workers}
	numBeliefs := bs.Len()
	n := m.n

	converged := false
	for k := 0; k < opts.IterationCap; k++ {
		next := mat.NewDense(numBeliefs, n, nil)
		nextPi := make([]int, numBeliefs)
		residuals := make([]float64, numBeliefs)

		prev := gamma
		if err := sweep.Run(numBeliefs, func(i int) {
			b := bs.point(i)
			scratch := make([]float64, n)
			action, value := backupBelief(m, prev, b, next.RawRowView(i), scratch)
			nextPi[i] = action
			residuals[i] = math.Abs(value - envelopeValue(prev, b))
		}, sweepOpts); err != nil {
			return nil, err
		}

		gamma, pi = pruneGamma(next, nextPi, opts.Prune, opts.PruneTolerance)

		if maxOf(residuals) <= opts.Epsilon {
			converged = true
			break
		}
	}

	return &AlphaVectorSet{
		n:         n,
		m:         m.m,
		Gamma:     gamma,
		Pi:        pi,
		Converged: converged,
	}, nil
}

// initialGamma builds the starting vector set: a user-supplied set when
// provided, otherwise the single uniform lower bound (min R)/(1−γ).
func initialGamma(m *Model, user *mat.Dense) (*mat.Dense, []int, error) {
	if user != nil {
		r, c := user.Dims()
		if r < 1 || c != m.n {
			return nil, nil, ErrDimensionMismatch
		}
		gamma := mat.DenseCopyOf(user)

		return gamma, make([]int, r), nil
	}

	low := m.minReward() / (1 - m.gamma)
	row := make([]float64, m.n)
	for s := range row {
		row[s] = low
	}

	return mat.NewDense(1, m.n, row), []int{0}, nil
}

// envelopeValue evaluates max_i b·α_i over the rows of gamma.
func envelopeValue(gamma *mat.Dense, b []float64) float64 {
	numVectors, _ := gamma.Dims()
	best := floats.Dot(b, gamma.RawRowView(0))
	for i := 1; i < numVectors; i++ {
		if v := floats.Dot(b, gamma.RawRowView(i)); v > best {
			best = v
		}
	}

	return best
}

// maxOf returns the maximum of a non-empty slice.
func maxOf(xs []float64) float64 {
	best := xs[0]
	for _, x := range xs[1:] {
		if x > best {
			best = x
		}
	}

	return best
}

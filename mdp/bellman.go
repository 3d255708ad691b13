// Package mdp - shared Bellman backup kernels and RNG utilities.
//
// This file centralizes the one-step lookahead used by all three solvers
// and the deterministic random generation RTDP relies on.
//
// Goals:
//   - One backup implementation per optimization sense (max-reward for
//     discounted models, min-cost for shortest-path models), so every
//     solver resolves action ties identically: the lowest action index
//     achieving the optimum wins, via strict comparison.
//   - Determinism: same seed ⇒ identical RTDP trajectories across
//     platforms; no time-based random sources anywhere.
//   - Hot-path discipline: flat-slice indexing, no allocations.
package mdp

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// qValue computes Q(s,a) = R(s,a) + gamma·Σ_sp T(s,a,sp)·V(sp) against
// the given value snapshot. The reduction order over sp is fixed by the
// model layout, so sequential and parallel sweeps agree bitwise.
//
// Complexity: O(n).
func qValue(mo *Model, v []float64, s, a int) float64 {
	base := (s*mo.m + a) * mo.n
	exp := 0.0
	for sp := 0; sp < mo.n; sp++ {
		if p := mo.t[base+sp]; p != 0 {
			exp += p * v[sp]
		}
	}

	return mo.r[s*mo.m+a] + mo.gamma*exp
}

// maxQ returns the best action and value at s for reward maximization.
// Ties resolve to the lowest action index (strict > comparison).
//
// Complexity: O(n·m).
func maxQ(mo *Model, v []float64, s int) (int, float64) {
	bestA, bestQ := 0, qValue(mo, v, s, 0)
	for a := 1; a < mo.m; a++ {
		if q := qValue(mo, v, s, a); q > bestQ {
			bestA, bestQ = a, q
		}
	}

	return bestA, bestQ
}

// minQ returns the best action and value at s for cost minimization.
// Ties resolve to the lowest action index (strict < comparison).
//
// Complexity: O(n·m).
func minQ(mo *Model, v []float64, s int) (int, float64) {
	bestA, bestQ := 0, qValue(mo, v, s, 0)
	for a := 1; a < mo.m; a++ {
		if q := qValue(mo, v, s, a); q < bestQ {
			bestA, bestQ = a, q
		}
	}

	return bestA, bestQ
}

// sampleSuccessor draws sp ~ T(s,a,·) by inverse-CDF over the dense row.
// Falls back to the last positive-probability successor when rounding
// leaves residual mass, and to s itself for an all-zero row (terminal).
//
// Complexity: O(n).
func sampleSuccessor(mo *Model, rng *rand.Rand, s, a int) int {
	base := (s*mo.m + a) * mo.n
	target := rng.Float64()
	acc := 0.0
	last := s
	for sp := 0; sp < mo.n; sp++ {
		p := mo.t[base+sp]
		if p <= 0 {
			continue
		}
		last = sp
		acc += p
		if acc >= target {
			return sp
		}
	}

	return last
}

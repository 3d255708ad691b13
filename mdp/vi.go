package mdp

import (
	"math"

	"github.com/markovkit/markovkit/sweep"
)

// solveVI - synchronous Value Iteration.
//
// Algorithm outline:
//  1. Initialize V_0 ≡ 0 (goal states stay pinned at 0 throughout).
//  2. Each sweep computes V_{k+1}(s) = max_a [R(s,a) + γ·Σ_sp T(s,a,sp)·V_k(sp)]
//     for every state, reading only the V_k snapshot (Jacobi): the two
//     value buffers alternate roles, so no backup ever observes a
//     half-updated sweep. Per-state backups run through sweep.Run, one
//     execution unit per state in Parallel mode.
//  3. Terminate when max_s |V_{k+1}(s)-V_k(s)| < ε, or when the sweep
//     budget (IterationCap, additionally bounded by the model horizon)
//     is exhausted — in which case the best-so-far policy is returned
//     with Converged=false.
//
// An IterationCap of 0 returns immediately: zero-initialized values,
// action 0 everywhere, Converged=false, no error.
//
// Complexity: O(sweeps·n²·m) time, O(n) extra memory.
func solveVI(mo *Model, opts Options) (*Policy, error) {
	n := mo.n
	cur := make([]float64, n)
	next := make([]float64, n)
	pi := make([]int, n)

	sopts := sweep.Options{Mode: opts.Mode, Workers: opts.Workers}

	budget := opts.IterationCap
	if mo.horizon > 0 && mo.horizon < budget {
		budget = mo.horizon
	}

	converged := false
	for k := 0; k < budget; k++ {
		if err := sweep.Run(n, func(s int) {
			if mo.goal[s] {
				next[s], pi[s] = 0, 0

				return
			}
			pi[s], next[s] = maxQ(mo, cur, s)
		}, sopts); err != nil {
			return nil, err
		}

		residual := 0.0
		for s := 0; s < n; s++ {
			if d := math.Abs(next[s] - cur[s]); d > residual {
				residual = d
			}
		}
		cur, next = next, cur

		if residual < opts.Epsilon {
			converged = true
			break
		}
	}

	return &Policy{Kind: DensePolicy, V: cur, Pi: pi, Converged: converged}, nil
}

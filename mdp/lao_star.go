package mdp

import (
	"math"

	"github.com/markovkit/markovkit/sweep"
)

// solveLAOStar - heuristic-guided partial-expansion search for
// stochastic shortest-path models (costs R ≥ 0, absorbing goals at 0).
//
// Algorithm outline:
//  1. Initialize V from the caller's admissible heuristic (goals pinned
//     at 0); no state is expanded yet.
//  2. Trace the greedy policy graph from Start. Non-goal states reached
//     through greedy actions but not yet expanded form the fringe.
//  3. While a fringe exists: expand it and run one cost backup sweep
//     over the whole traced envelope.
//  4. Once the envelope is closed (no fringe), value-iterate over it
//     until the Bellman residual drops below ε, then re-trace: backups
//     may have redirected the greedy policy toward unexpanded states,
//     reopening a fringe. Convergence is declared only when the envelope
//     is closed *and* value-consistent.
//
// Correctness requires the heuristic never to overestimate the true cost;
// admissibility is the caller's responsibility and is not verified here.
//
// Every backup sweep, expansion or not, counts against IterationCap.
// Exhausting the budget returns the best partial policy with
// Converged=false (never an error).
//
// The result is a sparse Policy covering exactly the final envelope.
//
// Complexity: O(sweeps·|envelope|·n·m) time, O(n) extra memory.
func solveLAOStar(mo *Model, opts Options) (*Policy, error) {
	n := mo.n
	v := make([]float64, n)
	copy(v, opts.Heuristic)
	pi := make([]int, n)
	for s := 0; s < n; s++ {
		pi[s] = -1
		if mo.goal[s] {
			v[s] = 0
		}
	}
	expanded := make([]bool, n)

	sopts := sweep.Options{Mode: opts.Mode, Workers: opts.Workers}

	var envelope []int
	converged := false
	k := 0
	for k < opts.IterationCap {
		reachable, fringe := greedyEnvelope(mo, pi, expanded, opts.Start)
		envelope = reachable

		if len(fringe) > 0 {
			for _, s := range fringe {
				expanded[s] = true
			}
			if _, err := backupSet(mo, v, pi, reachable, sopts); err != nil {
				return nil, err
			}
			k++

			continue
		}

		// Envelope closed: iterate to value consistency over it.
		residual := math.Inf(1)
		for k < opts.IterationCap {
			r, err := backupSet(mo, v, pi, reachable, sopts)
			if err != nil {
				return nil, err
			}
			k++
			residual = r
			if residual < opts.Epsilon {
				break
			}
		}
		if residual < opts.Epsilon {
			final, fringe2 := greedyEnvelope(mo, pi, expanded, opts.Start)
			envelope = final
			if len(fringe2) == 0 {
				converged = true
				break
			}
		}
	}

	if envelope == nil {
		// Zero budget: the policy graph is just the unexpanded start.
		envelope, _ = greedyEnvelope(mo, pi, expanded, opts.Start)
	}
	for _, s := range envelope {
		if pi[s] < 0 {
			pi[s] = 0 // never backed up (goal or budget-starved fringe)
		}
	}

	return newSparsePolicy(envelope, v, pi, converged), nil
}

// greedyEnvelope traces the current greedy policy graph from start.
// It returns every visited state (expanded interior, goals, fringe) and,
// separately, the fringe: visited non-goal states not yet expanded, whose
// successors are not descended into.
//
// Complexity: O(|envelope|·n).
func greedyEnvelope(mo *Model, pi []int, expanded []bool, start int) (reachable, fringe []int) {
	seen := make([]bool, mo.n)
	queue := []int{start}
	seen[start] = true

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		reachable = append(reachable, s)

		if mo.goal[s] {
			continue
		}
		if !expanded[s] {
			fringe = append(fringe, s)

			continue
		}

		base := (s*mo.m + pi[s]) * mo.n
		for sp := 0; sp < mo.n; sp++ {
			if mo.t[base+sp] > 0 && !seen[sp] {
				seen[sp] = true
				queue = append(queue, sp)
			}
		}
	}

	return reachable, fringe
}

// backupSet performs one Jacobi cost backup sweep restricted to the given
// state set: every backup reads the pre-sweep value snapshot, writes a
// distinct slot, and the updates are applied only after the barrier.
// Returns the max residual over the set.
//
// Complexity: O(|set|·n·m) time plus an O(n) snapshot copy.
func backupSet(mo *Model, v []float64, pi []int, set []int, sopts sweep.Options) (float64, error) {
	old := append([]float64(nil), v...)
	newV := make([]float64, len(set))
	newA := make([]int, len(set))

	if err := sweep.Run(len(set), func(i int) {
		s := set[i]
		if mo.goal[s] {
			newV[i], newA[i] = 0, 0

			return
		}
		newA[i], newV[i] = minQ(mo, old, s)
	}, sopts); err != nil {
		return 0, err
	}

	residual := 0.0
	for i, s := range set {
		if d := math.Abs(newV[i] - old[s]); d > residual {
			residual = d
		}
		v[s] = newV[i]
		if !mo.goal[s] {
			pi[s] = newA[i]
		}
	}

	return residual, nil
}

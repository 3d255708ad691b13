package mdp

import "math"

// solveRTDP - labeled real-time dynamic programming for stochastic
// shortest-path models (costs R ≥ 0, absorbing goals at 0).
//
// Algorithm outline:
//  1. Initialize V from the heuristic when provided (all-zero otherwise,
//     which is admissible for non-negative costs); goals pinned at 0.
//  2. Each trial simulates the greedy policy from Start with the seeded
//     RNG: back up the visited state (asynchronously, in place), then
//     sample a successor of the greedy action; stop at a goal, at a
//     solved state, or at the trial depth bound.
//  3. After each trial, walk the visited stack backwards and label states
//     "solved" once their residual and all their greedy descendants'
//     residuals fall below ε — solved regions are never revisited.
//  4. Stop when Start is labeled solved (Converged=true) or the trial
//     budget is exhausted (best-effort policy, Converged=false).
//
// Trials are inherently sequential (each backup feeds the next step), so
// Options.Mode is ignored here. Identical seeds yield identical policies.
//
// The result is a sparse Policy covering every state backed up or
// visited during the trials.
//
// Complexity: O(trials·depth·n·m) time, O(n) extra memory.
func solveRTDP(mo *Model, opts Options) (*Policy, error) {
	n := mo.n
	v := make([]float64, n)
	if opts.Heuristic != nil {
		copy(v, opts.Heuristic)
	}
	pi := make([]int, n)
	for s := 0; s < n; s++ {
		pi[s] = -1
		if mo.goal[s] {
			v[s] = 0
		}
	}
	solved := append([]bool(nil), mo.goal...)
	touched := make([]bool, n)
	touched[opts.Start] = true

	rng := rngFromSeed(opts.Seed)
	depth := trialDepth(mo, opts)

	converged := false
	visited := make([]int, 0, depth)
	for trial := 0; trial < opts.IterationCap; trial++ {
		if solved[opts.Start] {
			converged = true
			break
		}

		visited = visited[:0]
		s := opts.Start
		for d := 0; d < depth && !solved[s]; d++ {
			visited = append(visited, s)
			touched[s] = true
			if mo.goal[s] {
				break
			}
			a, q := minQ(mo, v, s)
			v[s], pi[s] = q, a
			s = sampleSuccessor(mo, rng, s, a)
		}
		touched[s] = true

		for len(visited) > 0 {
			last := visited[len(visited)-1]
			visited = visited[:len(visited)-1]
			if !checkSolved(mo, v, pi, solved, last, opts.Epsilon) {
				break
			}
		}
	}
	if solved[opts.Start] {
		converged = true
	}

	covered := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if touched[s] {
			if pi[s] < 0 {
				pi[s] = 0
			}
			covered = append(covered, s)
		}
	}

	return newSparsePolicy(covered, v, pi, converged), nil
}

// trialDepth derives the per-trial step bound: the explicit option wins,
// then the model horizon, then 10·n as a generous default.
func trialDepth(mo *Model, opts Options) int {
	if opts.MaxTrialDepth > 0 {
		return opts.MaxTrialDepth
	}
	if mo.horizon > 0 {
		return mo.horizon
	}

	return 10 * mo.n
}

// checkSolved runs the labeling pass: depth-first search over the greedy
// subgraph of s restricted to unsolved states. If every reached state has
// residual ≤ ε, the whole closed set is labeled solved; otherwise the
// closed set is backed up once in reverse order to speed convergence.
//
// Complexity: O(|closed|·n·m).
func checkSolved(mo *Model, v []float64, pi []int, solved []bool, s int, eps float64) bool {
	ok := true
	open := []int{s}
	closed := make([]int, 0, 8)
	seen := map[int]bool{s: true}

	for len(open) > 0 {
		cur := open[len(open)-1]
		open = open[:len(open)-1]
		closed = append(closed, cur)

		if mo.goal[cur] {
			continue
		}

		a, q := minQ(mo, v, cur)
		if math.Abs(q-v[cur]) > eps {
			ok = false

			continue // residual too high; do not descend further
		}

		base := (cur*mo.m + a) * mo.n
		for sp := 0; sp < mo.n; sp++ {
			if mo.t[base+sp] > 0 && !solved[sp] && !seen[sp] {
				seen[sp] = true
				open = append(open, sp)
			}
		}
	}

	if ok {
		for _, cur := range closed {
			solved[cur] = true
		}

		return true
	}

	for i := len(closed) - 1; i >= 0; i-- {
		cur := closed[i]
		if mo.goal[cur] {
			continue
		}
		a, q := minQ(mo, v, cur)
		v[cur], pi[cur] = q, a
	}

	return false
}

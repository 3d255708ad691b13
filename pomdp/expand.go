package pomdp

import "math/rand"

// defaultRNGSeed keeps random-walk expansion reproducible when
// ExpandOptions.Seed is zero.
const defaultRNGSeed = 1

// rngFromSeed maps a user seed to a deterministic source. Seed 0 selects
// the package default so zero-valued options stay reproducible.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Expand grows bs toward opts.NumDesired additional beliefs by simulating
// random walks through the model dynamics.
//
// ─────────────────────────────────────────────────────────────────────────
// Algorithm outline (random-walk expansion):
//  1. Pick a uniformly random belief already in the set (including beliefs
//     added earlier in this call).
//  2. Walk a random number of steps: at each step sample an action
//     uniformly, sample an observation from its marginal likelihood
//     P(o|b,a) = Σ_s b(s) Σ_s' T(s,a,s') O(a,s',o), and apply the Bayes
//     update b'(s') ∝ O(a,s',o) Σ_s T(s,a,s') b(s).
//  3. Offer the endpoint to the set; duplicates within DupTolerance are
//     rejected and the walk retries from step 1.
//
// The walk budget is bounded by MaxAttempts (default 64·NumDesired + 64)
// so models whose reachable belief space is smaller than the quota
// terminate. Partial progress is committed: Expand returns nil whenever at
// least one belief was added, and ErrNoReachableSuccessor only when the
// budget expired with no addition at all (bs is then left unmodified).
//
// Complexity: O(attempts · depth · m·n·(n+z)) time, O(n) scratch space.
// ─────────────────────────────────────────────────────────────────────────
func Expand(m *Model, bs *BeliefSet, opts ExpandOptions) error {
	if m == nil {
		return ErrNilModel
	}
	if bs == nil {
		return ErrNilBeliefSet
	}
	if bs.n != m.n {
		return ErrDimensionMismatch
	}
	if opts.Method != RandomWalk {
		return ErrUnknownExpandMethod
	}
	if opts.NumDesired <= 0 {
		return nil
	}
	if opts.DupTolerance < 0 {
		return ErrInvalidBelief
	}

	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 64*opts.NumDesired + 64
	}
	maxDepth := m.horizon
	if maxDepth <= 0 {
		maxDepth = defaultWalkDepth
	}

	rng := rngFromSeed(opts.Seed)
	cur := make([]float64, m.n)
	next := make([]float64, m.n)
	obsLik := make([]float64, m.z)

	added := 0
	for attempt := 0; attempt < maxAttempts && added < opts.NumDesired; attempt++ {
		copy(cur, bs.point(rng.Intn(bs.Len())))

		depth := 1 + rng.Intn(maxDepth)
		ok := true
		for step := 0; step < depth; step++ {
			a := rng.Intn(m.m)
			if !stepBelief(m, cur, a, rng, next, obsLik) {
				ok = false
				break
			}
			cur, next = next, cur
		}
		if !ok {
			continue
		}

		if _, fresh, err := bs.Add(cur, opts.DupTolerance); err != nil {
			return err
		} else if fresh {
			added++
		}
	}

	if added == 0 {
		return ErrNoReachableSuccessor
	}

	return nil
}

// defaultWalkDepth bounds walk length for models with no horizon hint.
const defaultWalkDepth = 16

// stepBelief samples an observation under (b, a) and writes the Bayes
// posterior into next. It reports false when every observation has zero
// likelihood, which only happens on degenerate kernels.
func stepBelief(m *Model, b []float64, a int, rng *rand.Rand, next, obsLik []float64) bool {
	n, z := m.n, m.z

	// Marginal observation likelihood P(o|b,a).
	for o := 0; o < z; o++ {
		obsLik[o] = 0
	}
	total := 0.0
	for s := 0; s < n; s++ {
		if b[s] == 0 {
			continue
		}
		tRow := m.t[(s*m.m+a)*n:]
		for sp := 0; sp < n; sp++ {
			p := b[s] * tRow[sp]
			if p == 0 {
				continue
			}
			oRow := m.o[(a*n+sp)*z:]
			for o := 0; o < z; o++ {
				obsLik[o] += p * oRow[o]
				total += p * oRow[o]
			}
		}
	}
	if total <= 0 {
		return false
	}

	// Inverse-CDF sample of o.
	u := rng.Float64() * total
	obs := z - 1
	acc := 0.0
	for o := 0; o < z; o++ {
		acc += obsLik[o]
		if u < acc {
			obs = o
			break
		}
	}

	// Posterior b'(s') ∝ O(a,s',o) Σ_s T(s,a,s') b(s).
	norm := 0.0
	for sp := 0; sp < n; sp++ {
		acc := 0.0
		for s := 0; s < n; s++ {
			if b[s] == 0 {
				continue
			}
			acc += b[s] * m.t[(s*m.m+a)*n+sp]
		}
		v := acc * m.o[(a*n+sp)*z+obs]
		next[sp] = v
		norm += v
	}
	if norm <= 0 {
		return false
	}
	for sp := 0; sp < n; sp++ {
		next[sp] /= norm
	}

	return true
}

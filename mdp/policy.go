package mdp

import "sort"

// PolicyKind tags the policy representation.
type PolicyKind int

const (
	// DensePolicy assigns a value and action to every state in [0, n).
	DensePolicy PolicyKind = iota
	// SparsePolicy covers only the r < n states reachable under the
	// solved policy; States holds their sorted indices.
	SparsePolicy
)

// Policy is the solved MDP artifact: a value function plus a greedy
// action per covered state.
//
// Invariants:
//   - Dense: len(V) == len(Pi) == n.
//   - Sparse: len(States) == len(V) == len(Pi) == r, States sorted ascending.
//   - Converged reports whether the residual threshold was met before the
//     iteration/trial budget ran out; false means the artifact is the best
//     effort found within the budget.
//
// A Policy owns its buffers; it shares nothing with the Model that
// produced it and is safe for concurrent read-only queries.
type Policy struct {
	Kind      PolicyKind
	States    []int // sparse only
	V         []float64
	Pi        []int
	Converged bool
}

// ValueAndAction returns the solved value and greedy action at state.
// Pure read, no side effects; identical inputs yield identical results.
//
// Errors: ErrStateNotCovered when state is outside the covered set
// (out of range for a dense policy, absent for a sparse one).
//
// Complexity: O(1) dense, O(log r) sparse.
func (p *Policy) ValueAndAction(state int) (float64, int, error) {
	switch p.Kind {
	case SparsePolicy:
		i := sort.SearchInts(p.States, state)
		if i >= len(p.States) || p.States[i] != state {
			return 0, 0, ErrStateNotCovered
		}

		return p.V[i], p.Pi[i], nil

	default:
		if state < 0 || state >= len(p.V) {
			return 0, 0, ErrStateNotCovered
		}

		return p.V[state], p.Pi[state], nil
	}
}

// Covers reports whether the policy assigns a value/action to state.
func (p *Policy) Covers(state int) bool {
	_, _, err := p.ValueAndAction(state)

	return err == nil
}

// newSparsePolicy assembles a sparse policy from dense per-state buffers
// restricted to the given (unsorted) state set.
func newSparsePolicy(states []int, v []float64, pi []int, converged bool) *Policy {
	sorted := append([]int(nil), states...)
	sort.Ints(sorted)

	p := &Policy{
		Kind:      SparsePolicy,
		States:    sorted,
		V:         make([]float64, len(sorted)),
		Pi:        make([]int, len(sorted)),
		Converged: converged,
	}
	for i, s := range sorted {
		p.V[i] = v[s]
		p.Pi[i] = pi[s]
	}

	return p
}

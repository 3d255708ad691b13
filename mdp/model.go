package mdp

import "math"

// defaultProbTolerance bounds the deviation of a transition row's sum from 1.
const defaultProbTolerance = 1e-5

// Model is an immutable MDP instance: n states, m actions, a dense
// transition kernel T (row-major n×m×n), a reward (or cost) table R
// (row-major n×m), a discount in [0,1], an optional horizon, and an
// optional set of absorbing goal states for shortest-path variants.
//
// A Model is validated once at construction and never mutated; solvers
// borrow it read-only, so a single Model may serve concurrent solves.
type Model struct {
	n       int
	m       int
	t       []float64 // t[(s*m+a)*n+sp] = T(s,a,sp)
	r       []float64 // r[s*m+a]        = R(s,a)
	gamma   float64
	horizon int
	goal    []bool
	goals   []int
	probTol float64
}

// ModelOption customizes model construction.
type ModelOption func(*Model)

// WithHorizon bounds the effective planning horizon; h ≤ 0 means unbounded.
func WithHorizon(h int) ModelOption {
	return func(mo *Model) { mo.horizon = h }
}

// WithGoals declares absorbing goal states (indices into [0, n)).
// Goal states are pinned at value 0 by every solver; their transition
// rows may be empty (all-zero) or self-absorbing.
func WithGoals(states ...int) ModelOption {
	return func(mo *Model) { mo.goals = append(mo.goals[:0], states...) }
}

// WithProbTolerance overrides the row-sum tolerance (default 1e-5).
func WithProbTolerance(tol float64) ModelOption {
	return func(mo *Model) { mo.probTol = tol }
}

// NewModel validates and constructs an MDP model.
//
// Structural invariants enforced here (violations yield a ModelError
// wrapping ErrInvalidModel; no partial model is retained):
//   - numStates ≥ 1, numActions ≥ 1;
//   - len(T) == n·m·n, len(R) == n·m;
//   - gamma ∈ [0, 1] (1 is allowed for shortest-path models);
//   - every T(s,a,·) entry is non-negative and finite;
//   - every T(s,a,·) row sums to 1 within tolerance — except rows of
//     declared goal states, which may instead be all-zero (terminal);
//   - every declared goal index lies in [0, n).
//
// T and R are copied; the caller's slices remain untouched.
//
// Complexity: O(n²·m) validation time, O(n²·m) memory for the copy.
func NewModel(numStates, numActions int, T, R []float64, gamma float64, opts ...ModelOption) (*Model, error) {
	if numStates < 1 {
		return nil, ModelError{Field: "n", State: -1, Action: -1, Detail: "need at least one state"}
	}
	if numActions < 1 {
		return nil, ModelError{Field: "m", State: -1, Action: -1, Detail: "need at least one action"}
	}
	if len(T) != numStates*numActions*numStates {
		return nil, ModelError{Field: "T", State: -1, Action: -1, Detail: "length must be n*m*n"}
	}
	if len(R) != numStates*numActions {
		return nil, ModelError{Field: "R", State: -1, Action: -1, Detail: "length must be n*m"}
	}
	if gamma < 0 || gamma > 1 || math.IsNaN(gamma) {
		return nil, ModelError{Field: "gamma", State: -1, Action: -1, Detail: "discount must lie in [0, 1]"}
	}

	mo := &Model{
		n:       numStates,
		m:       numActions,
		gamma:   gamma,
		probTol: defaultProbTolerance,
	}
	for _, opt := range opts {
		opt(mo)
	}

	mo.goal = make([]bool, numStates)
	for _, g := range mo.goals {
		if g < 0 || g >= numStates {
			return nil, ModelError{Field: "goal", State: g, Action: -1, Detail: "goal index out of range"}
		}
		mo.goal[g] = true
	}

	if err := validateKernelRows(T, numStates, numActions, mo.goal, mo.probTol); err != nil {
		return nil, err
	}
	for i, v := range R {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ModelError{Field: "R", State: i / numActions, Action: i % numActions, Detail: "reward must be finite"}
		}
	}

	mo.t = append([]float64(nil), T...)
	mo.r = append([]float64(nil), R...)

	return mo, nil
}

// validateKernelRows checks non-negativity and the row-sum invariant of a
// dense n×m×n transition tensor. Rows of goal states may be all-zero.
func validateKernelRows(T []float64, n, m int, goal []bool, tol float64) error {
	for s := 0; s < n; s++ {
		for a := 0; a < m; a++ {
			sum := 0.0
			base := (s*m + a) * n
			for sp := 0; sp < n; sp++ {
				p := T[base+sp]
				if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
					return ModelError{Field: "T", State: s, Action: a, Detail: "probability must be in [0, 1]"}
				}
				sum += p
			}
			if goal[s] && sum == 0 {
				continue // terminal row, successor set deliberately empty
			}
			if math.Abs(sum-1) > tol {
				return ModelError{Field: "T", State: s, Action: a, Detail: "row does not sum to 1"}
			}
		}
	}

	return nil
}

// NumStates returns n.
func (mo *Model) NumStates() int { return mo.n }

// NumActions returns m.
func (mo *Model) NumActions() int { return mo.m }

// Discount returns gamma.
func (mo *Model) Discount() float64 { return mo.gamma }

// Horizon returns the planning horizon; ≤ 0 means unbounded.
func (mo *Model) Horizon() int { return mo.horizon }

// IsGoal reports whether s is a declared absorbing goal state.
// States outside [0, n) are not goals.
func (mo *Model) IsGoal(s int) bool {
	return s >= 0 && s < mo.n && mo.goal[s]
}

// T returns the transition probability T(s,a,sp). Indices must be in range.
func (mo *Model) T(s, a, sp int) float64 { return mo.t[(s*mo.m+a)*mo.n+sp] }

// R returns the reward (or cost) R(s,a). Indices must be in range.
func (mo *Model) R(s, a int) float64 { return mo.r[s*mo.m+a] }

package pomdp

import "math"

// defaultProbTolerance bounds the deviation of a kernel row's sum from 1.
const defaultProbTolerance = 1e-5

// Model is an immutable POMDP instance: n states, m actions, z
// observations, dense transition kernel T (n×m×n), observation kernel O
// (m×n×z, indexed by action, successor state, observation), reward table
// R (n×m), discount in [0,1), and an optional horizon.
//
// Validated once at construction, never mutated; safe to share across
// concurrent solves.
type Model struct {
	n       int
	m       int
	z       int
	t       []float64 // t[(s*m+a)*n+sp]  = T(s,a,sp)
	o       []float64 // o[(a*n+sp)*z+ob] = O(a,sp,ob)
	r       []float64 // r[s*m+a]         = R(s,a)
	gamma   float64
	horizon int
	probTol float64
}

// ModelOption customizes model construction.
type ModelOption func(*Model)

// WithHorizon bounds the random-walk trajectory length used during
// belief expansion; h ≤ 0 means unbounded (a default is derived).
func WithHorizon(h int) ModelOption {
	return func(mo *Model) { mo.horizon = h }
}

// WithProbTolerance overrides the row-sum tolerance (default 1e-5).
func WithProbTolerance(tol float64) ModelOption {
	return func(mo *Model) { mo.probTol = tol }
}

// NewModel validates and constructs a POMDP model.
//
// Structural invariants (violations yield a ModelError wrapping
// ErrInvalidModel; no partial model is retained):
//   - numStates, numActions, numObservations ≥ 1;
//   - len(T) == n·m·n, len(O) == m·n·z, len(R) == n·m;
//   - gamma ∈ [0, 1) — see ErrUndiscounted for gamma == 1;
//   - every T(s,a,·) row and every O(a,s',·) row is non-negative, finite,
//     and sums to 1 within tolerance.
//
// All tensors are copied; the caller's slices remain untouched.
//
// Complexity: O(n²·m + n·m·z) validation time and memory for the copies.
func NewModel(numStates, numActions, numObservations int, T, O, R []float64, gamma float64, opts ...ModelOption) (*Model, error) {
	if numStates < 1 {
		return nil, ModelError{Field: "n", State: -1, Action: -1, Detail: "need at least one state"}
	}
	if numActions < 1 {
		return nil, ModelError{Field: "m", State: -1, Action: -1, Detail: "need at least one action"}
	}
	if numObservations < 1 {
		return nil, ModelError{Field: "z", State: -1, Action: -1, Detail: "need at least one observation"}
	}
	if len(T) != numStates*numActions*numStates {
		return nil, ModelError{Field: "T", State: -1, Action: -1, Detail: "length must be n*m*n"}
	}
	if len(O) != numActions*numStates*numObservations {
		return nil, ModelError{Field: "O", State: -1, Action: -1, Detail: "length must be m*n*z"}
	}
	if len(R) != numStates*numActions {
		return nil, ModelError{Field: "R", State: -1, Action: -1, Detail: "length must be n*m"}
	}
	if gamma == 1 {
		return nil, ErrUndiscounted
	}
	if gamma < 0 || gamma > 1 || math.IsNaN(gamma) {
		return nil, ModelError{Field: "gamma", State: -1, Action: -1, Detail: "discount must lie in [0, 1)"}
	}

	mo := &Model{
		n:       numStates,
		m:       numActions,
		z:       numObservations,
		gamma:   gamma,
		probTol: defaultProbTolerance,
	}
	for _, opt := range opts {
		opt(mo)
	}

	// Transition rows: T(s,a,·) must each be a distribution.
	for s := 0; s < mo.n; s++ {
		for a := 0; a < mo.m; a++ {
			if err := checkRow(T[(s*mo.m+a)*mo.n:], mo.n, "T", s, a, mo.probTol); err != nil {
				return nil, err
			}
		}
	}
	// Observation rows: O(a,s',·) must each be a distribution.
	for a := 0; a < mo.m; a++ {
		for sp := 0; sp < mo.n; sp++ {
			if err := checkRow(O[(a*mo.n+sp)*mo.z:], mo.z, "O", sp, a, mo.probTol); err != nil {
				return nil, err
			}
		}
	}
	for i, v := range R {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ModelError{Field: "R", State: i / numActions, Action: i % numActions, Detail: "reward must be finite"}
		}
	}

	mo.t = append([]float64(nil), T...)
	mo.o = append([]float64(nil), O...)
	mo.r = append([]float64(nil), R...)

	return mo, nil
}

// checkRow validates one probability row of length k.
func checkRow(row []float64, k int, field string, state, action int, tol float64) error {
	sum := 0.0
	for i := 0; i < k; i++ {
		p := row[i]
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return ModelError{Field: field, State: state, Action: action, Detail: "probability must be in [0, 1]"}
		}
		sum += p
	}
	if math.Abs(sum-1) > tol {
		return ModelError{Field: field, State: state, Action: action, Detail: "row does not sum to 1"}
	}

	return nil
}

// NumStates returns n.
func (mo *Model) NumStates() int { return mo.n }

// NumActions returns m.
func (mo *Model) NumActions() int { return mo.m }

// NumObservations returns z.
func (mo *Model) NumObservations() int { return mo.z }

// Discount returns gamma.
func (mo *Model) Discount() float64 { return mo.gamma }

// Horizon returns the expansion trajectory bound; ≤ 0 means unbounded.
func (mo *Model) Horizon() int { return mo.horizon }

// T returns the transition probability T(s,a,sp). Indices must be in range.
func (mo *Model) T(s, a, sp int) float64 { return mo.t[(s*mo.m+a)*mo.n+sp] }

// O returns the observation probability O(a,sp,ob). Indices must be in range.
func (mo *Model) O(a, sp, ob int) float64 { return mo.o[(a*mo.n+sp)*mo.z+ob] }

// R returns the reward R(s,a). Indices must be in range.
func (mo *Model) R(s, a int) float64 { return mo.r[s*mo.m+a] }

// minReward returns the smallest reward entry, used for the default
// lower-bound alpha-vector.
func (mo *Model) minReward() float64 {
	minR := mo.r[0]
	for _, v := range mo.r[1:] {
		if v < minR {
			minR = v
		}
	}

	return minR
}

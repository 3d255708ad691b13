package pomdp

import "math"

// beliefSumTolerance bounds the deviation of a belief's sum from 1.
const beliefSumTolerance = 1e-6

// BeliefSet is an ordered, monotonically growing sequence of belief
// points over n states. Indices are stable once assigned: expansion only
// appends, never removes or reorders, so later backups may reference
// beliefs by index across calls.
type BeliefSet struct {
	n      int
	points [][]float64
}

// NewBeliefSet constructs a belief set over numStates states seeded with
// the given initial beliefs (usually one: the problem's initial belief).
//
// Every belief must have length numStates (ErrDimensionMismatch), no
// negative entries, and sum to 1 within 1e-6 (ErrInvalidBelief). At
// least one initial belief is required (ErrEmptyBeliefSet). Beliefs are
// copied.
func NewBeliefSet(numStates int, initial ...[]float64) (*BeliefSet, error) {
	if numStates < 1 {
		return nil, ErrDimensionMismatch
	}
	if len(initial) == 0 {
		return nil, ErrEmptyBeliefSet
	}

	bs := &BeliefSet{n: numStates, points: make([][]float64, 0, len(initial))}
	for _, b := range initial {
		if err := validateBelief(b, numStates); err != nil {
			return nil, err
		}
		bs.points = append(bs.points, append([]float64(nil), b...))
	}

	return bs, nil
}

// Len returns the number of beliefs in the set.
func (bs *BeliefSet) Len() int { return len(bs.points) }

// NumStates returns the dimensionality of every belief in the set.
func (bs *BeliefSet) NumStates() int { return bs.n }

// At returns a copy of the belief at index i. Panics on out-of-range i,
// matching slice semantics.
func (bs *BeliefSet) At(i int) []float64 {
	return append([]float64(nil), bs.points[i]...)
}

// point returns the internal belief at index i without copying.
// Callers inside the package must treat it as read-only.
func (bs *BeliefSet) point(i int) []float64 { return bs.points[i] }

// Add validates b and appends it unless it duplicates an existing belief
// within dupTol (max-norm; 0 rejects exact matches only). It returns the
// belief's index and whether it was newly added.
func (bs *BeliefSet) Add(b []float64, dupTol float64) (int, bool, error) {
	if err := validateBelief(b, bs.n); err != nil {
		return 0, false, err
	}
	for i, p := range bs.points {
		if maxNormWithin(p, b, dupTol) {
			return i, false, nil
		}
	}
	bs.points = append(bs.points, append([]float64(nil), b...))

	return len(bs.points) - 1, true, nil
}

// validateBelief checks dimensionality, non-negativity, and the unit sum.
func validateBelief(b []float64, n int) error {
	if len(b) != n {
		return ErrDimensionMismatch
	}
	sum := 0.0
	for _, p := range b {
		if p < 0 || math.IsNaN(p) {
			return ErrInvalidBelief
		}
		sum += p
	}
	if math.Abs(sum-1) > beliefSumTolerance {
		return ErrInvalidBelief
	}

	return nil
}

// maxNormWithin reports whether max_i |a[i]-b[i]| ≤ tol.
func maxNormWithin(a, b []float64, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}

	return true
}

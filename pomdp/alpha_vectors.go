package pomdp

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// AlphaVectorSet is the value artifact of a point-based solve: a set of
// alpha-vectors with one greedy action per vector. The induced value
// function is the upper envelope V(b) = max_i b·α_i, and the induced
// policy acts with the action of the maximizing vector.
//
// The set is immutable after Solve; queries are safe for concurrent use.
type AlphaVectorSet struct {
	n, m int

	// Gamma holds one alpha-vector per row (NumVectors × NumStates).
	Gamma *mat.Dense
	// Pi holds the greedy action of each row of Gamma.
	Pi []int
	// Converged reports whether the sweep residual fell below Epsilon
	// within the iteration cap.
	Converged bool
}

// NumVectors returns the number of alpha-vectors in the set.
func (vs *AlphaVectorSet) NumVectors() int {
	r, _ := vs.Gamma.Dims()

	return r
}

// NumStates returns the dimensionality of every vector in the set.
func (vs *AlphaVectorSet) NumStates() int { return vs.n }

// NumActions returns the action count of the solved model.
func (vs *AlphaVectorSet) NumActions() int { return vs.m }

// Alpha returns a copy of the i-th alpha-vector.
func (vs *AlphaVectorSet) Alpha(i int) []float64 {
	return append([]float64(nil), vs.Gamma.RawRowView(i)...)
}

// ValueAndAction evaluates the upper envelope at belief b, returning
// max_i b·α_i and the greedy action of the maximizing vector. Ties break
// toward the lowest vector index, so repeated queries agree.
//
// It returns ErrDimensionMismatch when len(b) differs from the state
// count and ErrInvalidBelief when b is not a distribution.
func (vs *AlphaVectorSet) ValueAndAction(b []float64) (float64, int, error) {
	if err := validateBelief(b, vs.n); err != nil {
		return 0, 0, err
	}

	numVectors := vs.NumVectors()
	bestValue := floats.Dot(b, vs.Gamma.RawRowView(0))
	bestIdx := 0
	for i := 1; i < numVectors; i++ {
		if v := floats.Dot(b, vs.Gamma.RawRowView(i)); v > bestValue {
			bestValue, bestIdx = v, i
		}
	}

	return bestValue, vs.Pi[bestIdx], nil
}

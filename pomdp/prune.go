package pomdp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// pruneGamma bounds the vector set between sweeps according to mode.
// Rows of gamma are alpha-vectors, pi holds their greedy actions. The
// returned set preserves row order among kept vectors and always retains
// at least one vector.
func pruneGamma(gamma *mat.Dense, pi []int, mode PruneMode, tol float64) (*mat.Dense, []int) {
	if mode == PruneNone {
		return gamma, pi
	}

	numVectors, n := gamma.Dims()
	keep := make([]int, 0, numVectors)

	for i := 0; i < numVectors; i++ {
		row := gamma.RawRowView(i)

		redundant := false
		for _, j := range keep {
			if vectorsEqual(gamma.RawRowView(j), row, tol) {
				redundant = true
				break
			}
		}
		if !redundant && mode == PruneDominated {
			// Pointwise dominance against every other vector; equal pairs
			// were already caught above, so survivors of the duplicate
			// check cannot eliminate each other symmetrically.
			for j := 0; j < numVectors; j++ {
				if j != i && dominates(gamma.RawRowView(j), row, tol) {
					redundant = true
					break
				}
			}
		}
		if !redundant {
			keep = append(keep, i)
		}
	}

	if len(keep) == 0 {
		keep = append(keep, 0)
	}
	if len(keep) == numVectors {
		return gamma, pi
	}

	pruned := mat.NewDense(len(keep), n, nil)
	prunedPi := make([]int, len(keep))
	for k, i := range keep {
		pruned.SetRow(k, gamma.RawRowView(i))
		prunedPi[k] = pi[i]
	}

	return pruned, prunedPi
}

// vectorsEqual reports max-norm equality within tol.
func vectorsEqual(a, b []float64, tol float64) bool {
	for s := range a {
		if math.Abs(a[s]-b[s]) > tol {
			return false
		}
	}

	return true
}

// dominates reports whether a is pointwise ≥ b − tol with strict
// improvement somewhere, i.e. b never beats a on any corner of the
// belief simplex.
func dominates(a, b []float64, tol float64) bool {
	strict := false
	for s := range a {
		if a[s] < b[s]-tol {
			return false
		}
		if a[s] > b[s]+tol {
			strict = true
		}
	}

	return strict
}

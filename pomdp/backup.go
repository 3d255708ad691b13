package pomdp

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// backupBelief performs one point-based Bellman backup at belief b against
// the previous vector set gamma, writing the backed-up vector into out
// (length n) and returning its greedy action and value at b.
//
// For each action a and observation o the best prior vector is the argmax
// over gamma rows i of Σ_s b(s) Σ_s' T(s,a,s') O(a,s',o) α_i(s'). Folding
// the winners back through the dynamics gives
//
//	α_a(s) = R(s,a) + γ Σ_o Σ_s' T(s,a,s') O(a,s',o) α_{i*(a,o)}(s')
//
// and the backup keeps the α_a maximizing b·α_a. Ties break toward the
// lowest action index so repeated solves stay deterministic.
func backupBelief(m *Model, gamma *mat.Dense, b []float64, out, scratch []float64) (int, float64) {
	n, z := m.n, m.z
	numVectors, _ := gamma.Dims()

	bestAction := 0
	bestValue := 0.0

	for a := 0; a < m.m; a++ {
		// Accumulate α_a into scratch, starting from the reward column.
		for s := 0; s < n; s++ {
			scratch[s] = m.r[s*m.m+a]
		}

		for o := 0; o < z; o++ {
			// Best prior vector for (a, o) under b.
			bestI := 0
			bestDot := 0.0
			for i := 0; i < numVectors; i++ {
				alpha := gamma.RawRowView(i)
				dot := 0.0
				for s := 0; s < n; s++ {
					if b[s] == 0 {
						continue
					}
					tRow := m.t[(s*m.m+a)*n:]
					acc := 0.0
					for sp := 0; sp < n; sp++ {
						acc += tRow[sp] * m.o[(a*n+sp)*z+o] * alpha[sp]
					}
					dot += b[s] * acc
				}
				if i == 0 || dot > bestDot {
					bestI, bestDot = i, dot
				}
			}

			// Fold the winner through the dynamics onto α_a.
			alpha := gamma.RawRowView(bestI)
			for s := 0; s < n; s++ {
				tRow := m.t[(s*m.m+a)*n:]
				acc := 0.0
				for sp := 0; sp < n; sp++ {
					acc += tRow[sp] * m.o[(a*n+sp)*z+o] * alpha[sp]
				}
				scratch[s] += m.gamma * acc
			}
		}

		value := floats.Dot(b, scratch[:n])
		if a == 0 || value > bestValue {
			bestAction, bestValue = a, value
			copy(out, scratch[:n])
		}
	}

	return bestAction, bestValue
}

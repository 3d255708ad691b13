// Package sweep executes per-index backup kernels either sequentially or
// data-parallel, under one numerical contract.
//
// 🚀 What is sweep?
//
//	Dynamic-programming solvers proceed in sweeps: one backup per state
//	(MDP) or per belief (POMDP), where every backup of sweep k+1 reads
//	only the complete snapshot produced by sweep k (Jacobi iteration).
//	Because each index writes a distinct output slot, the sweep is a
//	pure map over [0, n) and may run in any order — or all at once.
//
// ✨ Key guarantees:
//   - Run returns only after every index has completed (full barrier).
//   - Parallel and Sequential modes produce identical results, bit for
//     bit, as long as fn(i) writes only slot i and reads only the
//     previous sweep's buffers.
//   - No goroutines outlive a call; no hidden synchronization is needed
//     by callers between sweeps.
//
// ⚙️ Usage:
//
//	opts := sweep.DefaultOptions()
//	opts.Mode = sweep.Parallel
//
//	err := sweep.Run(numStates, func(s int) {
//	  next[s] = backup(prev, s) // reads prev, writes only next[s]
//	}, opts)
//
// Performance:
//
//   - Sequential: zero overhead beyond the loop itself.
//   - Parallel:   indices are split into at most Workers contiguous
//     blocks dispatched through an errgroup; overhead is O(Workers).
//
// See mdp and pomdp for the solvers built on this contract.
package sweep

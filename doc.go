// Package markovkit is your in-memory toolbox for planning under
// uncertainty — fully observable and partially observable Markov
// decision processes, solved with one consistent API.
//
// 🚀 What is markovkit?
//
//	A deterministic, test-first solver library that brings together:
//		• Dense models: validated MDP and POMDP instances with flat tensors
//		• Value Iteration: synchronous Jacobi sweeps over every state
//		• LAO*: heuristic-guided partial expansion for shortest-path goals
//		• RTDP: labeled trial-based backups along greedy trajectories
//		• Point-based POMDP solving: alpha-vector backups over belief sets
//		• Belief expansion: seeded random walks through the model dynamics
//		• Dual execution: every sweep runs sequentially or in parallel
//
// ✨ Why choose markovkit?
//
//   - Deterministic by default – fixed seeds, stable tie-breaking,
//     bit-identical results across execution modes
//   - Rock-solid validation – models are checked once at construction,
//     solvers trust them afterward
//   - Explicit contracts – sentinel errors, convergence as a flag,
//     immutable query artifacts safe for concurrent reads
//
// Under the hood, everything is organized under four subpackages:
//
//	sweep/     — the execution backend: barrier-synchronized index sweeps
//	mdp/       — models, Value Iteration, LAO*, RTDP, and Policy queries
//	pomdp/     — models, belief sets, expansion, and alpha-vector solving
//	gridworld/ — navigation model builders for benchmarks and tests
//
// Quick ASCII example:
//
//	    . . . G
//	    . # . .
//	    S . . .
//
//	a 4×3 navigation task: reach G from S around the wall in 5 moves.
//
// Dive into the package docs for the full solver contracts, convergence
// semantics, and worked examples.
//
//	go get github.com/markovkit/markovkit
package markovkit

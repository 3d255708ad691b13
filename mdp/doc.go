// Package mdp solves fully-observable Markov Decision Processes: given an
// immutable Model (states, actions, transition and reward tensors, discount
// or horizon), it computes an optimal value function and action policy.
//
// 🚀 What is an MDP?
//
//	A sequential decision problem under uncertainty: an agent in state s
//	chooses action a, receives reward R(s,a), and moves to s' with
//	probability T(s,a,s'). A solution is a policy pi mapping each state
//	to the action maximizing expected (discounted) reward — or, for
//	stochastic shortest-path (SSP) models, minimizing expected cost to a
//	goal state.
//
// ✨ Algorithms offered:
//
//   - Value Iteration — synchronous Bellman sweeps over all states.
//     Exact, deterministic; terminates on residual < ε or iteration cap.
//     Time: O(iter·n²·m), Memory: O(n) (double-buffered values).
//
//   - LAO* — heuristic-guided search for SSP models. Expands only states
//     reachable under the current best partial policy, guided by an
//     admissible (never-overestimating) cost heuristic the caller must
//     supply. Produces a sparse policy over the expanded envelope.
//
//   - RTDP — trial-based asynchronous backups along greedy trajectories
//     from a start state, with solved-state labeling to stop revisiting
//     converged regions. Deterministic given Options.Seed.
//
// ⚙️ Usage:
//
//	model, err := mdp.NewModel(n, m, T, R, 0.95)
//	if err != nil { … }
//
//	opts := mdp.DefaultOptions()
//	opts.Algorithm = mdp.ValueIteration
//	opts.Mode = sweep.Parallel
//
//	policy, err := mdp.Solve(model, opts)
//	if err != nil { … }
//	if !policy.Converged {
//	  // iteration budget exhausted: best-effort policy, caller decides.
//	}
//	v, a, err := policy.ValueAndAction(s)
//
// Convergence failure (budget exhausted before the residual threshold) is
// deliberately not an error: the best policy found so far is returned with
// Converged=false so the caller can decide whether to accept it.
//
// All solvers borrow the Model read-only; a returned Policy owns its
// buffers and is safe for concurrent queries.
package mdp

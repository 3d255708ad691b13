// Package pomdp solves Partially-Observable Markov Decision Processes by
// point-based backup: it grows a finite set of reachable belief points,
// then iterates Bellman backups over that set to produce a pruned set of
// alpha-vectors (Gamma) with one greedy action per vector — a policy
// queryable at any belief.
//
// 🚀 What is a POMDP?
//
//	An MDP whose state is hidden: after each action a the agent sees an
//	observation o with probability O(a,s',o) and maintains a belief — a
//	probability distribution over states, updated by Bayes' rule. The
//	optimal value function is piecewise-linear convex in the belief and
//	is lower-bounded by a finite set of alpha-vectors: V(b) ≈ max_i
//	dot(Gamma[i], b).
//
// ✨ Pipeline:
//
//	model, _ := pomdp.NewModel(n, m, z, T, O, R, 0.95)
//	bs, _ := pomdp.NewBeliefSet(n, initialBelief)
//
//	// 1. Grow reachable beliefs by random-walk simulation.
//	err := pomdp.Expand(model, bs, pomdp.DefaultExpandOptions())
//
//	// 2. Point-based backup until the residual settles.
//	policy, err := pomdp.Solve(model, bs, pomdp.DefaultOptions())
//
//	// 3. Query anywhere on the simplex.
//	v, a, err := policy.ValueAndAction(belief)
//
// Backups are double-buffered (Jacobi): each sweep produces one candidate
// alpha-vector per belief from the previous sweep's complete Gamma, one
// execution unit per belief in sweep.Parallel mode, with identical
// numerics in both modes. Dominated or duplicate vectors may be pruned
// between sweeps (Options.Prune).
//
// Convergence failure (iteration cap before residual < ε) is not an
// error: the best AlphaVectorSet so far is returned with Converged=false.
//
// Belief expansion is deterministic given its seed and is sequential by
// construction — each new belief extends a trajectory of earlier ones.
package pomdp

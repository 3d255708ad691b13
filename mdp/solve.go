// Package mdp - unified dispatcher for MDP solvers.
//
// Solve is the canonical entry point: it validates the model/options
// combination once, then routes to the requested algorithm.
//
// Design principles:
//   - Deterministic: seed routing to RTDP; no time-based randomness.
//   - Strict sentinels: only errors from types.go; validation happens at
//     entry and is never retried.
//   - Convergence failure is a flag on the returned Policy, not an error.
package mdp

// Solve computes a Policy for the model with the selected algorithm and
// execution mode.
//
// Contracts:
//   - model must be non-nil (ErrNilModel).
//   - opts.Epsilon > 0 (ErrNonPositiveEpsilon), opts.IterationCap ≥ 0
//     (ErrNegativeIterationCap).
//   - LAOStar requires opts.Heuristic of length n (ErrNilHeuristic /
//     ErrHeuristicLength) and a valid opts.Start (ErrStartOutOfRange).
//   - RTDP requires a valid opts.Start; opts.Heuristic is optional but
//     must have length n when present.
//
// The returned Policy is dense for ValueIteration and sparse for LAOStar
// and RTDP. An exhausted iteration/trial budget yields Converged=false
// with the best policy found — never an error and never a nil Policy.
func Solve(model *Model, opts Options) (*Policy, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if opts.Epsilon <= 0 {
		return nil, ErrNonPositiveEpsilon
	}
	if opts.IterationCap < 0 {
		return nil, ErrNegativeIterationCap
	}

	switch opts.Algorithm {
	case ValueIteration:
		return solveVI(model, opts)

	case LAOStar:
		if opts.Heuristic == nil {
			return nil, ErrNilHeuristic
		}
		if len(opts.Heuristic) != model.n {
			return nil, ErrHeuristicLength
		}
		if opts.Start < 0 || opts.Start >= model.n {
			return nil, ErrStartOutOfRange
		}

		return solveLAOStar(model, opts)

	case RTDP:
		if opts.Heuristic != nil && len(opts.Heuristic) != model.n {
			return nil, ErrHeuristicLength
		}
		if opts.Start < 0 || opts.Start >= model.n {
			return nil, ErrStartOutOfRange
		}

		return solveRTDP(model, opts)

	default:
		return nil, ErrUnsupportedAlgorithm
	}
}

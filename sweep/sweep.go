package sweep

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Run executes fn(i) for every i in [0, n) under opts.Mode and returns
// after all indices have completed (full barrier).
//
// Contract:
//   - fn(i) must write only output slot i and must not read slots written
//     by other indices of the same sweep; under that contract Parallel and
//     Sequential produce identical results.
//   - fn must not panic; panics are not recovered.
//
// Errors:
//   - ErrNegativeCount — n < 0.
//   - ErrNilKernel     — fn == nil.
//   - ErrUnknownMode   — opts.Mode outside the known set.
//
// Complexity: O(n·cost(fn)) work in both modes; Parallel adds O(Workers)
// scheduling overhead.
func Run(n int, fn func(i int), opts Options) error {
	if n < 0 {
		return ErrNegativeCount
	}
	if fn == nil {
		return ErrNilKernel
	}

	switch opts.Mode {
	case Sequential:
		for i := 0; i < n; i++ {
			fn(i)
		}

		return nil

	case Parallel:
		return runParallel(n, func(i int) error {
			fn(i)

			return nil
		}, opts.Workers)

	default:
		return ErrUnknownMode
	}
}

// RunErr is Run for fallible kernels: the first non-nil error aborts the
// dispatch of further blocks and is returned after the barrier. Output
// slots written before the failure are left as the kernel wrote them;
// callers must discard partial buffers on error.
func RunErr(n int, fn func(i int) error, opts Options) error {
	if n < 0 {
		return ErrNegativeCount
	}
	if fn == nil {
		return ErrNilKernel
	}

	switch opts.Mode {
	case Sequential:
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}

		return nil

	case Parallel:
		return runParallel(n, fn, opts.Workers)

	default:
		return ErrUnknownMode
	}
}

// runParallel splits [0, n) into at most `workers` contiguous blocks and
// dispatches each block on its own goroutine. Blocks iterate in ascending
// index order, so the per-slot arithmetic matches the sequential loop
// exactly; only the interleaving between slots differs.
func runParallel(n int, fn func(i int) error, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if n == 0 {
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)

	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := fn(i); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}

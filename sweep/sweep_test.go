package sweep_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/markovkit/markovkit/sweep"
)

// TestRun_NegativeCount verifies the ErrNegativeCount sentinel.
func TestRun_NegativeCount(t *testing.T) {
	err := sweep.Run(-1, func(int) {}, sweep.DefaultOptions())
	require.ErrorIs(t, err, sweep.ErrNegativeCount)
}

// TestRun_NilKernel verifies the ErrNilKernel sentinel.
func TestRun_NilKernel(t *testing.T) {
	err := sweep.Run(4, nil, sweep.DefaultOptions())
	require.ErrorIs(t, err, sweep.ErrNilKernel)
}

// TestRun_UnknownMode verifies the ErrUnknownMode sentinel.
func TestRun_UnknownMode(t *testing.T) {
	opts := sweep.DefaultOptions()
	opts.Mode = sweep.Mode(99)
	err := sweep.Run(4, func(int) {}, opts)
	require.ErrorIs(t, err, sweep.ErrUnknownMode)
}

// TestRun_ZeroCount ensures an empty sweep is a no-op in both modes.
func TestRun_ZeroCount(t *testing.T) {
	for _, mode := range []sweep.Mode{sweep.Sequential, sweep.Parallel} {
		opts := sweep.DefaultOptions()
		opts.Mode = mode
		calls := 0
		require.NoError(t, sweep.Run(0, func(int) { calls++ }, opts))
		require.Zero(t, calls, "mode %v must not invoke the kernel", mode)
	}
}

// TestRun_SequentialOrder verifies the fixed ascending order of the
// sequential loop.
func TestRun_SequentialOrder(t *testing.T) {
	const n = 64
	var order []int
	require.NoError(t, sweep.Run(n, func(i int) {
		order = append(order, i)
	}, sweep.DefaultOptions()))

	require.Len(t, order, n)
	for i := 0; i < n; i++ {
		require.Equal(t, i, order[i])
	}
}

// TestRun_ParallelBarrier ensures every index has completed before Run
// returns: each kernel writes its own slot, and all slots must be set.
func TestRun_ParallelBarrier(t *testing.T) {
	const n = 1000
	opts := sweep.DefaultOptions()
	opts.Mode = sweep.Parallel
	opts.Workers = 8

	out := make([]int64, n)
	require.NoError(t, sweep.Run(n, func(i int) {
		out[i] = int64(i) * 3
	}, opts))

	for i := 0; i < n; i++ {
		require.Equal(t, int64(i)*3, out[i])
	}
}

// TestRun_ParallelMatchesSequential checks the numerical contract: a pure
// per-slot kernel yields identical buffers in both modes.
func TestRun_ParallelMatchesSequential(t *testing.T) {
	const n = 512
	prev := make([]float64, n)
	for i := range prev {
		prev[i] = float64(i%17) / 3.0
	}
	kernel := func(dst []float64) func(int) {
		return func(i int) {
			// A mildly non-trivial reduction with a fixed evaluation order.
			acc := 0.0
			for j := 0; j < 8; j++ {
				acc += prev[(i+j)%n] * 0.125
			}
			dst[i] = acc
		}
	}

	seqOut := make([]float64, n)
	parOut := make([]float64, n)

	seqOpts := sweep.DefaultOptions()
	require.NoError(t, sweep.Run(n, kernel(seqOut), seqOpts))

	parOpts := sweep.DefaultOptions()
	parOpts.Mode = sweep.Parallel
	require.NoError(t, sweep.Run(n, kernel(parOut), parOpts))

	require.Equal(t, seqOut, parOut)
}

// TestRun_WorkersFallback checks that non-positive Workers still executes
// every index in Parallel mode.
func TestRun_WorkersFallback(t *testing.T) {
	opts := sweep.Options{Mode: sweep.Parallel, Workers: -3}
	var count atomic.Int64
	require.NoError(t, sweep.Run(100, func(int) { count.Add(1) }, opts))
	require.Equal(t, int64(100), count.Load())
}

// TestRunErr_PropagatesFirstError verifies sequential short-circuit and
// parallel propagation of a kernel error.
func TestRunErr_PropagatesFirstError(t *testing.T) {
	boom := errors.New("boom")

	// Sequential: stops at the failing index.
	calls := 0
	err := sweep.RunErr(10, func(i int) error {
		calls++
		if i == 3 {
			return boom
		}

		return nil
	}, sweep.DefaultOptions())
	require.ErrorIs(t, err, boom)
	require.Equal(t, 4, calls)

	// Parallel: the error must surface after the barrier.
	opts := sweep.DefaultOptions()
	opts.Mode = sweep.Parallel
	err = sweep.RunErr(10, func(i int) error {
		if i == 7 {
			return boom
		}

		return nil
	}, opts)
	require.ErrorIs(t, err, boom)
}

// TestMode_String pins the mode names used in logs and messages.
func TestMode_String(t *testing.T) {
	require.Equal(t, "sequential", sweep.Sequential.String())
	require.Equal(t, "parallel", sweep.Parallel.String())
	require.Equal(t, "unknown", sweep.Mode(42).String())
}

package sweep_test

import (
	"testing"

	"github.com/markovkit/markovkit/sweep"
)

// benchKernel is a small fixed-cost reduction, standing in for one
// Bellman backup.
func benchKernel(prev, next []float64) func(int) {
	n := len(prev)

	return func(i int) {
		acc := 0.0
		for j := 0; j < 32; j++ {
			acc += prev[(i+j)%n] * 0.03125
		}
		next[i] = acc
	}
}

// BenchmarkRun_Sequential measures the plain loop on 100k indices.
func BenchmarkRun_Sequential(b *testing.B) {
	const n = 100_000
	prev := make([]float64, n)
	next := make([]float64, n)
	opts := sweep.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sweep.Run(n, benchKernel(prev, next), opts)
	}
}

// BenchmarkRun_Parallel measures the errgroup dispatch on 100k indices.
func BenchmarkRun_Parallel(b *testing.B) {
	const n = 100_000
	prev := make([]float64, n)
	next := make([]float64, n)
	opts := sweep.DefaultOptions()
	opts.Mode = sweep.Parallel

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sweep.Run(n, benchKernel(prev, next), opts)
	}
}

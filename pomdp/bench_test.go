package pomdp_test

import (
	"testing"

	"github.com/markovkit/markovkit/pomdp"
	"github.com/markovkit/markovkit/sweep"
)

func benchmarkSolve(b *testing.B, mode sweep.Mode) {
	m := newTigerModel(b)
	bs := tigerBeliefSet(b, 3)

	eopts := pomdp.DefaultExpandOptions()
	eopts.NumDesired = 60
	if err := pomdp.Expand(m, bs, eopts); err != nil {
		b.Fatal(err)
	}

	opts := pomdp.DefaultOptions()
	opts.Mode = mode
	opts.Epsilon = 1e-3

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pomdp.Solve(m, bs, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Sequential(b *testing.B) { benchmarkSolve(b, sweep.Sequential) }
func BenchmarkSolve_Parallel(b *testing.B)   { benchmarkSolve(b, sweep.Parallel) }

func BenchmarkExpand(b *testing.B) {
	m := newTigerModel(b)
	opts := pomdp.DefaultExpandOptions()
	opts.NumDesired = 100

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bs := uniformBeliefSet(b, 2)
		if err := pomdp.Expand(m, bs, opts); err != nil {
			b.Fatal(err)
		}
	}
}

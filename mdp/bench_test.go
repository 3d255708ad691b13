package mdp_test

import (
	"testing"

	"github.com/markovkit/markovkit/gridworld"
	"github.com/markovkit/markovkit/mdp"
	"github.com/markovkit/markovkit/sweep"
)

// benchGrid builds a w x h open grid with a single goal in the corner.
func benchGrid(w, h int) [][]int {
	grid := make([][]int, h)
	for y := range grid {
		grid[y] = make([]int, w)
	}
	grid[0][w-1] = 1
	return grid
}

func benchmarkVI(b *testing.B, mode sweep.Mode) {
	m, err := gridworld.MDP(benchGrid(16, 16), gridworld.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	opts := mdp.DefaultOptions()
	opts.Mode = mode
	opts.Epsilon = 1e-4

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mdp.Solve(m, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVI_Sequential(b *testing.B) { benchmarkVI(b, sweep.Sequential) }
func BenchmarkVI_Parallel(b *testing.B)   { benchmarkVI(b, sweep.Parallel) }

func BenchmarkLAOStar(b *testing.B) {
	grid := benchGrid(16, 16)
	m, err := gridworld.SSP(grid, gridworld.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	h, err := gridworld.ManhattanHeuristic(grid, gridworld.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	opts := mdp.DefaultOptions()
	opts.Algorithm = mdp.LAOStar
	opts.Epsilon = 1e-4
	opts.Heuristic = h
	opts.Start = gridworld.StateIndex(16, 0, 15)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mdp.Solve(m, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRTDP(b *testing.B) {
	grid := benchGrid(16, 16)
	m, err := gridworld.SSP(grid, gridworld.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	opts := mdp.DefaultOptions()
	opts.Algorithm = mdp.RTDP
	opts.Epsilon = 1e-4
	opts.Start = gridworld.StateIndex(16, 0, 15)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mdp.Solve(m, opts); err != nil {
			b.Fatal(err)
		}
	}
}

package mdp_test

import (
	"fmt"

	"github.com/markovkit/markovkit/gridworld"
	"github.com/markovkit/markovkit/mdp"
)

// ExampleSolve solves a small shortest-path gridworld with LAO* and
// queries the resulting policy at the start state.
func ExampleSolve() {
	grid := [][]int{
		{0, 0, 0, 1},
		{0, -1, 0, 0},
		{0, 0, 0, 0},
	}

	model, err := gridworld.SSP(grid, gridworld.DefaultOptions())
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	heuristic, err := gridworld.ManhattanHeuristic(grid, gridworld.DefaultOptions())
	if err != nil {
		fmt.Println("heuristic:", err)
		return
	}

	opts := mdp.DefaultOptions()
	opts.Algorithm = mdp.LAOStar
	opts.Heuristic = heuristic
	opts.Start = gridworld.StateIndex(4, 0, 2)

	policy, err := mdp.Solve(model, opts)
	if err != nil {
		fmt.Println("solve:", err)
		return
	}

	cost, action, err := policy.ValueAndAction(opts.Start)
	if err != nil {
		fmt.Println("query:", err)
		return
	}
	fmt.Printf("algorithm=%s cost=%.0f action=%d converged=%t\n",
		opts.Algorithm, cost, action, policy.Converged)

	// Output:
	// algorithm=lao* cost=5 action=1 converged=true
}

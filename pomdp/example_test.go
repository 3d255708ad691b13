package pomdp_test

import (
	"fmt"

	"github.com/markovkit/markovkit/pomdp"
)

// ExampleSolve builds the two-door diagnosis benchmark, grows a belief
// set by random walks, and queries the solved value function at the
// uniform belief.
func ExampleSolve() {
	// Hidden danger behind one of two doors; listening is 85% accurate.
	T := []float64{
		1, 0, 0.5, 0.5, 0.5, 0.5,
		0, 1, 0.5, 0.5, 0.5, 0.5,
	}
	O := []float64{
		0.85, 0.15, 0.15, 0.85,
		0.5, 0.5, 0.5, 0.5,
		0.5, 0.5, 0.5, 0.5,
	}
	R := []float64{
		-1, -100, 10,
		-1, 10, -100,
	}

	model, err := pomdp.NewModel(2, 3, 2, T, O, R, 0.95)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	// Seed the uniform prior plus the posteriors of one and two
	// consistent observations; random walks fill in the rest.
	p1 := 0.85
	p2 := 0.85 * p1 / (0.85*p1 + 0.15*(1-p1))
	beliefs, err := pomdp.NewBeliefSet(2,
		[]float64{0.5, 0.5},
		[]float64{p1, 1 - p1}, []float64{1 - p1, p1},
		[]float64{p2, 1 - p2}, []float64{1 - p2, p2},
	)
	if err != nil {
		fmt.Println("beliefs:", err)
		return
	}
	expand := pomdp.DefaultExpandOptions()
	expand.NumDesired = 60
	if err := pomdp.Expand(model, beliefs, expand); err != nil {
		fmt.Println("expand:", err)
		return
	}

	vs, err := pomdp.Solve(model, beliefs, pomdp.DefaultOptions())
	if err != nil {
		fmt.Println("solve:", err)
		return
	}

	value, action, err := vs.ValueAndAction([]float64{0.5, 0.5})
	if err != nil {
		fmt.Println("query:", err)
		return
	}
	fmt.Printf("value=%.0f action=%d converged=%t\n", value, action, vs.Converged)

	// Output:
	// value=19 action=0 converged=true
}

package gridworld

import "github.com/markovkit/markovkit/mdp"

// MDP builds a reward-maximizing discounted navigation model:
// each move yields Options.StepReward, goal cells are absorbing with
// reward 0, and the agent completes its intended move with probability
// 1−Slip (staying put otherwise). Moves into walls or off the grid leave
// the agent in place with probability 1.
//
// Errors: ErrEmptyGrid, ErrNonRectangular, ErrSlipRange, plus any model
// invariant surfaced by mdp.NewModel.
//
// Complexity: O(W·H) build time for the goal scan, O((W·H)²) for the
// dense tensors.
func MDP(grid [][]int, opts Options) (*mdp.Model, error) {
	w, h, err := validateGrid(grid)
	if err != nil {
		return nil, err
	}
	if opts.Slip < 0 || opts.Slip >= 1 {
		return nil, ErrSlipRange
	}

	T, R, goals := buildTensors(grid, w, h, opts, opts.StepReward)

	return mdp.NewModel(w*h, NumActions, T, R, opts.Discount, mdp.WithGoals(goals...))
}

// SSP builds the cost-minimizing shortest-path variant: each move costs
// Options.StepCost, goal cells are absorbing at cost 0, discount is 1.
// At least one goal cell is required (ErrNoGoal) so LAO* and RTDP have a
// reachable target.
func SSP(grid [][]int, opts Options) (*mdp.Model, error) {
	w, h, err := validateGrid(grid)
	if err != nil {
		return nil, err
	}
	if opts.Slip < 0 || opts.Slip >= 1 {
		return nil, ErrSlipRange
	}

	T, R, goals := buildTensors(grid, w, h, opts, opts.StepCost)
	if len(goals) == 0 {
		return nil, ErrNoGoal
	}

	return mdp.NewModel(w*h, NumActions, T, R, 1, mdp.WithGoals(goals...))
}

// ManhattanHeuristic returns, per state, StepCost times the Manhattan
// distance to the nearest goal cell — an admissible cost-to-go lower
// bound for SSP builds (walls and slip only lengthen real paths).
// Goal and wall cells get 0.
func ManhattanHeuristic(grid [][]int, opts Options) ([]float64, error) {
	w, h, err := validateGrid(grid)
	if err != nil {
		return nil, err
	}

	var goals [][2]int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if grid[y][x] >= opts.GoalValue {
				goals = append(goals, [2]int{x, y})
			}
		}
	}
	if len(goals) == 0 {
		return nil, ErrNoGoal
	}

	hv := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if grid[y][x] < 0 {
				continue
			}
			best := -1
			for _, g := range goals {
				d := abs(g[0]-x) + abs(g[1]-y)
				if best < 0 || d < best {
					best = d
				}
			}
			hv[StateIndex(w, x, y)] = opts.StepCost * float64(best)
		}
	}

	return hv, nil
}

// validateGrid checks rectangularity and returns the grid dimensions.
func validateGrid(grid [][]int) (w, h int, err error) {
	h = len(grid)
	if h == 0 || len(grid[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	w = len(grid[0])
	for _, row := range grid {
		if len(row) != w {
			return 0, 0, ErrNonRectangular
		}
	}

	return w, h, nil
}

// buildTensors assembles the dense transition and reward tables shared
// by MDP and SSP builds; stepValue is the per-move reward or cost.
// Wall cells become absorbing self-loops so every row still sums to 1.
func buildTensors(grid [][]int, w, h int, opts Options, stepValue float64) (T, R []float64, goals []int) {
	n := w * h
	T = make([]float64, n*NumActions*n)
	R = make([]float64, n*NumActions)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s := StateIndex(w, x, y)
			isGoal := grid[y][x] >= opts.GoalValue
			isWall := grid[y][x] < 0
			if isGoal {
				goals = append(goals, s)
			}

			for a := 0; a < NumActions; a++ {
				base := (s*NumActions + a) * n
				if isGoal || isWall {
					T[base+s] = 1 // absorbing; reward stays 0
					continue
				}

				nx, ny := x+moveDelta[a][0], y+moveDelta[a][1]
				blocked := nx < 0 || nx >= w || ny < 0 || ny >= h || grid[ny][nx] < 0
				if blocked {
					T[base+s] = 1
				} else {
					dst := StateIndex(w, nx, ny)
					T[base+dst] += 1 - opts.Slip
					T[base+s] += opts.Slip
				}
				R[s*NumActions+a] = stepValue
			}
		}
	}

	return T, R, goals
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// Package gridworld defines core types, options, and sentinel errors
// for the gridworld subpackage of github.com/markovkit/markovkit.
package gridworld

import "errors"

// Sentinel errors for gridworld operations.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridworld: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridworld: all rows must have the same length")
	// ErrNoGoal indicates a shortest-path build over a grid without goal cells.
	ErrNoGoal = errors.New("gridworld: grid must contain at least one goal cell")
	// ErrSlipRange indicates a slip probability outside [0, 1).
	ErrSlipRange = errors.New("gridworld: slip probability must lie in [0, 1)")
)

// Movement actions, indexed as the models expose them.
const (
	Left = iota
	Up
	Right
	Down

	// NumActions is the action count of every gridworld model.
	NumActions
)

// moveDelta maps an action to its (dx, dy) step.
var moveDelta = [NumActions][2]int{
	Left:  {-1, 0},
	Up:    {0, -1},
	Right: {1, 0},
	Down:  {0, 1},
}

// Options contains tunable parameters for model construction.
type Options struct {
	// Slip is the probability of staying put instead of completing a move.
	Slip float64
	// StepReward is the per-move reward in discounted MDP builds.
	StepReward float64
	// StepCost is the per-move cost in shortest-path builds.
	StepCost float64
	// Discount is the MDP discount factor (SSP builds always use 1).
	Discount float64
	// GoalValue is the minimum cell value considered an absorbing goal.
	GoalValue int
}

// DefaultOptions returns an Options with default settings:
// deterministic moves, StepReward −1, StepCost 1, Discount 0.95,
// GoalValue 1 (values ≥ 1 are goals).
func DefaultOptions() Options {
	return Options{
		Slip:       0,
		StepReward: -1,
		StepCost:   1,
		Discount:   0.95,
		GoalValue:  1,
	}
}

// StateIndex returns the row-major state index of cell (x, y) on a grid
// of the given width.
func StateIndex(width, x, y int) int { return y*width + x }

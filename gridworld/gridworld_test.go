package gridworld_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/markovkit/markovkit/gridworld"
	"github.com/markovkit/markovkit/mdp"
)

// testGrid is a 3x2 layout with one wall and one goal:
//
//	. # G
//	. . .
var testGrid = [][]int{
	{0, -1, 1},
	{0, 0, 0},
}

// TestValidation covers the grid-shape sentinels shared by every build.
func TestValidation(t *testing.T) {
	opts := gridworld.DefaultOptions()

	_, err := gridworld.MDP(nil, opts)
	require.ErrorIs(t, err, gridworld.ErrEmptyGrid)

	_, err = gridworld.MDP([][]int{{}}, opts)
	require.ErrorIs(t, err, gridworld.ErrEmptyGrid)

	_, err = gridworld.MDP([][]int{{0, 0}, {0}}, opts)
	require.ErrorIs(t, err, gridworld.ErrNonRectangular)

	bad := opts
	bad.Slip = 1
	_, err = gridworld.MDP(testGrid, bad)
	require.ErrorIs(t, err, gridworld.ErrSlipRange)

	_, err = gridworld.SSP([][]int{{0, 0}}, opts)
	require.ErrorIs(t, err, gridworld.ErrNoGoal)

	_, err = gridworld.ManhattanHeuristic([][]int{{0, 0}}, opts)
	require.ErrorIs(t, err, gridworld.ErrNoGoal)
}

// TestMDP_Structure verifies the transition rows of a slippery build:
// every row sums to 1, goals and walls are absorbing, and blocked moves
// keep the agent in place.
func TestMDP_Structure(t *testing.T) {
	opts := gridworld.DefaultOptions()
	opts.Slip = 0.3
	m, err := gridworld.MDP(testGrid, opts)
	require.NoError(t, err)

	n := m.NumStates()
	require.Equal(t, 6, n)
	require.Equal(t, gridworld.NumActions, m.NumActions())

	for s := 0; s < n; s++ {
		for a := 0; a < m.NumActions(); a++ {
			sum := 0.0
			for sp := 0; sp < n; sp++ {
				p := m.T(s, a, sp)
				require.GreaterOrEqual(t, p, 0.0)
				sum += p
			}
			require.InDelta(t, 1.0, sum, 1e-12)
		}
	}

	goal := gridworld.StateIndex(3, 2, 0)
	wall := gridworld.StateIndex(3, 1, 0)
	require.True(t, m.IsGoal(goal))
	require.Equal(t, 1.0, m.T(goal, gridworld.Left, goal))
	require.Equal(t, 1.0, m.T(wall, gridworld.Right, wall))
	require.Zero(t, m.R(goal, gridworld.Left))

	// A free cell moving into the wall stays put with probability 1.
	belowWall := gridworld.StateIndex(3, 1, 1)
	require.Equal(t, 1.0, m.T(belowWall, gridworld.Up, belowWall))

	// An unblocked move splits mass between destination and origin.
	origin := gridworld.StateIndex(3, 0, 1)
	dest := gridworld.StateIndex(3, 1, 1)
	require.InDelta(t, 0.7, m.T(origin, gridworld.Right, dest), 1e-12)
	require.InDelta(t, 0.3, m.T(origin, gridworld.Right, origin), 1e-12)
	require.Equal(t, opts.StepReward, m.R(origin, gridworld.Right))
}

// TestSSP_CostSign verifies the shortest-path build flips to positive
// step costs under discount 1.
func TestSSP_CostSign(t *testing.T) {
	opts := gridworld.DefaultOptions()
	m, err := gridworld.SSP(testGrid, opts)
	require.NoError(t, err)

	require.Equal(t, 1.0, m.Discount())
	origin := gridworld.StateIndex(3, 0, 1)
	require.Equal(t, opts.StepCost, m.R(origin, gridworld.Right))
}

// TestManhattanHeuristic_Admissible verifies the heuristic never exceeds
// the true shortest-path cost computed by Value Iteration on the
// cost-minimizing model.
func TestManhattanHeuristic_Admissible(t *testing.T) {
	grid := [][]int{
		{0, 0, 0, 1},
		{0, -1, 0, 0},
		{0, 0, 0, 0},
	}
	opts := gridworld.DefaultOptions()

	h, err := gridworld.ManhattanHeuristic(grid, opts)
	require.NoError(t, err)
	require.Len(t, h, 12)

	// True costs via LAO* per free cell (deterministic moves).
	m, err := gridworld.SSP(grid, opts)
	require.NoError(t, err)
	for s := 0; s < m.NumStates(); s++ {
		if grid[s/4][s%4] < 0 || m.IsGoal(s) {
			continue
		}
		sopts := mdp.DefaultOptions()
		sopts.Algorithm = mdp.LAOStar
		sopts.Heuristic = h
		sopts.Start = s
		p, err := mdp.Solve(m, sopts)
		require.NoError(t, err)

		cost, _, err := p.ValueAndAction(s)
		require.NoError(t, err)
		require.LessOrEqual(t, h[s], cost+1e-9, "state %d", s)
	}

	// Goal and wall cells sit at 0.
	require.Zero(t, h[gridworld.StateIndex(4, 3, 0)])
	require.Zero(t, h[gridworld.StateIndex(4, 1, 1)])
}

// TestStateIndex pins the row-major layout.
func TestStateIndex(t *testing.T) {
	require.Equal(t, 0, gridworld.StateIndex(4, 0, 0))
	require.Equal(t, 3, gridworld.StateIndex(4, 3, 0))
	require.Equal(t, 8, gridworld.StateIndex(4, 0, 2))
}

// Package gridworld turns a rectangular 2D integer grid into planning
// models: discounted navigation MDPs and stochastic shortest-path (SSP)
// instances for the solvers in package mdp.
//
// 🚀 What is a gridworld?
//
//	The canonical benchmark for sequential decision-making: an agent on
//	a W×H grid moves Left/Up/Right/Down, possibly slipping, until it
//	reaches a goal cell. Cell values classify terrain:
//	  • value ≥ GoalValue — absorbing goal (reward 0 / cost 0)
//	  • value < 0         — wall (cannot be entered)
//	  • anything else     — free cell
//
// ✨ Builders offered:
//   - MDP  — reward-maximizing discounted model (StepReward per move).
//   - SSP  — cost-minimizing shortest-path model (StepCost per move,
//     discount 1, declared absorbing goals) for LAO* and RTDP.
//   - ManhattanHeuristic — admissible cost-to-go lower bound for SSP
//     (exact distance ignoring walls and slip).
//
// ⚙️ Usage:
//
//	grid := [][]int{
//	  {0, 0, 0, 1},   // goal in the upper-right corner
//	  {0, 0, 0, 0},
//	  {0, 0, 0, 0},
//	}
//	model, err := gridworld.SSP(grid, gridworld.DefaultOptions())
//
// States are indexed row-major: s = y·W + x (see StateIndex).
package gridworld

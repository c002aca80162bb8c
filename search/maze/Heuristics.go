package maze

import (
	"math"

	"github.com/samuelfneumann/goai/search"
)

// goaler is a search problem with a single goal position
type goaler interface {
	Goal() Position
}

// ManhattanHeuristic is the Manhattan distance from state to the goal
// of problem. It is consistent for mazes with unit step costs. The
// problem must have a single goal position, such as a PositionProblem.
func ManhattanHeuristic(state Position,
	problem search.Problem[Position, Direction]) float64 {
	goal := problem.(goaler).Goal()
	return math.Abs(float64(state.Row-goal.Row)) +
		math.Abs(float64(state.Col-goal.Col))
}

// EuclideanHeuristic is the straight-line distance from state to the
// goal of problem. The problem must have a single goal position, such
// as a PositionProblem.
func EuclideanHeuristic(state Position,
	problem search.Problem[Position, Direction]) float64 {
	goal := problem.(goaler).Goal()
	return math.Hypot(float64(state.Row-goal.Row),
		float64(state.Col-goal.Col))
}

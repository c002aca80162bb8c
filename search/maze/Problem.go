// Package maze implements search problems for finding paths through
// grid mazes, along with heuristics for A* search in mazes.
package maze

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/goai/search"
)

// CostFn returns the cost of stepping into a position
type CostFn func(Position) float64

// UnitCost charges 1 for every step
func UnitCost(Position) float64 {
	return 1.0
}

// StayEastCost makes the western half of a maze expensive, so that
// uniform-cost search prefers paths which stay to the east
func StayEastCost(p Position) float64 {
	return math.Pow(0.5, float64(p.Col))
}

// StayWestCost makes the eastern half of a maze expensive, so that
// uniform-cost search prefers paths which stay to the west
func StayWestCost(p Position) float64 {
	return math.Pow(2.0, float64(p.Col))
}

// PositionProblem is the problem of finding a path through a maze from
// the start position of a layout to a single goal position. States are
// Positions and actions are Directions.
type PositionProblem struct {
	layout   *Layout
	goal     Position
	cost     CostFn
	expanded int
}

var _ search.Problem[Position, Direction] = &PositionProblem{}

// NewPositionProblem creates a new PositionProblem on a layout with
// exactly one goal. If cost is nil, UnitCost is used.
func NewPositionProblem(layout *Layout, cost CostFn) (*PositionProblem,
	error) {
	goals := layout.Goals()
	if len(goals) != 1 {
		return nil, fmt.Errorf("newPositionProblem: layout must have "+
			"exactly 1 goal, have %d", len(goals))
	}

	if cost == nil {
		cost = UnitCost
	}

	return &PositionProblem{
		layout: layout,
		goal:   goals[0],
		cost:   cost,
	}, nil
}

// StartState returns the start position of the maze
func (p *PositionProblem) StartState() Position {
	return p.layout.Start()
}

// IsGoalState returns whether state is the goal position
func (p *PositionProblem) IsGoalState(state Position) bool {
	return state == p.goal
}

// Goal returns the goal position
func (p *PositionProblem) Goal() Position {
	return p.goal
}

// Successors returns the open cells adjacent to state, in the order
// North, South, East, West
func (p *PositionProblem) Successors(state Position) []search.Successor[Position, Direction] {
	p.expanded++

	successors := make([]search.Successor[Position, Direction], 0,
		len(Directions))
	for _, direction := range Directions {
		next := move(state, direction)
		if !p.layout.IsWall(next) {
			successors = append(successors, search.Successor[Position, Direction]{
				State:  next,
				Action: direction,
				Cost:   p.cost(next),
			})
		}
	}

	return successors
}

// Walk follows actions from the start position and returns the final
// position. If any action walks into a wall, Walk returns false.
func (p *PositionProblem) Walk(actions []Direction) (Position, bool) {
	current := p.StartState()
	for _, action := range actions {
		current = move(current, action)
		if p.layout.IsWall(current) {
			return current, false
		}
	}
	return current, true
}

// CostOfActions returns the cost of following actions from the start
// position, or +Inf if any action walks into a wall
func (p *PositionProblem) CostOfActions(actions []Direction) float64 {
	current, total := p.StartState(), 0.0
	for _, action := range actions {
		current = move(current, action)
		if p.layout.IsWall(current) {
			return math.Inf(1)
		}
		total += p.cost(current)
	}
	return total
}

// Expanded returns the number of states whose successors have been
// generated
func (p *PositionProblem) Expanded() int {
	return p.expanded
}

func move(p Position, d Direction) Position {
	dRow, dCol := d.Vector()
	return Position{p.Row + dRow, p.Col + dCol}
}

// TinyMazeSearch returns the sequence of moves which solves TinyMaze.
// For any other maze, the sequence of moves will be incorrect.
func TinyMazeSearch() []Direction {
	s, w := South, West
	return []Direction{s, s, w, s, w, w, s, w}
}

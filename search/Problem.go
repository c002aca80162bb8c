// Package search implements generic graph search algorithms over an
// abstract state space: depth-first search, breadth-first search,
// uniform-cost search and A* search.
//
// A state space is described by a Problem. Each search function returns
// the sequence of actions which leads from the start state of the
// Problem to a goal state, or ErrNoPath if no goal state is reachable.
// All searches are graph searches, so a state is expanded at most once.
package search

// Successor is a single transition out of a state: taking Action leads
// to State at a step cost of Cost. Step costs must be non-negative.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Problem outlines a search problem. States must be comparable since
// state identity determines which states have already been visited.
type Problem[S comparable, A any] interface {
	// StartState returns the state that the search starts from
	StartState() S

	// IsGoalState returns whether state is a goal state
	IsGoalState(state S) bool

	// Successors returns the transitions out of state. The order of the
	// returned Successors determines the order of expansion of states
	// with equal priority.
	Successors(state S) []Successor[S, A]

	// CostOfActions returns the total cost of a sequence of actions
	// taken from the start state
	CostOfActions(actions []A) float64
}

// Heuristic estimates the cost from a state to the nearest goal state
// of a Problem. A* search is only guaranteed to find an optimal path
// with a Heuristic that is both admissible and consistent.
type Heuristic[S comparable, A any] func(state S, problem Problem[S, A]) float64

// NullHeuristic is the trivial Heuristic which estimates a cost of 0
// for every state
func NullHeuristic[S comparable, A any](S, Problem[S, A]) float64 {
	return 0
}

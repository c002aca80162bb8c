package search

import (
	"errors"

	"github.com/samuelfneumann/goai/utils/container"
)

// ErrNoPath is returned by a search when the frontier is exhausted
// without reaching a goal state
var ErrNoPath = errors.New("search: no path to a goal state")

// edge records how a state was reached: by taking action in state from
type edge[S comparable, A any] struct {
	from   S
	action A
}

// DepthFirst searches the deepest states in the search tree first.
//
// States are marked as visited when they are expanded, and successors
// which have already been visited are never placed on the frontier. The
// returned path reaches a goal, but need not be the shortest path.
func DepthFirst[S comparable, A any](problem Problem[S, A]) ([]A, error) {
	closed := make(map[S]struct{})
	cameFrom := make(map[S]edge[S, A])

	frontier := container.NewStack[S]()
	frontier.Push(problem.StartState())

	for !frontier.IsEmpty() {
		current, _ := frontier.Pop()

		// A state can be pushed more than once before it is expanded
		if _, ok := closed[current]; ok {
			continue
		}
		closed[current] = struct{}{}

		if problem.IsGoalState(current) {
			return buildPath(cameFrom, current), nil
		}

		for _, successor := range problem.Successors(current) {
			if _, ok := closed[successor.State]; !ok {
				cameFrom[successor.State] = edge[S, A]{current, successor.Action}
				frontier.Push(successor.State)
			}
		}
	}

	return nil, ErrNoPath
}

// BreadthFirst searches the shallowest states in the search tree
// first.
//
// States are marked as visited when they are placed on the frontier,
// so that no state is ever queued twice. The returned path has the
// fewest actions of all paths to a goal.
func BreadthFirst[S comparable, A any](problem Problem[S, A]) ([]A, error) {
	start := problem.StartState()

	closed := map[S]struct{}{start: {}}
	cameFrom := make(map[S]edge[S, A])

	frontier := container.NewQueue[S]()
	frontier.Push(start)

	for !frontier.IsEmpty() {
		current, _ := frontier.Pop()

		if problem.IsGoalState(current) {
			return buildPath(cameFrom, current), nil
		}

		for _, successor := range problem.Successors(current) {
			if _, ok := closed[successor.State]; !ok {
				cameFrom[successor.State] = edge[S, A]{current, successor.Action}
				frontier.Push(successor.State)
				closed[successor.State] = struct{}{}
			}
		}
	}

	return nil, ErrNoPath
}

// UniformCost searches the state of least total cost first. It is A*
// search with the NullHeuristic.
func UniformCost[S comparable, A any](problem Problem[S, A]) ([]A, error) {
	return AStar(problem, NullHeuristic[S, A])
}

// AStar searches the state with the lowest combined cost and heuristic
// estimate first. If heuristic is nil, the NullHeuristic is used.
//
// A state is closed once it is popped from the frontier and is never
// reconsidered afterwards. This produces an optimal path only when the
// heuristic is admissible and consistent; an inconsistent heuristic may
// cause a cheaper path through a closed state to be missed.
func AStar[S comparable, A any](problem Problem[S, A],
	heuristic Heuristic[S, A]) ([]A, error) {
	if heuristic == nil {
		heuristic = NullHeuristic[S, A]
	}
	start := problem.StartState()

	closed := make(map[S]struct{})
	cameFrom := make(map[S]edge[S, A])
	costSoFar := map[S]float64{start: 0}

	frontier := container.NewPriorityQueue[S]()
	frontier.Push(start, heuristic(start, problem))

	for !frontier.IsEmpty() {
		current, _, _ := frontier.Pop()
		closed[current] = struct{}{}

		if problem.IsGoalState(current) {
			return buildPath(cameFrom, current), nil
		}

		for _, successor := range problem.Successors(current) {
			if _, ok := closed[successor.State]; ok {
				continue
			}

			cost := costSoFar[current] + successor.Cost
			if best, ok := costSoFar[successor.State]; ok && cost >= best {
				continue
			}

			// Found a strictly better path to the successor
			costSoFar[successor.State] = cost
			cameFrom[successor.State] = edge[S, A]{current, successor.Action}
			estimate := cost + heuristic(successor.State, problem)
			frontier.Update(successor.State, estimate)
		}
	}

	return nil, ErrNoPath
}

// buildPath walks the predecessor chain back from end to the start
// state and returns the actions along the chain in the order they were
// taken. The start state is the only state on the chain without a
// predecessor.
func buildPath[S comparable, A any](cameFrom map[S]edge[S, A], end S) []A {
	actions := container.NewStack[A]()

	current := end
	for {
		previous, ok := cameFrom[current]
		if !ok {
			break
		}
		actions.Push(previous.action)
		current = previous.from
	}

	path := make([]A, 0, actions.Len())
	for !actions.IsEmpty() {
		action, _ := actions.Pop()
		path = append(path, action)
	}

	return path
}

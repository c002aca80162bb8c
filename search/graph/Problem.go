// Package graph implements search problems over weighted directed
// gonum graphs. States are node IDs, and the action taken along an edge
// is the ID of the node the edge leads to.
package graph

import (
	"fmt"
	"math"
	"sort"

	"github.com/samuelfneumann/goai/search"
	"gonum.org/v1/gonum/graph"
)

// Problem is a search problem of finding a path from a start node to
// any one of a set of goal nodes in a weighted directed graph
type Problem struct {
	g        graph.Weighted
	start    int64
	goals    map[int64]struct{}
	expanded int
}

var _ search.Problem[int64, int64] = &Problem{}

// New creates a new search Problem on the graph g. The start and goal
// nodes must be in the graph, and all edge weights must be
// non-negative.
func New(g graph.Weighted, start int64, goals ...int64) (*Problem, error) {
	if g.Node(start) == nil {
		return nil, fmt.Errorf("new: start node %d not in graph", start)
	}
	if len(goals) == 0 {
		return nil, fmt.Errorf("new: no goal nodes")
	}

	goalSet := make(map[int64]struct{}, len(goals))
	for _, goal := range goals {
		if g.Node(goal) == nil {
			return nil, fmt.Errorf("new: goal node %d not in graph", goal)
		}
		goalSet[goal] = struct{}{}
	}

	// Ensure step costs are non-negative
	nodes := g.Nodes()
	for nodes.Next() {
		uid := nodes.Node().ID()
		to := g.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			if w := g.WeightedEdge(uid, vid).Weight(); w < 0 {
				return nil, fmt.Errorf("new: edge %d -> %d has negative "+
					"weight %v", uid, vid, w)
			}
		}
	}

	return &Problem{g: g, start: start, goals: goalSet}, nil
}

// StartState returns the ID of the start node
func (p *Problem) StartState() int64 {
	return p.start
}

// IsGoalState returns whether the node with ID state is a goal node
func (p *Problem) IsGoalState(state int64) bool {
	_, ok := p.goals[state]
	return ok
}

// Successors returns the nodes reachable along a single edge from the
// node with ID state. Successors are ordered by node ID so that
// searches are deterministic.
func (p *Problem) Successors(state int64) []search.Successor[int64, int64] {
	p.expanded++

	var ids []int64
	to := p.g.From(state)
	for to.Next() {
		ids = append(ids, to.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	successors := make([]search.Successor[int64, int64], len(ids))
	for i, id := range ids {
		successors[i] = search.Successor[int64, int64]{
			State:  id,
			Action: id,
			Cost:   p.g.WeightedEdge(state, id).Weight(),
		}
	}
	return successors
}

// CostOfActions returns the total weight of the edges followed by
// moving from the start node through each node in actions in turn. If
// any edge does not exist, CostOfActions returns +Inf.
func (p *Problem) CostOfActions(actions []int64) float64 {
	current, total := p.start, 0.0
	for _, next := range actions {
		e := p.g.WeightedEdge(current, next)
		if e == nil {
			return math.Inf(1)
		}
		total += e.Weight()
		current = next
	}
	return total
}

// Expanded returns the number of nodes whose successors have been
// generated
func (p *Problem) Expanded() int {
	return p.expanded
}

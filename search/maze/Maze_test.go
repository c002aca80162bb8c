package maze

import (
	"math"
	"strings"
	"testing"

	"github.com/samuelfneumann/goai/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tinyMazeProblem(t *testing.T, cost CostFn) *PositionProblem {
	t.Helper()

	layout, err := LoadLayout("tinyMaze")
	require.NoError(t, err)

	p, err := NewPositionProblem(layout, cost)
	require.NoError(t, err)
	return p
}

func TestParseTinyMaze(t *testing.T) {
	layout, err := ParseLayout(strings.NewReader(TinyMaze))
	require.NoError(t, err)

	rows, cols := layout.Dims()
	assert.Equal(t, 7, rows)
	assert.Equal(t, 7, cols)
	assert.Equal(t, Position{1, 5}, layout.Start())
	assert.Equal(t, []Position{{5, 1}}, layout.Goals())
	assert.True(t, layout.IsWall(Position{0, 0}))
	assert.True(t, layout.IsWall(Position{-1, 3}))
	assert.False(t, layout.IsWall(Position{3, 4}))
	assert.Equal(t, TinyMaze, layout.String())
}

func TestParseLayoutErrors(t *testing.T) {
	tests := map[string]string{
		"ragged":         "%%%%\n%P.%\n%%%",
		"no start":       "%%%\n%.%\n%%%",
		"multiple start": "%%%%\n%PP%\n%.%%\n%%%%",
		"empty":          "\n\n",
	}

	for name, layout := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLayout(strings.NewReader(layout))
			assert.Error(t, err)
		})
	}
}

func TestLoadLayoutMissing(t *testing.T) {
	_, err := LoadLayout("no/such/layout.lay")
	assert.Error(t, err)
}

func TestNewPositionProblemGoals(t *testing.T) {
	layout, err := ParseLayout(strings.NewReader("%%%%%\n%.P.%\n%%%%%"))
	require.NoError(t, err)

	_, err = NewPositionProblem(layout, nil)
	assert.Error(t, err)
}

func TestTinyMazeSearch(t *testing.T) {
	p := tinyMazeProblem(t, nil)

	end, ok := p.Walk(TinyMazeSearch())
	require.True(t, ok)
	assert.True(t, p.IsGoalState(end))
	assert.Equal(t, 8.0, p.CostOfActions(TinyMazeSearch()))
}

func TestCostOfActionsIntoWall(t *testing.T) {
	p := tinyMazeProblem(t, nil)

	assert.True(t, math.IsInf(p.CostOfActions([]Direction{East}), 1))
	_, ok := p.Walk([]Direction{West, North})
	assert.False(t, ok)
}

func TestCostFunctions(t *testing.T) {
	p := tinyMazeProblem(t, StayWestCost)
	assert.Equal(t, 114.0, p.CostOfActions(TinyMazeSearch()))

	p = tinyMazeProblem(t, StayEastCost)
	want := 2*math.Pow(0.5, 5) + 2*math.Pow(0.5, 4) + math.Pow(0.5, 3) +
		2*math.Pow(0.5, 2) + 0.5
	assert.InDelta(t, want, p.CostOfActions(TinyMazeSearch()), 1e-12)
}

func TestSuccessorOrder(t *testing.T) {
	p := tinyMazeProblem(t, nil)

	successors := p.Successors(Position{3, 4})
	var actions []Direction
	for _, s := range successors {
		actions = append(actions, s.Action)
		assert.Equal(t, 1.0, s.Cost)
	}
	assert.Equal(t, []Direction{South, East}, actions)
	assert.Equal(t, 1, p.Expanded())
}

func TestSearchTinyMaze(t *testing.T) {
	tests := []struct {
		name     string
		search   func(search.Problem[Position, Direction]) ([]Direction, error)
		wantCost float64
	}{
		{"dfs", search.DepthFirst[Position, Direction], 0},
		{"bfs", search.BreadthFirst[Position, Direction], 8},
		{"ucs", search.UniformCost[Position, Direction], 8},
		{"astar manhattan", func(p search.Problem[Position, Direction]) ([]Direction, error) {
			return search.AStar(p, ManhattanHeuristic)
		}, 8},
		{"astar euclidean", func(p search.Problem[Position, Direction]) ([]Direction, error) {
			return search.AStar(p, EuclideanHeuristic)
		}, 8},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := tinyMazeProblem(t, nil)

			path, err := test.search(p)
			require.NoError(t, err)

			end, ok := p.Walk(path)
			require.True(t, ok)
			assert.True(t, p.IsGoalState(end))

			if test.wantCost > 0 {
				assert.Equal(t, test.wantCost, p.CostOfActions(path))
			}
		})
	}
}

func TestAStarExpandsFewerStates(t *testing.T) {
	ucs := tinyMazeProblem(t, nil)
	_, err := search.UniformCost[Position, Direction](ucs)
	require.NoError(t, err)

	astar := tinyMazeProblem(t, nil)
	_, err = search.AStar[Position, Direction](astar, ManhattanHeuristic)
	require.NoError(t, err)

	assert.LessOrEqual(t, astar.Expanded(), ucs.Expanded())
}

func TestDirection(t *testing.T) {
	for _, d := range Directions {
		dRow, dCol := d.Vector()
		rRow, rCol := d.Reverse().Vector()
		assert.Equal(t, 0, dRow+rRow)
		assert.Equal(t, 0, dCol+rCol)
		assert.Equal(t, d, d.Reverse().Reverse())
	}

	dRow, dCol := Stop.Vector()
	assert.Zero(t, dRow)
	assert.Zero(t, dCol)
	assert.Equal(t, Stop, Stop.Reverse())
}

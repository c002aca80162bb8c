// Package gridworld implements 2D gridworld MDPs.
//
// A gridworld is described by a layout, a rectangular grid of cells
// listed from the top row down. Cells are walls, empty cells, the start
// cell or exit cells. The only action available in an exit cell is
// Exit, which pays the cell's reward and moves to TerminalState. In any
// other cell the agent may move in one of the four compass directions.
// With probability 1 - noise the agent moves as intended, and otherwise
// it moves in one of the two perpendicular directions with equal
// probability. Moving into a wall or off the grid leaves the agent in
// place.
package gridworld

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samuelfneumann/goai/mdp"
	"gonum.org/v1/gonum/mat"
)

// Cell is a position in the gridworld
type Cell struct {
	Row, Col int
}

// TerminalState is the state entered after exiting the grid
var TerminalState = Cell{-1, -1}

// Action is an action in the gridworld
type Action string

const (
	North Action = "north"
	West  Action = "west"
	South Action = "south"
	East  Action = "east"
	Exit  Action = "exit"
)

var moves = []Action{North, West, South, East}

// GridWorld is a gridworld MDP
type GridWorld struct {
	r, c         int
	walls        []bool
	exits        map[Cell]float64
	start        Cell
	noise        float64
	livingReward float64
}

var _ mdp.MDP[Cell, Action] = &GridWorld{}

// New creates a new GridWorld from a layout. The noise is the
// probability of not moving in the intended direction, and
// livingReward is the reward for every transition other than exiting.
func New(layout [][]string, noise, livingReward float64) (*GridWorld,
	error) {
	if noise < 0 || noise > 1 {
		return nil, fmt.Errorf("new: noise %v not in [0, 1]", noise)
	}
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, fmt.Errorf("new: empty layout")
	}

	r, c := len(layout), len(layout[0])
	g := &GridWorld{
		r:            r,
		c:            c,
		walls:        make([]bool, r*c),
		exits:        make(map[Cell]float64),
		start:        TerminalState,
		noise:        noise,
		livingReward: livingReward,
	}

	for i, row := range layout {
		if len(row) != c {
			return nil, fmt.Errorf("new: row %d has %d cells, want %d", i,
				len(row), c)
		}

		for j, cell := range row {
			switch cell {
			case Wall:
				g.walls[g.cToInd(i, j)] = true

			case Start:
				if g.start != TerminalState {
					return nil, fmt.Errorf("new: multiple start cells")
				}
				g.start = Cell{i, j}

			case Empty:

			default:
				reward, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
				if err != nil {
					return nil, fmt.Errorf("new: cell (%d, %d): invalid "+
						"cell %q", i, j, cell)
				}
				g.exits[Cell{i, j}] = reward
			}
		}
	}

	if g.start == TerminalState {
		return nil, fmt.Errorf("new: no start cell")
	}
	return g, nil
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.r, g.c
}

// Start returns the starting cell
func (g *GridWorld) Start() Cell {
	return g.start
}

// IsWall returns whether a cell is a wall. Cells off the grid are
// considered walls.
func (g *GridWorld) IsWall(cell Cell) bool {
	if cell.Row < 0 || cell.Row >= g.r || cell.Col < 0 || cell.Col >= g.c {
		return true
	}
	return g.walls[g.cToInd(cell.Row, cell.Col)]
}

// ExitReward returns the reward of an exit cell and whether the cell
// is an exit
func (g *GridWorld) ExitReward(cell Cell) (float64, bool) {
	reward, ok := g.exits[cell]
	return reward, ok
}

// States returns TerminalState followed by every cell which is not a
// wall, from the top row down and left to right
func (g *GridWorld) States() []Cell {
	states := []Cell{TerminalState}
	for i := 0; i < g.r; i++ {
		for j := 0; j < g.c; j++ {
			if !g.walls[g.cToInd(i, j)] {
				states = append(states, Cell{i, j})
			}
		}
	}
	return states
}

// PossibleActions implements the mdp.MDP interface
func (g *GridWorld) PossibleActions(state Cell) []Action {
	if state == TerminalState {
		return nil
	}
	if _, ok := g.exits[state]; ok {
		return []Action{Exit}
	}
	return append([]Action(nil), moves...)
}

// TransitionStatesAndProbs implements the mdp.MDP interface. Next
// states are listed in the order intended, then perpendicular
// directions, with repeated cells merged and zero-probability cells
// dropped.
func (g *GridWorld) TransitionStatesAndProbs(state Cell,
	action Action) []mdp.Transition[Cell] {
	if state == TerminalState || g.IsWall(state) {
		return nil
	}
	if _, ok := g.exits[state]; ok {
		if action != Exit {
			return nil
		}
		return []mdp.Transition[Cell]{{State: TerminalState, Probability: 1}}
	}

	var first, second Action
	switch action {
	case North, South:
		first, second = West, East
	case West, East:
		first, second = North, South
	default:
		return nil
	}

	var transitions []mdp.Transition[Cell]
	add := func(next Cell, p float64) {
		if p == 0 {
			return
		}
		for i := range transitions {
			if transitions[i].State == next {
				transitions[i].Probability += p
				return
			}
		}
		transitions = append(transitions, mdp.Transition[Cell]{
			State:       next,
			Probability: p,
		})
	}

	add(g.move(state, action), 1-g.noise)
	add(g.move(state, first), g.noise/2)
	add(g.move(state, second), g.noise/2)

	return transitions
}

// Reward implements the mdp.MDP interface. Leaving an exit cell pays
// the exit reward and every other transition pays the living reward.
func (g *GridWorld) Reward(state Cell, _ Action, _ Cell) float64 {
	if state == TerminalState {
		return 0
	}
	if reward, ok := g.exits[state]; ok {
		return reward
	}
	return g.livingReward
}

// IsTerminal implements the mdp.MDP interface
func (g *GridWorld) IsTerminal(state Cell) bool {
	return state == TerminalState
}

// move returns the cell reached by moving from cell in direction a,
// which is cell itself if the move is blocked
func (g *GridWorld) move(cell Cell, a Action) Cell {
	next := cell
	switch a {
	case North:
		next.Row--
	case South:
		next.Row++
	case West:
		next.Col--
	case East:
		next.Col++
	}

	if g.IsWall(next) {
		return cell
	}
	return next
}

// ValueGrid returns a matrix with the value of each cell as given by
// value. Walls are NaN.
func (g *GridWorld) ValueGrid(value func(Cell) float64) *mat.Dense {
	grid := mat.NewDense(g.r, g.c, nil)
	grid.Apply(func(i, j int, _ float64) float64 {
		if g.walls[g.cToInd(i, j)] {
			return math.NaN()
		}
		return value(Cell{i, j})
	}, grid)
	return grid
}

var arrows = map[Action]byte{
	North: '^',
	West:  '<',
	South: 'v',
	East:  '>',
	Exit:  'x',
}

// RenderPolicy returns a drawing of a policy over the grid, one line
// per row. Walls are drawn as '#' and cells without an action as '.'.
func (g *GridWorld) RenderPolicy(policy func(Cell) (Action, bool)) string {
	var b strings.Builder
	for i := 0; i < g.r; i++ {
		for j := 0; j < g.c; j++ {
			if g.walls[g.cToInd(i, j)] {
				b.WriteByte('#')
				continue
			}

			a, ok := policy(Cell{i, j})
			arrow, known := arrows[a]
			if !ok || !known {
				b.WriteByte('.')
				continue
			}
			b.WriteByte(arrow)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *GridWorld) cToInd(row, col int) int {
	return cToInd(row, col, g.c)
}

func cToInd(row, col, c int) int {
	return row*c + col
}

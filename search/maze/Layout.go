package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Layout characters
const (
	WallChar  = '%'
	StartChar = 'P'
	GoalChar  = '.'
)

// TinyMaze is the smallest maze layout, which TinyMazeSearch solves
const TinyMaze = `%%%%%%%
%    P%
% %%% %
%  %  %
%%   %%
%. %%%%
%%%%%%%`

// layouts holds the layouts which can be loaded by name
var layouts = map[string]string{
	"tinyMaze": TinyMaze,
}

// Position is a cell in a maze
type Position struct {
	Row, Col int
}

// Layout is a rectangular grid of walls with a single start position
// and any number of goal positions
type Layout struct {
	walls [][]bool
	start Position
	goals []Position
}

// ParseLayout reads a layout with one row of the maze per line. Walls
// are marked by '%', the start by 'P' and goals by '.'; any other
// character is an open cell. Blank lines are ignored.
func ParseLayout(r io.Reader) (*Layout, error) {
	var (
		walls    [][]bool
		goals    []Position
		start    Position
		hasStart bool
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		row := len(walls)
		if row > 0 && len(line) != len(walls[0]) {
			return nil, fmt.Errorf("parseLayout: row %d has width %d, "+
				"expected %d", row, len(line), len(walls[0]))
		}

		cells := make([]bool, len(line))
		for col, char := range []byte(line) {
			switch char {
			case WallChar:
				cells[col] = true
			case StartChar:
				if hasStart {
					return nil, fmt.Errorf("parseLayout: multiple start " +
						"positions")
				}
				start, hasStart = Position{row, col}, true
			case GoalChar:
				goals = append(goals, Position{row, col})
			}
		}
		walls = append(walls, cells)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parseLayout: %w", err)
	}

	if len(walls) == 0 {
		return nil, fmt.Errorf("parseLayout: empty layout")
	}
	if !hasStart {
		return nil, fmt.Errorf("parseLayout: no start position")
	}

	return &Layout{walls: walls, start: start, goals: goals}, nil
}

// LoadLayout returns the layout with the given name, or, if no such
// layout exists, reads the layout from the file at path name
func LoadLayout(name string) (*Layout, error) {
	if layout, ok := layouts[name]; ok {
		return ParseLayout(strings.NewReader(layout))
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("loadLayout: no layout %v: %w", name, err)
	}
	defer file.Close()

	return ParseLayout(file)
}

// Dims returns the number of rows and columns in the layout
func (l *Layout) Dims() (rows, cols int) {
	return len(l.walls), len(l.walls[0])
}

// IsWall returns whether p is a wall. Positions outside the layout are
// walls.
func (l *Layout) IsWall(p Position) bool {
	rows, cols := l.Dims()
	if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
		return true
	}
	return l.walls[p.Row][p.Col]
}

// Start returns the start position
func (l *Layout) Start() Position {
	return l.start
}

// Goals returns the goal positions in row-major order
func (l *Layout) Goals() []Position {
	goals := make([]Position, len(l.goals))
	copy(goals, l.goals)
	return goals
}

// String returns the layout in the format read by ParseLayout
func (l *Layout) String() string {
	rows, cols := l.Dims()
	grid := make([][]byte, rows)
	for r := range grid {
		grid[r] = make([]byte, cols)
		for c := range grid[r] {
			grid[r][c] = ' '
			if l.walls[r][c] {
				grid[r][c] = WallChar
			}
		}
	}
	for _, g := range l.goals {
		grid[g.Row][g.Col] = GoalChar
	}
	grid[l.start.Row][l.start.Col] = StartChar

	lines := make([]string, rows)
	for r := range grid {
		lines[r] = string(grid[r])
	}
	return strings.Join(lines, "\n")
}

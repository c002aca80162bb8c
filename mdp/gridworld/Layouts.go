package gridworld

import (
	"fmt"
	"maps"
	"slices"
)

// Layout cell markers. Any other cell must be a number, which marks an
// exit cell paying that reward.
const (
	Wall  = "#"
	Start = "S"
	Empty = " "
)

var layouts = map[string][][]string{
	"BookGrid": {
		{" ", " ", " ", "+1"},
		{" ", "#", " ", "-1"},
		{"S", " ", " ", " "},
	},
	"BridgeGrid": {
		{"#", "-100", "-100", "-100", "-100", "-100", "#"},
		{"1", "S", " ", " ", " ", " ", "10"},
		{"#", "-100", "-100", "-100", "-100", "-100", "#"},
	},
	"CliffGrid": {
		{" ", " ", " ", " ", " "},
		{"8", "S", " ", " ", "10"},
		{"-100", "-100", "-100", "-100", "-100"},
	},
	"DiscountGrid": {
		{" ", " ", " ", " ", " "},
		{" ", "#", " ", " ", " "},
		{" ", "#", "1", "#", "10"},
		{"S", " ", " ", " ", " "},
		{"-10", "-10", "-10", "-10", "-10"},
	},
	"MazeGrid": {
		{" ", " ", " ", "+1"},
		{"#", "#", " ", "#"},
		{" ", "#", " ", " "},
		{" ", "#", "#", " "},
		{"S", " ", " ", " "},
	},
}

// Layout returns a copy of the built-in layout with the given name
func Layout(name string) ([][]string, error) {
	layout, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("layout: no layout named %q", name)
	}

	grid := make([][]string, len(layout))
	for i, row := range layout {
		grid[i] = append([]string(nil), row...)
	}
	return grid, nil
}

// Names returns the names of all built-in layouts in sorted order
func Names() []string {
	return slices.Sorted(maps.Keys(layouts))
}

package maze

// Direction is an action which moves an agent one cell in a maze
type Direction string

const (
	North Direction = "North"
	South Direction = "South"
	East  Direction = "East"
	West  Direction = "West"
	Stop  Direction = "Stop"
)

// Directions lists the moving directions in the order that successors
// are generated
var Directions = []Direction{North, South, East, West}

// Vector returns the change in row and column caused by moving in
// direction d. Rows increase southwards and columns increase eastwards.
func (d Direction) Vector() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	}
	return 0, 0
}

// Reverse returns the direction opposite to d
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

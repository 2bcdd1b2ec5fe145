package world

// Direction names one of the four outer walls of a grid
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String names the wall, e.g. for log fields
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// WallPosition returns the position of the index-th cell along this side's
// outer wall of a dimension x dimension grid. North and South count columns
// left to right, East and West count rows top to bottom.
func (d Direction) WallPosition(dimension, index int) (row, col int) {
	switch d {
	case North:
		return 0, index
	case East:
		return index, dimension - 1
	case South:
		return dimension - 1, index
	case West:
		return index, 0
	default:
		return 0, 0
	}
}

/*
Package maze provides the grid model shared by every maze algorithm in this
repository: compass directions over a flat, row-major cell slice, per-cell
wall masks with generation and solution metadata, and the small geometry
helpers the solvers build their heuristics on.

Cells are addressed by a single linear index. Directions double as wall
bits, so the four walls of a cell pack into one mask.
*/
package maze

// Direction identifies one of the four sides of a cell. Each direction is a
// distinct bit so that the walls of a cell pack into a single mask.
type Direction uint8

const (
	North Direction = 1 << iota
	East
	South
	West
)

// Directions lists all directions in clockwise order starting at North.
var Directions = [4]Direction{North, East, South, West}

// Next returns the direction one clockwise turn from d.
func (d Direction) Next() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

// Prev returns the direction one counterclockwise turn from d.
func (d Direction) Prev() Direction {
	switch d {
	case North:
		return West
	case East:
		return North
	case South:
		return East
	default:
		return South
	}
}

// Opposite returns the direction facing d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// String returns the compass name of the direction.
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

// Neighbour returns the index of the cell adjacent to cell in direction d.
// The second return value is false when the neighbour would lie outside the
// grid.
func (d Direction) Neighbour(dims Dimensions, cell int) (int, bool) {
	switch d {
	case North:
		if cell < dims.Width {
			return 0, false
		}
		return cell - dims.Width, true
	case East:
		if (cell+1)%dims.Width == 0 {
			return 0, false
		}
		return cell + 1, true
	case South:
		if cell+dims.Width >= dims.Width*dims.Height {
			return 0, false
		}
		return cell + dims.Width, true
	case West:
		if cell%dims.Width == 0 {
			return 0, false
		}
		return cell - 1, true
	default:
		return 0, false
	}
}

// Between returns the direction leading from one cell to an adjacent cell.
// The second return value is false when the cells are not 4-adjacent. At
// most one relation can hold, so the probe order has no observable effect.
func Between(dims Dimensions, from, to int) (Direction, bool) {
	if from >= dims.Width && from-dims.Width == to {
		return North, true
	}
	if from+dims.Width == to && to < dims.Width*dims.Height {
		return South, true
	}
	if from+1 == to && to%dims.Width != 0 {
		return East, true
	}
	if from-1 == to && from%dims.Width != 0 {
		return West, true
	}
	return 0, false
}

package solve

import "github.com/beka-birhanu/maze-lab/maze"

// Heuristic estimates the remaining distance from a cell to the goal. It
// must be non-negative; an admissible heuristic keeps A* optimal.
type Heuristic func(dims maze.Dimensions, from, to int) int

// Zero always estimates zero remaining distance. Using it makes A* search
// equivalent to Dijkstra's algorithm.
func Zero(maze.Dimensions, int, int) int {
	return 0
}

// TaxicabDistance estimates the Manhattan distance between the cells, the
// exact lower bound on moves in a 4-connected grid.
func TaxicabDistance(dims maze.Dimensions, from, to int) int {
	return maze.TaxicabDistance(dims, from, to)
}

package generate

import (
	"math/rand"

	"github.com/beka-birhanu/maze-lab/maze"
)

// carveWalk is the single walk tag used by the depth first search carver;
// unlike Wilson's algorithm it grows one tree from one root.
const carveWalk = 0

// RandomisedDepthFirstSearch generates a maze with a randomised depth first
// search, the classic recursive backtracker reshaped into an explicit stack
// so that each Step call makes exactly one unit of forward progress.
type RandomisedDepthFirstSearch struct {
	rng         *rand.Rand
	initialised bool
	stack       []int
}

// NewRandomisedDepthFirstSearch creates the generator. A nil rng gets a
// time-seeded source.
func NewRandomisedDepthFirstSearch(rng *rand.Rand) *RandomisedDepthFirstSearch {
	if rng == nil {
		rng = newRand()
	}
	return &RandomisedDepthFirstSearch{rng: rng}
}

// Step applies one step of the algorithm. The first call picks a random
// start cell. Each later call backtracks the stack to the deepest cell with
// an unvisited neighbour, carves to one such neighbour at random and
// descends. The run completes when the stack drains.
func (g *RandomisedDepthFirstSearch) Step(dims maze.Dimensions, cells []maze.Cell) bool {
	if !g.initialised {
		from := g.rng.Intn(len(cells))
		cells[from].SetWalk(carveWalk)
		g.initialised = true
		g.stack = append(g.stack, from)
		return true
	}

	// loop used to backtrack the search path within a single step
	for {
		if len(g.stack) == 0 {
			// end of algorithm; reset state
			g.initialised = false
			g.stack = nil
			return false
		}

		cell := g.stack[len(g.stack)-1]
		g.stack = g.stack[:len(g.stack)-1]

		var unvisited []int
		for _, direction := range maze.Directions {
			if neighbour, ok := direction.Neighbour(dims, cell); ok && !cells[neighbour].Visited() {
				unvisited = append(unvisited, neighbour)
			}
		}
		if len(unvisited) == 0 {
			continue
		}

		neighbour := unvisited[g.rng.Intn(len(unvisited))]
		cells[neighbour].SetWalk(carveWalk)
		carve(dims, cells, cell, neighbour)

		// the new cell becomes top of stack for continued descent
		g.stack = append(g.stack, cell, neighbour)
		return true
	}
}

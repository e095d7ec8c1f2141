package generate

import (
	"math/rand"

	"github.com/beka-birhanu/maze-lab/maze"
)

// Wilson generates a maze with Wilson's algorithm: repeated loop-erased
// random walks from untagged territory into the growing tree. The loop
// erasure makes the result a uniform random spanning tree, with no bias
// toward short cycles.
type Wilson struct {
	rng *rand.Rand

	// walk is the current walk index; 0 means the algorithm has not
	// started. The first tagged cell takes walk 0, so live walks are >= 1.
	walk int

	// stack holds the cells of the in-progress walk; empty means the next
	// step starts a new walk.
	stack []int
}

// NewWilson creates the generator. A nil rng gets a time-seeded source.
func NewWilson(rng *rand.Rand) *Wilson {
	if rng == nil {
		rng = newRand()
	}
	return &Wilson{rng: rng}
}

// Step applies one step of the algorithm. The first call tags a single
// random cell as the root of the tree. Later calls extend the current walk
// by one random neighbour, erase a loop when the walk strikes itself, or
// commit the walk into the tree when it strikes earlier territory. The run
// completes once no untagged cell remains.
func (g *Wilson) Step(dims maze.Dimensions, cells []maze.Cell) bool {
	if g.walk == 0 {
		// start of the algorithm; the root is the destination of the
		// first complete walk
		idx := g.rng.Intn(len(cells))
		cells[idx].SetWalk(0)
		g.walk = 1
		return true
	}

	if len(g.stack) == 0 {
		// start a new walk at the lowest untagged cell
		for idx := range cells {
			if !cells[idx].Visited() {
				cells[idx].SetWalk(g.walk)
				g.stack = append(g.stack, idx)
				return true
			}
		}

		// end of algorithm; reset state
		g.walk = 0
		g.stack = nil
		return false
	}

	// continue the current walk from its head, ignoring walls since none
	// have been removed in untagged territory yet
	cell := g.stack[len(g.stack)-1]
	var neighbours []int
	for _, direction := range maze.Directions {
		if neighbour, ok := direction.Neighbour(dims, cell); ok {
			neighbours = append(neighbours, neighbour)
		}
	}
	neighbour := neighbours[g.rng.Intn(len(neighbours))]

	switch {
	case !cells[neighbour].Visited():
		// extend the walk
		cells[neighbour].SetWalk(g.walk)
		g.stack = append(g.stack, neighbour)
	case cells[neighbour].Walk() == g.walk:
		// encountered the current walk; erase the loop
		for g.stack[len(g.stack)-1] != neighbour {
			top := g.stack[len(g.stack)-1]
			g.stack = g.stack[:len(g.stack)-1]
			cells[top].ClearWalk()
		}
	default:
		// encountered a previous walk; commit the current walk by carving
		// backward from the point of contact to the walk's start
		g.walk++
		for i := len(g.stack) - 1; i >= 0; i-- {
			last := g.stack[i]
			carve(dims, cells, last, neighbour)
			neighbour = last
		}
		g.stack = nil
	}

	return true
}

package solve

import (
	"math/rand"

	"github.com/beka-birhanu/maze-lab/maze"
)

// RandomisedDepthFirstSearch solves a maze with the same explicit-stack
// backtracking shape as the depth first search carver, constrained to
// wall-free edges. A perfect maze holds exactly one simple path between any
// two cells, so whichever path the randomised exploration finds is the
// unique one; it just is not discovered in the fewest moves.
type RandomisedDepthFirstSearch struct {
	rng         *rand.Rand
	initialised bool
	stack       []int
}

// NewRandomisedDepthFirstSearch creates the solver. A nil rng gets a
// time-seeded source.
func NewRandomisedDepthFirstSearch(rng *rand.Rand) *RandomisedDepthFirstSearch {
	if rng == nil {
		rng = newRand()
	}
	return &RandomisedDepthFirstSearch{rng: rng}
}

// Step applies one step of the algorithm. The first call only initialises.
// Each later call backtracks the stack to the deepest cell with an eligible
// wall-free neighbour, descends to one at random and records the
// back-pointer. Popping the destination completes the run.
func (s *RandomisedDepthFirstSearch) Step(dims maze.Dimensions, cells []maze.Cell, from, to int) (bool, error) {
	if !s.initialised {
		s.initialised = true
		return true, nil
	}

	// loop used to backtrack the search path within a single step
	reseeded := false
	for {
		if len(s.stack) == 0 {
			if reseeded {
				// drained twice without progress; the destination is not
				// reachable from the origin
				s.reset()
				return false, ErrDisconnected
			}
			reseeded = true
			s.stack = append(s.stack, from)
			continue
		}

		cell := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		if cell == to {
			// end of algorithm; flag the path and reset state
			err := markResult(cells, from, to)
			s.reset()
			return false, err
		}

		var eligible []int
		for _, direction := range maze.Directions {
			if cells[cell].HasWall(direction) {
				continue
			}
			neighbour, ok := direction.Neighbour(dims, cell)
			if !ok {
				continue
			}
			if neighbour == from || cells[neighbour].Solution.HasPrevious() {
				continue
			}
			eligible = append(eligible, neighbour)
		}
		if len(eligible) == 0 {
			continue
		}

		neighbour := eligible[s.rng.Intn(len(eligible))]
		cells[neighbour].Solution.Previous = cell
		s.stack = append(s.stack, cell, neighbour)
		return true, nil
	}
}

func (s *RandomisedDepthFirstSearch) reset() {
	s.initialised = false
	s.stack = nil
}

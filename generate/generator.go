/*
Package generate implements maze construction as incrementally resumable
algorithms. Each generator carves one unit of work per Step call so that an
external driver can visualize progress between calls.

Two algorithms are provided: a randomised depth first search backtracker and
Wilson's loop-erased random walk. Both produce a perfect maze, a spanning
tree over the grid in which exactly one simple path connects every pair of
cells.
*/
package generate

import (
	"math/rand"
	"sort"
	"time"

	"github.com/beka-birhanu/maze-lab/maze"
)

// Generator advances maze construction by one step per call.
type Generator interface {
	// Step applies one unit of work to the cells. It returns true while
	// more steps remain. The call that completes the maze resets the
	// generator's private state, so the very next call begins a brand-new
	// run. Only wall bits and walk tags are mutated.
	Step(dims maze.Dimensions, cells []maze.Cell) bool
}

// Registry maps display names to generator constructors. A nil rand gets a
// time-seeded source.
var Registry = map[string]func(rng *rand.Rand) Generator{
	"Randomised depth first search algorithm": func(rng *rand.Rand) Generator {
		return NewRandomisedDepthFirstSearch(rng)
	},
	"Wilson's algorithm": func(rng *rand.Rand) Generator {
		return NewWilson(rng)
	},
}

// Names returns the registered generator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newRand returns a time-seeded source for constructors given a nil rand.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// carve removes the wall between two adjacent cells on both sides.
func carve(dims maze.Dimensions, cells []maze.Cell, from, to int) {
	direction, ok := maze.Between(dims, from, to)
	if !ok {
		// callers only ever pass adjacent cells
		return
	}
	cells[from].RemoveWall(direction)
	cells[to].RemoveWall(direction.Opposite())
}

/*
Package solve implements maze pathfinding as incrementally resumable
algorithms, mirroring the step contract of package generate. Each solver
advances by one unit of work per Step call and records its progress in the
cells' solution metadata; walls are read-only inputs.

Four solvers are provided: A* search with a pluggable heuristic (the zero
heuristic degenerates it to Dijkstra's algorithm), a randomised depth first
search, and a wall follower in both left and right handedness. In a perfect
maze every solver finds the unique simple path between the endpoints; only
the A* family guarantees it is shortest in the general case.
*/
package solve

import (
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/beka-birhanu/maze-lab/maze"
)

// ErrDisconnected reports that a solver exhausted its search space before
// reaching the destination. A correctly generated maze is a spanning tree,
// so this signals a corrupted grid rather than a normal "no path" outcome.
var ErrDisconnected = errors.New("solver exhausted: maze is not a spanning tree")

// Solver advances pathfinding by one step per call.
type Solver interface {
	// Step applies one unit of work toward reaching to from from. It
	// returns true while more steps remain. The completing call marks the
	// final path by walking back-pointers from to to from and setting each
	// cell's Result flag, resets the solver's private state, and returns
	// false. Only solution metadata is mutated.
	//
	// A non-nil error means the maze violated the spanning tree invariant;
	// the solver state is reset and the run is over.
	Step(dims maze.Dimensions, cells []maze.Cell, from, to int) (bool, error)
}

// Registry maps display names to solver constructors. A nil rand gets a
// time-seeded source; solvers that need no randomness ignore it.
var Registry = map[string]func(rng *rand.Rand) Solver{
	"A* algorithm (using Taxicab distance heuristic)": func(*rand.Rand) Solver {
		return NewAStarSearch(TaxicabDistance)
	},
	"Dijkstra's algorithm (A* algorithm without heuristic)": func(*rand.Rand) Solver {
		return NewAStarSearch(Zero)
	},
	"Randomised depth first search algorithm": func(rng *rand.Rand) Solver {
		return NewRandomisedDepthFirstSearch(rng)
	},
	"Wall follower (left turn)": func(*rand.Rand) Solver {
		return NewWallFollowerSearch(Left{})
	},
	"Wall follower (right turn)": func(*rand.Rand) Solver {
		return NewWallFollowerSearch(Right{})
	},
}

// Names returns the registered solver names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// markResult walks back-pointers from to until from, flagging each visited
// cell as part of the final path. The origin itself is not flagged.
func markResult(cells []maze.Cell, from, to int) error {
	for cell := to; cell != from; {
		cells[cell].Solution.Result = true
		previous := cells[cell].Solution.Previous
		if previous == maze.NoPrevious {
			return ErrDisconnected
		}
		cell = previous
	}
	return nil
}

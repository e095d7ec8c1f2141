package solve

import (
	"container/heap"

	"github.com/beka-birhanu/maze-lab/maze"
)

// noDistance marks a cell with no recorded distance yet.
const noDistance = -1

// AStarSearch solves a maze with the A* search algorithm, expanding one
// fringe entry per Step call. The heuristic is injected; with Zero the
// algorithm is exactly Dijkstra's.
type AStarSearch struct {
	heuristic   Heuristic
	initialised bool

	// distances holds the best known distance from the origin per cell,
	// or noDistance.
	distances []int

	// fringe is the priority queue of cells pending expansion, ordered by
	// distance plus the heuristic estimate of the remaining distance.
	fringe fringe
}

// NewAStarSearch creates the solver. A nil heuristic defaults to Zero.
func NewAStarSearch(h Heuristic) *AStarSearch {
	if h == nil {
		h = Zero
	}
	return &AStarSearch{heuristic: h}
}

// Step applies one step of the algorithm. The first call seeds the origin;
// each later call pops the lowest-priority fringe entry and relaxes its
// wall-free neighbours. Popping the destination completes the run.
func (s *AStarSearch) Step(dims maze.Dimensions, cells []maze.Cell, from, to int) (bool, error) {
	if !s.initialised {
		s.distances = make([]int, len(cells))
		for i := range s.distances {
			s.distances[i] = noDistance
		}
		s.distances[from] = 0
		s.fringe = s.fringe[:0]
		heap.Push(&s.fringe, fringeEntry{cost: s.heuristic(dims, from, to), cell: from})
		s.initialised = true
		return true, nil
	}

	if s.fringe.Len() == 0 {
		s.reset()
		return false, ErrDisconnected
	}

	entry := heap.Pop(&s.fringe).(fringeEntry)
	cell := entry.cell

	if cell == to {
		// end of algorithm; flag the path and reset state
		err := markResult(cells, from, to)
		s.reset()
		return false, err
	}

	// housekeeping; purge stale duplicate fringe entries for this cell
	s.fringe.purge(cell)

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

		distance := s.distances[cell] + 1 // one additional move
		if s.distances[neighbour] == noDistance || distance < s.distances[neighbour] {
			cells[neighbour].Solution.Previous = cell
			s.distances[neighbour] = distance
			heap.Push(&s.fringe, fringeEntry{
				cost: distance + s.heuristic(dims, neighbour, to),
				cell: neighbour,
			})
		}
	}

	return true, nil
}

func (s *AStarSearch) reset() {
	s.initialised = false
	s.distances = nil
	s.fringe = nil
}

// fringeEntry pairs a cell with its priority: best known distance plus the
// heuristic estimate of the remaining distance.
type fringeEntry struct {
	cost int
	cell int
}

// fringe implements heap.Interface. Lower cost pops first; ties break on
// the lower cell index for determinism.
type fringe []fringeEntry

func (f fringe) Len() int { return len(f) }

func (f fringe) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].cell < f[j].cell
}

func (f fringe) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *fringe) Push(x any) {
	*f = append(*f, x.(fringeEntry))
}

func (f *fringe) Pop() any {
	old := *f
	entry := old[len(old)-1]
	*f = old[:len(old)-1]
	return entry
}

// purge removes every entry for the given cell and restores heap order.
func (f *fringe) purge(cell int) {
	kept := (*f)[:0]
	for _, entry := range *f {
		if entry.cell != cell {
			kept = append(kept, entry)
		}
	}
	*f = kept
	heap.Init(f)
}

package solve

import "github.com/beka-birhanu/maze-lab/maze"

// TurnDirection selects the handedness of a wall follower. Initial gives
// the first direction to probe after a move; Subsequent gives the rotation
// used to keep scanning, opposite to the initial turn so the walker hugs
// the wall on its chosen side.
type TurnDirection interface {
	Initial(maze.Direction) maze.Direction
	Subsequent(maze.Direction) maze.Direction
}

// Right turns keep the wall on the walker's right hand.
type Right struct{}

// Initial turns clockwise.
func (Right) Initial(d maze.Direction) maze.Direction { return d.Next() }

// Subsequent turns counterclockwise.
func (Right) Subsequent(d maze.Direction) maze.Direction { return d.Prev() }

// Left turns keep the wall on the walker's left hand.
type Left struct{}

// Initial turns counterclockwise.
func (Left) Initial(d maze.Direction) maze.Direction { return d.Prev() }

// Subsequent turns clockwise.
func (Left) Subsequent(d maze.Direction) maze.Direction { return d.Next() }

// WallFollowerSearch solves a maze by hugging a wall. Because a perfect
// maze has no cycles, wall-following always terminates at the unique path,
// though not necessarily in the minimum number of moves.
type WallFollowerSearch struct {
	turn TurnDirection

	// started is false before the walker is placed at the origin.
	started bool
	cell    int
	facing  maze.Direction
}

// NewWallFollowerSearch creates the solver with the given handedness.
func NewWallFollowerSearch(turn TurnDirection) *WallFollowerSearch {
	return &WallFollowerSearch{turn: turn}
}

// Step applies one step of the algorithm. The first call places the walker
// at the origin facing North. Each later call rotates to the first wall-free
// direction on the configured side and moves through it; moves into cells
// that already carry a back-pointer are backtracking and continue within the
// same step until a new back-pointer is recorded or the destination is
// reached.
func (s *WallFollowerSearch) Step(dims maze.Dimensions, cells []maze.Cell, from, to int) (bool, error) {
	// a wall follower traverses each passage at most twice; more moves in
	// one step means it is orbiting a region that does not contain to
	budget := 4 * len(cells)
	for moves := 0; ; moves++ {
		if moves > budget {
			s.reset()
			return false, ErrDisconnected
		}
		if !s.started {
			// start of the algorithm
			s.started = true
			s.cell, s.facing = from, maze.North
			return true, nil
		}

		if s.cell == to {
			// end of algorithm; flag the path and reset state
			err := markResult(cells, from, to)
			s.reset()
			return false, err
		}

		// scan for an opening; a carved maze always offers one within four
		// rotations, so a fully walled cell means a corrupted grid
		direction := s.turn.Initial(s.facing)
		neighbour := maze.NoPrevious
		for i := 0; i < len(maze.Directions); i++ {
			if !cells[s.cell].HasWall(direction) {
				n, ok := direction.Neighbour(dims, s.cell)
				if !ok {
					s.reset()
					return false, ErrDisconnected
				}
				neighbour = n
				break
			}
			direction = s.turn.Subsequent(direction)
		}
		if neighbour == maze.NoPrevious {
			s.reset()
			return false, ErrDisconnected
		}

		backtrack := cells[neighbour].Solution.HasPrevious()
		if !backtrack {
			cells[neighbour].Solution.Previous = s.cell
		}

		s.cell, s.facing = neighbour, direction

		if !backtrack {
			return true, nil
		}
	}
}

func (s *WallFollowerSearch) reset() {
	s.started = false
	s.cell, s.facing = 0, 0
}

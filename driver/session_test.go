package driver

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/maze-lab/maze"
	"github.com/stretchr/testify/assert"
)

const (
	testGenerator = "Randomised depth first search algorithm"
	testSolver    = "A* algorithm (using Taxicab distance heuristic)"
)

// tickUntilComplete ticks a session until it reaches the complete phase,
// with a cap so a stuck session cannot hang the test.
func tickUntilComplete(t *testing.T, s *Session) *RunReport {
	t.Helper()

	limit := 1000 * s.Dimensions().Cells()
	for i := 0; i < limit; i++ {
		report, err := s.Tick()
		assert.NoError(t, err)
		if s.Phase() == PhaseComplete {
			assert.NotNil(t, report)
			return report
		}
		assert.Nil(t, report)
	}
	t.Fatalf("session did not complete within %d ticks", limit)
	return nil
}

func TestNewSession(t *testing.T) {
	t.Run("Rejects unknown generator", func(t *testing.T) {
		_, err := NewSession(maze.Dimensions{Width: 4, Height: 4}, "no such algorithm", testSolver, nil)
		assert.ErrorIs(t, err, ErrUnknownGenerator)
	})

	t.Run("Rejects unknown solver", func(t *testing.T) {
		_, err := NewSession(maze.Dimensions{Width: 4, Height: 4}, testGenerator, "no such algorithm", nil)
		assert.ErrorIs(t, err, ErrUnknownSolver)
	})

	t.Run("Rejects degenerate dimensions", func(t *testing.T) {
		_, err := NewSession(maze.Dimensions{Width: 1, Height: 8}, testGenerator, testSolver, nil)
		assert.ErrorIs(t, err, ErrNotBigEnoughDimension)
	})

	t.Run("Starts in the generate phase", func(t *testing.T) {
		s, err := NewSession(maze.Dimensions{Width: 4, Height: 4}, testGenerator, testSolver, nil)
		assert.NoError(t, err)
		assert.Equal(t, PhaseGenerate, s.Phase())
	})
}

func TestSessionLifecycle(t *testing.T) {
	dims := maze.Dimensions{Width: 6, Height: 5}
	s, err := NewSession(dims, testGenerator, testSolver, rand.New(rand.NewSource(9)))
	assert.NoError(t, err)

	report := tickUntilComplete(t, s)

	t.Run("Report describes the run", func(t *testing.T) {
		assert.Equal(t, s.ID(), report.SessionID)
		assert.Equal(t, dims, report.Dimensions)
		assert.Equal(t, testGenerator, report.Generator)
		assert.Equal(t, testSolver, report.Solver)
		assert.Positive(t, report.GenerateSteps)
		assert.Positive(t, report.SolveSteps)
		assert.Positive(t, report.PathLength)
	})

	t.Run("Endpoints carry their flags", func(t *testing.T) {
		from, to := s.Endpoints()
		assert.NotEqual(t, from, to)
		cells := s.Grid().Cells()
		assert.True(t, cells[from].Solution.From)
		assert.True(t, cells[to].Solution.To)
	})

	t.Run("Destination ends up on the path", func(t *testing.T) {
		_, to := s.Endpoints()
		assert.True(t, s.Grid().Cells()[to].Solution.Result)
	})

	t.Run("Ticking a complete session is a no-op", func(t *testing.T) {
		report, err := s.Tick()
		assert.NoError(t, err)
		assert.Nil(t, report)
		assert.Equal(t, PhaseComplete, s.Phase())
	})
}

func TestSessionResolve(t *testing.T) {
	dims := maze.Dimensions{Width: 5, Height: 5}
	s, err := NewSession(dims, testGenerator, testSolver, rand.New(rand.NewSource(31)))
	assert.NoError(t, err)

	t.Run("Rejected while still generating", func(t *testing.T) {
		assert.ErrorIs(t, s.Resolve(testSolver, false), ErrStillGenerating)
	})

	first := tickUntilComplete(t, s)

	t.Run("Rejects unknown solver", func(t *testing.T) {
		assert.ErrorIs(t, s.Resolve("no such algorithm", false), ErrUnknownSolver)
	})

	t.Run("Clears the previous solution and keeps endpoints", func(t *testing.T) {
		from, to := s.Endpoints()

		assert.NoError(t, s.Resolve("Wall follower (left turn)", false))
		assert.Equal(t, PhaseSolve, s.Phase())

		newFrom, newTo := s.Endpoints()
		assert.Equal(t, from, newFrom)
		assert.Equal(t, to, newTo)

		// all traces of the first solve are gone, walls stay carved
		for _, cell := range s.Grid().Cells() {
			assert.False(t, cell.Solution.Result)
			assert.False(t, cell.Solution.HasPrevious())
		}

		second := tickUntilComplete(t, s)
		assert.Equal(t, "Wall follower (left turn)", second.Solver)

		// the maze is a tree, so both solvers walk the same unique path
		assert.Equal(t, first.PathLength, second.PathLength)
	})

	t.Run("Redraws endpoints on request", func(t *testing.T) {
		assert.NoError(t, s.Resolve(testSolver, true))

		from, to := s.Endpoints()
		assert.NotEqual(t, from, to)
		cells := s.Grid().Cells()
		assert.True(t, cells[from].Solution.From)
		assert.True(t, cells[to].Solution.To)

		tickUntilComplete(t, s)
	})
}

func TestSessionRestart(t *testing.T) {
	s, err := NewSession(maze.Dimensions{Width: 4, Height: 4}, testGenerator, testSolver, rand.New(rand.NewSource(19)))
	assert.NoError(t, err)
	tickUntilComplete(t, s)

	t.Run("Rejects bad arguments", func(t *testing.T) {
		assert.ErrorIs(t, s.Restart(maze.Dimensions{Width: 1, Height: 4}, testGenerator, testSolver), ErrNotBigEnoughDimension)
		assert.ErrorIs(t, s.Restart(maze.Dimensions{Width: 4, Height: 4}, "no such algorithm", testSolver), ErrUnknownGenerator)
		assert.ErrorIs(t, s.Restart(maze.Dimensions{Width: 4, Height: 4}, testGenerator, "no such algorithm"), ErrUnknownSolver)
		assert.Equal(t, PhaseComplete, s.Phase())
	})

	t.Run("Begins a fresh cycle with the same identity", func(t *testing.T) {
		id := s.ID()
		dims := maze.Dimensions{Width: 5, Height: 3}

		assert.NoError(t, s.Restart(dims, "Wilson's algorithm", testSolver))
		assert.Equal(t, id, s.ID())
		assert.Equal(t, PhaseGenerate, s.Phase())
		assert.Equal(t, dims, s.Dimensions())

		// the new grid is fully walled again
		for _, cell := range s.Grid().Cells() {
			assert.Equal(t, uint8(maze.North|maze.East|maze.South|maze.West), cell.Walls())
		}

		report := tickUntilComplete(t, s)
		assert.Equal(t, "Wilson's algorithm", report.Generator)
		assert.Equal(t, dims, report.Dimensions)
	})
}

func TestSnapshot(t *testing.T) {
	s, err := NewSession(maze.Dimensions{Width: 4, Height: 3}, testGenerator, testSolver, rand.New(rand.NewSource(13)))
	assert.NoError(t, err)
	tickUntilComplete(t, s)

	snapshot := s.Snapshot()

	t.Run("Mirrors the session state", func(t *testing.T) {
		from, to := s.Endpoints()
		assert.Equal(t, s.ID(), snapshot.ID)
		assert.Equal(t, 4, snapshot.Width)
		assert.Equal(t, 3, snapshot.Height)
		assert.Equal(t, PhaseComplete, snapshot.Phase)
		assert.Equal(t, from, snapshot.From)
		assert.Equal(t, to, snapshot.To)
		assert.Len(t, snapshot.Cells, 12)
		assert.True(t, snapshot.Cells[from].From)
		assert.True(t, snapshot.Cells[to].To)
	})

	t.Run("Is a copy, not a view", func(t *testing.T) {
		from, _ := s.Endpoints()
		s.Grid().Cells()[from].Solution.From = false
		assert.True(t, snapshot.Cells[from].From)
	})
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "generate", PhaseGenerate.String())
	assert.Equal(t, "solve", PhaseSolve.String())
	assert.Equal(t, "complete", PhaseComplete.String())
}

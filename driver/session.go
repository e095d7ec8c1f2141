/*
Package driver owns one generate/solve cycle over a maze grid. A Session
holds the grid, the endpoints and the active algorithms, and advances
whichever algorithm is running by exactly one step per Tick, so an external
scheduler can call Tick once per animation frame.
*/
package driver

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/maze-lab/generate"
	"github.com/beka-birhanu/maze-lab/maze"
	"github.com/beka-birhanu/maze-lab/solve"
	"github.com/google/uuid"
)

// Session errors.
var (
	ErrUnknownGenerator      = errors.New("unknown generator")
	ErrUnknownSolver         = errors.New("unknown solver")
	ErrNotBigEnoughDimension = errors.New("dimension is not big enough")
	ErrStillGenerating       = errors.New("maze generation has not completed")
)

// minDimension is the smallest width or height with any walls to remove.
const minDimension = 2

// Phase indicates which algorithm a session is currently driving.
type Phase int

const (
	PhaseGenerate Phase = iota + 1
	PhaseSolve
	PhaseComplete
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseGenerate:
		return "generate"
	case PhaseSolve:
		return "solve"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("N/A(%d)", p)
	}
}

// RunReport summarizes one completed generate/solve cycle.
type RunReport struct {
	SessionID     uuid.UUID
	Dimensions    maze.Dimensions
	Generator     string
	Solver        string
	GenerateSteps int
	SolveSteps    int
	PathLength    int
	Duration      time.Duration
}

// Session drives one maze through generation and solving. All state is
// owned by the single execution context calling Tick; the session does no
// locking of its own.
type Session struct {
	id   uuid.UUID
	dims maze.Dimensions
	grid *maze.Grid
	rng  *rand.Rand

	generatorName string
	solverName    string
	generator     generate.Generator
	solver        solve.Solver

	phase    Phase
	from, to int

	generateSteps int
	solveSteps    int
	startedAt     time.Time
}

// NewSession creates a session with a fresh fully walled grid and the named
// algorithms, starting in the generate phase. A nil rng gets a time-seeded
// source.
func NewSession(dims maze.Dimensions, generatorName, solverName string, rng *rand.Rand) (*Session, error) {
	if min(dims.Width, dims.Height) < minDimension {
		return nil, ErrNotBigEnoughDimension
	}

	newGenerator, ok := generate.Registry[generatorName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, generatorName)
	}
	newSolver, ok := solve.Registry[solverName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, solverName)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Session{
		id:            uuid.New(),
		dims:          dims,
		grid:          maze.NewGrid(dims),
		rng:           rng,
		generatorName: generatorName,
		solverName:    solverName,
		generator:     newGenerator(rng),
		solver:        newSolver(rng),
		phase:         PhaseGenerate,
		startedAt:     time.Now(),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Dimensions returns the maze dimensions.
func (s *Session) Dimensions() maze.Dimensions {
	return s.dims
}

// Grid returns the session's grid.
func (s *Session) Grid() *maze.Grid {
	return s.grid
}

// Endpoints returns the current from and to cell indexes. Meaningful only
// after generation has completed.
func (s *Session) Endpoints() (int, int) {
	return s.from, s.to
}

// Tick advances the active algorithm by one step. It returns a non-nil
// RunReport on the tick that completes the solve phase, and nil otherwise.
// A non-nil error means a solver detected a corrupted maze; the session
// moves to the complete phase so the grid can be inspected and regenerated,
// not repaired.
func (s *Session) Tick() (*RunReport, error) {
	switch s.phase {
	case PhaseGenerate:
		s.generateSteps++
		if s.generator.Step(s.dims, s.grid.Cells()) {
			return nil, nil
		}
		s.pickEndpoints()
		s.phase = PhaseSolve
		return nil, nil
	case PhaseSolve:
		s.solveSteps++
		more, err := s.solver.Step(s.dims, s.grid.Cells(), s.from, s.to)
		if err != nil {
			s.phase = PhaseComplete
			return nil, err
		}
		if more {
			return nil, nil
		}
		s.phase = PhaseComplete
		return s.report(), nil
	default:
		// complete; nothing to advance
		return nil, nil
	}
}

// Resolve clears all solution metadata and starts a new solve phase with
// the named solver. With randomEndpoints the endpoints are redrawn at
// random; otherwise the previous pair is reused. Valid any time after
// generation has completed.
func (s *Session) Resolve(solverName string, randomEndpoints bool) error {
	if s.phase == PhaseGenerate {
		return ErrStillGenerating
	}

	newSolver, ok := solve.Registry[solverName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSolver, solverName)
	}

	s.grid.ClearSolutions()
	if randomEndpoints {
		s.pickEndpoints()
	} else {
		s.grid.Cells()[s.from].Solution.From = true
		s.grid.Cells()[s.to].Solution.To = true
	}

	s.solverName = solverName
	s.solver = newSolver(s.rng)
	s.solveSteps = 0
	s.startedAt = time.Now()
	s.phase = PhaseSolve
	return nil
}

// Restart discards the grid and begins a whole new generate/solve cycle
// with the named algorithms, keeping the session identity.
func (s *Session) Restart(dims maze.Dimensions, generatorName, solverName string) error {
	if min(dims.Width, dims.Height) < minDimension {
		return ErrNotBigEnoughDimension
	}

	newGenerator, ok := generate.Registry[generatorName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGenerator, generatorName)
	}
	newSolver, ok := solve.Registry[solverName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSolver, solverName)
	}

	s.dims = dims
	s.grid = maze.NewGrid(dims)
	s.generatorName = generatorName
	s.solverName = solverName
	s.generator = newGenerator(s.rng)
	s.solver = newSolver(s.rng)
	s.from, s.to = 0, 0
	s.generateSteps = 0
	s.solveSteps = 0
	s.startedAt = time.Now()
	s.phase = PhaseGenerate
	return nil
}

// pickEndpoints draws distinct random from/to cells and seeds their flags.
func (s *Session) pickEndpoints() {
	cells := s.grid.Cells()
	s.from = s.rng.Intn(len(cells))
	s.to = s.rng.Intn(len(cells))
	for s.to == s.from {
		s.to = s.rng.Intn(len(cells))
	}
	cells[s.from].Solution.From = true
	cells[s.to].Solution.To = true
}

// report builds the summary of the completed cycle. The path length is the
// number of moves on the final path, i.e. the count of result-flagged
// cells.
func (s *Session) report() *RunReport {
	pathLength := 0
	for i := range s.grid.Cells() {
		if s.grid.Cells()[i].Solution.Result {
			pathLength++
		}
	}
	return &RunReport{
		SessionID:     s.id,
		Dimensions:    s.dims,
		Generator:     s.generatorName,
		Solver:        s.solverName,
		GenerateSteps: s.generateSteps,
		SolveSteps:    s.solveSteps,
		PathLength:    pathLength,
		Duration:      time.Since(s.startedAt),
	}
}

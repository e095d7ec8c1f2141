package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-lab/domain"
	"github.com/google/uuid"
)

// Scoreboard ranks completed runs per solver by step count.
type Scoreboard interface {
	// Record adds a run to the solver's ranking.
	Record(ctx context.Context, solver string, runID uuid.UUID, solveSteps int) error

	// Top returns the best entries for a solver, fewest steps first.
	Top(ctx context.Context, solver string, n int) ([]dmn.ScoreEntry, error)
}

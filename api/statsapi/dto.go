package statsapi

import (
	"time"

	dmn "github.com/beka-birhanu/maze-lab/domain"
)

// RunResponse represents one completed run in history listings.
type RunResponse struct {
	ID            string    `json:"id"`
	Width         int       `json:"width"`
	Height        int       `json:"height"`
	Generator     string    `json:"generator"`
	Solver        string    `json:"solver"`
	GenerateSteps int       `json:"generate_steps"`
	SolveSteps    int       `json:"solve_steps"`
	PathLength    int       `json:"path_length"`
	DurationMs    int64     `json:"duration_ms"`
	CreatedAt     time.Time `json:"created_at"`
}

// ScoreResponse represents one leaderboard row.
type ScoreResponse struct {
	RunID      string `json:"run_id"`
	SolveSteps int    `json:"solve_steps"`
}

func toRunResponse(run *dmn.Run) RunResponse {
	return RunResponse{
		ID:            run.ID.String(),
		Width:         run.Width,
		Height:        run.Height,
		Generator:     run.Generator,
		Solver:        run.Solver,
		GenerateSteps: run.GenerateSteps,
		SolveSteps:    run.SolveSteps,
		PathLength:    run.PathLength,
		DurationMs:    run.Duration.Milliseconds(),
		CreatedAt:     run.CreatedAt,
	}
}

// Package mazeapi exposes live maze sessions over HTTP and streams their
// progress to rendering clients.
package mazeapi

import (
	"github.com/beka-birhanu/maze-lab/driver"
)

// CreateMazeRequest represents a request to start a new maze session.
type CreateMazeRequest struct {
	Width     int    `json:"width" binding:"required"`
	Height    int    `json:"height" binding:"required"`
	Generator string `json:"generator" binding:"required"`
	Solver    string `json:"solver" binding:"required"`
}

// SolveRequest represents a request to re-solve a completed maze.
type SolveRequest struct {
	Solver          string `json:"solver" binding:"required"`
	RandomEndpoints bool   `json:"random_endpoints"`
}

// RestartRequest represents a request to regenerate a maze from scratch.
type RestartRequest struct {
	Width     int    `json:"width" binding:"required"`
	Height    int    `json:"height" binding:"required"`
	Generator string `json:"generator" binding:"required"`
	Solver    string `json:"solver" binding:"required"`
}

// AlgorithmsResponse lists the registered algorithm names.
type AlgorithmsResponse struct {
	Generators []string `json:"generators"`
	Solvers    []string `json:"solvers"`
}

// CellState is the rendering view of one cell. Walls is the four-bit mask
// in North, East, South, West bit order; Previous is -1 when the cell has
// no back-pointer.
type CellState struct {
	Walls    uint8 `json:"walls"`
	Visited  bool  `json:"visited"`
	From     bool  `json:"from"`
	To       bool  `json:"to"`
	Previous int   `json:"previous"`
	Result   bool  `json:"result"`
}

// SnapshotResponse is a point-in-time view of a session, also used as the
// frame format on the watch stream.
type SnapshotResponse struct {
	ID            string      `json:"id"`
	Width         int         `json:"width"`
	Height        int         `json:"height"`
	Phase         string      `json:"phase"`
	Generator     string      `json:"generator"`
	Solver        string      `json:"solver"`
	From          int         `json:"from"`
	To            int         `json:"to"`
	GenerateSteps int         `json:"generate_steps"`
	SolveSteps    int         `json:"solve_steps"`
	Cells         []CellState `json:"cells"`
}

// toSnapshotResponse converts a driver snapshot into its wire form.
func toSnapshotResponse(snapshot driver.Snapshot) SnapshotResponse {
	response := SnapshotResponse{
		ID:            snapshot.ID.String(),
		Width:         snapshot.Width,
		Height:        snapshot.Height,
		Phase:         snapshot.Phase.String(),
		Generator:     snapshot.Generator,
		Solver:        snapshot.Solver,
		From:          snapshot.From,
		To:            snapshot.To,
		GenerateSteps: snapshot.GenerateSteps,
		SolveSteps:    snapshot.SolveSteps,
		Cells:         make([]CellState, len(snapshot.Cells)),
	}
	for i, cell := range snapshot.Cells {
		response.Cells[i] = CellState{
			Walls:    cell.Walls,
			Visited:  cell.Visited,
			From:     cell.From,
			To:       cell.To,
			Previous: cell.Previous,
			Result:   cell.Result,
		}
	}
	return response
}

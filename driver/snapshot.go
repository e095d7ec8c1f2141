package driver

import (
	"github.com/google/uuid"
)

// CellSnapshot is the rendering view of one cell: everything a drawing
// surface reads and nothing it can mutate.
type CellSnapshot struct {
	Walls    uint8
	Visited  bool
	From     bool
	To       bool
	Previous int
	Result   bool
}

// Snapshot is a point-in-time copy of a session's observable state, safe to
// hand across goroutines.
type Snapshot struct {
	ID            uuid.UUID
	Width         int
	Height        int
	Phase         Phase
	Generator     string
	Solver        string
	From          int
	To            int
	GenerateSteps int
	SolveSteps    int
	Cells         []CellSnapshot
}

// Snapshot copies the session's observable state.
func (s *Session) Snapshot() Snapshot {
	cells := s.grid.Cells()
	snapshot := Snapshot{
		ID:            s.id,
		Width:         s.dims.Width,
		Height:        s.dims.Height,
		Phase:         s.phase,
		Generator:     s.generatorName,
		Solver:        s.solverName,
		From:          s.from,
		To:            s.to,
		GenerateSteps: s.generateSteps,
		SolveSteps:    s.solveSteps,
		Cells:         make([]CellSnapshot, len(cells)),
	}
	for i := range cells {
		cell := &cells[i]
		snapshot.Cells[i] = CellSnapshot{
			Walls:    cell.Walls(),
			Visited:  cell.Visited(),
			From:     cell.Solution.From,
			To:       cell.Solution.To,
			Previous: cell.Solution.Previous,
			Result:   cell.Solution.Result,
		}
	}
	return snapshot
}

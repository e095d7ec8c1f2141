package i

import (
	dmn "github.com/beka-birhanu/maze-lab/domain"
)

// RunRepo defines the interface for run history persistence.
type RunRepo interface {
	// Save inserts a completed run record.
	Save(run *dmn.Run) error

	// Recent retrieves the most recent runs, newest first.
	Recent(limit int) ([]*dmn.Run, error)
}

package i

import (
	"github.com/beka-birhanu/maze-lab/driver"
	"github.com/google/uuid"
)

// SessionManager runs live maze sessions and exposes their state.
type SessionManager interface {
	// Create starts a new session with the given dimensions and algorithm
	// names, returning its initial snapshot. Dimensions outside the
	// configured bounds are clamped before reaching the core.
	Create(width, height int, generator, solver string) (driver.Snapshot, error)

	// Get returns the current snapshot of a session.
	Get(id uuid.UUID) (driver.Snapshot, error)

	// Resolve starts a new solve phase on a completed session.
	Resolve(id uuid.UUID, solver string, randomEndpoints bool) (driver.Snapshot, error)

	// Restart begins a whole new generate/solve cycle on a session,
	// discarding its grid. Dimensions are clamped like Create's.
	Restart(id uuid.UUID, width, height int, generator, solver string) (driver.Snapshot, error)

	// Remove stops a session and releases its resources.
	Remove(id uuid.UUID) error

	// Watch subscribes to a session's snapshot stream. The returned cancel
	// function releases the subscription; the channel closes when the
	// session is removed.
	Watch(id uuid.UUID) (<-chan driver.Snapshot, func(), error)

	// Algorithms returns the registered generator and solver names.
	Algorithms() (generators []string, solvers []string)
}

// Package service hosts the application services that tie the maze driver
// to transport, persistence and ranking.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/maze-lab/domain"
	"github.com/beka-birhanu/maze-lab/driver"
	"github.com/beka-birhanu/maze-lab/generate"
	"github.com/beka-birhanu/maze-lab/maze"
	"github.com/beka-birhanu/maze-lab/solve"
	"github.com/beka-birhanu/maze-lab/service/i"
	"github.com/google/uuid"
)

// Service errors.
var (
	ErrNilLogger       = errors.New("logger is required")
	ErrSessionNotFound = errors.New("session not found")
)

const (
	defaultTickInterval = 25 * time.Millisecond
	defaultMaxDimension = 100
	minDimension        = 2

	// subscriberBuffer bounds each watcher's queue; slow watchers miss
	// frames rather than stalling the tick loop.
	subscriberBuffer = 16

	recordTimeout = 2 * time.Second
)

// Config holds the settings for a SessionManager.
type Config struct {
	TickInterval time.Duration // Time between algorithm steps
	MaxDimension int           // Upper clamp for maze width and height
	RunRepo      i.RunRepo     // Optional run history sink
	Scoreboard   i.Scoreboard  // Optional leaderboard sink
	Logger       i.Logger
}

// SessionManager owns the live maze sessions. Each session runs on its own
// goroutine driven by a ticker, stepping the active algorithm once per tick
// and fanning snapshots out to watchers. The core session state is only
// ever touched by its runner under the runner lock, so the single-owner
// contract of the driver holds.
type SessionManager struct {
	mu      sync.RWMutex
	runners map[uuid.UUID]*runner

	tickInterval time.Duration
	maxDimension int
	runRepo      i.RunRepo
	scoreboard   i.Scoreboard
	logger       i.Logger
}

// runner pairs a session with its subscribers and stop signal.
type runner struct {
	mu             sync.Mutex
	session        *driver.Session
	subscribers    map[int]chan driver.Snapshot
	nextSubscriber int
	stop           chan struct{}
	stopped        bool
}

// NewSessionManager creates a SessionManager. RunRepo and Scoreboard may be
// nil, in which case completed runs are only logged.
func NewSessionManager(cfg Config) (*SessionManager, error) {
	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultTickInterval
	}
	if cfg.MaxDimension < minDimension {
		cfg.MaxDimension = defaultMaxDimension
	}
	return &SessionManager{
		runners:      make(map[uuid.UUID]*runner),
		tickInterval: cfg.TickInterval,
		maxDimension: cfg.MaxDimension,
		runRepo:      cfg.RunRepo,
		scoreboard:   cfg.Scoreboard,
		logger:       cfg.Logger,
	}, nil
}

// Create starts a new session. Dimensions are clamped to the configured
// bounds before they reach the core.
func (m *SessionManager) Create(width, height int, generator, solver string) (driver.Snapshot, error) {
	dims := maze.Dimensions{
		Width:  clamp(width, minDimension, m.maxDimension),
		Height: clamp(height, minDimension, m.maxDimension),
	}

	session, err := driver.NewSession(dims, generator, solver, nil)
	if err != nil {
		return driver.Snapshot{}, err
	}

	r := &runner{
		session:     session,
		subscribers: make(map[int]chan driver.Snapshot),
		stop:        make(chan struct{}),
	}

	m.mu.Lock()
	m.runners[session.ID()] = r
	m.mu.Unlock()

	go m.loop(r)

	m.logger.Info(fmt.Sprintf("session %s created: %dx%d, %q / %q", session.ID(), dims.Width, dims.Height, generator, solver))
	return session.Snapshot(), nil
}

// Get returns the current snapshot of a session.
func (m *SessionManager) Get(id uuid.UUID) (driver.Snapshot, error) {
	r, err := m.runner(id)
	if err != nil {
		return driver.Snapshot{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Snapshot(), nil
}

// Resolve starts a new solve phase on a session whose generation has
// completed.
func (m *SessionManager) Resolve(id uuid.UUID, solver string, randomEndpoints bool) (driver.Snapshot, error) {
	r, err := m.runner(id)
	if err != nil {
		return driver.Snapshot{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.session.Resolve(solver, randomEndpoints); err != nil {
		return driver.Snapshot{}, err
	}
	return r.session.Snapshot(), nil
}

// Restart begins a whole new generate/solve cycle on a session, discarding
// its grid. Dimensions are clamped like Create's.
func (m *SessionManager) Restart(id uuid.UUID, width, height int, generator, solver string) (driver.Snapshot, error) {
	r, err := m.runner(id)
	if err != nil {
		return driver.Snapshot{}, err
	}

	dims := maze.Dimensions{
		Width:  clamp(width, minDimension, m.maxDimension),
		Height: clamp(height, minDimension, m.maxDimension),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.session.Restart(dims, generator, solver); err != nil {
		return driver.Snapshot{}, err
	}
	return r.session.Snapshot(), nil
}

// Remove stops a session's runner and closes all its watcher channels.
func (m *SessionManager) Remove(id uuid.UUID) error {
	m.mu.Lock()
	r, ok := m.runners[id]
	if ok {
		delete(m.runners, id)
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	close(r.stop)
	m.logger.Info(fmt.Sprintf("session %s removed", id))
	return nil
}

// Watch subscribes to a session's snapshot stream.
func (m *SessionManager) Watch(id uuid.UUID) (<-chan driver.Snapshot, func(), error) {
	r, err := m.runner(id)
	if err != nil {
		return nil, nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return nil, nil, ErrSessionNotFound
	}

	subscriber := r.nextSubscriber
	r.nextSubscriber++
	ch := make(chan driver.Snapshot, subscriberBuffer)
	r.subscribers[subscriber] = ch

	cancel := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if existing, ok := r.subscribers[subscriber]; ok {
			delete(r.subscribers, subscriber)
			close(existing)
		}
	}
	return ch, cancel, nil
}

// Algorithms returns the registered generator and solver names.
func (m *SessionManager) Algorithms() ([]string, []string) {
	return generate.Names(), solve.Names()
}

func (m *SessionManager) runner(id uuid.UUID) (*runner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.runners[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return r, nil
}

// loop drives one session until it is removed.
func (m *SessionManager) loop(r *runner) {
	ticker := time.NewTicker(m.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			r.mu.Lock()
			r.stopped = true
			for subscriber, ch := range r.subscribers {
				delete(r.subscribers, subscriber)
				close(ch)
			}
			r.mu.Unlock()
			return
		case <-ticker.C:
			r.mu.Lock()
			if r.session.Phase() == driver.PhaseComplete {
				r.mu.Unlock()
				continue
			}

			report, err := r.session.Tick()
			snapshot := r.session.Snapshot()
			for _, ch := range r.subscribers {
				select {
				case ch <- snapshot:
				default:
					// slow watcher; skip this frame
				}
			}
			r.mu.Unlock()

			if err != nil {
				m.logger.Error(fmt.Sprintf("session %s: %v", snapshot.ID, err))
				continue
			}
			if report != nil {
				m.record(report)
			}
		}
	}
}

// record persists a completed run and feeds the leaderboard.
func (m *SessionManager) record(report *driver.RunReport) {
	m.logger.Info(fmt.Sprintf(
		"session %s solved: %q found a %d-move path in %d steps",
		report.SessionID, report.Solver, report.PathLength, report.SolveSteps,
	))

	run := &dmn.Run{
		ID:            uuid.New(),
		Width:         report.Dimensions.Width,
		Height:        report.Dimensions.Height,
		Generator:     report.Generator,
		Solver:        report.Solver,
		GenerateSteps: report.GenerateSteps,
		SolveSteps:    report.SolveSteps,
		PathLength:    report.PathLength,
		Duration:      report.Duration,
		CreatedAt:     time.Now(),
	}

	if m.runRepo != nil {
		if err := m.runRepo.Save(run); err != nil {
			m.logger.Error(fmt.Sprintf("saving run %s: %v", run.ID, err))
		}
	}

	if m.scoreboard != nil {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := m.scoreboard.Record(ctx, run.Solver, run.ID, run.SolveSteps); err != nil {
			m.logger.Error(fmt.Sprintf("recording run %s on scoreboard: %v", run.ID, err))
		}
	}
}

func clamp(v, low, high int) int {
	return max(low, min(v, high))
}

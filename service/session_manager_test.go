package service

import (
	"context"
	"sync"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/maze-lab/domain"
	"github.com/beka-birhanu/maze-lab/driver"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const (
	testGenerator = "Randomised depth first search algorithm"
	testSolver    = "Dijkstra's algorithm (A* algorithm without heuristic)"
)

type nopLogger struct{}

func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(string) {}

// memoryRunRepo records saved runs in memory.
type memoryRunRepo struct {
	mu   sync.Mutex
	runs []*dmn.Run
}

func (r *memoryRunRepo) Save(run *dmn.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, run)
	return nil
}

func (r *memoryRunRepo) Recent(limit int) ([]*dmn.Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit > len(r.runs) {
		limit = len(r.runs)
	}
	return r.runs[len(r.runs)-limit:], nil
}

func (r *memoryRunRepo) saved() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.runs)
}

// memoryScoreboard records leaderboard entries in memory.
type memoryScoreboard struct {
	mu      sync.Mutex
	entries map[string][]dmn.ScoreEntry
}

func (s *memoryScoreboard) Record(_ context.Context, solver string, runID uuid.UUID, solveSteps int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries == nil {
		s.entries = make(map[string][]dmn.ScoreEntry)
	}
	s.entries[solver] = append(s.entries[solver], dmn.ScoreEntry{RunID: runID, SolveSteps: solveSteps})
	return nil
}

func (s *memoryScoreboard) Top(_ context.Context, solver string, n int) ([]dmn.ScoreEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.entries[solver]
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n], nil
}

func newTestManager(t *testing.T, repo *memoryRunRepo, board *memoryScoreboard) *SessionManager {
	t.Helper()

	cfg := Config{
		TickInterval: time.Millisecond,
		MaxDimension: 10,
		Logger:       nopLogger{},
	}
	if repo != nil {
		cfg.RunRepo = repo
	}
	if board != nil {
		cfg.Scoreboard = board
	}

	m, err := NewSessionManager(cfg)
	assert.NoError(t, err)
	return m
}

// waitForPhase polls a session until it reaches the wanted phase.
func waitForPhase(t *testing.T, m *SessionManager, id uuid.UUID, want driver.Phase) driver.Snapshot {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		snapshot, err := m.Get(id)
		assert.NoError(t, err)
		if snapshot.Phase == want {
			return snapshot
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("session %s never reached phase %s", id, want)
	return driver.Snapshot{}
}

func TestSessionManagerRequiresLogger(t *testing.T) {
	_, err := NewSessionManager(Config{})
	assert.ErrorIs(t, err, ErrNilLogger)
}

func TestSessionManagerLifecycle(t *testing.T) {
	repo := &memoryRunRepo{}
	board := &memoryScoreboard{}
	m := newTestManager(t, repo, board)

	snapshot, err := m.Create(4, 4, testGenerator, testSolver)
	assert.NoError(t, err)
	id := snapshot.ID

	t.Run("Runs the session to completion", func(t *testing.T) {
		final := waitForPhase(t, m, id, driver.PhaseComplete)
		assert.Equal(t, 4, final.Width)
		assert.Equal(t, 4, final.Height)
		assert.Positive(t, final.SolveSteps)
	})

	t.Run("Records the completed run", func(t *testing.T) {
		deadline := time.Now().Add(5 * time.Second)
		for repo.saved() == 0 && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}
		assert.Equal(t, 1, repo.saved())

		top, err := board.Top(context.Background(), testSolver, 10)
		assert.NoError(t, err)
		assert.Len(t, top, 1)
	})

	t.Run("Resolve starts a second solve", func(t *testing.T) {
		snapshot, err := m.Resolve(id, "Wall follower (right turn)", true)
		assert.NoError(t, err)
		assert.Equal(t, driver.PhaseSolve, snapshot.Phase)

		waitForPhase(t, m, id, driver.PhaseComplete)
	})

	t.Run("Restart regenerates from scratch", func(t *testing.T) {
		snapshot, err := m.Restart(id, 5, 5, testGenerator, testSolver)
		assert.NoError(t, err)
		assert.Equal(t, driver.PhaseGenerate, snapshot.Phase)
		assert.Equal(t, 5, snapshot.Width)

		waitForPhase(t, m, id, driver.PhaseComplete)
	})

	t.Run("Remove forgets the session", func(t *testing.T) {
		assert.NoError(t, m.Remove(id))
		_, err := m.Get(id)
		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.ErrorIs(t, m.Remove(id), ErrSessionNotFound)
	})
}

func TestSessionManagerCreateValidation(t *testing.T) {
	m := newTestManager(t, nil, nil)

	t.Run("Rejects unknown algorithms", func(t *testing.T) {
		_, err := m.Create(4, 4, "no such algorithm", testSolver)
		assert.ErrorIs(t, err, driver.ErrUnknownGenerator)

		_, err = m.Create(4, 4, testGenerator, "no such algorithm")
		assert.ErrorIs(t, err, driver.ErrUnknownSolver)
	})

	t.Run("Clamps oversized dimensions", func(t *testing.T) {
		snapshot, err := m.Create(500, 1, testGenerator, testSolver)
		assert.NoError(t, err)
		assert.Equal(t, 10, snapshot.Width)
		assert.Equal(t, 2, snapshot.Height)
		assert.NoError(t, m.Remove(snapshot.ID))
	})
}

func TestSessionManagerWatch(t *testing.T) {
	m := newTestManager(t, nil, nil)

	snapshot, err := m.Create(4, 4, testGenerator, testSolver)
	assert.NoError(t, err)
	id := snapshot.ID

	t.Run("Streams snapshots until cancelled", func(t *testing.T) {
		ch, cancel, err := m.Watch(id)
		assert.NoError(t, err)

		select {
		case frame, ok := <-ch:
			assert.True(t, ok)
			assert.Equal(t, id, frame.ID)
		case <-time.After(5 * time.Second):
			t.Fatal("no snapshot arrived")
		}

		cancel()
		cancel() // idempotent
	})

	t.Run("Closes watcher channels on removal", func(t *testing.T) {
		ch, _, err := m.Watch(id)
		assert.NoError(t, err)
		assert.NoError(t, m.Remove(id))

		deadline := time.After(5 * time.Second)
		for {
			select {
			case _, ok := <-ch:
				if !ok {
					return
				}
			case <-deadline:
				t.Fatal("watcher channel never closed")
			}
		}
	})

	t.Run("Unknown session", func(t *testing.T) {
		_, _, err := m.Watch(uuid.New())
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestSessionManagerAlgorithms(t *testing.T) {
	m := newTestManager(t, nil, nil)

	generators, solvers := m.Algorithms()
	assert.Contains(t, generators, "Wilson's algorithm")
	assert.Contains(t, solvers, "Wall follower (left turn)")
}

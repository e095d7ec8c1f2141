// Package scoreboard ranks completed runs per solver in Redis sorted sets.
package scoreboard

import (
	"context"
	"fmt"

	dmn "github.com/beka-birhanu/maze-lab/domain"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// default prefix for redis keys
	defaultPrefix = "scoreboard"

	// default number of entries kept per solver
	defaultMaxEntries int64 = 100

	// sorted set key string format
	solverKeyFmt = "%s:solver:%s"

	// lock key string format
	lockKeyFmt = "%s:solver:%s:lock"
)

// Options configures a RedisScoreboard.
type Options struct {
	// Prefix for all redis keys.
	Prefix string

	// MaxEntries kept per solver; worse entries are trimmed away.
	MaxEntries int64
}

// RedisScoreboard keeps one sorted set per solver, scored by solve step
// count so that the fewest steps rank first.
type RedisScoreboard struct {
	// Redis client
	client *redis.Client

	// Redis lock to guard the read-and-trim after each insert
	locker *redsync.Redsync

	// Scoreboard options
	opts *Options
}

// NewScoreboard creates a new RedisScoreboard with the provided Redis
// client and options.
func NewScoreboard(client *redis.Client, opts *Options) (*RedisScoreboard, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = defaultMaxEntries
	}

	board := &RedisScoreboard{
		client: client,
		opts:   opts,
	}
	pool := goredis.NewPool(board.client)
	board.locker = redsync.New(pool)
	return board, nil
}

// Record adds a run to the solver's ranking and trims the set back to the
// configured size.
func (s *RedisScoreboard) Record(ctx context.Context, solver string, runID uuid.UUID, solveSteps int) error {
	key := fmt.Sprintf(solverKeyFmt, s.opts.Prefix, solver)

	mutex := s.locker.NewMutex(fmt.Sprintf(lockKeyFmt, s.opts.Prefix, solver))
	if err := mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("locking scoreboard: %w", err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	err := s.client.ZAdd(ctx, key, redis.Z{
		Score:  float64(solveSteps),
		Member: runID.String(),
	}).Err()
	if err != nil {
		return fmt.Errorf("adding run to scoreboard: %w", err)
	}

	// keep only the best MaxEntries; ascending rank is ascending score
	if err := s.client.ZRemRangeByRank(ctx, key, s.opts.MaxEntries, -1).Err(); err != nil {
		return fmt.Errorf("trimming scoreboard: %w", err)
	}

	return nil
}

// Top returns the best entries for a solver, fewest steps first.
func (s *RedisScoreboard) Top(ctx context.Context, solver string, n int) ([]dmn.ScoreEntry, error) {
	key := fmt.Sprintf(solverKeyFmt, s.opts.Prefix, solver)

	members, err := s.client.ZRangeWithScores(ctx, key, 0, int64(n)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading scoreboard: %w", err)
	}

	entries := make([]dmn.ScoreEntry, 0, len(members))
	for _, member := range members {
		id, err := uuid.Parse(fmt.Sprint(member.Member))
		if err != nil {
			continue
		}
		entries = append(entries, dmn.ScoreEntry{
			RunID:      id,
			SolveSteps: int(member.Score),
		})
	}
	return entries, nil
}

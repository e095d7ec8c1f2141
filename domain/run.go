// Package domain holds the persistent models of the application.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Run records one completed generate/solve cycle for history and ranking.
type Run struct {
	ID            uuid.UUID     `bson:"_id"`
	Width         int           `bson:"width"`
	Height        int           `bson:"height"`
	Generator     string        `bson:"generator"`
	Solver        string        `bson:"solver"`
	GenerateSteps int           `bson:"generateSteps"`
	SolveSteps    int           `bson:"solveSteps"`
	PathLength    int           `bson:"pathLength"`
	Duration      time.Duration `bson:"duration"`
	CreatedAt     time.Time     `bson:"createdAt"`
}

// ScoreEntry is one leaderboard row: a run and the number of solver steps
// it took, fewer being better.
type ScoreEntry struct {
	RunID      uuid.UUID
	SolveSteps int
}

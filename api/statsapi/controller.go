// Package statsapi serves run history and solver leaderboards.
package statsapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/maze-lab/service/i"
	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 20
	maxLimit     = 100

	queryTimeout = 2 * time.Second
)

// Controller serves statistics over completed runs.
type Controller struct {
	runs       i.RunRepo
	scoreboard i.Scoreboard
}

// NewController initializes a stats Controller.
func NewController(runs i.RunRepo, scoreboard i.Scoreboard) (*Controller, error) {
	if runs == nil || scoreboard == nil {
		return nil, errors.New("run repo and scoreboard are required")
	}
	return &Controller{
		runs:       runs,
		scoreboard: scoreboard,
	}, nil
}

// Register registers the stats routes.
func (c *Controller) Register(route *gin.RouterGroup) {
	stats := route.Group("/stats")
	{
		stats.GET("/runs", c.recentRuns)
		stats.GET("/leaderboard", c.leaderboard)
	}
}

// recentRuns returns the most recent completed runs.
func (c *Controller) recentRuns(ctx *gin.Context) {
	runs, err := c.runs.Recent(limitParam(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading runs"})
		return
	}

	response := make([]RunResponse, len(runs))
	for i, run := range runs {
		response[i] = toRunResponse(run)
	}
	ctx.JSON(http.StatusOK, response)
}

// leaderboard returns the best runs for one solver, fewest steps first.
func (c *Controller) leaderboard(ctx *gin.Context) {
	solver := ctx.Query("solver")
	if solver == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "solver is required"})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	entries, err := c.scoreboard.Top(timeoutCtx, solver, limitParam(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading leaderboard"})
		return
	}

	response := make([]ScoreResponse, len(entries))
	for i, entry := range entries {
		response[i] = ScoreResponse{
			RunID:      entry.RunID.String(),
			SolveSteps: entry.SolveSteps,
		}
	}
	ctx.JSON(http.StatusOK, response)
}

// limitParam reads the limit query parameter, bounded to [1, maxLimit].
func limitParam(ctx *gin.Context) int {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

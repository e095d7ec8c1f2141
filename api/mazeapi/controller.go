package mazeapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/beka-birhanu/maze-lab/driver"
	"github.com/beka-birhanu/maze-lab/service"
	"github.com/beka-birhanu/maze-lab/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Controller manages maze session operations.
type Controller struct {
	sessions i.SessionManager
	logger   i.Logger
	upgrader websocket.Upgrader
}

// NewController initializes a maze Controller.
func NewController(sessions i.SessionManager, logger i.Logger) (*Controller, error) {
	if sessions == nil {
		return nil, errors.New("session manager is required")
	}
	return &Controller{
		sessions: sessions,
		logger:   logger,
		upgrader: websocket.Upgrader{
			// rendering clients are served from anywhere
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}, nil
}

// Register registers the maze routes.
func (c *Controller) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/algorithms", c.algorithms)
		mazes.POST("/", c.create)
		mazes.GET("/:ID", c.snapshot)
		mazes.POST("/:ID/solve", c.solve)
		mazes.POST("/:ID/restart", c.restart)
		mazes.DELETE("/:ID", c.remove)
		mazes.GET("/:ID/watch", c.watch)
	}
}

// algorithms lists the registered generator and solver names.
func (c *Controller) algorithms(ctx *gin.Context) {
	generators, solvers := c.sessions.Algorithms()
	ctx.JSON(http.StatusOK, AlgorithmsResponse{
		Generators: generators,
		Solvers:    solvers,
	})
}

// create handles session creation requests.
func (c *Controller) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := c.sessions.Create(request.Width, request.Height, request.Generator, request.Solver)
	if err != nil {
		if errors.Is(err, driver.ErrUnknownGenerator) || errors.Is(err, driver.ErrUnknownSolver) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, toSnapshotResponse(snapshot))
}

// snapshot retrieves the current state of a session.
func (c *Controller) snapshot(ctx *gin.Context) {
	id, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	snapshot, err := c.sessions.Get(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no session"})
		return
	}

	ctx.JSON(http.StatusOK, toSnapshotResponse(snapshot))
}

// solve restarts the solve phase of a completed session.
func (c *Controller) solve(ctx *gin.Context) {
	id, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := c.sessions.Resolve(id, request.Solver, request.RandomEndpoints)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "no session"})
		case errors.Is(err, driver.ErrUnknownSolver), errors.Is(err, driver.ErrStillGenerating):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while solving maze"})
		}
		return
	}

	ctx.JSON(http.StatusOK, toSnapshotResponse(snapshot))
}

// restart regenerates a session's maze from scratch.
func (c *Controller) restart(ctx *gin.Context) {
	id, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	var request RestartRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := c.sessions.Restart(id, request.Width, request.Height, request.Generator, request.Solver)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "no session"})
		case errors.Is(err, driver.ErrUnknownGenerator), errors.Is(err, driver.ErrUnknownSolver):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while restarting maze"})
		}
		return
	}

	ctx.JSON(http.StatusOK, toSnapshotResponse(snapshot))
}

// remove stops and deletes a session.
func (c *Controller) remove(ctx *gin.Context) {
	id, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	if err := c.sessions.Remove(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no session"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// watch upgrades to a websocket and streams snapshot frames until the
// session ends or the client disconnects.
func (c *Controller) watch(ctx *gin.Context) {
	id, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	frames, cancel, err := c.sessions.Watch(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no session"})
		return
	}
	defer cancel()

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error(fmt.Sprintf("websocket upgrade: %v", err))
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	// drain client frames so close messages are processed
	go func() {
		for {
			if _, _, err := conn.NextReader(); err != nil {
				cancel()
				return
			}
		}
	}()

	for snapshot := range frames {
		if err := conn.WriteJSON(toSnapshotResponse(snapshot)); err != nil {
			return
		}
	}
}

// sessionID parses the ID path parameter, replying 400 on failure.
func (c *Controller) sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	idString := ctx.Params.ByName("ID")
	id, err := uuid.Parse(idString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return uuid.Nil, false
	}
	return id, true
}

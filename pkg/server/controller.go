package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mazelott/pkg/engine/world"
	"mazelott/pkg/game/gameplay"
	"mazelott/pkg/game/state"
)

// Errors mapped to client responses
var (
	ErrBadMove      = errors.New("move needs x and y or a direction")
	ErrNoAnswer     = errors.New("treasure answer needs accept")
	ErrUnfurnished  = errors.New("maze has no exit or treasure")
	ErrUnknownFrame = errors.New("unknown message type")
)

// MazeController serves the maze session routes.
type MazeController struct {
	registry *Registry
	defaults gameplay.Options
	now      func() time.Time
}

// NewMazeController creates a controller over registry. defaults supplies the
// session options a request does not set.
func NewMazeController(registry *Registry, defaults gameplay.Options) *MazeController {
	return &MazeController{registry: registry, defaults: defaults, now: time.Now}
}

// Register registers the maze routes on route.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.get)
		mazes.DELETE("/:ID", mc.delete)
		mazes.POST("/:ID/moves", mc.move)
		mazes.POST("/:ID/treasure", mc.treasure)
		mazes.POST("/:ID/reset", mc.reset)
		mazes.POST("/:ID/regenerate", mc.regenerate)
		mazes.GET("/:ID/route", mc.route)
		mazes.GET("/:ID/ws", mc.live)
	}
}

// create handles new session requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := mc.defaults
	opts.Width, opts.Height, opts.Seed = request.Width, request.Height, request.Seed

	session, err := mc.registry.Create(opts)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	var snap state.Snapshot
	session.Do(func(g *state.Game) { snap = g.Snapshot(mc.now()) })
	ctx.JSON(http.StatusCreated, MazeResponse{ID: session.ID, Snapshot: snap})
}

// session resolves the :ID parameter, answering 400/404 itself on failure.
func (mc *MazeController) session(ctx *gin.Context) (*Session, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return nil, false
	}
	session, err := mc.registry.Get(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, false
	}
	return session, true
}

func (mc *MazeController) get(ctx *gin.Context) {
	session, ok := mc.session(ctx)
	if !ok {
		return
	}
	var snap state.Snapshot
	session.Do(func(g *state.Game) { snap = g.Snapshot(mc.now()) })
	ctx.JSON(http.StatusOK, MazeResponse{ID: session.ID, Snapshot: snap})
}

func (mc *MazeController) delete(ctx *gin.Context) {
	session, ok := mc.session(ctx)
	if !ok {
		return
	}
	if err := mc.registry.Delete(session.ID); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (mc *MazeController) move(ctx *gin.Context) {
	session, ok := mc.session(ctx)
	if !ok {
		return
	}
	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		response MoveResponse
		err      error
	)
	session.Do(func(g *state.Game) {
		response.Result, err = applyMove(g, request.X, request.Y, request.Direction)
		response.Snapshot = g.Snapshot(mc.now())
	})
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (mc *MazeController) treasure(ctx *gin.Context) {
	session, ok := mc.session(ctx)
	if !ok {
		return
	}
	var request TreasureRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		snap state.Snapshot
		err  error
	)
	session.Do(func(g *state.Game) {
		err = gameplay.ConfirmTreasure(g, *request.Accept)
		snap = g.Snapshot(mc.now())
	})
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, MazeResponse{ID: session.ID, Snapshot: snap})
}

func (mc *MazeController) reset(ctx *gin.Context) {
	session, ok := mc.session(ctx)
	if !ok {
		return
	}
	var snap state.Snapshot
	session.Do(func(g *state.Game) {
		gameplay.Reset(g)
		snap = g.Snapshot(mc.now())
	})
	ctx.JSON(http.StatusOK, MazeResponse{ID: session.ID, Snapshot: snap})
}

func (mc *MazeController) regenerate(ctx *gin.Context) {
	session, ok := mc.session(ctx)
	if !ok {
		return
	}
	var (
		snap state.Snapshot
		err  error
	)
	session.Do(func(g *state.Game) {
		err = gameplay.Regenerate(g)
		snap = g.Snapshot(mc.now())
	})
	if gameplay.IsConfigurationError(err) {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, MazeResponse{ID: session.ID, Snapshot: snap})
}

func (mc *MazeController) route(ctx *gin.Context) {
	session, ok := mc.session(ctx)
	if !ok {
		return
	}
	var route world.Route
	session.Do(func(g *state.Game) { route = g.Route() })
	ctx.JSON(http.StatusOK, RouteResponse{Route: route})
}

// applyMove moves the player to (x, y) or one step in direction. The caller
// holds the session lock.
func applyMove(g *state.Game, x, y *int, direction string) (gameplay.MoveResult, error) {
	if !g.Furnished() {
		return gameplay.MoveResult{From: g.Player, To: g.Player}, ErrUnfurnished
	}
	if direction != "" {
		dir, ok := world.ParseDirection(direction)
		if !ok {
			return gameplay.MoveResult{From: g.Player, To: g.Player}, fmt.Errorf("%w: unknown direction %q", ErrBadMove, direction)
		}
		return gameplay.Move(g, dir), nil
	}
	if x == nil || y == nil {
		return gameplay.MoveResult{From: g.Player, To: g.Player}, ErrBadMove
	}
	return gameplay.AttemptMove(g, world.Pos(*x, *y)), nil
}

// statusFor maps a domain error to an HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, gameplay.ErrNoOffer):
		return http.StatusConflict
	case errors.Is(err, ErrUnfurnished), gameplay.IsConfigurationError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrBadMove), errors.Is(err, ErrNoAnswer), errors.Is(err, ErrUnknownFrame):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
